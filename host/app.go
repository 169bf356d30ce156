/*
Package host implements the host application for pipes. An App owns the
stage with its editing layer, the pool of animation layers, the frame loop and
the panels of all pipes.

Input is delivered explicitly: clicks, pointer down/move/up and resizes are
methods of App. A click over empty space creates a new pipe around the click
position; clicks on drawables with a click listener (the animate trigger of a
pipe, the buttons of an animation) are dispatched to them.

Pipes live as long as their App.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package host

import (
	"fmt"
	"image"

	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/frame"
	"github.com/npillmayer/pipes/panel"
	"github.com/npillmayer/pipes/pipe"
	"github.com/npillmayer/pipes/polygon"
	"github.com/npillmayer/pipes/scene"
	"github.com/npillmayer/pipes/typeset"
	"github.com/npillmayer/schuko/tracing"
	xdraw "golang.org/x/image/draw"
)

// tracer traces with key 'pipes.host'
func tracer() tracing.Trace {
	return tracing.Select("pipes.host")
}

// App is the host application.
type App struct {
	conf    Config
	stage   *scene.Stage
	edit    *scene.Layer
	pool    *scene.Pool
	loop    *frame.Loop
	ts      typeset.Typesetter
	preview pipe.Preview
	pipes   []*pipe.Pipe
}

// New creates an App. If ts is nil, the typesetter named by the configuration
// is used.
func New(conf Config, ts typeset.Typesetter) (*App, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	stage, err := scene.NewStage(conf.Width, conf.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if ts == nil {
		if ts, err = typeset.ByName(conf.Typesetter); err != nil {
			return nil, err
		}
	}
	preview, err := pipe.PreviewByName(conf.Preview)
	if err != nil {
		return nil, err
	}
	a := &App{
		conf:    conf,
		stage:   stage,
		edit:    stage.NewLayer("edit"),
		pool:    scene.NewPool(stage, conf.LayerPool),
		loop:    frame.New(),
		ts:      ts,
		preview: preview,
	}
	tracer().Infof("app: stage %dx%d, %d animation layers", conf.Width, conf.Height, conf.LayerPool)
	return a, nil
}

// Config returns the settings of a.
func (a *App) Config() Config { return a.conf }

// Stage returns the stage.
func (a *App) Stage() *scene.Stage { return a.stage }

// EditLayer returns the layer holding the editable drawables of all pipes.
func (a *App) EditLayer() *scene.Layer { return a.edit }

// Pool returns the pool of animation layers.
func (a *App) Pool() *scene.Pool { return a.pool }

// Loop returns the frame loop.
func (a *App) Loop() *frame.Loop { return a.loop }

// Pipes returns all pipes in creation order.
func (a *App) Pipes() []*pipe.Pipe { return a.pipes }

// NewPipe creates a pipe with its panels.
func (a *App) NewPipe(triple pipe.ControlTriple) (*pipe.Pipe, error) {
	name := fmt.Sprintf("pipe-%d", len(a.pipes)+1)
	p, err := pipe.New(a.edit, triple, panel.NewSet(name),
		pipe.WithName(name),
		pipe.WithLoop(a.loop),
		pipe.WithPool(a.pool),
		pipe.WithTypesetter(a.ts),
		pipe.WithPreview(a.preview),
		pipe.WithRates(a.conf.FormulaRate, a.conf.TableRate),
	)
	if err != nil {
		return nil, err
	}
	a.pipes = append(a.pipes, p)
	return p, nil
}

// Click dispatches a click at p to the topmost clickable drawable. A click
// which hits neither a clickable drawable nor a pipe creates a new pipe
// around p, which is returned.
func (a *App) Click(p pipes.Pair) (*pipe.Pipe, error) {
	layers := a.stage.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i].Click(p) {
			return nil, nil
		}
	}
	if a.PipeAt(p) != nil {
		return nil, nil
	}
	return a.NewPipe(pipe.DefaultTriple(p))
}

// PipeAt returns the topmost visible pipe near p, or nil.
func (a *App) PipeAt(p pipes.Pair) *pipe.Pipe {
	for i := len(a.pipes) - 1; i >= 0; i-- {
		if !a.pipes[i].Hidden() && a.pipes[i].Contains(p) {
			return a.pipes[i]
		}
	}
	return nil
}

// PointerDown starts a drag on the editing layer.
func (a *App) PointerDown(p pipes.Pair) bool { return a.edit.PointerDown(p) }

// PointerMove continues a drag on the editing layer.
func (a *App) PointerMove(p pipes.Pair) bool { return a.edit.PointerMove(p) }

// PointerUp ends a drag on the editing layer.
func (a *App) PointerUp(p pipes.Pair) bool { return a.edit.PointerUp(p) }

// Resize changes the size of the stage. Pipes which do not fit onto the
// stage any more are hidden, all others are shown; panels are repositioned
// with the next frame.
func (a *App) Resize(width, height int) error {
	if err := a.stage.Resize(width, height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	a.conf.Width, a.conf.Height = width, height
	area := polygon.Rect{Max: pipes.P(float64(width), float64(height))}
	for _, p := range a.pipes {
		b := p.Bounds()
		fits := area.Contains(b.Min) && area.Contains(b.Max)
		if fits && p.Hidden() {
			p.Show()
		} else if !fits && !p.Hidden() {
			tracer().Debugf("app: %s leaves the stage", p.Name())
			p.Hide()
		}
		p.UpdateFormulaNode()
		p.UpdateSliderNode()
	}
	return nil
}

// Tick runs one frame and returns its number.
func (a *App) Tick() int {
	return a.loop.Tick()
}

// Render composites all layers and the visible panels.
func (a *App) Render() *image.RGBA {
	dst := a.stage.Composite()
	for _, p := range a.pipes {
		for _, pn := range p.Panels().Panels() {
			if !pn.Visible() {
				continue
			}
			img := pn.Render()
			at := pn.Position()
			r := img.Bounds().Sub(img.Bounds().Min).Add(image.Pt(int(at.X()), int(at.Y())))
			xdraw.Draw(dst, r, img, img.Bounds().Min, xdraw.Over)
		}
	}
	return dst
}

// Thumbnail renders a scaled down image of the stage.
func (a *App) Thumbnail(w, h int) *image.RGBA {
	src := a.Render()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG writes the rendered stage to a PNG file.
func (a *App) SavePNG(path string) error {
	return scene.WritePNG(path, a.Render())
}

// Close releases the rasterizers.
func (a *App) Close() error {
	return a.stage.Close()
}
