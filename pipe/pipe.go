package pipe

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/frame"
	"github.com/npillmayer/pipes/panel"
	"github.com/npillmayer/pipes/polygon"
	"github.com/npillmayer/pipes/scene"
)

// Colors and sizes of the editable drawables.
const (
	startColor   = "#e74c3c"
	controlColor = "#2e86de"
	endColor     = "#27ae60"
	triggerColor = "#f39c12"
	curveColor   = "#222222"
	hullColor    = "#999999"
	boxColor     = "#cccccc"
	anchorRadius = 7
	triggerGap   = 14 // distance of the trigger from the box corner
	panelGap     = 16 // distance of the panels from the box
	hitMargin    = 10
)

var pipeCount atomic.Int64

// Pipe is an editable quadratic Bezier curve. It owns its control points and
// drawables; its panels are owned by the host.
type Pipe struct {
	name    string
	layer   *scene.Layer
	triple  ControlTriple
	box     polygon.Rect
	panels  panel.Set
	opts    options
	hidden  bool
	edit    EditState
	grabbed ControlTriple // triple at the start of a whole-pipe drag
	session *Session
	pending bool // panel repositioning requested
	// drawables
	group   *scene.Group
	curve   *scene.Curve
	hull    *scene.Line
	outline *scene.Rect
	anchors [3]*scene.Circle // start, control, end
	trigger *scene.Circle
}

// New creates a pipe on layer. All three panels are required; a missing
// panel results in ErrMissingContainer. The pipe registers a task with the
// frame loop, which flushes panel repositioning once per frame.
func New(layer *scene.Layer, triple ControlTriple, panels panel.Set, opts ...Option) (*Pipe, error) {
	if layer == nil {
		return nil, fmt.Errorf("%w: nil layer", ErrNoLayer)
	}
	if missing := panels.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingContainer, strings.Join(missing, ", "))
	}
	p := &Pipe{layer: layer, triple: triple, panels: panels, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&p.opts)
	}
	if p.opts.loop == nil {
		p.opts.loop = frame.New()
	}
	p.name = p.opts.name
	if p.name == "" {
		p.name = fmt.Sprintf("pipe-%d", pipeCount.Add(1))
	}
	if err := p.opts.loop.Add(p.name, p.flush); err != nil {
		return nil, err
	}
	p.build()
	p.UpdateBoundingBox()
	p.UpdateCurve()
	p.panels.Formula.Show()
	p.requestReposition()
	p.redraw()
	tracer().Infof("pipe %q created: %s", p.name, triple)
	return p, nil
}

func (p *Pipe) build() {
	p.group = scene.NewGroup(p.name, pipes.Origin)
	p.group.SetDraggable(true)
	p.outline = scene.NewRect(p.name+"-box", polygon.Rect{}, scene.Style{Stroke: boxColor, Dash: []float64{4, 4}})
	p.hull = scene.NewLine(p.name+"-hull", scene.Style{Stroke: hullColor, Dash: []float64{2, 3}})
	p.curve = scene.NewCurve(p.name+"-curve", p.triple.Start, p.triple.Control, p.triple.End,
		scene.Style{Stroke: curveColor, StrokeWidth: 2})
	p.trigger = scene.NewCircle(p.name+"-animate", pipes.Origin, anchorRadius, scene.Style{Fill: triggerColor})
	p.trigger.On(scene.Click, func(scene.Event) {
		if _, err := p.Animate(); err != nil {
			tracer().Errorf("pipe %q: %v", p.name, err)
		}
	})
	p.group.Add(p.outline, p.hull, p.curve, p.trigger)
	colors := [3]string{startColor, controlColor, endColor}
	for i, a := range []Anchor{Start, Control, End} {
		c := scene.NewCircle(p.name+"-"+a.String(), p.triple.Point(a), anchorRadius, scene.Style{Fill: colors[i]})
		c.SetDraggable(true)
		p.wireDrag(c, a)
		p.anchors[i] = c
		p.group.Add(c)
	}
	p.wireDrag(p.group, Whole)
	p.layer.Add(p.group)
}

// wireDrag attaches drag listeners to the node of anchor a.
func (p *Pipe) wireDrag(n scene.Node, a Anchor) {
	n.On(scene.DragStart, func(scene.Event) {
		if err := p.BeginEdit(a); err != nil {
			tracer().Errorf("pipe %q: %v", p.name, err)
		}
	})
	n.On(scene.DragMove, func(e scene.Event) {
		if p.edit.Anchor != a {
			return
		}
		pos := pipes.P(e.X, e.Y)
		if a == Whole {
			// the group is kept at the origin; its displacement goes into the triple
			p.group.SetPosition(pipes.Origin)
			pos = p.grabbed.Start + pos
		}
		if err := p.MoveAnchor(a, pos); err != nil {
			tracer().Errorf("pipe %q: %v", p.name, err)
		}
	})
	n.On(scene.DragEnd, func(scene.Event) {
		p.EndEdit()
	})
}

// Name returns the name of the pipe.
func (p *Pipe) Name() string { return p.name }

// Group returns the group of editable drawables.
func (p *Pipe) Group() *scene.Group { return p.group }

// Layer returns the editing layer of the pipe.
func (p *Pipe) Layer() *scene.Layer { return p.layer }

// Loop returns the frame loop the pipe is registered with.
func (p *Pipe) Loop() *frame.Loop { return p.opts.loop }

// Panels returns the panels of the pipe.
func (p *Pipe) Panels() panel.Set { return p.panels }

// Triple returns the control points.
func (p *Pipe) Triple() ControlTriple { return p.triple }

// StartPoint returns the start point of the curve.
func (p *Pipe) StartPoint() pipes.Pair { return p.triple.Start }

// ControlPoint returns the control point of the curve.
func (p *Pipe) ControlPoint() pipes.Pair { return p.triple.Control }

// EndPoint returns the end point of the curve.
func (p *Pipe) EndPoint() pipes.Pair { return p.triple.End }

// Bounds returns the bounding box of the control points, as of the last call
// of UpdateBoundingBox.
func (p *Pipe) Bounds() polygon.Rect { return p.box }

// Contains is a predicate: is p near the pipe, i.e. within its bounding box
// grown by a small margin?
func (p *Pipe) Contains(pt pipes.Pair) bool {
	return p.box.Grow(hitMargin).Contains(pt)
}

// EditState returns the current edit state.
func (p *Pipe) EditState() EditState { return p.edit }

// Session returns the active animation session, or nil.
func (p *Pipe) Session() *Session { return p.session }

// Animating is a predicate: is an animation session active?
func (p *Pipe) Animating() bool { return p.session != nil }

// Hidden is a predicate: has the pipe been hidden by Hide?
func (p *Pipe) Hidden() bool { return p.hidden }

// BeginEdit enters the editing state for anchor a.
func (p *Pipe) BeginEdit(a Anchor) error {
	if p.session != nil {
		return ErrAnimating
	}
	if a <= None || a > Whole {
		return fmt.Errorf("%w: %s", ErrInvalidAnchor, a)
	}
	p.edit = EditState{Anchor: a}
	p.grabbed = p.triple
	tracer().Debugf("pipe %q: %s", p.name, p.edit)
	return nil
}

// EndEdit returns to the idle state.
func (p *Pipe) EndEdit() {
	if p.edit.Idle() {
		return
	}
	tracer().Debugf("pipe %q: end %s", p.name, p.edit)
	p.edit = EditState{}
	p.requestReposition()
}

// MoveAnchor moves the point of anchor a to pt. For Whole, the pipe is
// translated such that its start point ends up at pt. The curve, bounding box
// and drawables are updated and the layer is redrawn once.
func (p *Pipe) MoveAnchor(a Anchor, pt pipes.Pair) error {
	if p.session != nil {
		return ErrAnimating
	}
	switch a {
	case Start:
		p.triple.Start = pt
	case Control:
		p.triple.Control = pt
	case End:
		p.triple.End = pt
	case Whole:
		p.triple = p.triple.Shifted(pt - p.triple.Start)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAnchor, a)
	}
	p.UpdateCurve()
	p.UpdateBoundingBox()
	p.requestReposition()
	p.redraw()
	return nil
}

// Translate moves the whole pipe by d.
func (p *Pipe) Translate(d pipes.Pair) error {
	return p.MoveAnchor(Whole, p.triple.Start+d)
}

// UpdateBoundingBox recomputes the axis-aligned bounds of the control points
// and moves the box and the animate trigger.
func (p *Pipe) UpdateBoundingBox() {
	p.box = p.triple.Bounds()
	p.outline.Box = p.box
	p.trigger.SetPosition(pipes.P(p.box.Max.X()+triggerGap, p.box.Min.Y()))
}

// UpdateCurve pushes the control points into the drawables.
func (p *Pipe) UpdateCurve() {
	p.curve.SetParams(p.triple.Start, p.triple.Control, p.triple.End)
	p.hull.SetPoints(p.triple.Start, p.triple.Control, p.triple.End)
	for i, a := range []Anchor{Start, Control, End} {
		p.anchors[i].SetPosition(p.triple.Point(a))
	}
}

// UpdateFormulaNode requests the formula panel to follow the pipe and show
// the general formula. Requests are coalesced and flushed with the next frame.
func (p *Pipe) UpdateFormulaNode() {
	p.requestReposition()
}

// UpdateSliderNode requests the slider panel to follow the pipe. Requests are
// coalesced and flushed with the next frame.
func (p *Pipe) UpdateSliderNode() {
	p.requestReposition()
}

func (p *Pipe) requestReposition() {
	p.pending = true
}

// RepositionPending is a predicate: are panel position writes pending for the
// next frame?
func (p *Pipe) RepositionPending() bool { return p.pending }

// flush is the frame task of the pipe. It writes panel positions at most once
// per frame, no matter how many requests came in.
func (p *Pipe) flush(int) {
	if !p.pending {
		return
	}
	p.pending = false
	fpos, spos, tpos := p.panelPositions()
	p.panels.Formula.SetPosition(fpos)
	p.panels.Slider.SetPosition(spos)
	p.panels.Table.SetPosition(tpos)
	if p.session == nil {
		p.renderFormula(p.triple.Quadratic().ToTex())
	}
}

// panelPositions returns the positions of the formula, slider and table
// panels, below the bounding box.
func (p *Pipe) panelPositions() (pipes.Pair, pipes.Pair, pipes.Pair) {
	below := pipes.P(p.box.Min.X(), p.box.Max.Y()+panelGap)
	return below, below + pipes.P(0, 2*panelGap), below + pipes.P(0, 5*panelGap)
}

func (p *Pipe) renderFormula(tex string) {
	if err := p.opts.typesetter.Render(tex, p.panels.Formula); err != nil {
		tracer().Errorf("pipe %q: typesetting: %v", p.name, err)
	}
}

// Hide hides the pipe with all its panels, including an active animation.
func (p *Pipe) Hide() {
	p.hidden = true
	p.group.Hide()
	for _, pn := range p.panels.Panels() {
		pn.Hide()
	}
	if p.session != nil {
		p.session.layer.Hide()
	}
	p.redraw()
}

// Show reverts Hide. With an active animation, the animation is shown
// instead of the editable drawables.
func (p *Pipe) Show() {
	p.hidden = false
	if p.session != nil {
		p.session.layer.Show()
		p.session.showPanels()
	} else {
		p.group.Show()
		p.panels.Formula.Show()
	}
	p.requestReposition()
	p.redraw()
}

// Animate starts an animation session, borrowing a layer from the pool. The
// editable drawables are hidden until the session is destroyed.
func (p *Pipe) Animate() (*Session, error) {
	if p.session != nil {
		return p.session, ErrAnimating
	}
	if p.opts.pool == nil {
		return nil, ErrNoLayer
	}
	l, err := p.opts.pool.Borrow()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoLayer, err)
	}
	p.EndEdit()
	if p.hidden {
		l.Hide()
	}
	p.session = newSession(p, l)
	p.group.Hide()
	p.redraw()
	p.session.start()
	tracer().Infof("pipe %q: animation started on layer %q", p.name, l.Name())
	return p.session, nil
}

// endSession is called by a session on destroy.
func (p *Pipe) endSession() {
	p.session = nil
	p.panels.Slider.Hide()
	p.panels.Table.Hide()
	p.renderFormula(p.triple.Quadratic().ToTex())
	if !p.hidden {
		p.group.Show()
		p.panels.Formula.Show()
	}
	p.requestReposition()
	p.redraw()
}

func (p *Pipe) redraw() {
	if err := p.layer.Draw(); err != nil {
		tracer().Errorf("pipe %q: %v", p.name, err)
	}
}
