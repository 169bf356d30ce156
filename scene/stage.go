package scene

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gg"
	"github.com/npillmayer/pipes"
	xdraw "golang.org/x/image/draw"
)

// Stage is the drawing surface. It owns layers, composited in creation order.
type Stage struct {
	width, height int
	layers        []*Layer
	Background    string // hex color, defaults to white
}

// NewStage creates a stage of the given size.
func NewStage(width, height int) (*Stage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Stage{width: width, height: height, Background: "#ffffff"}, nil
}

// Size returns width and height of the stage.
func (s *Stage) Size() (int, int) {
	return s.width, s.height
}

// NewLayer creates a layer on top of all existing ones.
func (s *Stage) NewLayer(name string) *Layer {
	l := &Layer{stage: s, root: NewGroup(name, pipes.Origin)}
	s.layers = append(s.layers, l)
	tracer().Debugf("stage: new layer %q, %d layers", name, len(s.layers))
	return l
}

// Layers returns all layers, bottom first.
func (s *Stage) Layers() []*Layer {
	return s.layers
}

// Resize changes the size of the stage and re-rasterizes every layer which
// has been drawn before.
func (s *Stage) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	s.width, s.height = width, height
	for _, l := range s.layers {
		if l.gc == nil {
			continue
		}
		if err := l.gc.Resize(width, height); err != nil {
			return err
		}
		if l.img != nil {
			if err := l.Draw(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Composite blends the rasters of all visible layers onto the background.
func (s *Stage) Composite() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	bg := gg.White
	if s.Background != "" {
		bg = gg.Hex(s.Background)
	}
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg.Color()), image.Point{}, xdraw.Src)
	for _, l := range s.layers {
		if l.hidden || l.img == nil {
			continue
		}
		xdraw.Draw(dst, dst.Bounds(), l.img, image.Point{}, xdraw.Over)
	}
	return dst
}

// Thumbnail returns the composite scaled to fit into w×h.
func (s *Stage) Thumbnail(w, h int) *image.RGBA {
	src := s.Composite()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG writes the composite of all layers to a PNG file.
func (s *Stage) SavePNG(path string) error {
	return WritePNG(path, s.Composite())
}

// WritePNG encodes img as PNG into a new file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close releases the rasterizers of all layers.
func (s *Stage) Close() error {
	var first error
	for _, l := range s.layers {
		if l.gc == nil {
			continue
		}
		if err := l.gc.Close(); err != nil && first == nil {
			first = err
		}
		l.gc = nil
	}
	return first
}
