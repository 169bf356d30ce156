package scene

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/typeset"
)

// Picture is a raster image placed with its top-left corner at a position.
type Picture struct {
	node
	pos pipes.Pair
	img image.Image
	buf *gg.ImageBuf
}

// NewPicture creates a picture node. img may be nil.
func NewPicture(name string, pos pipes.Pair, img image.Image) *Picture {
	p := &Picture{node: node{name: name}, pos: pos}
	p.SetImage(img)
	return p
}

// NewText creates a picture showing a line of text, colored with the fill
// color of style.
func NewText(name string, pos pipes.Pair, text string, style Style) *Picture {
	ts := typeset.Raster{}
	if style.Fill != "" {
		ts.Color = gg.Hex(style.Fill).Color()
	}
	return NewPicture(name, pos, ts.Image(text))
}

// SetImage replaces the image of p.
func (p *Picture) SetImage(img image.Image) {
	p.img = img
	p.buf = nil
	if img != nil {
		p.buf = gg.ImageBufFromImage(img)
	}
}

// Image returns the image of p, or nil.
func (p *Picture) Image() image.Image { return p.img }

// Position returns the top-left corner of p.
func (p *Picture) Position() pipes.Pair { return p.pos }

// SetPosition moves p.
func (p *Picture) SetPosition(pos pipes.Pair) { p.pos = pos }

func (p *Picture) paint(gc *gg.Context, offset pipes.Pair) error {
	if p.buf == nil {
		return nil
	}
	at := p.pos + offset
	gc.DrawImage(p.buf, at.X(), at.Y())
	return nil
}

func (p *Picture) hit(pt pipes.Pair) bool {
	if p.img == nil {
		return false
	}
	b := p.img.Bounds()
	d := pt - p.pos
	return d.X() >= 0 && d.Y() >= 0 && d.X() < float64(b.Dx()) && d.Y() < float64(b.Dy())
}
