package typeset

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Raster is a typesetter producing text and a raster image of the text.
// The zero value draws black text with a fixed 7×13 pixel font.
type Raster struct {
	Face    font.Face   // nil means basicfont.Face7x13
	Color   color.Color // nil means black
	Padding int         // border around the text, in pixels
}

// NewRaster creates a raster typesetter. For size > 0 the Go Regular font is
// used at size points (72 dpi), otherwise the fixed basic font.
func NewRaster(size float64) (*Raster, error) {
	r := &Raster{Padding: 2}
	if size <= 0 {
		return r, nil
	}
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("typeset: parsing Go Regular: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("typeset: creating face: %w", err)
	}
	r.Face = face
	return r, nil
}

// Render sets the readable text of formula and its raster as the content of
// target.
func (r Raster) Render(formula string, target Target) error {
	if target == nil {
		return ErrNoTarget
	}
	text := Text(formula)
	target.SetContent(text, r.Image(text))
	return nil
}

// Image rasterizes a line of text onto a transparent background.
func (r Raster) Image(text string) *image.RGBA {
	face := r.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	col := r.Color
	if col == nil {
		col = color.Black
	}
	m := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	height := (m.Ascent + m.Descent).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, width+2*r.Padding, height+2*r.Padding))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(r.Padding),
			Y: fixed.I(r.Padding) + m.Ascent,
		},
	}
	d.DrawString(text)
	return img
}
