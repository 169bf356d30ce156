package panel

import (
	"image"
)

// Formula is a panel showing a typeset formula. It is a typeset.Target.
type Formula struct {
	Container
	text string
	img  image.Image
}

// NewFormula creates an empty formula panel.
func NewFormula(name string) *Formula {
	return &Formula{Container: Container{name: name}}
}

// SetContent replaces the formula. img may be nil for text-only output.
func (f *Formula) SetContent(text string, img image.Image) {
	f.text, f.img = text, img
}

// Text returns the formula as readable text.
func (f *Formula) Text() string { return f.text }

// Image returns the typeset formula, or nil.
func (f *Formula) Image() image.Image { return f.img }

// Render returns the typeset image, or a rasterization of the text.
func (f *Formula) Render() image.Image {
	if f.img != nil {
		return f.img
	}
	return renderLines(f.text)
}
