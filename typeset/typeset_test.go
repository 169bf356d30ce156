package typeset

import (
	"errors"
	"image"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	text string
	img  image.Image
}

func (r *recorder) SetContent(text string, img image.Image) {
	r.text, r.img = text, img
}

func TestText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.typeset")
	defer teardown()
	tex := `B(t) = (1-t)^{2}\begin{pmatrix}0\\0\end{pmatrix} + 2(1-t)t\begin{pmatrix}50\\0\end{pmatrix} + t^{2}\begin{pmatrix}100\\100\end{pmatrix}`
	assert.Equal(t, "B(t) = (1-t)²(0, 0) + 2(1-t)t(50, 0) + t²(100, 100)", Text(tex))
	assert.Equal(t, "x^4 + x³", Text(`x^{4} + x^{3}`))
	assert.Equal(t, "B(t) = (100t, 100t²)", Text(`B(t) = \begin{pmatrix}100t\\100t^{2}\end{pmatrix}`))
}

func TestPlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.typeset")
	defer teardown()
	r := &recorder{}
	require.NoError(t, Plain{}.Render(`t^{2}`, r))
	assert.Equal(t, "t²", r.text)
	assert.Nil(t, r.img)
	assert.True(t, errors.Is(Plain{}.Render("x", nil), ErrNoTarget))
}

func TestRaster(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.typeset")
	defer teardown()
	r := &recorder{}
	require.NoError(t, Raster{}.Render(`B(t)`, r))
	assert.Equal(t, "B(t)", r.text)
	require.NotNil(t, r.img)
	b := r.img.Bounds()
	assert.Equal(t, 4*7, b.Dx(), "basic font glyphs are 7 pixels wide")
	assert.Equal(t, 13, b.Dy())
	inked := false
	for y := b.Min.Y; y < b.Max.Y && !inked; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := r.img.At(x, y).RGBA(); a > 0 {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "expected some pixels to be set")
}

func TestRasterGoFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.typeset")
	defer teardown()
	ts, err := NewRaster(14)
	require.NoError(t, err)
	require.NotNil(t, ts.Face)
	img := ts.Image("B(t) = t²")
	assert.Greater(t, img.Bounds().Dx(), 2*ts.Padding)
}

func TestByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.typeset")
	defer teardown()
	ts, err := ByName("plain")
	require.NoError(t, err)
	assert.IsType(t, Plain{}, ts)
	ts, err = ByName("Raster")
	require.NoError(t, err)
	assert.IsType(t, &Raster{}, ts)
	_, err = ByName("mathjax")
	assert.True(t, errors.Is(err, ErrUnknownTypesetter))
}
