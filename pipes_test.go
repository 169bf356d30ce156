package pipes

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.Equal(t, 0.0, Zap(-0.00000001))
	assert.Equal(t, 0.56, Round2(0.5625))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.0, Clamp01(-0.1))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, "(3,2)", p.String())
	assert.InDelta(t, 5.0, P(0, 0).Dist(P(3, 4)), 1e-9)
}

func TestLerp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b := P(0, 0), P(10, 0)
	assert.True(t, Lerp(a, b, 0.5).Equal(P(5, 0)))
	assert.True(t, Lerp(a, b, 0).Equal(a))
	assert.True(t, Lerp(a, b, 1).Equal(b))
	assert.True(t, Lerp(a, b, 1.5).Equal(P(15, 0)), "lerp must extrapolate outside [0,1]")
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	T := Translation(P(2, 3)).Combine(Translation(P(1, 1)))
	assert.True(t, T.Offset().Equal(P(3, 4)))
	assert.True(t, T.Transform(P(1, 1)).Equal(P(4, 5)))
}
