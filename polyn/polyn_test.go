package polyn

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNewPolynomial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.polyn")
	defer teardown()
	p, err := New(8, X{2, 5}, X{1, 0.5})
	assert.NoError(t, err)
	assert.Equal(t, 2, p.Degree())
	assert.InDelta(t, 8.0, p.Coeff(0), 1e-9)
	assert.InDelta(t, 0.5, p.Coeff(1), 1e-9)
	assert.InDelta(t, 5.0, p.Coeff(2), 1e-9)
	_, err = New(1, X{-1, 2})
	assert.True(t, errors.Is(err, ErrNegativeExponent))
}

func TestAddSubtract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.polyn")
	defer teardown()
	p := Linear(1, 2)
	q := Linear(3, -2)
	r := p.Add(q)
	c, isconst := r.IsConstant()
	assert.True(t, isconst, "t-terms should cancel, got %s", r)
	assert.InDelta(t, 4.0, c, 1e-9)
	s := p.Subtract(p)
	c, isconst = s.IsConstant()
	assert.True(t, isconst)
	assert.InDelta(t, 0.0, c, 1e-9)
}

func TestMultiply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.polyn")
	defer teardown()
	omt := Linear(1, -1) // 1 - t
	sq := omt.Multiply(omt)
	assert.InDelta(t, 1.0, sq.Coeff(0), 1e-9)
	assert.InDelta(t, -2.0, sq.Coeff(1), 1e-9)
	assert.InDelta(t, 1.0, sq.Coeff(2), 1e-9)
	assert.InDelta(t, 0.5625, sq.Eval(0.25), 1e-9)
}

func TestScaleAndEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.polyn")
	defer teardown()
	p, _ := New(1, X{1, 2}, X{2, 3})
	assert.InDelta(t, 6.0, p.Eval(1), 1e-9)
	assert.InDelta(t, 12.0, p.Scale(2).Eval(1), 1e-9)
	assert.InDelta(t, 1.0, p.Eval(0), 1e-9)
}

func TestTex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.polyn")
	defer teardown()
	p, _ := New(1.5, X{1, 2}, X{2, -0.25})
	assert.Equal(t, "1.5 + 2t - 0.25t^{2}", p.Tex("t"))
	q, _ := New(0, X{1, -1})
	assert.Equal(t, "-t", q.Tex("t"))
	assert.Equal(t, "0", NewConstantPolynomial(0).Tex("t"))
}
