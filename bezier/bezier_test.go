package bezier

import (
	"strings"
	"testing"

	"github.com/npillmayer/pipes"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func assertNear(t *testing.T, got, want pipes.Pair) {
	t.Helper()
	if !got.Near(want, tolerance) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func testcurve() Quadratic {
	return QuadraticAt(pipes.P(50, 0), pipes.P(0, 0), pipes.P(100, 100))
}

func TestArgumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	q := testcurve()
	assertNear(t, q.Start, pipes.P(0, 0))
	assertNear(t, q.Control, pipes.P(50, 0))
	assertNear(t, q.End, pipes.P(100, 100))
}

func TestEndpoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	q := testcurve()
	assertNear(t, q.At(0), q.Start)
	assertNear(t, q.At(1), q.End)
	assertNear(t, q.Construct(0).Pen, q.Start)
	assertNear(t, q.Construct(1).Pen, q.End)
}

func TestClosedFormEqualsConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	curves := []Quadratic{
		testcurve(),
		QuadraticAt(pipes.P(10, 0), pipes.P(0, 0), pipes.P(10, 10)),
		QuadraticAt(pipes.P(-30, 250), pipes.P(17.5, -3), pipes.P(400, 12)),
		QuadraticAt(pipes.P(5, 5), pipes.P(5, 5), pipes.P(5, 5)),
	}
	for _, q := range curves {
		for i := 0; i <= 100; i++ {
			tt := float64(i) / 100
			c := Construct(q.Start, q.Control, q.End, tt)
			if !q.At(tt).Near(c.Pen, 1e-6) {
				t.Errorf("%s at t=%g: closed form %s != construction %s", AsString(q), tt, q.At(tt), c.Pen)
			}
		}
	}
}

func TestConstructionHalf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	c := Construct(pipes.P(0, 0), pipes.P(10, 0), pipes.P(10, 10), 0.5)
	assertNear(t, c.AB, pipes.P(5, 0))
	assertNear(t, c.BC, pipes.P(10, 5))
	assertNear(t, c.Pen, pipes.P(7.5, 2.5))
}

func TestConstructionQuarter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	c := testcurve().Construct(0.25)
	t.Logf("construction: %s", c)
	assertNear(t, c.AB, pipes.P(12.5, 0))
	assertNear(t, c.BC, pipes.P(62.5, 25))
	assertNear(t, c.Pen, pipes.P(25, 6.25))
}

func TestExtrapolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	line := LineAt(0, 0, 10, 20)
	assertNear(t, line(0.5), pipes.P(5, 10))
	assertNear(t, line(-1), pipes.P(-10, -20))
	assertNear(t, line(2), pipes.P(20, 40))
	q := testcurve()
	assertNear(t, q.At(2), q.Construct(2).Pen)
}

func TestFuncForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	f := testcurve().Func()
	assertNear(t, f(0.25), pipes.P(25, 6.25))
}

func TestExpanded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	q := testcurve()
	x, y := q.Expanded()
	for i := 0; i <= 20; i++ {
		tt := float64(i) / 20
		assert.InDelta(t, q.At(tt).X(), x.Eval(tt), 1e-6)
		assert.InDelta(t, q.At(tt).Y(), y.Eval(tt), 1e-6)
	}
	assert.Equal(t, `B(t) = \begin{pmatrix}100t\\100t^{2}\end{pmatrix}`, q.ToTexExpanded())
}

func TestToTex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	q := testcurve()
	general := q.ToTex()
	assert.Equal(t, `B(t) = (1-t)^{2}\begin{pmatrix}0\\0\end{pmatrix} + 2(1-t)t\begin{pmatrix}50\\0\end{pmatrix} + t^{2}\begin{pmatrix}100\\100\end{pmatrix}`, general)
	at := q.ToTexAt(0.25)
	require.True(t, strings.HasPrefix(at, "B(0.25) = 0.56"), at)
	assert.Contains(t, at, `0.38\begin{pmatrix}50\\0\end{pmatrix}`)
	assert.Contains(t, at, `0.06\begin{pmatrix}100\\100\end{pmatrix}`)
	assert.True(t, strings.HasSuffix(at, `= \begin{pmatrix}25\\6.25\end{pmatrix}`), at)
}

func TestDegenerateCurve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	p := pipes.P(3, 4)
	q := QuadraticAt(p, p, p)
	for _, tt := range []float64{0, 0.3, 1} {
		assertNear(t, q.At(tt), p)
	}
	bb := q.Bounds()
	assert.InDelta(t, 0.0, bb.Width(), tolerance)
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.bezier")
	defer teardown()
	assert.Equal(t, "(0,0) .. control (50,0) .. (100,100)", AsString(testcurve()))
}
