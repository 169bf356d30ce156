package bezier

import (
	"fmt"

	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/polygon"
	"github.com/npillmayer/pipes/polyn"
)

// Quadratic is a quadratic Bezier curve. It is a value type; changing the
// points of a pipe means creating a new Quadratic.
type Quadratic struct {
	Start, Control, End pipes.Pair
}

// Param is the function form of a parametrization: a point for every t.
type Param func(t float64) pipes.Pair

// QuadraticAt creates the parametrization of a quadratic Bezier curve.
// Please note the order of arguments: the control point comes first.
func QuadraticAt(control, start, end pipes.Pair) Quadratic {
	return Quadratic{Start: start, Control: control, End: end}
}

// Bernstein returns the three quadratic Bernstein weights at t:
// (1-t)², 2(1-t)t and t².
func Bernstein(t float64) (float64, float64, float64) {
	mt := 1 - t
	return mt * mt, 2 * mt * t, t * t
}

// At evaluates the curve at t, per axis, in closed form.
func (q Quadratic) At(t float64) pipes.Pair {
	b0, b1, b2 := Bernstein(t)
	x := q.Start.X()*b0 + q.Control.X()*b1 + q.End.X()*b2
	y := q.Start.Y()*b0 + q.Control.Y()*b1 + q.End.Y()*b2
	return pipes.P(x, y)
}

// Func returns the closed form as a function of t.
func (q Quadratic) Func() Param {
	return q.At
}

// Construct evaluates q at t by the construction of de Casteljau.
func (q Quadratic) Construct(t float64) Construction {
	return Construct(q.Start, q.Control, q.End, t)
}

// Bounds returns the axis-aligned box around the control polygon of q.
// The curve is always contained in it.
func (q Quadratic) Bounds() polygon.Rect {
	return polygon.NullPolygon().Knot(q.Start).Knot(q.Control).Knot(q.End).Cycle().BoundingBox()
}

// Expanded returns the curve in power basis, i.e. as a polynomial in t for
// each axis:
//
//	x(t) = a + b⋅t + c⋅t²
func (q Quadratic) Expanded() (polyn.Polynomial, polyn.Polynomial) {
	omt := polyn.Linear(1, -1)             // 1-t
	b0 := omt.Multiply(omt)                // (1-t)²
	b1 := omt.Multiply(polyn.Linear(0, 2)) // 2(1-t)t
	b2 := polyn.Linear(0, 1).Multiply(polyn.Linear(0, 1))
	axis := func(s, c, e float64) polyn.Polynomial {
		return b0.Scale(s).Add(b1.Scale(c)).Add(b2.Scale(e))
	}
	x := axis(q.Start.X(), q.Control.X(), q.End.X())
	y := axis(q.Start.Y(), q.Control.Y(), q.End.Y())
	tracer().Debugf("expanded %s: x = %s, y = %s", AsString(q), x, y)
	return x, y
}

// AsString returns a quadratic curve as a (debugging) string, in a
// MetaPost-like notation.
func AsString(q Quadratic) string {
	return fmt.Sprintf("%s .. control %s .. %s", ptstring(q.Start), ptstring(q.Control), ptstring(q.End))
}

func ptstring(p pipes.Pair) string {
	return fmt.Sprintf("(%.4g,%.4g)", pipes.Round2(p.X()), pipes.Round2(p.Y()))
}
