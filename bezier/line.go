package bezier

import (
	"fmt"

	"github.com/npillmayer/pipes"
)

// Linear is the parametrization of a line segment by progress.
type Linear func(progress float64) pipes.Pair

// LineAt creates the parametrization of the line segment from (x0,y0) to
// (x1,y1). There is no symbolic variant.
func LineAt(x0, y0, x1, y1 float64) Linear {
	return func(progress float64) pipes.Pair {
		return pipes.P(x0+(x1-x0)*progress, y0+(y1-y0)*progress)
	}
}

// lineBetween is LineAt for pairs.
func lineBetween(p0, p1 pipes.Pair) Linear {
	return LineAt(p0.X(), p0.Y(), p1.X(), p1.Y())
}

// Construction holds the intermediate and final points of one evaluation
// by the construction of de Casteljau.
type Construction struct {
	T   float64    // curve parameter
	AB  pipes.Pair // point on segment start–control
	BC  pipes.Pair // point on segment control–end
	Pen pipes.Pair // point on segment AB–BC, lies on the curve
}

func (c Construction) String() string {
	return fmt.Sprintf("t=%.3f: AB=%s BC=%s pen=%s", c.T, c.AB, c.BC, c.Pen)
}

// Construct evaluates a quadratic curve at t in two stages of linear
// interpolation: first on both segments of the control polygon, then on the
// segment between the two resulting points.
func Construct(start, control, end pipes.Pair, t float64) Construction {
	ab := lineBetween(start, control)(t)
	bc := lineBetween(control, end)(t)
	pen := lineBetween(ab, bc)(t)
	return Construction{T: t, AB: ab, BC: bc, Pen: pen}
}
