// Package bezier evaluates quadratic Bezier curves and line segments at a
// curve parameter t, and renders their parametric formulas as TeX strings.
/*

A quadratic Bezier curve is given by three points: start, control and end.
Per axis it is

	B(t) = start⋅(1-t)² + control⋅2(1-t)t + end⋅t²

The same point may be found by the construction of de Casteljau, which uses
nothing but linear interpolation:

	AB  = lerp(start, control, t)
	BC  = lerp(control, end, t)
	pen = lerp(AB, BC, t)

Both ways of evaluation are offered: Quadratic.At uses the closed form,
Construct the two-stage lerp. Clients animating the construction should use
Construct, as it yields the helper points AB and BC as well.

All functions of this package are total. Parameters outside [0,1] will
extrapolate and never produce an error; coincident points produce a
degenerate, stationary curve.

Usage

	q := bezier.QuadraticAt(P(50,0), P(0,0), P(100,100))  // control comes first
	pen := q.At(0.25)                                     // (25,6.25)
	tex := q.ToTexAt(0.25)

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pipes.bezier'
func tracer() tracing.Trace {
	return tracing.Select("pipes.bezier")
}
