/*
Package polygon builds simple polygons and answers bounding-box and
containment queries. It is a thin layer on top of polyclip-go contours.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/pipes"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pipes.polygon'
func tracer() tracing.Trace {
	return tracing.Select("pipes.polygon")
}

// Polygon is a sequence of knots. A cyclic polygon is closed between its last
// and its first knot.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p pipes.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves a polygon open. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Z returns knot i (mod N).
func (pg *Polygon) Z(i int) pipes.Pair {
	n := pg.N()
	if n == 0 {
		return pipes.Origin
	}
	i = ((i % n) + n) % n
	pt := pg.contour[i]
	return pipes.P(pt.X, pt.Y)
}

// Box creates a cyclic rectangle from two opposite corners.
func Box(p1, p2 pipes.Pair) *Polygon {
	ll := pipes.P(math.Min(p1.X(), p2.X()), math.Min(p1.Y(), p2.Y()))
	ur := pipes.P(math.Max(p1.X(), p2.X()), math.Max(p1.Y(), p2.Y()))
	return NullPolygon().Knot(ll).Knot(pipes.P(ur.X(), ll.Y())).Knot(ur).
		Knot(pipes.P(ll.X(), ur.Y())).Cycle()
}

// Rect is an axis-aligned rectangle, given by its min and max corners.
type Rect struct {
	Min, Max pipes.Pair
}

// Width of r.
func (r Rect) Width() float64 { return r.Max.X() - r.Min.X() }

// Height of r.
func (r Rect) Height() float64 { return r.Max.Y() - r.Min.Y() }

// Contains is a predicate: is p inside r or on its border?
func (r Rect) Contains(p pipes.Pair) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() && p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// Grow returns r grown by d on every side (shrunk for negative d).
func (r Rect) Grow(d float64) Rect {
	return Rect{Min: r.Min - pipes.P(d, d), Max: r.Max + pipes.P(d, d)}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s,%s]", r.Min, r.Max)
}

// BoundingBox returns the axis-aligned bounds of all knots. For an empty
// polygon the zero Rect is returned.
func (pg *Polygon) BoundingBox() Rect {
	if pg.N() == 0 {
		return Rect{}
	}
	bb := pg.contour.BoundingBox()
	return Rect{
		Min: pipes.P(bb.Min.X, bb.Min.Y),
		Max: pipes.P(bb.Max.X, bb.Max.Y),
	}
}

// Contains is a predicate: does the (closed) area of pg contain p?
// Points on the bounding box of a degenerate polygon do not count.
func (pg *Polygon) Contains(p pipes.Pair) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(pg.Z(i).String())
	}
	if pg.IsCycle() {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
