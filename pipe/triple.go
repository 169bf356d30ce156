package pipe

import (
	"fmt"

	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/bezier"
	"github.com/npillmayer/pipes/polygon"
)

// ControlTriple holds the three points defining a pipe, in stage coordinates.
type ControlTriple struct {
	Start, Control, End pipes.Pair
}

// DefaultTriple returns the triple of a new pipe created around p.
func DefaultTriple(p pipes.Pair) ControlTriple {
	return ControlTriple{
		Start:   p + pipes.P(-60, 30),
		Control: p + pipes.P(0, -40),
		End:     p + pipes.P(60, 30),
	}
}

// Quadratic returns the curve defined by ct.
func (ct ControlTriple) Quadratic() bezier.Quadratic {
	return bezier.QuadraticAt(ct.Control, ct.Start, ct.End)
}

// Shifted returns ct translated by d.
func (ct ControlTriple) Shifted(d pipes.Pair) ControlTriple {
	return ControlTriple{Start: ct.Start + d, Control: ct.Control + d, End: ct.End + d}
}

// Bounds returns the bounding box of the triangle spanned by ct.
func (ct ControlTriple) Bounds() polygon.Rect {
	return polygon.NullPolygon().Knot(ct.Start).Knot(ct.Control).Knot(ct.End).Cycle().BoundingBox()
}

// Point returns the point of anchor a.
func (ct ControlTriple) Point(a Anchor) pipes.Pair {
	switch a {
	case Start:
		return ct.Start
	case Control:
		return ct.Control
	case End:
		return ct.End
	}
	return pipes.Origin
}

func (ct ControlTriple) String() string {
	return bezier.AsString(ct.Quadratic())
}

// Anchor names a draggable part of a pipe.
type Anchor int

// Anchors of a pipe. Whole stands for the pipe as a group.
const (
	None Anchor = iota
	Start
	Control
	End
	Whole
)

func (a Anchor) String() string {
	switch a {
	case None:
		return "none"
	case Start:
		return "start"
	case Control:
		return "control"
	case End:
		return "end"
	case Whole:
		return "whole"
	}
	return fmt.Sprintf("<anchor %d>", int(a))
}

// EditState is the edit state of a pipe: either idle, or editing one of its
// anchors.
type EditState struct {
	Anchor Anchor // None if idle
}

// Idle is a predicate: is no anchor being edited?
func (es EditState) Idle() bool {
	return es.Anchor == None
}

func (es EditState) String() string {
	if es.Idle() {
		return "idle"
	}
	return "editing(" + es.Anchor.String() + ")"
}
