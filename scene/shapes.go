package scene

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/polygon"
)

// hitTolerance is the distance in pixels within which a pointer hits a
// stroked line.
const hitTolerance = 4.0

// --- Circle ----------------------------------------------------------------

// Circle is a filled and/or stroked circle, positioned by its center.
type Circle struct {
	node
	center pipes.Pair
	Radius float64
	Style  Style
}

// NewCircle creates a circle.
func NewCircle(name string, center pipes.Pair, radius float64, style Style) *Circle {
	return &Circle{node: node{name: name}, center: center, Radius: radius, Style: style}
}

// Position returns the center of the circle.
func (c *Circle) Position() pipes.Pair { return c.center }

// SetPosition moves the center of the circle.
func (c *Circle) SetPosition(p pipes.Pair) { c.center = p }

func (c *Circle) paint(gc *gg.Context, offset pipes.Pair) error {
	p := c.center + offset
	gc.DrawCircle(p.X(), p.Y(), c.Radius)
	return applyStyle(gc, c.Style)
}

func (c *Circle) hit(p pipes.Pair) bool {
	return p.Dist(c.center) <= c.Radius+1
}

// --- Line ------------------------------------------------------------------

// Line is a polyline through a sequence of points, optionally closed.
type Line struct {
	node
	Points []pipes.Pair
	Closed bool
	Style  Style
}

// NewLine creates a polyline.
func NewLine(name string, style Style, points ...pipes.Pair) *Line {
	return &Line{node: node{name: name}, Points: points, Style: style}
}

// Position returns the first point of the line.
func (l *Line) Position() pipes.Pair {
	if len(l.Points) == 0 {
		return pipes.Origin
	}
	return l.Points[0]
}

// SetPosition translates all points such that the first one is at p.
func (l *Line) SetPosition(p pipes.Pair) {
	d := p - l.Position()
	for i := range l.Points {
		l.Points[i] += d
	}
}

// SetPoints replaces the points of the line.
func (l *Line) SetPoints(points ...pipes.Pair) {
	l.Points = append(l.Points[:0], points...)
}

func (l *Line) paint(gc *gg.Context, offset pipes.Pair) error {
	if len(l.Points) < 2 {
		return nil
	}
	p := l.Points[0] + offset
	gc.MoveTo(p.X(), p.Y())
	for _, q := range l.Points[1:] {
		q += offset
		gc.LineTo(q.X(), q.Y())
	}
	if l.Closed {
		gc.ClosePath()
	}
	return applyStyle(gc, l.Style)
}

func (l *Line) hit(p pipes.Pair) bool {
	for i := 1; i < len(l.Points); i++ {
		if segmentDist(p, l.Points[i-1], l.Points[i]) <= hitTolerance {
			return true
		}
	}
	return false
}

func segmentDist(p, a, b pipes.Pair) float64 {
	ab := b - a
	l2 := ab.X()*ab.X() + ab.Y()*ab.Y()
	if pipes.Is0(l2) {
		return p.Dist(a)
	}
	t := ((p-a).X()*ab.X() + (p-a).Y()*ab.Y()) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Dist(pipes.Lerp(a, b, t))
}

// --- Rect ------------------------------------------------------------------

// Rect is an axis-aligned rectangle, positioned by its top-left corner.
type Rect struct {
	node
	Box   polygon.Rect
	Style Style
}

// NewRect creates a rectangle.
func NewRect(name string, box polygon.Rect, style Style) *Rect {
	return &Rect{node: node{name: name}, Box: box, Style: style}
}

// Position returns the top-left corner.
func (r *Rect) Position() pipes.Pair { return r.Box.Min }

// SetPosition moves the rectangle, keeping its size.
func (r *Rect) SetPosition(p pipes.Pair) {
	d := p - r.Box.Min
	r.Box.Min += d
	r.Box.Max += d
}

func (r *Rect) paint(gc *gg.Context, offset pipes.Pair) error {
	p := r.Box.Min + offset
	gc.DrawRectangle(p.X(), p.Y(), r.Box.Width(), r.Box.Height())
	return applyStyle(gc, r.Style)
}

func (r *Rect) hit(p pipes.Pair) bool {
	if r.Style.Fill == "" {
		return false // outline-only rectangles do not catch the pointer
	}
	return r.Box.Contains(p)
}

// --- Curve -----------------------------------------------------------------

// Curve is a quadratic Bezier curve, given by its draw parameters.
type Curve struct {
	node
	Start, Control, End pipes.Pair
	Style               Style
}

// NewCurve creates a quadratic curve shape.
func NewCurve(name string, start, control, end pipes.Pair, style Style) *Curve {
	return &Curve{node: node{name: name}, Start: start, Control: control, End: end, Style: style}
}

// SetParams replaces the draw parameters of the curve.
func (c *Curve) SetParams(start, control, end pipes.Pair) {
	c.Start, c.Control, c.End = start, control, end
}

// Position returns the start point.
func (c *Curve) Position() pipes.Pair { return c.Start }

// SetPosition translates the curve such that it starts at p.
func (c *Curve) SetPosition(p pipes.Pair) {
	d := p - c.Start
	c.Start += d
	c.Control += d
	c.End += d
}

func (c *Curve) paint(gc *gg.Context, offset pipes.Pair) error {
	s, k, e := c.Start+offset, c.Control+offset, c.End+offset
	gc.MoveTo(s.X(), s.Y())
	gc.QuadraticTo(k.X(), k.Y(), e.X(), e.Y())
	return applyStyle(gc, c.Style)
}

// hit samples the curve; curves are thin and hit-testing is approximate.
func (c *Curve) hit(p pipes.Pair) bool {
	const n = 32
	prev := c.Start
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		q := pipes.Lerp(pipes.Lerp(c.Start, c.Control, t), pipes.Lerp(c.Control, c.End, t), t)
		if segmentDist(p, prev, q) <= hitTolerance {
			return true
		}
		prev = q
	}
	return false
}
