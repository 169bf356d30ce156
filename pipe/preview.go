package pipe

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/bezier"
)

// Preview decides how the part of the curve already traced by the pen is
// drawn during an animation. It returns the draw parameters of a quadratic
// curve from the construction of q at the current t.
//
// A preview is a rendering decision only; the pen position always comes from
// the construction itself.
type Preview interface {
	Name() string
	Params(q bezier.Quadratic, c bezier.Construction) (start, control, end pipes.Pair)
}

// ApproxPreview draws the curve (start, AB, BC). It is a visual approximation
// of the traced part; it ends in BC, not at the pen.
var ApproxPreview Preview = approxPreview{}

// TruncatedPreview draws the curve (start, AB, pen), which is exactly the part
// of a quadratic curve for parameters in [0,t].
var TruncatedPreview Preview = truncatedPreview{}

type approxPreview struct{}

func (approxPreview) Name() string { return "approx" }

func (approxPreview) Params(q bezier.Quadratic, c bezier.Construction) (pipes.Pair, pipes.Pair, pipes.Pair) {
	return q.Start, c.AB, c.BC
}

type truncatedPreview struct{}

func (truncatedPreview) Name() string { return "exact" }

func (truncatedPreview) Params(q bezier.Quadratic, c bezier.Construction) (pipes.Pair, pipes.Pair, pipes.Pair) {
	return q.Start, c.AB, c.Pen
}

// PreviewByName returns the preview for a configuration value: "approx" or
// "exact".
func PreviewByName(name string) (Preview, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "approx":
		return ApproxPreview, nil
	case "exact", "truncated":
		return TruncatedPreview, nil
	}
	return nil, fmt.Errorf("pipe: unknown preview %q", name)
}
