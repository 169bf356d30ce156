/*
Package pipe implements pipes: interactive quadratic Bezier curves with three
draggable anchors, and their animation sessions replaying the construction of
de Casteljau.

A Pipe is created on an editing layer from a ControlTriple and the panels the
host provides for it. Its anchors may be dragged with the pointer, or moved
programmatically:

	p, err := pipe.New(layer, triple, panels, pipe.WithPool(pool), pipe.WithLoop(loop))
	p.BeginEdit(pipe.Control)
	p.MoveAnchor(pipe.Control, pipes.P(60, 10))
	p.EndEdit()

Calling Animate starts a Session. The session borrows an overlay layer from
the pool, hides the editable drawables of its pipe and plays the construction:
two markers moving along the control polygon, the segment between them, and
the pen point tracing the curve. Formula, slider and table panels are kept in
sync with the curve parameter t. While a session is active the control points
of its pipe are read-only.

Everything in this package is single-threaded. Time advances only by ticks of
the frame loop.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pipe

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pipes.pipe'
func tracer() tracing.Trace {
	return tracing.Select("pipes.pipe")
}

var (
	// ErrMissingContainer is returned if a panel is missing at construction.
	ErrMissingContainer = errors.New("pipe: missing container")
	// ErrAnimating is returned for edits while an animation session is active.
	ErrAnimating = errors.New("pipe: control points are read-only while animating")
	// ErrNoLayer is returned if no overlay layer can be borrowed.
	ErrNoLayer = errors.New("pipe: no animation layer available")
	// ErrInvalidAnchor is returned for operations on an invalid anchor.
	ErrInvalidAnchor = errors.New("pipe: invalid anchor")
)
