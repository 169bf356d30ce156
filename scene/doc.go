/*
Package scene is a small retained-mode drawing engine: shapes and groups live
on layers, layers live on a stage. Layers are rasterized on explicit request
(Layer.Draw) with gogpu/gg and composited by the stage.

Pointer input is delivered explicitly. A layer hit-tests its visible nodes and
dispatches drag and click events to the listeners attached to them:

	c := scene.NewCircle("start", P(10,10), 8, style)
	c.SetDraggable(true)
	c.On(scene.DragMove, func(e scene.Event) { … e.X, e.Y … })
	layer.Add(c)
	layer.PointerDown(P(12,9))
	layer.PointerMove(P(40,30))   // listener receives the new position of c
	layer.PointerUp(P(40,30))

Layers used for transient overlays are taken from a Pool, a bounded arena
with exclusive checkout.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package scene

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pipes.scene'
func tracer() tracing.Trace {
	return tracing.Select("pipes.scene")
}

var (
	// ErrPoolExhausted indicates that every layer of a pool is checked out.
	ErrPoolExhausted = errors.New("layer pool exhausted")
	// ErrNotBorrowed indicates a return of a layer which is not checked out.
	ErrNotBorrowed = errors.New("layer is not borrowed from this pool")
	// ErrForeignLayer indicates a layer of a different stage.
	ErrForeignLayer = errors.New("layer belongs to a different stage")
	// ErrInvalidSize indicates a non-positive stage dimension.
	ErrInvalidSize = errors.New("stage dimensions must be positive")
)
