package scene

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/npillmayer/pipes"
)

// Layer is a top-level container of nodes with its own raster. A layer is
// rasterized only on an explicit call to Draw.
type Layer struct {
	root   *Group
	stage  *Stage
	hidden bool
	gc     *gg.Context
	img    image.Image
	draws  int
	drag   *dragState
}

type dragState struct {
	node Node
	grab pipes.Pair // pointer position relative to the node's absolute position
}

// Name returns the name of a layer.
func (l *Layer) Name() string { return l.root.name }

// Stage returns the stage l belongs to.
func (l *Layer) Stage() *Stage { return l.stage }

// Visible is a predicate: is l composited by its stage?
func (l *Layer) Visible() bool { return !l.hidden }

// Show makes l visible.
func (l *Layer) Show() { l.hidden = false }

// Hide makes l invisible.
func (l *Layer) Hide() { l.hidden = true }

// Add puts nodes onto the layer.
func (l *Layer) Add(nodes ...Node) {
	l.root.Add(nodes...)
}

// Remove takes a node off the layer.
func (l *Layer) Remove(n Node) {
	l.root.Remove(n)
}

// Children returns the top-level nodes of l.
func (l *Layer) Children() []Node {
	return l.root.Children()
}

// DestroyChildren removes every node from l and cancels a running drag.
func (l *Layer) DestroyChildren() {
	l.root.DestroyChildren()
	l.drag = nil
}

// DrawCount returns the number of times l has been rasterized.
func (l *Layer) DrawCount() int { return l.draws }

// Image returns the raster of the last Draw, or nil.
func (l *Layer) Image() image.Image { return l.img }

// Draw rasterizes the visible nodes of l.
func (l *Layer) Draw() error {
	if l.gc == nil {
		l.gc = gg.NewContext(l.stage.width, l.stage.height)
	}
	l.gc.Clear()
	if err := l.root.paint(l.gc, pipes.Origin); err != nil {
		return fmt.Errorf("drawing layer %q: %w", l.Name(), err)
	}
	if err := l.gc.FlushGPU(); err != nil {
		return err
	}
	l.img = l.gc.Image()
	l.draws++
	return nil
}

// clear drops the raster of l.
func (l *Layer) clear() {
	l.img = nil
	if l.gc != nil {
		l.gc.Clear()
	}
}

// HitTest returns the topmost visible node at stage position p, or nil.
func (l *Layer) HitTest(p pipes.Pair) Node {
	if l.hidden {
		return nil
	}
	return l.root.deepest(p)
}

// Dragging returns the node currently dragged, or nil.
func (l *Layer) Dragging() Node {
	if l.drag == nil {
		return nil
	}
	return l.drag.node
}

// PointerDown starts dragging the innermost draggable node at p. It returns
// false if there is none.
func (l *Layer) PointerDown(p pipes.Pair) bool {
	n := l.HitTest(p)
	for ; n != nil && n != Node(l.root); n = parentNode(n) {
		if n.Draggable() {
			break
		}
	}
	if n == nil || n == Node(l.root) {
		return false
	}
	l.drag = &dragState{node: n, grab: p - AbsolutePosition(n)}
	pos := n.Position()
	n.base().fire(n, DragStart, pos.X(), pos.Y())
	return true
}

// PointerMove moves a dragged node along with the pointer and notifies its
// DragMove listener of the new position. It returns false if nothing is
// dragged.
func (l *Layer) PointerMove(p pipes.Pair) bool {
	if l.drag == nil {
		return false
	}
	n := l.drag.node
	abs := p - l.drag.grab
	local := abs - toStage(n.Parent()).Offset()
	n.SetPosition(local)
	n.base().fire(n, DragMove, local.X(), local.Y())
	return true
}

// PointerUp ends a drag. It returns false if nothing was dragged.
func (l *Layer) PointerUp(p pipes.Pair) bool {
	if l.drag == nil {
		return false
	}
	n := l.drag.node
	l.drag = nil
	pos := n.Position()
	n.base().fire(n, DragEnd, pos.X(), pos.Y())
	return true
}

// Click dispatches a click at p to the innermost node with a click listener.
// It returns false if no listener took the click.
func (l *Layer) Click(p pipes.Pair) bool {
	for n := l.HitTest(p); n != nil && n != Node(l.root); n = parentNode(n) {
		if n.base().fire(n, Click, p.X(), p.Y()) {
			return true
		}
	}
	return false
}
