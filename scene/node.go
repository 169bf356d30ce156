package scene

import (
	"github.com/gogpu/gg"
	"github.com/npillmayer/pipes"
)

// EventType identifies pointer events dispatched to nodes.
type EventType int

// Event types dispatched by a layer.
const (
	DragStart EventType = iota
	DragMove
	DragEnd
	Click
)

func (et EventType) String() string {
	switch et {
	case DragStart:
		return "dragstart"
	case DragMove:
		return "dragmove"
	case DragEnd:
		return "dragend"
	case Click:
		return "click"
	}
	return "<unknown event>"
}

// Event is passed to listeners. For drag events X and Y are the node's new
// position in its parent's coordinates; for clicks they are the pointer
// position on the stage.
type Event struct {
	Type   EventType
	Target Node
	X, Y   float64
}

// Listener is a callback for pointer events.
type Listener func(Event)

// Node is the common interface of everything that may be put onto a layer.
type Node interface {
	Name() string
	Visible() bool
	Show()
	Hide()
	Position() pipes.Pair
	SetPosition(pipes.Pair)
	Draggable() bool
	SetDraggable(bool)
	On(EventType, Listener)
	Off(EventType)
	Parent() *Group
	base() *node
	paint(gc *gg.Context, offset pipes.Pair) error
	hit(p pipes.Pair) bool // p in parent coordinates
}

// Style holds the paint properties of a shape. Empty colors are not painted.
type Style struct {
	Stroke      string    // hex color of the outline
	Fill        string    // hex color of the interior
	StrokeWidth float64   // defaults to 1
	Dash        []float64 // alternating dash and gap lengths
}

// node is embedded into every concrete node type.
type node struct {
	name      string
	hidden    bool
	draggable bool
	parent    *Group
	listeners map[EventType]Listener
}

func (n *node) base() *node { return n }

// Name returns the (debugging) name of a node.
func (n *node) Name() string { return n.name }

// Visible is a predicate: is this node visible? Visibility is not inherited;
// see IsShown for the effective visibility.
func (n *node) Visible() bool { return !n.hidden }

// Show makes a node visible.
func (n *node) Show() { n.hidden = false }

// Hide makes a node invisible. Invisible nodes are neither painted nor hit.
func (n *node) Hide() { n.hidden = true }

// Draggable is a predicate: will the layer start dragging this node?
func (n *node) Draggable() bool { return n.draggable }

// SetDraggable sets the draggable flag.
func (n *node) SetDraggable(d bool) { n.draggable = d }

// On attaches a listener for an event type, replacing an existing one.
func (n *node) On(et EventType, l Listener) {
	if n.listeners == nil {
		n.listeners = make(map[EventType]Listener)
	}
	n.listeners[et] = l
}

// Off detaches the listener for an event type.
func (n *node) Off(et EventType) {
	delete(n.listeners, et)
}

// Parent returns the group a node is contained in, or nil.
func (n *node) Parent() *Group { return n.parent }

func (n *node) listener(et EventType) Listener {
	if n.listeners == nil {
		return nil
	}
	return n.listeners[et]
}

func (n *node) fire(target Node, et EventType, x, y float64) bool {
	l := n.listener(et)
	if l == nil {
		return false
	}
	tracer().Debugf("%s on %q at (%g,%g)", et, n.name, x, y)
	l(Event{Type: et, Target: target, X: x, Y: y})
	return true
}

// IsShown is a predicate: are n and all of its ancestors visible?
func IsShown(n Node) bool {
	for ; n != nil; n = parentNode(n) {
		if !n.Visible() {
			return false
		}
	}
	return true
}

// AbsolutePosition returns the position of n in stage coordinates.
func AbsolutePosition(n Node) pipes.Pair {
	return toStage(n.Parent()).Transform(n.Position())
}

// toStage is the transform from g's local coordinates to stage coordinates.
func toStage(g *Group) pipes.AT {
	T := pipes.Identity()
	for ; g != nil; g = g.parent {
		T = T.Combine(pipes.Translation(g.offset))
	}
	return T
}

func parentNode(n Node) Node {
	if p := n.Parent(); p != nil {
		return p
	}
	return nil
}

func applyStyle(gc *gg.Context, st Style) error {
	if st.Fill != "" {
		gc.SetHexColor(st.Fill)
		if err := gc.FillPreserve(); err != nil {
			gc.ClearPath()
			return err
		}
	}
	if st.Stroke != "" {
		gc.SetHexColor(st.Stroke)
		w := st.StrokeWidth
		if w <= 0 {
			w = 1
		}
		gc.SetLineWidth(w)
		gc.SetDash(st.Dash...)
		err := gc.Stroke()
		gc.SetDash()
		return err
	}
	gc.ClearPath()
	return nil
}
