package scene

import (
	"github.com/gogpu/gg"
	"github.com/npillmayer/pipes"
)

// Group is a container of nodes. Children are positioned relative to the
// group's offset; moving the group moves all of its children.
type Group struct {
	node
	offset   pipes.Pair
	children []Node
}

// NewGroup creates an empty group at offset.
func NewGroup(name string, offset pipes.Pair) *Group {
	return &Group{node: node{name: name}, offset: offset}
}

// Position returns the offset of the group.
func (g *Group) Position() pipes.Pair { return g.offset }

// SetPosition moves the group.
func (g *Group) SetPosition(p pipes.Pair) { g.offset = p }

// Add appends nodes to the group. A node already contained in another group is
// moved.
func (g *Group) Add(nodes ...Node) *Group {
	for _, n := range nodes {
		if p := n.Parent(); p != nil {
			p.Remove(n)
		}
		n.base().parent = g
		g.children = append(g.children, n)
	}
	return g
}

// Remove takes a node out of the group. It is a no-op for nodes which are not
// children of g.
func (g *Group) Remove(n Node) {
	for i, c := range g.children {
		if c == n {
			g.children = append(g.children[:i], g.children[i+1:]...)
			n.base().parent = nil
			return
		}
	}
}

// Children returns the children of g, in paint order.
func (g *Group) Children() []Node {
	return g.children
}

// DestroyChildren removes all children.
func (g *Group) DestroyChildren() {
	for _, c := range g.children {
		c.base().parent = nil
	}
	g.children = g.children[:0]
}

func (g *Group) paint(gc *gg.Context, offset pipes.Pair) error {
	o := offset + g.offset
	for _, c := range g.children {
		if !c.Visible() {
			continue
		}
		if err := c.paint(gc, o); err != nil {
			return err
		}
	}
	return nil
}

// hit tests the children; a group itself has no area.
func (g *Group) hit(p pipes.Pair) bool {
	return g.deepest(p) != nil
}

// deepest returns the topmost visible descendant hit by p, where p is given in
// the coordinates of g's parent.
func (g *Group) deepest(p pipes.Pair) Node {
	local := p - g.offset
	for i := len(g.children) - 1; i >= 0; i-- {
		c := g.children[i]
		if !c.Visible() {
			continue
		}
		if sub, ok := c.(*Group); ok {
			if n := sub.deepest(local); n != nil {
				return n
			}
			continue
		}
		if c.hit(local) {
			return c
		}
	}
	return nil
}
