package scene

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Pool is a bounded arena of reusable layers. A layer is checked out by at
// most one owner at a time; layers are created lazily, up to the capacity of
// the pool, and recycled on return.
type Pool struct {
	stage    *Stage
	capacity int
	created  int
	free     *arraystack.Stack // of *Layer
	borrowed map[*Layer]bool
}

// NewPool creates a pool of at most capacity layers on stage s.
func NewPool(s *Stage, capacity int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{
		stage:    s,
		capacity: capacity,
		free:     arraystack.New(),
		borrowed: make(map[*Layer]bool),
	}
}

// Borrow checks out a visible, empty layer.
func (p *Pool) Borrow() (*Layer, error) {
	var l *Layer
	if v, ok := p.free.Pop(); ok {
		l = v.(*Layer)
	} else if p.created < p.capacity {
		p.created++
		l = p.stage.NewLayer(fmt.Sprintf("pool-%d", p.created))
	} else {
		return nil, fmt.Errorf("%w: all %d layers in use", ErrPoolExhausted, p.capacity)
	}
	p.borrowed[l] = true
	l.Show()
	tracer().Debugf("pool: borrowed layer %q, %d in use", l.Name(), len(p.borrowed))
	return l, nil
}

// Return checks a layer back in. The layer is emptied and hidden.
func (p *Pool) Return(l *Layer) error {
	if l == nil || l.stage != p.stage {
		return ErrForeignLayer
	}
	if !p.borrowed[l] {
		return fmt.Errorf("%w: %q", ErrNotBorrowed, l.Name())
	}
	delete(p.borrowed, l)
	l.DestroyChildren()
	l.clear()
	l.Hide()
	p.free.Push(l)
	tracer().Debugf("pool: returned layer %q, %d in use", l.Name(), len(p.borrowed))
	return nil
}

// InUse returns the number of checked-out layers.
func (p *Pool) InUse() int {
	return len(p.borrowed)
}

// Capacity returns the maximum number of layers.
func (p *Pool) Capacity() int {
	return p.capacity
}

// IsBorrowed is a predicate: is l currently checked out?
func (p *Pool) IsBorrowed(l *Layer) bool {
	return p.borrowed[l]
}
