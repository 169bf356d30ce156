package scene

import (
	"errors"
	"testing"

	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teststage(t *testing.T) *Stage {
	t.Helper()
	s, err := NewStage(200, 100)
	require.NoError(t, err)
	return s
}

func TestStageSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.scene")
	defer teardown()
	_, err := NewStage(0, 10)
	assert.True(t, errors.Is(err, ErrInvalidSize))
	s := teststage(t)
	require.NoError(t, s.Resize(300, 150))
	w, h := s.Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, 150, h)
	assert.Error(t, s.Resize(-1, 5))
}

func TestDragCircle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.scene")
	defer teardown()
	s := teststage(t)
	l := s.NewLayer("edit")
	c := NewCircle("anchor", pipes.P(10, 10), 5, Style{Fill: "#ff0000"})
	c.SetDraggable(true)
	var moves []pipes.Pair
	c.On(DragMove, func(e Event) { moves = append(moves, pipes.P(e.X, e.Y)) })
	l.Add(c)
	require.True(t, l.PointerDown(pipes.P(12, 11)))
	assert.Equal(t, Node(c), l.Dragging())
	require.True(t, l.PointerMove(pipes.P(42, 31)))
	require.True(t, l.PointerUp(pipes.P(42, 31)))
	assert.Nil(t, l.Dragging())
	require.Len(t, moves, 1)
	assert.True(t, moves[0].Equal(pipes.P(40, 30)), "grab offset must be kept, got %s", moves[0])
	assert.True(t, c.Position().Equal(pipes.P(40, 30)))
	assert.False(t, l.PointerMove(pipes.P(0, 0)), "no drag after pointer up")
}

func TestDragInsideGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.scene")
	defer teardown()
	s := teststage(t)
	l := s.NewLayer("edit")
	g := NewGroup("pipe", pipes.P(100, 50))
	g.SetDraggable(true)
	a := NewCircle("a", pipes.P(0, 0), 5, Style{Fill: "#00ff00"})
	a.SetDraggable(true)
	line := NewLine("l", Style{Stroke: "#000000"}, pipes.P(-20, 20), pipes.P(20, 20))
	g.Add(line, a)
	l.Add(g)
	assert.True(t, AbsolutePosition(a).Equal(pipes.P(100, 50)))
	// anchor takes precedence over its draggable group
	require.True(t, l.PointerDown(pipes.P(101, 51)))
	assert.Equal(t, Node(a), l.Dragging())
	l.PointerMove(pipes.P(111, 61))
	l.PointerUp(pipes.P(111, 61))
	assert.True(t, a.Position().Equal(pipes.P(10, 10)), "local position, got %s", a.Position())
	// the line is not draggable, the group is
	var groupPos pipes.Pair
	g.On(DragMove, func(e Event) { groupPos = pipes.P(e.X, e.Y) })
	require.True(t, l.PointerDown(pipes.P(100, 70)))
	assert.Equal(t, Node(g), l.Dragging())
	l.PointerMove(pipes.P(90, 70))
	l.PointerUp(pipes.P(90, 70))
	assert.True(t, groupPos.Equal(pipes.P(90, 50)))
	assert.True(t, AbsolutePosition(a).Equal(pipes.P(100, 60)))
}

func TestHiddenNodesAreNotHit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.scene")
	defer teardown()
	s := teststage(t)
	l := s.NewLayer("edit")
	c := NewCircle("c", pipes.P(10, 10), 5, Style{Fill: "#000000"})
	c.SetDraggable(true)
	l.Add(c)
	c.Hide()
	assert.Nil(t, l.HitTest(pipes.P(10, 10)))
	assert.False(t, l.PointerDown(pipes.P(10, 10)))
	c.Show()
	assert.Equal(t, Node(c), l.HitTest(pipes.P(10, 10)))
	l.Hide()
	assert.Nil(t, l.HitTest(pipes.P(10, 10)))
	assert.True(t, IsShown(NewCircle("orphan", 0, 1, Style{})))
}

func TestClick(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.scene")
	defer teardown()
	s := teststage(t)
	l := s.NewLayer("edit")
	g := NewGroup("g", pipes.P(50, 50))
	trigger := NewCircle("trigger", pipes.P(0, 0), 6, Style{Fill: "#0000ff"})
	g.Add(trigger)
	l.Add(g)
	clicked := 0
	trigger.On(Click, func(Event) { clicked++ })
	assert.True(t, l.Click(pipes.P(52, 48)))
	assert.False(t, l.Click(pipes.P(5, 5)))
	assert.Equal(t, 1, clicked)
	trigger.Off(Click)
	assert.False(t, l.Click(pipes.P(52, 48)))
}

func TestOutlineRectIsNotHit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.scene")
	defer teardown()
	r := NewRect("box", polygon.Rect{Min: pipes.P(0, 0), Max: pipes.P(10, 10)}, Style{Stroke: "#cccccc"})
	assert.False(t, r.hit(pipes.P(5, 5)))
	r.SetPosition(pipes.P(20, 20))
	assert.True(t, r.Box.Max.Equal(pipes.P(30, 30)))
}

func TestDrawAndComposite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.scene")
	defer teardown()
	s := teststage(t)
	defer s.Close()
	l := s.NewLayer("edit")
	l.Add(NewCircle("dot", pipes.P(50, 50), 10, Style{Fill: "#000000"}))
	l.Add(NewCurve("curve", pipes.P(0, 0), pipes.P(100, 0), pipes.P(100, 100), Style{Stroke: "#ff0000", StrokeWidth: 2}))
	require.NoError(t, l.Draw())
	assert.Equal(t, 1, l.DrawCount())
	img := s.Composite()
	r, g, b, _ := img.At(50, 50).RGBA()
	assert.Less(t, r+g+b, uint32(3*0x8000), "center of dot should be dark")
	r, g, b, _ = img.At(190, 5).RGBA()
	assert.Equal(t, uint32(3*0xffff), r+g+b, "background should be white")
	l.Hide()
	r, _, _, _ = s.Composite().At(50, 50).RGBA()
	assert.Equal(t, uint32(0xffff), r, "hidden layers are not composited")
	thumb := s.Thumbnail(20, 10)
	assert.Equal(t, 20, thumb.Bounds().Dx())
}

func TestPoolBorrowReturn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.scene")
	defer teardown()
	s := teststage(t)
	pool := NewPool(s, 2)
	l1, err := pool.Borrow()
	require.NoError(t, err)
	l2, err := pool.Borrow()
	require.NoError(t, err)
	assert.NotSame(t, l1, l2)
	assert.Equal(t, 2, pool.InUse())
	_, err = pool.Borrow()
	assert.True(t, errors.Is(err, ErrPoolExhausted))
	l1.Add(NewCircle("x", 0, 1, Style{}))
	require.NoError(t, pool.Return(l1))
	assert.False(t, l1.Visible())
	assert.Empty(t, l1.Children())
	assert.True(t, errors.Is(pool.Return(l1), ErrNotBorrowed), "double return")
	l3, err := pool.Borrow()
	require.NoError(t, err)
	assert.Same(t, l1, l3, "returned layers are recycled")
	assert.True(t, l3.Visible())
	assert.Len(t, s.Layers(), 2, "pool creates no more than capacity layers")
	other := teststage(t).NewLayer("foreign")
	assert.True(t, errors.Is(pool.Return(other), ErrForeignLayer))
}

func TestTextPicture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.scene")
	defer teardown()
	s := teststage(t)
	l := s.NewLayer("labels")
	txt := NewText("label", pipes.P(10, 10), "t = 0.25", Style{Fill: "#000000"})
	l.Add(txt)
	require.NotNil(t, txt.Image())
	assert.Equal(t, 8*7, txt.Image().Bounds().Dx())
	assert.Equal(t, Node(txt), l.HitTest(pipes.P(12, 12)))
	assert.Nil(t, l.HitTest(pipes.P(5, 5)))
	require.NoError(t, l.Draw())
	empty := NewPicture("empty", 0, nil)
	assert.False(t, empty.hit(0))
}
