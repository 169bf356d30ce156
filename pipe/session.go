package pipe

import (
	"fmt"
	"math"

	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/bezier"
	"github.com/npillmayer/pipes/panel"
	"github.com/npillmayer/pipes/scene"
)

// State is the play state of a session.
type State int

// Play states.
const (
	Playing State = iota
	Stopped
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Mode is the display mode of a session: either the formula evaluated at t,
// or a table of sampled points with the row nearest to t highlighted.
type Mode int

// Display modes.
const (
	FormulaMode Mode = iota
	TableMode
)

func (m Mode) String() string {
	if m == FormulaMode {
		return "formula"
	}
	return "table"
}

// Sampling grid of the table.
const (
	TableStep = 0.05
	TableRows = 21
)

// Colors and sizes of the animation drawables.
const (
	traceColor   = "#dddddd"
	markerColor  = "#8e44ad"
	penColor     = "#e74c3c"
	previewColor = "#e74c3c"
	buttonColor  = "#34495e"
	markerRadius = 5
	penRadius    = 6
	buttonRadius = 8
)

// Session is an animation of the construction of a pipe's curve. It is
// created by Pipe.Animate and lives until Destroy.
//
// A session starts in state Playing and mode FormulaMode at t = 0. While
// playing, every frame advances t by the rate of the current mode, wrapping
// around at 1. Scrubbing through the slider stops the animation and sets t
// directly; both ways run the same update.
type Session struct {
	pipe      *Pipe
	layer     *scene.Layer
	q         bezier.Quadratic
	t         float64
	state     State
	mode      Mode
	last      bezier.Construction
	rows      []panel.Row
	key       string
	destroyed bool
	// drawables
	group     *scene.Group
	trace     *scene.Curve
	hull      *scene.Line
	preview   *scene.Curve
	segment   *scene.Line
	ab, bc    *scene.Circle
	pen       *scene.Circle
	toggleBtn *scene.Circle
	modeBtn   *scene.Circle
	closeBtn  *scene.Circle
}

func newSession(p *Pipe, l *scene.Layer) *Session {
	s := &Session{
		pipe:  p,
		layer: l,
		q:     p.triple.Quadratic(),
		state: Stopped,
		mode:  FormulaMode,
		key:   p.name + "/session",
	}
	s.build()
	return s
}

func (s *Session) build() {
	q := s.q
	s.group = scene.NewGroup(s.key, pipes.Origin)
	s.trace = scene.NewCurve("trace", q.Start, q.Control, q.End, scene.Style{Stroke: traceColor, StrokeWidth: 2})
	s.hull = scene.NewLine("hull", scene.Style{Stroke: hullColor, Dash: []float64{2, 3}}, q.Start, q.Control, q.End)
	s.preview = scene.NewCurve("preview", q.Start, q.Start, q.Start, scene.Style{Stroke: previewColor, StrokeWidth: 3})
	s.segment = scene.NewLine("segment", scene.Style{Stroke: markerColor, StrokeWidth: 2}, q.Start, q.Control)
	s.ab = scene.NewCircle("AB", q.Start, markerRadius, scene.Style{Fill: markerColor})
	s.bc = scene.NewCircle("BC", q.Control, markerRadius, scene.Style{Fill: markerColor})
	s.pen = scene.NewCircle("pen", q.Start, penRadius, scene.Style{Fill: penColor, Stroke: "#ffffff"})
	s.group.Add(s.trace, s.hull, s.preview, s.segment, s.ab, s.bc, s.pen)
	// buttons at the top right corner of the box
	corner := pipes.P(s.pipe.box.Max.X()+triggerGap, s.pipe.box.Min.Y())
	s.toggleBtn = s.button("toggle", corner, startColor, func() { s.Toggle() })
	s.modeBtn = s.button("mode", corner+pipes.P(0, 3*buttonRadius), controlColor, func() { s.ToggleMode() })
	s.closeBtn = s.button("close", corner+pipes.P(0, 6*buttonRadius), buttonColor, func() {
		if err := s.Destroy(); err != nil {
			tracer().Errorf("session %q: %v", s.key, err)
		}
	})
	s.layer.Add(s.group)
}

func (s *Session) button(name string, at pipes.Pair, color string, action func()) *scene.Circle {
	b := scene.NewCircle(name, at, buttonRadius, scene.Style{Fill: color, Stroke: "#ffffff"})
	b.On(scene.Click, func(scene.Event) { action() })
	s.group.Add(b)
	return b
}

// start shows the panels, renders t = 0 and starts playing.
func (s *Session) start() {
	s.pipe.panels.Slider.OnInput(s.Scrub)
	if !s.pipe.hidden {
		s.showPanels()
	}
	s.update()
	s.Play()
}

func (s *Session) showPanels() {
	pn := s.pipe.panels
	pn.Slider.Show()
	if s.mode == TableMode {
		pn.Formula.Hide()
		pn.Table.Show()
	} else {
		pn.Table.Hide()
		pn.Formula.Show()
	}
}

// Pipe returns the pipe animated by s.
func (s *Session) Pipe() *Pipe { return s.pipe }

// Layer returns the borrowed layer, or nil after Destroy.
func (s *Session) Layer() *scene.Layer {
	if s.destroyed {
		return nil
	}
	return s.layer
}

// T returns the current curve parameter.
func (s *Session) T() float64 { return s.t }

// State returns the play state.
func (s *Session) State() State { return s.state }

// Mode returns the display mode.
func (s *Session) Mode() Mode { return s.mode }

// Construction returns the construction at the current t.
func (s *Session) Construction() bezier.Construction { return s.last }

// Pen returns the pen position at the current t.
func (s *Session) Pen() pipes.Pair { return s.last.Pen }

// Rate returns the progress per frame of the current mode.
func (s *Session) Rate() float64 {
	if s.mode == TableMode {
		return s.pipe.opts.tableRate
	}
	return s.pipe.opts.formulaRate
}

// Rows returns the sample table, computed on the first switch to table mode.
func (s *Session) Rows() []panel.Row { return s.rows }

// Destroyed is a predicate: has s been destroyed?
func (s *Session) Destroyed() bool { return s.destroyed }

// Play resumes autoplay from the current t.
func (s *Session) Play() {
	if s.destroyed || s.state == Playing {
		return
	}
	s.state = Playing
	if err := s.pipe.opts.loop.Add(s.key, s.frame); err != nil {
		tracer().Errorf("session %q: %v", s.key, err)
	}
	tracer().Debugf("session %q: playing at t=%.3f", s.key, s.t)
}

// Stop halts autoplay and unregisters from the frame loop.
func (s *Session) Stop() {
	if s.destroyed || s.state == Stopped {
		return
	}
	s.state = Stopped
	s.pipe.opts.loop.Remove(s.key)
	tracer().Debugf("session %q: stopped at t=%.3f", s.key, s.t)
}

// Toggle switches between Playing and Stopped.
func (s *Session) Toggle() {
	if s.state == Playing {
		s.Stop()
	} else {
		s.Play()
	}
}

// SetMode switches the display mode. Neither t nor the pen are changed.
func (s *Session) SetMode(m Mode) {
	if s.destroyed || m == s.mode {
		return
	}
	s.mode = m
	if m == TableMode && s.rows == nil {
		s.rows = SampleTable(s.q)
		s.pipe.panels.Table.SetRows(s.rows)
	}
	if !s.pipe.hidden {
		s.showPanels()
	}
	tracer().Debugf("session %q: mode %s", s.key, m)
	s.render()
}

// ToggleMode switches between formula mode and table mode.
func (s *Session) ToggleMode() {
	if s.mode == FormulaMode {
		s.SetMode(TableMode)
	} else {
		s.SetMode(FormulaMode)
	}
}

// Scrub stops autoplay and sets t to v, clamped to [0,1]. The update is the
// same as for a frame of autoplay.
func (s *Session) Scrub(v float64) {
	if s.destroyed {
		return
	}
	s.Stop()
	s.t = pipes.Clamp01(v)
	s.update()
}

// Tick advances t by one frame while playing. It is the frame task of s.
func (s *Session) Tick() {
	if s.destroyed || s.state != Playing {
		return
	}
	s.t = math.Mod(s.t+s.Rate(), 1)
	s.update()
}

func (s *Session) frame(int) {
	s.Tick()
}

// update computes the construction at t and renders it.
func (s *Session) update() {
	s.last = bezier.Construct(s.q.Start, s.q.Control, s.q.End, s.t)
	s.render()
}

// render brings drawables and panels in line with the last construction and
// redraws the layer once.
func (s *Session) render() {
	c := s.last
	s.ab.SetPosition(c.AB)
	s.bc.SetPosition(c.BC)
	s.pen.SetPosition(c.Pen)
	s.segment.SetPoints(c.AB, c.BC)
	s.preview.SetParams(s.pipe.opts.preview.Params(s.q, c))
	pn := s.pipe.panels
	pn.Slider.SetValue(s.t)
	pn.Slider.SetLabel(fmt.Sprintf("t = %.2f", s.t))
	if s.mode == FormulaMode {
		s.pipe.renderFormula(s.q.ToTexAt(s.t))
	} else {
		pn.Table.Highlight(HighlightIndex(s.t))
	}
	if err := s.layer.Draw(); err != nil {
		tracer().Errorf("session %q: %v", s.key, err)
	}
}

// Destroy ends the session: the frame task is removed, the layer goes back to
// the pool and the pipe becomes editable again. Destroy is idempotent.
func (s *Session) Destroy() error {
	if s.destroyed {
		return nil
	}
	s.Stop()
	s.destroyed = true
	s.pipe.panels.Slider.OnInput(nil)
	err := s.pipe.opts.pool.Return(s.layer)
	s.pipe.endSession()
	tracer().Infof("session %q destroyed", s.key)
	return err
}

// SampleTable samples the pen position of q at t = 0, 0.05, …, 1.
func SampleTable(q bezier.Quadratic) []panel.Row {
	rows := make([]panel.Row, TableRows)
	for i := range rows {
		t := float64(i) / (TableRows - 1)
		rows[i] = panel.Row{T: t, Pen: bezier.Construct(q.Start, q.Control, q.End, t).Pen}
	}
	return rows
}

// HighlightIndex returns the row of the sample table nearest to t.
func HighlightIndex(t float64) int {
	return int(math.Round(t / TableStep))
}
