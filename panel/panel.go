/*
Package panel provides the host containers a pipe populates: a formula panel,
a slider panel with a range value, a label and an input listener, and a table
panel with a row body.

Panels are owned by the host and handed to a pipe at creation time. Panels
are positioned in stage coordinates and may be rendered to images for
compositing onto the stage.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package panel

import (
	"image"

	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/typeset"
	"github.com/npillmayer/schuko/tracing"
	xdraw "golang.org/x/image/draw"
)

// tracer traces with key 'pipes.panel'
func tracer() tracing.Trace {
	return tracing.Select("pipes.panel")
}

// Container holds the properties common to all panels.
type Container struct {
	name   string
	pos    pipes.Pair
	hidden bool
	writes int
}

// Name returns the name of the panel.
func (c *Container) Name() string { return c.name }

// Position returns the top-left corner of the panel in stage coordinates.
func (c *Container) Position() pipes.Pair { return c.pos }

// SetPosition moves the panel. Every call counts as a position write.
func (c *Container) SetPosition(p pipes.Pair) {
	c.pos = p
	c.writes++
}

// PositionWrites returns the number of calls to SetPosition so far.
func (c *Container) PositionWrites() int { return c.writes }

// Visible is a predicate: is the panel shown?
func (c *Container) Visible() bool { return !c.hidden }

// Show makes the panel visible.
func (c *Container) Show() { c.hidden = false }

// Hide makes the panel invisible.
func (c *Container) Hide() { c.hidden = true }

// Panel is the common interface of formula, slider and table panels.
type Panel interface {
	Name() string
	Position() pipes.Pair
	SetPosition(pipes.Pair)
	Visible() bool
	Show()
	Hide()
	Render() image.Image
}

// Set groups the three panels of one pipe. Missing panels are nil.
type Set struct {
	Formula *Formula
	Slider  *Slider
	Table   *Table
}

// NewSet creates a complete set of hidden panels, named after prefix.
func NewSet(prefix string) Set {
	s := Set{
		Formula: NewFormula(prefix + "-formula"),
		Slider:  NewSlider(prefix + "-slider"),
		Table:   NewTable(prefix + "-table"),
	}
	s.Formula.Hide()
	s.Slider.Hide()
	s.Table.Hide()
	return s
}

// Missing returns the names of the panels which are nil.
func (s Set) Missing() []string {
	var missing []string
	if s.Formula == nil {
		missing = append(missing, "formula")
	}
	if s.Slider == nil {
		missing = append(missing, "slider")
	}
	if s.Table == nil {
		missing = append(missing, "table")
	}
	return missing
}

// Panels returns the non-nil panels of s.
func (s Set) Panels() []Panel {
	var ps []Panel
	if s.Formula != nil {
		ps = append(ps, s.Formula)
	}
	if s.Slider != nil {
		ps = append(ps, s.Slider)
	}
	if s.Table != nil {
		ps = append(ps, s.Table)
	}
	return ps
}

// renderLines rasterizes lines of text below each other.
func renderLines(lines ...string) *image.RGBA {
	ts := typeset.Raster{Padding: 1}
	imgs := make([]*image.RGBA, len(lines))
	w, h := 1, 1
	for i, l := range lines {
		imgs[i] = ts.Image(l)
		if dx := imgs[i].Bounds().Dx(); dx > w {
			w = dx
		}
		h += imgs[i].Bounds().Dy()
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	y := 0
	for _, img := range imgs {
		r := img.Bounds().Add(image.Pt(0, y))
		xdraw.Draw(dst, r, img, image.Point{}, xdraw.Over)
		y += img.Bounds().Dy()
	}
	return dst
}
