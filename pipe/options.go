package pipe

import (
	"github.com/npillmayer/pipes/frame"
	"github.com/npillmayer/pipes/scene"
	"github.com/npillmayer/pipes/typeset"
)

// Default rates of progress per frame. Table mode is slower, so that the
// highlighted row does not skip rows of the 0.05 sampling grid.
const (
	DefaultFormulaRate = 0.005
	DefaultTableRate   = 0.002
)

// Option configures a pipe.
type Option func(*options)

type options struct {
	name        string
	formulaRate float64
	tableRate   float64
	preview     Preview
	typesetter  typeset.Typesetter
	pool        *scene.Pool
	loop        *frame.Loop
}

func defaultOptions() options {
	return options{
		formulaRate: DefaultFormulaRate,
		tableRate:   DefaultTableRate,
		preview:     ApproxPreview,
		typesetter:  typeset.Plain{},
	}
}

// WithName sets the name of a pipe. Names must be unique per frame loop.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithRates sets the progress per frame for formula mode and table mode.
// Non-positive rates are ignored.
func WithRates(formula, table float64) Option {
	return func(o *options) {
		if formula > 0 {
			o.formulaRate = formula
		}
		if table > 0 {
			o.tableRate = table
		}
	}
}

// WithPreview sets the preview renderer of animation sessions.
func WithPreview(p Preview) Option {
	return func(o *options) {
		if p != nil {
			o.preview = p
		}
	}
}

// WithTypesetter sets the typesetter for the formula panel.
func WithTypesetter(ts typeset.Typesetter) Option {
	return func(o *options) {
		if ts != nil {
			o.typesetter = ts
		}
	}
}

// WithPool sets the pool animation sessions borrow their layers from.
// Without a pool, Animate fails with ErrNoLayer.
func WithPool(pool *scene.Pool) Option {
	return func(o *options) { o.pool = pool }
}

// WithLoop sets the frame loop. Without it, a pipe creates a loop of its own,
// available through Pipe.Loop.
func WithLoop(loop *frame.Loop) Option {
	return func(o *options) { o.loop = loop }
}
