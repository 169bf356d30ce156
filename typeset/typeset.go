/*
Package typeset renders formulas given in TeX notation for display.

Formulas are produced by package bezier; they use a small subset of TeX math:
superscripts and 2-row column vectors. A Typesetter renders a formula into a
Target, e.g. a formula panel. Two typesetters are available:

	Plain    converts TeX to readable text, e.g. "B(t) = (1-t)²(0, 0) + …"
	Raster   additionally rasterizes the text into an image

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package typeset

import (
	"errors"
	"fmt"
	"image"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pipes.typeset'
func tracer() tracing.Trace {
	return tracing.Select("pipes.typeset")
}

var (
	// ErrNoTarget is returned when rendering without a target.
	ErrNoTarget = errors.New("typeset: no render target")
	// ErrUnknownTypesetter is returned by ByName for unknown names.
	ErrUnknownTypesetter = errors.New("typeset: unknown typesetter")
)

// Target receives the output of a typesetter. img may be nil if a typesetter
// does not produce rasterized output.
type Target interface {
	SetContent(text string, img image.Image)
}

// Typesetter is the capability of rendering a TeX formula into a target.
type Typesetter interface {
	Render(formula string, target Target) error
}

// ByName returns a typesetter for a configuration value, either "plain" or
// "raster".
func ByName(name string) (Typesetter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain":
		return Plain{}, nil
	case "raster":
		return NewRaster(0)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTypesetter, name)
}

// Plain is a typesetter producing text only.
type Plain struct{}

// Render sets the readable text of formula as the content of target.
func (Plain) Render(formula string, target Target) error {
	if target == nil {
		return ErrNoTarget
	}
	target.SetContent(Text(formula), nil)
	return nil
}

var (
	vector = regexp.MustCompile(`\\begin\{pmatrix\}(.*?)\\\\(.*?)\\end\{pmatrix\}`)
	sup    = regexp.MustCompile(`\^\{([^}]*)\}`)
)

var superscripts = map[string]string{"2": "²", "3": "³"}

var commands = strings.NewReplacer(
	`\cdot`, "·",
	`\,`, " ",
	`\left`, "",
	`\right`, "",
)

// Text converts a TeX formula to readable text:
//
//	B(t) = (1-t)^{2}\begin{pmatrix}0\\0\end{pmatrix} + …
//
// becomes
//
//	B(t) = (1-t)²(0, 0) + …
func Text(formula string) string {
	s := vector.ReplaceAllString(formula, "($1, $2)")
	s = sup.ReplaceAllStringFunc(s, func(m string) string {
		exp := sup.FindStringSubmatch(m)[1]
		if u, ok := superscripts[exp]; ok {
			return u
		}
		return "^" + exp
	})
	s = commands.Replace(s)
	tracer().Debugf("typeset %q", s)
	return s
}
