// Package polyn is for arithmetic with univariate polynomials in the curve
// parameter t.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/pipes"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pipes.polyn'
func tracer() tracing.Trace {
	return tracing.Select("pipes.polyn")
}

// ErrNegativeExponent is returned for terms with an exponent below 0.
var ErrNegativeExponent = errors.New("term exponent must not be negative")

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅t^I
//
// with I ≥ 1.
type X struct {
	I int     // exponent of t
	C float64 // coefficient
}

// New creates a polynomial, given the constant term and further terms.
//
// Use it as
//
//	polyn.New(8, polyn.X{2,5}, polyn.X{1,2/3} )
//
// to get
//
//	P(t) = 8 + 2/3t + 5t²
func New(c float64, tms ...X) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var err error
	for _, t := range tms {
		if t.I < 0 {
			err = fmt.Errorf("%w: skipping term %g t^%d", ErrNegativeExponent, t.C, t.I)
		} else {
			p.SetTerm(t.I, p.Coeff(t.I)+t.C)
		}
	}
	return p.Zap(), err
}

// Polynomial is a type for polynomials in one variable t
//
//	c + a.1 t + a.2 t² + ... a.n tⁿ .
//
// We store the coefficients only, keyed by exponent. Index 0 is the constant
// term. Coefficients are stored in a TreeMap (sorted map), which gives us
// ascending iteration for free.
type Polynomial struct {
	Terms *treemap.Map
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.Terms.Put(0, c) // initialize with constant term (at position 0)
	return p.Zap()
}

// Linear creates the polynomial a + b⋅t.
func Linear(a, b float64) Polynomial {
	p := NewConstantPolynomial(a)
	p.SetTerm(1, b)
	return p.Zap()
}

func (p *Polynomial) checkTerms() {
	if p.Terms == nil {
		p.Terms = treemap.NewWithIntComparator()
	}
}

// SetTerm sets the coefficient for a term a.i within a Polynomial.
// For i=0, sets the constant term.
func (p Polynomial) SetTerm(i int, scale float64) Polynomial {
	p.checkTerms()
	p.Terms.Put(i, scale)
	return p
}

// Coeff gets the coefficient for term t^i.
//
// Example:
//
//	p = 1 + 3t²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) Coeff(i int) float64 {
	if p.Terms == nil {
		return 0.0
	}
	if sc, found := p.Terms.Get(i); found {
		return sc.(float64)
	}
	return 0.0
}

// Degree returns the highest exponent with a non-zero coefficient.
// The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	if p.Terms == nil || p.Terms.Empty() {
		return 0
	}
	k, _ := p.Terms.Max()
	return k.(int)
}

// Copy makes a copy of a Polynomial.
func (p Polynomial) Copy() Polynomial {
	p1 := NewConstantPolynomial(0.0) // will become our return value
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		p1.SetTerm(it.Key().(int), it.Value().(float64))
	}
	return p1
}

// Internal method: add or subtract 2 polynomials. The high level methods
// are based on this one.
func (p Polynomial) addOrSub(p2 Polynomial, doAdd bool) Polynomial {
	p1 := p.Copy()
	p2.checkTerms()
	it2 := p2.Terms.Iterator()
	for it2.Next() {
		pos2 := it2.Key().(int)
		scale2 := it2.Value().(float64)
		if pipes.Is0(scale2) {
			continue
		}
		scale1 := p1.Coeff(pos2)
		if doAdd {
			scale1 += scale2
		} else {
			scale1 -= scale2
		}
		p1.SetTerm(pos2, scale1)
	}
	return p1.Zap()
}

// Add adds two Polynomials and returns a new Polynomial.
func (p Polynomial) Add(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, true)
}

// Subtract subtracts two Polynomials and returns a new Polynomial.
func (p Polynomial) Subtract(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, false)
}

// Scale multiplies every coefficient by c.
func (p Polynomial) Scale(c float64) Polynomial {
	p1 := p.Copy()
	it := p1.Terms.Iterator()
	for it.Next() {
		p1.SetTerm(it.Key().(int), it.Value().(float64)*c)
	}
	return p1.Zap()
}

// Multiply multiplies two Polynomials term by term.
func (p Polynomial) Multiply(p2 Polynomial) Polynomial {
	p.checkTerms()
	p2.checkTerms()
	r := NewConstantPolynomial(0.0)
	it := p.Terms.Iterator()
	for it.Next() {
		i, a := it.Key().(int), it.Value().(float64)
		it2 := p2.Terms.Iterator()
		for it2.Next() {
			j, b := it2.Key().(int), it2.Value().(float64)
			r.SetTerm(i+j, r.Coeff(i+j)+a*b)
		}
	}
	tracer().Debugf("(%s) * (%s) = %s", p, p2, r)
	return r.Zap()
}

// Eval evaluates p at t, using Horner's scheme.
func (p Polynomial) Eval(t float64) float64 {
	deg := p.Degree()
	v := 0.0
	for i := deg; i >= 0; i-- {
		v = v*t + p.Coeff(i)
	}
	return v
}

// Zap eliminates all terms with coefficient=0 from a polynomial.
func (p Polynomial) Zap() Polynomial {
	p.checkTerms()
	positions := p.Terms.Keys()
	for _, pos := range positions {
		if scale, _ := p.Terms.Get(pos); pipes.Is0(scale.(float64)) {
			p.Terms.Remove(pos) // may lose constant term c
		}
	}
	if _, ok := p.Terms.Get(0); !ok {
		p.Terms.Put(0, 0.0) // set p = 0: re-introduce c
	}
	return p
}

// IsConstant checks wether
// a Polynomial is a constant, i.e. p = { c }? Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	p.checkTerms()
	return p.Coeff(0), p.Terms.Size() == 1
}

// IsValid checks if this a correctly initialized polynomial.
func (p Polynomial) IsValid() bool {
	return (p.Terms != nil)
}

// String creates a readable string representation for a Polynomial, with
// terms in ascending order and coefficients rounded to ε.
func (p Polynomial) String() string {
	var buffer bytes.Buffer
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		pos := it.Key().(int)
		scale := it.Value().(float64)
		if pos == 0 {
			buffer.WriteString(fmt.Sprintf("{ %g } ", pipes.Round(scale)))
		} else {
			buffer.WriteString(fmt.Sprintf("{ %g t^%d } ", pipes.Round(scale), pos))
		}
	}
	return buffer.String()
}

// Tex creates a TeX math representation of p, naming the variable v.
// Terms are written in ascending order, coefficients rounded to 2 decimal
// places. Terms which round to 0 are omitted.
//
// Example:
//
//	1.5 + 2t - 0.25t^{2}
func (p Polynomial) Tex(v string) string {
	var buffer bytes.Buffer
	p.checkTerms()
	it := p.Terms.Iterator()
	first := true
	for it.Next() {
		pos := it.Key().(int)
		scale := pipes.Round2(it.Value().(float64))
		if scale == 0 && (pos != 0 || p.Terms.Size() > 1) {
			continue
		}
		if first {
			if scale < 0 {
				buffer.WriteString("-")
			}
			first = false
		} else if scale < 0 {
			buffer.WriteString(" - ")
		} else {
			buffer.WriteString(" + ")
		}
		a := math.Abs(scale)
		if pos == 0 || !pipes.Is1(a) {
			buffer.WriteString(fmt.Sprintf("%g", a))
		}
		switch {
		case pos == 1:
			buffer.WriteString(v)
		case pos > 1:
			buffer.WriteString(fmt.Sprintf("%s^{%d}", v, pos))
		}
	}
	if first {
		return "0"
	}
	return buffer.String()
}
