package panel

import (
	"fmt"
	"image"
	"strings"

	"github.com/npillmayer/pipes"
)

// Slider is a range input over [0,1] with a label. User input is delivered
// through Input, which notifies the input listener; SetValue does not.
type Slider struct {
	Container
	value   float64
	label   string
	onInput func(v float64)
}

// NewSlider creates a slider at value 0.
func NewSlider(name string) *Slider {
	return &Slider{Container: Container{name: name}}
}

// Value returns the current value of the slider.
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the value programmatically, clamped to [0,1].
func (s *Slider) SetValue(v float64) {
	s.value = pipes.Clamp01(v)
}

// Label returns the label text.
func (s *Slider) Label() string { return s.label }

// SetLabel sets the label text.
func (s *Slider) SetLabel(l string) { s.label = l }

// OnInput sets the listener for user input. A nil listener detaches it.
func (s *Slider) OnInput(l func(v float64)) { s.onInput = l }

// Input simulates user interaction: the value is set and the input listener
// is called with it.
func (s *Slider) Input(v float64) {
	s.SetValue(v)
	tracer().Debugf("slider %q: input %.3f", s.name, s.value)
	if s.onInput != nil {
		s.onInput(s.value)
	}
}

const sliderWidth = 20

// Render draws the label and a text bar of the value.
func (s *Slider) Render() image.Image {
	n := int(s.value*sliderWidth + 0.5)
	bar := fmt.Sprintf("[%s%s]", strings.Repeat("=", n), strings.Repeat("-", sliderWidth-n))
	return renderLines(s.label, bar)
}
