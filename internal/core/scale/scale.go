// Package scale converts sizes authored against the reference design canvas
// into sizes for the display the client is currently running on.
//
// Sizes are authored against a 390x844 canvas. The short axis of the display
// is always compared with the guideline width and the long axis with the
// guideline height, so the same factors apply in portrait and landscape.
package scale

import (
	"errors"
	"fmt"
)

const (
	// GuidelineBaseWidth is the reference device width in logical pixels.
	GuidelineBaseWidth = 390
	// GuidelineBaseHeight is the reference device height in logical pixels.
	GuidelineBaseHeight = 844
	// DefaultFactor is the blend used by the moderated scales when callers
	// have no opinion.
	DefaultFactor = 0.5
)

// ErrInvalidGuideline is returned when a guideline dimension is zero or negative.
var ErrInvalidGuideline = errors.New("invalid guideline")

// Metrics are the logical pixel dimensions of the current display.
type Metrics struct {
	Width  float64 `json:"width"  yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Reference is the display the design canvas was authored against.
var Reference = Metrics{Width: GuidelineBaseWidth, Height: GuidelineBaseHeight}

// Short returns the smaller of width and height.
func (m Metrics) Short() float64 { return min(m.Width, m.Height) }

// Long returns the larger of width and height.
func (m Metrics) Long() float64 { return max(m.Width, m.Height) }

// Guideline is the reference canvas sizes are authored against.
type Guideline struct {
	Width  float64
	Height float64
}

// Validate reports whether both guideline dimensions are usable divisors.
func (g Guideline) Validate() error {
	if g.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %v", ErrInvalidGuideline, g.Width)
	}
	if g.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidGuideline, g.Height)
	}
	return nil
}

// Scaler holds the ratios for one display. It is immutable and safe for
// concurrent use.
type Scaler struct {
	short     float64
	long      float64
	guideline Guideline
}

// New returns a Scaler for m against the 390x844 reference canvas.
func New(m Metrics) *Scaler {
	return &Scaler{
		short:     m.Short(),
		long:      m.Long(),
		guideline: Guideline{Width: GuidelineBaseWidth, Height: GuidelineBaseHeight},
	}
}

// NewWithGuideline returns a Scaler for m against a custom reference canvas.
func NewWithGuideline(m Metrics, g Guideline) (*Scaler, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Scaler{short: m.Short(), long: m.Long(), guideline: g}, nil
}

// Metrics returns the short and long dimensions the scaler was built from,
// as a portrait Metrics value.
func (s *Scaler) Metrics() Metrics {
	return Metrics{Width: s.short, Height: s.long}
}

// Scale scales size linearly along the short axis.
func (s *Scaler) Scale(size float64) float64 {
	return size * s.short / s.guideline.Width
}

// VerticalScale scales size linearly along the long axis.
func (s *Scaler) VerticalScale(size float64) float64 {
	return size * s.long / s.guideline.Height
}

// ModerateScale blends between the unscaled size (factor 0) and Scale
// (factor 1). Factors outside [0, 1] over- or under-shoot and are not clamped.
func (s *Scaler) ModerateScale(size, factor float64) float64 {
	return size + (s.Scale(size)-size)*factor
}

// ModerateVerticalScale is ModerateScale using VerticalScale as the basis.
func (s *Scaler) ModerateVerticalScale(size, factor float64) float64 {
	return size + (s.VerticalScale(size)-size)*factor
}

// Font is ModerateScale; font sizes read better when damped.
func (s *Scaler) Font(size, factor float64) float64 { return s.ModerateScale(size, factor) }

// Size is Scale.
func (s *Scaler) Size(size float64) float64 { return s.Scale(size) }

// Height is VerticalScale.
func (s *Scaler) Height(size float64) float64 { return s.VerticalScale(size) }

// Width is Scale.
func (s *Scaler) Width(size float64) float64 { return s.Scale(size) }
