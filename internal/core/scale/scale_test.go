package scale

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	phone  = Metrics{Width: 360, Height: 800}
	tablet = Metrics{Width: 1024, Height: 768}
)

func resetDefault() {
	defaultOnce = sync.Once{}
	defaultScaler = nil
}

func TestMetrics_ShortLong(t *testing.T) {
	assert.InDelta(t, 360, phone.Short(), 0)
	assert.InDelta(t, 800, phone.Long(), 0)

	// Landscape swaps width and height but not short/long.
	landscape := Metrics{Width: 800, Height: 360}
	assert.InDelta(t, phone.Short(), landscape.Short(), 0)
	assert.InDelta(t, phone.Long(), landscape.Long(), 0)
}

func TestScaler_Formulas(t *testing.T) {
	s := New(phone)

	assert.InDelta(t, 16*360.0/390, s.Scale(16), 1e-9)
	assert.InDelta(t, 16*800.0/844, s.VerticalScale(16), 1e-9)
	assert.InDelta(t, 16+(16*360.0/390-16)*0.5, s.ModerateScale(16, DefaultFactor), 1e-9)
	assert.InDelta(t, 16+(16*800.0/844-16)*0.5, s.ModerateVerticalScale(16, DefaultFactor), 1e-9)
}

func TestScaler_OrientationIndependent(t *testing.T) {
	portrait := New(tablet)
	landscape := New(Metrics{Width: tablet.Height, Height: tablet.Width})

	for _, size := range []float64{1, 12, 48, 300} {
		assert.InDelta(t, portrait.Scale(size), landscape.Scale(size), 0)
		assert.InDelta(t, portrait.VerticalScale(size), landscape.VerticalScale(size), 0)
	}
}

func TestScaler_ZeroFactorIsIdentity(t *testing.T) {
	for _, m := range []Metrics{phone, tablet, Reference} {
		s := New(m)
		for _, size := range []float64{0, 1, 14.5, -2, 1000} {
			assert.InDelta(t, size, s.ModerateScale(size, 0), 0)
			assert.InDelta(t, size, s.ModerateVerticalScale(size, 0), 0)
		}
	}
}

func TestScaler_FullFactorIsLinear(t *testing.T) {
	s := New(tablet)
	assert.InDelta(t, s.Scale(20), s.ModerateScale(20, 1), 1e-9)
	assert.InDelta(t, s.VerticalScale(20), s.ModerateVerticalScale(20, 1), 1e-9)
}

func TestScaler_Linearity(t *testing.T) {
	s := New(phone)
	for _, size := range []float64{1, 3.25, 17, -8, 512} {
		assert.InDelta(t, 2*s.Scale(size), s.Scale(2*size), 1e-9)
		assert.InDelta(t, 2*s.VerticalScale(size), s.VerticalScale(2*size), 1e-9)
	}
}

func TestScaler_ReferenceIsOneToOne(t *testing.T) {
	s := New(Reference)
	for _, size := range []float64{0, 1, 13, 44.5, -2} {
		assert.InDelta(t, size, s.Scale(size), 1e-9)
		assert.InDelta(t, size, s.VerticalScale(size), 1e-9)
		assert.InDelta(t, size, s.ModerateScale(size, DefaultFactor), 1e-9)
	}
}

func TestScaler_ZeroAndNegative(t *testing.T) {
	s := New(phone)
	assert.InDelta(t, 0, s.Scale(0), 0)
	assert.InDelta(t, 0, s.VerticalScale(0), 0)
	assert.InDelta(t, -s.Scale(2), s.Scale(-2), 1e-9)
}

func TestScaler_FactorIsNotClamped(t *testing.T) {
	s := New(tablet)
	linear := s.Scale(10)

	over := s.ModerateScale(10, 2)
	assert.InDelta(t, 10+(linear-10)*2, over, 1e-9)
	assert.Greater(t, over, linear, "factor > 1 exaggerates scaling")

	under := s.ModerateScale(10, -1)
	assert.InDelta(t, 10-(linear-10), under, 1e-9)
}

func TestScaler_NonFinitePropagates(t *testing.T) {
	s := New(phone)
	assert.True(t, math.IsNaN(s.Scale(math.NaN())))
	assert.True(t, math.IsInf(s.VerticalScale(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(s.ModerateScale(10, math.NaN())))
}

func TestScaler_Aliases(t *testing.T) {
	s := New(tablet)
	for _, size := range []float64{0, 9, 21.5, -4} {
		assert.InDelta(t, s.ModerateScale(size, 0.3), s.Font(size, 0.3), 0)
		assert.InDelta(t, s.Scale(size), s.Size(size), 0)
		assert.InDelta(t, s.VerticalScale(size), s.Height(size), 0)
		assert.InDelta(t, s.Scale(size), s.Width(size), 0)
	}
}

func TestNewWithGuideline(t *testing.T) {
	t.Run("custom canvas", func(t *testing.T) {
		s, err := NewWithGuideline(phone, Guideline{Width: 360, Height: 800})
		require.NoError(t, err)
		assert.InDelta(t, 12, s.Scale(12), 1e-9)
		assert.InDelta(t, 12, s.VerticalScale(12), 1e-9)
	})

	t.Run("zero width", func(t *testing.T) {
		_, err := NewWithGuideline(phone, Guideline{Width: 0, Height: 844})
		require.ErrorIs(t, err, ErrInvalidGuideline)
	})

	t.Run("negative height", func(t *testing.T) {
		_, err := NewWithGuideline(phone, Guideline{Width: 390, Height: -1})
		require.ErrorIs(t, err, ErrInvalidGuideline)
	})
}

func TestDefault_CapturedOnce(t *testing.T) {
	resetDefault()
	t.Cleanup(resetDefault)

	assert.True(t, Init(tablet))
	assert.False(t, Init(phone), "second capture must be ignored")

	assert.Equal(t, Metrics{Width: 768, Height: 1024}, Default().Metrics())
	assert.InDelta(t, New(tablet).Scale(10), Scale(10), 0)
	assert.InDelta(t, New(tablet).VerticalScale(10), VerticalScale(10), 0)
	assert.InDelta(t, New(tablet).ModerateScale(10, 0.5), ModerateScale(10, 0.5), 0)
	assert.InDelta(t, New(tablet).ModerateVerticalScale(10, 0.5), ModerateVerticalScale(10, 0.5), 0)
}

func TestDefault_FallsBackToReference(t *testing.T) {
	resetDefault()
	t.Cleanup(resetDefault)

	assert.InDelta(t, 18, Scale(18), 1e-9)
	assert.False(t, Init(phone), "Default already captured the reference display")
}

func TestPackageAliases(t *testing.T) {
	resetDefault()
	t.Cleanup(resetDefault)
	Init(phone)

	for _, size := range []float64{0, 11, 27.5} {
		assert.InDelta(t, ModerateScale(size, 0.4), ScaleFont(size, 0.4), 0)
		assert.InDelta(t, Scale(size), ScaleSize(size), 0)
		assert.InDelta(t, VerticalScale(size), ScaleHeight(size), 0)
		assert.InDelta(t, Scale(size), ScaleWidth(size), 0)
	}
}

func TestTerminalMetrics_NotATerminal(t *testing.T) {
	_, err := TerminalMetrics(-1)
	require.Error(t, err)
}
