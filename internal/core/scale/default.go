package scale

import "sync"

var (
	defaultOnce   sync.Once
	defaultScaler *Scaler
)

// Init captures the process display metrics. Only the first call has an
// effect; later calls return false and leave the captured scaler untouched,
// so a rotation after startup does not change the factors.
func Init(m Metrics) bool {
	return InitWith(New(m))
}

// InitWith is Init for a scaler built against a custom guideline.
func InitWith(s *Scaler) bool {
	captured := false
	defaultOnce.Do(func() {
		defaultScaler = s
		captured = true
	})
	return captured
}

// Default returns the process scaler. When Init was never called the
// reference display is captured, which scales every size 1:1.
func Default() *Scaler {
	Init(Reference)
	return defaultScaler
}

// Scale calls Default().Scale.
func Scale(size float64) float64 { return Default().Scale(size) }

// VerticalScale calls Default().VerticalScale.
func VerticalScale(size float64) float64 { return Default().VerticalScale(size) }

// ModerateScale calls Default().ModerateScale.
func ModerateScale(size, factor float64) float64 { return Default().ModerateScale(size, factor) }

// ModerateVerticalScale calls Default().ModerateVerticalScale.
func ModerateVerticalScale(size, factor float64) float64 {
	return Default().ModerateVerticalScale(size, factor)
}

// Aliases named by intent so call sites read as what they size.
var (
	ScaleFont   = ModerateScale
	ScaleSize   = Scale
	ScaleHeight = VerticalScale
	ScaleWidth  = Scale
)
