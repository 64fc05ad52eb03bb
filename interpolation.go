package keyframe

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-keyframe/internal/easing"
)

// Interpolation identifies how a curve segment blends from its starting
// point toward the next point.
//
// The first seven families evaluate the segment directly. Every other value
// is an easing remap: the segment fraction is warped by a closed-form
// function and then blended linearly.
type Interpolation int

const (
	// Bezier blends with a cubic Bernstein basis over the start value, the
	// start point's out tangent, the end point's in tangent and the end value.
	Bezier Interpolation = iota

	// BSpline blends with a uniform cubic B-spline basis over the segment
	// endpoints and their neighbours.
	BSpline

	// Flat is Hermite interpolation with both tangents treated as zero.
	Flat

	// Hermite blends with a cubic Hermite basis using explicit tangents.
	Hermite

	// Linear blends linearly. This is the default.
	Linear

	// Smooth is Hermite interpolation with tangents derived from the chords
	// to the neighbouring points.
	Smooth

	// Step holds the start value until the next point.
	Step

	QuadraticIn
	QuadraticOut
	QuadraticInOut
	QuadraticOutIn
	CubicIn
	CubicOut
	CubicInOut
	CubicOutIn
	QuarticIn
	QuarticOut
	QuarticInOut
	QuarticOutIn
	QuinticIn
	QuinticOut
	QuinticInOut
	QuinticOutIn
	SineIn
	SineOut
	SineInOut
	SineOutIn
	ExponentialIn
	ExponentialOut
	ExponentialInOut
	ExponentialOutIn
	CircularIn
	CircularOut
	CircularInOut
	CircularOutIn
	ElasticIn
	ElasticOut
	ElasticInOut
	ElasticOutIn
	OvershootIn
	OvershootOut
	OvershootInOut
	OvershootOutIn
	BounceIn
	BounceOut
	BounceInOut
	BounceOutIn

	interpolationCount
)

// firstRemap is the first easing remap; remaps are laid out in the same
// order as easing.ID.
const firstRemap = QuadraticIn

var interpolationNames = [interpolationCount]string{
	Bezier:           "BEZIER",
	BSpline:          "BSPLINE",
	Flat:             "FLAT",
	Hermite:          "HERMITE",
	Linear:           "LINEAR",
	Smooth:           "SMOOTH",
	Step:             "STEP",
	QuadraticIn:      "QUADRATIC_IN",
	QuadraticOut:     "QUADRATIC_OUT",
	QuadraticInOut:   "QUADRATIC_IN_OUT",
	QuadraticOutIn:   "QUADRATIC_OUT_IN",
	CubicIn:          "CUBIC_IN",
	CubicOut:         "CUBIC_OUT",
	CubicInOut:       "CUBIC_IN_OUT",
	CubicOutIn:       "CUBIC_OUT_IN",
	QuarticIn:        "QUARTIC_IN",
	QuarticOut:       "QUARTIC_OUT",
	QuarticInOut:     "QUARTIC_IN_OUT",
	QuarticOutIn:     "QUARTIC_OUT_IN",
	QuinticIn:        "QUINTIC_IN",
	QuinticOut:       "QUINTIC_OUT",
	QuinticInOut:     "QUINTIC_IN_OUT",
	QuinticOutIn:     "QUINTIC_OUT_IN",
	SineIn:           "SINE_IN",
	SineOut:          "SINE_OUT",
	SineInOut:        "SINE_IN_OUT",
	SineOutIn:        "SINE_OUT_IN",
	ExponentialIn:    "EXPONENTIAL_IN",
	ExponentialOut:   "EXPONENTIAL_OUT",
	ExponentialInOut: "EXPONENTIAL_IN_OUT",
	ExponentialOutIn: "EXPONENTIAL_OUT_IN",
	CircularIn:       "CIRCULAR_IN",
	CircularOut:      "CIRCULAR_OUT",
	CircularInOut:    "CIRCULAR_IN_OUT",
	CircularOutIn:    "CIRCULAR_OUT_IN",
	ElasticIn:        "ELASTIC_IN",
	ElasticOut:       "ELASTIC_OUT",
	ElasticInOut:     "ELASTIC_IN_OUT",
	ElasticOutIn:     "ELASTIC_OUT_IN",
	OvershootIn:      "OVERSHOOT_IN",
	OvershootOut:     "OVERSHOOT_OUT",
	OvershootInOut:   "OVERSHOOT_IN_OUT",
	OvershootOutIn:   "OVERSHOOT_OUT_IN",
	BounceIn:         "BOUNCE_IN",
	BounceOut:        "BOUNCE_OUT",
	BounceInOut:      "BOUNCE_IN_OUT",
	BounceOutIn:      "BOUNCE_OUT_IN",
}

// String returns the upper-case name of the interpolation, e.g. "CUBIC_IN_OUT".
func (i Interpolation) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
	return interpolationNames[i]
}

// Valid reports whether i names a known interpolation family.
func (i Interpolation) Valid() bool {
	return i >= 0 && i < interpolationCount
}

// IsRemap reports whether i is an easing remap followed by a linear blend.
func (i Interpolation) IsRemap() bool {
	return i >= firstRemap && i < interpolationCount
}

// easingID maps a remap interpolation to its easing table entry.
func (i Interpolation) easingID() easing.ID {
	return easing.ID(i - firstRemap)
}

// Interpolations returns every supported interpolation in declaration order.
func Interpolations() []Interpolation {
	all := make([]Interpolation, interpolationCount)
	for i := range all {
		all[i] = Interpolation(i)
	}
	return all
}

// ParseInterpolation returns the interpolation with the given name.
// Matching ignores case and accepts '-' in place of '_', so "cubic-in-out"
// and "CUBIC_IN_OUT" are equivalent.
func ParseInterpolation(name string) (Interpolation, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for i, n := range interpolationNames {
		if n == normalized {
			return Interpolation(i), nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownInterpolation, name)
}
