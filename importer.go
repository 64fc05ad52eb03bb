package keyframe

import (
	"fmt"
	"time"
)

// PropertyLayout describes how a property's components are arranged, so the
// importer knows where a rotation quaternion sits.
type PropertyLayout int

const (
	// LayoutScalar has no rotation; every component is interpolated alone.
	LayoutScalar PropertyLayout = iota

	// LayoutRotate is a lone quaternion (x, y, z, w).
	LayoutRotate

	// LayoutRotateTranslate is a quaternion followed by a translation.
	LayoutRotateTranslate

	// LayoutScaleRotate is a scale followed by a quaternion.
	LayoutScaleRotate

	// LayoutScaleRotateTranslate is scale, quaternion, then translation.
	LayoutScaleRotateTranslate
)

var layoutNames = [...]string{
	LayoutScalar:               "scalar",
	LayoutRotate:               "rotate",
	LayoutRotateTranslate:      "rotate-translate",
	LayoutScaleRotate:          "scale-rotate",
	LayoutScaleRotateTranslate: "scale-rotate-translate",
}

func (l PropertyLayout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("PropertyLayout(%d)", int(l))
	}
	return layoutNames[l]
}

// ParseLayout returns the layout with the given name, as printed by String.
func ParseLayout(name string) (PropertyLayout, error) {
	for i, n := range layoutNames {
		if n == name {
			return PropertyLayout(i), nil
		}
	}
	return LayoutScalar, fmt.Errorf("%w: unknown property layout %q", ErrInvalidTarget, name)
}

// QuaternionOffset returns the first quaternion component of the layout and
// whether it has one.
func (l PropertyLayout) QuaternionOffset() (int, bool) {
	switch l {
	case LayoutRotate, LayoutRotateTranslate:
		return rotateOffset, true
	case LayoutScaleRotate, LayoutScaleRotateTranslate:
		return scaleRotateOffset, true
	default:
		return noQuaternionOffset, false
	}
}

// ComponentCount returns the fixed component count of a transform layout,
// or 0 for LayoutScalar, which accepts any count.
func (l PropertyLayout) ComponentCount() int {
	switch l {
	case LayoutRotate:
		return quaternionComponents
	case LayoutRotateTranslate, LayoutScaleRotate:
		return quaternionComponents + vectorComponents
	case LayoutScaleRotateTranslate:
		return quaternionComponents + 2*vectorComponents
	default:
		return 0
	}
}

// Keyframes is authored animation data with absolute times.
//
// Times are in milliseconds and must be non-decreasing. Values holds
// len(Times)*componentCount floats, point after point. InValues and OutValues
// are optional tangents in the same layout.
//
// Every point uses Interpolation unless Interpolations is set, in which case
// it must hold one entry per point. Note that the zero Interpolation is
// Bezier.
type Keyframes struct {
	Times     []uint64
	Values    []float32
	InValues  []float32
	OutValues []float32

	Interpolation  Interpolation
	Interpolations []Interpolation
}

// Validate checks kf against componentCount components per point.
func (kf *Keyframes) Validate(componentCount int) error {
	n := len(kf.Times)
	if n == 0 {
		return fmt.Errorf("%w: no keyframe times", ErrInvalidKeyframes)
	}
	if componentCount < minCurveComponentCount {
		return fmt.Errorf("%w: component count %d", ErrInvalidKeyframes, componentCount)
	}

	size := n * componentCount
	if len(kf.Values) != size {
		return fmt.Errorf("%w: %d values for %d keyframes of %d components",
			ErrInvalidKeyframes, len(kf.Values), n, componentCount)
	}
	if kf.InValues != nil && len(kf.InValues) != size {
		return fmt.Errorf("%w: %d in tangents, want %d", ErrInvalidKeyframes, len(kf.InValues), size)
	}
	if kf.OutValues != nil && len(kf.OutValues) != size {
		return fmt.Errorf("%w: %d out tangents, want %d", ErrInvalidKeyframes, len(kf.OutValues), size)
	}

	if kf.Interpolations != nil {
		if len(kf.Interpolations) != n {
			return fmt.Errorf("%w: %d interpolations for %d keyframes",
				ErrInvalidKeyframes, len(kf.Interpolations), n)
		}
		for i, interp := range kf.Interpolations {
			if !interp.Valid() {
				return fmt.Errorf("%w: keyframe %d: %w: %d", ErrInvalidKeyframes, i, ErrUnknownInterpolation, int(interp))
			}
		}
	} else if !kf.Interpolation.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidKeyframes, ErrUnknownInterpolation, int(kf.Interpolation))
	}

	for i := 1; i < n; i++ {
		if kf.Times[i] < kf.Times[i-1] {
			return fmt.Errorf("%w: time %d at keyframe %d precedes %d",
				ErrInvalidKeyframes, kf.Times[i], i, kf.Times[i-1])
		}
	}
	if n > 1 && kf.Times[n-1] == kf.Times[0] {
		return fmt.Errorf("%w: keyframes span zero time", ErrInvalidKeyframes)
	}
	return nil
}

// Duration returns the span between the first and last keyframe.
func (kf *Keyframes) Duration() time.Duration {
	if len(kf.Times) == 0 {
		return 0
	}
	return time.Duration(kf.Times[len(kf.Times)-1]-kf.Times[0]) * time.Millisecond
}

func (kf *Keyframes) interpolationAt(i int) Interpolation {
	if kf.Interpolations != nil {
		return kf.Interpolations[i]
	}
	return kf.Interpolation
}

// ImportCurve builds a curve from absolute keyframes.
//
// Times are normalized to [0,1] relative to the first keyframe; the first
// and last points are pinned to exactly 0 and 1. When layout carries a
// rotation the quaternion offset is set before any point is written, and
// componentCount must match the layout.
//
// The curve is returned with one reference owned by the caller, along with
// the absolute duration the keyframes span.
func ImportCurve(kf *Keyframes, componentCount int, layout PropertyLayout) (*Curve, time.Duration, error) {
	if err := kf.Validate(componentCount); err != nil {
		return nil, 0, err
	}
	if want := layout.ComponentCount(); want != 0 && want != componentCount {
		return nil, 0, fmt.Errorf("%w: %s layout needs %d components, got %d",
			ErrInvalidTarget, layout, want, componentCount)
	}

	n := len(kf.Times)
	curve := NewCurve(n, componentCount)
	if offset, ok := layout.QuaternionOffset(); ok {
		curve.SetQuaternionOffset(offset)
	}

	lowest := kf.Times[0]
	span := float64(kf.Times[n-1] - lowest)
	for i := range n {
		var t float32
		switch {
		case n == 1 || i == 0:
			t = curveStartTime
		case i == n-1:
			t = curveEndTime
		default:
			t = float32(float64(kf.Times[i]-lowest) / span)
		}

		lo, hi := i*componentCount, (i+1)*componentCount
		var in, out []float32
		if kf.InValues != nil {
			in = kf.InValues[lo:hi]
		}
		if kf.OutValues != nil {
			out = kf.OutValues[lo:hi]
		}
		curve.SetPointTangents(i, t, kf.Values[lo:hi], kf.interpolationAt(i), in, out)
	}

	return curve, kf.Duration(), nil
}

// NewKeyframeChannel imports kf into a new curve and binds it to the given
// property of target. If target implements [LayoutTarget] its layout is
// applied to the curve.
func NewKeyframeChannel(target Target, propertyID int, kf *Keyframes) (*Channel, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrInvalidTarget)
	}
	n := target.PropertyComponentCount(propertyID)
	if n <= 0 {
		return nil, fmt.Errorf("%w: property %d has %d components", ErrInvalidTarget, propertyID, n)
	}

	layout := LayoutScalar
	if lt, ok := target.(LayoutTarget); ok {
		layout = lt.PropertyLayout(propertyID)
	}

	curve, duration, err := ImportCurve(kf, n, layout)
	if err != nil {
		return nil, err
	}
	// The channel keeps the only long-lived reference.
	defer curve.Release()

	return NewChannel(target, propertyID, curve, duration)
}
