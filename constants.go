package keyframe

import "errors"

// Common errors returned by channel construction and keyframe import.
var (
	// ErrInvalidKeyframes indicates keyframe data that cannot form a curve.
	ErrInvalidKeyframes = errors.New("invalid keyframes")

	// ErrInvalidTarget indicates a target property that cannot be animated.
	ErrInvalidTarget = errors.New("invalid animation target")

	// ErrUnknownInterpolation indicates an unrecognized interpolation name.
	ErrUnknownInterpolation = errors.New("unknown interpolation")
)

// Curve domain and size limits
const (
	curveStartTime = 0.0 // Time of the first point on a multi-point curve
	curveEndTime   = 1.0 // Time of the last point on a multi-point curve

	minCurveComponentCount = 1
	minCurvePointCount     = 1
)

// Quaternion block layout
const (
	noQuaternionOffset   = -1
	quaternionComponents = 4 // x, y, z, w
	vectorComponents     = 3 // Scale or translation
	rotateOffset         = 0 // Rotation leads the component vector
	scaleRotateOffset    = 3 // Rotation follows a 3-component scale
)

// Cubic basis coefficients
const (
	bsplineDivisor        = 6.0 // Uniform cubic B-spline normalization
	bezierBasisMultiplier = 3.0 // Middle Bernstein coefficients
	hermiteBasisCubic     = 2.0
	hermiteBasisQuadratic = 3.0

	catmullRomHalf          = 0.5
	catmullRomQuadraticTerm = 4.0
	catmullRomCubicTerm     = 5.0
)
