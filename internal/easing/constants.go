package easing

import "math"

// Shared numeric constants
const (
	half   = 0.5
	pi     = float32(math.Pi)
	halfPi = float32(math.Pi / 2)
	twoPi  = float32(2 * math.Pi)
)

// Exponential and elastic shape constants
const (
	expRate            = 10.0      // Exponent growth rate (e^(10(t-1)))
	elasticPeriod      = 0.3       // Oscillation period for In/Out
	elasticShift       = 0.075     // Phase shift (period / 4)
	elasticPeriodInOut = 0.45      // Oscillation period for InOut/OutIn (0.3 * 1.5)
	elasticShiftInOut  = 0.1125    // Phase shift (periodInOut / 4)
	overshoot          = 1.70158   // Overshoot amount for In/Out
	overshootInOut     = 2.5949095 // overshoot * 1.525
)

// Bounce piecewise parabola constants (Penner's bounce with 7.5625 = 121/16)
const (
	bounceScale   = 7.5625
	bounceStep1   = 1 / 2.75
	bounceStep2   = 2 / 2.75
	bounceStep3   = 2.5 / 2.75
	bounceCenter2 = 1.5 / 2.75
	bounceCenter3 = 2.25 / 2.75
	bounceCenter4 = 2.625 / 2.75
	bounceLift2   = 0.75
	bounceLift3   = 0.9375
	bounceLift4   = 0.984375
)
