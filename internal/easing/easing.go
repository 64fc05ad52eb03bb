// Package easing implements the closed-form easing remaps used by curve
// segments. Each remap maps a segment fraction t in [0,1] to a warped t'
// that is then fed to a plain linear blend.
package easing

import (
	"github.com/chewxy/math32"
)

// Func remaps a segment fraction.
type Func func(t float32) float32

// ID identifies one easing remap. The order is shape-major and matches the
// direction suffixes In, Out, InOut, OutIn.
type ID int

const (
	QuadraticIn ID = iota
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

	// Count is the number of remaps.
	Count
)

var table = [Count]Func{
	QuadraticIn:      quadraticIn,
	QuadraticOut:     quadraticOut,
	QuadraticInOut:   quadraticInOut,
	QuadraticOutIn:   quadraticOutIn,
	CubicIn:          cubicIn,
	CubicOut:         cubicOut,
	CubicInOut:       cubicInOut,
	CubicOutIn:       cubicOutIn,
	QuarticIn:        quarticIn,
	QuarticOut:       quarticOut,
	QuarticInOut:     quarticInOut,
	QuarticOutIn:     quarticOutIn,
	QuinticIn:        quinticIn,
	QuinticOut:       quinticOut,
	QuinticInOut:     quinticInOut,
	QuinticOutIn:     quinticOutIn,
	SineIn:           sineIn,
	SineOut:          sineOut,
	SineInOut:        sineInOut,
	SineOutIn:        sineOutIn,
	ExponentialIn:    exponentialIn,
	ExponentialOut:   exponentialOut,
	ExponentialInOut: exponentialInOut,
	ExponentialOutIn: exponentialOutIn,
	CircularIn:       circularIn,
	CircularOut:      circularOut,
	CircularInOut:    circularInOut,
	CircularOutIn:    circularOutIn,
	ElasticIn:        elasticIn,
	ElasticOut:       elasticOut,
	ElasticInOut:     elasticInOut,
	ElasticOutIn:     elasticOutIn,
	OvershootIn:      overshootIn,
	OvershootOut:     overshootOut,
	OvershootInOut:   overshootInOut,
	OvershootOutIn:   overshootOutIn,
	BounceIn:         bounceIn,
	BounceOut:        bounceOut,
	BounceInOut:      bounceInOut,
	BounceOutIn:      bounceOutIn,
}

// Lookup returns the remap for id, or nil when id is out of range.
func Lookup(id ID) Func {
	if id < 0 || id >= Count {
		return nil
	}
	return table[id]
}

// Apply remaps t with the easing id. It panics when id is out of range.
func Apply(id ID, t float32) float32 {
	return table[id](t)
}

// Polynomial families

func quadraticIn(t float32) float32 {
	return t * t
}

func quadraticOut(t float32) float32 {
	return -t * (t - 2)
}

func quadraticInOut(t float32) float32 {
	tx2 := t * 2
	if tx2 < 1 {
		return half * tx2 * tx2
	}
	tx2--
	return half * (-(tx2 * (tx2 - 2)) + 1)
}

func quadraticOutIn(t float32) float32 {
	if t < half {
		return 2 * t * (1 - t)
	}
	return 1 + 2*t*(t-1)
}

func cubicIn(t float32) float32 {
	return t * t * t
}

func cubicOut(t float32) float32 {
	t--
	return t*t*t + 1
}

func cubicInOut(t float32) float32 {
	t *= 2
	if t < 1 {
		return t * t * t * half
	}
	t -= 2
	return (t*t*t + 2) * half
}

func cubicOutIn(t float32) float32 {
	t = 2*t - 1
	return (t*t*t + 1) * half
}

func quarticIn(t float32) float32 {
	return t * t * t * t
}

func quarticOut(t float32) float32 {
	t--
	return -(t * t * t * t) + 1
}

func quarticInOut(t float32) float32 {
	t *= 2
	if t < 1 {
		return half * t * t * t * t
	}
	t -= 2
	return -half * (t*t*t*t - 2)
}

func quarticOutIn(t float32) float32 {
	t = t*2 - 1
	if t < 0 {
		return -half*(t*t*t*t) + half
	}
	return half*(t*t*t*t) + half
}

func quinticIn(t float32) float32 {
	return t * t * t * t * t
}

func quinticOut(t float32) float32 {
	t--
	return t*t*t*t*t + 1
}

func quinticInOut(t float32) float32 {
	t *= 2
	if t < 1 {
		return half * t * t * t * t * t
	}
	t -= 2
	return half * (t*t*t*t*t + 2)
}

func quinticOutIn(t float32) float32 {
	t = t*2 - 1
	return half * (t*t*t*t*t + 1)
}

// Trigonometric and exponential families

func sineIn(t float32) float32 {
	return -(math32.Cos(t*halfPi) - 1)
}

func sineOut(t float32) float32 {
	return math32.Sin(t * halfPi)
}

func sineInOut(t float32) float32 {
	return -half * (math32.Cos(pi*t) - 1)
}

func sineOutIn(t float32) float32 {
	if t < half {
		return half * math32.Sin(pi*t)
	}
	return -half*math32.Cos(halfPi*(2*t-1)) + 1
}

func exponentialIn(t float32) float32 {
	if t == 0 {
		return t
	}
	return math32.Exp(expRate * (t - 1))
}

func exponentialOut(t float32) float32 {
	if t == 1 {
		return t
	}
	return -math32.Exp(-expRate*t) + 1
}

func exponentialInOut(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	if t < half {
		return half * math32.Exp(expRate*(2*t-1))
	}
	return -half*math32.Exp(expRate*(-2*t+1)) + 1
}

func exponentialOutIn(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	if t < half {
		return -half*math32.Exp(-2*expRate*t) + half
	}
	return half*math32.Exp(2*expRate*(t-1)) + half
}

func circularIn(t float32) float32 {
	return -(math32.Sqrt(1-t*t) - 1)
}

func circularOut(t float32) float32 {
	t--
	return math32.Sqrt(1 - t*t)
}

func circularInOut(t float32) float32 {
	t *= 2
	if t < 1 {
		return half * (-math32.Sqrt(1-t*t) + 1)
	}
	t -= 2
	return half * (math32.Sqrt(1-t*t) + 1)
}

func circularOutIn(t float32) float32 {
	t = t*2 - 1
	if t < 0 {
		return half * math32.Sqrt(1-t*t)
	}
	return -half*(math32.Sqrt(1-t*t)-1) + half
}

// Elastic, overshoot and bounce families

func elasticIn(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	t--
	return -(math32.Exp(expRate*t) * math32.Sin((t-elasticShift)*twoPi/elasticPeriod))
}

func elasticOut(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	return math32.Exp(-expRate*t)*math32.Sin((t-elasticShift)*twoPi/elasticPeriod) + 1
}

func elasticInOut(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	t = 2*t - 1
	if t < 0 {
		return -half * (math32.Exp(expRate*t) * math32.Sin((t-elasticShiftInOut)*twoPi/elasticPeriodInOut))
	}
	return half*math32.Exp(-expRate*t)*math32.Sin((t-elasticShiftInOut)*twoPi/elasticPeriodInOut) + 1
}

func elasticOutIn(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	t *= 2
	if t < 1 {
		return half*(math32.Exp(-expRate*t)*math32.Sin((t-elasticShiftInOut)*twoPi/elasticPeriodInOut)) + half
	}
	return half*(math32.Exp(expRate*(t-2))*math32.Sin((t-elasticShiftInOut)*twoPi/elasticPeriodInOut)) + half
}

func overshootIn(t float32) float32 {
	return t * t * ((overshoot+1)*t - overshoot)
}

func overshootOut(t float32) float32 {
	t--
	return t*t*((overshoot+1)*t+overshoot) + 1
}

func overshootInOut(t float32) float32 {
	t *= 2
	if t < 1 {
		return half * t * t * ((overshootInOut+1)*t - overshootInOut)
	}
	t -= 2
	return half * (t*t*((overshootInOut+1)*t+overshootInOut) + 2)
}

func overshootOutIn(t float32) float32 {
	t = t*2 - 1
	if t < 0 {
		return half * (t*t*((overshoot+1)*t+overshoot) + 1)
	}
	return half * (t*t*((overshoot+1)*t-overshoot) + 1)
}

// bounce is the shared out-bounce shape on [0,1].
func bounce(t float32) float32 {
	switch {
	case t < bounceStep1:
		return bounceScale * t * t
	case t < bounceStep2:
		t -= bounceCenter2
		return bounceScale*t*t + bounceLift2
	case t < bounceStep3:
		t -= bounceCenter3
		return bounceScale*t*t + bounceLift3
	default:
		t -= bounceCenter4
		return bounceScale*t*t + bounceLift4
	}
}

func bounceIn(t float32) float32 {
	return 1 - bounce(1-t)
}

func bounceOut(t float32) float32 {
	return bounce(t)
}

func bounceInOut(t float32) float32 {
	if t < half {
		return (1 - bounce(1-t*2)) * half
	}
	return half*bounce(t*2-1) + half
}

func bounceOutIn(t float32) float32 {
	if t < half {
		return half * bounce(t*2)
	}
	return half*(1-bounce(2-t*2)) + half
}
