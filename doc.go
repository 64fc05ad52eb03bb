// Package keyframe evaluates keyframed animation curves in pure Go.
//
// A [Curve] maps normalized time in [0,1] to a fixed-size float32 vector. It
// stores a fixed set of points, each carrying a time, a value, in and out
// tangents and the interpolation used for the segment that follows it.
// Curves drive animated properties through a [Channel], which samples the
// curve into a reusable [Value] and hands it to a [Target].
//
// # Features
//
//   - Seven direct interpolation families: Bezier, BSpline, Flat, Hermite,
//     Linear, Smooth and Step
//   - Forty easing remaps (quadratic through bounce, each in four variants)
//     applied on top of linear blending
//   - Sub-region evaluation with loop blending across the seam
//   - An embedded unit quaternion block that is slerped instead of
//     interpolated per component, accelerated via github.com/tphakala/simd
//   - Import of keyframes with absolute millisecond times
//   - Allocation-free evaluation
//
// # Quick Start
//
// Build a curve by hand and sample it:
//
//	curve := keyframe.NewCurve(2, 1)
//	curve.SetPoint(0, 0, []float32{0}, keyframe.CubicInOut)
//	curve.SetPoint(1, 1, []float32{10}, keyframe.Linear)
//
//	dst := make([]float32, 1)
//	curve.Evaluate(0.5, dst) // dst[0] == 5
//
// Or import authored keyframes and bind them to a property:
//
//	kf := &keyframe.Keyframes{
//	    Times:         []uint64{0, 250, 1000},
//	    Values:        []float32{0, 4, 10},
//	    Interpolation: keyframe.Smooth,
//	}
//	ch, err := keyframe.NewKeyframeChannel(target, propertyOpacity, kf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ch.Release()
//
//	ch.Update(playhead, 0, 1, 0, 1)
//
// # Sub-regions and Looping
//
// [Curve.EvaluateRegion] plays only the slice [startTime, endTime] of a
// curve. Times outside the slice are clamped unless a loop blend time is
// given, in which case the curve blends from its last point back to its
// first over that span. All region arguments are fractions of the curve's
// domain; [Channel.Fraction] converts absolute offsets.
//
// # Rotations
//
// [Curve.SetQuaternionOffset] marks four consecutive components as an
// (x, y, z, w) unit quaternion. Those components are slerped along the
// shortest path. For the spline families the slerp parameter is derived by
// running the point times through the same basis as the values, so the
// rotation follows the curve's temporal shape.
//
// # Thread Safety
//
// Evaluation only reads the curve, so one curve may be sampled from many
// goroutines and shared by many channels. Point mutation concurrent with
// evaluation is not synchronized and must be prevented by the caller. A
// [Channel] owns its value buffer and is not safe for concurrent Update.
package keyframe
