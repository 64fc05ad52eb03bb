package keyframe

import (
	"github.com/tphakala/go-keyframe/internal/easing"
	"github.com/tphakala/go-keyframe/internal/quat"
)

// cubicBasis holds the four weights of a cubic basis evaluated at one t.
type cubicBasis [4]float32

func (b *cubicBasis) combine(p0, p1, p2, p3 float32) float32 {
	return b[0]*p0 + b[1]*p1 + b[2]*p2 + b[3]*p3
}

// bernsteinBasis returns the cubic Bernstein weights for control points
// ordered start, out tangent, in tangent, end.
func bernsteinBasis(t float32) cubicBasis {
	s := 1 - t
	s2 := s * s
	t2 := t * t
	return cubicBasis{
		s2 * s,
		bezierBasisMultiplier * t * s2,
		bezierBasisMultiplier * t2 * s,
		t2 * t,
	}
}

// hermiteBasis returns the cubic Hermite weights for control points ordered
// start, out tangent, in tangent, end.
func hermiteBasis(t float32) cubicBasis {
	t2 := t * t
	t3 := t2 * t
	return cubicBasis{
		hermiteBasisCubic*t3 - hermiteBasisQuadratic*t2 + 1, // h00
		t3 - hermiteBasisCubic*t2 + t,                       // h10
		t3 - t2,                                             // h11
		-hermiteBasisCubic*t3 + hermiteBasisQuadratic*t2,    // h01
	}
}

// bsplineBasis returns the uniform cubic B-spline weights for control points
// ordered previous, start, end, next.
func bsplineBasis(t float32) cubicBasis {
	t2 := t * t
	t3 := t2 * t
	return cubicBasis{
		(-t3 + 3*t2 - 3*t + 1) / bsplineDivisor,
		(3*t3 - 6*t2 + 4) / bsplineDivisor,
		(-3*t3 + 3*t2 + 3*t + 1) / bsplineDivisor,
		t3 / bsplineDivisor,
	}
}

// blend evaluates the segment from -> to at fraction t, dispatching on the
// interpolation of the starting point. Direct families write dst themselves;
// easing remaps warp t and share the linear path.
func (c *Curve) blend(from, to int, t float32, dst []float32) {
	switch kind := c.types[from]; kind {
	case Bezier:
		c.blendBezier(from, to, t, dst)
		return
	case BSpline:
		c.blendBSpline(from, to, t, dst)
		return
	case Flat:
		c.blendFlat(from, to, t, dst)
		return
	case Hermite:
		c.blendHermite(from, to, t, dst)
		return
	case Smooth:
		c.blendSmooth(from, to, t, dst)
		return
	case Step:
		copy(dst, c.value(from))
		return
	case Linear:
	default:
		t = easing.Apply(kind.easingID(), t)
	}
	c.blendLinear(from, to, t, dst)
}

// blendLinear interpolates scalars linearly and slerps the quaternion block by t.
func (c *Curve) blendLinear(from, to int, t float32, dst []float32) {
	fv, tv := c.value(from), c.value(to)
	for _, r := range c.scalarRanges {
		for i := r[0]; i < r[1]; i++ {
			if fv[i] == tv[i] {
				dst[i] = fv[i]
				continue
			}
			dst[i] = fv[i] + (tv[i]-fv[i])*t
		}
	}
	c.blendQuaternion(t, fv, tv, dst)
}

// blendTangentBasis evaluates the Bezier and Hermite families, which differ
// only in their weights over start, out tangent, in tangent and end.
func (c *Curve) blendTangentBasis(b *cubicBasis, from, to int, dst []float32) {
	fv, tv := c.value(from), c.value(to)
	out, in := c.outTangent(from), c.inTangent(to)
	for _, r := range c.scalarRanges {
		for i := r[0]; i < r[1]; i++ {
			if fv[i] == tv[i] {
				dst[i] = fv[i]
				continue
			}
			dst[i] = b.combine(fv[i], out[i], in[i], tv[i])
		}
	}
	if q := c.quatOffset; q != noQuaternionOffset {
		s := b.combine(c.times[from], out[q], in[q], c.times[to])
		c.blendQuaternion(s, fv, tv, dst)
	}
}

func (c *Curve) blendBezier(from, to int, t float32, dst []float32) {
	b := bernsteinBasis(t)
	c.blendTangentBasis(&b, from, to, dst)
}

func (c *Curve) blendHermite(from, to int, t float32, dst []float32) {
	b := hermiteBasis(t)
	c.blendTangentBasis(&b, from, to, dst)
}

// blendFlat is Hermite with zero tangents, so only the endpoint terms remain.
func (c *Curve) blendFlat(from, to int, t float32, dst []float32) {
	b := hermiteBasis(t)
	h00, h01 := b[0], b[3]
	fv, tv := c.value(from), c.value(to)
	for _, r := range c.scalarRanges {
		for i := r[0]; i < r[1]; i++ {
			if fv[i] == tv[i] {
				dst[i] = fv[i]
				continue
			}
			dst[i] = h00*fv[i] + h01*tv[i]
		}
	}
	if c.quatOffset != noQuaternionOffset {
		s := h00*c.times[from] + h01*c.times[to]
		c.blendQuaternion(s, fv, tv, dst)
	}
}

// blendBSpline uses the points before from and after to as the outer control
// points. At either end of the curve the segment endpoint stands in for the
// missing neighbour.
func (c *Curve) blendBSpline(from, to int, t float32, dst []float32) {
	last := c.pointCount - 1
	prev, next := from, to
	if from > 0 {
		prev = from - 1
	}
	if to < last {
		next = to + 1
	}

	b := bsplineBasis(t)
	pv, fv, tv, nv := c.value(prev), c.value(from), c.value(to), c.value(next)
	for _, r := range c.scalarRanges {
		for i := r[0]; i < r[1]; i++ {
			if fv[i] == tv[i] {
				dst[i] = fv[i]
				continue
			}
			dst[i] = b.combine(pv[i], fv[i], tv[i], nv[i])
		}
	}

	if c.quatOffset != noQuaternionOffset {
		// A neighbour sharing its segment endpoint's time enters negated.
		ft, tt := c.times[from], c.times[to]
		prevTime, nextTime := c.times[prev], c.times[next]
		switch {
		case prevTime == ft:
			prevTime = -prevTime
		case nextTime == tt:
			nextTime = -nextTime
		}
		s := b.combine(prevTime, ft, tt, nextTime)
		c.blendQuaternion(s, fv, tv, dst)
	}
}

// blendSmooth is Hermite with tangents taken from the chords to the
// neighbouring points, scaled by the relative segment durations. The first
// and last segments use the segment chord itself.
func (c *Curve) blendSmooth(from, to int, t float32, dst []float32) {
	last := c.pointCount - 1
	ft, tt := c.times[from], c.times[to]

	// Chord endpoints and duration ratios are shared by all components. A
	// neighbour spanning zero time (possible on a loop segment) is ignored.
	prev, next := from, to
	outScale, inScale := float32(1), float32(1)
	if from > 0 {
		pt := c.times[from-1]
		if d := tt - pt; d != 0 {
			prev = from - 1
			outScale = (ft - pt) / d
		}
	}
	if to < last {
		nt := c.times[to+1]
		if d := nt - ft; d != 0 {
			next = to + 1
			inScale = (tt - ft) / d
		}
	}

	b := hermiteBasis(t)
	fv, tv := c.value(from), c.value(to)
	pv, nv := c.value(prev), c.value(next)
	for _, r := range c.scalarRanges {
		for i := r[0]; i < r[1]; i++ {
			if fv[i] == tv[i] {
				dst[i] = fv[i]
				continue
			}
			out := (tv[i] - pv[i]) * outScale
			in := (nv[i] - fv[i]) * inScale
			dst[i] = b.combine(fv[i], out, in, tv[i])
		}
	}

	if c.quatOffset != noQuaternionOffset {
		out := (tt - c.times[prev]) * outScale
		in := (c.times[next] - ft) * inScale
		s := b.combine(ft, out, in, tt)
		c.blendQuaternion(s, fv, tv, dst)
	}
}

// blendQuaternion slerps the quaternion block of fv toward tv by s. A
// negative s slerps from tv toward fv instead.
func (c *Curve) blendQuaternion(s float32, fv, tv, dst []float32) {
	q := c.quatOffset
	if q == noQuaternionOffset {
		return
	}
	end := q + quaternionComponents
	if s >= 0 {
		quat.Slerp(dst[q:end], fv[q:end], tv[q:end], s)
		return
	}
	quat.Slerp(dst[q:end], tv[q:end], fv[q:end], s)
}
