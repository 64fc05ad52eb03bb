// Package quat implements the quaternion operations used by curve evaluation.
// Quaternions are stored as 4 consecutive float32 values in x, y, z, w order.
package quat

import (
	"github.com/chewxy/math32"
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// Size is the number of components in a quaternion.
const Size = 4

// nearlyParallel is the squared sine of the half angle below which slerp
// falls back to a normalized linear blend.
const nearlyParallel = 0.001

var ops = simdops.For[float32]()

// Dot returns the 4-component dot product of a and b.
func Dot(a, b []float32) float32 {
	return ops.DotProductUnsafe(a[:Size], b[:Size])
}

// Length returns the Euclidean norm of q.
func Length(q []float32) float32 {
	return math32.Sqrt(Dot(q, q))
}

// Normalize scales q to unit length in place. A zero quaternion becomes identity.
func Normalize(q []float32) {
	l := Length(q)
	if l == 0 {
		q[0], q[1], q[2], q[3] = 0, 0, 0, 1
		return
	}
	ops.Scale(q[:Size], q[:Size], 1/l)
}

// Slerp writes the spherical linear interpolation from a to b at t into dst.
// The shorter arc is taken. t is not clamped: values outside [0,1] continue
// along the same great circle, so unit inputs always produce unit output.
// dst may alias a or b.
func Slerp(dst, a, b []float32, t float32) {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]

	if t == 0 {
		dst[0], dst[1], dst[2], dst[3] = ax, ay, az, aw
		return
	}
	if t == 1 {
		dst[0], dst[1], dst[2], dst[3] = bx, by, bz, bw
		return
	}

	cosHalfTheta := Dot(a, b)
	if cosHalfTheta < 0 {
		bx, by, bz, bw = -bx, -by, -bz, -bw
		cosHalfTheta = -cosHalfTheta
	}

	if cosHalfTheta >= 1 {
		dst[0], dst[1], dst[2], dst[3] = ax, ay, az, aw
		return
	}

	sqrSinHalfTheta := 1 - cosHalfTheta*cosHalfTheta
	if sqrSinHalfTheta < nearlyParallel {
		s := 1 - t
		dst[0] = s*ax + t*bx
		dst[1] = s*ay + t*by
		dst[2] = s*az + t*bz
		dst[3] = s*aw + t*bw
		Normalize(dst)
		return
	}

	sinHalfTheta := math32.Sqrt(sqrSinHalfTheta)
	halfTheta := math32.Atan2(sinHalfTheta, cosHalfTheta)
	ratioA := math32.Sin((1-t)*halfTheta) / sinHalfTheta
	ratioB := math32.Sin(t*halfTheta) / sinHalfTheta

	dst[0] = ax*ratioA + bx*ratioB
	dst[1] = ay*ratioA + by*ratioB
	dst[2] = az*ratioA + bz*ratioB
	dst[3] = aw*ratioA + bw*ratioB
}
