package keyframe

// Vec3 is a point in 3D space.
type Vec3 [3]float32

// CatmullRomSpline evaluates the uniform Catmull-Rom segment between p1 and
// p2 at t in [0,1], with p0 and p3 as the outer control points. It passes
// through p1 at t=0 and p2 at t=1.
func CatmullRomSpline(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	t2 := t * t
	t3 := t2 * t

	var r Vec3
	for i := range r {
		a := 2 * p1[i]
		b := p2[i] - p0[i]
		c := 2*p0[i] - catmullRomCubicTerm*p1[i] + catmullRomQuadraticTerm*p2[i] - p3[i]
		d := -p0[i] + 3*p1[i] - 3*p2[i] + p3[i]
		r[i] = catmullRomHalf * (a + b*t + c*t2 + d*t3)
	}
	return r
}

// BezierCurve evaluates the cubic Bezier curve with control points p0..p3 at t.
func BezierCurve(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	b := bernsteinBasis(t)

	var r Vec3
	for i := range r {
		r[i] = b.combine(p0[i], p1[i], p2[i], p3[i])
	}
	return r
}
