package keyframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-keyframe/internal/quat"
	"github.com/tphakala/go-keyframe/internal/testutil"
)

const quatTestOffset = 1

// newRotationCurve builds a 6-component curve with a quaternion block at
// component 1 and scalars around it.
func newRotationCurve(t *testing.T, kind Interpolation) *Curve {
	t.Helper()
	times := []float32{0, 0.2, 0.45, 0.8, 1}
	rotations := [][]float32{
		testutil.UnitQuaternion([3]float32{0, 1, 0}, 0),
		testutil.UnitQuaternion([3]float32{0, 1, 0}, 1.2),
		testutil.UnitQuaternion([3]float32{1, 0, 1}, 2.5),
		testutil.UnitQuaternion([3]float32{1, 1, 1}, 4.0),
		testutil.UnitQuaternion([3]float32{0, 0, 1}, 0.3),
	}

	c := NewCurve(len(times), 6)
	c.SetQuaternionOffset(quatTestOffset)
	for i := range times {
		value := make([]float32, 6)
		value[0] = float32(i)
		copy(value[quatTestOffset:], rotations[i])
		value[5] = -float32(i)

		in := []float32{0.5, 0.3, -0.2, 0.1, 0.4, -0.5}
		out := []float32{-0.5, -0.7, 0.2, 0.6, -0.1, 0.5}
		c.SetPointTangents(i, times[i], value, kind, in, out)
	}
	return c
}

// TestQuaternionUnitNorm verifies the quaternion block stays normalized for
// every interpolation, inside the domain and across the loop seam.
func TestQuaternionUnitNorm(t *testing.T) {
	for _, kind := range Interpolations() {
		t.Run(kind.String(), func(t *testing.T) {
			c := newRotationCurve(t, kind)
			dst := make([]float32, 6)
			q := dst[quatTestOffset : quatTestOffset+4]

			for i := 0; i <= 200; i++ {
				tm := float32(i) / 200
				c.Evaluate(tm, dst)
				if !testutil.AssertUnitQuaternion(t, q, testutil.NormTolerance, "time %v", tm) {
					return
				}
			}
			for i := 1; i <= 10; i++ {
				d := float32(i) / 50
				c.EvaluateRegion(1+d, 0, 1, 0.2, dst)
				testutil.AssertUnitQuaternion(t, q, testutil.NormTolerance, "after end %v", d)
				c.EvaluateRegion(-d, 0, 1, 0.2, dst)
				testutil.AssertUnitQuaternion(t, q, testutil.NormTolerance, "before start %v", d)
			}
		})
	}
}

// TestQuaternionBlockIsSlerped verifies the block follows the great arc
// while the surrounding scalars blend linearly.
func TestQuaternionBlockIsSlerped(t *testing.T) {
	a := testutil.UnitQuaternion([3]float32{0, 0, 1}, 0)
	b := testutil.UnitQuaternion([3]float32{0, 0, 1}, 2)

	c := NewCurve(2, 6)
	c.SetQuaternionOffset(quatTestOffset)
	c.SetPoint(0, 0, append(append([]float32{0}, a...), 10), Linear)
	c.SetPoint(1, 1, append(append([]float32{4}, b...), 20), Linear)

	got := sample(c, 0.25)

	want := make([]float32, 4)
	quat.Slerp(want, a, b, 0.25)
	testutil.AssertSliceInDelta(t, want, got[1:5], testutil.DefaultTolerance)
	assert.InDelta(t, 1, got[0], 1e-6)
	assert.InDelta(t, 12.5, got[5], 1e-6)

	// A quarter of the way round the z axis.
	testutil.AssertSliceInDelta(t, testutil.UnitQuaternion([3]float32{0, 0, 1}, 0.5), got[1:5], testutil.LooseTolerance)
}

// TestQuaternionParameterFollowsBasis verifies the slerp parameter of the
// spline families is the basis applied to the point times.
func TestQuaternionParameterFollowsBasis(t *testing.T) {
	a := testutil.UnitQuaternion([3]float32{1, 0, 0}, 0)
	b := testutil.UnitQuaternion([3]float32{1, 0, 0}, 1.5)

	const tm = 0.5
	tests := []struct {
		kind Interpolation
		s    float32
	}{
		// Zero tangents leave only the end time term.
		{Bezier, tm * tm * tm},
		{Hermite, 3*tm*tm - 2*tm*tm*tm},
		{Flat, 3*tm*tm - 2*tm*tm*tm},
		{Linear, tm},
		{QuadraticIn, tm * tm},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			c := NewCurve(2, 4)
			c.SetQuaternionOffset(0)
			c.SetPoint(0, 0, a, tc.kind)
			c.SetPoint(1, 1, b, Linear)

			want := make([]float32, 4)
			quat.Slerp(want, a, b, tc.s)
			testutil.AssertSliceInDelta(t, want, sample(c, tm), testutil.DefaultTolerance)
		})
	}
}

// TestBSplineQuaternionCoincidentNeighbour covers a neighbour sharing its
// segment endpoint's time: its time enters the basis negated even though it
// is a distinct point.
func TestBSplineQuaternionCoincidentNeighbour(t *testing.T) {
	a := testutil.UnitQuaternion([3]float32{1, 0, 0}, 0)
	b := testutil.UnitQuaternion([3]float32{1, 0, 0}, 1.5)

	c := NewCurve(4, 4)
	c.SetQuaternionOffset(0)
	c.SetPoint(0, 0, testutil.UnitQuaternion([3]float32{0, 1, 0}, 0.3), BSpline)
	c.SetPoint(1, 0.5, testutil.UnitQuaternion([3]float32{0, 1, 0}, 0.6), BSpline)
	c.SetPoint(2, 0.5, a, BSpline)
	c.SetPoint(3, 1, b, BSpline)

	// Segment 2 -> 3 at t=0.5 weighs (-0.5, 0.5, 1, 1) by (1, 23, 23, 1)/48.
	const s = (-0.5 + 0.5*23 + 1*23 + 1) / 48
	want := make([]float32, 4)
	quat.Slerp(want, a, b, s)
	testutil.AssertSliceInDelta(t, want, sample(c, 0.75), testutil.LooseTolerance)
}

func TestClearQuaternionOffset(t *testing.T) {
	c := NewCurve(2, 4)
	c.SetQuaternionOffset(0)
	offset, ok := c.QuaternionOffset()
	require.True(t, ok)
	assert.Equal(t, 0, offset)

	c.SetPoint(0, 0, []float32{0, 0, 0, 1}, Linear)
	c.SetPoint(1, 1, []float32{1, 0, 0, 0}, Linear)
	c.ClearQuaternionOffset()

	_, ok = c.QuaternionOffset()
	assert.False(t, ok)

	// Componentwise lerp leaves the unit sphere.
	testutil.AssertSliceInDelta(t, []float32{0.5, 0, 0, 0.5}, sample(c, 0.5), testutil.DefaultTolerance)
}
