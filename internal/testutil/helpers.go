// Package testutil provides reusable test helper functions for curve tests.
package testutil

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-6
	LooseTolerance   = 1e-4
	NormTolerance    = 1e-4
)

// AssertSliceInDelta verifies that two slices have equal length and agree
// element-wise within tolerance.
func AssertSliceInDelta(t *testing.T, expected, actual []float32, tolerance float32, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], float64(tolerance),
			"element %d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math32.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math32.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertUnitQuaternion verifies that q[0:4] has unit length within tolerance.
func AssertUnitQuaternion(t *testing.T, q []float32, tolerance float32, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.GreaterOrEqual(t, len(q), 4, "quaternion needs 4 components") {
		return false
	}
	norm := math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	return assert.InDelta(t, float32(1), norm, float64(tolerance),
		"quaternion %v has norm %v", q[:4], norm)
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float32, minVal, maxVal float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%v is outside range [%v, %v]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%v < s[%d]=%v", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// UnitQuaternion returns the normalized rotation of angle radians about the
// given axis, in x, y, z, w order.
func UnitQuaternion(axis [3]float32, angle float32) []float32 {
	l := math32.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	s := math32.Sin(angle/2) / l
	return []float32{axis[0] * s, axis[1] * s, axis[2] * s, math32.Cos(angle / 2)}
}
