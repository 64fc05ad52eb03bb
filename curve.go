package keyframe

import (
	"fmt"
	"sync/atomic"
)

// Curve is an n-dimensional keyframed function from normalized time to a
// fixed-size float32 vector.
//
// A curve has a fixed number of points and a fixed number of components per
// point, both chosen at construction. Point times are non-decreasing and, on
// a curve with more than one point, the first point sits at time 0 and the
// last at time 1. Each point stores a value, an in and out tangent (used by
// the Bezier and Hermite families) and the interpolation used for the
// segment that starts at that point.
//
// Optionally a run of 4 components can be marked as a unit quaternion with
// [Curve.SetQuaternionOffset]; those components are slerped instead of being
// interpolated one by one.
//
// Precondition violations on mutation and evaluation (bad index, time out of
// range, endpoint time changed, short slices) are programming errors and
// panic.
//
// # Thread Safety
//
// Evaluation does not modify the curve, so any number of goroutines may
// evaluate the same curve. Mutating points while another goroutine evaluates
// is a data race and must be prevented by the caller. Reference counting via
// [Curve.Retain] and [Curve.Release] is atomic.
type Curve struct {
	pointCount     int
	componentCount int

	// quatOffset is the first component of the quaternion block, or -1.
	quatOffset int

	// scalarRanges are the component ranges outside the quaternion block.
	scalarRanges [2][2]int

	// Point storage, sized once. values, inValues and outValues hold
	// componentCount floats per point.
	times     []float32
	types     []Interpolation
	values    []float32
	inValues  []float32
	outValues []float32

	refs atomic.Int32
}

// NewCurve creates a curve with pointCount points of componentCount
// components each. Every point starts with the Linear interpolation and zero
// values. On a curve with more than one point the first point is placed at
// time 0 and the last at time 1.
//
// The returned curve holds one reference owned by the caller.
func NewCurve(pointCount, componentCount int) *Curve {
	if pointCount < minCurvePointCount {
		panic(fmt.Sprintf("keyframe: point count must be at least %d, got %d", minCurvePointCount, pointCount))
	}
	if componentCount < minCurveComponentCount {
		panic(fmt.Sprintf("keyframe: component count must be at least %d, got %d", minCurveComponentCount, componentCount))
	}

	size := pointCount * componentCount
	c := &Curve{
		pointCount:     pointCount,
		componentCount: componentCount,
		quatOffset:     noQuaternionOffset,
		times:          make([]float32, pointCount),
		types:          make([]Interpolation, pointCount),
		values:         make([]float32, size),
		inValues:       make([]float32, size),
		outValues:      make([]float32, size),
	}
	for i := range c.types {
		c.types[i] = Linear
	}
	if pointCount > 1 {
		c.times[0] = curveStartTime
		c.times[pointCount-1] = curveEndTime
	}
	c.updateScalarRanges()
	c.refs.Store(1)

	return c
}

// PointCount returns the number of points on the curve.
func (c *Curve) PointCount() int {
	return c.pointCount
}

// ComponentCount returns the number of float32 components per point.
func (c *Curve) ComponentCount() int {
	return c.componentCount
}

// StartTime returns the time of the first point.
func (c *Curve) StartTime() float32 {
	c.checkLive()
	return c.times[0]
}

// EndTime returns the time of the last point.
func (c *Curve) EndTime() float32 {
	c.checkLive()
	return c.times[c.pointCount-1]
}

// PointTime returns the time of the point at index.
func (c *Curve) PointTime(index int) float32 {
	c.checkIndex(index)
	return c.times[index]
}

// PointInterpolation returns the interpolation of the segment starting at index.
func (c *Curve) PointInterpolation(index int) Interpolation {
	c.checkIndex(index)
	return c.types[index]
}

// PointValues copies the value and tangents of the point at index into the
// given slices. Any of value, inValue and outValue may be nil to skip it.
func (c *Curve) PointValues(index int, value, inValue, outValue []float32) {
	c.checkIndex(index)
	if value != nil {
		c.checkLen("value", value)
		copy(value, c.value(index))
	}
	if inValue != nil {
		c.checkLen("in tangent", inValue)
		copy(inValue, c.inTangent(index))
	}
	if outValue != nil {
		c.checkLen("out tangent", outValue)
		copy(outValue, c.outTangent(index))
	}
}

// SetPoint sets the time, value and interpolation of the point at index.
// A nil value leaves the stored value unchanged.
//
// time must lie in [0,1]. On a curve with more than one point, the first
// point must keep time 0 and the last point time 1.
func (c *Curve) SetPoint(index int, time float32, value []float32, interpolation Interpolation) {
	c.checkIndex(index)
	c.checkTime(index, time)
	c.checkInterpolation(interpolation)

	c.times[index] = time
	c.types[index] = interpolation
	if value != nil {
		c.checkLen("value", value)
		copy(c.value(index), value)
	}
}

// SetPointTangents is SetPoint followed by SetTangent: it writes time,
// value, interpolation and both tangents of the point at index.
func (c *Curve) SetPointTangents(index int, time float32, value []float32, interpolation Interpolation, inValue, outValue []float32) {
	c.SetPoint(index, time, value, interpolation)
	c.setTangents(index, inValue, outValue)
}

// SetTangent sets the interpolation and tangents of the point at index,
// leaving its time and value untouched. A nil tangent is left unchanged.
func (c *Curve) SetTangent(index int, interpolation Interpolation, inValue, outValue []float32) {
	c.checkIndex(index)
	c.checkInterpolation(interpolation)

	c.types[index] = interpolation
	c.setTangents(index, inValue, outValue)
}

func (c *Curve) setTangents(index int, inValue, outValue []float32) {
	if inValue != nil {
		c.checkLen("in tangent", inValue)
		copy(c.inTangent(index), inValue)
	}
	if outValue != nil {
		c.checkLen("out tangent", outValue)
		copy(c.outTangent(index), outValue)
	}
}

// SetQuaternionOffset marks components [offset, offset+4) as a unit
// quaternion in x, y, z, w order. Those components are slerped during
// evaluation instead of being interpolated independently.
func (c *Curve) SetQuaternionOffset(offset int) {
	if offset < 0 || offset > c.componentCount-quaternionComponents {
		panic(fmt.Sprintf("keyframe: quaternion offset %d out of range for %d components", offset, c.componentCount))
	}
	c.quatOffset = offset
	c.updateScalarRanges()
}

// ClearQuaternionOffset removes the quaternion block; all components are
// interpolated as scalars.
func (c *Curve) ClearQuaternionOffset() {
	c.quatOffset = noQuaternionOffset
	c.updateScalarRanges()
}

// QuaternionOffset returns the first component of the quaternion block and
// whether one is set.
func (c *Curve) QuaternionOffset() (int, bool) {
	return c.quatOffset, c.quatOffset != noQuaternionOffset
}

// updateScalarRanges partitions [0,componentCount) into the scalar runs
// before and after the quaternion block.
func (c *Curve) updateScalarRanges() {
	n := c.componentCount
	if c.quatOffset == noQuaternionOffset {
		c.scalarRanges = [2][2]int{{0, n}, {n, n}}
		return
	}
	c.scalarRanges = [2][2]int{{0, c.quatOffset}, {c.quatOffset + quaternionComponents, n}}
}

// Retain adds a reference to the curve and returns it. Channels retain the
// curve they are bound to, so one curve can drive several channels.
func (c *Curve) Retain() *Curve {
	for {
		n := c.refs.Load()
		if n <= 0 {
			panic("keyframe: retain of released curve")
		}
		if c.refs.CompareAndSwap(n, n+1) {
			return c
		}
	}
}

// Release drops one reference. When the last reference is dropped the point
// storage is freed and Release reports true; the curve must not be used
// afterwards.
func (c *Curve) Release() bool {
	n := c.refs.Add(-1)
	if n < 0 {
		panic("keyframe: curve released more times than retained")
	}
	if n > 0 {
		return false
	}
	c.times = nil
	c.types = nil
	c.values = nil
	c.inValues = nil
	c.outValues = nil
	return true
}

// RefCount returns the current number of references.
func (c *Curve) RefCount() int {
	return int(c.refs.Load())
}

// Evaluate samples the whole curve at time and writes componentCount values
// into dst. time is clamped to [0,1].
func (c *Curve) Evaluate(time float32, dst []float32) {
	c.EvaluateRegion(time, curveStartTime, curveEndTime, 0, dst)
}

// EvaluateRegion samples the slice [startTime, endTime] of the curve.
//
// time is a fraction of the slice: 0 maps to the point found at startTime and
// 1 to the point found at endTime. When loopBlendTime is zero time is
// clamped to the slice. When it is positive, a time past the end blends from
// the last point of the slice back to the first over loopBlendTime, and a
// time before the start blends from the first point toward the last.
//
// Region arguments outside the curve's domain are clamped rather than
// rejected, so a rounded end slightly past 1 still evaluates. A region
// starting at the last point holds that point's value.
//
// Evaluating exactly at a point's time returns its stored value bit for bit.
func (c *Curve) EvaluateRegion(time, startTime, endTime, loopBlendTime float32, dst []float32) {
	c.checkLive()
	c.checkLen("destination", dst)
	startTime, endTime, loopBlendTime = clampRegion(startTime, endTime, loopBlendTime)
	dst = dst[:c.componentCount]

	if c.pointCount == 1 {
		copy(dst, c.value(0))
		return
	}

	lo, hi := 0, c.pointCount-1
	localTime := time
	if startTime > curveStartTime || endTime < curveEndTime {
		lo, hi = c.regionIndices(startTime, endTime)
		localTime = c.times[lo] + (c.times[hi]-c.times[lo])*time
	}
	loTime, hiTime := c.times[lo], c.times[hi]

	if loopBlendTime == 0 {
		if localTime < loTime {
			localTime = loTime
		} else if localTime > hiTime {
			localTime = hiTime
		}
	}

	// Authored keyframes are returned without interpolation.
	if localTime == loTime {
		copy(dst, c.value(lo))
		return
	}
	if localTime == hiTime {
		copy(dst, c.value(hi))
		return
	}

	var from, to int
	var t float32
	switch {
	case localTime > hiTime:
		from, to = hi, lo
		t = (localTime - hiTime) / loopBlendTime
	case localTime < loTime:
		from, to = lo, hi
		t = (loTime - localTime) / loopBlendTime
	default:
		from = c.DetermineIndex(localTime, lo, hi)
		if localTime == c.times[from] {
			copy(dst, c.value(from))
			return
		}
		to = from + 1
		t = (localTime - c.times[from]) / (c.times[to] - c.times[from])
	}

	c.blend(from, to, t, dst)
}

// clampRegion brings region arguments computed by callers back into the
// curve's domain: endTime into [0,1], startTime into [0,endTime] and a
// negative loopBlendTime to zero.
func clampRegion(startTime, endTime, loopBlendTime float32) (float32, float32, float32) {
	endTime = min(max(endTime, curveStartTime), curveEndTime)
	startTime = min(max(startTime, curveStartTime), endTime)
	return startTime, endTime, max(loopBlendTime, 0)
}

// regionIndices finds the point indices bounding [startTime, endTime].
func (c *Curve) regionIndices(startTime, endTime float32) (lo, hi int) {
	last := c.pointCount - 1
	if startTime >= c.times[last] {
		return last, last
	}
	lo = c.DetermineIndex(startTime, 0, last)
	if endTime >= c.times[last] {
		return lo, last
	}
	return lo, c.DetermineIndex(endTime, lo, last)
}

// DetermineIndex returns the greatest index i in [lo, hi) such that
// PointTime(i) <= time < PointTime(i+1). Times before PointTime(lo) yield lo
// and times at or after PointTime(hi) yield hi-1; the result is never hi
// unless lo == hi.
func (c *Curve) DetermineIndex(time float32, lo, hi int) int {
	c.checkLive()
	if lo < 0 || hi >= c.pointCount || lo > hi {
		panic(fmt.Sprintf("keyframe: invalid search range [%d, %d] for %d points", lo, hi, c.pointCount))
	}
	if lo == hi {
		return lo
	}

	// Find the first index in (lo, hi] whose time is after the query.
	i, j := lo+1, hi+1
	for i < j {
		mid := int(uint(i+j) >> 1)
		if c.times[mid] > time {
			j = mid
		} else {
			i = mid + 1
		}
	}

	index := i - 1
	if index >= hi {
		index = hi - 1
	}
	return index
}

func (c *Curve) value(index int) []float32 {
	n := c.componentCount
	return c.values[index*n : (index+1)*n]
}

func (c *Curve) inTangent(index int) []float32 {
	n := c.componentCount
	return c.inValues[index*n : (index+1)*n]
}

func (c *Curve) outTangent(index int) []float32 {
	n := c.componentCount
	return c.outValues[index*n : (index+1)*n]
}

func (c *Curve) checkLive() {
	if c.times == nil {
		panic("keyframe: use of released curve")
	}
}

func (c *Curve) checkIndex(index int) {
	c.checkLive()
	if index < 0 || index >= c.pointCount {
		panic(fmt.Sprintf("keyframe: point index %d out of range [0, %d)", index, c.pointCount))
	}
}

func (c *Curve) checkTime(index int, time float32) {
	if !(time >= curveStartTime && time <= curveEndTime) {
		panic(fmt.Sprintf("keyframe: point time %v outside [0, 1]", time))
	}
	if c.pointCount > 1 {
		if index == 0 && time != curveStartTime {
			panic(fmt.Sprintf("keyframe: first point time must be 0, got %v", time))
		}
		if index == c.pointCount-1 && time != curveEndTime {
			panic(fmt.Sprintf("keyframe: last point time must be 1, got %v", time))
		}
	}
}

func (c *Curve) checkInterpolation(interpolation Interpolation) {
	if !interpolation.Valid() {
		panic(fmt.Sprintf("keyframe: unknown interpolation %d", int(interpolation)))
	}
}

func (c *Curve) checkLen(what string, s []float32) {
	if len(s) < c.componentCount {
		panic(fmt.Sprintf("keyframe: %s has %d components, need %d", what, len(s), c.componentCount))
	}
}
