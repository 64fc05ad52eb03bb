package keyframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTarget stores the last value and weight set per property.
type recordingTarget struct {
	counts  map[int]int
	layouts map[int]PropertyLayout
	values  map[int][]float32
	weights map[int]float32
	buffers map[int]*Value
	calls   int
}

func newRecordingTarget(counts map[int]int) *recordingTarget {
	return &recordingTarget{
		counts:  counts,
		layouts: map[int]PropertyLayout{},
		values:  map[int][]float32{},
		weights: map[int]float32{},
		buffers: map[int]*Value{},
	}
}

func (r *recordingTarget) PropertyComponentCount(propertyID int) int {
	return r.counts[propertyID]
}

func (r *recordingTarget) SetPropertyValue(propertyID int, value *Value, weight float32) {
	r.calls++
	dst := make([]float32, value.ComponentCount())
	value.Floats(0, dst)
	r.values[propertyID] = dst
	r.weights[propertyID] = weight
	r.buffers[propertyID] = value
}

// layoutRecordingTarget additionally reports property layouts.
type layoutRecordingTarget struct {
	*recordingTarget
}

func (r layoutRecordingTarget) PropertyLayout(propertyID int) PropertyLayout {
	return r.layouts[propertyID]
}

const (
	propOpacity = iota + 1
	propColor
	propRotation
	propMissing
)

func TestNewChannelValidatesTarget(t *testing.T) {
	target := newRecordingTarget(map[int]int{propOpacity: 1, propColor: 3})
	curve := NewCurve(2, 1)
	defer curve.Release()

	_, err := NewChannel(target, propMissing, curve, time.Second)
	require.ErrorIs(t, err, ErrInvalidTarget, "zero component count")

	_, err = NewChannel(target, propColor, curve, time.Second)
	require.ErrorIs(t, err, ErrInvalidTarget, "component count mismatch")

	_, err = NewChannel(nil, propOpacity, curve, time.Second)
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = NewChannel(target, propOpacity, nil, time.Second)
	require.ErrorIs(t, err, ErrInvalidTarget)

	assert.Equal(t, 1, curve.RefCount(), "failed binds must not retain")
}

func TestChannelUpdate(t *testing.T) {
	target := newRecordingTarget(map[int]int{propOpacity: 1})
	curve := newScalarCurve(t, []float32{0, 0.5, 1}, []float32{0, 1, 0}, Linear)
	defer curve.Release()

	ch, err := NewChannel(target, propOpacity, curve, 2*time.Second)
	require.NoError(t, err)
	defer ch.Release()

	assert.Nil(t, ch.Value(), "buffer is created lazily")

	ch.Update(0.25, 0, 1, 0, 0.8)
	assert.Equal(t, 1, target.calls)
	assert.InDelta(t, 0.5, target.values[propOpacity][0], 1e-6)
	assert.Equal(t, float32(0.8), target.weights[propOpacity])

	first := target.buffers[propOpacity]
	ch.Update(0.5, 0, 1, 0, 1)
	assert.Same(t, first, target.buffers[propOpacity], "buffer is reused")
	assert.Equal(t, []float32{1}, target.values[propOpacity])
}

func TestChannelUpdateSubRegion(t *testing.T) {
	target := newRecordingTarget(map[int]int{propOpacity: 1})
	curve := newScalarCurve(t, []float32{0, 0.25, 0.75, 1}, []float32{0, 2, 6, 8}, Linear)
	defer curve.Release()

	ch, err := NewChannel(target, propOpacity, curve, 4*time.Second)
	require.NoError(t, err)
	defer ch.Release()

	start, end := ch.Fraction(time.Second), ch.Fraction(3*time.Second)
	ch.Update(0.5, start, end, 0, 1)
	assert.InDelta(t, 4, target.values[propOpacity][0], 1e-5)
}

func TestChannelSharesCurve(t *testing.T) {
	a := newRecordingTarget(map[int]int{propColor: 3})
	b := newRecordingTarget(map[int]int{propColor: 3})

	curve := NewCurve(2, 3)
	curve.SetPoint(0, 0, []float32{0, 0, 0}, Linear)
	curve.SetPoint(1, 1, []float32{1, 1, 1}, Linear)

	ch, err := NewChannel(a, propColor, curve, time.Second)
	require.NoError(t, err)
	clone, err := ch.Clone(b)
	require.NoError(t, err)

	assert.Same(t, curve, clone.Curve())
	assert.Equal(t, 3, curve.RefCount())

	// The creator's reference can go; the channels keep the curve alive.
	curve.Release()
	ch.Update(0.5, 0, 1, 0, 1)
	clone.Update(1, 0, 1, 0, 0.5)

	assert.Equal(t, []float32{0.5, 0.5, 0.5}, a.values[propColor])
	assert.Equal(t, []float32{1, 1, 1}, b.values[propColor])
	assert.NotSame(t, a.buffers[propColor], b.buffers[propColor])

	ch.Release()
	assert.Equal(t, 1, curve.RefCount())
	clone.Release()
	assert.Equal(t, 0, curve.RefCount())
}

func TestChannelRelease(t *testing.T) {
	target := newRecordingTarget(map[int]int{propOpacity: 1})
	curve := NewCurve(2, 1)
	ch, err := NewChannel(target, propOpacity, curve, time.Second)
	require.NoError(t, err)
	curve.Release()

	ch.Release()
	assert.Nil(t, ch.Curve())
	assert.NotPanics(t, ch.Release, "release is idempotent")
	assert.Panics(t, func() { ch.Update(0, 0, 1, 0, 1) })
}

func TestChannelFraction(t *testing.T) {
	target := newRecordingTarget(map[int]int{propOpacity: 1})
	curve := NewCurve(2, 1)
	defer curve.Release()

	ch, err := NewChannel(target, propOpacity, curve, 4*time.Second)
	require.NoError(t, err)
	defer ch.Release()

	assert.InDelta(t, 0.25, ch.Fraction(time.Second), 1e-7)
	assert.InDelta(t, 0, ch.Fraction(0), 0)
	assert.Equal(t, 4*time.Second, ch.Duration())
	assert.Equal(t, propOpacity, ch.PropertyID())
	assert.Same(t, target, ch.Target())

	zero, err := NewChannel(target, propOpacity, curve, 0)
	require.NoError(t, err)
	defer zero.Release()
	assert.InDelta(t, 0, zero.Fraction(time.Second), 0)
}
