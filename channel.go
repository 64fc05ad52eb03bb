package keyframe

import (
	"fmt"
	"time"
)

// Target is the object whose properties a Channel animates.
//
// PropertyComponentCount reports how many float components a property has;
// it must be positive for an animatable property. SetPropertyValue receives
// the freshly sampled value and the caller's blend weight. How several
// channels driving the same property are combined is up to the target.
type Target interface {
	PropertyComponentCount(propertyID int) int
	SetPropertyValue(propertyID int, value *Value, weight float32)
}

// LayoutTarget is implemented by targets whose properties embed a rotation.
// The importer consults it to mark the quaternion block of a new curve.
type LayoutTarget interface {
	Target
	PropertyLayout(propertyID int) PropertyLayout
}

// Channel binds one curve to one property of a target.
//
// A channel holds a reference to its curve for as long as it lives. Several
// channels may share a curve; each owns its own value buffer.
type Channel struct {
	target     Target
	propertyID int
	curve      *Curve
	duration   time.Duration

	// value is created on the first Update and reused afterwards.
	value *Value
}

// NewChannel binds curve to the given property of target. duration is the
// absolute length of the curve's [0,1] domain and is used by Fraction.
//
// The target must report a positive component count equal to the curve's.
// On success the channel retains curve; the caller keeps its own reference.
func NewChannel(target Target, propertyID int, curve *Curve, duration time.Duration) (*Channel, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrInvalidTarget)
	}
	if curve == nil {
		return nil, fmt.Errorf("%w: nil curve", ErrInvalidTarget)
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: negative duration %v", ErrInvalidTarget, duration)
	}

	n := target.PropertyComponentCount(propertyID)
	if n <= 0 {
		return nil, fmt.Errorf("%w: property %d has %d components", ErrInvalidTarget, propertyID, n)
	}
	if n != curve.ComponentCount() {
		return nil, fmt.Errorf("%w: property %d has %d components, curve has %d",
			ErrInvalidTarget, propertyID, n, curve.ComponentCount())
	}

	return &Channel{
		target:     target,
		propertyID: propertyID,
		curve:      curve.Retain(),
		duration:   duration,
	}, nil
}

// Update samples the curve and hands the result to the target.
//
// playhead is the clip's 0..1 position. subRegionStart, subRegionEnd and
// loopBlendTime are fractions of the channel's duration selecting the slice
// of the curve being played (see [Curve.EvaluateRegion]). weight is passed to
// the target unchanged.
func (ch *Channel) Update(playhead, subRegionStart, subRegionEnd, loopBlendTime, weight float32) {
	if ch.curve == nil {
		panic("keyframe: update of released channel")
	}
	if ch.value == nil {
		ch.value = NewValue(ch.curve.ComponentCount())
	}
	ch.curve.EvaluateRegion(playhead, subRegionStart, subRegionEnd, loopBlendTime, ch.value.components())
	ch.target.SetPropertyValue(ch.propertyID, ch.value, weight)
}

// Clone returns a channel driving the same property of another target with
// the same curve. The curve is shared, not copied.
func (ch *Channel) Clone(target Target) (*Channel, error) {
	if ch.curve == nil {
		panic("keyframe: clone of released channel")
	}
	return NewChannel(target, ch.propertyID, ch.curve, ch.duration)
}

// Release drops the channel's reference to its curve. The channel must not
// be updated afterwards. Release is idempotent.
func (ch *Channel) Release() {
	if ch.curve == nil {
		return
	}
	ch.curve.Release()
	ch.curve = nil
	ch.value = nil
}

// Fraction converts an absolute offset into a fraction of the channel's
// duration, suitable for the sub-region and loop arguments of Update.
// A zero-length channel yields 0.
func (ch *Channel) Fraction(offset time.Duration) float32 {
	if ch.duration == 0 {
		return 0
	}
	return float32(float64(offset) / float64(ch.duration))
}

// Target returns the bound target.
func (ch *Channel) Target() Target { return ch.target }

// PropertyID returns the animated property.
func (ch *Channel) PropertyID() int { return ch.propertyID }

// Curve returns the bound curve, or nil after Release.
func (ch *Channel) Curve() *Curve { return ch.curve }

// Duration returns the absolute length of the curve's domain.
func (ch *Channel) Duration() time.Duration { return ch.duration }

// Value returns the most recently sampled value, or nil before the first
// Update.
func (ch *Channel) Value() *Value { return ch.value }
