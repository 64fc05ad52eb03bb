package keyframe

import "fmt"

// Value holds the current sampled value of one animated property as a fixed
// number of float32 components. It carries no interpolation logic.
type Value struct {
	data []float32
}

// NewValue creates a zeroed value with componentCount components.
func NewValue(componentCount int) *Value {
	if componentCount < minCurveComponentCount {
		panic(fmt.Sprintf("keyframe: component count must be at least %d, got %d", minCurveComponentCount, componentCount))
	}
	return &Value{data: make([]float32, componentCount)}
}

// ComponentCount returns the number of components.
func (v *Value) ComponentCount() int {
	return len(v.data)
}

// Float returns the component at index.
func (v *Value) Float(index int) float32 {
	v.checkRange(index, 1)
	return v.data[index]
}

// SetFloat sets the component at index.
func (v *Value) SetFloat(index int, value float32) {
	v.checkRange(index, 1)
	v.data[index] = value
}

// Floats copies len(dst) components starting at index into dst.
func (v *Value) Floats(index int, dst []float32) {
	v.checkRange(index, len(dst))
	copy(dst, v.data[index:])
}

// SetFloats copies values into the components starting at index.
func (v *Value) SetFloats(index int, values []float32) {
	v.checkRange(index, len(values))
	copy(v.data[index:], values)
}

// CopyFrom makes v a deep copy of src. The backing storage is reallocated
// only when the component counts differ.
func (v *Value) CopyFrom(src *Value) {
	if v == src {
		return
	}
	if len(v.data) != len(src.data) {
		v.data = make([]float32, len(src.data))
	}
	copy(v.data, src.data)
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	c := &Value{}
	c.CopyFrom(v)
	return c
}

// String formats the components, e.g. "[1 0.5 0]".
func (v *Value) String() string {
	return fmt.Sprint(v.data)
}

// components exposes the backing storage to curve evaluation.
func (v *Value) components() []float32 {
	return v.data
}

func (v *Value) checkRange(index, count int) {
	if index < 0 || count < 0 || index+count > len(v.data) {
		panic(fmt.Sprintf("keyframe: value range [%d, %d) out of bounds for %d components", index, index+count, len(v.data)))
	}
}
