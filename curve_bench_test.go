package keyframe

import (
	"testing"
)

func benchmarkCurve(kind Interpolation, points, components int) *Curve {
	c := NewCurve(points, components)
	value := make([]float32, components)
	for i := range points {
		for j := range value {
			value[j] = float32(i*components + j)
		}
		tm := float32(i) / float32(points-1)
		c.SetPoint(i, tm, value, kind)
	}
	return c
}

func BenchmarkEvaluate(b *testing.B) {
	benchmarks := []struct {
		name string
		kind Interpolation
	}{
		{"Linear", Linear},
		{"Bezier", Bezier},
		{"BSpline", BSpline},
		{"Smooth", Smooth},
		{"ElasticOut", ElasticOut},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			c := benchmarkCurve(bm.kind, 64, 3)
			dst := make([]float32, 3)
			tm := float32(0)

			b.ReportAllocs()
			for b.Loop() {
				c.Evaluate(tm, dst)
				tm += 0.0137
				if tm > 1 {
					tm -= 1
				}
			}
		})
	}
}

func BenchmarkEvaluateQuaternion(b *testing.B) {
	c := benchmarkCurve(Linear, 16, 10)
	c.SetQuaternionOffset(scaleRotateOffset)
	for i := range c.PointCount() {
		rot := []float32{0, 0, float32(i%2) * 0.6, 0.8}
		if i%2 == 0 {
			rot = []float32{0, 0, 0, 1}
		}
		value := make([]float32, 10)
		c.PointValues(i, value, nil, nil)
		copy(value[scaleRotateOffset:], rot)
		c.SetPoint(i, c.PointTime(i), value, Linear)
	}
	dst := make([]float32, 10)
	tm := float32(0)

	b.ReportAllocs()
	for b.Loop() {
		c.EvaluateRegion(tm, 0, 1, 0.1, dst)
		tm += 0.0137
		if tm > 1.1 {
			tm -= 1.2
		}
	}
}

func BenchmarkChannelUpdate(b *testing.B) {
	target := newRecordingTarget(map[int]int{propColor: 3})
	c := benchmarkCurve(Hermite, 32, 3)
	ch, err := NewChannel(discardTarget{target}, propColor, c, 0)
	if err != nil {
		b.Fatal(err)
	}
	c.Release()
	defer ch.Release()

	b.ReportAllocs()
	for b.Loop() {
		ch.Update(0.42, 0, 1, 0, 1)
	}
}

// discardTarget drops values so the benchmark measures only the channel.
type discardTarget struct {
	*recordingTarget
}

func (discardTarget) SetPropertyValue(int, *Value, float32) {}
