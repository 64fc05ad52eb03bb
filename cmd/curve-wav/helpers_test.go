package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-keyframe/internal/job"
)

const rampJob = `
name = "ramp"
times = [0, 10]
values = [2.0, 6.0]
`

const threeKeyRampJob = `
name = "ramp3"
times = [0, 5, 10]
values = [2.0, 4.0, 6.0]
`

func loadTestJob(t *testing.T, doc string) *job.Job {
	t.Helper()
	j, err := job.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return j
}

// testOptions returns the command's flag defaults at the given rate.
func testOptions(sampleRate int) renderOptions {
	return renderOptions{
		sampleRate: sampleRate,
		bitDepth:   defaultBitDepth,
		from:       defaultFrom,
		to:         defaultTo,
		start:      defaultStart,
		end:        defaultEnd,
		loop:       defaultLoop,
	}
}

func TestRenderOptionsValidate(t *testing.T) {
	valid := testOptions(8000)
	require.NoError(t, valid.validate())

	tests := []struct {
		name   string
		mutate func(o *renderOptions)
	}{
		{"zero rate", func(o *renderOptions) { o.sampleRate = 0 }},
		{"8-bit", func(o *renderOptions) { o.bitDepth = 8 }},
		{"negative length", func(o *renderOptions) { o.length = -time.Second }},
		{"inverted region", func(o *renderOptions) { o.start, o.end = 0.8, 0.2 }},
		{"region past end", func(o *renderOptions) { o.end = 1.5 }},
		{"negative loop", func(o *renderOptions) { o.loop = -0.1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := testOptions(8000)
			tc.mutate(&o)
			assert.Error(t, o.validate())
		})
	}
}

func TestRenderSamplesUsesJobDuration(t *testing.T) {
	samples, length, err := renderSamples(loadTestJob(t, rampJob), testOptions(1000))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, length)
	require.Len(t, samples, 10)
	assert.InDelta(t, 2, samples[0], 1e-9)
	assert.InDelta(t, 6, samples[9], 1e-9)
}

func TestRenderSamplesComponentRange(t *testing.T) {
	opts := testOptions(1000)
	opts.component = 1
	_, _, err := renderSamples(loadTestJob(t, rampJob), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

// TestRenderSamplesLoopsRegion plays the second half of the ramp and
// continues past its end until the loop blend is back at the region start.
func TestRenderSamplesLoopsRegion(t *testing.T) {
	opts := testOptions(1000)
	opts.start, opts.end = 0.5, 1
	opts.loop = 0.25
	opts.to = 1.5

	samples, _, err := renderSamples(loadTestJob(t, threeKeyRampJob), opts)
	require.NoError(t, err)
	require.Len(t, samples, 10)

	// Playhead 0 sits on the region start at time 0.5, value 4.
	assert.InDelta(t, 4, samples[0], 1e-6)
	// Playhead 1.5 is one loop blend past the region end: back at 4.
	assert.InDelta(t, 4, samples[9], 1e-5)
	assert.Greater(t, floats.Max(samples), 5.5)
}

func TestNormalize(t *testing.T) {
	s := []float64{2, 3, 4, 6}
	lo, hi := normalize(s)

	assert.InDelta(t, 2, lo, 0)
	assert.InDelta(t, 6, hi, 0)
	assert.InDeltaSlice(t, []float64{-1, -0.5, 0, 1}, s, 1e-12)

	flat := []float64{3, 3, 3}
	normalize(flat)
	assert.Equal(t, []float64{0, 0, 0}, flat)
}

func TestToPCM(t *testing.T) {
	assert.Equal(t, []int{-32767, 0, 32767}, toPCM([]float64{-1, 0, 1}, 16))
	assert.Equal(t, []int{-8388607, 4194304, 8388607}, toPCM([]float64{-1, 0.5, 1}, 24))
}

func TestWriteWAV_InvalidDirectory(t *testing.T) {
	err := writeWAV("/nonexistent/dir/output.wav", []int{0, 1}, 8000, 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

// TestRenderJobRoundTrip renders a ramp and decodes it back.
func TestRenderJobRoundTrip(t *testing.T) {
	for _, bits := range []int{16, 24} {
		path := filepath.Join(t.TempDir(), "ramp.wav")
		opts := testOptions(8000)
		opts.bitDepth = bits
		opts.length = 50 * time.Millisecond

		stats, err := renderJob(loadTestJob(t, rampJob), path, opts)
		require.NoError(t, err)
		assert.Equal(t, 400, stats.samples)
		assert.InDelta(t, 2, stats.min, 1e-9)
		assert.InDelta(t, 6, stats.max, 1e-9)

		f, err := os.Open(path)
		require.NoError(t, err)
		dec := wav.NewDecoder(f)
		require.True(t, dec.IsValidFile())

		buf, err := dec.FullPCMBuffer()
		require.NoError(t, err)
		require.NoError(t, f.Close())

		assert.Equal(t, uint32(8000), dec.SampleRate)
		assert.Equal(t, uint16(bits), dec.BitDepth)
		assert.Equal(t, 1, buf.Format.NumChannels)
		require.Len(t, buf.Data, 400)

		full := int(maxInt16)
		if bits == 24 {
			full = int(maxInt24)
		}
		assert.Equal(t, -full, buf.Data[0])
		assert.Equal(t, full, buf.Data[len(buf.Data)-1])
		for i := 1; i < len(buf.Data); i++ {
			require.GreaterOrEqual(t, buf.Data[i], buf.Data[i-1], "ramp must not fall at %d", i)
		}
	}
}
