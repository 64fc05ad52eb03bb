package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-keyframe/internal/job"
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// renderOptions holds the output format and the rendered span.
type renderOptions struct {
	sampleRate int
	bitDepth   int
	length     time.Duration // Zero uses the job's duration
	component  int
	from, to   float32 // Playheads of the first and last sample
	start, end float32 // Sub-region of the curve being played
	loop       float32
}

func (o *renderOptions) validate() error {
	if o.sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", o.sampleRate)
	}
	if o.bitDepth != bitsPerSample16 && o.bitDepth != bitsPerSample24 {
		return fmt.Errorf("unsupported bit depth %d (use 16 or 24)", o.bitDepth)
	}
	if o.length < 0 {
		return fmt.Errorf("length must not be negative, got %v", o.length)
	}
	if o.start < 0 || o.end > 1 || o.start > o.end {
		return fmt.Errorf("invalid region [%g, %g]: need 0 <= start <= end <= 1", o.start, o.end)
	}
	if o.loop < 0 {
		return fmt.Errorf("loop blend time must not be negative, got %g", o.loop)
	}
	return nil
}

// renderStats describes a finished render.
type renderStats struct {
	samples  int
	length   time.Duration
	min, max float64
}

// renderSamples updates the job's channel once per output sample and
// collects the chosen component.
func renderSamples(j *job.Job, opts renderOptions) ([]float64, time.Duration, error) {
	ch, rec, err := j.Channel()
	if err != nil {
		return nil, 0, err
	}
	defer ch.Release()

	n := ch.Curve().ComponentCount()
	if opts.component < 0 || opts.component >= n {
		return nil, 0, fmt.Errorf("component %d out of range for %d components", opts.component, n)
	}

	length := opts.length
	if length == 0 {
		length = ch.Duration()
	}
	if length == 0 {
		length = time.Duration(defaultLength * float64(time.Second))
	}

	count := max(int(math.Round(length.Seconds()*float64(opts.sampleRate))), minSamples)
	samples := make([]float64, count)
	last := float32(count - 1)
	for i := range samples {
		playhead := opts.from + (opts.to-opts.from)*float32(i)/last
		ch.Update(playhead, opts.start, opts.end, opts.loop, 1)
		samples[i] = float64(rec.Last()[opts.component])
	}
	return samples, length, nil
}

// normalize maps samples in place onto [-1, 1] and returns the original
// range. A constant signal becomes silence.
func normalize(samples []float64) (lo, hi float64) {
	lo, hi = floats.Min(samples), floats.Max(samples)
	floats.AddConst(-(lo+hi)/2, samples)
	if half := (hi - lo) / 2; half > 0 {
		simdops.For[float64]().Scale(samples, samples, 1/half)
	}
	return lo, hi
}

// toPCM converts normalized samples to integers at the given bit depth.
func toPCM(samples []float64, bitDepth int) []int {
	scale := maxInt16
	if bitDepth == bitsPerSample24 {
		scale = maxInt24
	}
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(s * scale))
	}
	return data
}

// writeWAV encodes mono PCM data to path.
func writeWAV(path string, data []int, sampleRate, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, monoChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// renderJob renders the job to a WAV file at path.
func renderJob(j *job.Job, path string, opts renderOptions) (*renderStats, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	samples, length, err := renderSamples(j, opts)
	if err != nil {
		return nil, err
	}
	lo, hi := normalize(samples)

	if err := writeWAV(path, toPCM(samples, opts.bitDepth), opts.sampleRate, opts.bitDepth); err != nil {
		return nil, err
	}

	return &renderStats{
		samples: len(samples),
		length:  length,
		min:     lo,
		max:     hi,
	}, nil
}
