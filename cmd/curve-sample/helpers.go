package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-keyframe/internal/job"
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// sampleOptions holds the validated command-line sampling parameters.
type sampleOptions struct {
	frames     int
	from, to   float32
	start, end float32
	loop       float32
	weight     float32
}

func (o *sampleOptions) validate() error {
	if o.frames < minFrames {
		return fmt.Errorf("frames must be at least %d, got %d", minFrames, o.frames)
	}
	if o.start < 0 || o.end > 1 || o.start > o.end {
		return fmt.Errorf("invalid region [%g, %g]: need 0 <= start <= end <= 1", o.start, o.end)
	}
	if o.loop < 0 {
		return fmt.Errorf("loop blend time must not be negative, got %g", o.loop)
	}
	return nil
}

// playhead returns the i-th of the evenly spaced playheads.
func (o *sampleOptions) playhead(i int) float32 {
	return o.from + (o.to-o.from)*float32(i)/float32(o.frames-1)
}

// componentStats summarizes one component over all sampled frames.
type componentStats struct {
	min, max, mean float64
}

// sampleResult holds one row of component values per playhead.
type sampleResult struct {
	name      string
	duration  time.Duration
	playheads []float32
	rows      [][]float32
	stats     []componentStats
}

// sampleJob builds the job's channel and updates it once per playhead.
func sampleJob(j *job.Job, opts sampleOptions) (*sampleResult, error) {
	ch, rec, err := j.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Release()

	res := &sampleResult{
		name:      j.Name,
		duration:  ch.Duration(),
		playheads: make([]float32, opts.frames),
		rows:      make([][]float32, opts.frames),
	}
	for i := range opts.frames {
		p := opts.playhead(i)
		ch.Update(p, opts.start, opts.end, opts.loop, opts.weight)
		res.playheads[i] = p
		res.rows[i] = append([]float32(nil), rec.Last()...)
	}
	res.stats = summarize(res.rows)

	return res, nil
}

// summarize computes min, max and mean per component.
func summarize(rows [][]float32) []componentStats {
	if len(rows) == 0 {
		return nil
	}
	n := len(rows[0])
	stats := make([]componentStats, n)
	column := make([]float64, len(rows))
	ops := simdops.Float64Ops()
	for c := range n {
		for r, row := range rows {
			column[r] = float64(row[c])
		}
		stats[c] = componentStats{
			min:  floats.Min(column),
			max:  floats.Max(column),
			mean: ops.Sum(column) / float64(len(column)),
		}
	}
	return stats
}

// writeTable prints the rows as tab-separated columns followed by the
// statistics.
func writeTable(w io.Writer, res *sampleResult) error {
	var b strings.Builder
	if res.name != "" {
		fmt.Fprintf(&b, "# %s (%v)\n", res.name, res.duration)
	}

	b.WriteString("playhead")
	for c := range res.stats {
		fmt.Fprintf(&b, "\tc%d", c)
	}
	b.WriteByte('\n')

	for i, row := range res.rows {
		b.WriteString(formatFloat(float64(res.playheads[i])))
		for _, v := range row {
			b.WriteByte('\t')
			b.WriteString(formatFloat(float64(v)))
		}
		b.WriteByte('\n')
	}

	for _, line := range []struct {
		label string
		pick  func(componentStats) float64
	}{
		{"min", func(s componentStats) float64 { return s.min }},
		{"max", func(s componentStats) float64 { return s.max }},
		{"mean", func(s componentStats) float64 { return s.mean }},
	} {
		b.WriteString(line.label)
		for _, s := range res.stats {
			b.WriteByte('\t')
			b.WriteString(formatFloat(line.pick(s)))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', valuePrecision, 32)
}
