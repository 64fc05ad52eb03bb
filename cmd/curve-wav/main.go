// Command curve-wav renders one component of a keyframe job as a mono PCM
// WAV file, for use as an automation or control track.
//
// Usage:
//
//	curve-wav job.toml out.wav
//	curve-wav -rate 48000 -bits 24 job.toml out.wav
//	curve-wav -seconds 4 -component 2 job.toml out.wav      # Stretch to 4s, render component 2
//	curve-wav -start 0.25 -end 0.75 -loop 0.1 -to 1.2 job.toml out.wav  # Middle half, then blend back to its start
//
// The sampled range is scaled to full scale: the smallest value maps to
// negative full scale and the largest to positive full scale.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tphakala/go-keyframe/internal/job"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultSampleRate, "Output sample rate in Hz")
	bits := flag.Int("bits", defaultBitDepth, "Output bit depth: 16 or 24")
	seconds := flag.Float64("seconds", 0, "Output length in seconds (default: the job's duration)")
	component := flag.Int("component", 0, "Component to render")
	from := flag.Float64("from", defaultFrom, "Playhead of the first sample")
	to := flag.Float64("to", defaultTo, "Playhead of the last sample")
	start := flag.Float64("start", defaultStart, "Sub-region start (fraction of the curve)")
	end := flag.Float64("end", defaultEnd, "Sub-region end (fraction of the curve)")
	loop := flag.Float64("loop", defaultLoop, "Loop blend time (fraction of the curve)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] job.toml output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	jobPath := args[0]
	outputPath := args[1]

	j, err := job.Load(jobPath)
	if err != nil {
		return err
	}

	opts := renderOptions{
		sampleRate: *rate,
		bitDepth:   *bits,
		length:     time.Duration(*seconds * float64(time.Second)),
		component:  *component,
		from:       float32(*from),
		to:         float32(*to),
		start:      float32(*start),
		end:        float32(*end),
		loop:       float32(*loop),
	}

	if *verbose {
		log.Printf("Job: %s", filepath.Base(jobPath))
		log.Printf("Output: %s", outputPath)
		log.Printf("Format: %d Hz, %d-bit mono", opts.sampleRate, opts.bitDepth)
	}

	start := time.Now()
	stats, err := renderJob(j, outputPath, opts)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Value range: [%g, %g]", stats.min, stats.max)
	}

	fmt.Printf("Rendered %s -> %s\n", filepath.Base(jobPath), filepath.Base(outputPath))
	fmt.Printf("  %d samples at %d Hz (%v), took %v\n",
		stats.samples, opts.sampleRate, stats.length, time.Since(start).Round(time.Millisecond))

	return nil
}
