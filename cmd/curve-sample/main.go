// Command curve-sample evaluates a keyframe job at evenly spaced playheads
// and prints the sampled values with per-component statistics.
//
// Usage:
//
//	curve-sample job.toml
//	curve-sample -frames 101 job.toml
//	curve-sample -start 0.25 -end 0.75 job.toml             # Play a slice of the curve
//	curve-sample -loop 0.1 -from 0 -to 1.2 job.toml         # Sample across the loop seam
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tphakala/go-keyframe/internal/job"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	frames := flag.Int("frames", defaultFrames, "Number of playheads to sample (at least 2)")
	from := flag.Float64("from", defaultFrom, "First playhead")
	to := flag.Float64("to", defaultTo, "Last playhead")
	start := flag.Float64("start", defaultStart, "Sub-region start (fraction of the curve)")
	end := flag.Float64("end", defaultEnd, "Sub-region end (fraction of the curve)")
	loop := flag.Float64("loop", defaultLoop, "Loop blend time (fraction of the curve)")
	weight := flag.Float64("weight", defaultWeight, "Blend weight passed to the target")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] job.toml\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	opts := sampleOptions{
		frames: *frames,
		from:   float32(*from),
		to:     float32(*to),
		start:  float32(*start),
		end:    float32(*end),
		loop:   float32(*loop),
		weight: float32(*weight),
	}
	if err := opts.validate(); err != nil {
		return err
	}

	path := args[0]
	j, err := job.Load(path)
	if err != nil {
		return err
	}

	if *verbose {
		n, _ := j.ComponentCount()
		layout, _ := j.PropertyLayout()
		log.Printf("Job: %s (%s)", filepath.Base(path), j.Name)
		log.Printf("Keyframes: %d, components: %d, layout: %s", len(j.Times), n, layout)
		log.Printf("Region: [%g, %g], loop blend: %g", opts.start, opts.end, opts.loop)
	}

	result, err := sampleJob(j, opts)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Sampled %d frames over %v", len(result.playheads), result.duration)
	}

	return writeTable(os.Stdout, result)
}
