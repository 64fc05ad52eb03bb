package main

// Default command-line flag values
const (
	defaultFrames   = 11  // Rows printed, endpoints included
	defaultFrom     = 0.0 // First playhead
	defaultTo       = 1.0 // Last playhead
	defaultStart    = 0.0 // Sub-region start as a fraction of the curve
	defaultEnd      = 1.0 // Sub-region end as a fraction of the curve
	defaultLoop     = 0.0 // No loop blending
	defaultWeight   = 1.0
	minRequiredArgs = 1
	minFrames       = 2
)

// Output formatting
const (
	valuePrecision = 6
)
