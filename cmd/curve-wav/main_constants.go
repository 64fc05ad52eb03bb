package main

// Default command-line flag values
const (
	defaultSampleRate = 48000
	defaultBitDepth   = 16
	defaultLength     = 1.0 // Seconds, used when neither the job nor -seconds gives a length
	defaultFrom       = 0.0 // Playhead of the first sample
	defaultTo         = 1.0 // Playhead of the last sample
	defaultStart      = 0.0 // Sub-region start as a fraction of the curve
	defaultEnd        = 1.0 // Sub-region end as a fraction of the curve
	defaultLoop       = 0.0 // No loop blending
	minRequiredArgs   = 2
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	maxInt16        = 32767.0
	maxInt24        = 8388607.0
	pcmFormat       = 1 // WAVE_FORMAT_PCM
	monoChannels    = 1
	minSamples      = 2
)
