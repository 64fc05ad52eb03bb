// Package job loads curve jobs for the command-line tools.
//
// A job is a TOML file describing one animated property: its layout, its
// keyframes with absolute millisecond times, and how those keyframes are
// interpolated. For example:
//
//	name = "fade"
//	layout = "scalar"
//	components = 1
//	interpolation = "cubic-in-out"
//	times = [0, 250, 1000]
//	values = [0.0, 0.4, 1.0]
package job

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	keyframe "github.com/tphakala/go-keyframe"
)

// ErrInvalidJob indicates a job file that cannot be turned into a channel.
var ErrInvalidJob = errors.New("invalid job")

// PropertyID is the property a job animates on its Recorder.
const PropertyID = 0

const defaultInterpolation = "linear"

// Job is the decoded form of a job file.
type Job struct {
	Name           string    `toml:"name"`
	Layout         string    `toml:"layout"`
	Components     int       `toml:"components"`
	Interpolation  string    `toml:"interpolation"`
	Interpolations []string  `toml:"interpolations"`
	Times          []uint64  `toml:"times"`
	Values         []float32 `toml:"values"`
	InTangents     []float32 `toml:"in_tangents"`
	OutTangents    []float32 `toml:"out_tangents"`
}

// Load reads and validates the job file at path.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode reads a job from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Job, error) {
	var j Job
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&j); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Validate checks that the job describes a well-formed set of keyframes.
func (j *Job) Validate() error {
	_, err := j.Keyframes()
	return err
}

// PropertyLayout returns the parsed layout; an empty layout is scalar.
func (j *Job) PropertyLayout() (keyframe.PropertyLayout, error) {
	if j.Layout == "" {
		return keyframe.LayoutScalar, nil
	}
	l, err := keyframe.ParseLayout(j.Layout)
	if err != nil {
		return l, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	return l, nil
}

// ComponentCount returns the number of components per keyframe. When the
// job leaves it unset, a transform layout's count is used, else 1.
func (j *Job) ComponentCount() (int, error) {
	layout, err := j.PropertyLayout()
	if err != nil {
		return 0, err
	}
	n := j.Components
	if n == 0 {
		n = max(layout.ComponentCount(), 1)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative component count %d", ErrInvalidJob, n)
	}
	return n, nil
}

// Keyframes converts the job into importer input.
func (j *Job) Keyframes() (*keyframe.Keyframes, error) {
	n, err := j.ComponentCount()
	if err != nil {
		return nil, err
	}

	name := j.Interpolation
	if name == "" {
		name = defaultInterpolation
	}
	interp, err := keyframe.ParseInterpolation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}

	kf := &keyframe.Keyframes{
		Times:         j.Times,
		Values:        j.Values,
		InValues:      j.InTangents,
		OutValues:     j.OutTangents,
		Interpolation: interp,
	}
	if len(j.Interpolations) > 0 {
		kf.Interpolations = make([]keyframe.Interpolation, len(j.Interpolations))
		for i, s := range j.Interpolations {
			if kf.Interpolations[i], err = keyframe.ParseInterpolation(s); err != nil {
				return nil, fmt.Errorf("%w: keyframe %d: %w", ErrInvalidJob, i, err)
			}
		}
	}

	if err := kf.Validate(n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	return kf, nil
}

// Channel imports the job and binds it to a fresh Recorder.
func (j *Job) Channel() (*keyframe.Channel, *Recorder, error) {
	n, err := j.ComponentCount()
	if err != nil {
		return nil, nil, err
	}
	layout, err := j.PropertyLayout()
	if err != nil {
		return nil, nil, err
	}
	kf, err := j.Keyframes()
	if err != nil {
		return nil, nil, err
	}

	rec := NewRecorder(n, layout)
	ch, err := keyframe.NewKeyframeChannel(rec, PropertyID, kf)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	return ch, rec, nil
}

// Recorder is an in-memory target with a single property. It keeps a copy
// of the last value it was given.
type Recorder struct {
	layout keyframe.PropertyLayout
	last   []float32
	weight float32
}

// NewRecorder creates a recorder whose property has componentCount
// components arranged as layout.
func NewRecorder(componentCount int, layout keyframe.PropertyLayout) *Recorder {
	return &Recorder{
		layout: layout,
		last:   make([]float32, componentCount),
	}
}

func (r *Recorder) PropertyComponentCount(propertyID int) int {
	if propertyID != PropertyID {
		return 0
	}
	return len(r.last)
}

func (r *Recorder) PropertyLayout(propertyID int) keyframe.PropertyLayout {
	return r.layout
}

func (r *Recorder) SetPropertyValue(propertyID int, value *keyframe.Value, weight float32) {
	value.Floats(0, r.last)
	r.weight = weight
}

// Last returns the most recent value. The slice is reused between updates.
func (r *Recorder) Last() []float32 {
	return r.last
}

// Weight returns the weight of the most recent update.
func (r *Recorder) Weight() float32 {
	return r.weight
}
