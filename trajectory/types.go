// Package trajectory defines core types, options, and sentinel errors
// for the trajectory subpackage of github.com/trajolab/trajo.
package trajectory

import "errors"

// Sentinel errors for trajectory construction and access.
var (
	// ErrEmptyTrajectory indicates a trajectory with zero steps was supplied
	// to a constructor or to an operation that requires at least one step.
	ErrEmptyTrajectory = errors.New("trajectory: at least one step is required")
	// ErrRaggedRows indicates the steps do not all share the same dimension.
	ErrRaggedRows = errors.New("trajectory: all steps must share the same dimension")
	// ErrBadSampleRate indicates a sample rate that is negative, zero where
	// one is required, NaN or infinite.
	ErrBadSampleRate = errors.New("trajectory: sample rate must be a positive, finite number of Hz")
	// ErrNoSampleRate indicates a time-aware operation was requested on a
	// trajectory constructed without a sample rate.
	ErrNoSampleRate = errors.New("trajectory: operation requires a sample rate")
	// ErrTimeIndexLength indicates len(TimeIndices) != number of steps.
	ErrTimeIndexLength = errors.New("trajectory: time indices must match the number of steps")
	// ErrLabelLength indicates len(DimLabels) != dimension.
	ErrLabelLength = errors.New("trajectory: dimension labels must match the dimension")
	// ErrUnknownDimension indicates an angular dimension label that does not
	// resolve against the trajectory's dimension labels.
	ErrUnknownDimension = errors.New("trajectory: angular dimension label does not match any dimension label")
	// ErrDimIndexRange indicates a dimension index outside [0, D).
	ErrDimIndexRange = errors.New("trajectory: dimension index out of range")
	// ErrStepIndexRange indicates a step index outside [0, N).
	ErrStepIndexRange = errors.New("trajectory: step index out of range")
	// ErrNoRowFactory indicates typed rows were requested from a trajectory
	// constructed without a RowFactory.
	ErrNoRowFactory = errors.New("trajectory: no row factory configured")
	// ErrBadQuantile indicates a quantile probability outside [0, 1].
	ErrBadQuantile = errors.New("trajectory: quantile probability must be in [0, 1]")
)

// Row is the inbound adapter contract: any typed record that can flatten
// itself into a numeric vector. The library never inspects a row beyond
// this single method.
type Row interface {
	// Vector returns the row as a flat numeric vector. The returned slice
	// must not alias internal state the caller may later mutate.
	Vector() []float64
}

// RowFactory reconstructs a typed row from a flat D-vector. It is the
// inverse of Row.Vector and is used by transforms documented to re-emit
// typed rows (see the transform package's UnMinMax and UnStandardize).
type RowFactory func(vec []float64) Row

// Options contains the optional metadata accepted by New and FromRows.
//
// Fields:
//   - SampleRateHz  — sampling rate in Hz; 0 means the trajectory is
//     untimed and every time-aware operation will fail with
//     ErrNoSampleRate.
//   - TimeIndices   — explicit per-step timestamps (seconds); when absent
//     and SampleRateHz is set, timestamps are derived as i/SampleRateHz.
//   - DimLabels     — one name per dimension; synthesized as "dim0",
//     "dim1", ... when absent.
//   - AngularDims   — indices of dimensions holding angles in radians,
//     which resampling must interpolate along the shortest angular path.
//   - AngularLabels — the same specification by label; resolved against
//     DimLabels at construction and merged with AngularDims.
//   - RowFactory    — optional factory for re-materializing typed rows.
type Options struct {
	SampleRateHz  float64
	TimeIndices   []float64
	DimLabels     []string
	AngularDims   []int
	AngularLabels []string
	RowFactory    RowFactory
}

// DefaultOptions returns an Options with no rate, no metadata and no
// factory: a bare, untimed trajectory.
func DefaultOptions() Options {
	return Options{}
}

// EqualTol is the absolute tolerance used by Trajectory.Equal when
// comparing two materialized matrices element-wise.
const EqualTol = 1e-8
