// Package resample defines sentinel errors for the resample subpackage of
// github.com/trajolab/trajo.
package resample

import "errors"

// Sentinel errors for resampling operations.
var (
	// ErrBadTargetRate indicates a target rate that is zero, negative, NaN
	// or infinite.
	ErrBadTargetRate = errors.New("resample: target rate must be a positive, finite number of Hz")
	// ErrTooFewSamples indicates an upsampling request on a trajectory with
	// fewer than MinUpsampleSteps steps, below which a cubic interpolant is
	// undefined.
	ErrTooFewSamples = errors.New("resample: cubic upsampling requires at least 4 steps")
)

// MinUpsampleSteps is the smallest trajectory length that supports cubic
// upsampling.
const MinUpsampleSteps = 4
