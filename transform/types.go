// Package transform defines argument types and sentinel errors for the
// transform subpackage of github.com/trajolab/trajo.
package transform

import "errors"

// Sentinel errors for transform operations.
var (
	// ErrUnknownOp indicates an operation name with no entry in the
	// dispatch table. The wrapping error names the attempted operation and
	// lists the known ones.
	ErrUnknownOp = errors.New("transform: unknown operation")
	// ErrBadArgument indicates an Apply argument that is unknown, has the
	// wrong type, or is required but missing. The wrapping error names the
	// operation and echoes its expected signature.
	ErrBadArgument = errors.New("transform: bad argument")
	// ErrBadBounds indicates min-max bounds with lo >= hi or non-finite
	// values.
	ErrBadBounds = errors.New("transform: bounds must satisfy lo < hi and be finite")
	// ErrLengthMismatch indicates a per-dimension parameter vector whose
	// length differs from the trajectory dimension.
	ErrLengthMismatch = errors.New("transform: parameter length must match the trajectory dimension")
	// ErrTooFewSamples indicates a transform that needs more steps than the
	// trajectory has (PCA and Relative need at least 2).
	ErrTooFewSamples = errors.New("transform: not enough steps for this operation")
	// ErrPCAFailed indicates the principal-component decomposition did not
	// succeed on the input matrix.
	ErrPCAFailed = errors.New("transform: principal component decomposition failed")
)

// Args carries the keyword arguments of a named operation for Apply. Keys
// and value types must match the operation's signature; Apply rejects
// unknown keys and mistyped values with ErrBadArgument.
type Args map[string]any
