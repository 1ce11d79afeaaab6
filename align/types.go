// Package align defines options and modes for trajectory alignment.
package align

import "errors"

// Sentinel errors for alignment operations.
var (
	// ErrEmptyTrajectory indicates one or both inputs are nil.
	ErrEmptyTrajectory = errors.New("align: both trajectories are required")
	// ErrDimMismatch indicates the two trajectories have different step
	// dimensions, so no per-step distance is defined between them.
	ErrDimMismatch = errors.New("align: trajectories must share the same dimension")
	// ErrPathNeedsMatrix indicates ReturnPath=true with a memory mode that
	// discards the rows needed for backtracking.
	ErrPathNeedsMatrix = errors.New("align: ReturnPath requires MemoryMode=FullMatrix")
	// ErrBadWindow indicates Window < -1.
	ErrBadWindow = errors.New("align: Window must be -1 (unconstrained) or non-negative")
)

// MemoryMode controls how Distance stores its dynamic-programming matrix.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) matrix. Allows distance +
//     full backtrace of the optimal warp path. Memory: O(n·m).
//   - TwoRows   — keep only the current and previous rows. Memory: O(m),
//     distance only; the warp path cannot be recovered.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota
	// TwoRows mode: rolling two-row storage, no path recovery.
	TwoRows
)

// PathPoint pairs step index I of the first trajectory with step index J
// of the second along the optimal warp path.
type PathPoint struct {
	I, J int
}

// Options configures trajectory alignment.
//
// Fields:
//   - Window       — Sakoe–Chiba band: maximum allowed |i−j| between
//     aligned step indices. -1 (the default) disables the constraint.
//   - SlopePenalty — extra cost for insertion/deletion steps, biasing the
//     warp path toward the diagonal.
//   - ReturnPath   — also backtrack and return the optimal warp path;
//     requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix or TwoRows storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns Options with an unconstrained window, no slope
// penalty, no path and full-matrix storage.
func DefaultOptions() Options {
	return Options{Window: -1}
}
