package trajectory

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Trajectory is an ordered sequence of N steps, each a D-dimensional
// numeric vector, with optional timing and dimension metadata.
//
// A Trajectory is immutable after construction: every operation in this
// module returns a new instance and never mutates or aliases the caller's
// data. The materialized matrix and the descriptive statistics are built
// lazily on first access and memoized behind sync.Once, so concurrent
// reads of a single instance are safe.
type Trajectory struct {
	steps   [][]float64
	dims    int
	rateHz  float64 // 0 = untimed
	timeIdx []float64
	labels  []string
	angular []int
	factory RowFactory

	matrixOnce sync.Once
	matrix     *mat.Dense
	statsOnce  sync.Once
	stats      *Stats
}

// New constructs a Trajectory from raw numeric steps and options.
// The steps are copied; later mutation of the input does not affect the
// trajectory.
//
// Returns ErrEmptyTrajectory for zero steps, ErrRaggedRows for non-uniform
// step dimensions, ErrBadSampleRate / ErrTimeIndexLength / ErrLabelLength
// for inconsistent metadata, and ErrUnknownDimension / ErrDimIndexRange for
// an angular specification that does not resolve.
// Complexity: O(N·D) time and memory.
func New(steps [][]float64, opts Options) (*Trajectory, error) {
	n := len(steps)
	if n == 0 {
		return nil, ErrEmptyTrajectory
	}
	d := len(steps[0])
	if d == 0 {
		return nil, ErrRaggedRows
	}

	cp := make([][]float64, n)
	for i, s := range steps {
		if len(s) != d {
			return nil, fmt.Errorf("step %d has dimension %d, want %d: %w", i, len(s), d, ErrRaggedRows)
		}
		cp[i] = make([]float64, d)
		copy(cp[i], s)
	}

	t := &Trajectory{steps: cp, dims: d, factory: opts.RowFactory}

	if opts.SampleRateHz != 0 {
		if opts.SampleRateHz < 0 || math.IsNaN(opts.SampleRateHz) || math.IsInf(opts.SampleRateHz, 0) {
			return nil, fmt.Errorf("rate %v: %w", opts.SampleRateHz, ErrBadSampleRate)
		}
		t.rateHz = opts.SampleRateHz
	}

	switch {
	case opts.TimeIndices != nil:
		if len(opts.TimeIndices) != n {
			return nil, fmt.Errorf("%d time indices for %d steps: %w", len(opts.TimeIndices), n, ErrTimeIndexLength)
		}
		t.timeIdx = append([]float64(nil), opts.TimeIndices...)
	case t.rateHz > 0:
		// Derived timing: step i occurs at i/rate seconds.
		t.timeIdx = make([]float64, n)
		for i := range t.timeIdx {
			t.timeIdx[i] = float64(i) / t.rateHz
		}
	}

	if opts.DimLabels != nil {
		if len(opts.DimLabels) != d {
			return nil, fmt.Errorf("%d labels for dimension %d: %w", len(opts.DimLabels), d, ErrLabelLength)
		}
		t.labels = append([]string(nil), opts.DimLabels...)
	} else {
		t.labels = make([]string, d)
		for i := range t.labels {
			t.labels[i] = fmt.Sprintf("dim%d", i)
		}
	}

	angular, err := t.resolveAngular(opts.AngularDims, opts.AngularLabels)
	if err != nil {
		return nil, err
	}
	t.angular = angular

	return t, nil
}

// FromRows constructs a Trajectory from typed rows by flattening each row
// through its Vector method. When opts.RowFactory is nil it stays nil; pass
// the factory matching the row type to enable re-typed transform output.
func FromRows(rows []Row, opts Options) (*Trajectory, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTrajectory
	}
	steps := make([][]float64, len(rows))
	for i, r := range rows {
		steps[i] = r.Vector()
	}
	return New(steps, opts)
}

// resolveAngular merges index- and label-form angular specifications into a
// sorted, deduplicated index set.
func (t *Trajectory) resolveAngular(indices []int, labels []string) ([]int, error) {
	if len(indices) == 0 && len(labels) == 0 {
		return nil, nil
	}
	seen := make(map[int]bool, len(indices)+len(labels))
	for _, idx := range indices {
		if idx < 0 || idx >= t.dims {
			return nil, fmt.Errorf("angular index %d with dimension %d: %w", idx, t.dims, ErrDimIndexRange)
		}
		seen[idx] = true
	}
	for _, lbl := range labels {
		idx := -1
		for i, name := range t.labels {
			if name == lbl {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("angular label %q: %w", lbl, ErrUnknownDimension)
		}
		seen[idx] = true
	}
	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out, nil
}

// Len returns the number of steps N.
func (t *Trajectory) Len() int { return len(t.steps) }

// Dims returns the dimension D of each step.
func (t *Trajectory) Dims() int { return t.dims }

// SampleRateHz returns the sampling rate in Hz, or 0 for an untimed
// trajectory.
func (t *Trajectory) SampleRateHz() float64 { return t.rateHz }

// TimeIndices returns a copy of the per-step timestamps in seconds, or nil
// for an untimed trajectory without explicit timestamps.
func (t *Trajectory) TimeIndices() []float64 {
	if t.timeIdx == nil {
		return nil
	}
	return append([]float64(nil), t.timeIdx...)
}

// DimLabels returns a copy of the per-dimension labels.
func (t *Trajectory) DimLabels() []string {
	return append([]string(nil), t.labels...)
}

// AngularDims returns a sorted copy of the angular dimension indices.
func (t *Trajectory) AngularDims() []int {
	if t.angular == nil {
		return nil
	}
	return append([]int(nil), t.angular...)
}

// RowFactory returns the typed-row factory, or nil when none was supplied.
func (t *Trajectory) RowFactory() RowFactory { return t.factory }

// At returns a copy of step i. Returns ErrStepIndexRange for i outside
// [0, N).
func (t *Trajectory) At(i int) ([]float64, error) {
	if i < 0 || i >= len(t.steps) {
		return nil, fmt.Errorf("index %d with length %d: %w", i, len(t.steps), ErrStepIndexRange)
	}
	return append([]float64(nil), t.steps[i]...), nil
}

// Steps returns a fresh deep copy of all steps. Each call allocates anew,
// so ranging over the result is a restartable forward pass.
func (t *Trajectory) Steps() [][]float64 {
	out := make([][]float64, len(t.steps))
	for i, s := range t.steps {
		out[i] = append([]float64(nil), s...)
	}
	return out
}

// Slice returns a new Trajectory over steps [i, j), carrying the rate,
// the sliced timestamps, the labels, the angular spec and the row factory.
// Returns ErrStepIndexRange for an out-of-range window and
// ErrEmptyTrajectory for an empty one.
func (t *Trajectory) Slice(i, j int) (*Trajectory, error) {
	if i < 0 || j > len(t.steps) {
		return nil, fmt.Errorf("window [%d, %d) with length %d: %w", i, j, len(t.steps), ErrStepIndexRange)
	}
	if i >= j {
		return nil, fmt.Errorf("window [%d, %d): %w", i, j, ErrEmptyTrajectory)
	}
	var times []float64
	if t.timeIdx != nil {
		times = t.timeIdx[i:j]
	}
	return New(t.steps[i:j], Options{
		SampleRateHz: t.rateHz,
		TimeIndices:  times,
		DimLabels:    t.labels,
		AngularDims:  t.angular,
		RowFactory:   t.factory,
	})
}

// Map applies fn to a copy of every step and returns a new Trajectory over
// the results, carrying all metadata except the dimension labels when fn
// changes the dimension. Returns ErrRaggedRows when fn yields vectors of
// inconsistent or zero length — the moral equivalent of a TypeError from a
// mapping whose output cannot feed numeric conversion downstream.
func (t *Trajectory) Map(fn func(step []float64) []float64) (*Trajectory, error) {
	mapped := make([][]float64, len(t.steps))
	outDim := -1
	for i := range t.steps {
		in := append([]float64(nil), t.steps[i]...)
		out := fn(in)
		if outDim == -1 {
			outDim = len(out)
		}
		if len(out) == 0 || len(out) != outDim {
			return nil, fmt.Errorf("map output at step %d has length %d, want %d: %w", i, len(out), outDim, ErrRaggedRows)
		}
		mapped[i] = out
	}
	opts := Options{
		SampleRateHz: t.rateHz,
		TimeIndices:  t.timeIdx,
		AngularDims:  nil,
		RowFactory:   nil,
	}
	if outDim == t.dims {
		// Dimension preserved: labels, angular spec and factory stay valid.
		opts.DimLabels = t.labels
		opts.AngularDims = t.angular
		opts.RowFactory = t.factory
	}
	return New(mapped, opts)
}

// Matrix returns the N×D materialized view of the trajectory. The matrix
// is built on first access and cached; treat it as read-only — mutating it
// breaks the immutability contract shared by every operation in this
// module. Derived packages copy out of it, never write into it.
func (t *Trajectory) Matrix() *mat.Dense {
	t.matrixOnce.Do(func() {
		flat := make([]float64, 0, len(t.steps)*t.dims)
		for _, s := range t.steps {
			flat = append(flat, s...)
		}
		t.matrix = mat.NewDense(len(t.steps), t.dims, flat)
	})
	return t.matrix
}

// Equal reports approximate numeric equality of the two trajectories'
// matrices within EqualTol. Shape mismatches are unequal, never an error,
// which keeps round-trip assertions robust to floating-point noise.
func (t *Trajectory) Equal(other *Trajectory) bool {
	if other == nil {
		return false
	}
	if t.Len() != other.Len() || t.dims != other.dims {
		return false
	}
	return mat.EqualApprox(t.Matrix(), other.Matrix(), EqualTol)
}

// Rows re-materializes every step as a typed row through the RowFactory.
// Returns ErrNoRowFactory when the trajectory was built without one.
func (t *Trajectory) Rows() ([]Row, error) {
	if t.factory == nil {
		return nil, ErrNoRowFactory
	}
	rows := make([]Row, len(t.steps))
	for i, s := range t.steps {
		rows[i] = t.factory(append([]float64(nil), s...))
	}
	return rows, nil
}

// String summarizes the trajectory shape and rate.
func (t *Trajectory) String() string {
	if t.rateHz > 0 {
		return fmt.Sprintf("Trajectory(steps=%d, dims=%d, rate=%gHz)", len(t.steps), t.dims, t.rateHz)
	}
	return fmt.Sprintf("Trajectory(steps=%d, dims=%d, untimed)", len(t.steps), t.dims)
}
