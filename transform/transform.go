package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/trajolab/trajo/trajectory"
)

// Every transform here is a pure function from one Trajectory to a new
// one: the input is never mutated and the output shares no storage with
// it. Each normalization has an inverse taking the forward pass's
// parameters as explicit arguments, so round-trip correctness is testable
// without hidden state.

// MinMax rescales every dimension affinely into [lo, hi] using the
// trajectory's own per-dimension minimum and maximum. A dimension with
// zero range is shifted to lo without scaling. Returns ErrBadBounds unless
// lo < hi and both are finite.
func MinMax(t *trajectory.Trajectory, lo, hi float64) (*trajectory.Trajectory, error) {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("lo=%v hi=%v: %w", lo, hi, ErrBadBounds)
	}
	s := t.Stats()
	return mapDims(t, func(j int, v float64) float64 {
		return (v-s.Min[j])/nonZero(s.Max[j]-s.Min[j])*(hi-lo) + lo
	})
}

// UnMinMax reverses a prior min-max scaling: the trajectory's own
// per-dimension range is mapped onto the supplied original bounds. An
// exact round-trip requires origMin/origMax be the exact bounds of the
// matrix that entered the forward pass. The output trajectory carries the
// source's RowFactory, so Rows() re-materializes typed rows.
func UnMinMax(t *trajectory.Trajectory, origMin, origMax []float64) (*trajectory.Trajectory, error) {
	if len(origMin) != t.Dims() || len(origMax) != t.Dims() {
		return nil, fmt.Errorf("origMin len %d, origMax len %d, dimension %d: %w",
			len(origMin), len(origMax), t.Dims(), ErrLengthMismatch)
	}
	s := t.Stats()
	return mapDims(t, func(j int, v float64) float64 {
		return (v-s.Min[j])/nonZero(s.Max[j]-s.Min[j])*(origMax[j]-origMin[j]) + origMin[j]
	})
}

// Standardize rescales every dimension to zero mean and unit variance
// using the trajectory's own mean and population standard deviation. A
// dimension with zero spread is centered without scaling.
func Standardize(t *trajectory.Trajectory) (*trajectory.Trajectory, error) {
	s := t.Stats()
	std := make([]float64, len(s.Variance))
	for j, v := range s.Variance {
		std[j] = math.Sqrt(v)
	}
	return mapDims(t, func(j int, v float64) float64 {
		return (v - s.Mean[j]) / nonZero(std[j])
	})
}

// UnStandardize reverses a prior standardization given the original mean
// and standard deviation. The output carries the source's RowFactory, so
// Rows() re-materializes typed rows.
func UnStandardize(t *trajectory.Trajectory, mean, std []float64) (*trajectory.Trajectory, error) {
	if len(mean) != t.Dims() || len(std) != t.Dims() {
		return nil, fmt.Errorf("mean len %d, std len %d, dimension %d: %w",
			len(mean), len(std), t.Dims(), ErrLengthMismatch)
	}
	return mapDims(t, func(j int, v float64) float64 {
		return v*std[j] + mean[j]
	})
}

// PCA projects every step onto the full set of principal components of
// the trajectory's matrix — component count equals dimensionality, so this
// is a rotation of the data, not a reduction. With whiten, each component
// is additionally scaled to unit variance. Requires at least 2 steps.
func PCA(t *trajectory.Trajectory, whiten bool) (*trajectory.Trajectory, error) {
	n, d := t.Len(), t.Dims()
	// Full-rank projection needs at least as many observations as
	// dimensions (and never fewer than two).
	if n < 2 || n < d {
		return nil, fmt.Errorf("pca on %d steps of dimension %d: %w", n, d, ErrTooFewSamples)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(t.Matrix(), nil); !ok {
		return nil, ErrPCAFailed
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	vars := pc.VarsTo(nil)

	mean := t.Stats().Mean
	m := t.Matrix()
	out := make([][]float64, n)
	centered := make([]float64, d)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			centered[j] = m.At(i, j) - mean[j]
		}
		row := make([]float64, d)
		for k := 0; k < d; k++ {
			var acc float64
			for j := 0; j < d; j++ {
				acc += centered[j] * vecs.At(j, k)
			}
			if whiten {
				acc /= nonZero(math.Sqrt(vars[k]))
			}
			row[k] = acc
		}
		out[i] = row
	}
	return rebuild(t, out, t.TimeIndices())
}

// Relative converts absolute steps into first differences, dropping the
// first timestamp: output step i is input step i+1 minus input step i.
// Requires at least 2 steps.
func Relative(t *trajectory.Trajectory) (*trajectory.Trajectory, error) {
	n, d := t.Len(), t.Dims()
	if n < 2 {
		return nil, fmt.Errorf("relative needs at least 2 steps, have %d: %w", n, ErrTooFewSamples)
	}
	m := t.Matrix()
	out := make([][]float64, n-1)
	for i := 0; i < n-1; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			row[j] = m.At(i+1, j) - m.At(i, j)
		}
		out[i] = row
	}
	var times []float64
	if src := t.TimeIndices(); src != nil {
		times = src[1:]
	}
	return rebuild(t, out, times)
}

// Absolute converts relative steps back into absolute ones by prefix
// summation plus an initial offset; a nil initial means the zero vector.
// Output step i is initial + Σ input steps 0..i, the inverse of Relative
// when initial is the first row of the original.
func Absolute(t *trajectory.Trajectory, initial []float64) (*trajectory.Trajectory, error) {
	d := t.Dims()
	if initial == nil {
		initial = make([]float64, d)
	}
	if len(initial) != d {
		return nil, fmt.Errorf("initial len %d, dimension %d: %w", len(initial), d, ErrLengthMismatch)
	}
	n := t.Len()
	m := t.Matrix()
	out := make([][]float64, n)
	acc := append([]float64(nil), initial...)
	for i := 0; i < n; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			acc[j] += m.At(i, j)
			row[j] = acc[j]
		}
		out[i] = row
	}
	return rebuild(t, out, t.TimeIndices())
}

// mapDims applies an element-wise, dimension-indexed function to the
// trajectory's matrix and rebuilds with unchanged timing.
func mapDims(t *trajectory.Trajectory, fn func(j int, v float64) float64) (*trajectory.Trajectory, error) {
	n, d := t.Len(), t.Dims()
	m := t.Matrix()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			row[j] = fn(j, m.At(i, j))
		}
		out[i] = row
	}
	return rebuild(t, out, t.TimeIndices())
}

// rebuild assembles a transform result, carrying the source's rate,
// labels, angular spec and row factory.
func rebuild(t *trajectory.Trajectory, steps [][]float64, times []float64) (*trajectory.Trajectory, error) {
	return trajectory.New(steps, trajectory.Options{
		SampleRateHz: t.SampleRateHz(),
		TimeIndices:  times,
		DimLabels:    t.DimLabels(),
		AngularDims:  t.AngularDims(),
		RowFactory:   t.RowFactory(),
	})
}

// nonZero guards divisions by a degenerate (zero-width) scale: the
// dimension passes through shifted only.
func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
