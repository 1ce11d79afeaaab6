package trajectory

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Stats is an immutable per-dimension summary of a trajectory. Every field
// holds one value per dimension (length D), even for D == 1.
//
// Variance, Skewness and Kurtosis are population (biased) estimators:
// central moments divided by N, with Kurtosis reported as excess kurtosis
// (a normal distribution scores 0). Quartiles use linear interpolation
// between order statistics.
type Stats struct {
	Mean          []float64
	Variance      []float64
	Skewness      []float64
	Kurtosis      []float64
	Min           []float64
	Max           []float64
	LowerQuartile []float64
	Median        []float64
	UpperQuartile []float64
	NonZeroCount  []int
	ZeroCount     []int
}

// Stats returns the descriptive statistics of the trajectory, computed on
// first call and cached for the lifetime of the instance. It cannot fail:
// the constructor guarantees N ≥ 1 and D ≥ 1.
func (t *Trajectory) Stats() *Stats {
	t.statsOnce.Do(func() {
		s, err := Describe(t.Matrix())
		if err != nil {
			// Unreachable for a constructed Trajectory; keep the contract loud.
			panic(fmt.Sprintf("trajectory: stats on constructed trajectory: %v", err))
		}
		t.stats = s
	})
	return t.stats
}

// Describe computes per-dimension descriptive statistics along axis 0 of
// an N×D matrix: one entry per column, across rows. Returns
// ErrEmptyTrajectory when the matrix has no rows or no columns.
// Complexity: O(N·D + D·N·log N) time (the log factor from quartile sorts).
func Describe(m mat.Matrix) (*Stats, error) {
	n, d := m.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyTrajectory
	}

	s := &Stats{
		Mean:          make([]float64, d),
		Variance:      make([]float64, d),
		Skewness:      make([]float64, d),
		Kurtosis:      make([]float64, d),
		Min:           make([]float64, d),
		Max:           make([]float64, d),
		LowerQuartile: make([]float64, d),
		Median:        make([]float64, d),
		UpperQuartile: make([]float64, d),
		NonZeroCount:  make([]int, d),
		ZeroCount:     make([]int, d),
	}

	col := make([]float64, n)
	sorted := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, m)

		mean := stat.Mean(col, nil)
		var m2, m3, m4 float64
		minV, maxV := col[0], col[0]
		nonZero := 0
		for _, v := range col {
			dev := v - mean
			sq := dev * dev
			m2 += sq
			m3 += sq * dev
			m4 += sq * sq
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
			if v != 0 {
				nonZero++
			}
		}
		inv := 1.0 / float64(n)
		m2 *= inv
		m3 *= inv
		m4 *= inv

		s.Mean[j] = mean
		s.Variance[j] = m2
		if m2 > 0 {
			s.Skewness[j] = m3 / math.Pow(m2, 1.5)
			s.Kurtosis[j] = m4/(m2*m2) - 3
		}
		s.Min[j] = minV
		s.Max[j] = maxV
		s.NonZeroCount[j] = nonZero
		s.ZeroCount[j] = n - nonZero

		copy(sorted, col)
		sort.Float64s(sorted)
		s.LowerQuartile[j] = quantileSorted(sorted, 0.25)
		s.Median[j] = quantileSorted(sorted, 0.50)
		s.UpperQuartile[j] = quantileSorted(sorted, 0.75)
	}
	return s, nil
}

// Mean returns the per-dimension mean. Shorthand for Stats().Mean.
func (t *Trajectory) Mean() []float64 {
	return append([]float64(nil), t.Stats().Mean...)
}

// Std returns the per-dimension population standard deviation.
func (t *Trajectory) Std() []float64 {
	v := t.Stats().Variance
	out := make([]float64, len(v))
	for i := range v {
		out[i] = math.Sqrt(v[i])
	}
	return out
}

// Quantile returns the per-dimension p-quantile for p in [0, 1], using
// linear interpolation between closest order statistics (the convention
// behind the quartiles in Stats). Returns ErrBadQuantile for p outside
// [0, 1].
func (t *Trajectory) Quantile(p float64) ([]float64, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, fmt.Errorf("p=%v: %w", p, ErrBadQuantile)
	}
	m := t.Matrix()
	n, d := m.Dims()
	out := make([]float64, d)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, m)
		sort.Float64s(col)
		out[j] = quantileSorted(col, p)
	}
	return out, nil
}

// quantileSorted interpolates the p-quantile of an ascending slice:
// position h = p·(n−1), value x[⌊h⌋] + (h−⌊h⌋)·(x[⌊h⌋+1] − x[⌊h⌋]).
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
