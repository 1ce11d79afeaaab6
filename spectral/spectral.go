package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	"github.com/trajolab/trajo/trajectory"
)

// Analyze computes the per-dimension one-sided magnitude spectrum of t.
// Returns trajectory.ErrNoSampleRate when t is untimed — frequency bins
// are meaningless without a rate.
// Complexity: O(D·N·log N).
func Analyze(t *trajectory.Trajectory) (*Spectrum, error) {
	rate := t.SampleRateHz()
	if rate == 0 {
		return nil, trajectory.ErrNoSampleRate
	}
	n, d := t.Len(), t.Dims()
	fft := fourier.NewFFT(n)
	bins := n/2 + 1

	sp := &Spectrum{
		Freqs:      make([]float64, bins),
		Magnitudes: make([][]float64, bins),
	}
	for k := 0; k < bins; k++ {
		sp.Freqs[k] = fft.Freq(k) * rate
		sp.Magnitudes[k] = make([]float64, d)
	}

	m := t.Matrix()
	col := make([]float64, n)
	coeff := make([]complex128, bins)
	for j := 0; j < d; j++ {
		mat.Col(col, j, m)
		fft.Coefficients(coeff, col)
		for k := 0; k < bins; k++ {
			scale := 2.0 / float64(n)
			if k == 0 || (n%2 == 0 && k == bins-1) {
				// DC and Nyquist bins have no mirrored counterpart.
				scale = 1.0 / float64(n)
			}
			sp.Magnitudes[k][j] = scale * cmplx.Abs(coeff[k])
		}
	}
	return sp, nil
}

// LowPass filters every dimension of t by zeroing all Fourier
// coefficients above cutoffHz and inverse-transforming, returning a new
// Trajectory at the same rate with the same timing and metadata.
//
// Returns trajectory.ErrNoSampleRate when t is untimed and ErrBadCutoff
// for a non-positive cutoff. A cutoff at or above the Nyquist frequency
// passes the signal through (up to floating-point round-trip noise).
func LowPass(t *trajectory.Trajectory, cutoffHz float64) (*trajectory.Trajectory, error) {
	rate := t.SampleRateHz()
	if rate == 0 {
		return nil, trajectory.ErrNoSampleRate
	}
	if cutoffHz <= 0 || math.IsNaN(cutoffHz) || math.IsInf(cutoffHz, 0) {
		return nil, fmt.Errorf("cutoff %v: %w", cutoffHz, ErrBadCutoff)
	}

	n, d := t.Len(), t.Dims()
	fft := fourier.NewFFT(n)
	bins := n/2 + 1

	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, d)
	}

	m := t.Matrix()
	col := make([]float64, n)
	coeff := make([]complex128, bins)
	inv := 1.0 / float64(n) // fft.Sequence is unnormalized
	for j := 0; j < d; j++ {
		mat.Col(col, j, m)
		fft.Coefficients(coeff, col)
		for k := 0; k < bins; k++ {
			if fft.Freq(k)*rate > cutoffHz {
				coeff[k] = 0
			}
		}
		filtered := fft.Sequence(nil, coeff)
		for i := 0; i < n; i++ {
			out[i][j] = filtered[i] * inv
		}
	}

	return trajectory.New(out, trajectory.Options{
		SampleRateHz: rate,
		TimeIndices:  t.TimeIndices(),
		DimLabels:    t.DimLabels(),
		AngularDims:  t.AngularDims(),
		RowFactory:   t.RowFactory(),
	})
}
