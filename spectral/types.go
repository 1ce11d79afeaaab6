// Package spectral defines result types and sentinel errors for the
// spectral subpackage of github.com/trajolab/trajo.
package spectral

import "errors"

// Sentinel errors for spectral operations.
var (
	// ErrBadCutoff indicates a low-pass cutoff that is zero, negative, NaN
	// or infinite.
	ErrBadCutoff = errors.New("spectral: cutoff frequency must be a positive, finite number of Hz")
)

// Spectrum is the one-sided magnitude spectrum of a trajectory: one row of
// Magnitudes per frequency bin, one column per trajectory dimension.
//
// Freqs ascend from 0 (DC) to the Nyquist frequency rate/2 and have length
// ⌊N/2⌋+1. Magnitudes are amplitude-scaled: interior bins carry 2·|X_k|/N
// so a pure sinusoid of amplitude a shows a peak of height ≈ a; the DC and
// Nyquist bins, which have no mirrored counterpart, carry |X_k|/N.
type Spectrum struct {
	Freqs      []float64
	Magnitudes [][]float64
}
