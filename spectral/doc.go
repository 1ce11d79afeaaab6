// Package spectral provides frequency-domain analysis of trajectories.
//
// 🚀 What does it do?
//
//	Two operations over a timed trajectory:
//		• Analyze — the per-dimension one-sided FFT magnitude spectrum,
//		  with frequency bins in Hz up to Nyquist (rate/2)
//		• LowPass — zero every Fourier coefficient above a cutoff and
//		  inverse-transform, yielding a filtered Trajectory at the same
//		  rate
//
// ⚙️ Usage:
//
//	sp, err := spectral.Analyze(t)       // inspect dominant frequencies
//	smooth, err := spectral.LowPass(t, 2) // drop content above 2 Hz
//
// Both operations require a sample rate and fail with
// trajectory.ErrNoSampleRate on untimed trajectories. Built on the real
// FFT from gonum/dsp/fourier.
//
// Complexity: O(D·N·log N) time, O(N·D) memory.
package spectral
