// Package resample retimes trajectories to a different sampling rate.
//
// 🚀 What does it do?
//
//	Given a trajectory sampled at a known rate, Resample produces a new
//	trajectory approximating the same continuous signal at a target rate,
//	always preserving the first step and covering the full original
//	duration (N−1)/source.
//
// ✨ Key behaviors:
//   - downsampling decimates by the integer stride ⌊source/target⌋ with no
//     anti-alias filter — a deterministic, lossy reduction whose aliasing
//     is accepted, never warned about
//   - upsampling fits a natural cubic spline per dimension over the source
//     timestamps and evaluates at ⌈duration·target⌉+1 uniform timestamps
//   - angular dimensions (radians) use a rotation spline: samples are
//     unwrapped along the shortest angular path before fitting, and
//     evaluations wrap back into (-π, π], so interpolated angles never
//     tear across the ±π boundary
//   - resampling to the source rate is the identity and returns the input
//
// ⚙️ Usage:
//
//	out, err := resample.Resample(t, 50) // retime t to 50 Hz
//
// Upsampling requires at least MinUpsampleSteps (4) source steps; below
// that a cubic interpolant is undefined and ErrTooFewSamples is returned.
// Untimed trajectories fail with trajectory.ErrNoSampleRate.
//
// Complexity: O(N·D) decimation; O((N+M)·D) upsampling for M output steps.
package resample
