// Package trajo is an in-memory toolkit for analyzing, resampling and
// normalizing multidimensional numeric time series — robot action/state
// trajectories, sensor streams, or any ordered sequence of D-vectors.
//
// 🚀 What is trajo?
//
//	A small, focused library that brings together:
//		• Trajectory container: immutable N×D series with rate, timestamps,
//		  dimension labels and angular-dimension metadata
//		• Descriptive statistics: per-dimension mean, variance, skewness,
//		  kurtosis, quartiles and zero counts
//		• Resampling: integer-stride decimation and cubic-spline upsampling
//		  with rotation-aware interpolation for angular dimensions
//		• Transforms: invertible min-max scaling, standardization, PCA
//		  projection and relative/absolute delta encoding
//		• Spectral analysis: per-dimension magnitude spectra and FFT
//		  low-pass filtering
//		• Alignment: dynamic time warping between trajectories
//
// ✨ Why choose trajo?
//
//   - Immutable values – every operation returns a new Trajectory
//   - Exact inverses – each normalization ships with its inverse, taking
//     the forward pass parameters as explicit arguments
//   - Angular correctness – angles interpolate along the shortest path and
//     stay continuous across the ±π boundary
//   - Pure Go on gonum – no cgo, no hidden state
//
// Everything is organized under five subpackages:
//
//	trajectory/ — the core Trajectory and Stats types
//	resample/   — decimation and spline-based retiming
//	transform/  — forward/inverse normalization pipeline
//	spectral/   — FFT magnitude spectra and low-pass filtering
//	align/      — dynamic time warping distance and warp paths
//
//	go get github.com/trajolab/trajo
package trajo
