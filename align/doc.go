// Package align measures similarity between trajectories via dynamic time
// warping, with an optional warp path and memory optimizations.
//
// 🚀 What is it for?
//
//	Two recordings of the same motion rarely line up step for step: one
//	robot arm moves slower, one sensor drops samples, one demonstration
//	pauses mid-gesture. Dynamic time warping finds the monotone pairing of
//	steps that minimizes the total per-step Euclidean distance, giving a
//	pacing-insensitive distance between trajectories.
//
// ✨ Key features:
//   - multidimensional: cost is the Euclidean distance between D-vectors
//   - full-matrix mode: exact O(N·M) time and memory, warp path on demand
//   - two-row mode: O(min side) memory when only the distance matters
//   - optional Sakoe–Chiba window (|i−j| ≤ w) and slope penalty
//
// ⚙️ Usage:
//
//	opts := align.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := align.Distance(recorded, reference, opts)
//
// Both inputs must share the same step dimension; lengths may differ.
package align
