// Package transform provides invertible normalization transforms over
// trajectories.
//
// 🚀 What does it do?
//
//	A family of pure functions Trajectory → Trajectory:
//		• MinMax / UnMinMax     — per-dimension affine rescale into [lo, hi]
//		• Standardize / UnStandardize — zero-mean, unit-variance rescale
//		• PCA                   — full-rank principal-component rotation,
//		  optionally whitened to unit per-component variance
//		• Relative / Absolute   — first-difference encoding and its
//		  prefix-sum inverse
//
// ✨ Design:
//   - no transform mutates its input; each returns a new Trajectory
//   - every inverse takes the forward pass's parameters as explicit
//     arguments (original bounds, original mean/std) instead of storing
//     them implicitly, so round-trips are independently testable
//   - inverse outputs carry the source's RowFactory: Rows() on the result
//     re-materializes typed rows
//   - Apply(t, name, args) preserves the string-keyed API through a closed
//     lookup table — no reflection; unknown names and mismatched arguments
//     fail with errors naming the operation and its expected signature
//
// ⚙️ Usage:
//
//	norm, err := transform.MinMax(t, 0, 1)
//	back, err := transform.UnMinMax(norm, origMin, origMax)
//
//	// string-keyed, e.g. from a config-driven pipeline:
//	norm, err = transform.Apply(t, "minmax", transform.Args{"lo": 0.0, "hi": 1.0})
package transform
