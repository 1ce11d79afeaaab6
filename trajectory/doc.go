// Package trajectory provides the core container for multidimensional
// numeric time series and their descriptive statistics.
//
// 🚀 What is a Trajectory?
//
//	An immutable, ordered sequence of N steps, each a D-dimensional vector,
//	optionally carrying a sample rate, per-step timestamps, per-dimension
//	labels and a set of angular dimensions (angles in radians that must be
//	interpolated along the shortest path — see the resample package).
//
// ✨ Key features:
//   - value semantics: construction copies, operations return new instances
//   - lazy, race-free materialization: the N×D matrix and the Stats summary
//     are built once on first access behind sync.Once
//   - typed-row adapter: any record implementing Row can be ingested, and a
//     RowFactory re-materializes typed rows after inverse transforms
//   - tolerance-based equality for robust round-trip testing
//
// ⚙️ Usage:
//
//	t, err := trajectory.New(steps, trajectory.Options{
//	  SampleRateHz:  5,
//	  DimLabels:     []string{"x", "y", "z", "roll", "pitch", "yaw"},
//	  AngularLabels: []string{"roll", "pitch", "yaw"},
//	})
//	if err != nil { ... }
//	fmt.Println(t.Stats().Mean)
//
// Statistics are population (biased) estimators along axis 0 — one value
// per dimension — with quartiles interpolated linearly between order
// statistics.
package trajectory
