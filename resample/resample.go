package resample

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"

	"github.com/trajolab/trajo/trajectory"
)

// Resample retimes t to targetHz and returns the result as a new
// Trajectory carrying the target rate, the generated timestamps, and the
// source's labels, angular spec and row factory.
//
// Behavior:
//   - targetHz == source rate: t itself is returned unchanged (identity).
//   - targetHz <  source rate: decimation by the integer stride
//     ⌊source/target⌋, keeping rows 0, k, 2k, ... No low-pass filter is
//     applied first; aliasing is an accepted property of this reduction.
//   - targetHz >  source rate: per-dimension cubic spline interpolation
//     over the source timestamps, evaluated at
//     linspace(0, (N−1)/source, ⌈duration·target⌉+1). Angular dimensions
//     use a rotation spline instead (see rotspline.go), so interpolated
//     angles follow the shortest angular path and stay continuous across
//     the ±π boundary.
//
// Errors: trajectory.ErrNoSampleRate when t is untimed, ErrBadTargetRate
// for an invalid target, ErrTooFewSamples when upsampling fewer than
// MinUpsampleSteps steps.
// Complexity: O(N·D) for decimation, O((N+M)·D) for upsampling where M is
// the output length.
func Resample(t *trajectory.Trajectory, targetHz float64) (*trajectory.Trajectory, error) {
	sourceHz := t.SampleRateHz()
	if sourceHz == 0 {
		return nil, trajectory.ErrNoSampleRate
	}
	if targetHz <= 0 || math.IsNaN(targetHz) || math.IsInf(targetHz, 0) {
		return nil, fmt.Errorf("target %v: %w", targetHz, ErrBadTargetRate)
	}
	if targetHz == sourceHz {
		return t, nil
	}
	if targetHz < sourceHz {
		return decimate(t, sourceHz, targetHz)
	}
	return upsample(t, sourceHz, targetHz)
}

// decimate keeps every stride-th row starting at index 0. The output
// timestamps are the selected source timestamps j·stride/source, so the
// per-step timing invariant len(times) == len(steps) always holds.
func decimate(t *trajectory.Trajectory, sourceHz, targetHz float64) (*trajectory.Trajectory, error) {
	stride := int(sourceHz / targetHz)
	n := t.Len()
	kept := make([][]float64, 0, n/stride+1)
	times := make([]float64, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		step, err := t.At(i)
		if err != nil {
			return nil, err
		}
		kept = append(kept, step)
		times = append(times, float64(i)/sourceHz)
	}
	return trajectory.New(kept, trajectory.Options{
		SampleRateHz: targetHz,
		TimeIndices:  times,
		DimLabels:    t.DimLabels(),
		AngularDims:  t.AngularDims(),
		RowFactory:   t.RowFactory(),
	})
}

// upsample fits one interpolant per dimension over the uniformly spaced
// source timestamps and evaluates all of them at the target timestamps.
func upsample(t *trajectory.Trajectory, sourceHz, targetHz float64) (*trajectory.Trajectory, error) {
	n := t.Len()
	if n < MinUpsampleSteps {
		return nil, fmt.Errorf("%d steps: %w", n, ErrTooFewSamples)
	}

	duration := float64(n-1) / sourceHz
	outLen := int(math.Ceil(duration*targetHz)) + 1
	outTimes := make([]float64, outLen)
	floats.Span(outTimes, 0, duration)

	srcTimes := make([]float64, n)
	for i := range srcTimes {
		srcTimes[i] = float64(i) / sourceHz
	}

	angular := make(map[int]bool, len(t.AngularDims()))
	for _, idx := range t.AngularDims() {
		angular[idx] = true
	}

	m := t.Matrix()
	d := t.Dims()
	out := make([][]float64, outLen)
	for i := range out {
		out[i] = make([]float64, d)
	}

	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, m)
		var predict func(x float64) float64
		if angular[j] {
			rs, err := fitRotationSpline(srcTimes, col)
			if err != nil {
				return nil, fmt.Errorf("resample: angular dimension %d: %w", j, err)
			}
			predict = rs.Predict
		} else {
			var nc interp.NaturalCubic
			if err := nc.Fit(srcTimes, col); err != nil {
				return nil, fmt.Errorf("resample: dimension %d: %w", j, err)
			}
			predict = nc.Predict
		}
		for i, x := range outTimes {
			out[i][j] = predict(x)
		}
	}

	return trajectory.New(out, trajectory.Options{
		SampleRateHz: targetHz,
		TimeIndices:  outTimes,
		DimLabels:    t.DimLabels(),
		AngularDims:  t.AngularDims(),
		RowFactory:   t.RowFactory(),
	})
}
