package resample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trajolab/trajo/resample"
	"github.com/trajolab/trajo/trajectory"
)

// timed builds an N-step trajectory at the given rate, failing the test on
// construction errors.
func timed(t *testing.T, steps [][]float64, rateHz float64, extra trajectory.Options) *trajectory.Trajectory {
	t.Helper()
	extra.SampleRateHz = rateHz
	tr, err := trajectory.New(steps, extra)
	require.NoError(t, err)
	return tr
}

// TestResample_RequiresRate verifies untimed trajectories cannot be
// resampled.
func TestResample_RequiresRate(t *testing.T) {
	tr, err := trajectory.New([][]float64{{1}, {2}}, trajectory.DefaultOptions())
	require.NoError(t, err)

	_, err = resample.Resample(tr, 2)
	assert.ErrorIs(t, err, trajectory.ErrNoSampleRate)
}

// TestResample_BadTargetRate verifies rejection of non-positive and
// non-finite targets.
func TestResample_BadTargetRate(t *testing.T) {
	tr := timed(t, [][]float64{{1}, {2}}, 1, trajectory.Options{})
	for _, target := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		_, err := resample.Resample(tr, target)
		assert.ErrorIs(t, err, resample.ErrBadTargetRate, "target %v must error", target)
	}
}

// TestResample_Identity verifies resampling to the source rate returns the
// same instance, not a copy.
func TestResample_Identity(t *testing.T) {
	tr := timed(t, [][]float64{{1}, {2}, {3}}, 5, trajectory.Options{})
	got, err := resample.Resample(tr, 5)
	require.NoError(t, err)
	assert.Same(t, tr, got)
}

// TestResample_Downsample verifies stride-based decimation: halving the
// rate of a 4-step 1 Hz trajectory keeps rows 0 and 2 with their source
// timestamps.
func TestResample_Downsample(t *testing.T) {
	tr := timed(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{10, 11, 12},
	}, 1, trajectory.Options{})

	got, err := resample.Resample(tr, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {7, 8, 9}}, got.Steps())
	assert.Equal(t, 0.5, got.SampleRateHz())
	assert.Equal(t, []float64{0, 2}, got.TimeIndices(), "timestamps of the kept source rows")
}

// TestResample_DownsampleStride verifies the general ⌊source/target⌋ stride
// over a longer trajectory.
func TestResample_DownsampleStride(t *testing.T) {
	steps := make([][]float64, 9)
	for i := range steps {
		steps[i] = []float64{float64(i)}
	}
	tr := timed(t, steps, 3, trajectory.Options{})

	got, err := resample.Resample(tr, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}, {3}, {6}}, got.Steps(), "stride 3 keeps rows 0, 3, 6")
}

// TestResample_UpsampleTooShort verifies cubic upsampling needs at least
// four steps.
func TestResample_UpsampleTooShort(t *testing.T) {
	tr := timed(t, [][]float64{{1}, {2}, {3}}, 1, trajectory.Options{})
	_, err := resample.Resample(tr, 2)
	assert.ErrorIs(t, err, resample.ErrTooFewSamples)
}

// TestResample_Upsample verifies the doubled-rate output length, its
// timestamps, and that the spline passes through every source sample.
func TestResample_Upsample(t *testing.T) {
	tr := timed(t, [][]float64{
		{0, 10},
		{1, 20},
		{2, 30},
		{3, 40},
	}, 1, trajectory.Options{})

	got, err := resample.Resample(tr, 2)
	require.NoError(t, err)

	// duration 3s at 2 Hz → ⌈6⌉+1 = 7 rows over [0, 3].
	require.Equal(t, 7, got.Len())
	assert.Equal(t, 2.0, got.SampleRateHz())
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}, got.TimeIndices(), 1e-12)

	// Even output indices land on the source timestamps, where the
	// interpolant reproduces the samples exactly.
	out := got.Steps()
	src := tr.Steps()
	for i, row := range src {
		assert.InDeltaSlice(t, row, out[2*i], 1e-9, "knot %d", i)
	}

	// The source dimensions are linear in time, and a natural cubic spline
	// reproduces linear data exactly, midpoints included.
	assert.InDeltaSlice(t, []float64{0.5, 15}, out[1], 1e-9)
	assert.InDeltaSlice(t, []float64{2.5, 35}, out[5], 1e-9)
}

// TestResample_UpsampleAngular verifies angular dimensions interpolate
// along the shortest angular path across the ±π boundary instead of
// swinging through zero.
func TestResample_UpsampleAngular(t *testing.T) {
	tr := timed(t, [][]float64{
		{0, 3.0},
		{1, 3.1},
		{2, -3.1},
		{3, -3.0},
	}, 1, trajectory.Options{
		DimLabels:     []string{"x", "yaw"},
		AngularLabels: []string{"yaw"},
	})

	got, err := resample.Resample(tr, 2)
	require.NoError(t, err)
	out := got.Steps()

	// Midway between 3.1 and −3.1 the shortest path crosses π, so the
	// interpolated yaw must sit near ±π — a naive spline would pass near 0.
	midYaw := out[3][1]
	assert.Greater(t, math.Abs(midYaw), 3.0, "yaw must cross the ±π boundary, got %v", midYaw)

	// Wrapped outputs stay in (-π, π] and consecutive angular differences
	// stay small: no tears.
	prev := out[0][1]
	for i, row := range out {
		yaw := row[1]
		assert.LessOrEqual(t, yaw, math.Pi, "row %d out of range", i)
		assert.Greater(t, yaw, -math.Pi, "row %d out of range", i)
		diff := math.Mod(yaw-prev+3*math.Pi, 2*math.Pi) - math.Pi
		assert.Less(t, math.Abs(diff), 0.2, "angular jump at row %d", i)
		prev = yaw
	}

	// The linear non-angular dimension is unaffected by angular handling.
	assert.InDelta(t, 1.5, out[3][0], 1e-9)
}

// TestResample_PreservesMetadata verifies labels, angular spec and row
// factory survive a resample.
func TestResample_PreservesMetadata(t *testing.T) {
	factory := func(v []float64) trajectory.Row { return vecRow(v) }
	tr := timed(t, [][]float64{
		{0, 0}, {1, 0.1}, {2, 0.2}, {3, 0.3},
	}, 1, trajectory.Options{
		DimLabels:   []string{"x", "yaw"},
		AngularDims: []int{1},
		RowFactory:  factory,
	})

	up, err := resample.Resample(tr, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "yaw"}, up.DimLabels())
	assert.Equal(t, []int{1}, up.AngularDims())
	assert.NotNil(t, up.RowFactory())

	down, err := resample.Resample(tr, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "yaw"}, down.DimLabels())
	assert.Equal(t, []int{1}, down.AngularDims())
	assert.NotNil(t, down.RowFactory())
}

// vecRow is a minimal Row used to check factory propagation.
type vecRow []float64

func (r vecRow) Vector() []float64 { return r }
