package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trajolab/trajo/spectral"
	"github.com/trajolab/trajo/trajectory"
)

// sampled builds an n-step trajectory at rateHz whose dimensions are given
// by fns of time in seconds.
func sampled(t *testing.T, n int, rateHz float64, fns ...func(sec float64) float64) *trajectory.Trajectory {
	t.Helper()
	steps := make([][]float64, n)
	for i := range steps {
		sec := float64(i) / rateHz
		row := make([]float64, len(fns))
		for j, fn := range fns {
			row[j] = fn(sec)
		}
		steps[i] = row
	}
	tr, err := trajectory.New(steps, trajectory.Options{SampleRateHz: rateHz})
	require.NoError(t, err)
	return tr
}

func sine(freqHz, amp float64) func(sec float64) float64 {
	return func(sec float64) float64 { return amp * math.Sin(2*math.Pi*freqHz*sec) }
}

// TestAnalyze_RequiresRate verifies untimed trajectories cannot be
// analyzed.
func TestAnalyze_RequiresRate(t *testing.T) {
	tr, err := trajectory.New([][]float64{{1}, {2}}, trajectory.DefaultOptions())
	require.NoError(t, err)
	_, err = spectral.Analyze(tr)
	assert.ErrorIs(t, err, trajectory.ErrNoSampleRate)
}

// TestAnalyze_PureTone verifies a bin-aligned sinusoid of amplitude a peaks
// at height a in its own bin and nowhere else.
func TestAnalyze_PureTone(t *testing.T) {
	const (
		n    = 32
		rate = 8.0 // Hz
		tone = 2.0 // Hz, exactly bin k = tone·n/rate = 8
		amp  = 1.5
	)
	tr := sampled(t, n, rate, sine(tone, amp))

	sp, err := spectral.Analyze(tr)
	require.NoError(t, err)
	require.Len(t, sp.Freqs, n/2+1)

	assert.Equal(t, 0.0, sp.Freqs[0], "first bin is DC")
	assert.InDelta(t, rate/2, sp.Freqs[len(sp.Freqs)-1], 1e-12, "last bin is Nyquist")

	toneBin := int(tone * n / rate)
	assert.InDelta(t, tone, sp.Freqs[toneBin], 1e-12)
	assert.InDelta(t, amp, sp.Magnitudes[toneBin][0], 1e-9, "peak height equals the amplitude")
	for k, mags := range sp.Magnitudes {
		if k == toneBin {
			continue
		}
		assert.InDelta(t, 0, mags[0], 1e-9, "bin %d (%.2f Hz) must be empty", k, sp.Freqs[k])
	}
}

// TestAnalyze_DCOffset verifies a constant signal shows only in the DC bin
// at its unmirrored scale.
func TestAnalyze_DCOffset(t *testing.T) {
	tr := sampled(t, 16, 4, func(float64) float64 { return 3 })
	sp, err := spectral.Analyze(tr)
	require.NoError(t, err)

	assert.InDelta(t, 3, sp.Magnitudes[0][0], 1e-9)
	for k := 1; k < len(sp.Magnitudes); k++ {
		assert.InDelta(t, 0, sp.Magnitudes[k][0], 1e-9)
	}
}

// TestLowPass_RemovesHighTone verifies a two-tone signal filtered below the
// upper tone collapses to the lower tone alone.
func TestLowPass_RemovesHighTone(t *testing.T) {
	const (
		n    = 64
		rate = 16.0
	)
	low := sine(1, 1)
	high := sine(3, 0.5)
	mixed := sampled(t, n, rate, func(sec float64) float64 { return low(sec) + high(sec) })
	want := sampled(t, n, rate, low)

	got, err := spectral.LowPass(mixed, 2)
	require.NoError(t, err)

	require.Equal(t, n, got.Len())
	for i, row := range got.Steps() {
		assert.InDelta(t, want.Steps()[i][0], row[0], 1e-9, "step %d", i)
	}
	assert.Equal(t, rate, got.SampleRateHz())
	assert.InDeltaSlice(t, mixed.TimeIndices(), got.TimeIndices(), 1e-12)
}

// TestLowPass_AboveNyquistPassesThrough verifies a cutoff at or above
// Nyquist reproduces the input.
func TestLowPass_AboveNyquistPassesThrough(t *testing.T) {
	tr := sampled(t, 32, 8, sine(2, 1), sine(3, 2))
	got, err := spectral.LowPass(tr, 4)
	require.NoError(t, err)
	assert.True(t, tr.Equal(got), "cutoff at Nyquist keeps every bin")
}

// TestLowPass_Validation verifies the rate and cutoff checks.
func TestLowPass_Validation(t *testing.T) {
	untimed, err := trajectory.New([][]float64{{1}, {2}}, trajectory.DefaultOptions())
	require.NoError(t, err)
	_, err = spectral.LowPass(untimed, 1)
	assert.ErrorIs(t, err, trajectory.ErrNoSampleRate)

	timed := sampled(t, 8, 4, sine(1, 1))
	for _, cutoff := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := spectral.LowPass(timed, cutoff)
		assert.ErrorIs(t, err, spectral.ErrBadCutoff, "cutoff %v must error", cutoff)
	}
}
