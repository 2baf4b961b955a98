package axis_test

import (
	"math"
	"testing"

	axis "github.com/kofi-q/axis-go"
	"github.com/stretchr/testify/require"
)

func fixedConfig(min, max, step, length float64) axis.Config {
	cfg := axis.DefaultConfig()
	cfg.Min, cfg.Max = min, max
	cfg.Step = step
	cfg.Length = length
	return cfg
}

func TestFixedStepSnapsToWholeSteps(t *testing.T) {
	for _, tc := range []struct {
		name             string
		min, max, step   float64
		wantMin, wantMax float64
	}{
		{name: "positive", min: 0, max: 97, step: 10, wantMin: 0, wantMax: 100},
		{name: "offset", min: 3, max: 20, step: 5, wantMin: 3, wantMax: 23},
		{name: "negative", min: -97, max: -3, step: 10, wantMin: -103, wantMax: -3},
		{name: "crossing zero", min: -37, max: 52, step: 10, wantMin: -40, wantMax: 60},
		{name: "exact", min: 0, max: 100, step: 25, wantMin: 0, wantMax: 100},
		{name: "single value", min: 5, max: 5, step: 1, wantMin: 5, wantMax: 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a, err := axis.NewFixedStep(fixedConfig(tc.min, tc.max, tc.step, 200))
			require.NoError(t, err)

			min, max := a.Range()
			require.InDelta(t, tc.wantMin, min, 1e-9, "min: got=%v, want=%v", min, tc.wantMin)
			require.InDelta(t, tc.wantMax, max, 1e-9, "max: got=%v, want=%v", max, tc.wantMax)

			steps := (max - min) / tc.step
			require.InDelta(t, math.Round(steps), steps, 1e-9)
		})
	}
}

func TestFixedStepGridPoints(t *testing.T) {
	a, err := axis.NewFixedStep(fixedConfig(0, 97, 10, 200))
	require.NoError(t, err)
	require.Equal(t, axis.KindFixedStep, a.Kind())
	require.InDelta(t, 2.0, a.Unit(), 1e-12)
	require.Equal(t, 0.0, a.Zero())

	points, err := a.GridPoints(0)
	require.NoError(t, err)
	require.Len(t, points, 11)
	for i, p := range points {
		require.InDelta(t, 20*float64(i), p.Position, 1e-9)
		require.InDelta(t, 10*float64(i), p.Value, 1e-9)
	}
	require.Equal(t, "100", points[10].Label)
}

func TestFixedStepNegativeZero(t *testing.T) {
	a, err := axis.NewFixedStep(fixedConfig(-37, 52, 10, 500))
	require.NoError(t, err)
	require.InDelta(t, 200.0, a.Zero(), 1e-9)

	points, err := a.GridPoints(0)
	require.NoError(t, err)
	require.InDelta(t, -40.0, points[0].Value, 1e-9)
	require.InDelta(t, 60.0, points[len(points)-1].Value, 1e-9)
}

func TestFixedStepBar(t *testing.T) {
	a, err := axis.NewFixedStep(fixedConfig(0, 100, 10, 220))
	require.NoError(t, err)

	a.Bar()
	a.Bar()
	require.NoError(t, a.Err())
	_, max := a.Range()
	require.Equal(t, 110.0, max)
}

func TestFixedStepInvalid(t *testing.T) {
	_, err := axis.NewFixedStep(fixedConfig(0, 100, 0, 200))
	require.ErrorIs(t, err, axis.ErrInvalidConfig)

	_, err = axis.NewFixedStep(fixedConfig(0, 100, math.Inf(1), 200))
	require.ErrorIs(t, err, axis.ErrInvalidConfig)

	_, err = axis.NewFixedStep(fixedConfig(10, 0, 1, 200))
	require.ErrorIs(t, err, axis.ErrZeroLength)
}

func TestFixedStepSubdivisions(t *testing.T) {
	a, err := axis.NewFixedStep(fixedConfig(0, 100, 25, 400))
	require.NoError(t, err)

	subs, err := a.GridSubdivisions(0, 0, 0, "5")
	require.NoError(t, err)
	require.Len(t, subs, 16)
	for _, s := range subs {
		require.NotZero(t, math.Mod(math.Round(s.Value), 25))
	}
}
