package axis_test

import (
	"math"
	"testing"

	axis "github.com/kofi-q/axis-go"
	"github.com/stretchr/testify/require"
)

func requireMirrored(t *testing.T, points []axis.GridPoint, centre float64) {
	t.Helper()
	at := make(map[float64]float64, len(points))
	for _, p := range points {
		at[math.Round(p.Position*1e6)/1e6] = p.Value
	}
	for _, p := range points {
		if p.Value == 0 {
			require.InDelta(t, centre, p.Position, 1e-9)
			continue
		}
		mirror := math.Round((2*centre-p.Position)*1e6) / 1e6
		v, ok := at[mirror]
		require.True(t, ok, "no mirror of %v at %v", p.Position, mirror)
		require.InDelta(t, p.Value, v, 1e-9)
	}
}

func TestDoubleEnded(t *testing.T) {
	a, err := axis.NewDoubleEnded(linearConfig(0, 100, 400, 20, false))
	require.NoError(t, err)
	require.Equal(t, axis.KindDoubleEnded, a.Kind())
	require.Equal(t, 200.0, a.Zero())
	require.Equal(t, 200.0, a.Origin())
	require.InDelta(t, 2.0, a.Unit(), 1e-12)

	points, err := a.GridPoints(0)
	require.NoError(t, err)
	require.Len(t, points, 21)
	require.InDelta(t, 0.0, points[0].Position, 1e-9)
	require.InDelta(t, 100.0, points[0].Value, 1e-9)
	require.InDelta(t, 400.0, points[20].Position, 1e-9)
	require.InDelta(t, 100.0, points[20].Value, 1e-9)
	requireMirrored(t, points, 200)

	shifted, err := a.GridPoints(10)
	require.NoError(t, err)
	requireMirrored(t, shifted, 210)
}

func TestDoubleEndedPositionValue(t *testing.T) {
	a, err := axis.NewDoubleEnded(linearConfig(0, 100, 400, 20, false))
	require.NoError(t, err)

	pos, ok := a.Position(50)
	require.True(t, ok)
	require.InDelta(t, 300.0, pos, 1e-9)
	require.InDelta(t, 50.0, a.Value(300), 1e-9)
	require.InDelta(t, 50.0, a.Value(100), 1e-9)
	require.InDelta(t, 0.0, a.Value(200), 1e-9)
}

func TestDoubleEndedReverse(t *testing.T) {
	a, err := axis.NewDoubleEnded(linearConfig(0, 100, 400, 20, false))
	require.NoError(t, err)
	a.Reverse()

	points, err := a.GridPoints(400)
	require.NoError(t, err)
	require.Len(t, points, 21)
	for _, p := range points {
		require.GreaterOrEqual(t, p.Position, -1e-9)
		require.LessOrEqual(t, p.Position, 400+1e-9)
	}
	requireMirrored(t, points, 200)
}

func TestFixedDoubleEnded(t *testing.T) {
	cfg := fixedConfig(0, 100, 25, 400)
	a, err := axis.NewFixedDoubleEnded(cfg)
	require.NoError(t, err)
	require.Equal(t, axis.KindFixedDoubleEnded, a.Kind())

	points, err := a.GridPoints(0)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 75, 50, 25, 0, 25, 50, 75, 100}, values(points))
	requireMirrored(t, points, 200)

	subs, err := a.GridSubdivisions(0, 0, 0, "5")
	require.NoError(t, err)
	require.Len(t, subs, 32)
	requireMirrored(t, subs, 200)
}

func TestDoubleEndedNegative(t *testing.T) {
	_, err := axis.NewDoubleEnded(linearConfig(-1, 100, 400, 20, false))
	require.ErrorIs(t, err, axis.ErrNegativeDoubleEnded)

	_, err = axis.NewFixedDoubleEnded(fixedConfig(-10, 100, 10, 400))
	require.ErrorIs(t, err, axis.ErrNegativeDoubleEnded)
}

func TestDoubleEndedSetLength(t *testing.T) {
	a, err := axis.NewDoubleEnded(linearConfig(0, 100, 400, 20, false))
	require.NoError(t, err)
	a.SetLength(800)
	require.NoError(t, a.Err())
	require.Equal(t, 400.0, a.Zero())

	points, err := a.GridPoints(0)
	require.NoError(t, err)
	require.InDelta(t, 800.0, points[len(points)-1].Position, 1e-9)
}
