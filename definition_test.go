package axis_test

import (
	"strings"
	"testing"
	"time"

	axis "github.com/kofi-q/axis-go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const definitions = `
axes:
  - name: revenue
    kind: linear
    length: 200
    min: 0
    max: 237
    min_space: 30
    fit: true
    units_before: "$"
    subdivisions:
      min_space: 8
  - name: period
    kind: datetime
    length: 500
    from: 2024-01-03T00:00:00Z
    to: 2024-02-02T00:00:00Z
    min_space: 100
    week_start: sun
    date_formats:
      days: "%d %b"
  - name: decibels
    kind: log
    length: 300
    min: 1
    max: 1000
    min_space: 50
    reverse: true
  - name: balance
    kind: fixed-double
    length: 400
    min: 0
    max: 90
    step: 25
    locale: de
`

func TestLoadDefinitions(t *testing.T) {
	defs, err := axis.LoadDefinitions(strings.NewReader(definitions))
	require.NoError(t, err)
	require.Len(t, defs, 4)
	require.Equal(t, "revenue", defs[0].Name)
	requireTime(t, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), defs[1].From)
	require.NotNil(t, defs[0].Subdivisions)
	require.Equal(t, 8.0, defs[0].Subdivisions.MinSpace)

	logger, _ := test.NewNullLogger()
	kinds := []axis.Kind{axis.KindLinear, axis.KindDateTime, axis.KindLog, axis.KindFixedDoubleEnded}
	for i, def := range defs {
		a, err := def.Build(logger)
		require.NoError(t, err, def.Name)
		require.Equal(t, kinds[i], a.Kind())
	}

	revenue, err := defs[0].Build(logger)
	require.NoError(t, err)
	points, err := revenue.GridPoints(0)
	require.NoError(t, err)
	require.Equal(t, "$240", points[len(points)-1].Label)
	subs, err := defs[0].Subdivide(revenue, 0)
	require.NoError(t, err)
	require.NotEmpty(t, subs)

	period, err := defs[1].Build(logger)
	require.NoError(t, err)
	points, err = period.GridPoints(0)
	require.NoError(t, err)
	require.Equal(t, "31 Dec", points[0].Label)

	balance, err := defs[3].Build(logger)
	require.NoError(t, err)
	points, err = balance.GridPoints(0)
	require.NoError(t, err)
	require.Equal(t, "100", points[0].Label)
	none, err := defs[3].Subdivide(balance, 0)
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestLoadDefinitionsEmpty(t *testing.T) {
	defs, err := axis.LoadDefinitions(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, defs)
}

func TestLoadDefinitionsUnknownField(t *testing.T) {
	_, err := axis.LoadDefinitions(strings.NewReader("axes:\n  - name: x\n    colour: red\n"))
	require.ErrorIs(t, err, axis.ErrInvalidConfig)
}

func TestDefinitionErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		def  axis.Definition
		want error
	}{
		{name: "kind", def: axis.Definition{Kind: "radial", Length: 100, Max: 1}, want: axis.ErrInvalidConfig},
		{name: "weekday", def: axis.Definition{Kind: "datetime", Length: 100, Max: 1, WeekStart: "someday"}, want: axis.ErrInvalidConfig},
		{name: "date format unit", def: axis.Definition{Kind: "datetime", Length: 100, Max: 1, DateFormats: map[string]string{"fortnight": "%d"}}, want: axis.ErrUnknownUnit},
		{name: "log zero", def: axis.Definition{Kind: "log", Length: 100, Max: 10}, want: axis.ErrLogZero},
		{name: "negative double", def: axis.Definition{Kind: "double", Length: 100, Min: -1, Max: 10}, want: axis.ErrNegativeDoubleEnded},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.def.Build(nil)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]time.Weekday{
		"monday": time.Monday,
		"Sun":    time.Sunday,
		" SAT ":  time.Saturday,
		"thurs":  time.Thursday,
	} {
		got, err := axis.ParseWeekday(in)
		require.NoError(t, err)
		require.Equal(t, want, got, "ParseWeekday(%q): got=%v, want=%v", in, got, want)
	}

	_, err := axis.ParseWeekday("mo")
	require.ErrorIs(t, err, axis.ErrInvalidConfig)
}

func TestParseKind(t *testing.T) {
	for _, k := range []axis.Kind{
		axis.KindLinear, axis.KindLog, axis.KindFixedStep,
		axis.KindDoubleEnded, axis.KindFixedDoubleEnded, axis.KindDateTime,
	} {
		got, err := axis.ParseKind(strings.ToUpper(k.String()))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	require.Equal(t, "Kind(42)", axis.Kind(42).String())
}
