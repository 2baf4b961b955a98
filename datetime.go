// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/lestrrat-go/strftime"
	"github.com/sirupsen/logrus"
)

// maxDateTimeSteps caps the grid points of a date/time axis.
const maxDateTimeSteps = 1000

// DateTime is an axis over a time range, given in Unix seconds, divided
// into calendar units. Divisions of months and years follow the calendar
// rather than a fixed number of seconds.
type DateTime struct {
	length    float64
	direction float64
	minSpace  float64
	min, max  float64
	fixed     string
	cal       calendar
	label     LabelFunc
	formats   [Year + 1]*strftime.Strftime
	log       logrus.FieldLogger

	start, end time.Time
	duration   float64 // seconds covered, end inclusive
	unit       Unit
	count      int
	division   int // catalog index, -1 for a fixed division outside it
	err        error
}

var _ Axis = (*DateTime)(nil)

// NewDateTime returns a calibrated date/time axis. Config.Division fixes
// the major division, for example "3 months"; otherwise the finest catalog
// division that keeps grid lines MinSpace apart is chosen.
func NewDateTime(cfg Config) (*DateTime, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Max < cfg.Min {
		return nil, fmt.Errorf("%w: min %v, max %v", ErrZeroLength, cfg.Min, cfg.Max)
	}

	a := &DateTime{
		length:    cfg.Length,
		direction: 1,
		minSpace:  cfg.MinSpace,
		min:       cfg.Min,
		max:       cfg.Max,
		fixed:     cfg.Division,
		cal:       newCalendar(cfg.Location, cfg.WeekStart),
		label:     cfg.Label,
		log:       cfg.logger(),
	}
	for u := Second; u <= Year; u++ {
		pattern := units[u].format
		if p, ok := cfg.DateFormats[u]; ok && p != "" {
			pattern = p
		} else if cfg.DateFormat != "" {
			pattern = cfg.DateFormat
		}
		f, err := strftime.New(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %s format %q: %w", ErrInvalidConfig, u, pattern, err)
		}
		a.formats[u] = f
	}
	if err := a.calibrate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *DateTime) Kind() Kind   { return KindDateTime }
func (a *DateTime) Uneven() bool { return false }
func (a *DateTime) Err() error   { return a.err }
func (a *DateTime) Reverse()     { a.direction = -1 }

// Bar has no effect on a date/time axis.
func (a *DateTime) Bar() {}

func (a *DateTime) SetLength(length float64) {
	a.length = length
	a.err = a.calibrate()
}

// Division returns the unit and count of the major division.
func (a *DateTime) Division() (Unit, int) { return a.unit, a.count }

// Start returns the calendar-aligned beginning of the axis.
func (a *DateTime) Start() time.Time { return a.start }

// End returns the last second covered by the axis.
func (a *DateTime) End() time.Time { return a.end }

func (a *DateTime) spaceFloor() float64 {
	return math.Min(a.length, math.Max(a.minSpace, 1))
}

func (a *DateTime) calibrate() error {
	if !finitePositive(a.length) {
		return fmt.Errorf("%w: length %v must be positive", ErrInvalidConfig, a.length)
	}
	first := time.Unix(int64(math.Floor(a.min)), 0).In(a.cal.loc)
	last := time.Unix(int64(math.Ceil(a.max)), 0).In(a.cal.loc)

	if a.fixed != "" {
		u, n, err := parseDivision(a.fixed, (a.max-a.min)/a.length)
		if err != nil {
			return err
		}
		a.unit, a.count = u, n
		a.division = divisionIndex(u, n)
		a.start = a.cal.start(first, u, n)
		a.end = a.cal.end(last, a.start, u, n)
	} else {
		found, ok := a.findDivision(first, last, a.spaceFloor(), allDivisions)
		if !ok {
			return fmt.Errorf("%w: %v to %v over %v pixels", ErrNoDivision, first, last, a.length)
		}
		d := timeDivisions[found.index]
		a.unit, a.count, a.division = d.unit, d.count, found.index
		a.start, a.end = found.start, found.end
	}
	a.duration = float64(a.end.Unix()-a.start.Unix()) + 1

	a.log.WithFields(logrus.Fields{
		"kind":  KindDateTime,
		"unit":  a.unit,
		"count": a.count,
		"start": a.start,
		"end":   a.end,
	}).Debug("calibrated axis")
	return nil
}

type foundDivision struct {
	index      int
	start, end time.Time
}

// findDivision returns the first candidate division that keeps at least
// minSpace pixels between grid lines, both for the requested range and for
// the range once aligned to the division's boundaries.
func (a *DateTime) findDivision(first, last time.Time, minSpace float64, candidates []int) (foundDivision, bool) {
	maxDivisions := math.Floor(a.length / minSpace)
	avg := math.Ceil(float64(last.Unix()-first.Unix()) / maxDivisions)
	for _, i := range candidates {
		d := timeDivisions[i]
		size := float64(d.seconds())
		if size < avg {
			continue
		}
		start := a.cal.start(first, d.unit, d.count)
		end := a.cal.end(last, start, d.unit, d.count)
		if size >= math.Ceil(float64(end.Unix()-start.Unix())/maxDivisions) {
			return foundDivision{index: i, start: start, end: end}, true
		}
	}
	return foundDivision{}, false
}

func (a *DateTime) Unit() float64 {
	return math.Max(1, a.length*float64(a.unit.Seconds())/a.duration)
}

func (a *DateTime) Zero() float64   { return 0 }
func (a *DateTime) Origin() float64 { return 0 }

func (a *DateTime) Position(value float64) (float64, bool) {
	return a.length * (value - float64(a.start.Unix())) / a.duration, true
}

func (a *DateTime) Value(position float64) float64 {
	return float64(a.start.Unix()) + position*a.duration/a.length
}

// walk calls fn for each step of n units from the start of the axis that
// falls on it, passing the step's time, value and unsigned position.
func (a *DateTime) walk(u Unit, n int, fn func(t time.Time, value, pos float64)) error {
	limit := a.length + 1
	for c := 0; ; c++ {
		t := a.cal.add(a.start, u, c*n)
		value := float64(t.Unix())
		pos, _ := a.Position(value)
		if math.Floor(pos) >= limit {
			return nil
		}
		if c >= maxDateTimeSteps {
			return fmt.Errorf("%w: more than %d steps of %d %s", ErrTooManyGridPoints, maxDateTimeSteps, n, u)
		}
		fn(t, value, pos)
	}
}

func (a *DateTime) text(t time.Time, value float64) string {
	if a.label != nil {
		return a.label(value, "")
	}
	return a.formats[a.unit].FormatString(t)
}

func (a *DateTime) GridPoints(start float64) ([]GridPoint, error) {
	if a.err != nil {
		return nil, a.err
	}
	var points []GridPoint
	err := a.walk(a.unit, a.count, func(t time.Time, value, pos float64) {
		points = append(points, GridPoint{
			Position: start + a.direction*pos,
			Label:    a.text(t, value),
			Value:    value,
		})
	})
	if err != nil {
		return nil, err
	}
	sortPoints(points, a.direction)
	return points, nil
}

// GridSubdivisions returns minor divisions from the catalog entries that
// may split the major division, or from fixed. Subdivisions that fall on
// the same pixel as a major division are left out. minUnit is unused.
func (a *DateTime) GridSubdivisions(minSpace, _, start float64, fixed string) ([]GridPoint, error) {
	if a.err != nil {
		return nil, a.err
	}

	var (
		u Unit
		n int
	)
	if fixed != "" {
		var err error
		if u, n, err = parseDivision(fixed, (a.max-a.min)/a.length); err != nil {
			return nil, err
		}
	} else {
		if a.division <= 0 {
			return nil, nil
		}
		floor := math.Min(a.length, math.Max(minSpace, 1))
		found, ok := a.findDivision(a.start, a.end, floor, timeDivisions[a.division].subdivisions)
		if !ok {
			return nil, nil
		}
		u, n = timeDivisions[found.index].unit, timeDivisions[found.index].count
	}

	var candidates []GridPoint
	var offsets []float64
	err := a.walk(u, n, func(_ time.Time, value, pos float64) {
		if pos < 0 {
			return
		}
		candidates = append(candidates, GridPoint{Position: start + a.direction*pos, Value: value})
		offsets = append(offsets, pos)
	})
	if err != nil {
		return nil, err
	}

	// onMajor holds the candidates sharing a pixel with a major division.
	var onMajor bitset.BitSet
	err = a.walk(a.unit, a.count, func(_ time.Time, _, pos float64) {
		if pos < 0 {
			return
		}
		px := math.Floor(pos)
		i, _ := slices.BinarySearch(offsets, px-1)
		for ; i < len(offsets) && offsets[i] <= px+1; i++ {
			if math.Floor(offsets[i]) == px || math.Ceil(offsets[i]) == px {
				onMajor.Set(uint(i))
			}
		}
	})
	if err != nil {
		return nil, err
	}

	points := make([]GridPoint, 0, len(candidates))
	for i, p := range candidates {
		if !onMajor.Test(uint(i)) {
			points = append(points, p)
		}
	}
	sortPoints(points, a.direction)
	return points, nil
}
