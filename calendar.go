// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// calendar aligns times to unit boundaries in one location.
type calendar struct {
	loc *time.Location
	cfg *now.Config
}

func newCalendar(loc *time.Location, weekStart *time.Weekday) calendar {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Monday
	if weekStart != nil {
		start = *weekStart
	}
	return calendar{
		loc: loc,
		cfg: &now.Config{WeekStartDay: start, TimeLocation: loc},
	}
}

func (c calendar) with(t time.Time) *now.Now {
	return c.cfg.With(t.In(c.loc))
}

// start returns the beginning of the block of n units containing t. Years,
// months, hours, minutes and seconds are aligned to multiples of n;
// multi-day blocks begin on the first day of the week.
func (c calendar) start(t time.Time, u Unit, n int) time.Time {
	nt := c.with(t)
	switch u {
	case Year:
		return nt.BeginningOfYear().AddDate(-mod(nt.Year(), n), 0, 0)
	case Month:
		return nt.BeginningOfMonth().AddDate(0, -mod(int(nt.Month())-1, n), 0)
	case Day:
		if n == 1 {
			return nt.BeginningOfDay()
		}
		return nt.BeginningOfWeek()
	case Hour:
		return nt.BeginningOfHour().Add(-time.Duration(mod(nt.Hour(), n)) * time.Hour)
	case Minute:
		return nt.BeginningOfMinute().Add(-time.Duration(mod(nt.Minute(), n)) * time.Minute)
	}
	s := nt.Time.Truncate(time.Second)
	return s.Add(-time.Duration(mod(s.Second(), n)) * time.Second)
}

// end returns the last second of the block of n units containing t, with
// blocks counted from start, itself a value returned by start.
func (c calendar) end(t, start time.Time, u Unit, n int) time.Time {
	t = t.In(c.loc)
	start = start.In(c.loc)
	var last time.Time
	switch u {
	case Year:
		y := t.Year() - mod(t.Year(), n) + n - 1
		last = time.Date(y, time.December, 31, 23, 59, 59, 0, c.loc)
	case Month:
		k := (t.Year()-start.Year())*12 + int(t.Month()-start.Month())
		last = c.with(start.AddDate(0, block(k, n), 0)).EndOfMonth()
	case Day:
		k := daysBetween(start, t)
		last = c.with(start.AddDate(0, 0, block(k, n))).EndOfDay()
	case Hour:
		k := int(t.Sub(start) / time.Hour)
		last = c.with(start.Add(time.Duration(block(k, n)) * time.Hour)).EndOfHour()
	case Minute:
		k := int(t.Sub(start) / time.Minute)
		last = c.with(start.Add(time.Duration(block(k, n)) * time.Minute)).EndOfMinute()
	default:
		k := int(math.Ceil(t.Sub(start).Seconds()))
		last = start.Add(time.Duration(block(k, n)) * time.Second)
	}
	return last.Truncate(time.Second)
}

// block returns the offset of the last unit of the n-unit block holding
// unit k.
func block(k, n int) int {
	return k - mod(k, n) + n - 1
}

// daysBetween counts calendar days from a to b, ignoring the time of day.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(bd.Sub(ad).Hours() / 24))
}

// add moves t forward by k units using calendar arithmetic.
func (c calendar) add(t time.Time, u Unit, k int) time.Time {
	switch u {
	case Year:
		return t.AddDate(k, 0, 0)
	case Month:
		return t.AddDate(0, k, 0)
	case Day:
		return t.AddDate(0, 0, k)
	case Hour:
		return t.Add(time.Duration(k) * time.Hour)
	case Minute:
		return t.Add(time.Duration(k) * time.Minute)
	}
	return t.Add(time.Duration(k) * time.Second)
}

// parseDivision reads a division written as "N unit", as a bare unit
// meaning one of it, or as a bare count of the smallest unit longer than
// the time one pixel covers. Counts below 1 are taken as 1.
func parseDivision(s string, secondsPerPixel float64) (Unit, int, error) {
	s = strings.TrimSpace(s)
	var countText, unitText string
	if fields := strings.Fields(s); len(fields) > 1 {
		countText, unitText = fields[0], fields[1]
	} else if _, err := strconv.ParseFloat(s, 64); err == nil {
		countText = s
		u := Year
		for v := Second; v <= Year; v++ {
			if float64(v.Seconds()) > secondsPerPixel {
				u = v
				break
			}
		}
		unitText = u.String()
	} else {
		countText, unitText = "1", s
	}

	u, err := ParseUnit(unitText)
	if err != nil {
		return 0, 0, fmt.Errorf("division %q: %w", s, err)
	}
	count := 1
	if f, err := strconv.ParseFloat(countText, 64); err == nil && f >= 1 && f < math.MaxInt32 {
		count = int(f)
	}
	return u, count, nil
}
