// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"strings"
)

// Unit is a calendar unit used by date/time axes.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Month
	Year
)

var units = [...]struct {
	name    string
	seconds int64  // nominal length
	format  string // default label pattern
}{
	Second: {"second", 1, "%Y-%m-%d %H:%M:%S"},
	Minute: {"minute", 60, "%Y-%m-%d %H:%M"},
	Hour:   {"hour", 3600, "%Y-%m-%d %H:%M"},
	Day:    {"day", 86400, "%Y-%m-%d"},
	Month:  {"month", 2629800, "%Y-%m"},
	Year:   {"year", 31557600, "%Y"},
}

func (u Unit) valid() bool { return u >= Second && u <= Year }

func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return units[u].name
}

// Seconds returns the nominal length of the unit. Months and years use
// their average lengths.
func (u Unit) Seconds() int64 { return units[u].seconds }

// ParseUnit returns the unit named by s, singular or plural, in any case.
func ParseUnit(s string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for u := Second; u <= Year; u++ {
		if units[u].name == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// timeDivision is a candidate major division of a date/time axis. subdivisions
// lists the indices of the finer divisions that may split it.
type timeDivision struct {
	unit         Unit
	count        int
	subdivisions []int
}

func (d timeDivision) seconds() int64 {
	return int64(d.count) * d.unit.Seconds()
}

// timeDivisions is ordered from the finest division to the coarsest.
var timeDivisions = [...]timeDivision{
	{Second, 1, nil},
	{Second, 2, []int{0}},
	{Second, 5, []int{0}},
	{Second, 10, []int{0, 1, 2}},
	{Second, 15, []int{0, 2}},
	{Second, 20, []int{0, 1, 2, 3}},
	{Second, 30, []int{0, 1, 2, 3, 4}},
	{Minute, 1, []int{3, 4, 5, 6}},
	{Minute, 2, []int{6, 7}},
	{Minute, 5, []int{7}},
	{Minute, 10, []int{7, 8, 9}},
	{Minute, 15, []int{7, 9}},
	{Minute, 20, []int{7, 8, 9, 10}},
	{Minute, 30, []int{8, 9, 10, 11}},
	{Hour, 1, []int{9, 10, 11, 12, 13}},
	{Hour, 2, []int{11, 13, 14}},
	{Hour, 3, []int{13, 14}},
	{Hour, 4, []int{13, 14, 15}},
	{Hour, 6, []int{14, 15, 16}},
	{Hour, 8, []int{14, 15, 17}},
	{Hour, 12, []int{14, 15, 16, 17, 18, 19}},
	{Day, 1, []int{14, 18, 20}},
	{Day, 7, []int{21}},
	{Day, 14, []int{21, 22}},
	{Month, 1, []int{21}},
	{Month, 2, []int{21, 24}},
	{Month, 3, []int{24}},
	{Month, 6, []int{24, 25, 26}},
	{Year, 1, []int{24, 25, 26, 27}},
	{Year, 2, []int{27, 28}},
	{Year, 5, []int{28}},
	{Year, 10, []int{28, 29, 30}},
	{Year, 20, []int{28, 29, 30, 31}},
	{Year, 50, []int{30, 31}},
	{Year, 100, []int{31, 32, 33}},
	{Year, 500, []int{34}},
	{Year, 1000, []int{34, 35}},
	{Year, 10000, nil},
	{Year, 100000, nil},
	{Year, 1000000, nil},
}

// allDivisions lists every catalog index, for the major division search.
var allDivisions = func() []int {
	all := make([]int, len(timeDivisions))
	for i := range all {
		all[i] = i
	}
	return all
}()

// divisionIndex returns the catalog index of n units, or -1.
func divisionIndex(u Unit, n int) int {
	for i, d := range timeDivisions {
		if d.unit == u && d.count == n {
			return i
		}
	}
	return -1
}
