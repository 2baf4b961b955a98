// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"regexp"
	"strconv"
)

var (
	niceDecimal = regexp.MustCompile(`^\d(\.\d)$`)
	niceInteger = regexp.MustCompile(`^\d+$`)
)

// isNice reports whether n is a clean multiplier for a division magnitude:
// an integer multiple of 5, or, when n is a whole multiple of minUnit, a
// single digit with at most one decimal or a plain integer once written to
// precision significant digits.
func isNice(n, minUnit float64, precision int) bool {
	if isWhole(n) && math.Mod(n, 5) == 0 && n != 0 {
		return true
	}
	if minUnit != 0 {
		d := n / minUnit
		if !isWhole(d) {
			return false
		}
	}
	s := strconv.FormatFloat(n, 'g', precision, 64)
	return niceDecimal.MatchString(s) || niceInteger.MatchString(s)
}

// division is the state of a linear division search: count divisions of
// magnitude data units, negCount of them below zero.
type division struct {
	count     float64
	negCount  float64
	magnitude float64
}

// findDivision reduces d.count until each division spans at least minSpace
// of length pixels with a nice magnitude and a whole number of divisions
// below zero. The largest acceptable count wins. When none is found the
// counts are nudged up by one so that a further pass can try again.
func findDivision(length, minSpace float64, d *division, fit bool, minUnit float64, precision int) {
	if length/d.count >= minSpace {
		return
	}

	c := d.count - 1
	inc := 0.0
	for c > 1 {
		m := (d.count + inc) / c
		space := length / c
		below := 1.0
		if d.negCount != 0 {
			below = c * d.negCount / d.count
		}

		switch {
		case isNice(m, minUnit, precision):
			if space >= minSpace && isWhole(below) {
				d.magnitude *= m
				d.negCount *= c / d.count
				d.count = c
				return
			}
			c--
			inc = 0
		case !fit && int64(d.count)%2 == 1 && inc == 0:
			inc = 1
		default:
			c--
			inc = 0
		}
	}

	if d.negCount != 0 {
		c := int64(d.count) + 1
		pos := d.count - d.negCount
		neg := int64(d.negCount)
		if pos > d.negCount && (neg == 1 || neg == 0 || c%neg != 0) {
			d.negCount++
		}
		d.count++
	}
}

// findSubdivision returns the pixel spacing of subdivisions of a major
// division gridDiv pixels wide, or 0 when it cannot be split. A fixed
// subdivision of n data units is used as given.
func findSubdivision(gridDiv, minSpace, minUnit, unitSize float64, fixed string) float64 {
	if fixed != "" {
		if n, err := strconv.ParseFloat(fixed, 64); err == nil && n > 0 {
			return unitSize * n
		}
	}

	d := gridDiv / unitSize
	if !(d > 0) || math.IsInf(d, 0) {
		return 0
	}
	minSpace = math.Max(minSpace, minUnit*unitSize)

	// the division size scaled to three significant digits
	d1 := int64(math.Round(100 * math.Pow(10, -math.Floor(math.Log10(d))) * d))
	maxDivisions := d1
	if minSpace > 0 {
		maxDivisions = min(d1, int64(math.Floor(gridDiv/minSpace)))
	}
	for divisions := maxDivisions; divisions > 1; divisions-- {
		if d1%divisions == 0 {
			return gridDiv / float64(divisions)
		}
	}
	return 0
}
