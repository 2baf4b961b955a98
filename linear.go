// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// searchAttempts bounds the division search before the axis falls back to
// uneven divisions.
const searchAttempts = 10

// Linear is an axis with evenly spaced divisions of a nice magnitude.
type Linear struct {
	scale

	min, max  float64
	minUnit   float64
	minSpace  float64
	fit       bool
	roundedUp bool
	precision int
	data      DataSource
	log       logrus.FieldLogger
}

var _ Axis = (*Linear)(nil)

// NewLinear returns a calibrated linear axis.
func NewLinear(cfg Config) (*Linear, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Max < cfg.Min || (cfg.Max == cfg.Min && cfg.MinUnit == 0) {
		return nil, fmt.Errorf("%w: min %v, max %v", ErrZeroLength, cfg.Min, cfg.Max)
	}

	a := &Linear{
		scale: scale{
			length:    cfg.Length,
			direction: 1,
			labels:    newLabeler(&cfg),
		},
		min:       cfg.Min,
		max:       cfg.Max,
		minUnit:   cfg.MinUnit,
		minSpace:  cfg.MinSpace,
		fit:       cfg.Fit,
		precision: cfg.Format.normalized().Precision,
		data:      cfg.Data,
		log:       cfg.logger(),
	}
	if err := a.calibrate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Linear) Kind() Kind { return KindLinear }

// Bar widens the range by one minimum unit, so that the last bar of a bar
// chart has room.
func (a *Linear) Bar() {
	if a.roundedUp {
		return
	}
	a.max += a.minUnit
	a.roundedUp = true
	a.err = a.calibrate()
}

func (a *Linear) SetLength(length float64) {
	a.length = length
	a.err = a.calibrate()
}

// GridPoints returns the major divisions. An uneven axis gets an extra
// point at its end.
func (a *Linear) GridPoints(start float64) ([]GridPoint, error) {
	return a.gridPoints(start)
}

func (a *Linear) GridSubdivisions(minSpace, minUnit, start float64, fixed string) ([]GridPoint, error) {
	return a.subdivisions(minSpace, minUnit, start, fixed)
}

// PositionByKey returns the position of the item whose associative key is
// key.
func (a *Linear) PositionByKey(key string) (float64, bool) {
	if a.err != nil || a.data == nil || !a.data.AssociativeKeys() {
		return 0, false
	}
	for i, n := 0, a.data.Len(); i < n; i++ {
		if k, ok := a.data.KeyAt(i); ok && k == key {
			return a.Position(float64(i))
		}
	}
	return 0, false
}

// Range returns the value range the axis was calibrated for.
func (a *Linear) Range() (min, max float64) {
	return a.min, a.max
}

func (a *Linear) calibrate() error {
	if !finitePositive(a.length) {
		return fmt.Errorf("%w: length %v must be positive", ErrInvalidConfig, a.length)
	}
	if a.min == a.max {
		a.max += a.minUnit
	}
	span := a.max - a.min
	if !finitePositive(span) {
		return fmt.Errorf("%w: min %v, max %v", ErrZeroLength, a.min, a.max)
	}

	floor := math.Max(a.minSpace, a.length/200)
	magnitude := math.Max(math.Pow(10, math.Floor(math.Log10(span))), a.minUnit)
	var count float64
	if a.fit {
		count = math.Ceil(span / magnitude)
	} else {
		count = math.Ceil(a.max/magnitude) - math.Floor(a.min/magnitude)
	}
	if count <= 5 && magnitude > a.minUnit {
		magnitude *= 0.1
		count = math.Ceil(a.max/magnitude) - math.Floor(a.min/magnitude)
	}
	d := division{count: count, magnitude: magnitude}
	if a.min < 0 {
		d.negCount = math.Ceil(-a.min / magnitude)
	}

	findDivision(a.length, floor, &d, a.fit, a.minUnit, a.precision)
	grid := a.length / d.count
	attempts := searchAttempts
	for grid < a.minSpace {
		if attempts--; attempts == 0 {
			break
		}
		findDivision(a.length, floor, &d, a.fit, a.minUnit, a.precision)
		grid = a.length / d.count
	}

	a.uneven = false
	switch {
	case attempts == 0:
		for grid < a.minSpace && d.count > 1 {
			d.count *= 0.5
			d.negCount *= 0.5
			d.magnitude *= 2
			grid = a.length / d.count
			a.uneven = true
		}
		if a.uneven {
			a.log.WithFields(logrus.Fields{
				"min":       a.min,
				"max":       a.max,
				"length":    a.length,
				"min_space": a.minSpace,
			}).Warn("no even division found, using uneven divisions")
		}
	case !a.fit && d.magnitude > a.minUnit && grid/a.minSpace > 2:
		d.magnitude *= 0.5
		d.count *= 2
		d.negCount *= 2
		grid = a.length / d.count
	}

	a.spacing = grid
	a.unitSize = a.length / (d.magnitude * d.count)
	if a.min < 0 {
		a.zero = d.negCount * grid
	} else {
		a.zero = -a.min * grid / d.magnitude
	}

	a.log.WithFields(logrus.Fields{
		"kind":      KindLinear,
		"count":     d.count,
		"magnitude": d.magnitude,
		"spacing":   grid,
		"uneven":    a.uneven,
	}).Debug("calibrated axis")
	return nil
}
