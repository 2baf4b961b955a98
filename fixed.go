// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// FixedStep is a linear axis whose divisions are a given step apart. The
// range is extended to a whole number of steps.
type FixedStep struct {
	scale

	step      float64
	origMin   float64 // requested range, the basis of every snap
	origMax   float64
	min, max  float64 // snapped range
	roundedUp bool
	log       logrus.FieldLogger
}

var _ Axis = (*FixedStep)(nil)

// NewFixedStep returns a calibrated fixed-step axis. The minimum unit and
// minimum spacing are both 1 and divisions are never fitted, so a range of
// a single value covers one unit.
func NewFixedStep(cfg Config) (*FixedStep, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if !finitePositive(cfg.Step) {
		return nil, fmt.Errorf("%w: step %v must be positive", ErrInvalidConfig, cfg.Step)
	}
	if cfg.Max < cfg.Min {
		return nil, fmt.Errorf("%w: min %v, max %v", ErrZeroLength, cfg.Min, cfg.Max)
	}

	a := &FixedStep{
		scale: scale{
			length:    cfg.Length,
			direction: 1,
			labels:    newLabeler(&cfg),
		},
		step:    cfg.Step,
		origMin: cfg.Min,
		origMax: cfg.Max,
		log:     cfg.logger(),
	}
	if err := a.calibrate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *FixedStep) Kind() Kind { return KindFixedStep }

// Bar widens the requested range by one unit.
func (a *FixedStep) Bar() {
	if a.roundedUp {
		return
	}
	a.origMax++
	a.roundedUp = true
	a.err = a.calibrate()
}

func (a *FixedStep) SetLength(length float64) {
	a.length = length
	a.err = a.calibrate()
}

func (a *FixedStep) GridPoints(start float64) ([]GridPoint, error) {
	return a.gridPoints(start)
}

func (a *FixedStep) GridSubdivisions(minSpace, minUnit, start float64, fixed string) ([]GridPoint, error) {
	return a.subdivisions(minSpace, minUnit, start, fixed)
}

// Range returns the range after snapping to the step.
func (a *FixedStep) Range() (min, max float64) {
	return a.min, a.max
}

// snap extends [min, max] to a whole number of steps. A range on one side
// of zero moves only its bound furthest from zero; a range crossing zero
// moves both bounds out to the next step.
func snap(min, max, step float64) (float64, float64) {
	if max*min >= 0 {
		steps := math.Ceil((max - min) / step)
		if math.Abs(max) >= math.Abs(min) {
			max = min + step*steps
		} else {
			min = max - step*steps
		}
		return min, max
	}
	return step * math.Floor(min/step), step * math.Ceil(max/step)
}

func (a *FixedStep) calibrate() error {
	if !finitePositive(a.length) {
		return fmt.Errorf("%w: length %v must be positive", ErrInvalidConfig, a.length)
	}
	max := a.origMax
	if max == a.origMin {
		max++
	}
	a.min, a.max = snap(a.origMin, max, a.step)
	span := a.max - a.min
	if !finitePositive(span) {
		return fmt.Errorf("%w: min %v, max %v, step %v", ErrZeroLength, a.origMin, a.origMax, a.step)
	}
	count := span / a.step

	a.uneven = false
	a.unitSize = a.length / span
	a.spacing = a.length / count
	a.zero = (-a.min / a.step) * a.spacing

	a.log.WithFields(logrus.Fields{
		"kind":    KindFixedStep,
		"count":   count,
		"step":    a.step,
		"spacing": a.spacing,
	}).Debug("calibrated axis")
	return nil
}
