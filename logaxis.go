// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Log is an axis with grid lines at the powers of a base. The range must be
// entirely positive or entirely negative.
type Log struct {
	length    float64
	direction float64
	minSpace  float64
	base      float64
	intBase   bool
	negative  bool
	divisions int
	labels    labeler
	log       logrus.FieldLogger

	min, max     float64 // absolute values of the requested range
	lgmin, lgmax float64
	lgmul        float64 // pixels per power of the base
	space        float64 // pixels between powers
	split        int     // labelled intermediate step, 0 for none
	err          error
}

var _ Axis = (*Log)(nil)

// NewLog returns a calibrated logarithmic axis. A Base of 0 selects base 10.
func NewLog(cfg Config) (*Log, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Min == 0 || cfg.Max == 0 {
		return nil, fmt.Errorf("%w: min %v, max %v", ErrLogZero, cfg.Min, cfg.Max)
	}
	if (cfg.Min < 0) != (cfg.Max < 0) {
		return nil, fmt.Errorf("%w: min %v, max %v", ErrLogMixedSign, cfg.Min, cfg.Max)
	}
	if cfg.Max < cfg.Min || (cfg.Max == cfg.Min && cfg.MinUnit == 0) {
		return nil, fmt.Errorf("%w: min %v, max %v", ErrZeroLength, cfg.Min, cfg.Max)
	}
	base := cfg.Base
	if base == 0 {
		base = 10
	}
	if !(base > 1) || math.IsInf(base, 0) {
		return nil, fmt.Errorf("%w: log base %v must be greater than 1", ErrInvalidConfig, base)
	}
	if cfg.Divisions < 0 {
		return nil, fmt.Errorf("%w: negative divisions %d", ErrInvalidConfig, cfg.Divisions)
	}

	a := &Log{
		length:    cfg.Length,
		direction: 1,
		minSpace:  cfg.MinSpace,
		base:      base,
		intBase:   isWhole(base),
		divisions: cfg.Divisions,
		labels:    newLabeler(&cfg),
		log:       cfg.logger(),
		min:       cfg.Min,
		max:       cfg.Max,
	}
	if cfg.Min < 0 {
		a.negative = true
		a.min, a.max = -cfg.Max, -cfg.Min
	}
	if err := a.calibrate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Log) Kind() Kind   { return KindLog }
func (a *Log) Uneven() bool { return false }
func (a *Log) Err() error   { return a.err }
func (a *Log) Reverse()     { a.direction = -1 }

// Bar has no effect on a logarithmic axis.
func (a *Log) Bar() {}

func (a *Log) SetLength(length float64) {
	a.length = length
	a.err = a.calibrate()
}

// logb returns the logarithm of x in the axis base, snapped to an integer
// when it is within rounding distance of one.
func (a *Log) logb(x float64) float64 {
	v := math.Log(x) / math.Log(a.base)
	if r := math.Round(v); math.Abs(v-r) < 1e-10 {
		return r
	}
	return v
}

func (a *Log) calibrate() error {
	if !finitePositive(a.length) {
		return fmt.Errorf("%w: length %v must be positive", ErrInvalidConfig, a.length)
	}
	a.lgmin = math.Floor(a.logb(a.min))
	a.lgmax = math.Ceil(a.logb(a.max))
	if a.lgmax <= a.lgmin {
		a.lgmin--
	}
	a.lgmul = a.length / (a.lgmax - a.lgmin)
	a.space = a.lgmul

	a.split = a.divisions
	if a.split == 0 {
		a.split = a.findDivision(a.space, a.minSpace, 0)
	}

	a.log.WithFields(logrus.Fields{
		"kind":   KindLog,
		"base":   a.base,
		"powers": a.lgmax - a.lgmin,
		"split":  a.split,
	}).Debug("calibrated axis")
	return nil
}

// findDivision returns the step between intermediate multiples of a power
// such that the narrowest gap, the one just below the next power, is at
// least minSpace pixels. Only divisors of division (the base when 0) are
// tried. The result is 1 when every multiple fits and 0 when none do.
func (a *Log) findDivision(space, minSpace float64, division int) int {
	if !a.intBase {
		return 0
	}
	if division == 0 {
		division = int(a.base)
	}

	smallest := space - space*a.logb(a.base-1)
	if smallest >= minSpace {
		return 1
	}
	split := 0
	for i := 2; smallest < minSpace && i <= division/2; i++ {
		if division%i == 0 {
			smallest = space - space*a.logb(a.base-float64(i))
			split = i
		}
	}
	if smallest < minSpace {
		return 0
	}
	return split
}

func (a *Log) Unit() float64 { return a.lgmul }

func (a *Log) Zero() float64 {
	if a.negative {
		return a.length
	}
	return 0
}

func (a *Log) Origin() float64 { return a.Zero() }

// MinValue returns the lowest power of the base on the axis.
func (a *Log) MinValue() float64 {
	if a.negative {
		return -math.Pow(a.base, a.lgmax)
	}
	return math.Pow(a.base, a.lgmin)
}

// MaxValue returns the highest power of the base on the axis.
func (a *Log) MaxValue() float64 {
	if a.negative {
		return -math.Pow(a.base, a.lgmin)
	}
	return math.Pow(a.base, a.lgmax)
}

// Position returns false for zero, for values of the wrong sign and for
// values below the lowest power of the axis.
func (a *Log) Position(value float64) (float64, bool) {
	if a.negative {
		if value >= 0 || -value < math.Pow(a.base, a.lgmin) {
			return 0, false
		}
		return a.length - (a.logb(-value)-a.lgmin)*a.lgmul, true
	}
	if value <= 0 || value < math.Pow(a.base, a.lgmin) {
		return 0, false
	}
	return (a.logb(value) - a.lgmin) * a.lgmul, true
}

func (a *Log) Value(position float64) float64 {
	if a.negative {
		return -math.Pow(a.base, a.lgmin+(a.length-position)/a.lgmul)
	}
	return math.Pow(a.base, a.lgmin+position/a.lgmul)
}

// signed returns the axis value of base^exp.
func (a *Log) signed(exp float64) float64 {
	v := math.Pow(a.base, exp)
	if a.negative {
		return -v
	}
	return v
}

// multiples returns the log offsets within one power of the multiples of
// step, skipping 1 and those that are multiples of skip.
func (a *Log) multiples(step, skip int) []float64 {
	if step <= 0 {
		return nil
	}
	var offsets []float64
	for m := step; float64(m) < a.base; m += step {
		if m == 1 || (skip > 0 && m%skip == 0) {
			continue
		}
		offsets = append(offsets, a.logb(float64(m)))
	}
	return offsets
}

func (a *Log) projected(perPower int) error {
	if n := (a.lgmax - a.lgmin) * float64(perPower+1); n > maxGridPoints {
		return fmt.Errorf("%w: %.0f points over %v pixels", ErrTooManyGridPoints, n, a.length)
	}
	return nil
}

func (a *Log) point(start, exp float64, label bool) GridPoint {
	value := a.signed(exp)
	pos, _ := a.Position(value)
	p := GridPoint{Position: start + a.direction*pos, Value: value}
	if label {
		p.Label = a.labels.text(value)
	}
	return p
}

// GridPoints returns a labelled point at every power of the base and at
// the intermediate multiples chosen during calibration.
func (a *Log) GridPoints(start float64) ([]GridPoint, error) {
	if a.err != nil {
		return nil, a.err
	}
	offsets := a.multiples(a.split, 0)
	if err := a.projected(len(offsets)); err != nil {
		return nil, err
	}

	var points []GridPoint
	for l := a.lgmin; l <= a.lgmax; l++ {
		points = append(points, a.point(start, l, true))
		if l == a.lgmax {
			break
		}
		for _, o := range offsets {
			points = append(points, a.point(start, l+o, true))
		}
	}
	sortPoints(points, a.direction)
	return points, nil
}

// GridSubdivisions returns unlabelled points at finer multiples than the
// grid points use. Only integer bases can be subdivided; fixed is ignored.
func (a *Log) GridSubdivisions(minSpace, _, start float64, _ string) ([]GridPoint, error) {
	if a.err != nil {
		return nil, a.err
	}
	if !a.intBase {
		return nil, nil
	}
	split := a.findDivision(a.space, minSpace, a.split)
	skip := a.split
	if skip == 0 {
		skip = int(a.base)
	}
	offsets := a.multiples(split, skip)
	if len(offsets) == 0 {
		return nil, nil
	}
	if err := a.projected(len(offsets)); err != nil {
		return nil, err
	}

	var points []GridPoint
	for l := a.lgmin; l < a.lgmax; l++ {
		for _, o := range offsets {
			points = append(points, a.point(start, l+o, false))
		}
	}
	sortPoints(points, a.direction)
	return points, nil
}
