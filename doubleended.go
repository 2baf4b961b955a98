// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
)

// halfAxis is the single-sided scale a DoubleEnded axis mirrors.
type halfAxis interface {
	Axis
	Range() (min, max float64)
}

// DoubleEnded is an axis with zero at its midpoint and the same
// non-negative scale running out to both ends.
type DoubleEnded struct {
	kind      Kind
	half      halfAxis
	length    float64
	direction float64
}

var _ Axis = (*DoubleEnded)(nil)

// NewDoubleEnded returns a double-ended axis over a linear scale.
func NewDoubleEnded(cfg Config) (*DoubleEnded, error) {
	return newDoubleEnded(KindDoubleEnded, cfg, func(c Config) (halfAxis, error) {
		return NewLinear(c)
	})
}

// NewFixedDoubleEnded returns a double-ended axis over a fixed-step scale.
func NewFixedDoubleEnded(cfg Config) (*DoubleEnded, error) {
	return newDoubleEnded(KindFixedDoubleEnded, cfg, func(c Config) (halfAxis, error) {
		return NewFixedStep(c)
	})
}

func newDoubleEnded(kind Kind, cfg Config, newHalf func(Config) (halfAxis, error)) (*DoubleEnded, error) {
	if cfg.Min < 0 {
		return nil, fmt.Errorf("%w: min %v", ErrNegativeDoubleEnded, cfg.Min)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	length := cfg.Length
	cfg.Length = length / 2
	half, err := newHalf(cfg)
	if err != nil {
		return nil, err
	}
	return &DoubleEnded{kind: kind, half: half, length: length, direction: 1}, nil
}

func (a *DoubleEnded) Kind() Kind    { return a.kind }
func (a *DoubleEnded) Unit() float64 { return a.half.Unit() }
func (a *DoubleEnded) Uneven() bool  { return a.half.Uneven() }
func (a *DoubleEnded) Err() error    { return a.half.Err() }
func (a *DoubleEnded) Bar()          { a.half.Bar() }

// Zero returns the midpoint of the axis.
func (a *DoubleEnded) Zero() float64   { return a.length / 2 }
func (a *DoubleEnded) Origin() float64 { return a.Zero() }

func (a *DoubleEnded) Reverse() {
	a.direction = -1
	a.half.Reverse()
}

func (a *DoubleEnded) SetLength(length float64) {
	a.length = length
	a.half.SetLength(length / 2)
}

// Position returns the offset of value on the upper half of the axis. Its
// mirror lies the same distance below the midpoint.
func (a *DoubleEnded) Position(value float64) (float64, bool) {
	pos, ok := a.half.Position(value)
	return a.Zero() + pos, ok
}

// Value returns the value at position, measured outward from the midpoint
// on either half.
func (a *DoubleEnded) Value(position float64) float64 {
	return a.half.Value(math.Abs(position - a.Zero()))
}

// mirror places each point of the half axis on both sides of the midpoint.
// Points at value 0 appear once.
func (a *DoubleEnded) mirror(points []GridPoint, start float64) []GridPoint {
	z := a.direction * a.Zero()
	out := make([]GridPoint, 0, 2*len(points))
	for _, p := range points {
		q := p
		q.Position = p.Position + z
		out = append(out, q)
		if p.Value != 0 {
			q.Position = 2*start + z - p.Position
			out = append(out, q)
		}
	}
	sortPoints(out, a.direction)
	return out
}

func (a *DoubleEnded) GridPoints(start float64) ([]GridPoint, error) {
	points, err := a.half.GridPoints(start)
	if err != nil {
		return nil, err
	}
	return a.mirror(points, start), nil
}

func (a *DoubleEnded) GridSubdivisions(minSpace, minUnit, start float64, fixed string) ([]GridPoint, error) {
	points, err := a.half.GridSubdivisions(minSpace, minUnit, start, fixed)
	if err != nil {
		return nil, err
	}
	return a.mirror(points, start), nil
}
