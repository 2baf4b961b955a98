// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import "fmt"

// maxGridPoints caps the points a numeric axis will generate.
const maxGridPoints = 10000

// scale is the calibrated value-to-pixel mapping of the linear axis kinds.
// Positions grow from zero with value; direction only affects where grid
// points are placed relative to the start offset.
type scale struct {
	length    float64
	direction float64
	unitSize  float64 // pixels per data unit
	zero      float64 // pixel offset of value 0
	spacing   float64 // pixels between major divisions
	uneven    bool
	labels    labeler
	err       error
}

func (s *scale) Unit() float64   { return s.unitSize }
func (s *scale) Zero() float64   { return s.zero }
func (s *scale) Origin() float64 { return s.zero }
func (s *scale) Uneven() bool    { return s.uneven }
func (s *scale) Err() error      { return s.err }
func (s *scale) Reverse()        { s.direction = -1 }

func (s *scale) Position(value float64) (float64, bool) {
	return s.zero + value*s.unitSize, true
}

func (s *scale) Value(position float64) float64 {
	return (position - s.zero) / s.unitSize
}

// tolerance absorbs rounding when comparing accumulated pixel offsets.
func (s *scale) tolerance() float64 {
	return s.spacing * 1e-9
}

func (s *scale) gridPoints(start float64) ([]GridPoint, error) {
	if s.err != nil {
		return nil, s.err
	}
	limit := s.length + s.spacing*0.5
	if n := limit / s.spacing; !(n <= maxGridPoints) {
		return nil, fmt.Errorf("%w: %.0f divisions over %v pixels", ErrTooManyGridPoints, n, s.length)
	}

	points := make([]GridPoint, 0, int(limit/s.spacing)+2)
	last := 0.0
	for c := 0; ; c++ {
		pos := float64(c) * s.spacing
		if pos >= limit {
			break
		}
		points = append(points, s.point(start, pos, true))
		last = pos
	}
	if s.uneven && s.length-last > s.tolerance() {
		points = append(points, s.point(start, s.length, true))
	}
	sortPoints(points, s.direction)
	return points, nil
}

func (s *scale) point(start, pos float64, label bool) GridPoint {
	value := (pos - s.zero) / s.unitSize
	p := GridPoint{Position: start + s.direction*pos, Value: value}
	if label {
		p.Label = s.labels.text(value)
	}
	return p
}

func (s *scale) subdivisions(minSpace, minUnit, start float64, fixed string) ([]GridPoint, error) {
	if s.err != nil {
		return nil, s.err
	}
	spacing := findSubdivision(s.spacing, minSpace, minUnit, s.unitSize, fixed)
	if !(spacing > 0) {
		return nil, nil
	}
	if n := s.length / spacing; n > maxGridPoints {
		return nil, fmt.Errorf("%w: %.0f subdivisions over %v pixels", ErrTooManyGridPoints, n, s.length)
	}

	tol := s.tolerance()
	var points []GridPoint
	for i := 0; ; i++ {
		major := float64(i) * s.spacing
		if major+spacing >= s.length {
			break
		}
		for j := 1; ; j++ {
			minor := float64(j) * spacing
			if minor >= s.spacing-tol || major+minor >= s.length-tol {
				break
			}
			points = append(points, s.point(start, major+minor, false))
		}
	}
	sortPoints(points, s.direction)
	return points, nil
}
