// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package render

import (
	"math"
)

// Matrix is an affine transform from axis coordinates, x along the axis and
// y across it, to canvas coordinates:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate moves points by tx horizontally and ty vertically.
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale scales points by sx and sy about the origin. A negative factor
// mirrors.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate rotates points about the origin. angle is in degrees and measured
// counter-clockwise from the 3 o'clock position in a y-up frame.
func Rotate(angle float64) Matrix {
	rad := angle * math.Pi / 180
	cos, sin := exact(math.Cos(rad)), exact(math.Sin(rad))
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// exact removes the rounding residue of quarter turns.
func exact(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return v
}

// Multiply returns the transform that applies m and then n.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: n.A*m.A + n.C*m.B,
		B: n.B*m.A + n.D*m.B,
		C: n.A*m.C + n.C*m.D,
		D: n.B*m.C + n.D*m.D,
		E: n.A*m.E + n.C*m.F + n.E,
		F: n.B*m.E + n.D*m.F + n.F,
	}
}

// Transform maps the point (x, y).
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Pixel maps the point (x, y) and rounds the result to whole pixels.
func (m Matrix) Pixel(x, y float64) (int, int) {
	tx, ty := m.Transform(x, y)
	return int(math.Round(tx)), int(math.Round(ty))
}
