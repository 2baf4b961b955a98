// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import "math"

// mod returns a mod n in [0, n).
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// isWhole reports whether f has no fractional part.
func isWhole(f float64) bool {
	return f == math.Trunc(f)
}

// finitePositive reports whether f is a usable length or span.
func finitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
