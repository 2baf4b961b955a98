// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"cmp"
	"slices"
)

// GridPoint is a division mark on an axis.
type GridPoint struct {
	Position float64 // pixel offset
	Label    string  // empty for subdivisions
	Value    float64
}

// sortPoints orders points by position, ascending for a forward axis and
// descending for a reversed one.
func sortPoints(points []GridPoint, direction float64) {
	slices.SortStableFunc(points, func(a, b GridPoint) int {
		if direction < 0 {
			return cmp.Compare(b.Position, a.Position)
		}
		return cmp.Compare(a.Position, b.Position)
	})
}
