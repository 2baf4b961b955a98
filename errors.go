// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import "errors"

// Configuration errors abort axis construction. Point generators return
// ErrTooManyGridPoints when a configuration would produce an unusable
// number of grid lines.
var (
	ErrInvalidConfig       = errors.New("invalid axis configuration")
	ErrZeroLength          = errors.New("zero length axis")
	ErrLogZero             = errors.New("log axis range includes zero")
	ErrLogMixedSign        = errors.New("log axis range cannot cross zero")
	ErrNegativeDoubleEnded = errors.New("double-ended axis cannot have a negative minimum")
	ErrUnknownUnit         = errors.New("unrecognised date/time unit")
	ErrNoDivision          = errors.New("unable to find date/time divisions")
	ErrTooManyGridPoints   = errors.New("too many grid points")
)
