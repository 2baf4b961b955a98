// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package axis calibrates chart axes. Given a value range, a pixel length and
// a minimum readable spacing it chooses "nice" major divisions, maps values
// to pixel offsets and back, and generates labelled grid points and
// unlabelled subdivisions for a renderer to draw.
package axis

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Kind selects the calibration behaviour of an axis.
type Kind int

const (
	// KindLinear divides a numeric range into nice, evenly spaced steps.
	KindLinear Kind = iota
	// KindLog places grid lines at powers of a base.
	KindLog
	// KindFixedStep uses an explicit step between grid lines.
	KindFixedStep
	// KindDoubleEnded mirrors a linear scale around a central zero.
	KindDoubleEnded
	// KindFixedDoubleEnded mirrors a fixed-step scale around a central zero.
	KindFixedDoubleEnded
	// KindDateTime divides a time range into calendar units.
	KindDateTime
)

var kindNames = [...]string{
	KindLinear:           "linear",
	KindLog:              "log",
	KindFixedStep:        "fixed",
	KindDoubleEnded:      "double",
	KindFixedDoubleEnded: "fixed-double",
	KindDateTime:         "datetime",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named by s. Matching ignores case.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown axis kind %q", ErrInvalidConfig, s)
}

// LabelFunc formats the label of a grid point. key is the data key found at
// the value's index when the data source has associative keys, and empty
// otherwise.
type LabelFunc func(value float64, key string) string

// DataSource gives an axis read access to the keys of the plotted data.
type DataSource interface {
	// AssociativeKeys reports whether items are keyed by name rather than
	// by position.
	AssociativeKeys() bool
	// Len returns the number of items.
	Len() int
	// KeyAt returns the key of the item at index.
	KeyAt(index int) (string, bool)
	// FieldFor returns a named per-item field, such as "axis_text".
	FieldFor(index int, name string) (string, bool)
}

// Keys is a DataSource over a list of associative keys.
type Keys []string

func (k Keys) AssociativeKeys() bool { return true }

func (k Keys) Len() int { return len(k) }

func (k Keys) KeyAt(index int) (string, bool) {
	if index < 0 || index >= len(k) {
		return "", false
	}
	return k[index], true
}

func (k Keys) FieldFor(int, string) (string, bool) { return "", false }

// Config holds the settings of an axis. Fields that only apply to one Kind
// are ignored by the others.
type Config struct {
	Length   float64 // pixels available to the axis
	Min, Max float64 // value range; Unix seconds for date/time axes
	MinUnit  float64 // smallest meaningful increment, 0 for continuous data
	MinSpace float64 // minimum pixel distance between grid lines
	Fit      bool    // divisions span exactly [Min, Max]

	UnitsBefore   string
	UnitsAfter    string
	DecimalDigits *int // nil formats to Format.Precision significant digits
	Label         LabelFunc
	Data          DataSource
	Format        NumberFormat

	Logger logrus.FieldLogger

	// Logarithmic axes.
	Base      float64
	Divisions int

	// Fixed-step axes.
	Step float64

	// Date/time axes.
	Division    string
	WeekStart   *time.Weekday // nil for Monday
	DateFormat  string
	DateFormats map[Unit]string
	Location    *time.Location
}

// DefaultConfig returns a Config with the conventional defaults: base 10
// logarithms, UTC and numbers with five significant digits and "." and ","
// separators. Weeks start on Monday unless WeekStart is set.
func DefaultConfig() Config {
	return Config{
		Format:   DefaultNumberFormat(),
		Base:     10,
		Location: time.UTC,
	}
}

// Digits returns a pointer to n, for Config.DecimalDigits.
func Digits(n int) *int { return &n }

// Weekday returns a pointer to d, for Config.WeekStart.
func Weekday(d time.Weekday) *time.Weekday { return &d }

func (c *Config) validate() error {
	if !finitePositive(c.Length) {
		return fmt.Errorf("%w: length %v must be positive", ErrInvalidConfig, c.Length)
	}
	if c.MinSpace < 0 {
		return fmt.Errorf("%w: negative minimum spacing %v", ErrInvalidConfig, c.MinSpace)
	}
	return c.Format.validate()
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func (c *Config) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return discardLogger
}

// Axis is the query contract shared by every axis kind. All methods work on
// calibrated state: constructors calibrate before returning, and Bar and
// SetLength recalibrate. A failed recalibration is reported by Err and by
// the point generators.
type Axis interface {
	Kind() Kind

	// Unit returns the pixel size of one data unit.
	Unit() float64
	// Zero returns the pixel offset of value 0.
	Zero() float64
	// Origin returns the pixel offset of the axis baseline.
	Origin() float64
	// Position returns the pixel offset of value. ok is false when the
	// value cannot be plotted on the axis.
	Position(value float64) (pos float64, ok bool)
	// Value is the inverse of Position.
	Value(position float64) float64

	// GridPoints returns the labelled major divisions, offset by start.
	GridPoints(start float64) ([]GridPoint, error)
	// GridSubdivisions returns unlabelled minor divisions at least minSpace
	// pixels apart. A non-empty fixed sets the subdivision size instead of
	// searching for one: a number of data units, or a division such as
	// "6 hours" for date/time axes.
	GridSubdivisions(minSpace, minUnit, start float64, fixed string) ([]GridPoint, error)

	// Reverse flips the direction of the axis.
	Reverse()
	// Bar widens the range by one minimum unit. Repeated calls have no
	// further effect.
	Bar()
	// SetLength changes the pixel length and recalibrates.
	SetLength(length float64)
	// Uneven reports whether the last division is shorter than the others.
	Uneven() bool
	// Err returns the sticky calibration error, if any.
	Err() error
}

// New returns an axis of the given kind.
func New(kind Kind, cfg Config) (Axis, error) {
	switch kind {
	case KindLinear:
		return NewLinear(cfg)
	case KindLog:
		return NewLog(cfg)
	case KindFixedStep:
		return NewFixedStep(cfg)
	case KindDoubleEnded:
		return NewDoubleEnded(cfg)
	case KindFixedDoubleEnded:
		return NewFixedDoubleEnded(cfg)
	case KindDateTime:
		return NewDateTime(cfg)
	}
	return nil, fmt.Errorf("%w: unknown axis kind %v", ErrInvalidConfig, kind)
}
