// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Definition describes an axis in a YAML document.
//
//	axes:
//	  - name: revenue
//	    kind: linear
//	    length: 400
//	    min: 0
//	    max: 237
//	    min_space: 30
//	    units_before: "$"
//	    subdivisions:
//	      min_space: 8
//	  - name: period
//	    kind: datetime
//	    length: 600
//	    from: 2024-01-03T00:00:00Z
//	    to: 2024-02-02T00:00:00Z
//	    min_space: 100
type Definition struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Length float64 `yaml:"length"`

	Min  float64   `yaml:"min"`
	Max  float64   `yaml:"max"`
	From time.Time `yaml:"from"`
	To   time.Time `yaml:"to"`

	MinUnit  float64 `yaml:"min_unit"`
	MinSpace float64 `yaml:"min_space"`
	Fit      bool    `yaml:"fit"`
	Reverse  bool    `yaml:"reverse"`
	Bar      bool    `yaml:"bar"`

	UnitsBefore   string   `yaml:"units_before"`
	UnitsAfter    string   `yaml:"units_after"`
	DecimalDigits *int     `yaml:"decimal_digits"`
	Precision     int      `yaml:"precision"`
	Locale        string   `yaml:"locale"`
	Keys          []string `yaml:"keys"`

	Base      float64 `yaml:"base"`
	Divisions int     `yaml:"divisions"`
	Step      float64 `yaml:"step"`

	Division    string            `yaml:"division"`
	WeekStart   string            `yaml:"week_start"`
	DateFormat  string            `yaml:"date_format"`
	DateFormats map[string]string `yaml:"date_formats"`
	Timezone    string            `yaml:"timezone"`

	Subdivisions *SubdivisionDefinition `yaml:"subdivisions"`
}

// SubdivisionDefinition holds the arguments of Axis.GridSubdivisions.
type SubdivisionDefinition struct {
	MinSpace float64 `yaml:"min_space"`
	MinUnit  float64 `yaml:"min_unit"`
	Fixed    string  `yaml:"fixed"`
}

type definitionFile struct {
	Axes []Definition `yaml:"axes"`
}

// LoadDefinitions reads the axes of a YAML document. Unknown fields are
// rejected.
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f definitionFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return f.Axes, nil
}

// ParseWeekday returns the weekday named by s, such as "monday" or "Sun".
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidConfig, s)
}

// Config returns the kind and configuration described by d, starting from
// DefaultConfig.
func (d *Definition) Config() (Kind, Config, error) {
	kind := KindLinear
	if d.Kind != "" {
		k, err := ParseKind(d.Kind)
		if err != nil {
			return 0, Config{}, err
		}
		kind = k
	}

	cfg := DefaultConfig()
	cfg.Length = d.Length
	cfg.Min, cfg.Max = d.Min, d.Max
	if !d.From.IsZero() {
		cfg.Min = float64(d.From.Unix())
	}
	if !d.To.IsZero() {
		cfg.Max = float64(d.To.Unix())
	}
	cfg.MinUnit = d.MinUnit
	cfg.MinSpace = d.MinSpace
	cfg.Fit = d.Fit
	cfg.UnitsBefore = d.UnitsBefore
	cfg.UnitsAfter = d.UnitsAfter
	cfg.DecimalDigits = d.DecimalDigits
	if d.Base != 0 {
		cfg.Base = d.Base
	}
	cfg.Divisions = d.Divisions
	cfg.Step = d.Step
	cfg.Division = d.Division
	cfg.DateFormat = d.DateFormat

	if d.Locale != "" {
		nf, err := LocaleNumberFormat(d.Locale)
		if err != nil {
			return 0, Config{}, err
		}
		cfg.Format = nf
	}
	if d.Precision != 0 {
		cfg.Format.Precision = d.Precision
	}
	if len(d.Keys) > 0 {
		cfg.Data = Keys(d.Keys)
	}
	if d.WeekStart != "" {
		wd, err := ParseWeekday(d.WeekStart)
		if err != nil {
			return 0, Config{}, err
		}
		cfg.WeekStart = &wd
	}
	if d.Timezone != "" {
		loc, err := time.LoadLocation(d.Timezone)
		if err != nil {
			return 0, Config{}, fmt.Errorf("%w: timezone %q: %w", ErrInvalidConfig, d.Timezone, err)
		}
		cfg.Location = loc
	}
	if len(d.DateFormats) > 0 {
		cfg.DateFormats = make(map[Unit]string, len(d.DateFormats))
		for name, pattern := range d.DateFormats {
			u, err := ParseUnit(name)
			if err != nil {
				return 0, Config{}, err
			}
			cfg.DateFormats[u] = pattern
		}
	}
	return kind, cfg, nil
}

// Build constructs the axis described by d and applies its bar and reverse
// settings.
func (d *Definition) Build(logger logrus.FieldLogger) (Axis, error) {
	kind, cfg, err := d.Config()
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger
	a, err := New(kind, cfg)
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", d.Name, err)
	}
	if d.Bar {
		a.Bar()
	}
	if d.Reverse {
		a.Reverse()
	}
	if err := a.Err(); err != nil {
		return nil, fmt.Errorf("axis %q: %w", d.Name, err)
	}
	return a, nil
}

// Subdivide returns the subdivisions d asks for, or nil when it asks for
// none.
func (d *Definition) Subdivide(a Axis, start float64) ([]GridPoint, error) {
	if d.Subdivisions == nil {
		return nil, nil
	}
	s := d.Subdivisions
	return a.GridSubdivisions(s.MinSpace, s.MinUnit, start, s.Fixed)
}
