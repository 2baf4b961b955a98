// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package render draws calibrated axes as an SVG preview.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	axis "github.com/kofi-q/axis-go"
)

// Orientation is the direction an axis runs on the canvas.
type Orientation int

const (
	// Horizontal axes run left to right with ticks pointing down.
	Horizontal Orientation = iota
	// Vertical axes run bottom to top with ticks pointing left.
	Vertical
)

// Layer is one axis placed on the canvas.
type Layer struct {
	Axis        axis.Axis
	Orientation Orientation
	X, Y        float64 // canvas point of axis offset 0
	Start       float64 // offset passed to the point generators
	Minor       []axis.GridPoint
}

// Matrix returns the placement transform of the layer.
func (l *Layer) Matrix() Matrix {
	m := Identity()
	if l.Orientation == Vertical {
		m = Scale(1, -1).Multiply(Rotate(-90))
	}
	return m.Multiply(Translate(l.X, l.Y))
}

// Options controls tick sizes and styling. Zero fields take defaults.
type Options struct {
	TickLength  float64
	MinorLength float64
	LabelGap    float64
	Style       string
}

func (o Options) withDefaults() Options {
	if o.TickLength == 0 {
		o.TickLength = 6
	}
	if o.MinorLength == 0 {
		o.MinorLength = 3
	}
	if o.LabelGap == 0 {
		o.LabelGap = 4
	}
	if o.Style == "" {
		o.Style = "stroke:black;stroke-width:1;font-family:sans-serif;font-size:10px"
	}
	return o
}

// SVG writes a width by height document with each layer drawn as an axis
// line, labelled major ticks and minor ticks.
func SVG(w io.Writer, width, height int, layers []Layer, opts Options) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid canvas size %dx%d", width, height)
	}
	opts = opts.withDefaults()

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Gstyle(opts.Style)
	for i := range layers {
		if err := drawLayer(canvas, &layers[i], opts); err != nil {
			return fmt.Errorf("render: layer %d: %w", i, err)
		}
	}
	canvas.Gend()
	canvas.End()
	return nil
}

func drawLayer(canvas *svg.SVG, l *Layer, opts Options) error {
	if l.Axis == nil {
		return errors.New("no axis")
	}
	points, err := l.Axis.GridPoints(l.Start)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}
	m := l.Matrix()

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Position)
		hi = math.Max(hi, p.Position)
	}
	x1, y1 := m.Pixel(lo, 0)
	x2, y2 := m.Pixel(hi, 0)
	canvas.Line(x1, y1, x2, y2)

	for _, p := range l.Minor {
		x1, y1 := m.Pixel(p.Position, 0)
		x2, y2 := m.Pixel(p.Position, opts.MinorLength)
		canvas.Line(x1, y1, x2, y2)
	}

	anchor := "text-anchor:middle;stroke:none"
	labelAt := opts.TickLength + opts.LabelGap + 8
	if l.Orientation == Vertical {
		anchor = "text-anchor:end;stroke:none"
		labelAt = opts.TickLength + opts.LabelGap
	}
	for _, p := range points {
		x1, y1 := m.Pixel(p.Position, 0)
		x2, y2 := m.Pixel(p.Position, opts.TickLength)
		canvas.Line(x1, y1, x2, y2)
		if p.Label != "" {
			tx, ty := m.Pixel(p.Position, labelAt)
			canvas.Text(tx, ty, p.Label, anchor)
		}
	}
	return nil
}
