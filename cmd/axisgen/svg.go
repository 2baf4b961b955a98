// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kofi-q/axis-go/render"
)

const (
	margin     = 60
	axisStride = 50
)

type svgOptions struct {
	output   string
	width    int
	height   int
	vertical []string
}

func newSVGCmd(opts *options, log *logrus.Logger) *cobra.Command {
	so := &svgOptions{}
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Render the axes as an SVG preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			axes, err := loadAxes(cmd, opts, log)
			if err != nil {
				return err
			}
			draw := func(w io.Writer) error {
				return render.SVG(w, so.width, so.height, layout(axes, so), render.Options{})
			}
			if so.output == "" || so.output == "-" {
				err = draw(cmd.OutOrStdout())
			} else {
				err = writeFile(so.output, draw)
			}
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"output": so.output, "axes": len(axes)}).Info("preview written")
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&so.output, "output", "o", "", "output file, standard output when empty")
	flags.IntVar(&so.width, "width", 800, "canvas width in pixels")
	flags.IntVar(&so.height, "height", 600, "canvas height in pixels")
	flags.StringSliceVar(&so.vertical, "vertical", nil, "names of the axes to draw vertically")
	return cmd
}

// writeFile creates path and writes it with write. The file is closed before
// returning and a failed close is reported.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// layout stacks horizontal axes up from the bottom of the canvas and
// vertical axes rightward from its left edge.
func layout(axes []built, so *svgOptions) []render.Layer {
	vertical := make(map[string]bool, len(so.vertical))
	for _, name := range so.vertical {
		vertical[name] = true
	}

	var layers []render.Layer
	h, v := 0, 0
	for _, b := range axes {
		l := render.Layer{
			Axis:  b.axis,
			Start: b.start,
			Minor: b.minor,
		}
		if vertical[b.def.Name] {
			l.Orientation = render.Vertical
			l.X = float64(margin + v*axisStride)
			l.Y = float64(so.height - margin)
			v++
		} else {
			l.X = float64(margin)
			l.Y = float64(so.height - margin - h*axisStride)
			h++
		}
		layers = append(layers, l)
	}
	return layers
}
