// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command axisgen calibrates the axes described in a YAML file and prints
// their grid points or draws them as an SVG preview.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	axis "github.com/kofi-q/axis-go"
)

type options struct {
	file      string
	logLevel  string
	logFormat string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	log := logrus.New()

	root := &cobra.Command{
		Use:           "axisgen",
		Short:         "Calibrate chart axes",
		Long:          "Calibrates the axes described in a YAML definition file and prints their grid points or renders an SVG preview.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogger(log, opts, cmd.ErrOrStderr())
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "axis definition file, - for standard input")
	flags.StringVar(&opts.logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(newPointsCmd(opts, log), newSVGCmd(opts, log))
	return root
}

func configureLogger(log *logrus.Logger, opts *options, w io.Writer) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(w)
	switch opts.logFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", opts.logFormat)
	}
	return nil
}

// built is a calibrated axis with the points its definition asks for.
type built struct {
	def   axis.Definition
	axis  axis.Axis
	start float64
	major []axis.GridPoint
	minor []axis.GridPoint
}

func loadAxes(cmd *cobra.Command, opts *options, log logrus.FieldLogger) ([]built, error) {
	if opts.file == "" {
		return nil, errors.New("no definition file given, use --file")
	}
	var r io.Reader = cmd.InOrStdin()
	if opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	defs, err := axis.LoadDefinitions(r)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%s: no axes defined", opts.file)
	}

	axes := make([]built, 0, len(defs))
	for _, def := range defs {
		entry := log.WithFields(logrus.Fields{"axis": def.Name, "kind": def.Kind})
		a, err := def.Build(entry)
		if err != nil {
			return nil, err
		}
		b := built{def: def, axis: a}
		if def.Reverse {
			b.start = def.Length
		}
		if b.major, err = a.GridPoints(b.start); err != nil {
			return nil, fmt.Errorf("axis %q: %w", def.Name, err)
		}
		if b.minor, err = def.Subdivide(a, b.start); err != nil {
			return nil, fmt.Errorf("axis %q: %w", def.Name, err)
		}
		entry.WithFields(logrus.Fields{
			"points":       len(b.major),
			"subdivisions": len(b.minor),
			"uneven":       a.Uneven(),
		}).Info("axis calibrated")
		axes = append(axes, b)
	}
	return axes, nil
}
