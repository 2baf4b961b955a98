// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type pointRecord struct {
	Axis     string  `json:"axis"`
	Kind     string  `json:"kind"`
	Major    bool    `json:"major"`
	Position float64 `json:"position"`
	Value    float64 `json:"value"`
	Label    string  `json:"label,omitempty"`
}

func newPointsCmd(opts *options, log *logrus.Logger) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print the grid points of each axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			axes, err := loadAxes(cmd, opts, log)
			if err != nil {
				return err
			}
			records := collect(axes)
			switch format {
			case "table":
				writeTable(cmd.OutOrStdout(), records)
				return nil
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			return fmt.Errorf("unknown output format %q", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	return cmd
}

func collect(axes []built) []pointRecord {
	var records []pointRecord
	for _, b := range axes {
		kind := b.axis.Kind().String()
		for _, p := range b.major {
			records = append(records, pointRecord{
				Axis: b.def.Name, Kind: kind, Major: true,
				Position: p.Position, Value: p.Value, Label: p.Label,
			})
		}
		for _, p := range b.minor {
			records = append(records, pointRecord{
				Axis: b.def.Name, Kind: kind,
				Position: p.Position, Value: p.Value,
			})
		}
	}
	return records
}

func writeTable(w io.Writer, records []pointRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Axis", "Kind", "Tick", "Position", "Value", "Label"})
	table.SetAutoFormatHeaders(false)
	for _, r := range records {
		tick := "minor"
		if r.Major {
			tick = "major"
		}
		table.Append([]string{
			r.Axis,
			r.Kind,
			tick,
			strconv.FormatFloat(r.Position, 'f', 2, 64),
			strconv.FormatFloat(r.Value, 'g', 8, 64),
			r.Label,
		})
	}
	table.Render()
}
