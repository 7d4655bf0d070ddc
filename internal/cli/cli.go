// seehuhn.de/go/chord - chord diagram layout
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cli implements the chord command-line interface.
//
// The commands read a layout file (see package config), compute the
// layout and report on it:
//   - layout: print the segments, ribbons and dropped pairs
//   - pick: report the shape under a point of a transformed view
//
// All commands support --verbose (-v), which enables debug logging and
// the trace output of the layout library.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"seehuhn.de/go/chord"
	"seehuhn.de/go/chord/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level. At debug level the tracing of
// the layout library is switched on as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		tracing.Select("chord").SetTraceLevel(tracing.LevelDebug)
	} else {
		tracing.Select("chord").SetTraceLevel(tracing.LevelError)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "chord",
		Short:        "Compute chord diagram layouts",
		Long:         `chord lays out the segments and ribbons of a chord diagram for a weighted relationship matrix and reports on the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.pickCommand())

	return root
}

// build loads the layout file at path and computes its layout.
func (c *CLI) build(path string) (*chord.Layout, error) {
	c.Logger.Debug("loading layout file", "path", path)
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	m, err := f.Matrix()
	if err != nil {
		return nil, err
	}
	p, err := f.Params()
	if err != nil {
		return nil, err
	}

	prog := newProgress(c.Logger)
	l, err := chord.Build(m, p)
	if err != nil {
		return nil, err
	}
	prog.done("Computed layout " + l.ID.String())
	for _, d := range l.Dropped {
		c.Logger.Warn("ribbon dropped", "pair", d.Pair, "err", d.Err)
	}
	return l, nil
}
