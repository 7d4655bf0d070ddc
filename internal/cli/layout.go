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

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"seehuhn.de/go/chord"
	"seehuhn.de/go/chord/polar"
	"seehuhn.de/go/chord/shape"
)

func (c *CLI) layoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layout <file.toml>",
		Short: "Print the segments and ribbons of a layout",
		Long: `Compute the chord layout described by a TOML file and print its
segments, ribbons and the pairs whose ribbons could not be built.

Angles are printed in degrees, measured clockwise from the positive x-axis.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.build(args[0])
			if err != nil {
				return err
			}
			printLayout(cmd.OutOrStdout(), l)
			return nil
		},
	}
}

func printLayout(w io.Writer, l *chord.Layout) {
	printTitle(w, "Chord layout", l.ID.String())
	printKeyValue(w, "allocator", l.Params.Allocator.String())
	printKeyValue(w, "segments", strconv.Itoa(l.Segments.Len()))
	printKeyValue(w, "ribbons", strconv.Itoa(l.Ribbons.Len()))
	printKeyValue(w, "dropped", strconv.Itoa(len(l.Dropped)))
	fmt.Fprintln(w)

	var rows [][]string
	for i, seg := range l.Segments.All() {
		rows = append(rows, []string{
			seg.Name(),
			degrees(seg.Start),
			degrees(seg.End),
			fmt.Sprintf("%.4f", l.Spans[i]),
		})
	}
	printInfo(w, "Segments")
	printTable(w, []string{"name", "start", "end", "share"}, rows)

	if l.Ribbons.Len() > 0 {
		rows = rows[:0]
		for _, r := range l.Ribbons.All() {
			rows = append(rows, []string{
				r.Name(),
				anchor(r.Source),
				iconArrow,
				anchor(r.Target),
			})
		}
		fmt.Fprintln(w)
		printInfo(w, "Ribbons")
		printTable(w, []string{"name", "source", "", "target"}, rows)
	}

	if len(l.Dropped) > 0 {
		fmt.Fprintln(w)
		printInfo(w, "Dropped")
		for _, d := range l.Dropped {
			printError(w, "%s: %v", d.Pair, d.Err)
		}
	}
}

func degrees(fraction float64) string {
	return fmt.Sprintf("%.2f°", polar.Degrees(fraction))
}

func anchor(a shape.Anchor) string {
	return fmt.Sprintf("%d [%s, %s]", a.Segment, degrees(a.Start), degrees(a.End))
}
