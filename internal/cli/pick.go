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
	"math"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord"
)

func (c *CLI) pickCommand() *cobra.Command {
	var x, y, scale, rotate float64

	cmd := &cobra.Command{
		Use:   "pick <file.toml>",
		Short: "Report the shape under a point",
		Long: `Compute the chord layout described by a TOML file and report the
first shape under the point (x, y). The tracks are searched from the
segments outwards.

With --scale and --rotate the layout is viewed scaled and rotated about
its centre before the point is tested.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(scale > 0) || math.IsInf(scale, 0) {
				return fmt.Errorf("invalid scale %g", scale)
			}
			l, err := c.build(args[0])
			if err != nil {
				return err
			}
			m := viewMatrix(scale, rotate, l.Params.Center)
			c.Logger.Debug("selecting", "x", x, "y", y, "ctm", m)
			printPick(cmd.OutOrStdout(), l, m, vec.Vec2{X: x, Y: y})
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "x-coordinate of the point")
	cmd.Flags().Float64Var(&y, "y", 0, "y-coordinate of the point")
	cmd.Flags().Float64Var(&scale, "scale", 1, "scale factor of the view")
	cmd.Flags().Float64Var(&rotate, "rotate", 0, "clockwise rotation of the view in degrees")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

// viewMatrix scales by s and rotates by deg degrees, keeping center fixed.
func viewMatrix(s, deg float64, center vec.Vec2) matrix.Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	m := matrix.Matrix{s * cos, s * sin, -s * sin, s * cos, 0, 0}
	m[4] = center.X - (m[0]*center.X + m[2]*center.Y)
	m[5] = center.Y - (m[1]*center.X + m[3]*center.Y)
	return m
}

func printPick(w io.Writer, l *chord.Layout, m matrix.Matrix, p vec.Vec2) {
	track, hit := l.SelectAt(m, p)
	if hit == nil {
		printInfo(w, "nothing at (%g, %g)", p.X, p.Y)
		return
	}
	printTitle(w, hit.Name(), track)
	b := hit.Bounds()
	printKeyValue(w, "bounds", fmt.Sprintf("[%.1f, %.1f] × [%.1f, %.1f]", b.LLx, b.URx, b.LLy, b.URy))
	if col := hit.Fill(); col != nil {
		r, g, bl, a := col.RGBA()
		printKeyValue(w, "fill", fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, bl>>8, a>>8))
	}
}
