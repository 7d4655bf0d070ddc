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

package testcases

// weightedCases contains matrices with very uneven weights, laid out with
// proportional segment sizes.
var weightedCases = []TestCase{
	{
		Name: "skewed_rows",
		Matrix: [][]float64{
			{0, 100, 1},
			{1, 0, 1},
			{100, 1, 0},
		},
		Allocator: "rows",
		Width:     800,
		Height:    800,
	},
	{
		Name: "skewed_columns",
		Matrix: [][]float64{
			{0, 100, 1},
			{1, 0, 1},
			{100, 1, 0},
		},
		Allocator: "columns",
		Width:     800,
		Height:    800,
	},

	// No weight at all: proportional allocation falls back to equal spans.
	{
		Name: "weightless",
		Matrix: [][]float64{
			{0, 0},
			{0, 0},
		},
		Allocator: "rows",
		Width:     400,
		Height:    400,
	},

	{
		Name: "twelve",
		Matrix: generated(12, func(i, j int) float64 {
			if i == j {
				return 0
			}
			return float64((i + 2*j) % 5)
		}),
		Allocator: "columns",
		Width:     800,
		Height:    600,
	},
}
