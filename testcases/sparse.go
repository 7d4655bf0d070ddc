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

// sparseCases contains matrices with absent relationships.
var sparseCases = []TestCase{
	// Every relationship is defined in one direction only, so there are
	// no ribbons at all.
	{
		Name: "one_way",
		Matrix: [][]float64{
			{nan, 2, nan},
			{nan, nan, 3},
			{1, nan, nan},
		},
		Width:  400,
		Height: 400,
	},

	{
		Name: "partial",
		Matrix: [][]float64{
			{nan, 2, 1},
			{4, nan, nan},
			{1, nan, nan},
		},
		Width:  400,
		Height: 400,
	},

	// The second row sums to zero, so its outgoing ratios are undefined.
	{
		Name: "zero_row",
		Matrix: [][]float64{
			{0, 1, 1},
			{0, 0, 0},
			{1, 1, 0},
		},
		Width:  400,
		Height: 400,
	},

	{
		Name:   "self_loops",
		Matrix: [][]float64{{2, 1}, {1, 2}},
		Width:  400,
		Height: 400,
	},
}
