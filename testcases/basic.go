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

// basicCases contains small, fully defined matrices.
var basicCases = []TestCase{
	// A single entity: one segment, no ribbons.
	{
		Name:   "single",
		Matrix: [][]float64{{0}},
		Width:  400,
		Height: 400,
	},
	{
		Name:   "single_absent",
		Matrix: [][]float64{{nan}},
		Width:  400,
		Height: 400,
	},

	// Two entities exchanging different weights.
	{
		Name:   "pair",
		Matrix: [][]float64{{0, 3}, {1, 0}},
		Width:  400,
		Height: 400,
	},

	// Zero weights are defined: the third row sums to zero.
	{
		Name: "three",
		Matrix: [][]float64{
			{0, 10, 0},
			{5, 0, 5},
			{0, 0, 0},
		},
		Width:  800,
		Height: 800,
	},

	{
		Name: "symmetric",
		Matrix: [][]float64{
			{0, 1, 2, 3},
			{1, 0, 4, 5},
			{2, 4, 0, 6},
			{3, 5, 6, 0},
		},
		Width:  800,
		Height: 800,
	},

	// Scaled view, for hit-testing under a transformation.
	{
		Name: "symmetric_transformed",
		Matrix: [][]float64{
			{0, 1, 2, 3},
			{1, 0, 4, 5},
			{2, 4, 0, 6},
			{3, 5, 6, 0},
		},
		Width:  400,
		Height: 400,
		CTM:    [6]float64{0.5, 0, 0, 0.5, 0, 0},
	},
}
