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

// largeCases contains matrices with many entities, for benchmarks.
var largeCases = []TestCase{
	{
		Name: "forty",
		Matrix: generated(40, func(i, j int) float64 {
			if (i+j)%9 == 0 {
				return nan
			}
			return float64((i*7 + j*13) % 17)
		}),
		Width:  1024,
		Height: 1024,
	},
	{
		Name: "forty_rows",
		Matrix: generated(40, func(i, j int) float64 {
			return float64(1 + (i*j)%23)
		}),
		Allocator: "rows",
		Width:     1024,
		Height:    1024,
	},
}
