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

// Package testcases provides matrices for testing and benchmarking chord
// layouts.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/chord/adjacency"
)

// TestCase defines a single layout test.
type TestCase struct {
	Name      string           // lowercase a-z, 0-9 and _ only
	Matrix    adjacency.Matrix // the weights to lay out
	Allocator string           // allocator name, empty for equal spans
	Width     int              // canvas width in pixels
	Height    int              // canvas height in pixels
	CTM       matrix.Matrix    // transformation matrix (zero-value means no transform)
}

// nan marks an absent relationship.
var nan = math.NaN()

// generated builds an n×n matrix from the weight function w.
func generated(n int, w func(i, j int) float64) adjacency.Matrix {
	m := make(adjacency.Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = w(i, j)
		}
	}
	return m
}
