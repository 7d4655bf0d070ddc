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

// Package adjacency holds the square weight matrices that chord layouts
// are computed from.
//
// An entry m[i][j] is the weight of the relationship from entity i to
// entity j. NaN marks an absent relationship. Absent entries are left out
// of all sums and counts in this package.
package adjacency

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for matrices which cannot be laid out.
var ErrInvalidInput = errors.New("invalid input")

// Matrix is a square matrix of non-negative edge weights, indexed as
// m[row][column]. The zero value is not a valid matrix.
type Matrix [][]float64

// Size returns the number of entities, that is the number of rows.
func (m Matrix) Size() int {
	return len(m)
}

// Validate checks that m is non-empty and square and that every defined
// entry is finite and non-negative.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("Validate: %w: empty matrix", ErrInvalidInput)
	}
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("Validate: %w: row %d has %d columns, want %d",
				ErrInvalidInput, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) {
				continue
			}
			if math.IsInf(v, 0) || v < 0 {
				return fmt.Errorf("Validate: %w: entry (%d,%d) = %g",
					ErrInvalidInput, i, j, v)
			}
		}
	}
	return nil
}

// Defined reports whether the relationship from i to j is present.
func (m Matrix) Defined(i, j int) bool {
	return !math.IsNaN(m[i][j])
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	res := make(Matrix, len(m))
	for i, row := range m {
		res[i] = append([]float64(nil), row...)
	}
	return res
}

// RowSum returns the sum of the defined entries in the given row.
// The result is 0 if no entry is defined.
func (m Matrix) RowSum(row int) float64 {
	return m.RowSumUpTo(row, len(m[row])-1)
}

// ColumnSum returns the sum of the defined entries in the given column.
// The result is 0 if no entry is defined.
func (m Matrix) ColumnSum(col int) float64 {
	return m.ColumnSumUpTo(col, len(m)-1)
}

// RowCount returns the number of defined entries in the given row.
func (m Matrix) RowCount(row int) int {
	return m.RowCountUpTo(row, len(m[row])-1)
}

// ColumnCount returns the number of defined entries in the given column.
func (m Matrix) ColumnCount(col int) int {
	return m.ColumnCountUpTo(col, len(m)-1)
}

// RowSumUpTo sums the defined entries m[row][0..toCol], inclusive.
func (m Matrix) RowSumUpTo(row, toCol int) float64 {
	sum := 0.0
	for _, v := range m[row][:toCol+1] {
		if !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

// ColumnSumUpTo sums the defined entries m[0..toRow][col], inclusive.
func (m Matrix) ColumnSumUpTo(col, toRow int) float64 {
	sum := 0.0
	for _, row := range m[:toRow+1] {
		if v := row[col]; !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

// RowCountUpTo counts the defined entries m[row][0..toCol], inclusive.
func (m Matrix) RowCountUpTo(row, toCol int) int {
	count := 0
	for _, v := range m[row][:toCol+1] {
		if !math.IsNaN(v) {
			count++
		}
	}
	return count
}

// ColumnCountUpTo counts the defined entries m[0..toRow][col], inclusive.
func (m Matrix) ColumnCountUpTo(col, toRow int) int {
	count := 0
	for _, row := range m[:toRow+1] {
		if !math.IsNaN(row[col]) {
			count++
		}
	}
	return count
}

// Total returns the sum of all defined entries.
func (m Matrix) Total() float64 {
	sum := 0.0
	for i := range m {
		sum += m.RowSum(i)
	}
	return sum
}
