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

package adjacency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		m    Matrix
		ok   bool
	}{
		{"nil", nil, false},
		{"empty", Matrix{}, false},
		{"single", Matrix{{0}}, true},
		{"single nan", Matrix{{nan}}, true},
		{"ragged", Matrix{{1, 2}, {3}}, false},
		{"wide", Matrix{{1, 2, 3}, {4, 5, 6}}, false},
		{"negative", Matrix{{0, -1}, {1, 0}}, false},
		{"infinite", Matrix{{0, math.Inf(1)}, {1, 0}}, false},
		{"absent edges", Matrix{{nan, 1}, {nan, nan}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestSums(t *testing.T) {
	m := Matrix{
		{1, nan, 3},
		{nan, nan, nan},
		{4, 5, nan},
	}

	assert.Equal(t, 4.0, m.RowSum(0))
	assert.Equal(t, 0.0, m.RowSum(1))
	assert.Equal(t, 9.0, m.RowSum(2))
	assert.Equal(t, 5.0, m.ColumnSum(0))
	assert.Equal(t, 5.0, m.ColumnSum(1))
	assert.Equal(t, 3.0, m.ColumnSum(2))
	assert.Equal(t, 13.0, m.Total())

	assert.Equal(t, 2, m.RowCount(0))
	assert.Equal(t, 0, m.RowCount(1))
	assert.Equal(t, 1, m.ColumnCount(2))
}

func TestPrefixAggregates(t *testing.T) {
	m := Matrix{
		{1, 2, nan},
		{nan, 4, 8},
		{16, nan, 32},
	}

	assert.Equal(t, 1.0, m.RowSumUpTo(0, 0))
	assert.Equal(t, 3.0, m.RowSumUpTo(0, 2))
	assert.Equal(t, 4.0, m.RowSumUpTo(1, 1))
	assert.Equal(t, 1.0, m.ColumnSumUpTo(0, 1))
	assert.Equal(t, 17.0, m.ColumnSumUpTo(0, 2))
	assert.Equal(t, 40.0, m.ColumnSumUpTo(2, 2))

	assert.Equal(t, 2, m.RowCountUpTo(0, 2))
	assert.Equal(t, 0, m.RowCountUpTo(1, 0))
	assert.Equal(t, 1, m.ColumnCountUpTo(1, 0))
	assert.Equal(t, 2, m.ColumnCountUpTo(2, 2))
}

func TestClone(t *testing.T) {
	m := Matrix{{1, 2}, {3, 4}}
	c := m.Clone()
	c[0][0] = 100
	assert.Equal(t, 1.0, m[0][0])
	assert.True(t, m.Defined(1, 1))
	assert.False(t, Matrix{{nan}}.Defined(0, 0))
}
