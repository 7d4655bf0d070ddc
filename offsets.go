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

package chord

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/chord/adjacency"
)

// OffsetTable describes how one half of a segment is divided among the
// ribbons ending there. All values are fractions of a full turn, relative
// to the start of the segment.
//
// The sub-ranges are assigned in order of decreasing ratio, so that the
// largest contribution comes first. Equal ratios are ordered by index.
// Entries with an undefined ratio come last and have zero width.
type OffsetTable struct {
	// Ratio[j] is the share of partner j in the row or column sum.
	// It is NaN if the weight is absent or the sum is zero.
	Ratio []float64

	// Rank lists the partner indices in the order their sub-ranges are
	// placed.
	Rank []int

	// Start[j] is the offset where the sub-range of partner j begins.
	// The extra final entry Start[n] is the end of the half.
	Start []float64

	// Width[j] is the width of the sub-range of partner j.
	Width []float64
}

// Range returns the sub-range of partner j. Both values are NaN if the
// ratio of j is undefined.
func (t *OffsetTable) Range(j int) (start, end float64) {
	if math.IsNaN(t.Ratio[j]) {
		return math.NaN(), math.NaN()
	}
	return t.Start[j], t.Start[j] + t.Width[j]
}

// End returns the sentinel entry of the table.
func (t *OffsetTable) End() float64 {
	return t.Start[len(t.Start)-1]
}

// newOffsetTable ranks the given ratios and lays out their sub-ranges
// from base to base+half.
func newOffsetTable(ratio []float64, base, half float64) OffsetTable {
	n := len(ratio)
	t := OffsetTable{
		Ratio: ratio,
		Rank:  make([]int, n),
		Start: make([]float64, n+1),
		Width: make([]float64, n),
	}
	for j := range t.Rank {
		t.Rank[j] = j
	}
	slices.SortStableFunc(t.Rank, func(a, b int) int {
		ra, rb := ratio[a], ratio[b]
		switch {
		case math.IsNaN(ra) && math.IsNaN(rb):
			return 0
		case math.IsNaN(ra):
			return 1
		case math.IsNaN(rb):
			return -1
		}
		return cmp.Compare(rb, ra)
	})

	offset := base
	for _, j := range t.Rank {
		t.Start[j] = offset
		if r := ratio[j]; !math.IsNaN(r) {
			t.Width[j] = r * half
		}
		offset += t.Width[j]
	}
	t.Start[n] = base + half
	return t
}

// sourceOffsets computes the table for the outgoing ribbons of segment i,
// which occupy the first half of the segment.
func sourceOffsets(m adjacency.Matrix, i int, span float64, selfLoops bool) OffsetTable {
	sum := m.RowSum(i)
	ratio := make([]float64, m.Size())
	for j := range ratio {
		if (j == i && !selfLoops) || !m.Defined(i, j) {
			ratio[j] = math.NaN()
			continue
		}
		ratio[j] = m[i][j] / sum
	}
	return newOffsetTable(ratio, 0, span/2)
}

// targetOffsets computes the table for the incoming ribbons of segment i,
// which occupy the second half of the segment.
func targetOffsets(m adjacency.Matrix, i int, span float64, selfLoops bool) OffsetTable {
	sum := m.ColumnSum(i)
	ratio := make([]float64, m.Size())
	for j := range ratio {
		if (j == i && !selfLoops) || !m.Defined(j, i) {
			ratio[j] = math.NaN()
			continue
		}
		ratio[j] = m[j][i] / sum
	}
	return newOffsetTable(ratio, span/2, span/2)
}
