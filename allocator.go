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
	"errors"
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/chord/adjacency"
)

// ErrUnknownAllocator is returned by [ParseAllocator] for unknown names.
var ErrUnknownAllocator = errors.New("unknown allocator")

// An Allocator decides which fraction of the circle each segment gets.
//
// This must be one of [Equal], [ProportionalToRowSum] or
// [ProportionalToColumnSum].
type Allocator interface {
	// AngleForSegment returns the fraction of a full turn assigned to
	// segment i.
	AngleForSegment(m adjacency.Matrix, i int) float64

	// String returns the name understood by [ParseAllocator].
	String() string

	isAllocator()
}

// Equal gives every segment the same share of the circle.
type Equal struct{}

// ProportionalToRowSum sizes segments by their outgoing weight.
type ProportionalToRowSum struct{}

// ProportionalToColumnSum sizes segments by their incoming weight.
type ProportionalToColumnSum struct{}

func (Equal) isAllocator()                   {}
func (ProportionalToRowSum) isAllocator()    {}
func (ProportionalToColumnSum) isAllocator() {}

// AngleForSegment implements the [Allocator] interface.
func (Equal) AngleForSegment(m adjacency.Matrix, _ int) float64 {
	return 1 / float64(m.Size())
}

// AngleForSegment implements the [Allocator] interface.
// The result is NaN if all row sums are zero.
func (ProportionalToRowSum) AngleForSegment(m adjacency.Matrix, i int) float64 {
	return m.RowSum(i) / m.Total()
}

// AngleForSegment implements the [Allocator] interface.
// The result is NaN if all column sums are zero.
func (ProportionalToColumnSum) AngleForSegment(m adjacency.Matrix, i int) float64 {
	return m.ColumnSum(i) / m.Total()
}

func (Equal) String() string                   { return "equal" }
func (ProportionalToRowSum) String() string    { return "rows" }
func (ProportionalToColumnSum) String() string { return "columns" }

// ParseAllocator returns the allocator with the given name.
// The names are "equal", "rows" and "columns"; the empty string selects
// [Equal].
func ParseAllocator(name string) (Allocator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "equal":
		return Equal{}, nil
	case "rows", "row", "rowsum":
		return ProportionalToRowSum{}, nil
	case "columns", "column", "columnsum":
		return ProportionalToColumnSum{}, nil
	}
	return nil, fmt.Errorf("ParseAllocator: %w %q", ErrUnknownAllocator, name)
}

// allocate returns the fraction of a turn for every segment.
// If the allocator cannot size the segments, for example because the
// matrix has no weight at all, the equal allocation is used instead.
func allocate(a Allocator, m adjacency.Matrix) []float64 {
	n := m.Size()
	spans := make([]float64, n)
	total := 0.0
	for i := range spans {
		spans[i] = a.AngleForSegment(m, i)
		total += spans[i]
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		tracer().Debugf("allocator %s cannot size segments (total %g), using equal spans", a, total)
		for i := range spans {
			spans[i] = Equal{}.AngleForSegment(m, i)
		}
	}
	return spans
}
