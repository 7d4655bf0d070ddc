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
	"fmt"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord/raster"
	"seehuhn.de/go/chord/shape"
)

// Pair is an ordered pair of matrix indices.
type Pair struct {
	Source, Target int
}

func (p Pair) String() string {
	return fmt.Sprintf("%d-%d", p.Source, p.Target)
}

// Drop records a ribbon which could not be constructed.
type Drop struct {
	Pair Pair
	Err  error
}

// Layout is the result of a build. It must not be modified.
type Layout struct {
	// ID identifies the inputs of the build: identical matrices and
	// parameters give identical IDs.
	ID uuid.UUID

	// Params are the parameters used, with defaults filled in.
	Params Params

	// Spans[i] is the fraction of the circle assigned to segment i by the
	// allocator, including the segment margin.
	Spans []float64

	Segments *shape.Track[*shape.Segment]
	Ribbons  *shape.Track[*shape.Ribbon]
	Ticks    *shape.Track[*shape.Ticks]
	Ring     *shape.Track[*shape.Segment]

	// SourceOffsets[i] and TargetOffsets[i] divide segment i among its
	// outgoing and incoming ribbons.
	SourceOffsets []OffsetTable
	TargetOffsets []OffsetTable

	// Dropped lists the pairs whose ribbons could not be constructed.
	Dropped []Drop
}

// Layers returns the four tracks in drawing order.
func (l *Layout) Layers() []shape.Layer {
	return []shape.Layer{l.Segments, l.Ribbons, l.Ticks, l.Ring}
}

// Tracks returns the tracks by name.
func (l *Layout) Tracks() map[string]shape.Layer {
	res := make(map[string]shape.Layer, len(TrackNames))
	for _, layer := range l.Layers() {
		res[layer.Name()] = layer
	}
	return res
}

// Ribbon returns the ribbon from segment i to segment j, or nil if there
// is none.
func (l *Layout) Ribbon(i, j int) *shape.Ribbon {
	for _, r := range l.Ribbons.All() {
		if r.Source.Segment == i && r.Target.Segment == j {
			return r
		}
	}
	return nil
}

// Draw renders all tracks onto c.
func (l *Layout) Draw(c *raster.Canvas) {
	for _, layer := range l.Layers() {
		layer.Draw(c)
	}
}

// SelectAt returns the first entity hit at p after mapping the layout by
// m, together with the name of its track. Tracks are searched in order.
// The result is nil if nothing is hit.
func (l *Layout) SelectAt(m matrix.Matrix, p vec.Vec2) (track string, hit shape.Drawable) {
	for _, layer := range l.Layers() {
		if hit := layer.SelectAt(m, p); hit != nil {
			return layer.Name(), hit
		}
	}
	return "", nil
}
