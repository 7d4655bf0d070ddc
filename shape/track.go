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

package shape

import (
	"image/color"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord/raster"
)

// Track is a named radial band grouping one kind of drawable.
type Track[T Drawable] struct {
	// Band is the annulus occupied by the track.
	Band Wedge

	name     string
	children []T
}

var _ Layer = (*Track[*Segment])(nil)

// NewTrack returns a track for the band between the two radii.
// The radii may be given in any order.
func NewTrack[T Drawable](name string, center vec.Vec2, r1, r2 float64, children []T) *Track[T] {
	return &Track[T]{
		Band: Wedge{
			Center: center,
			Inner:  min(r1, r2),
			Outer:  max(r1, r2),
			Start:  0,
			End:    1,
		},
		name:     name,
		children: slices.Clip(children),
	}
}

// Name implements the [Drawable] interface.
func (t *Track[T]) Name() string { return t.name }

// Len implements the [Layer] interface.
func (t *Track[T]) Len() int { return len(t.children) }

// At returns the i-th child.
func (t *Track[T]) At(i int) T { return t.children[i] }

// All returns the children in drawing order.
// The returned slice must not be modified.
func (t *Track[T]) All() []T { return t.children }

// Items implements the [Layer] interface.
func (t *Track[T]) Items() []Drawable {
	res := make([]Drawable, len(t.children))
	for i, c := range t.children {
		res[i] = c
	}
	return res
}

// InBand implements the [Layer] interface.
func (t *Track[T]) InBand(p vec.Vec2) bool {
	return t.Band.InBand(p)
}

// Style implements the [Drawable] interface.
// Tracks have no style of their own.
func (t *Track[T]) Style() Style { return Style{} }

// Fill implements the [Drawable] interface.
func (t *Track[T]) Fill() color.Color { return nil }

// Outline implements the [Drawable] interface.
func (t *Track[T]) Outline() color.Color { return nil }

// Draw draws all children in order.
func (t *Track[T]) Draw(c *raster.Canvas) {
	for _, child := range t.children {
		child.Draw(c)
	}
}

func (t *Track[T]) paint(c *raster.Canvas, _ Style) {
	t.Draw(c)
}

// Bounds returns the union of the bounds of all children.
func (t *Track[T]) Bounds() rect.Rect {
	var b rect.Rect
	for _, child := range t.children {
		b = unionRect(b, child.Bounds())
	}
	return b
}

// Contains reports whether any child contains p.
func (t *Track[T]) Contains(p vec.Vec2) bool {
	for _, child := range t.children {
		if child.Contains(p) {
			return true
		}
	}
	return false
}

// SelectAt returns the first child hit at p, in drawing order.
// Children drawn later are not preferred, even though they cover earlier
// ones on screen.
func (t *Track[T]) SelectAt(m matrix.Matrix, p vec.Vec2) Drawable {
	for _, child := range t.children {
		if hit := child.SelectAt(m, p); hit != nil {
			return hit
		}
	}
	return nil
}
