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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord/raster"
)

// Segment is the arc wedge assigned to one entity of the matrix.
type Segment struct {
	Wedge

	// Index is the matrix row and column of the entity.
	Index int

	name  string
	style Style
	area  *Area
}

// NewSegment returns the segment for entity index, covering w.
func NewSegment(name string, index int, w Wedge, st Style) *Segment {
	return &Segment{
		Wedge: w,
		Index: index,
		name:  name,
		style: st,
		area:  w.Area(),
	}
}

// Name implements the [Drawable] interface.
func (s *Segment) Name() string { return s.name }

// Style implements the [Drawable] interface.
func (s *Segment) Style() Style { return s.style }

// Fill implements the [Drawable] interface.
func (s *Segment) Fill() color.Color { return s.style.Fill }

// Outline implements the [Drawable] interface.
func (s *Segment) Outline() color.Color { return s.style.Outline }

// Area returns the region covered by the segment.
func (s *Segment) Area() *Area { return s.area }

// Draw implements the [Drawable] interface.
func (s *Segment) Draw(c *raster.Canvas) {
	s.paint(c, s.style)
}

func (s *Segment) paint(c *raster.Canvas, st Style) {
	st.draw(c, s.area)
}

// Bounds implements the [Drawable] interface.
func (s *Segment) Bounds() rect.Rect {
	return s.area.Bounds()
}

// Contains implements the [Drawable] interface.
func (s *Segment) Contains(p vec.Vec2) bool {
	return s.area.Contains(p)
}

// SelectAt implements the [Drawable] interface.
func (s *Segment) SelectAt(m matrix.Matrix, p vec.Vec2) Drawable {
	if s.area.Transform(m).Contains(p) {
		return s
	}
	return nil
}
