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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord/polar"
	"seehuhn.de/go/chord/raster"
)

// TickDivisions is the number of intervals the ticks divide a segment into.
const TickDivisions = 10

// Ticks are the radial marks drawn along one segment.
// A tick is placed at each of the TickDivisions+1 interval boundaries and
// reaches a third of the way from the inner to the outer radius.
// Hit-testing uses the whole wedge.
type Ticks struct {
	Wedge

	// Segment is the index of the segment the ticks belong to.
	Segment int

	name  string
	style Style
	lines *path.Data
	area  *Area
}

// NewTicks returns the tick marks for segment, spanning w.
func NewTicks(name string, segment int, w Wedge, st Style) *Ticks {
	length := (w.Outer - w.Inner) / 3
	lines := &path.Data{}
	for i := range TickDivisions + 1 {
		theta := w.Start + float64(i)*w.Span()/TickDivisions
		lines = lines.
			MoveTo(polar.OnCircle(w.Inner, theta, w.Center)).
			LineTo(polar.OnCircle(w.Inner+length, theta, w.Center))
	}
	return &Ticks{
		Wedge:   w,
		Segment: segment,
		name:    name,
		style:   st,
		lines:   lines,
		area:    w.Area(),
	}
}

// Strokes returns the tick lines, one subpath per tick.
func (t *Ticks) Strokes() *path.Data { return t.lines }

// Name implements the [Drawable] interface.
func (t *Ticks) Name() string { return t.name }

// Style implements the [Drawable] interface.
func (t *Ticks) Style() Style { return t.style }

// Fill implements the [Drawable] interface.
func (t *Ticks) Fill() color.Color { return t.style.Fill }

// Outline implements the [Drawable] interface.
func (t *Ticks) Outline() color.Color { return t.style.Outline }

// Draw implements the [Drawable] interface.
// Only the tick strokes are painted, using the outline colour.
func (t *Ticks) Draw(c *raster.Canvas) {
	t.paint(c, t.style)
}

func (t *Ticks) paint(c *raster.Canvas, st Style) {
	c.Stroke(t.lines, st.Pen, st.Outline)
}

// Bounds implements the [Drawable] interface.
func (t *Ticks) Bounds() rect.Rect {
	return t.area.Bounds()
}

// Contains implements the [Drawable] interface.
func (t *Ticks) Contains(p vec.Vec2) bool {
	return t.area.Contains(p)
}

// SelectAt implements the [Drawable] interface.
func (t *Ticks) SelectAt(m matrix.Matrix, p vec.Vec2) Drawable {
	if t.area.Transform(m).Contains(p) {
		return t
	}
	return nil
}
