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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord/raster"
)

// Restyled wraps a drawable with a style which can be changed after the
// layout has been built. Changes mark the wrapper dirty, and drawing
// clears the mark. The wrapped entity is never modified.
type Restyled struct {
	Drawable

	style Style
	dirty bool
}

// Restyle wraps d, starting from the style of d.
func Restyle(d Drawable) *Restyled {
	return &Restyled{Drawable: d, style: d.Style()}
}

// SetFill changes the fill colour.
func (r *Restyled) SetFill(col color.Color) {
	r.style.Fill = col
	r.dirty = true
}

// SetOutline changes the outline colour.
func (r *Restyled) SetOutline(col color.Color) {
	r.style.Outline = col
	r.dirty = true
}

// SetPen changes the pen used for outlines.
func (r *Restyled) SetPen(pen raster.Pen) {
	r.style.Pen = pen
	r.dirty = true
}

// IsDirty reports whether the style changed since the last call to Draw.
func (r *Restyled) IsDirty() bool { return r.dirty }

// Style implements the [Drawable] interface.
func (r *Restyled) Style() Style { return r.style }

// Fill implements the [Drawable] interface.
func (r *Restyled) Fill() color.Color { return r.style.Fill }

// Outline implements the [Drawable] interface.
func (r *Restyled) Outline() color.Color { return r.style.Outline }

// Draw paints the wrapped entity with the current style.
func (r *Restyled) Draw(c *raster.Canvas) {
	r.paint(c, r.style)
	r.dirty = false
}

func (r *Restyled) paint(c *raster.Canvas, st Style) {
	r.Drawable.paint(c, st)
}

// SelectAt returns r if the wrapped entity is hit.
func (r *Restyled) SelectAt(m matrix.Matrix, p vec.Vec2) Drawable {
	if r.Drawable.SelectAt(m, p) != nil {
		return r
	}
	return nil
}
