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

// Package shape holds the geometric entities of a chord diagram:
// segments, ribbons, tick marks and the tracks grouping them.
//
// All entities are immutable once built. Angles are given as fractions of
// a full turn and increase clockwise on screen, see package polar.
package shape

import (
	"errors"
	"image/color"

	"github.com/npillmayer/schuko/tracing"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord/raster"
)

// ErrDegenerate is returned when the geometry of a shape cannot be
// constructed from the given angles and radii.
var ErrDegenerate = errors.New("degenerate geometry")

// Drawable is implemented by all entities of this package.
type Drawable interface {
	// Name identifies the entity in a layout.
	Name() string

	// Draw renders the entity onto c.
	Draw(c *raster.Canvas)

	// Style returns the fill, outline and pen used by Draw.
	Style() Style

	// Fill returns the fill colour, or nil if the entity is not filled.
	Fill() color.Color

	// Outline returns the outline colour, or nil if no outline is drawn.
	Outline() color.Color

	// Bounds returns the bounding box of the entity in user space.
	Bounds() rect.Rect

	// Contains reports whether p lies inside the entity.
	Contains(p vec.Vec2) bool

	// SelectAt maps the entity by m and returns the entity hit at p,
	// or nil if p misses it.
	SelectAt(m matrix.Matrix, p vec.Vec2) Drawable

	paint(c *raster.Canvas, st Style)
}

// Layer is a drawable which groups other drawables in a radial band.
type Layer interface {
	Drawable

	// Len returns the number of children.
	Len() int

	// Items returns the children in drawing order.
	Items() []Drawable

	// InBand reports whether p lies within the radial band of the layer.
	InBand(p vec.Vec2) bool
}

// Style describes how an entity is painted.
type Style struct {
	Fill    color.Color
	Outline color.Color
	Pen     raster.Pen
}

func (st Style) draw(c *raster.Canvas, a *Area) {
	contours := a.Contours()
	c.FillContours(contours, st.Fill)
	c.StrokeContours(contours, st.Pen, st.Outline)
}

func tracer() tracing.Trace {
	return tracing.Select("chord")
}
