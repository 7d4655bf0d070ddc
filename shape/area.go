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
	polyclip "github.com/akavel/polyclip-go"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord/raster"
)

// areaFlatness is the tolerance used when curves are turned into polygons
// for hit-testing and filling.
const areaFlatness = 0.05

// Area is a region of the plane, represented by a set of polygons.
// A point belongs to the area if it is enclosed by an odd number of
// contours.
type Area struct {
	poly polyclip.Polygon
}

// NewArea returns the region enclosed by p. Curves are flattened and all
// subpaths are closed. Several subpaths are joined by union.
func NewArea(p *path.Data) *Area {
	lines := raster.Flatten(p, matrix.Identity, areaFlatness)
	a := &Area{}
	for _, l := range lines {
		if len(l.Points) < 3 {
			continue
		}
		contour := make(polyclip.Contour, len(l.Points))
		for i, pt := range l.Points {
			contour[i] = polyclip.Point{X: pt.X, Y: pt.Y}
		}
		a = a.Union(&Area{poly: polyclip.Polygon{contour}})
	}
	return a
}

// IsEmpty reports whether the area has no contours.
func (a *Area) IsEmpty() bool {
	return a == nil || len(a.poly) == 0
}

// Union returns the region covered by a or b.
func (a *Area) Union(b *Area) *Area {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return &Area{}
	case a.IsEmpty():
		return &Area{poly: b.poly.Clone()}
	case b.IsEmpty():
		return &Area{poly: a.poly.Clone()}
	}
	return &Area{poly: a.poly.Construct(polyclip.UNION, b.poly)}
}

// Subtract returns the region covered by a but not by b.
func (a *Area) Subtract(b *Area) *Area {
	switch {
	case a.IsEmpty():
		return &Area{}
	case b.IsEmpty():
		return &Area{poly: a.poly.Clone()}
	}
	return &Area{poly: a.poly.Construct(polyclip.DIFFERENCE, b.poly)}
}

// Contains reports whether p lies inside the area.
func (a *Area) Contains(p vec.Vec2) bool {
	if a.IsEmpty() {
		return false
	}
	pt := polyclip.Point{X: p.X, Y: p.Y}
	inside := false
	for _, c := range a.poly {
		if c.Contains(pt) {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the bounding box of the area.
// The bounding box of an empty area is the zero rectangle.
func (a *Area) Bounds() rect.Rect {
	if a.IsEmpty() {
		return rect.Rect{}
	}
	bb := a.poly.BoundingBox()
	return rect.Rect{LLx: bb.Min.X, LLy: bb.Min.Y, URx: bb.Max.X, URy: bb.Max.Y}
}

// Transform returns the area mapped by m.
func (a *Area) Transform(m matrix.Matrix) *Area {
	if a.IsEmpty() {
		return &Area{}
	}
	res := make(polyclip.Polygon, len(a.poly))
	for i, c := range a.poly {
		out := make(polyclip.Contour, len(c))
		for j, pt := range c {
			out[j] = polyclip.Point{
				X: m[0]*pt.X + m[2]*pt.Y + m[4],
				Y: m[1]*pt.X + m[3]*pt.Y + m[5],
			}
		}
		res[i] = out
	}
	return &Area{poly: res}
}

// Contours returns the polygons making up the area.
func (a *Area) Contours() [][]vec.Vec2 {
	if a.IsEmpty() {
		return nil
	}
	res := make([][]vec.Vec2, len(a.poly))
	for i, c := range a.poly {
		pts := make([]vec.Vec2, len(c))
		for j, pt := range c {
			pts[j] = vec.Vec2{X: pt.X, Y: pt.Y}
		}
		res[i] = pts
	}
	return res
}

func unionRect(a, b rect.Rect) rect.Rect {
	if a == (rect.Rect{}) {
		return b
	}
	if b == (rect.Rect{}) {
		return a
	}
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
