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

// Package raster draws filled and stroked outlines onto Go images.
//
// Outlines are given in user space and mapped to device pixels by the
// canvas transformation matrix. Curves are flattened with a tolerance
// measured in device pixels. Coverage is accumulated with an
// anti-aliasing scan converter.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Canvas renders outlines onto a destination image.
type Canvas struct {
	Dst draw.Image

	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	z *vector.Rasterizer
}

// NewCanvas returns a canvas which draws onto dst, using the identity
// transformation.
func NewCanvas(dst draw.Image) *Canvas {
	b := dst.Bounds()
	return &Canvas{
		Dst:      dst,
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
		z:        vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Clear sets every pixel of the destination to col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Dst, c.Dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Fill paints the interior of p using the even-odd rule.
// Open subpaths are closed implicitly.
func (c *Canvas) Fill(p *path.Data, col color.Color) {
	lines := Flatten(p, c.CTM, c.Flatness)
	contours := make([][]vec.Vec2, len(lines))
	for i, l := range lines {
		contours[i] = l.Points
	}
	c.FillContours(contours, col)
}

// FillContours paints the region enclosed by the given polygons using the
// even-odd rule. The orientation of the polygons is irrelevant.
func (c *Canvas) FillContours(contours [][]vec.Vec2, col color.Color) {
	if isInvisible(col) || len(contours) == 0 {
		return
	}
	c.begin()
	for i, contour := range contours {
		if len(contour) < 3 {
			continue
		}
		depth := 0
		for j, other := range contours {
			if j != i && len(other) > 2 && insidePolygon(contour[0], other) {
				depth++
			}
		}
		positive := signedArea(contour) >= 0
		wantPositive := depth%2 == 0
		c.addPolygon(contour, positive != wantPositive)
	}
	c.paint(col)
}

// Stroke paints the outline of p using the given pen.
func (c *Canvas) Stroke(p *path.Data, pen Pen, col color.Color) {
	c.StrokePolylines(Flatten(p, c.CTM, c.Flatness), pen, col)
}

// StrokeContours paints the boundaries of the given closed polygons.
func (c *Canvas) StrokeContours(contours [][]vec.Vec2, pen Pen, col color.Color) {
	lines := make([]Polyline, 0, len(contours))
	for _, contour := range contours {
		lines = append(lines, Polyline{Points: contour, Closed: true})
	}
	c.StrokePolylines(lines, pen, col)
}

// StrokePolylines paints the given polylines using the given pen.
func (c *Canvas) StrokePolylines(lines []Polyline, pen Pen, col color.Color) {
	if isInvisible(col) || pen.Width <= 0 {
		return
	}
	polys := strokeOutlines(lines, pen, c.flattener())
	if len(polys) == 0 {
		return
	}
	c.begin()
	for _, poly := range polys {
		c.addPolygon(poly, false)
	}
	c.paint(col)
}

func (c *Canvas) flattener() flattener {
	flatness := c.Flatness
	if flatness <= 0 {
		flatness = defaultFlatness
	}
	return flattener{ctm: c.CTM, flatness: flatness}
}

func (c *Canvas) begin() {
	b := c.Dst.Bounds()
	if c.z == nil {
		c.z = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		c.z.Reset(b.Dx(), b.Dy())
	}
}

func (c *Canvas) addPolygon(poly []vec.Vec2, reverse bool) {
	n := len(poly)
	at := func(k int) vec.Vec2 {
		if reverse {
			return poly[n-1-k]
		}
		return poly[k]
	}
	p := c.device(at(0))
	c.z.MoveTo(float32(p.X), float32(p.Y))
	for k := 1; k < n; k++ {
		p = c.device(at(k))
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
}

func (c *Canvas) paint(col color.Color) {
	b := c.Dst.Bounds()
	c.z.Draw(c.Dst, b, image.NewUniform(col), image.Point{})
}

// device maps a user space point to rasterizer coordinates.
func (c *Canvas) device(v vec.Vec2) vec.Vec2 {
	m := c.CTM
	b := c.Dst.Bounds()
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4] - float64(b.Min.X),
		Y: m[1]*v.X + m[3]*v.Y + m[5] - float64(b.Min.Y),
	}
}

func isInvisible(col color.Color) bool {
	if col == nil {
		return true
	}
	_, _, _, a := col.RGBA()
	return a == 0
}

// signedArea returns the shoelace area of poly. The sign gives the
// orientation.
func signedArea(poly []vec.Vec2) float64 {
	area := 0.0
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// insidePolygon reports whether p lies inside poly, using the even-odd
// ray crossing test.
func insidePolygon(p vec.Vec2, poly []vec.Vec2) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
