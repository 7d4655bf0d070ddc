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

package raster

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const (
	opaque = 250
	empty  = 5
)

func newTestCanvas(w, h int) (*Canvas, *image.Alpha) {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	return NewCanvas(img), img
}

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func checkPixel(t *testing.T, img *image.Alpha, x, y int, full bool) {
	t.Helper()
	a := img.AlphaAt(x, y).A
	if full && a < opaque {
		t.Errorf("pixel (%d,%d): expected full coverage, got %d", x, y, a)
	} else if !full && a > empty {
		t.Errorf("pixel (%d,%d): expected no coverage, got %d", x, y, a)
	}
}

func TestFillSquare(t *testing.T) {
	c, img := newTestCanvas(10, 10)
	c.Fill(square(2, 2, 8, 8), color.White)

	checkPixel(t, img, 5, 5, true)
	checkPixel(t, img, 2, 2, true)
	checkPixel(t, img, 0, 0, false)
	checkPixel(t, img, 8, 8, false)
}

func TestFillHoleIgnoresOrientation(t *testing.T) {
	outer := []vec.Vec2{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}}
	sameDir := []vec.Vec2{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}
	oppositeDir := []vec.Vec2{{X: 5, Y: 5}, {X: 5, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 5}}

	for _, hole := range [][]vec.Vec2{sameDir, oppositeDir} {
		c, img := newTestCanvas(20, 20)
		c.FillContours([][]vec.Vec2{outer, hole}, color.White)

		checkPixel(t, img, 2, 2, true)
		checkPixel(t, img, 17, 10, true)
		checkPixel(t, img, 10, 10, false)
	}
}

func TestFillInvisible(t *testing.T) {
	c, img := newTestCanvas(10, 10)
	c.Fill(square(0, 0, 10, 10), nil)
	c.Fill(square(0, 0, 10, 10), color.Transparent)
	checkPixel(t, img, 5, 5, false)
}

func TestFillWithCTM(t *testing.T) {
	c, img := newTestCanvas(10, 10)
	c.CTM = matrix.Scale(2, 2)
	c.Fill(square(1, 1, 3, 3), color.White)

	checkPixel(t, img, 4, 4, true)
	checkPixel(t, img, 2, 2, true)
	checkPixel(t, img, 7, 7, false)
	checkPixel(t, img, 1, 1, false)
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		LineTo(vec.Vec2{X: 18, Y: 10})

	pen := DefaultPen
	pen.Width = 4

	c, img := newTestCanvas(20, 20)
	c.Stroke(line, pen, color.White)
	checkPixel(t, img, 10, 9, true)
	checkPixel(t, img, 10, 13, false)
	checkPixel(t, img, 1, 10, false)

	pen.Cap = graphics.LineCapSquare
	c, img = newTestCanvas(20, 20)
	c.Stroke(line, pen, color.White)
	checkPixel(t, img, 1, 10, true)
	checkPixel(t, img, 10, 13, false)
}

func TestStrokeClosedKeepsInterior(t *testing.T) {
	for _, join := range []graphics.LineJoinStyle{
		graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel,
	} {
		pen := DefaultPen
		pen.Width = 2
		pen.Join = join

		c, img := newTestCanvas(20, 20)
		c.Stroke(square(5, 5, 15, 15), pen, color.White)

		checkPixel(t, img, 10, 10, false)
		checkPixel(t, img, 4, 10, true)
		checkPixel(t, img, 15, 10, true)
		checkPixel(t, img, 10, 4, true)
		checkPixel(t, img, 1, 1, false)
	}
}

// Crossing strokes must not cancel each other out.
func TestStrokeCrossing(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 10}).
		MoveTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 20})

	pen := DefaultPen
	pen.Width = 4

	c, img := newTestCanvas(20, 20)
	c.Stroke(p, pen, color.White)
	checkPixel(t, img, 10, 10, true)
	checkPixel(t, img, 9, 9, true)
	checkPixel(t, img, 3, 3, false)
}

func TestFlatten(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 5}).
		Close().
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 50, Y: 100}, vec.Vec2{X: 100, Y: 0})

	lines := Flatten(p, matrix.Identity, 0.25)
	if len(lines) != 2 {
		t.Fatalf("expected 2 polylines, got %d", len(lines))
	}

	tri := lines[0]
	if !tri.Closed || len(tri.Points) != 3 {
		t.Errorf("triangle: closed=%t, %d points", tri.Closed, len(tri.Points))
	}

	curve := lines[1]
	if curve.Closed {
		t.Error("curve must be open")
	}
	if len(curve.Points) < 10 {
		t.Errorf("curve flattened into only %d points", len(curve.Points))
	}
	last := curve.Points[len(curve.Points)-1]
	if last != (vec.Vec2{X: 100, Y: 0}) {
		t.Errorf("curve ends at %v", last)
	}

	// the apex of the curve is at (50, 50)
	top := 0.0
	for _, pt := range curve.Points {
		top = max(top, pt.Y)
	}
	if top < 49.5 {
		t.Errorf("apex missed: highest point at y=%g", top)
	}
}

func TestFlattenScalesWithCTM(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		CubeTo(vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 10, Y: 0})

	small := Flatten(p, matrix.Identity, 0.25)
	large := Flatten(p, matrix.Scale(10, 10), 0.25)
	if len(large[0].Points) <= len(small[0].Points) {
		t.Errorf("expected finer flattening under magnification: %d <= %d",
			len(large[0].Points), len(small[0].Points))
	}
}

func TestSignedArea(t *testing.T) {
	ccw := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	if a := signedArea(ccw); a != 4 {
		t.Errorf("expected area 4, got %g", a)
	}
	cw := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}}
	if a := signedArea(cw); a != -4 {
		t.Errorf("expected area -4, got %g", a)
	}
	if !insidePolygon(vec.Vec2{X: 1, Y: 1}, cw) || insidePolygon(vec.Vec2{X: 3, Y: 1}, cw) {
		t.Error("insidePolygon gives wrong answer")
	}
}
