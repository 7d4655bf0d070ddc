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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polyline is one flattened subpath, in user space.
// For closed subpaths the first point is not repeated at the end.
type Polyline struct {
	Points []vec.Vec2
	Closed bool
}

// Flatten converts p into polylines. Curves are subdivided until the
// deviation, measured in device space after applying ctm, is below
// flatness. Subpaths consisting of a single point are dropped.
func Flatten(p *path.Data, ctm matrix.Matrix, flatness float64) []Polyline {
	if p == nil {
		return nil
	}
	if flatness <= 0 {
		flatness = defaultFlatness
	}
	f := flattener{ctm: ctm, flatness: flatness}

	var res []Polyline
	var cur []vec.Vec2
	finish := func(closed bool) {
		if closed && len(cur) > 1 && cur[len(cur)-1] == cur[0] {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 1 {
			res = append(res, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}
	emit := func(_, to vec.Vec2) {
		cur = append(cur, to)
	}

	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[coordIdx]
			subpath = current
			cur = append(cur, current)
			coordIdx++

		case path.CmdLineTo:
			if cur == nil {
				cur = append(cur, current)
			}
			emit(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			if cur == nil {
				cur = append(cur, current)
			}
			f.quadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], emit)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			if cur == nil {
				cur = append(cur, current)
			}
			f.cubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], emit)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			finish(true)
			current = subpath
		}
	}
	finish(false)
	return res
}

type flattener struct {
	ctm      matrix.Matrix
	flatness float64
}

// linear applies only the 2×2 linear part of the CTM.
func (f *flattener) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.ctm[0]*v.X + f.ctm[2]*v.Y,
		Y: f.ctm[1]*v.X + f.ctm[3]*v.Y,
	}
}

// quadratic flattens the quadratic Bézier curve p0, p1, p2 and calls emit
// for each line segment.
func (f *flattener) quadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	errDev := f.linear(e).Length()
	if errDev > f.flatness {
		n = int(math.Ceil(math.Sqrt(errDev / f.flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// cubic flattens the cubic Bézier curve p0, p1, p2, p3 and calls emit
// for each line segment. The number of segments follows Wang's formula.
func (f *flattener) cubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	mDev := max(f.linear(d1).Length(), f.linear(d2).Length())
	n := 1
	if mDev > 0 {
		nFloat := math.Sqrt(3 * mDev / (4 * f.flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// Default values for rendering parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript. Joins with an interior
	// angle below about 11.5 degrees become bevels.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path doubling back on itself.
	// cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)
