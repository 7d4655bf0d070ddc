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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Pen describes how outlines are stroked. Width is given in user space.
type Pen struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

// DefaultPen is a one unit wide pen with butt caps and miter joins.
var DefaultPen = Pen{
	Width:      1,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: defaultMiterLimit,
}

// strokeSegment represents a line segment in user coordinates
type strokeSegment struct {
	A, B vec.Vec2 // endpoints in user space
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

type stroker struct {
	Pen
	f flattener

	segs   []strokeSegment
	stroke []vec.Vec2
}

// strokeOutlines returns the closed polygons which cover the stroked
// polylines. All polygons are built with the same orientation, so that
// they can be filled together with the nonzero rule.
func strokeOutlines(lines []Polyline, pen Pen, f flattener) [][]vec.Vec2 {
	if pen.MiterLimit <= 0 {
		pen.MiterLimit = defaultMiterLimit
	}
	s := &stroker{Pen: pen, f: f}

	var res [][]vec.Vec2
	for _, line := range lines {
		s.segs = s.segs[:0]
		pts := line.Points
		for i := 1; i < len(pts); i++ {
			s.addSegment(pts[i-1], pts[i])
		}
		if line.Closed && len(pts) > 1 {
			s.addSegment(pts[len(pts)-1], pts[0])
		}

		s.stroke = nil
		if len(s.segs) == 0 {
			if s.Cap == graphics.LineCapRound && len(pts) > 0 {
				s.addArc(pts[0], s.Width/2, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
			}
		} else {
			s.strokeSubpath(line.Closed)
		}
		if len(s.stroke) > 2 {
			res = append(res, s.stroke)
		}
	}
	return res
}

func (s *stroker) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	s.segs = append(s.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// strokeSubpath builds the outline polygon for the current segments:
// forward along the +N side, then backward along the -N side.
func (s *stroker) strokeSubpath(closed bool) {
	segs := s.segs
	d := s.Width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]

	if closed {
		sinThetaClose := cross(last.T, first.T)

		s.stroke = append(s.stroke, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			seg := &segs[i]
			next := first
			sinTheta := sinThetaClose
			if i < len(segs)-1 {
				next = &segs[i+1]
				sinTheta = cross(seg.T, next.T)
			}
			switch {
			case math.Abs(sinTheta) < collinearityThreshold:
				s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
			case sinTheta > 0:
				s.innerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
			default:
				s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)))
				s.addJoin(seg.B, seg.T, next.T, d, true)
				s.stroke = append(s.stroke, next.A.Add(next.N.Mul(d)))
			}
		}

		switch {
		case math.Abs(sinThetaClose) < collinearityThreshold:
			s.stroke = append(s.stroke, first.A.Sub(first.N.Mul(d)), last.B.Sub(last.N.Mul(d)))
		case sinThetaClose > 0:
			s.stroke = append(s.stroke, first.A.Sub(first.N.Mul(d)))
			s.addJoin(first.A, last.T, first.T, d, false)
			s.stroke = append(s.stroke, last.B.Sub(last.N.Mul(d)))
		default:
			s.innerCorner(first.A, last.T, first.T, last.N, first.N, d, false)
		}
		for i := len(segs) - 1; i > 0; i-- {
			seg := &segs[i]
			prev := &segs[i-1]
			sinTheta := cross(prev.T, seg.T)
			switch {
			case math.Abs(sinTheta) < collinearityThreshold:
				s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
			case sinTheta > 0:
				s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
				s.addJoin(seg.A, prev.T, seg.T, d, false)
				s.stroke = append(s.stroke, prev.B.Sub(prev.N.Mul(d)))
			default:
				s.innerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
			}
		}
		s.stroke = append(s.stroke, first.A.Sub(first.N.Mul(d)))
		return
	}

	s.addCap(first.A, first.T.Mul(-1), d)

	skipNextA := false
	for i := range segs {
		seg := &segs[i]
		if !skipNextA {
			s.stroke = append(s.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		skipNextA = false
		if i == len(segs)-1 {
			s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)))
			continue
		}
		next := &segs[i+1]
		sinTheta := cross(seg.T, next.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)))
		case sinTheta > 0:
			skipNextA = s.innerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)))
			s.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	s.addCap(last.B, last.T, d)

	skipNextB := false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skipNextB {
			s.stroke = append(s.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		skipNextB = false
		if i == 0 {
			s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
			continue
		}
		prev := &segs[i-1]
		sinTheta := cross(prev.T, seg.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
		case sinTheta > 0:
			s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
			s.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skipNextB = s.innerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// addCap adds a line cap at P. T points away from the line.
func (s *stroker) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch s.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		s.stroke = append(s.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		s.addArc(P, d, N, -math.Pi, true)
	}
}

// innerCorner adds the intersection of the two inner offset lines at a
// corner, or both offset points if they do not intersect usefully.
// The return value reports whether the intersection was used.
func (s *stroker) innerCorner(P, T1, T2, N1, N2 vec.Vec2, d float64, positive bool) bool {
	cosTheta := T1.Dot(T2)
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	if cosTheta <= 1-1e-9 && halfAngle >= 1e-9 {
		innerDir := N1.Add(N2)
		if !positive {
			innerDir = innerDir.Mul(-1)
		}
		if l := innerDir.Length(); l >= 1e-9 {
			s.stroke = append(s.stroke, P.Add(innerDir.Mul(d/(l*halfAngle))))
			return true
		}
	}
	if positive {
		s.stroke = append(s.stroke, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		s.stroke = append(s.stroke, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds the outer join geometry at P, where the tangent turns from
// T1 to T2.
func (s *stroker) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	if cosTheta < cuspCosineThreshold {
		s.addCap(P, T1, d)
		s.addCap(P, T2.Mul(-1), d)
		return
	}

	switch s.Join {
	case graphics.LineJoinMiter:
		// The miter length ratio is 1/sin(φ/2) = 1/cos(θ/2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= s.MiterLimit+miterEpsilon {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2)
			if !positive {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				s.stroke = append(s.stroke, P.Add(bisector.Mul(d/(l*sinHalf))))
			}
		}

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positive {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				s.addArc(P, d, N1, angle, false)
			} else {
				s.addArc(P, d, N1, -angle, false)
			}
		} else {
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				s.addArc(P, d, N2, -angle, false)
			} else {
				s.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc adds vertices along a circular arc around center, starting in
// direction startDir and sweeping by sweep radians.
func (s *stroker) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		s.f.linear(vec.Vec2{X: radius}).Length(),
		s.f.linear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius >= s.f.flatness {
		// The sagitta of a chord spanning θ is r(1-cos(θ/2)).
		angleStep := 2 * math.Acos(1-s.f.flatness/devRadius)
		if angleStep <= 0 || math.IsNaN(angleStep) {
			angleStep = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/angleStep)), 1)
	}

	dt := sweep / float64(n)
	startI := 1
	if includeStart {
		startI = 0
	}
	for i := startI; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		s.stroke = append(s.stroke, center.Add(dir.Mul(radius)))
	}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
