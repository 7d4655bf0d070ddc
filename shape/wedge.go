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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord/polar"
)

// Wedge is the part of an annulus between two angles.
// Start and End are fractions of a full turn, with Start <= End.
// If the wedge spans a full turn or more, it is the complete annulus.
type Wedge struct {
	Center       vec.Vec2
	Inner, Outer float64
	Start, End   float64
}

// Span returns the angular extent of the wedge as a fraction of a turn.
func (w Wedge) Span() float64 {
	return w.End - w.Start
}

// IsFull reports whether the wedge covers the complete annulus.
func (w Wedge) IsFull() bool {
	return w.Span() >= 1
}

// Path returns the outline of the wedge. For a full annulus the outline
// consists of the outer and the inner circle.
func (w Wedge) Path() *path.Data {
	if w.IsFull() {
		p := circle(&path.Data{}, w.Center, w.Outer, w.Start)
		if w.Inner > 0 {
			p = circle(p, w.Center, w.Inner, w.Start)
		}
		return p
	}

	p := (&path.Data{}).MoveTo(polar.OnCircle(w.Outer, w.Start, w.Center))
	p = arcTo(p, w.Center, w.Outer, w.Start, w.End)
	if w.Inner > 0 {
		p = p.LineTo(polar.OnCircle(w.Inner, w.End, w.Center))
		p = arcTo(p, w.Center, w.Inner, w.End, w.Start)
	} else {
		p = p.LineTo(w.Center)
	}
	return p.Close()
}

// Area returns the region covered by the wedge.
func (w Wedge) Area() *Area {
	if w.IsFull() && w.Inner > 0 {
		outer := NewArea(circle(&path.Data{}, w.Center, w.Outer, w.Start))
		inner := NewArea(circle(&path.Data{}, w.Center, w.Inner, w.Start))
		return outer.Subtract(inner)
	}
	return NewArea(w.Path())
}

// InBand reports whether the distance of p from the centre lies between
// the inner and outer radius.
func (w Wedge) InBand(p vec.Vec2) bool {
	r, _ := polar.FromPoint(p, w.Center)
	return r >= w.Inner && r <= w.Outer
}

// circle appends a closed circle, starting at the given fraction.
func circle(p *path.Data, center vec.Vec2, radius, from float64) *path.Data {
	p = p.MoveTo(polar.OnCircle(radius, from, center))
	return arcTo(p, center, radius, from, from+1).Close()
}

// arcTo appends a circular arc from the angle from to the angle to.
// The current point must be the start of the arc. The arc is split into
// cubic Bézier curves covering at most a quarter turn each.
func arcTo(p *path.Data, center vec.Vec2, radius, from, to float64) *path.Data {
	sweep := polar.Radians(to - from)
	n := math.Ceil(math.Abs(sweep) / (math.Pi / 2))
	if n < 1 || radius == 0 {
		return p
	}
	step := sweep / n
	arm := radius * 4 / 3 * math.Tan(step/4)

	theta0 := polar.Radians(from)
	p0 := pointAt(center, radius, theta0)
	for range int(n) {
		theta1 := theta0 + step
		p3 := pointAt(center, radius, theta1)
		p1 := p0.Add(tangent(theta0).Mul(arm))
		p2 := p3.Sub(tangent(theta1).Mul(arm))
		p = p.CubeTo(p1, p2, p3)
		theta0, p0 = theta1, p3
	}
	return p
}

func pointAt(center vec.Vec2, radius, theta float64) vec.Vec2 {
	sin, cos := math.Sincos(theta)
	return vec.Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin}
}

// tangent returns the unit tangent of a circle at angle theta, pointing
// in the direction of increasing angle.
func tangent(theta float64) vec.Vec2 {
	sin, cos := math.Sincos(theta)
	return vec.Vec2{X: -sin, Y: cos}
}
