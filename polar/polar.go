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

// Package polar converts between polar and cartesian coordinates.
//
// Angles come in two flavours. Functions taking theta expect radians.
// Functions taking a fraction expect a portion of a full turn, so that
// the interval [0, 1) covers the whole circle once.
//
// All points are in a y-down device system, so that increasing angles
// run clockwise on screen.
package polar

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// X returns the x-coordinate of the point at the given radius and angle
// (in radians) around a centre with x-coordinate cx.
//
// Negative angles are folded to their magnitude before evaluation: the
// point for -theta is the point for theta, not its mirror image.
func X(radius, theta, cx float64) float64 {
	return cx + radius*math.Cos(math.Abs(theta))
}

// Y returns the y-coordinate of the point at the given radius and angle
// (in radians) around a centre with y-coordinate cy.
// Negative angles are folded as for [X].
func Y(radius, theta, cy float64) float64 {
	return cy + radius*math.Sin(math.Abs(theta))
}

// Point combines [X] and [Y].
func Point(radius, theta float64, center vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: X(radius, theta, center.X),
		Y: Y(radius, theta, center.Y),
	}
}

// CircleX returns the x-coordinate of the point at the given fraction of a
// full turn.
func CircleX(radius, fraction, cx float64) float64 {
	return cx + radius*math.Cos(Radians(fraction))
}

// CircleY returns the y-coordinate of the point at the given fraction of a
// full turn.
func CircleY(radius, fraction, cy float64) float64 {
	return cy + radius*math.Sin(Radians(fraction))
}

// OnCircle combines [CircleX] and [CircleY].
func OnCircle(radius, fraction float64, center vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: CircleX(radius, fraction, center.X),
		Y: CircleY(radius, fraction, center.Y),
	}
}

// Radians converts a fraction of a full turn to radians.
func Radians(fraction float64) float64 {
	return 2 * math.Pi * fraction
}

// Degrees converts a fraction of a full turn to degrees.
func Degrees(fraction float64) float64 {
	return Radians(fraction) * 180 / math.Pi
}

// FromPoint is the inverse of [Point]. The returned angle is in [0, 2π).
func FromPoint(p, center vec.Vec2) (radius, theta float64) {
	d := p.Sub(center)
	radius = d.Length()
	theta = math.Atan2(d.Y, d.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return radius, theta
}
