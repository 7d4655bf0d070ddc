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
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord/polar"
	"seehuhn.de/go/chord/raster"
)

// Anchor is one end of a ribbon: an angular sub-range of a segment at a
// given radius.
type Anchor struct {
	Segment    int
	Start, End float64
	Radius     float64
}

// Width returns the angular width of the anchor as a fraction of a turn.
func (a Anchor) Width() float64 {
	return a.End - a.Start
}

func (a Anchor) finite() bool {
	for _, x := range []float64{a.Start, a.End, a.Radius} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Ribbon is the band connecting a source and a target anchor.
//
// The body of the ribbon is bounded by two arcs, one at each anchor, which
// are joined by quadratic curves through the centre of the circle.
// If a connector width is given, the body's source arc is moved inwards by
// this amount and the gap is filled by a connector wedge.
type Ribbon struct {
	Source, Target Anchor
	Center         vec.Vec2

	name      string
	style     Style
	body      *Area
	connector *Segment
}

// NewRibbon constructs the ribbon from src to tgt.
// The body is painted with style body, the connector with style conn.
// An error wrapping [ErrDegenerate] is returned if the anchors do not
// describe a valid band.
func NewRibbon(name string, center vec.Vec2, src, tgt Anchor, connectorWidth float64, body, conn Style) (*Ribbon, error) {
	if !src.finite() || !tgt.finite() || math.IsNaN(connectorWidth) {
		return nil, degenerate(name, "non-finite anchor")
	}
	if src.Width() <= 0 && tgt.Width() <= 0 {
		return nil, degenerate(name, "zero width")
	}
	if src.Width() < 0 || tgt.Width() < 0 {
		return nil, degenerate(name, "reversed anchor")
	}
	bodyRadius := src.Radius - max(connectorWidth, 0)
	if bodyRadius < 0 || tgt.Radius < 0 {
		return nil, degenerate(name, "negative radius")
	}

	r := &Ribbon{
		Source: src,
		Target: tgt,
		Center: center,
		name:   name,
		style:  body,
	}

	inner := src
	inner.Radius = bodyRadius
	r.body = NewArea(ribbonPath(center, inner, tgt))
	if r.body.IsEmpty() {
		return nil, degenerate(name, "empty outline")
	}

	if connectorWidth > 0 && src.Width() > 0 {
		w := Wedge{
			Center: center,
			Inner:  bodyRadius,
			Outer:  src.Radius,
			Start:  src.Start,
			End:    src.End,
		}
		r.connector = NewSegment(name+" connector", src.Segment, w, conn)
	}
	return r, nil
}

func degenerate(name, reason string) error {
	tracer().Debugf("ribbon %q: %s", name, reason)
	return fmt.Errorf("%s: %w: %s", name, ErrDegenerate, reason)
}

// ribbonPath returns the outline of the band between the two anchors:
// from the end of the source arc through the centre to the start of the
// target arc, along the target arc, back through the centre and along the
// source arc.
func ribbonPath(center vec.Vec2, src, tgt Anchor) *path.Data {
	p := (&path.Data{}).MoveTo(polar.OnCircle(src.Radius, src.End, center))
	p = p.QuadTo(center, polar.OnCircle(tgt.Radius, tgt.Start, center))
	p = arcTo(p, center, tgt.Radius, tgt.Start, tgt.End)
	p = p.QuadTo(center, polar.OnCircle(src.Radius, src.Start, center))
	p = arcTo(p, center, src.Radius, src.Start, src.End)
	return p.Close()
}

// Name implements the [Drawable] interface.
func (r *Ribbon) Name() string { return r.name }

// Style implements the [Drawable] interface.
func (r *Ribbon) Style() Style { return r.style }

// Fill implements the [Drawable] interface.
func (r *Ribbon) Fill() color.Color { return r.style.Fill }

// Outline implements the [Drawable] interface.
func (r *Ribbon) Outline() color.Color { return r.style.Outline }

// Body returns the region covered by the ribbon body.
func (r *Ribbon) Body() *Area { return r.body }

// Connector returns the connector wedge, or nil if the ribbon has none.
func (r *Ribbon) Connector() *Segment { return r.connector }

// Draw implements the [Drawable] interface.
func (r *Ribbon) Draw(c *raster.Canvas) {
	r.paint(c, r.style)
}

func (r *Ribbon) paint(c *raster.Canvas, st Style) {
	st.draw(c, r.body)
	if r.connector != nil {
		r.connector.Draw(c)
	}
}

// Bounds implements the [Drawable] interface.
// The bounds cover the body and the connector.
func (r *Ribbon) Bounds() rect.Rect {
	b := r.body.Bounds()
	if r.connector != nil {
		b = unionRect(b, r.connector.Bounds())
	}
	return b
}

// Contains implements the [Drawable] interface.
func (r *Ribbon) Contains(p vec.Vec2) bool {
	if r.body.Contains(p) {
		return true
	}
	return r.connector != nil && r.connector.Contains(p)
}

// SelectAt implements the [Drawable] interface.
func (r *Ribbon) SelectAt(m matrix.Matrix, p vec.Vec2) Drawable {
	if r.body.Transform(m).Contains(p) {
		return r
	}
	if r.connector != nil && r.connector.SelectAt(m, p) != nil {
		return r
	}
	return nil
}
