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

package chord

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chord/raster"
	"seehuhn.de/go/chord/shape"
)

// darkerFactor is applied to the RGB components of a fill colour to get
// the matching outline colour.
const darkerFactor = 0.7

// SegmentColor returns the fill colour of segment i out of n.
// Hues are spread evenly around the colour wheel.
func SegmentColor(i, n int) color.RGBA {
	c := colorful.Hsv(360*float64(i)/float64(n), 0.5, 0.9)
	return toRGBA(c)
}

// Darker returns col with its RGB components scaled down.
func Darker(col color.RGBA) color.RGBA {
	c, _ := colorful.MakeColor(col)
	c = colorful.Color{R: c.R * darkerFactor, G: c.G * darkerFactor, B: c.B * darkerFactor}
	res := toRGBA(c)
	res.A = col.A
	return res
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var outlinePen = raster.Pen{
	Width:      1,
	Cap:        graphics.LineCapRound,
	Join:       graphics.LineJoinRound,
	MiterLimit: 10,
}

var tickPen = raster.Pen{
	Width:      1,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: 10,
}

func segmentStyle(i, n int) shape.Style {
	fill := SegmentColor(i, n)
	return shape.Style{Fill: fill, Outline: Darker(fill), Pen: outlinePen}
}

func ticksStyle() shape.Style {
	return shape.Style{Fill: color.White, Outline: color.Black, Pen: tickPen}
}
