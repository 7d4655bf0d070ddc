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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ErrInvalidParams is returned for layout parameters which cannot be used.
var ErrInvalidParams = errors.New("invalid layout parameters")

// Params holds the layout parameters.
// Angles are fractions of a full turn, lengths are in user space units.
type Params struct {
	// StartAngle is where the first segment begins.
	StartAngle float64

	// OuterRadius is the outer radius of the segment track.
	OuterRadius float64

	Center vec.Vec2

	// Thickness is the radial size of the segments.
	Thickness float64

	// SourceMargin and TargetMargin are the gaps between the inner edge of
	// the segments and the source and target ends of the ribbons.
	SourceMargin float64
	TargetMargin float64

	// SegmentMargin is the angular gap between segments, summed over the
	// whole circle.
	SegmentMargin float64

	// Allocator sizes the segments. If nil, [Equal] is used.
	Allocator Allocator

	// ConnectorWidth is the radial size of the band joining a ribbon to its
	// source segment.
	ConnectorWidth float64

	// TickBand is the radial size of the tick track.
	TickBand float64

	// RingGap and RingWidth place the outer decorative ring.
	RingGap   float64
	RingWidth float64

	// ColorBySource makes ribbons take the colour of their source segment
	// instead of their target segment.
	ColorBySource bool

	// SelfLoops enables ribbons from a segment to itself.
	SelfLoops bool
}

// DefaultParams returns the default layout parameters, for a diagram
// centred in an 800×800 canvas.
func DefaultParams() Params {
	return Params{
		StartAngle:     0,
		OuterRadius:    300,
		Center:         vec.Vec2{X: 400, Y: 400},
		Thickness:      45,
		SourceMargin:   0,
		TargetMargin:   5,
		SegmentMargin:  0.05,
		Allocator:      Equal{},
		ConnectorWidth: 10,
		TickBand:       20,
		RingGap:        20,
		RingWidth:      40,
	}
}

// CanvasRadius returns the outer radius used for a canvas of the given
// size: 40% of the smaller side.
func CanvasRadius(width, height float64) float64 {
	s := min(width, height)
	return s/2 - s/10
}

// Validate checks that all parameters are finite and within range.
func (p *Params) Validate() error {
	fields := []struct {
		name   string
		val    float64
		signed bool
	}{
		{"StartAngle", p.StartAngle, true},
		{"Center.X", p.Center.X, true},
		{"Center.Y", p.Center.Y, true},
		{"OuterRadius", p.OuterRadius, false},
		{"Thickness", p.Thickness, false},
		{"SourceMargin", p.SourceMargin, false},
		{"TargetMargin", p.TargetMargin, false},
		{"SegmentMargin", p.SegmentMargin, false},
		{"ConnectorWidth", p.ConnectorWidth, false},
		{"TickBand", p.TickBand, false},
		{"RingGap", p.RingGap, false},
		{"RingWidth", p.RingWidth, false},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("Validate: %w: %s is %g", ErrInvalidParams, f.name, f.val)
		}
		if !f.signed && f.val < 0 {
			return fmt.Errorf("Validate: %w: %s is negative", ErrInvalidParams, f.name)
		}
	}
	if p.OuterRadius <= 0 {
		return fmt.Errorf("Validate: %w: OuterRadius must be positive", ErrInvalidParams)
	}
	if p.Thickness > p.OuterRadius {
		return fmt.Errorf("Validate: %w: Thickness %g exceeds OuterRadius %g",
			ErrInvalidParams, p.Thickness, p.OuterRadius)
	}
	if p.SegmentMargin >= 1 {
		return fmt.Errorf("Validate: %w: SegmentMargin must be less than a full turn",
			ErrInvalidParams)
	}
	return nil
}

// allocator returns the configured allocator, defaulting to [Equal].
func (p *Params) allocator() Allocator {
	if p.Allocator == nil {
		return Equal{}
	}
	return p.Allocator
}

// SourceRadius returns the radius of the source ends of the ribbons.
func (p *Params) SourceRadius() float64 {
	return p.OuterRadius - p.Thickness - p.SourceMargin
}

// TargetRadius returns the radius of the target ends of the ribbons.
func (p *Params) TargetRadius() float64 {
	return p.OuterRadius - p.Thickness - p.TargetMargin
}
