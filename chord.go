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

// Package chord computes the layout of a circular chord diagram from a
// square matrix of weights.
//
// Every matrix index becomes a segment of the circle. Every ordered pair
// (i, j) for which both m[i][j] and m[j][i] are defined becomes a ribbon
// from segment i to segment j. The first half of each segment holds the
// outgoing ribbons, the second half holds the incoming ones, each half
// sorted by decreasing share of the row or column sum.
//
// The result of a build is a [Layout] with four tracks: the segments, the
// ribbons, the tick marks and an outer ring.
package chord

import (
	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/chord/adjacency"
)

// ErrInvalidInput is returned for matrices which are not square, are
// empty, or contain negative or infinite weights.
var ErrInvalidInput = adjacency.ErrInvalidInput

// Names of the tracks of a layout.
const (
	TrackSegments = "Track 1"
	TrackRibbons  = "Track 2"
	TrackTicks    = "Track 3"
	TrackRing     = "Track 4"
)

// TrackNames lists the track names in drawing order.
var TrackNames = []string{TrackSegments, TrackRibbons, TrackTicks, TrackRing}

func tracer() tracing.Trace {
	return tracing.Select("chord")
}
