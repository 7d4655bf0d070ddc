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

// Package config reads chord layout descriptions from TOML files.
//
// A file has an optional [layout] table and a matrix, given as an array
// of rows. Absent relationships are written as nan:
//
//	matrix = [
//	  [0.0, 3.0, nan],
//	  [1.0, 0.0, 2.0],
//	  [nan, 4.0, 0.0],
//	]
//
//	[layout]
//	width = 800
//	height = 800
//	allocator = "rows"
//
// Keys missing from the layout table keep their values from
// [chord.DefaultParams]. If the canvas width and height are given, they
// determine the centre and the outer radius unless these are set
// explicitly.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord"
	"seehuhn.de/go/chord/adjacency"
)

// ErrUnknownKey is returned for keys which are not part of the format.
var ErrUnknownKey = errors.New("unknown configuration key")

// File is the contents of a layout file.
type File struct {
	Layout Layout `toml:"layout"`

	// Rows holds the matrix, one row per entity.
	Rows [][]float64 `toml:"matrix"`

	meta toml.MetaData
}

// Layout holds the [layout] table.
// Zero values are left out by [Encode].
type Layout struct {
	Width  float64 `toml:"width,omitempty"`
	Height float64 `toml:"height,omitempty"`

	StartAngle     float64   `toml:"start_angle,omitempty"`
	OuterRadius    float64   `toml:"outer_radius,omitempty"`
	Center         []float64 `toml:"center,omitempty"`
	Thickness      float64   `toml:"thickness,omitempty"`
	SourceMargin   float64   `toml:"source_margin,omitempty"`
	TargetMargin   float64   `toml:"target_margin,omitempty"`
	SegmentMargin  float64   `toml:"segment_margin,omitempty"`
	Allocator      string    `toml:"allocator,omitempty"`
	ConnectorWidth float64   `toml:"connector_width,omitempty"`
	TickBand       float64   `toml:"tick_band,omitempty"`
	RingGap        float64   `toml:"ring_gap,omitempty"`
	RingWidth      float64   `toml:"ring_width,omitempty"`
	ColorBySource  bool      `toml:"color_by_source,omitempty"`
	SelfLoops      bool      `toml:"self_loops,omitempty"`
}

// Load reads the layout file at path.
func Load(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode reads a layout file from r.
func Decode(r io.Reader) (*File, error) {
	f := &File{}
	meta, err := toml.NewDecoder(r).Decode(f)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	f.meta = meta
	return f, nil
}

// Encode writes f to w in the format read by [Decode].
// Absent matrix entries are written as nan.
func Encode(w io.Writer, f *File) error {
	return toml.NewEncoder(w).Encode(f)
}

// Matrix returns the validated adjacency matrix.
func (f *File) Matrix() (adjacency.Matrix, error) {
	m := adjacency.Matrix(f.Rows)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Params returns the layout parameters described by the file.
func (f *File) Params() (chord.Params, error) {
	p := chord.DefaultParams()
	l := &f.Layout
	set := func(key string) bool {
		return f.meta.IsDefined("layout", key)
	}

	if set("width") && set("height") {
		p.Center = vec.Vec2{X: l.Width / 2, Y: l.Height / 2}
		p.OuterRadius = chord.CanvasRadius(l.Width, l.Height)
	} else if set("width") || set("height") {
		return p, fmt.Errorf("%w: width and height must be given together",
			chord.ErrInvalidParams)
	}

	floats := []struct {
		key string
		dst *float64
		val float64
	}{
		{"start_angle", &p.StartAngle, l.StartAngle},
		{"outer_radius", &p.OuterRadius, l.OuterRadius},
		{"thickness", &p.Thickness, l.Thickness},
		{"source_margin", &p.SourceMargin, l.SourceMargin},
		{"target_margin", &p.TargetMargin, l.TargetMargin},
		{"segment_margin", &p.SegmentMargin, l.SegmentMargin},
		{"connector_width", &p.ConnectorWidth, l.ConnectorWidth},
		{"tick_band", &p.TickBand, l.TickBand},
		{"ring_gap", &p.RingGap, l.RingGap},
		{"ring_width", &p.RingWidth, l.RingWidth},
	}
	for _, fl := range floats {
		if set(fl.key) {
			*fl.dst = fl.val
		}
	}
	if set("center") {
		if len(l.Center) != 2 {
			return p, fmt.Errorf("%w: center needs two coordinates, got %d",
				chord.ErrInvalidParams, len(l.Center))
		}
		p.Center = vec.Vec2{X: l.Center[0], Y: l.Center[1]}
	}
	if set("color_by_source") {
		p.ColorBySource = l.ColorBySource
	}
	if set("self_loops") {
		p.SelfLoops = l.SelfLoops
	}

	a, err := chord.ParseAllocator(l.Allocator)
	if err != nil {
		return p, err
	}
	p.Allocator = a

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
