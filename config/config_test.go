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

package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chord"
	"seehuhn.de/go/chord/adjacency"
)

const example = `
matrix = [
  [0.0, 3.0, nan],
  [1.0, 0.0, 2.0],
  [nan, 4.0, 0.0],
]

[layout]
width = 800
height = 600
allocator = "rows"
segment_margin = 0.1
color_by_source = true
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(example))
	require.NoError(t, err)

	m, err := f.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	assert.False(t, m.Defined(0, 2))
	assert.False(t, m.Defined(2, 0))
	assert.True(t, m.Defined(1, 2))
	assert.Equal(t, 4.0, m[2][1])

	p, err := f.Params()
	require.NoError(t, err)
	assert.Equal(t, 400.0, p.Center.X)
	assert.Equal(t, 300.0, p.Center.Y)
	assert.Equal(t, 240.0, p.OuterRadius)
	assert.Equal(t, 0.1, p.SegmentMargin)
	assert.Equal(t, chord.ProportionalToRowSum{}, p.Allocator)
	assert.True(t, p.ColorBySource)

	def := chord.DefaultParams()
	assert.Equal(t, def.Thickness, p.Thickness)
	assert.Equal(t, def.TargetMargin, p.TargetMargin)
	assert.Equal(t, def.RingWidth, p.RingWidth)
	assert.False(t, p.SelfLoops)

	l, err := chord.Build(m, p)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Segments.Len())
}

func TestExplicitGeometry(t *testing.T) {
	f, err := Decode(strings.NewReader(`
matrix = [[0.0, 1.0], [1.0, 0.0]]

[layout]
width = 800
height = 800
center = [100.0, 200.0]
outer_radius = 50.0
thickness = 10.0
`))
	require.NoError(t, err)

	p, err := f.Params()
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.Center.X)
	assert.Equal(t, 200.0, p.Center.Y)
	assert.Equal(t, 50.0, p.OuterRadius)
	assert.Equal(t, 10.0, p.Thickness)
}

func TestDefaults(t *testing.T) {
	f, err := Decode(strings.NewReader("matrix = [[0.0]]\n"))
	require.NoError(t, err)

	p, err := f.Params()
	require.NoError(t, err)
	assert.Equal(t, chord.DefaultParams(), p)
}

func TestErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("matrix = [[0.0]]\ncolour = \"red\"\n"))
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = Decode(strings.NewReader("matrix = [[0.0]]\n[layout]\nradius = 3.0\n"))
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = Decode(strings.NewReader("matrix = [[0.0]"))
	assert.Error(t, err)

	f, err := Decode(strings.NewReader("matrix = [[0.0]]\n[layout]\nallocator = \"random\"\n"))
	require.NoError(t, err)
	_, err = f.Params()
	assert.ErrorIs(t, err, chord.ErrUnknownAllocator)

	f, err = Decode(strings.NewReader("matrix = [[0.0]]\n[layout]\nwidth = 100.0\n"))
	require.NoError(t, err)
	_, err = f.Params()
	assert.ErrorIs(t, err, chord.ErrInvalidParams)

	f, err = Decode(strings.NewReader("matrix = [[0.0]]\n[layout]\nthickness = -1.0\n"))
	require.NoError(t, err)
	_, err = f.Params()
	assert.ErrorIs(t, err, chord.ErrInvalidParams)

	f, err = Decode(strings.NewReader("matrix = [[0.0]]\n[layout]\ncenter = [1.0]\n"))
	require.NoError(t, err)
	_, err = f.Params()
	assert.ErrorIs(t, err, chord.ErrInvalidParams)

	f, err = Decode(strings.NewReader("matrix = [[0.0, 1.0], [1.0]]\n"))
	require.NoError(t, err)
	_, err = f.Matrix()
	assert.ErrorIs(t, err, adjacency.ErrInvalidInput)

	f, err = Decode(strings.NewReader(""))
	require.NoError(t, err)
	_, err = f.Matrix()
	assert.ErrorIs(t, err, adjacency.ErrInvalidInput)
}

func TestEncode(t *testing.T) {
	f := &File{
		Layout: Layout{Width: 640, Height: 480, Allocator: "columns", SelfLoops: true},
		Rows:   [][]float64{{0, 2}, {math.NaN(), 1}},
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, f))
	assert.Contains(t, buf.String(), "nan")
	assert.NotContains(t, buf.String(), "center")

	g, err := Decode(&buf)
	require.NoError(t, err)
	m, err := g.Matrix()
	require.NoError(t, err)
	assert.False(t, m.Defined(1, 0))
	assert.Equal(t, 2.0, m[0][1])

	p, err := g.Params()
	require.NoError(t, err)
	assert.Equal(t, 320.0, p.Center.X)
	assert.Equal(t, 240.0, p.Center.Y)
	assert.Equal(t, chord.CanvasRadius(640, 480), p.OuterRadius)
	assert.Equal(t, chord.ProportionalToColumnSum{}, p.Allocator)
	assert.True(t, p.SelfLoops)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.toml")
	require.NoError(t, os.WriteFile(path, []byte(example), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Rows, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
