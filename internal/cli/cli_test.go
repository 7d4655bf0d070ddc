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

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chord"
	"seehuhn.de/go/chord/config"
	"seehuhn.de/go/chord/polar"
)

const diagram = `
matrix = [
  [0.0, 10.0, 0.0],
  [5.0, 0.0, 5.0],
  [0.0, 0.0, 0.0],
]

[layout]
width = 800
height = 800
`

func writeDiagram(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diagram.toml")
	require.NoError(t, os.WriteFile(path, []byte(diagram), 0o644))
	return path
}

func run(t *testing.T, args ...string) (stdout, logs string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := New(&errOut, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
	c.SetLogLevel(LogInfo)
}

func TestLayoutCommand(t *testing.T) {
	path := writeDiagram(t)

	f, err := config.Load(path)
	require.NoError(t, err)
	m, err := f.Matrix()
	require.NoError(t, err)
	p, err := f.Params()
	require.NoError(t, err)
	l, err := chord.Build(m, p)
	require.NoError(t, err)

	out, logs, err := run(t, "layout", path)
	require.NoError(t, err)
	assert.Contains(t, out, l.ID.String())
	for _, name := range []string{"segment0", "segment1", "segment2", "ribbon 0-1", "ribbon 1-0", "ribbon 1-2"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Dropped")
	assert.Contains(t, out, "2-1")
	assert.Contains(t, logs, "ribbon dropped")
}

func TestLayoutCommandErrors(t *testing.T) {
	_, _, err := run(t, "layout")
	assert.Error(t, err)

	_, _, err = run(t, "layout", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("matrix = [[0.0, -1.0], [1.0, 0.0]]\n"), 0o644))
	_, _, err = run(t, "layout", path)
	assert.ErrorIs(t, err, chord.ErrInvalidInput)
}

func TestPickCommand(t *testing.T) {
	path := writeDiagram(t)
	center := vec.Vec2{X: 400, Y: 400}

	// segment 1 covers the angles around 180°
	p := polar.OnCircle(297, 0.5, center)
	out, _, err := run(t, "pick", path, "--x", ftoa(p.X), "--y", ftoa(p.Y))
	require.NoError(t, err)
	assert.Contains(t, out, "segment1")
	assert.Contains(t, out, chord.TrackSegments)

	// halved, the segments move inwards
	q := center.Add(p.Sub(center).Mul(0.5))
	out, _, err = run(t, "pick", path, "--x", ftoa(q.X), "--y", ftoa(q.Y), "--scale", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "segment1")

	// turned back by a quarter, segment 1 takes the place of segment 0
	r := polar.OnCircle(297, 0.25, center)
	out, _, err = run(t, "pick", path, "--x", ftoa(r.X), "--y", ftoa(r.Y), "--rotate=-90")
	require.NoError(t, err)
	assert.Contains(t, out, "segment1")

	out, _, err = run(t, "pick", path, "--x", "5", "--y", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing")

	_, _, err = run(t, "pick", path, "--x", "5", "--y", "5", "--scale", "0")
	assert.Error(t, err)

	_, _, err = run(t, "pick", path, "--x", "5")
	assert.Error(t, err)
}

func TestViewMatrix(t *testing.T) {
	center := vec.Vec2{X: 100, Y: 50}
	m := viewMatrix(2, 90, center)
	apply := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
	}

	got := apply(center)
	assert.InDelta(t, center.X, got.X, 1e-9)
	assert.InDelta(t, center.Y, got.Y, 1e-9)

	// clockwise on screen: +x turns into +y
	got = apply(vec.Vec2{X: 110, Y: 50})
	assert.InDelta(t, 100, got.X, 1e-9)
	assert.InDelta(t, 70, got.Y, 1e-9)
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	newProgress(logger).done("finished")
	assert.Contains(t, buf.String(), "finished")
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
