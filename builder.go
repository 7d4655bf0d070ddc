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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"

	"seehuhn.de/go/chord/adjacency"
	"seehuhn.de/go/chord/shape"
)

// Builder computes layouts for a fixed matrix.
type Builder struct {
	m adjacency.Matrix
}

// NewBuilder validates m and returns a builder for it.
// The builder keeps a copy of m, later changes by the caller have no
// effect.
func NewBuilder(m adjacency.Matrix) (*Builder, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("NewBuilder: %w", err)
	}
	return &Builder{m: m.Clone()}, nil
}

// Build computes the layout of m for the given parameters.
func Build(m adjacency.Matrix, p Params) (*Layout, error) {
	b, err := NewBuilder(m)
	if err != nil {
		return nil, err
	}
	return b.Build(p)
}

// Matrix returns the matrix of the builder.
// The returned value must not be modified.
func (b *Builder) Matrix() adjacency.Matrix {
	return b.m
}

// Build computes the layout for the given parameters.
//
// Ribbons which cannot be constructed are left out and listed in
// [Layout.Dropped]. An error is only returned for invalid parameters.
func (b *Builder) Build(p Params) (*Layout, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	p.Allocator = p.allocator()
	p.StartAngle -= math.Floor(p.StartAngle)

	m := b.m
	n := m.Size()
	l := &Layout{
		ID:     layoutID(m, &p),
		Params: p,
		Spans:  allocate(p.Allocator, m),
	}

	R := p.OuterRadius
	segments := b.placeSegments(l, R-p.Thickness, R)
	ring := make([]*shape.Segment, n)
	ticks := make([]*shape.Ticks, n)
	for i, seg := range segments {
		w := seg.Wedge
		w.Inner, w.Outer = R+p.RingGap, R+p.RingGap+p.RingWidth
		ring[i] = shape.NewSegment(seg.Name()+" ring", i, w, seg.Style())

		w.Inner, w.Outer = R, R+p.TickBand
		ticks[i] = shape.NewTicks(seg.Name()+" ticks", i, w, ticksStyle())
	}

	l.SourceOffsets = make([]OffsetTable, n)
	l.TargetOffsets = make([]OffsetTable, n)
	for i, seg := range segments {
		span := seg.Span()
		l.SourceOffsets[i] = sourceOffsets(m, i, span, p.SelfLoops)
		l.TargetOffsets[i] = targetOffsets(m, i, span, p.SelfLoops)
		tracer().Debugf("segment %d: source ranks %v, target ranks %v",
			i, l.SourceOffsets[i].Rank, l.TargetOffsets[i].Rank)
	}

	ribbons := b.buildRibbons(l, segments)

	center := p.Center
	srcR, tgtR := p.SourceRadius(), p.TargetRadius()
	l.Segments = shape.NewTrack(TrackSegments, center, R-p.Thickness, R, segments)
	l.Ribbons = shape.NewTrack(TrackRibbons, center, 0, max(srcR, tgtR), ribbons)
	l.Ticks = shape.NewTrack(TrackTicks, center, R, R+p.TickBand, ticks)
	l.Ring = shape.NewTrack(TrackRing, center, R+p.RingGap, R+p.RingGap+p.RingWidth, ring)

	tracer().Infof("chord layout %s: %d segments, %d ribbons, %d dropped",
		l.ID, n, len(ribbons), len(l.Dropped))
	return l, nil
}

// placeSegments lays out the segments consecutively around the circle,
// starting at the start angle. Each segment is shortened at both ends by
// its share of the segment margin.
func (b *Builder) placeSegments(l *Layout, inner, outer float64) []*shape.Segment {
	p := &l.Params
	n := len(l.Spans)
	incr := p.SegmentMargin / float64(n)

	segments := make([]*shape.Segment, n)
	local := p.StartAngle
	for i, span := range l.Spans {
		start, end := local+incr, local+span-incr
		if end < start {
			start = local + span/2
			end = start
		}
		w := shape.Wedge{
			Center: p.Center,
			Inner:  inner,
			Outer:  outer,
			Start:  start,
			End:    end,
		}
		segments[i] = shape.NewSegment(fmt.Sprintf("segment%d", i), i, w, segmentStyle(i, n))
		tracer().Debugf("segment %d: span %.4f, angles [%.4f, %.4f]", i, span, start, end)
		local += span
	}
	return segments
}

// buildRibbons constructs the ribbons for all pairs with weights defined
// in both directions. Failures are recorded in l.Dropped.
func (b *Builder) buildRibbons(l *Layout, segments []*shape.Segment) []*shape.Ribbon {
	p := &l.Params
	m := b.m
	var ribbons []*shape.Ribbon
	for i := range segments {
		for j := range segments {
			if i == j && !p.SelfLoops {
				continue
			}
			if !m.Defined(i, j) || !m.Defined(j, i) {
				continue
			}
			r, err := b.buildRibbon(l, segments, i, j)
			if err != nil {
				tracer().P("pair", Pair{i, j}).Errorf("dropping ribbon: %v", err)
				l.Dropped = append(l.Dropped, Drop{Pair: Pair{i, j}, Err: err})
				continue
			}
			ribbons = append(ribbons, r)
		}
	}
	return ribbons
}

func (b *Builder) buildRibbon(l *Layout, segments []*shape.Segment, i, j int) (r *shape.Ribbon, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
			err = fmt.Errorf("ribbon %d-%d: %w: %v", i, j, shape.ErrDegenerate, rec)
		}
	}()

	p := &l.Params
	src, tgt := segments[i], segments[j]

	s0, s1 := l.SourceOffsets[i].Range(j)
	t0, t1 := l.TargetOffsets[j].Range(i)
	srcAnchor := shape.Anchor{
		Segment: i,
		Start:   src.Start + s0,
		End:     src.Start + s1,
		Radius:  p.SourceRadius(),
	}
	tgtAnchor := shape.Anchor{
		Segment: j,
		Start:   tgt.Start + t0,
		End:     tgt.Start + t1,
		Radius:  p.TargetRadius(),
	}

	colorSeg := tgt
	if p.ColorBySource {
		colorSeg = src
	}
	name := fmt.Sprintf("ribbon %d-%d", i, j)
	return shape.NewRibbon(name, p.Center, srcAnchor, tgtAnchor,
		p.ConnectorWidth, colorSeg.Style(), tgt.Style())
}

// layoutID derives a name-based UUID from the matrix and the parameters.
func layoutID(m adjacency.Matrix, p *Params) uuid.UUID {
	var buf []byte
	putFloat := func(x float64) {
		if math.IsNaN(x) {
			x = math.NaN()
		}
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(x))
	}
	putBool := func(b bool) {
		if b {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}

	buf = binary.BigEndian.AppendUint32(buf, uint32(m.Size()))
	for _, row := range m {
		for _, v := range row {
			putFloat(v)
		}
	}
	for _, x := range []float64{
		p.StartAngle, p.OuterRadius, p.Center.X, p.Center.Y, p.Thickness,
		p.SourceMargin, p.TargetMargin, p.SegmentMargin, p.ConnectorWidth,
		p.TickBand, p.RingGap, p.RingWidth,
	} {
		putFloat(x)
	}
	putBool(p.ColorBySource)
	putBool(p.SelfLoops)
	buf = append(buf, p.Allocator.String()...)

	return uuid.NewSHA1(uuid.NameSpaceOID, buf)
}
