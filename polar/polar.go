// seehuhn.de/go/badge - a procedural progress badge renderer
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

// Package polar implements the circular geometry used by the badge: polar
// to cartesian conversion, angular spans, and the boundary outlines of
// pie sectors and ring segments.
//
// All angles are in degrees.  The coordinate system is y-down, as in SVG,
// so increasing angles run clockwise on screen and 0° points to 3 o'clock.
package polar

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// ToCartesian converts the polar coordinates (radius, angle) around center
// into a point.
func ToCartesian(center vec.Vec2, radius, angle float64) vec.Vec2 {
	rad := angle * math.Pi / 180
	return vec.Vec2{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// Span is an angular interval from Start to End, in degrees.
// End is expected to be larger than Start.
type Span struct {
	Start, End float64
}

// Width returns the angular extent of the span.
func (s Span) Width() float64 {
	return s.End - s.Start
}

// Inset shrinks the span by gap/2 on both ends.
func (s Span) Inset(gap float64) Span {
	return Span{Start: s.Start + gap/2, End: s.End - gap/2}
}

// Split returns the i-th of n equal sub-spans.
func (s Span) Split(i, n int) Span {
	w := s.Width()
	return Span{
		Start: s.Start + float64(i)/float64(n)*w,
		End:   s.Start + float64(i+1)/float64(n)*w,
	}
}

// SliceSpan returns the raw angular span of slice i out of n equal slices.
// Slice 0 starts at 12 o'clock.
func SliceSpan(i, n int) Span {
	step := 360 / float64(n)
	start := -90 + float64(i)*step
	return Span{Start: start, End: start + step}
}

// largeArc reports whether an arc over the given span needs the SVG
// large-arc flag.
func largeArc(s Span) bool {
	return s.Width() > 180
}

// SectorPath returns the closed pie sector from center out to radius,
// covering span after insetting it by gap/2 on both sides.
func SectorPath(center vec.Vec2, radius float64, span Span, gap float64) *Outline {
	s := span.Inset(gap)
	o := &Outline{}
	o.MoveTo(center)
	o.LineTo(ToCartesian(center, radius, s.Start))
	o.ArcTo(center, radius, s.Start, s.End)
	o.Close()
	return o
}

// AnnularCellPath returns the closed ring segment between the radii inner
// and outer, over span.  The outer arc runs forward, the inner arc runs
// backward.
func AnnularCellPath(center vec.Vec2, inner, outer float64, span Span) *Outline {
	o := &Outline{}
	o.MoveTo(ToCartesian(center, inner, span.Start))
	o.LineTo(ToCartesian(center, outer, span.Start))
	o.ArcTo(center, outer, span.Start, span.End)
	o.LineTo(ToCartesian(center, inner, span.End))
	o.ArcTo(center, inner, span.End, span.Start)
	o.Close()
	return o
}
