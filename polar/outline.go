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

package polar

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Command identifies the kind of an outline segment.
type Command uint8

// These are the available outline commands.
const (
	CmdMoveTo Command = iota
	CmdLineTo
	CmdArcTo
	CmdClose
)

// Segment is one drawing command of an [Outline].
type Segment struct {
	Cmd Command
	To  vec.Vec2 // end point; unused for CmdClose

	// The remaining fields are only used for CmdArcTo.
	Center   vec.Vec2
	Radius   float64
	From     float64 // start angle in degrees
	Until    float64 // end angle in degrees
	LargeArc bool    // SVG large-arc flag
	Sweep    bool    // SVG sweep flag: true if the arc runs clockwise on screen
}

// Outline is the boundary of a region, built from lines and circular arcs.
// It can be written as SVG path data, or converted to Bézier path data for
// rasterisation and PDF output.
type Outline struct {
	Segments []Segment
}

// MoveTo starts a new subpath at p.
func (o *Outline) MoveTo(p vec.Vec2) {
	o.Segments = append(o.Segments, Segment{Cmd: CmdMoveTo, To: p})
}

// LineTo adds a straight line to p.
func (o *Outline) LineTo(p vec.Vec2) {
	o.Segments = append(o.Segments, Segment{Cmd: CmdLineTo, To: p})
}

// ArcTo adds a circular arc around center, from the angle from to the angle
// until.  The current point is expected to be the start of the arc.
func (o *Outline) ArcTo(center vec.Vec2, radius, from, until float64) {
	s := Span{Start: min(from, until), End: max(from, until)}
	o.Segments = append(o.Segments, Segment{
		Cmd:      CmdArcTo,
		To:       ToCartesian(center, radius, until),
		Center:   center,
		Radius:   radius,
		From:     from,
		Until:    until,
		LargeArc: largeArc(s),
		Sweep:    until > from,
	})
}

// Close closes the current subpath.
func (o *Outline) Close() {
	o.Segments = append(o.Segments, Segment{Cmd: CmdClose})
}

// SVG returns the outline as SVG path data.
func (o *Outline) SVG() string {
	b := &strings.Builder{}
	for i, seg := range o.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch seg.Cmd {
		case CmdMoveTo:
			b.WriteString("M ")
			writePoint(b, seg.To)
		case CmdLineTo:
			b.WriteString("L ")
			writePoint(b, seg.To)
		case CmdArcTo:
			r := formatNumber(seg.Radius)
			b.WriteString("A " + r + " " + r + " 0 ")
			b.WriteString(flag(seg.LargeArc) + " " + flag(seg.Sweep) + " ")
			writePoint(b, seg.To)
		case CmdClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// Data converts the outline into path data.  Arcs are approximated by
// cubic Bézier curves spanning at most 90° each.
func (o *Outline) Data() *path.Data {
	p := &path.Data{}
	var current vec.Vec2
	for _, seg := range o.Segments {
		switch seg.Cmd {
		case CmdMoveTo:
			p.MoveTo(seg.To)
			current = seg.To
		case CmdLineTo:
			p.LineTo(seg.To)
			current = seg.To
		case CmdArcTo:
			if seg.Radius <= 0 || seg.From == seg.Until {
				if current != seg.To {
					p.LineTo(seg.To)
				}
			} else {
				appendArc(p, seg.Center, seg.Radius, seg.From, seg.Until)
			}
			current = seg.To
		case CmdClose:
			p.Close()
		}
	}
	return p
}

// appendArc appends cubic Bézier curves approximating the arc from angle a0
// to angle a1.
func appendArc(p *path.Data, c vec.Vec2, r, a0, a1 float64) {
	delta := a1 - a0
	n := int(math.Ceil(math.Abs(delta) / 90))
	step := delta / float64(n) * math.Pi / 180
	k := 4.0 / 3.0 * math.Tan(step/4)

	phi := a0 * math.Pi / 180
	for range n {
		next := phi + step
		sin0, cos0 := math.Sincos(phi)
		sin1, cos1 := math.Sincos(next)

		p1 := vec.Vec2{X: c.X + r*(cos0-k*sin0), Y: c.Y + r*(sin0+k*cos0)}
		p2 := vec.Vec2{X: c.X + r*(cos1+k*sin1), Y: c.Y + r*(sin1-k*cos1)}
		p3 := vec.Vec2{X: c.X + r*cos1, Y: c.Y + r*sin1}
		p.CubeTo(p1, p2, p3)

		phi = next
	}
}

func writePoint(b *strings.Builder, p vec.Vec2) {
	b.WriteString(formatNumber(p.X))
	b.WriteByte(' ')
	b.WriteString(formatNumber(p.Y))
}

// formatNumber formats x with at most three decimal places.
func formatNumber(x float64) string {
	x = math.Round(x*1000) / 1000
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
