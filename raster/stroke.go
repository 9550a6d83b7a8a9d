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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// strokeOutlines converts the path into fillable polygons covering all
// points within distance d of the path.  Results are stored in c.outlines,
// in device coordinates.
//
// Every segment becomes a rectangle and every vertex a disc.  All polygons
// have the same orientation, so that the nonzero union of the pieces is
// the stroked region.
func (c *Canvas) strokeOutlines(p *path.Data, d float64) {
	c.outlines = c.outlines[:0]

	var subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c.strokePolyline(false, d)
			subpath = p.Coords[coordIdx]
			c.polyline = append(c.polyline[:0], subpath)
			coordIdx++

		case path.CmdLineTo:
			c.polyline = append(c.polyline, p.Coords[coordIdx])
			coordIdx++

		case path.CmdQuadTo:
			p0 := c.polyline[len(c.polyline)-1]
			p1, p2 := p.Coords[coordIdx], p.Coords[coordIdx+1]
			// degree elevation: the cubic with these controls is the
			// same curve
			c.flattenCubic(p0, p0.Add(p1.Sub(p0).Mul(2.0/3)), p2.Add(p1.Sub(p2).Mul(2.0/3)), p2)
			coordIdx += 2

		case path.CmdCubeTo:
			p0 := c.polyline[len(c.polyline)-1]
			c.flattenCubic(p0, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			coordIdx += 3

		case path.CmdClose:
			if c.polyline[len(c.polyline)-1] != subpath {
				c.polyline = append(c.polyline, subpath)
			}
			c.strokePolyline(true, d)
			c.polyline = append(c.polyline[:0], subpath)
		}
	}
	c.strokePolyline(false, d)
	c.polyline = c.polyline[:0]
}

// flattenCubic appends line segments approximating the cubic Bézier curve
// to c.polyline.  The start point p0 is expected to be the last point
// of the polyline already.
func (c *Canvas) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := c.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := c.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	// Wang's formula
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * c.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t))
		c.polyline = append(c.polyline, pt)
	}
}

// strokePolyline emits the stroke polygons for c.polyline.  For closed
// polylines the first point is repeated at the end.
func (c *Canvas) strokePolyline(closed bool, d float64) {
	pts := c.polyline
	if len(pts) < 2 {
		return
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := b.Sub(a)
		length := seg.Length()
		if length < zeroLengthThreshold {
			continue
		}
		t := seg.Mul(1 / length)
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		c.addOutline([]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}

	// round joins at the inner vertices, and at the start of closed
	// polylines
	first, last := 1, len(pts)-1
	if closed {
		first = 0
	}
	for i := first; i < last; i++ {
		c.addDisc(pts[i], d)
	}
}

// addDisc emits a polygon approximating the disc of radius d around center.
func (c *Canvas) addDisc(center vec.Vec2, d float64) {
	// device space radius, for choosing the number of vertices
	rDev := c.transformLinear(vec.Vec2{X: d}).Length()
	n := 8
	if rDev > c.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-c.Flatness/rDev))))
	}

	poly := make([]vec.Vec2, n)
	for i := range poly {
		// run clockwise in user space, to match addOutline's rectangles
		sin, cos := math.Sincos(-2 * math.Pi * float64(i) / float64(n))
		poly[i] = vec.Vec2{X: center.X + d*cos, Y: center.Y + d*sin}
	}
	c.addOutline(poly)
}

// addOutline transforms a user space polygon to device space and stores it.
func (c *Canvas) addOutline(poly []vec.Vec2) {
	for i, pt := range poly {
		poly[i] = c.transform(pt)
	}
	c.outlines = append(c.outlines, poly)
}

// transformLinear applies only the 2×2 linear part of the CTM to a vector.
func (c *Canvas) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: c.CTM[0]*v.X + c.CTM[2]*v.Y,
		Y: c.CTM[1]*v.X + c.CTM[3]*v.Y,
	}
}

// zeroLengthThreshold is the minimum length for a stroke segment.
// Segments shorter than this are skipped.
const zeroLengthThreshold = 1e-10
