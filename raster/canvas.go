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

// Package raster paints path data into an RGBA image.
//
// Coverage is computed by golang.org/x/image/vector; this package adds
// the transformation from user space, clipping, colour compositing and
// stroking.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Canvas is an RGBA image together with the state needed to paint paths
// into it.  Create one instance and reuse it for all paths of a picture.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Flatness controls the accuracy of curve approximations in device
	// pixels.  Must be positive.
	Flatness float64

	img  *image.RGBA
	z    *vector.Rasterizer
	mask *image.Alpha // coverage of the current path
	clip *image.Alpha // coverage of the current clip path

	// stroke outline buffers, reused across calls
	polyline []vec.Vec2
	outlines [][]vec.Vec2
}

// NewCanvas returns a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	bounds := image.Rect(0, 0, width, height)
	return &Canvas{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
		img:      image.NewRGBA(bounds),
		z:        vector.NewRasterizer(width, height),
		mask:     image.NewAlpha(bounds),
		clip:     image.NewAlpha(bounds),
	}
}

// Image returns the painted image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the device space rectangle of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Fill paints the union of the given paths with col, using the nonzero
// winding rule.  If clip is not nil, painting is restricted to the inside
// of clip.
func (c *Canvas) Fill(paths []*path.Data, clip *path.Data, col color.Color) {
	if len(paths) == 0 {
		return
	}
	c.coverage(c.mask, func() {
		for _, p := range paths {
			c.addPath(p)
		}
	})
	if clip != nil {
		c.coverage(c.clip, func() {
			c.addPath(clip)
		})
		for i, a := range c.clip.Pix {
			c.mask.Pix[i] = uint8((uint32(c.mask.Pix[i])*uint32(a) + 127) / 255)
		}
	}
	c.paint(col)
}

// Stroke paints the outline of p with the given line width, measured in
// user space.  Corners and closed subpaths use round joins; the ends of
// open subpaths use butt caps.
func (c *Canvas) Stroke(p *path.Data, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	c.strokeOutlines(p, width/2)
	if len(c.outlines) == 0 {
		return
	}
	c.coverage(c.mask, func() {
		for _, poly := range c.outlines {
			c.addPolygon(poly)
		}
	})
	c.paint(col)
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// coverage runs build to describe a shape and stores its coverage in dst.
func (c *Canvas) coverage(dst *image.Alpha, build func()) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Src
	build()
	c.z.Draw(dst, b, image.Opaque, image.Point{})
}

// paint composites col through the current mask.
func (c *Canvas) paint(col color.Color) {
	draw.DrawMask(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, c.mask, image.Point{}, draw.Over)
}

// addPath walks the path and feeds it to the vector rasteriser in device
// coordinates.  Affine maps preserve Bézier curves, so only the control
// points need to be transformed.
func (c *Canvas) addPath(p *path.Data) {
	coordIdx := 0
	open := false
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				c.z.ClosePath()
			}
			x, y := c.device(p.Coords[coordIdx])
			c.z.MoveTo(x, y)
			open = true
			coordIdx++

		case path.CmdLineTo:
			x, y := c.device(p.Coords[coordIdx])
			c.z.LineTo(x, y)
			coordIdx++

		case path.CmdQuadTo:
			bx, by := c.device(p.Coords[coordIdx])
			cx, cy := c.device(p.Coords[coordIdx+1])
			c.z.QuadTo(bx, by, cx, cy)
			coordIdx += 2

		case path.CmdCubeTo:
			bx, by := c.device(p.Coords[coordIdx])
			cx, cy := c.device(p.Coords[coordIdx+1])
			dx, dy := c.device(p.Coords[coordIdx+2])
			c.z.CubeTo(bx, by, cx, cy, dx, dy)
			coordIdx += 3

		case path.CmdClose:
			c.z.ClosePath()
			open = false
		}
	}
	if open {
		// filled regions are always closed
		c.z.ClosePath()
	}
}

// addPolygon feeds a closed polygon, given in device coordinates, to the
// vector rasteriser.
func (c *Canvas) addPolygon(poly []vec.Vec2) {
	c.z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, pt := range poly[1:] {
		c.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	c.z.ClosePath()
}

// transform applies the CTM to a point.
func (c *Canvas) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: c.CTM[0]*p.X + c.CTM[2]*p.Y + c.CTM[4],
		Y: c.CTM[1]*p.X + c.CTM[3]*p.Y + c.CTM[5],
	}
}

func (c *Canvas) device(p vec.Vec2) (float32, float32) {
	d := c.transform(p)
	return float32(d.X), float32(d.Y)
}

// RotateAbout returns the matrix which turns the plane by deg degrees
// around center.  In a y-down device space positive angles turn clockwise.
func RotateAbout(center vec.Vec2, deg float64) matrix.Matrix {
	m := matrix.RotateDeg(deg)
	m[4] = center.X - m[0]*center.X - m[2]*center.Y
	m[5] = center.Y - m[1]*center.X - m[3]*center.Y
	return m
}

// defaultFlatness is the default curve flattening tolerance in device
// pixels.
const defaultFlatness = 0.25
