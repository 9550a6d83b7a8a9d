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

package export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/badge"
	"seehuhn.de/go/badge/raster"
)

// WritePDF writes the scene as a single page PDF file.  One scene unit
// corresponds to one PDF point.
func WritePDF(fname string, sc *badge.Scene) error {
	paper := &pdf.Rectangle{
		URx: sc.Width,
		URy: sc.Height,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fname, err)
	}

	// PDF origin is bottom-left; scenes assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, sc.Height})
	if sc.Rotation != 0 {
		page.Transform(raster.RotateAbout(sc.Center, sc.Rotation))
	}

	for _, layer := range sc.Slices {
		if len(layer.Cells) > 0 {
			page.PushGraphicsState()
			drawPath(page, layer.Clip.Data())
			page.ClipNonZero()
			page.EndPath()

			page.SetFillColor(deviceRGB(layer.Fill))
			for _, cell := range layer.Cells {
				drawPath(page, cell.Data())
			}
			page.Fill()
			page.PopGraphicsState()
		}

		if layer.StrokeWidth > 0 {
			page.SetStrokeColor(deviceRGB(layer.Stroke))
			page.SetLineWidth(layer.StrokeWidth)
			page.SetLineJoin(graphics.LineJoinRound)
			drawPath(page, layer.Outline.Data())
			page.Stroke()
		}
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}

func deviceRGB(p badge.Paint) color.Color {
	c := p.Color.Clamped()
	return color.DeviceRGB{c.R, c.G, c.B}
}

// drawPath appends the path to the current PDF path.  PDF has no
// quadratic segments, so these are converted to cubics.
func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
