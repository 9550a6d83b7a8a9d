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
	"image"
	"image/color"
	"io"
	"math"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/badge"
	"seehuhn.de/go/badge/raster"
)

// Rasterise paints the scene into an image.  One scene unit maps to scale
// pixels.  The background is white.
func Rasterise(sc *badge.Scene, scale float64) (*image.RGBA, error) {
	c, err := paint(sc, scale)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// WritePNG rasterises the scene and writes it to w in PNG format.
func WritePNG(w io.Writer, sc *badge.Scene, scale float64) error {
	c, err := paint(sc, scale)
	if err != nil {
		return err
	}
	return c.EncodePNG(w)
}

func paint(sc *badge.Scene, scale float64) (*raster.Canvas, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale %g", scale)
	}
	w := int(math.Ceil(sc.Width * scale))
	h := int(math.Ceil(sc.Height * scale))

	c := raster.NewCanvas(w, h)
	c.Clear(color.White)

	ctm := raster.RotateAbout(sc.Center, sc.Rotation)
	for i := range ctm {
		ctm[i] *= scale
	}
	c.CTM = ctm

	for _, layer := range sc.Slices {
		cells := make([]*path.Data, len(layer.Cells))
		for i, cell := range layer.Cells {
			cells[i] = cell.Data()
		}
		c.Fill(cells, layer.Clip.Data(), layer.Fill.NRGBA())
		c.Stroke(layer.Outline.Data(), layer.StrokeWidth, layer.Stroke.NRGBA())
	}
	return c, nil
}
