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

// Package export writes badge scenes as SVG, PNG and PDF files.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/badge"
)

// WriteSVG writes the scene as a standalone SVG document.
//
// Every slice becomes a group with id "slice-<i>".  The visible cells of
// a slice are clipped to the clip path "clip-<i>" and the slice outline is
// stroked on top.  When the scene is spinning, the root element carries
// the class "spinning".
func WriteSVG(w io.Writer, sc *badge.Scene) error {
	b := &strings.Builder{}

	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %[1]s %[2]s"`,
		num(sc.Width), num(sc.Height))
	if sc.Spinning {
		b.WriteString(` class="spinning"`)
	}
	b.WriteString(">\n")

	b.WriteString("<defs>\n")
	for _, layer := range sc.Slices {
		fmt.Fprintf(b, `<clipPath id="clip-%d"><path d="%s"/></clipPath>`+"\n", layer.Index, layer.Clip.SVG())
	}
	b.WriteString("</defs>\n")

	fmt.Fprintf(b, `<g transform="rotate(%s %s %s)">`+"\n", num(sc.Rotation), num(sc.Center.X), num(sc.Center.Y))
	for _, layer := range sc.Slices {
		fmt.Fprintf(b, `<g id="slice-%d">`+"\n", layer.Index)
		fmt.Fprintf(b, `<g clip-path="url(#clip-%d)">`+"\n", layer.Index)
		for _, cell := range layer.Cells {
			fmt.Fprintf(b, `<path d="%s" fill="%s"%s stroke="none"/>`+"\n",
				cell.SVG(), layer.Fill.Hex(), opacity("fill-opacity", layer.Fill.Opacity))
		}
		b.WriteString("</g>\n")
		fmt.Fprintf(b, `<path d="%s" fill="none" stroke="%s"%s stroke-width="%s"/>`+"\n",
			layer.Outline.SVG(), layer.Stroke.Hex(), opacity("stroke-opacity", layer.Stroke.Opacity), num(layer.StrokeWidth))
		b.WriteString("</g>\n")
	}
	b.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// opacity returns an opacity attribute, or the empty string for opaque
// paint.
func opacity(attr string, value float64) string {
	if value >= 1 {
		return ""
	}
	return " " + attr + `="` + num(value) + `"`
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
