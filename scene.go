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

package badge

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/badge/polar"
)

// Paint is a colour together with an opacity in [0, 1].
type Paint struct {
	Color   colorful.Color
	Opacity float64
}

// Hex returns the colour in "#rrggbb" form.
func (p Paint) Hex() string {
	return p.Color.Hex()
}

// NRGBA returns the paint as a non-premultiplied colour.
func (p Paint) NRGBA() color.NRGBA {
	r, g, b := p.Color.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(255 * min(max(p.Opacity, 0), 1)))}
}

func mustPaint(hex string) Paint {
	c, err := colorful.Hex(hex)
	if err != nil {
		// colours are checked by Config.Validate
		panic(err)
	}
	return Paint{Color: c, Opacity: 1}
}

// Scene is a drawing of the badge, made of path primitives.
// Coordinates are in a Width × Height space with y pointing down.
type Scene struct {
	Width, Height float64
	Center        vec.Vec2

	// Rotation turns the whole badge around Center, in degrees clockwise.
	Rotation float64

	// Spinning is set once every checklist item is checked.
	Spinning bool

	Slices []SliceLayer
}

// SliceLayer is the drawing of one slice.  The cells are painted first,
// clipped to Clip, and the outline is stroked on top.
type SliceLayer struct {
	Index int
	Clip  *polar.Outline

	Fill  Paint
	Cells []*polar.Outline // visible cells only

	Outline     *polar.Outline
	Stroke      Paint
	StrokeWidth float64
}

// Scene returns the current drawing of the badge.  Before the first
// [Badge.Render] the scene contains no slices.
func (b *Badge) Scene() *Scene {
	st := b.State()
	sc := &Scene{
		Width:    b.cfg.Size,
		Height:   b.cfg.Size,
		Center:   b.cfg.Center,
		Rotation: st.Rotation,
		Spinning: st.AllComplete,
	}
	if b.slices == nil {
		return sc
	}

	stroke := mustPaint(b.cfg.OutlineColor)
	neutral := mustPaint(b.cfg.Neutral)
	for _, s := range b.slices {
		layer := SliceLayer{
			Index:       s.index,
			Clip:        s.outline,
			Fill:        neutral,
			Outline:     s.outline,
			Stroke:      stroke,
			StrokeWidth: b.cfg.OutlineWidth,
		}
		if s.checked {
			layer.Fill = mustPaint(b.cfg.Palette[s.index])
		}
		for c := range s.mesh.All() {
			if c.Visible {
				layer.Cells = append(layer.Cells, c.Outline)
			}
		}
		sc.Slices = append(sc.Slices, layer)
	}
	return sc
}
