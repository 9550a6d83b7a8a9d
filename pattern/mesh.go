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

package pattern

import (
	"iter"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/badge/polar"
)

// Cell is one ring segment of a [Mesh].
type Cell struct {
	Ring, Step int // position in the grid

	Inner, Outer float64    // radii
	Span         polar.Span // angular extent

	// Outline is the boundary of the cell.  It is computed when the mesh
	// is built and never changes afterwards.
	Outline *polar.Outline

	// Visible tells whether the cell is drawn.
	Visible bool
}

// Mesh is a ring × angle partition of one badge sector.
//
// The geometry of a mesh is fixed when it is built.  Only the visibility
// of the cells changes afterwards, see [Mesh.Reroll].
type Mesh struct {
	params Params // parameters used to build the geometry
	cells  []Cell // ring-major order
}

// Build partitions the sector into a polar grid.  The angular span is
// inset by params.Gap and divided into params.Steps bins; the radius is
// divided into params.Rings rings from 0 to radius.  Every cell draws one
// sample from src and is visible if the sample is below params.Density.
func Build(center vec.Vec2, radius float64, sector polar.Span, params Params, src Source) *Mesh {
	span := sector.Inset(params.Gap)
	m := &Mesh{
		params: params,
		cells:  make([]Cell, 0, params.Cells()),
	}
	for ri := range params.Rings {
		inner := float64(ri) / float64(params.Rings) * radius
		outer := float64(ri+1) / float64(params.Rings) * radius
		for ai := range params.Steps {
			cellSpan := span.Split(ai, params.Steps)
			m.cells = append(m.cells, Cell{
				Ring:    ri,
				Step:    ai,
				Inner:   inner,
				Outer:   outer,
				Span:    cellSpan,
				Outline: polar.AnnularCellPath(center, inner, outer, cellSpan),
				Visible: src.Float64() < params.Density,
			})
		}
	}
	return m
}

// Params returns the parameters the mesh geometry was built with.
func (m *Mesh) Params() Params {
	return m.params
}

// Len returns the number of cells.
func (m *Mesh) Len() int {
	return len(m.cells)
}

// Cell returns the cell at the given grid position.
func (m *Mesh) Cell(ring, step int) (*Cell, bool) {
	if ring < 0 || ring >= m.params.Rings || step < 0 || step >= m.params.Steps {
		return nil, false
	}
	return &m.cells[ring*m.params.Steps+step], true
}

// All iterates over the cells in ring-major order.
func (m *Mesh) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range m.cells {
			if !yield(&m.cells[i]) {
				return
			}
		}
	}
}

// Visible returns the number of visible cells.
func (m *Mesh) Visible() int {
	n := 0
	for i := range m.cells {
		if m.cells[i].Visible {
			n++
		}
	}
	return n
}

// Snapshot returns the visibility flags of all cells in ring-major order.
func (m *Mesh) Snapshot() []bool {
	res := make([]bool, len(m.cells))
	for i := range m.cells {
		res[i] = m.cells[i].Visible
	}
	return res
}

// Reroll draws a fresh sample for every cell and sets its visibility
// against density.  Cell geometry and the number of cells are unchanged.
// The return value is the number of cells whose visibility changed.
func (m *Mesh) Reroll(density float64, src Source) int {
	changed := 0
	for i := range m.cells {
		c := &m.cells[i]
		v := src.Float64() < density
		if v != c.Visible {
			changed++
		}
		c.Visible = v
	}
	return changed
}
