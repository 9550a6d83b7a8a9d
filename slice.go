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
	"go.uber.org/zap"

	"seehuhn.de/go/badge/pattern"
	"seehuhn.de/go/badge/polar"
	"seehuhn.de/go/badge/progress"
)

// Slice is one pie slice of the badge.  It owns the cell mesh of its
// sector and keeps the mesh in step with the completion level of its
// category.
type Slice struct {
	index    int
	category int
	item     int
	checked  bool // the slice's own checklist item
	level    int  // completion level of the category

	span    polar.Span
	outline *polar.Outline
	mesh    *pattern.Mesh
}

// newSlice initialises slice i from the progress matrix and builds its
// mesh.
func (b *Badge) newSlice(i int, m *progress.Matrix) *Slice {
	items := b.cfg.Items()
	s := &Slice{
		index:    i,
		category: i / items,
		item:     i % items,
		span:     polar.SliceSpan(i, b.cfg.Slices()),
	}
	s.level = m.Level(s.category)
	s.checked = m.Checked(s.key())
	s.outline = polar.SectorPath(b.cfg.Center, b.cfg.Radius, s.span, b.cfg.Gap)
	s.mesh = b.buildMesh(s.span, s.level)

	b.log.Debug("slice initialised",
		zap.Int("slice", i),
		zap.Int("category", s.category),
		zap.Int("level", s.level),
		zap.Int("cells", s.mesh.Len()),
		zap.Int("visible", s.mesh.Visible()))
	return s
}

func (b *Badge) buildMesh(span polar.Span, level int) *pattern.Mesh {
	return pattern.Build(b.cfg.Center, b.cfg.Radius, span, pattern.Resolve(level), b.src)
}

// updateSlice brings the slice to a new completion level.  Every cell draws a
// fresh sample against the density of the new level.  In MeshFixed mode
// the cell geometry is kept even if the new level would use a different
// grid.
func (b *Badge) updateSlice(s *Slice, level int, checked bool) {
	params := pattern.Resolve(level)
	rebuilt := false
	if b.cfg.Mesh == MeshRebuild && level != s.level {
		s.mesh = b.buildMesh(s.span, level)
		rebuilt = true
	} else {
		s.mesh.Reroll(params.Density, b.src)
	}
	s.level = level
	s.checked = checked

	b.log.Debug("slice updated",
		zap.Int("slice", s.index),
		zap.Int("level", level),
		zap.Bool("rebuilt", rebuilt),
		zap.Int("visible", s.mesh.Visible()))
}

func (s *Slice) key() progress.Key {
	return progress.Key{Item: s.item, Category: s.category}
}

// Index returns the position of the slice, counted clockwise from 12 o'clock.
func (s *Slice) Index() int {
	return s.index
}

// Category returns the checklist category the slice belongs to.
func (s *Slice) Category() int {
	return s.category
}

// Item returns the checklist item of the category the slice stands for.
func (s *Slice) Item() int {
	return s.item
}

// Level returns the current completion level of the slice's category.
func (s *Slice) Level() int {
	return s.level
}

// Checked reports whether the slice's own checklist item is checked.
func (s *Slice) Checked() bool {
	return s.checked
}

// Span returns the raw angular span of the slice, before the slice gap is
// applied.
func (s *Slice) Span() polar.Span {
	return s.span
}

// Mesh returns the cell mesh of the slice.
func (s *Slice) Mesh() *pattern.Mesh {
	return s.mesh
}

// Outline returns the border of the slice's sector.  The same outline
// clips the cells of the slice.
func (s *Slice) Outline() *polar.Outline {
	return s.outline
}
