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

// Package pattern generates the randomised polar grid that fills a badge
// slice.  The grid parameters depend only on a small discrete completion
// level; higher levels give finer, denser and more tightly packed cells.
package pattern

import "fmt"

// MaxLevel is the highest completion level.  A category has MaxLevel items.
const MaxLevel = 3

// Params describes the grid used for one completion level.
type Params struct {
	// Gap is the angular inset, in degrees, applied to the slice span
	// before it is divided into cells.
	Gap float64

	// Rings is the number of equal-width rings from the centre to the
	// badge radius.
	Rings int

	// Steps is the number of equal angular divisions of the inset span.
	Steps int

	// Density is the probability that a cell is visible.
	Density float64
}

// Cells returns the number of cells a mesh built with p contains.
func (p Params) Cells() int {
	return p.Rings * p.Steps
}

var presets = [MaxLevel + 1]Params{
	{Gap: 3.0, Rings: 2, Steps: 2, Density: 0.25},
	{Gap: 2.0, Rings: 3, Steps: 3, Density: 0.38},
	{Gap: 1.1, Rings: 4, Steps: 4, Density: 0.50},
	{Gap: 0.4, Rings: 5, Steps: 5, Density: 0.68},
}

// Resolve returns the grid parameters for the given completion level.
// It panics if level is outside [0, MaxLevel]; callers count checked items
// in a category, so an out-of-range level is a bug.
func Resolve(level int) Params {
	if level < 0 || level > MaxLevel {
		panic(fmt.Sprintf("pattern: completion level %d out of range [0, %d]", level, MaxLevel))
	}
	return presets[level]
}
