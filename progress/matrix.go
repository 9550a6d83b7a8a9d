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

package progress

import (
	"context"
	"fmt"
)

// Matrix is a snapshot of the checklist state for all items of all
// categories.
type Matrix struct {
	items, categories int
	checked           []bool // category-major
}

// Load reads the state of the items × categories checklist from s.
func Load(ctx context.Context, s Store, items, categories int) (*Matrix, error) {
	m := &Matrix{
		items:      items,
		categories: categories,
		checked:    make([]bool, items*categories),
	}
	for c := range categories {
		for i := range items {
			k := Key{Item: i, Category: c}
			on, err := s.Get(ctx, k)
			if err != nil {
				return nil, fmt.Errorf("reading item %s: %w", k, err)
			}
			m.checked[c*items+i] = on
		}
	}
	return m, nil
}

// Checked reports whether the given item is checked.
// Keys outside the matrix are reported as unchecked.
func (m *Matrix) Checked(k Key) bool {
	if !m.Contains(k) {
		return false
	}
	return m.checked[k.Category*m.items+k.Item]
}

// Contains reports whether k lies inside the matrix.
func (m *Matrix) Contains(k Key) bool {
	return k.Item >= 0 && k.Item < m.items && k.Category >= 0 && k.Category < m.categories
}

// Level returns the number of checked items in the category.
func (m *Matrix) Level(category int) int {
	n := 0
	for i := range m.items {
		if m.Checked(Key{Item: i, Category: category}) {
			n++
		}
	}
	return n
}
