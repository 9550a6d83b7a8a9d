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

import "context"

// MemStore is an in-memory [Store].
//
// A MemStore is not safe for concurrent use.
type MemStore struct {
	data map[Key]bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[Key]bool)}
}

// Get implements the [Store] interface.
func (s *MemStore) Get(_ context.Context, k Key) (bool, error) {
	return s.data[k], nil
}

// Set implements the [Store] interface.
func (s *MemStore) Set(_ context.Context, k Key, checked bool) error {
	if checked {
		s.data[k] = true
	} else {
		delete(s.data, k)
	}
	return nil
}

// Clear implements the [Store] interface.
func (s *MemStore) Clear(context.Context) error {
	clear(s.data)
	return nil
}

// Len returns the number of checked items.
func (s *MemStore) Len() int {
	return len(s.data)
}
