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

// Package progress holds the checklist state which drives the badge.
//
// The state is a boolean flag per (item, category) pair.  A missing entry
// means "not checked".
package progress

import (
	"context"
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a key lies outside the checklist.
var ErrOutOfRange = errors.New("checklist key out of range")

// Key identifies one checklist item.
type Key struct {
	Item     int
	Category int
}

// String returns the key in the "item-category" form used as storage key.
func (k Key) String() string {
	return fmt.Sprintf("%d-%d", k.Item, k.Category)
}

// Store is a key-value store of checklist flags.
type Store interface {
	// Get reports whether the item is checked.  Absent entries are
	// reported as false.
	Get(ctx context.Context, k Key) (bool, error)

	// Set stores the flag for the item.
	Set(ctx context.Context, k Key, checked bool) error

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
