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

// Package badge assembles a circular progress badge from pie slices.
//
// The badge is divided into one slice per checklist item.  Each slice is
// filled with a randomised polar grid whose density reflects how many
// items of the slice's category are checked.  When an item is toggled,
// only the slices of the affected category are updated; their cells keep
// their geometry and only change visibility.
//
// A Badge is driven from a single event loop and is not safe for
// concurrent use.
package badge

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"seehuhn.de/go/badge/pattern"
	"seehuhn.de/go/badge/progress"
)

// Badge owns the slices of one badge and keeps them in step with a
// progress store.
type Badge struct {
	cfg   Config
	store progress.Store
	src   pattern.Source
	log   *zap.Logger

	slices []*Slice // nil until the first Render
	focus  int      // category of the last toggle, or -1
}

// Option configures a [Badge].
type Option func(*Badge)

// WithSource sets the random source used for the cell textures.
// By default the unseeded global generator is used.
func WithSource(src pattern.Source) Option {
	return func(b *Badge) {
		b.src = src
	}
}

// WithLogger sets the logger.  By default nothing is logged.
func WithLogger(log *zap.Logger) Option {
	return func(b *Badge) {
		b.log = log
	}
}

// New returns a badge with the given layout, reading its progress from
// store.  No meshes are built before the first call to [Badge.Render].
func New(cfg Config, store progress.Store, opts ...Option) (*Badge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid badge config: %w", err)
	}

	// take private copies, so that the caller cannot change the layout
	cfg.Categories = slices.Clone(cfg.Categories)
	for i := range cfg.Categories {
		cfg.Categories[i].Items = slices.Clone(cfg.Categories[i].Items)
	}
	cfg.Palette = slices.Clone(cfg.Palette)

	b := &Badge{
		cfg:   cfg,
		store: store,
		src:   pattern.DefaultSource(),
		log:   zap.NewNop(),
		focus: -1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Config returns the layout of the badge.
func (b *Badge) Config() Config {
	return b.cfg
}

// State summarises the progress shown by the badge.
type State struct {
	// Levels gives the completion level of every category.
	Levels []int

	// AllComplete is set when every item of every category is checked.
	AllComplete bool

	// Focus is the category of the most recent toggle, or -1.
	Focus int

	// Rotation is the angle, in degrees, by which the badge is turned so
	// that the focused category sits at the top.
	Rotation float64
}

// Render reads the progress store and brings all slices up to date.  The
// first call builds the meshes of all slices.  Later calls only update
// slices whose category level or own item changed.
func (b *Badge) Render(ctx context.Context) (State, error) {
	m, err := b.load(ctx)
	if err != nil {
		return State{}, err
	}

	items := b.cfg.Items()
	if b.slices == nil {
		b.slices = make([]*Slice, b.cfg.Slices())
		for c := range b.cfg.Categories {
			for i := range items {
				idx := i + c*items
				b.slices[idx] = b.newSlice(idx, m)
			}
		}
		b.log.Debug("badge built", zap.Int("slices", len(b.slices)))
		return b.State(), nil
	}

	for c := range b.cfg.Categories {
		level := m.Level(c)
		for i := range items {
			s := b.slices[i+c*items]
			checked := m.Checked(s.key())
			if s.level != level || s.checked != checked {
				b.updateSlice(s, level, checked)
			}
		}
	}
	return b.State(), nil
}

// NotifyCategoryChanged updates the slices of one category after an item
// of this category was toggled in the store.  The slices of all other
// categories are left alone.
func (b *Badge) NotifyCategoryChanged(ctx context.Context, category int) (State, error) {
	if category < 0 || category >= len(b.cfg.Categories) {
		return State{}, fmt.Errorf("category %d: %w", category, progress.ErrOutOfRange)
	}
	if b.slices == nil {
		if _, err := b.Render(ctx); err != nil {
			return State{}, err
		}
	}

	m, err := b.load(ctx)
	if err != nil {
		return State{}, err
	}

	level := m.Level(category)
	items := b.cfg.Items()
	for i := range items {
		s := b.slices[category*items+i]
		b.updateSlice(s, level, m.Checked(s.key()))
	}
	b.focus = category

	b.log.Debug("category changed",
		zap.Int("category", category),
		zap.Int("level", level))
	return b.State(), nil
}

// Toggle sets the checklist item k in the store and updates the badge.
func (b *Badge) Toggle(ctx context.Context, k progress.Key, checked bool) (State, error) {
	if k.Category < 0 || k.Category >= len(b.cfg.Categories) || k.Item < 0 || k.Item >= b.cfg.Items() {
		return State{}, fmt.Errorf("item %s: %w", k, progress.ErrOutOfRange)
	}
	if err := b.store.Set(ctx, k, checked); err != nil {
		return State{}, fmt.Errorf("updating checklist: %w", err)
	}
	return b.NotifyCategoryChanged(ctx, k.Category)
}

// Reset clears the progress store and rebuilds all slices from scratch.
func (b *Badge) Reset(ctx context.Context) (State, error) {
	if err := b.store.Clear(ctx); err != nil {
		return State{}, fmt.Errorf("resetting checklist: %w", err)
	}
	b.slices = nil
	b.focus = -1
	b.log.Info("badge reset")
	return b.Render(ctx)
}

// State returns the current progress summary.
func (b *Badge) State() State {
	st := State{
		Levels: make([]int, len(b.cfg.Categories)),
		Focus:  b.focus,
	}
	if b.slices != nil {
		items := b.cfg.Items()
		for c := range st.Levels {
			st.Levels[c] = b.slices[c*items].level
		}
	}

	st.AllComplete = b.slices != nil
	for _, level := range st.Levels {
		if level != pattern.MaxLevel {
			st.AllComplete = false
		}
	}

	if b.focus >= 0 {
		section := 360 / float64(len(b.cfg.Categories))
		st.Rotation = -float64(b.focus)*section - section/2
	}
	return st
}

// NumSlices returns the number of slices.
func (b *Badge) NumSlices() int {
	return b.cfg.Slices()
}

// Slice returns slice i, or nil if the badge has not been rendered yet.
// It panics if i is out of range.
func (b *Badge) Slice(i int) *Slice {
	if i < 0 || i >= b.cfg.Slices() {
		panic(fmt.Sprintf("badge: slice %d out of range [0, %d)", i, b.cfg.Slices()))
	}
	if b.slices == nil {
		return nil
	}
	return b.slices[i]
}

func (b *Badge) load(ctx context.Context) (*progress.Matrix, error) {
	m, err := progress.Load(ctx, b.store, b.cfg.Items(), len(b.cfg.Categories))
	if err != nil {
		return nil, fmt.Errorf("loading checklist: %w", err)
	}
	return m, nil
}
