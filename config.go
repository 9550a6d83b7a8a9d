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
	"errors"
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/badge/pattern"
)

// MeshMode selects what happens to a slice's cell mesh when the completion
// level of its category changes.
type MeshMode int

const (
	// MeshFixed keeps the mesh built at initialisation and only redraws
	// the visibility of its cells.  A slice built at level 0 keeps its
	// four cells even at level 3.
	MeshFixed MeshMode = iota

	// MeshRebuild replaces the mesh with one built for the new level.
	// This gives the finer grid of the new level, at the cost of
	// changing the texture of the whole slice.
	MeshRebuild
)

func (m MeshMode) String() string {
	switch m {
	case MeshFixed:
		return "fixed"
	case MeshRebuild:
		return "rebuild"
	default:
		return fmt.Sprintf("MeshMode(%d)", int(m))
	}
}

// MarshalYAML writes the mesh mode by name.
func (m MeshMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML reads a mesh mode from its name.
func (m *MeshMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "fixed", "":
		*m = MeshFixed
	case "rebuild":
		*m = MeshRebuild
	default:
		return fmt.Errorf("unknown mesh mode %q", s)
	}
	return nil
}

// Category is one topic of the checklist.
type Category struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Config holds the fixed layout of a badge.  A Config is treated as
// immutable once it has been passed to [New].
type Config struct {
	// Size is the width and height of the square drawing area.
	Size float64 `yaml:"size"`

	// Center and Radius place the badge inside the drawing area.
	Center vec.Vec2 `yaml:"-"`
	Radius float64  `yaml:"radius"`

	// Gap is the angular gap between adjacent slices, in degrees.
	Gap float64 `yaml:"gap"`

	// Categories lists the checklist topics.  All categories must have
	// the same number of items; there is one slice per item.
	Categories []Category `yaml:"categories"`

	// Palette gives the fill colour of every slice, as hex strings.
	Palette []string `yaml:"palette"`

	// Neutral is the fill colour of slices whose own item is unchecked.
	Neutral string `yaml:"neutral"`

	// OutlineColor and OutlineWidth style the slice borders.
	OutlineColor string  `yaml:"outline_color"`
	OutlineWidth float64 `yaml:"outline_width"`

	// Mesh selects how meshes follow completion changes.
	Mesh MeshMode `yaml:"mesh"`
}

// DefaultConfig returns the standard badge: 15 slices in 5 categories of
// 3 items each, drawn in a 600×600 area.
func DefaultConfig() Config {
	return Config{
		Size:   600,
		Center: vec.Vec2{X: 300, Y: 300},
		Radius: 280,
		Gap:    1.6,
		Categories: []Category{
			{Title: "Content + UX", Items: []string{
				"Minimaliseer niet-essentiële content",
				"Heldere navigatie & formulieren",
				"Minder tijd nodig = duurzamer",
			}},
			{Title: "Code + Techniek", Items: []string{
				"Gebruik alleen efficiënte scripts",
				"Verminder JavaScript / rommel",
				"Gebruik open source waar mogelijk",
			}},
			{Title: "Beeld + Media", Items: []string{
				"Optimaliseer afbeeldingen",
				"Gebruik lazy loading",
				"Verminder video-gebruik",
			}},
			{Title: "Hosting + Int", Items: []string{
				"Groene hosting",
				"Overweeg statische sites / CDN",
				"Plan een cleaning dag",
			}},
			{Title: "Typografie + Kleur", Items: []string{
				"Gebruik systeemfonts",
				"Vermijd zware contrasten",
				"Gebruik energiezuinige kleuren",
			}},
		},
		Palette: []string{
			"#e9e842", "#e5c143", "#ad8430", // yellow
			"#005234", "#04744d", "#1ea16c", // green
			"#510d33", "#6d2148", "#8d306b", // purple
			"#fba327", "#fdba21", "#fdca9e", // orange
			"#1d1d1e", "#58585a", "#9b9da0", // black
		},
		Neutral:      "#777777",
		OutlineColor: "#000000",
		OutlineWidth: 1.3,
		Mesh:         MeshFixed,
	}
}

// LoadConfig reads configuration overrides in YAML format.  Fields which
// are not present keep their values from [DefaultConfig].
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing badge config: %w", err)
	}
	cfg.Center = vec.Vec2{X: cfg.Size / 2, Y: cfg.Size / 2}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Items returns the number of items per category.
func (c *Config) Items() int {
	if len(c.Categories) == 0 {
		return 0
	}
	return len(c.Categories[0].Items)
}

// Slices returns the total number of slices.
func (c *Config) Slices() int {
	return len(c.Categories) * c.Items()
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Size <= 0 || c.Radius <= 0 {
		return fmt.Errorf("badge size %g and radius %g must be positive", c.Size, c.Radius)
	}
	if c.Radius > c.Size/2 {
		return fmt.Errorf("badge radius %g does not fit into size %g", c.Radius, c.Size)
	}
	if len(c.Categories) == 0 {
		return errors.New("badge needs at least one category")
	}
	items := c.Items()
	if items != pattern.MaxLevel {
		return fmt.Errorf("categories need exactly %d items, got %d", pattern.MaxLevel, items)
	}
	for i, cat := range c.Categories {
		if len(cat.Items) != items {
			return fmt.Errorf("category %d (%q) has %d items, want %d", i, cat.Title, len(cat.Items), items)
		}
	}
	n := c.Slices()
	if c.Gap < 0 || c.Gap >= 360/float64(n) {
		return fmt.Errorf("slice gap %g out of range for %d slices", c.Gap, n)
	}
	if len(c.Palette) != n {
		return fmt.Errorf("palette has %d colours, need %d", len(c.Palette), n)
	}
	for _, s := range append([]string{c.Neutral, c.OutlineColor}, c.Palette...) {
		if _, err := colorful.Hex(s); err != nil {
			return fmt.Errorf("invalid colour %q: %w", s, err)
		}
	}
	if c.OutlineWidth < 0 {
		return fmt.Errorf("outline width %g must not be negative", c.OutlineWidth)
	}
	return nil
}
