// Package config loads and hot-reloads the TOML file that controls
// border appearance, the modifier key, the starting layout, spawn rules
// and gap/follow-cursor behavior.
package config

import (
	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/layout"
)

// Config is the full set of user-tunable knobs, persisted as TOML.
// Only the first entry of Layouts is used, as the layout new monitors and
// tags start on; Layout Next/Prev cycle layout.Kind's fixed
// MonadTall -> Grid -> Floating ring and do not follow the order or
// membership of Layouts.
type Config struct {
	BorderWidth   uint32          `toml:"border_width"`
	FocusedBorder geom.Color      `toml:"focused_border"`
	NormalBorder  geom.Color      `toml:"normal_border"`
	ModKey        geom.ModMask    `toml:"mod_key"`
	Layouts       []layout.Kind   `toml:"layouts"`
	FollowCursor  bool            `toml:"follow_cursor"`
	Gap           uint32          `toml:"gap"`
	Rules         []SpawnRule     `toml:"rules"`
}

// Default returns the configuration rwm starts with when no config file
// is present yet, matching the upstream project's built-in defaults.
func Default() *Config {
	return &Config{
		BorderWidth:   4,
		FocusedBorder: geom.NewColor(0x00, 0x00, 0xFF),
		NormalBorder:  geom.NewColor(0xD3, 0xD3, 0xD3),
		ModKey:        geom.ModMask1,
		Layouts:       []layout.Kind{layout.MonadTall, layout.Grid, layout.Floating},
		FollowCursor:  true,
		Gap:           0,
		Rules:         nil,
	}
}

// DefaultLayout is the layout newly discovered monitors and tags start
// on: the first entry of the configured ring, falling back to
// MonadTall if the ring is empty (which Validate forbids, but Default
// callers that build a Config by hand may still hit).
func (c *Config) DefaultLayout() layout.Kind {
	if len(c.Layouts) == 0 {
		return layout.MonadTall
	}
	return c.Layouts[0]
}
