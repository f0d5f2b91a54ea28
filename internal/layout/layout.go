// Package layout computes window geometry from a monitor's rectangle and
// its currently visible windows. Every arrangement is a pure function:
// same inputs, same placements, every time.
package layout

import (
	"fmt"

	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/winstate"
)

// Kind selects which arrangement a tag uses. The zero value is MonadTall,
// matching the default layout ring's first entry.
type Kind int

const (
	MonadTall Kind = iota
	Grid
	Floating
)

var ring = [...]Kind{MonadTall, Grid, Floating}

// Next returns the layout that follows k around the fixed ring, wrapping.
func (k Kind) Next() Kind {
	for i, v := range ring {
		if v == k {
			return ring[(i+1)%len(ring)]
		}
	}
	return MonadTall
}

// Prev returns the layout that precedes k around the ring, wrapping.
func (k Kind) Prev() Kind {
	for i, v := range ring {
		if v == k {
			return ring[(i-1+len(ring))%len(ring)]
		}
	}
	return MonadTall
}

func (k Kind) String() string {
	switch k {
	case MonadTall:
		return "MonadTall"
	case Grid:
		return "Grid"
	case Floating:
		return "Floating"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "MonadTall":
		return MonadTall, nil
	case "Grid":
		return Grid, nil
	case "Floating":
		return Floating, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", s)
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// WindowInput is the minimal, read-only projection of a managed window
// the layout engine needs: identity, order (implicit in slice position)
// and whether the user pinned it out of tiling.
type WindowInput struct {
	ID       winstate.WindowHandle
	Floating bool
}

// Placement is one output of an arrangement: the geometry a tiled window
// must be configured to, and the border width that geometry was computed
// against (zero when the window fills the monitor alone, so its edges
// aren't inset for a border nobody else's tile needs to align with).
type Placement struct {
	ID     winstate.WindowHandle
	Rect   geom.Rect
	Border uint16
}

// Apply arranges windows within area according to kind, leaving gap
// pixels between adjacent tiles and around the screen edge, and
// reserving border pixels per window edge for its X border (which is
// drawn outside the window's width/height, so the usable area shrinks by
// 2*border to keep the outer edge aligned). A single tiled window ignores
// gap and border entirely and fills area exactly, since there is no
// neighboring tile or screen edge for either to separate it from.
// Individually floating windows are never placed; Floating-kind monitors
// place nothing. Apply never panics and never returns a non-positive
// rectangle for a non-empty tiled set.
func Apply(kind Kind, windows []WindowInput, area geom.Rect, gap, border uint16) []Placement {
	tiled := make([]WindowInput, 0, len(windows))
	for _, w := range windows {
		if !w.Floating {
			tiled = append(tiled, w)
		}
	}
	if len(tiled) == 0 {
		return nil
	}

	switch kind {
	case MonadTall:
		return monadTall(tiled, area, gap, border)
	case Grid:
		return grid(tiled, area, gap, border)
	case Floating:
		return nil
	default:
		return nil
	}
}

// shrink returns the usable rectangle after subtracting a window's
// border from each side, clamped to a minimum of 1x1 so a tiny monitor
// or a large border/gap configuration never yields a zero or negative
// size.
func shrink(r geom.Rect, border uint16) geom.Rect {
	b := int32(border) * 2
	w := int32(r.Width) - b
	h := int32(r.Height) - b
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return geom.NewRect(r.X, r.Y, uint16(w), uint16(h))
}
