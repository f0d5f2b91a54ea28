// Package tagstate models the nine numbered tags a monitor cycles
// through: which ones are currently visible and which layout each uses.
package tagstate

import (
	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/layout"
)

// State is one tag's visibility flag and layout choice.
type State struct {
	ID      geom.TagID
	Visible bool
	Layout  layout.Kind
}

// Set is the fixed nine-slot array of per-tag state every monitor owns.
// Index i holds tag i+1.
type Set [9]State

// NewSet returns a Set with only tag 1 visible and every tag defaulting
// to defaultLayout, matching rwm's startup default of a fresh monitor
// showing tag 1.
func NewSet(defaultLayout layout.Kind) Set {
	var s Set
	for i := range s {
		id, _ := geom.NewTagID(uint8(i + 1))
		s[i] = State{ID: id, Layout: defaultLayout}
	}
	s[0].Visible = true
	return s
}

func (s *Set) index(id geom.TagID) int { return id.Int() - 1 }

// Get returns the state for tag id.
func (s *Set) Get(id geom.TagID) State { return s[s.index(id)] }

// VisibleSet returns the tags currently visible, in the shape the
// winstate and layout packages expect for visibility queries.
func (s *Set) VisibleSet() map[geom.TagID]bool {
	out := make(map[geom.TagID]bool, 9)
	for _, t := range s {
		if t.Visible {
			out[t.ID] = true
		}
	}
	return out
}

// VisibleCount reports how many tags are currently shown at once.
func (s *Set) VisibleCount() int {
	n := 0
	for _, t := range s {
		if t.Visible {
			n++
		}
	}
	return n
}

// Toggle flips id's visibility, refusing to hide the last visible tag
// so at least one tag is always visible. Returns false if the toggle
// was refused.
func (s *Set) Toggle(id geom.TagID) bool {
	i := s.index(id)
	if s[i].Visible && s.VisibleCount() == 1 {
		return false
	}
	s[i].Visible = !s[i].Visible
	return true
}

// SwitchTo makes id the only visible tag.
func (s *Set) SwitchTo(id geom.TagID) {
	for i := range s {
		s[i].Visible = s[i].ID == id
	}
}

// SetLayout assigns a layout to tag id.
func (s *Set) SetLayout(id geom.TagID, kind layout.Kind) {
	s[s.index(id)].Layout = kind
}

// CycleLayout rotates tag id's layout forward or backward around the
// ring and returns the new layout.
func (s *Set) CycleLayout(id geom.TagID, forward bool) layout.Kind {
	i := s.index(id)
	if forward {
		s[i].Layout = s[i].Layout.Next()
	} else {
		s[i].Layout = s[i].Layout.Prev()
	}
	return s[i].Layout
}
