// Package monitor ties a physical screen's geometry to the tag and
// window state shown on it, and reconciles window geometry through the
// layout engine.
package monitor

import (
	"math/rand"

	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/layout"
	"github.com/go-rwm/rwm/internal/tagstate"
	"github.com/go-rwm/rwm/internal/winstate"
)

// ID identifies a monitor for the lifetime of the process. It is a
// random value, not an index, so a monitor reference taken before an
// unplug/replug or a monitors-list reshuffle stays meaningful after.
type ID uint32

// NewID draws a fresh random monitor id.
func NewID() ID { return ID(rand.Uint32()) }

// Monitor owns one physical output's windows, tags and layout choice,
// and its rectangle in the shared X11 coordinate space.
type Monitor struct {
	id      ID
	Rect    geom.Rect
	Windows *winstate.History
	Tags    tagstate.Set

	// current is the most recently switched-to tag: it selects which
	// tag's layout tiles the screen when more than one tag is visible at
	// once.
	current geom.TagID
}

// New builds a monitor at rect with a fresh identity, tag 1 visible and
// defaultLayout applied to every tag.
func New(rect geom.Rect, defaultLayout layout.Kind) *Monitor {
	one, _ := geom.NewTagID(1)
	return &Monitor{
		id:      NewID(),
		Rect:    rect,
		Windows: winstate.NewHistory(),
		Tags:    tagstate.NewSet(defaultLayout),
		current: one,
	}
}

// ID returns the monitor's stable identity.
func (m *Monitor) ID() ID { return m.id }

// CurrentTag is the most recently switched-to tag, whose layout tiles
// the screen.
func (m *Monitor) CurrentTag() geom.TagID { return m.current }

// ContainsPoint reports whether (x, y) falls within the monitor's
// rectangle, used to resolve pointer-driven focus.
func (m *Monitor) ContainsPoint(x, y int16) bool { return m.Rect.ContainsPoint(x, y) }

// ContainsWindow reports whether id is managed on this monitor.
func (m *Monitor) ContainsWindow(id winstate.WindowHandle) bool { return m.Windows.Contains(id) }

// VisibleSet returns the tags currently shown on this monitor.
func (m *Monitor) VisibleSet() map[geom.TagID]bool { return m.Tags.VisibleSet() }

// SwitchTag makes tag the only visible tag and the new current tag.
func (m *Monitor) SwitchTag(tag geom.TagID) {
	m.Tags.SwitchTo(tag)
	m.current = tag
	m.Windows.ResetFocus(m.VisibleSet())
}

// ToggleTag flips tag's visibility (refusing to hide the last visible
// tag) and, if it was just shown, makes it current.
func (m *Monitor) ToggleTag(tag geom.TagID) bool {
	if !m.Tags.Toggle(tag) {
		return false
	}
	if m.Tags.Get(tag).Visible {
		m.current = tag
	}
	m.Windows.ResetFocus(m.VisibleSet())
	return true
}

// ChangeLayout cycles the current tag's layout forward or backward.
func (m *Monitor) ChangeLayout(forward bool) layout.Kind {
	return m.Tags.CycleLayout(m.current, forward)
}

// Manage adds w to this monitor's history, tagging it with every tag
// currently visible here if it carries no tags of its own yet, and
// focuses it.
func (m *Monitor) Manage(w *winstate.WindowRecord) {
	if len(w.Tags) == 0 {
		tags := make([]geom.TagID, 0, 9)
		for t := range m.VisibleSet() {
			tags = append(tags, t)
		}
		w.SetTags(tags...)
	}
	m.Windows.PushFront(w)
	m.Windows.SetFocused(w.ID)
}

// Forget removes id from this monitor and returns the record that
// should be focused next, if any.
func (m *Monitor) Forget(id winstate.WindowHandle) (removed *winstate.WindowRecord, nextFocus *winstate.WindowRecord) {
	removed, nextFocus = m.Windows.Forget(id, m.VisibleSet())
	if nextFocus != nil {
		m.Windows.SetFocused(nextFocus.ID)
	}
	return removed, nextFocus
}

// UpdateLayout runs the layout engine over the windows visible on this
// monitor and returns the placements the X11 port must apply.
func (m *Monitor) UpdateLayout(gap, border uint16) []layout.Placement {
	visible := m.Tags.Get(m.current).Layout
	windows := m.Windows.IterOnTags(m.VisibleSet())
	inputs := make([]layout.WindowInput, len(windows))
	for i, w := range windows {
		inputs[i] = layout.WindowInput{ID: w.ID, Floating: w.Floating}
	}
	placements := layout.Apply(visible, inputs, m.Rect, gap, border)
	for _, p := range placements {
		if w, ok := m.Windows.FindByID(p.ID); ok {
			w.ApplyRect(p.Rect)
		}
	}
	return placements
}
