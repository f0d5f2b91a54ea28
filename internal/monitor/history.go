package monitor

import (
	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/layout"
	"github.com/go-rwm/rwm/internal/winstate"
)

// History is the ordered set of connected monitors with a focused
// index. Order matches the output order RandR reports, which is also
// the order Direction-based focus navigation walks.
type History struct {
	monitors []*Monitor
	focused  int
}

// NewHistory wraps an already-built monitor list. The first monitor
// starts focused.
func NewHistory(monitors []*Monitor) *History {
	return &History{monitors: monitors}
}

// All returns the monitors in RandR order; read-only for callers.
func (h *History) All() []*Monitor { return h.monitors }

// Len is the number of connected monitors.
func (h *History) Len() int { return len(h.monitors) }

// Focused returns the currently focused monitor, or nil if none are
// connected.
func (h *History) Focused() *Monitor {
	if len(h.monitors) == 0 {
		return nil
	}
	return h.monitors[h.focused]
}

// FocusIndex sets the focused monitor by its position in All().
func (h *History) FocusIndex(i int) {
	if i >= 0 && i < len(h.monitors) {
		h.focused = i
	}
}

// FocusDirection moves focus to the monitor adjacent to the focused one
// in history order, wrapping.
func (h *History) FocusDirection(dir geom.Direction) *Monitor {
	if len(h.monitors) == 0 {
		return nil
	}
	if dir == geom.Up {
		h.focused = (h.focused - 1 + len(h.monitors)) % len(h.monitors)
	} else {
		h.focused = (h.focused + 1) % len(h.monitors)
	}
	return h.monitors[h.focused]
}

// FocusPoint focuses (and returns) the monitor whose rectangle contains
// (x, y), used by the drag/resize crossing check and by manage to pick a
// new window's monitor.
// Returns nil, false if no monitor contains the point.
func (h *History) FocusPoint(x, y int16) (*Monitor, bool) {
	for i, m := range h.monitors {
		if m.ContainsPoint(x, y) {
			h.focused = i
			return m, true
		}
	}
	return nil, false
}

// FocusWindow focuses (and returns) the monitor managing id, without
// changing which window is focused on it. Returns nil, false if no
// monitor manages id.
func (h *History) FocusWindow(id winstate.WindowHandle) (*Monitor, bool) {
	for i, m := range h.monitors {
		if m.ContainsWindow(id) {
			h.focused = i
			return m, true
		}
	}
	return nil, false
}

// ByID returns the monitor with the given stable identity, if still
// connected.
func (h *History) ByID(id ID) (*Monitor, bool) {
	for _, m := range h.monitors {
		if m.ID() == id {
			return m, true
		}
	}
	return nil, false
}

// MonitorOf returns the monitor managing id, if any, without changing
// focus.
func (h *History) MonitorOf(id winstate.WindowHandle) (*Monitor, bool) {
	for _, m := range h.monitors {
		if m.ContainsWindow(id) {
			return m, true
		}
	}
	return nil, false
}

// Replace swaps in a freshly RandR-queried monitor list, carrying over
// existing monitors' windows/tags by matching rectangles so a resolution
// change doesn't stop managing windows. Monitors whose rectangle no
// longer exists have their windows redistributed onto the first
// remaining monitor; brand-new rectangles start empty.
func (h *History) Replace(rects []geom.Rect, defaultLayout layout.Kind) {
	next := make([]*Monitor, 0, len(rects))
	used := make(map[int]bool, len(h.monitors))

	for _, r := range rects {
		if i := h.findByRect(r, used); i >= 0 {
			used[i] = true
			h.monitors[i].Rect = r
			next = append(next, h.monitors[i])
		} else {
			next = append(next, New(r, defaultLayout))
		}
	}

	if len(next) > 0 {
		for i, m := range h.monitors {
			if !used[i] {
				for _, w := range m.Windows.Windows() {
					next[0].Windows.PushFront(w)
				}
			}
		}
	}

	h.monitors = next
	if h.focused >= len(h.monitors) {
		h.focused = 0
	}
}

func (h *History) findByRect(r geom.Rect, used map[int]bool) int {
	for i, m := range h.monitors {
		if !used[i] && m.Rect == r {
			return i
		}
	}
	return -1
}
