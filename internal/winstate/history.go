package winstate

import "github.com/go-rwm/rwm/internal/geom"

// History is the per-monitor, MRU-ordered sequence of managed windows
// with a focus cursor. Index 0 is the front (most-recently-focused)
// slot. cur, when non-nil, always points at
// a window visible under the last tag set passed to a focus-changing
// method — callers must not assume it stays valid across a tag-visibility
// change without calling ResetFocus.
type History struct {
	windows []*WindowRecord
	cur     *int
}

// NewHistory returns an empty history with no focused window.
func NewHistory() *History {
	return &History{}
}

// Windows exposes the backing slice in history order (front-to-back);
// callers must treat it as read-only.
func (h *History) Windows() []*WindowRecord { return h.windows }

// Len is the number of managed windows in this monitor's history.
func (h *History) Len() int { return len(h.windows) }

// Contains reports whether id is currently managed on this monitor.
func (h *History) Contains(id WindowHandle) bool {
	_, ok := h.indexOf(id)
	return ok
}

func (h *History) indexOf(id WindowHandle) (int, bool) {
	for i, w := range h.windows {
		if w.ID == id {
			return i, true
		}
	}
	return 0, false
}

// FindByID returns the window record for id, if managed here.
func (h *History) FindByID(id WindowHandle) (*WindowRecord, bool) {
	i, ok := h.indexOf(id)
	if !ok {
		return nil, false
	}
	return h.windows[i], true
}

// IterOnTags returns, in history order, the windows that are visible
// under the given tag set — the set the layout engine tiles.
func (h *History) IterOnTags(visible map[geom.TagID]bool) []*WindowRecord {
	out := make([]*WindowRecord, 0, len(h.windows))
	for _, w := range h.windows {
		if w.VisibleUnder(visible) {
			out = append(out, w)
		}
	}
	return out
}

// PushFront prepends w to the history. If a cursor is set, it is shifted
// so it keeps pointing at the same record. PushFront never changes
// focus on its own.
func (h *History) PushFront(w *WindowRecord) {
	h.windows = append([]*WindowRecord{w}, h.windows...)
	if h.cur != nil {
		next := *h.cur + 1
		h.cur = &next
	}
}

// GetFocused returns the currently focused record, or nil.
func (h *History) GetFocused() *WindowRecord {
	if h.cur == nil {
		return nil
	}
	return h.windows[*h.cur]
}

// SetFocused points the cursor at id's record, if managed here; no-op
// otherwise.
func (h *History) SetFocused(id WindowHandle) {
	if i, ok := h.indexOf(id); ok {
		idx := i
		h.cur = &idx
	}
}

// ResetFocus sets the cursor to the first visible window, or none.
func (h *History) ResetFocus(visible map[geom.TagID]bool) {
	for i, w := range h.windows {
		if w.VisibleUnder(visible) {
			idx := i
			h.cur = &idx
			return
		}
	}
	h.cur = nil
}

func isVisible(w *WindowRecord, visible map[geom.TagID]bool) bool {
	return w.VisibleUnder(visible)
}

// FindNext returns the next visible window after the cursor, wrapping,
// or the first visible window if there is no cursor. Returns false iff no
// window is visible under the given tag set.
func (h *History) FindNext(visible map[geom.TagID]bool) (int, *WindowRecord, bool) {
	findFirst := func() (int, *WindowRecord, bool) {
		for i, w := range h.windows {
			if isVisible(w, visible) {
				return i, w, true
			}
		}
		return 0, nil, false
	}

	if h.cur == nil {
		return findFirst()
	}
	for i := *h.cur + 1; i < len(h.windows); i++ {
		if isVisible(h.windows[i], visible) {
			return i, h.windows[i], true
		}
	}
	return findFirst()
}

// FindPrev returns the previous visible window before the cursor,
// wrapping, or the last visible window scanning from the end if there is
// no cursor.
func (h *History) FindPrev(visible map[geom.TagID]bool) (int, *WindowRecord, bool) {
	start := len(h.windows) - 1
	if h.cur != nil {
		start = *h.cur - 1
	}
	for i := start; i >= 0; i-- {
		if isVisible(h.windows[i], visible) {
			return i, h.windows[i], true
		}
	}
	// Wrap: scan from the end down to (and including) the cursor.
	if h.cur != nil {
		for i := len(h.windows) - 1; i >= *h.cur; i-- {
			if isVisible(h.windows[i], visible) {
				return i, h.windows[i], true
			}
		}
	}
	return 0, nil, false
}

// Shift swaps the focused record with the one FindNext/FindPrev would
// return, and the focus index follows the moved record so repeated
// shifts keep traversing.
func (h *History) Shift(dir geom.Direction, visible map[geom.TagID]bool) {
	if h.cur == nil {
		return
	}
	var (
		otherIdx int
		ok       bool
	)
	if dir == geom.Up {
		otherIdx, _, ok = h.FindPrev(visible)
	} else {
		otherIdx, _, ok = h.FindNext(visible)
	}
	if !ok {
		return
	}
	cur := *h.cur
	h.windows[cur], h.windows[otherIdx] = h.windows[otherIdx], h.windows[cur]
	idx := otherIdx
	h.cur = &idx
}

// Forget removes id from the history. It returns the removed record (if
// any) and, only when the removed record was the focused one, the record
// that should become focused next, computed by scanning forward from the
// removed position and wrapping — the caller decides whether to adopt
// nextFocus; in that case the cursor is left unset (none) and re-focusing
// is the caller's job. Removing any other record keeps the cursor on the
// same focused record and reports no nextFocus.
func (h *History) Forget(id WindowHandle, visible map[geom.TagID]bool) (removed *WindowRecord, nextFocus *WindowRecord) {
	pos, ok := h.indexOf(id)
	if !ok {
		return nil, nil
	}

	cur := h.cur
	h.cur = nil

	removed = h.windows[pos]
	h.windows = append(h.windows[:pos], h.windows[pos+1:]...)

	if len(h.windows) == 0 {
		return removed, nil
	}

	if cur == nil {
		return removed, nil
	}

	switch {
	case pos < *cur:
		shifted := *cur - 1
		h.cur = &shifted
	case pos > *cur:
		h.cur = cur
	default:
		// The removed window was focused: find the next visible window
		// starting at the vacated position, wrapping around.
		n := len(h.windows)
		for i := 0; i < n; i++ {
			idx := (*cur + i) % n
			if isVisible(h.windows[idx], visible) {
				nextFocus = h.windows[idx]
				break
			}
		}
	}
	return removed, nextFocus
}
