package winstate

import (
	"testing"

	"github.com/go-rwm/rwm/internal/geom"
)

func tag(n uint8) geom.TagID {
	id, err := geom.NewTagID(n)
	if err != nil {
		panic(err)
	}
	return id
}

func visibleSet(tags ...uint8) map[geom.TagID]bool {
	out := make(map[geom.TagID]bool, len(tags))
	for _, t := range tags {
		out[tag(t)] = true
	}
	return out
}

func mustWindow(id WindowHandle, tags ...uint8) *WindowRecord {
	ids := make([]geom.TagID, len(tags))
	for i, t := range tags {
		ids[i] = tag(t)
	}
	return NewWindowRecord(id, 0, 0, 100, 100, ids)
}

func TestHistoryPushFrontKeepsFocusOnSameRecord(t *testing.T) {
	h := NewHistory()
	w1 := mustWindow(1, 1)
	w2 := mustWindow(2, 1)
	h.PushFront(w1)
	h.SetFocused(1)
	h.PushFront(w2)

	if got := h.GetFocused(); got == nil || got.ID != 1 {
		t.Fatalf("GetFocused() = %v, want window 1", got)
	}
	if h.Windows()[0].ID != 2 || h.Windows()[1].ID != 1 {
		t.Fatalf("unexpected order: %+v", h.Windows())
	}
}

func TestHistoryFindNextWrapsOverHiddenWindows(t *testing.T) {
	h := NewHistory()
	h.PushFront(mustWindow(3, 2))
	h.PushFront(mustWindow(2, 1))
	h.PushFront(mustWindow(1, 1))
	h.SetFocused(1)

	vis := visibleSet(1)
	idx, w, ok := h.FindNext(vis)
	if !ok || w.ID != 2 {
		t.Fatalf("FindNext = %v (idx %d), want window 2", w, idx)
	}

	h.SetFocused(2)
	_, w, ok = h.FindNext(vis)
	if !ok || w.ID != 1 {
		t.Fatalf("FindNext wrap = %v, want window 1 (window 3 is on a hidden tag)", w)
	}
}

func TestHistoryFindNextNoVisibleWindows(t *testing.T) {
	h := NewHistory()
	h.PushFront(mustWindow(1, 2))
	if _, _, ok := h.FindNext(visibleSet(1)); ok {
		t.Fatal("expected no visible window")
	}
}

func TestHistoryShiftPreservesFocus(t *testing.T) {
	h := NewHistory()
	h.PushFront(mustWindow(2, 1))
	h.PushFront(mustWindow(1, 1))
	h.SetFocused(1)

	vis := visibleSet(1)
	h.Shift(geom.Down, vis)

	focused := h.GetFocused()
	if focused == nil || focused.ID != 1 {
		t.Fatalf("focus should remain on window 1 after shift, got %v", focused)
	}
	if h.Windows()[0].ID != 2 || h.Windows()[1].ID != 1 {
		t.Fatalf("shift down should move window 1 behind window 2, got %+v", h.Windows())
	}
}

func TestHistoryForgetFocusedPicksNextVisible(t *testing.T) {
	h := NewHistory()
	h.PushFront(mustWindow(3, 1))
	h.PushFront(mustWindow(2, 1))
	h.PushFront(mustWindow(1, 1))
	h.SetFocused(1)

	vis := visibleSet(1)
	removed, next := h.Forget(1, vis)
	if removed == nil || removed.ID != 1 {
		t.Fatalf("removed = %v, want window 1", removed)
	}
	if next == nil || next.ID != 2 {
		t.Fatalf("next focus = %v, want window 2", next)
	}
	if h.GetFocused() != nil {
		t.Fatal("Forget must leave the cursor unset; caller re-focuses explicitly")
	}
	if h.Contains(1) {
		t.Fatal("window 1 should no longer be managed")
	}
}

func TestHistoryForgetUnfocusedKeepsCursorOnSameRecord(t *testing.T) {
	h := NewHistory()
	h.PushFront(mustWindow(2, 1))
	h.PushFront(mustWindow(1, 1))
	h.SetFocused(1)

	removed, next := h.Forget(2, visibleSet(1))
	if removed == nil || removed.ID != 2 {
		t.Fatalf("removed = %v, want window 2", removed)
	}
	if next != nil {
		t.Fatalf("forgetting an unfocused window should report no next focus, got %v", next)
	}
}

func TestHistoryForgetLastWindow(t *testing.T) {
	h := NewHistory()
	h.PushFront(mustWindow(1, 1))
	h.SetFocused(1)

	removed, next := h.Forget(1, visibleSet(1))
	if removed == nil || removed.ID != 1 {
		t.Fatal("expected window 1 removed")
	}
	if next != nil {
		t.Fatal("no windows remain, next focus must be nil")
	}
	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryIterOnTagsFiltersHidden(t *testing.T) {
	h := NewHistory()
	h.PushFront(mustWindow(2, 2))
	h.PushFront(mustWindow(1, 1))

	got := h.IterOnTags(visibleSet(1))
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("IterOnTags = %+v, want only window 1", got)
	}
}

func TestHistoryResetFocusSkipsHidden(t *testing.T) {
	h := NewHistory()
	h.PushFront(mustWindow(2, 1))
	h.PushFront(mustWindow(1, 2))

	h.ResetFocus(visibleSet(1))
	if got := h.GetFocused(); got == nil || got.ID != 2 {
		t.Fatalf("ResetFocus() focused = %v, want window 2", got)
	}
}
