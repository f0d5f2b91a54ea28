package monitor

import (
	"testing"

	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/layout"
	"github.com/go-rwm/rwm/internal/winstate"
)

func tag(n uint8) geom.TagID {
	id, err := geom.NewTagID(n)
	if err != nil {
		panic(err)
	}
	return id
}

func TestManageTagsNewWindowWithCurrentTag(t *testing.T) {
	m := New(geom.NewRect(0, 0, 1920, 1080), layout.MonadTall)
	w := winstate.NewWindowRecord(1, 0, 0, 100, 100, nil)
	m.Manage(w)

	if !w.HasTag(tag(1)) {
		t.Fatalf("window should inherit tag 1, got %+v", w.Tags)
	}
	if got := m.Windows.GetFocused(); got == nil || got.ID != 1 {
		t.Fatal("newly managed window should be focused")
	}
}

func TestSwitchTagChangesVisibilityAndFocus(t *testing.T) {
	m := New(geom.NewRect(0, 0, 1920, 1080), layout.MonadTall)
	w1 := winstate.NewWindowRecord(1, 0, 0, 100, 100, nil)
	m.Manage(w1)
	m.SwitchTag(tag(2))
	w2 := winstate.NewWindowRecord(2, 0, 0, 100, 100, nil)
	m.Manage(w2)

	if m.CurrentTag() != tag(2) {
		t.Fatalf("CurrentTag() = %v, want 2", m.CurrentTag())
	}
	visible := m.Windows.IterOnTags(m.VisibleSet())
	if len(visible) != 1 || visible[0].ID != 2 {
		t.Fatalf("only window 2 should be visible on tag 2, got %+v", visible)
	}

	m.SwitchTag(tag(1))
	if got := m.Windows.GetFocused(); got == nil || got.ID != 1 {
		t.Fatalf("switching back to tag 1 should refocus window 1, got %v", got)
	}
}

func TestForgetReturnsNextFocus(t *testing.T) {
	m := New(geom.NewRect(0, 0, 1920, 1080), layout.MonadTall)
	m.Manage(winstate.NewWindowRecord(1, 0, 0, 100, 100, nil))
	m.Manage(winstate.NewWindowRecord(2, 0, 0, 100, 100, nil))

	removed, next := m.Forget(2)
	if removed == nil || removed.ID != 2 {
		t.Fatalf("removed = %v, want window 2", removed)
	}
	if next == nil || next.ID != 1 {
		t.Fatalf("next focus = %v, want window 1", next)
	}
	if got := m.Windows.GetFocused(); got == nil || got.ID != 1 {
		t.Fatal("Forget on Monitor should leave the returned next window focused")
	}
}

func TestUpdateLayoutWritesBackGeometry(t *testing.T) {
	m := New(geom.NewRect(0, 0, 1000, 1000), layout.MonadTall)
	m.Manage(winstate.NewWindowRecord(1, 0, 0, 1, 1, nil))
	placements := m.UpdateLayout(0, 0)
	if len(placements) != 1 {
		t.Fatalf("got %d placements", len(placements))
	}
	w, _ := m.Windows.FindByID(1)
	if w.Rect() != placements[0].Rect {
		t.Fatalf("window geometry %v was not written back, want %v", w.Rect(), placements[0].Rect)
	}
}

func TestHistoryFocusDirectionWraps(t *testing.T) {
	m1 := New(geom.NewRect(0, 0, 1920, 1080), layout.MonadTall)
	m2 := New(geom.NewRect(1920, 0, 1920, 1080), layout.MonadTall)
	h := NewHistory([]*Monitor{m1, m2})

	if got := h.FocusDirection(geom.Down); got != m2 {
		t.Fatal("FocusDirection(Down) should move to the second monitor")
	}
	if got := h.FocusDirection(geom.Down); got != m1 {
		t.Fatal("FocusDirection(Down) should wrap back to the first monitor")
	}
}

func TestHistoryFocusPoint(t *testing.T) {
	m1 := New(geom.NewRect(0, 0, 1920, 1080), layout.MonadTall)
	m2 := New(geom.NewRect(1920, 0, 1920, 1080), layout.MonadTall)
	h := NewHistory([]*Monitor{m1, m2})

	got, ok := h.FocusPoint(2000, 10)
	if !ok || got != m2 {
		t.Fatalf("FocusPoint should resolve to the second monitor, got %v, %v", got, ok)
	}
}

func TestHistoryReplacePreservesWindowsByRect(t *testing.T) {
	m1 := New(geom.NewRect(0, 0, 1920, 1080), layout.MonadTall)
	m1.Manage(winstate.NewWindowRecord(1, 0, 0, 100, 100, nil))
	h := NewHistory([]*Monitor{m1})

	h.Replace([]geom.Rect{geom.NewRect(0, 0, 1920, 1080)}, layout.MonadTall)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if !h.All()[0].ContainsWindow(1) {
		t.Fatal("window 1 should survive a Replace that keeps the same rectangle")
	}
}
