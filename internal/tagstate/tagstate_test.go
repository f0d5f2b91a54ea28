package tagstate

import (
	"testing"

	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/layout"
)

func tag(n uint8) geom.TagID {
	id, err := geom.NewTagID(n)
	if err != nil {
		panic(err)
	}
	return id
}

func TestNewSetDefaultsToTagOne(t *testing.T) {
	s := NewSet(layout.MonadTall)
	if s.VisibleCount() != 1 {
		t.Fatalf("VisibleCount() = %d, want 1", s.VisibleCount())
	}
	if !s.Get(tag(1)).Visible {
		t.Fatal("tag 1 should be visible on a fresh set")
	}
}

func TestToggleRefusesLastVisibleTag(t *testing.T) {
	s := NewSet(layout.MonadTall)
	if s.Toggle(tag(1)) {
		t.Fatal("toggling the only visible tag off must be refused")
	}
	if !s.Get(tag(1)).Visible {
		t.Fatal("tag 1 must remain visible after a refused toggle")
	}
}

func TestToggleShowsAndHidesAdditionalTags(t *testing.T) {
	s := NewSet(layout.MonadTall)
	if !s.Toggle(tag(2)) {
		t.Fatal("toggling a second tag on should succeed")
	}
	if s.VisibleCount() != 2 {
		t.Fatalf("VisibleCount() = %d, want 2", s.VisibleCount())
	}
	if !s.Toggle(tag(2)) {
		t.Fatal("toggling tag 2 back off should succeed since tag 1 remains visible")
	}
	if s.VisibleCount() != 1 {
		t.Fatalf("VisibleCount() = %d, want 1", s.VisibleCount())
	}
}

func TestSwitchToMakesExactlyOneTagVisible(t *testing.T) {
	s := NewSet(layout.MonadTall)
	s.Toggle(tag(2))
	s.SwitchTo(tag(3))
	if s.VisibleCount() != 1 || !s.Get(tag(3)).Visible {
		t.Fatalf("SwitchTo should leave only tag 3 visible, got %+v", s)
	}
}

func TestCycleLayoutWraps(t *testing.T) {
	s := NewSet(layout.Floating)
	got := s.CycleLayout(tag(1), true)
	if got != layout.MonadTall {
		t.Fatalf("CycleLayout forward from Floating = %v, want MonadTall", got)
	}
}
