package layout

import (
	"testing"

	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/winstate"
)

func inputs(n int) []WindowInput {
	out := make([]WindowInput, n)
	for i := range out {
		out[i] = WindowInput{ID: winstate.WindowHandle(i + 1)}
	}
	return out
}

// TestApplyIsTotal checks that for every kind, every window count from
// 1 to 8, and a range of gap/border combinations, Apply returns one
// placement per tiled window, each with a strictly positive width and
// height, and never panics.
func TestApplyIsTotal(t *testing.T) {
	area := geom.NewRect(0, 0, 1920, 1080)
	kinds := []Kind{MonadTall, Grid, Floating}
	gaps := []uint16{0, 4, 50}
	borders := []uint16{0, 2, 10}

	for _, kind := range kinds {
		for n := 1; n <= 8; n++ {
			for _, gap := range gaps {
				for _, border := range borders {
					placements := Apply(kind, inputs(n), area, gap, border)
					if kind == Floating {
						if len(placements) != 0 {
							t.Fatalf("Floating should place nothing, got %d", len(placements))
						}
						continue
					}
					if len(placements) != n {
						t.Fatalf("%v n=%d gap=%d border=%d: got %d placements, want %d",
							kind, n, gap, border, len(placements), n)
					}
					seen := map[winstate.WindowHandle]bool{}
					for _, p := range placements {
						if p.Rect.Width == 0 || p.Rect.Height == 0 {
							t.Fatalf("%v n=%d gap=%d border=%d: non-positive rect %+v", kind, n, gap, border, p.Rect)
						}
						if seen[p.ID] {
							t.Fatalf("duplicate placement for window %d", p.ID)
						}
						seen[p.ID] = true
					}
				}
			}
		}
	}
}

func TestApplySkipsFloatingWindows(t *testing.T) {
	area := geom.NewRect(0, 0, 1920, 1080)
	windows := []WindowInput{
		{ID: 1, Floating: false},
		{ID: 2, Floating: true},
		{ID: 3, Floating: false},
	}
	placements := Apply(MonadTall, windows, area, 0, 0)
	if len(placements) != 2 {
		t.Fatalf("got %d placements, want 2 (floating window excluded)", len(placements))
	}
	for _, p := range placements {
		if p.ID == 2 {
			t.Fatal("floating window must never be placed by a tiling layout")
		}
	}
}

func TestKindRingRotation(t *testing.T) {
	if MonadTall.Next() != Grid || Grid.Next() != Floating || Floating.Next() != MonadTall {
		t.Fatal("Next should cycle MonadTall -> Grid -> Floating -> MonadTall")
	}
	if MonadTall.Prev() != Floating {
		t.Fatal("Prev should wrap backwards")
	}
}

func TestMonadTallSingleWindowFillsArea(t *testing.T) {
	area := geom.NewRect(10, 20, 800, 600)
	placements := Apply(MonadTall, inputs(1), area, 0, 0)
	if len(placements) != 1 {
		t.Fatalf("got %d placements", len(placements))
	}
	if placements[0].Rect != area {
		t.Fatalf("single window rect = %+v, want %+v", placements[0].Rect, area)
	}
}
