package layout

import "github.com/go-rwm/rwm/internal/geom"

// monadTall places the first window in a left master column occupying
// 60% of the usable width, and stacks the rest in equal-height rows in a
// column to its right. A single window fills the whole area.
func monadTall(windows []WindowInput, area geom.Rect, gap, border uint16) []Placement {
	n := len(windows)
	out := make([]Placement, 0, n)
	g := int32(gap)

	if n == 1 {
		return append(out, Placement{windows[0].ID, area, 0})
	}

	usableWidth := clampPositive(int32(area.Width) - 2*g - g)
	masterWidth := int32(float64(usableWidth) * 0.6)
	stackWidth := usableWidth - masterWidth

	masterX := area.X + int16(g)
	stackX := masterX + int16(masterWidth) + int16(g)
	usableHeight := clampPositive(int32(area.Height) - 2*g)

	masterRect := geom.NewRect(masterX, area.Y+int16(g), uint16(masterWidth), uint16(usableHeight))
	out = append(out, Placement{windows[0].ID, shrink(masterRect, border), border})

	stackCount := int32(n - 1)
	usableStackHeight := clampPositive(usableHeight - (stackCount-1)*g)
	rowHeight := usableStackHeight / stackCount
	consumed := int32(0)

	for i, w := range windows[1:] {
		h := rowHeight
		if int32(i) == stackCount-1 {
			h = usableStackHeight - consumed
		}
		y := area.Y + int16(g) + int16(int32(i)*(rowHeight+g))
		r := geom.NewRect(stackX, y, uint16(stackWidth), uint16(clampPositive(h)))
		out = append(out, Placement{w.ID, shrink(r, border), border})
		consumed += rowHeight
	}
	return out
}

func clampPositive(v int32) int32 {
	if v < 1 {
		return 1
	}
	return v
}
