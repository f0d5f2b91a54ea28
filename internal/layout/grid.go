package layout

import "github.com/go-rwm/rwm/internal/geom"

// grid arranges windows row-major into two columns, left-to-right then
// top-to-bottom; a final odd window out spans both columns in the last
// row so no cell goes empty.
func grid(windows []WindowInput, area geom.Rect, gap, border uint16) []Placement {
	n := len(windows)
	if n == 1 {
		return []Placement{{windows[0].ID, area, 0}}
	}
	g := int32(gap)

	cols := 2
	rows := (n + cols - 1) / cols

	usableWidth := clampPositive(int32(area.Width) - 2*g - int32(cols-1)*g)
	usableHeight := clampPositive(int32(area.Height) - 2*g - int32(rows-1)*g)
	colWidth := usableWidth / int32(cols)
	rowHeight := usableHeight / int32(rows)

	out := make([]Placement, 0, n)
	for i, w := range windows {
		row := i / cols
		col := i % cols

		x := area.X + int16(g) + int16(int32(col)*(colWidth+g))
		y := area.Y + int16(g) + int16(int32(row)*(rowHeight+g))
		width := colWidth

		lastRowOddOneOut := cols == 2 && row == rows-1 && n%cols == 1 && col == 0
		if lastRowOddOneOut {
			width = usableWidth
		}

		r := geom.NewRect(x, y, uint16(clampPositive(width)), uint16(clampPositive(rowHeight)))
		out = append(out, Placement{w.ID, shrink(r, border), border})
	}
	return out
}
