// Package geom holds the value types shared across the window-management
// engine: rectangles, directions, tag identifiers, colors and modifier
// masks. None of these depend on X11 or on each other's owning packages.
package geom

import "fmt"

// Rect is an axis-aligned rectangle in root-window coordinates, matching
// the (x, y, width, height) shape X11 itself uses for window geometry.
type Rect struct {
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

// NewRect builds a Rect from raw coordinates.
func NewRect(x, y int16, w, h uint16) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// ContainsPoint reports whether (x, y) falls within the rectangle,
// inclusive of its edges.
func (r Rect) ContainsPoint(x, y int16) bool {
	return x >= r.X && int32(x) <= int32(r.X)+int32(r.Width) &&
		y >= r.Y && int32(y) <= int32(r.Y)+int32(r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
