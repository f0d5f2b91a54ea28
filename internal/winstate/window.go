// Package winstate models a single monitor's managed windows: the
// per-window record and the focus-ordered history that owns them.
package winstate

import "github.com/go-rwm/rwm/internal/geom"

// WindowHandle is the X11 window id. It is a plain uint32 (matching
// xproto.Window) so this package never needs to import the X11 transport.
type WindowHandle uint32

// WindowRecord is the engine's view of one managed window: its geometry,
// tag membership and floating flag. Tags must remain non-empty at all
// times after construction.
type WindowRecord struct {
	ID       WindowHandle
	X, Y     int16
	W, H     uint16
	Tags     map[geom.TagID]struct{}
	Floating bool
}

// NewWindowRecord builds a record whose tag set is a copy of the given
// tags. A spawned window inherits the spawning monitor's currently-
// visible tag set.
func NewWindowRecord(id WindowHandle, x, y int16, w, h uint16, tags []geom.TagID) *WindowRecord {
	set := make(map[geom.TagID]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return &WindowRecord{ID: id, X: x, Y: y, W: w, H: h, Tags: set}
}

// HasTag reports whether the window carries the given tag.
func (w *WindowRecord) HasTag(t geom.TagID) bool {
	_, ok := w.Tags[t]
	return ok
}

// SetTags replaces the window's tag set wholesale. Callers are
// responsible for never leaving it empty.
func (w *WindowRecord) SetTags(tags ...geom.TagID) {
	set := make(map[geom.TagID]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	w.Tags = set
}

// VisibleUnder reports whether the window shares at least one tag with
// the visible set.
func (w *WindowRecord) VisibleUnder(visible map[geom.TagID]bool) bool {
	for t := range w.Tags {
		if visible[t] {
			return true
		}
	}
	return false
}

// Rect returns the window's current geometry as a geom.Rect.
func (w *WindowRecord) Rect() geom.Rect {
	return geom.NewRect(w.X, w.Y, w.W, w.H)
}

// ApplyRect writes a new geometry back into the record, e.g. after a
// layout pass or a drag/resize step.
func (w *WindowRecord) ApplyRect(r geom.Rect) {
	w.X, w.Y, w.W, w.H = r.X, r.Y, r.Width, r.Height
}
