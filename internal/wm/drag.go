package wm

import (
	"github.com/go-rwm/rwm/internal/monitor"
	"github.com/go-rwm/rwm/internal/winstate"
	"github.com/go-rwm/rwm/internal/x11"
)

const (
	buttonLeft  = 1
	buttonRight = 3
)

// onButtonPress either starts a modifier-held drag/resize, floating the
// target window if it was tiled so the gesture has something to move
// freely, or treats the click as a plain focus, replaying it
// to the client since the unfocused grab is synchronous. Clicking a
// window on a monitor other than the currently focused one promotes
// that monitor to focused, matching the promotion EnterNotify already
// does for focus-follows-mouse.
func (c *Core) onButtonPress(ev x11.Event) {
	id := winstate.WindowHandle(ev.Window)
	mon, ok := c.Monitors.FocusWindow(id)
	if !ok {
		return
	}

	clean := x11.CleanMask(ev.State, c.numLockMask)
	modHeld := clean == c.Cfg.Get().ModKey

	w, _ := mon.Windows.FindByID(id)
	if modHeld && w != nil {
		w.Floating = true
		c.pointer = pointerState{
			monitor:    mon.ID(),
			window:     id,
			startRootX: ev.RootX,
			startRootY: ev.RootY,
			origRect:   w.Rect(),
		}
		switch ev.Button {
		case buttonLeft:
			c.pointer.mode = modeDragging
		case buttonRight:
			c.pointer.mode = modeResizing
		}
		c.Reconcile()
	}

	if err := c.focusWindow(mon, id); err != nil {
		c.log.Warn().Err(err).Msg("failed to focus window on button press")
	}
	if err := c.X.ReplayPointer(); err != nil {
		c.log.Warn().Err(err).Msg("failed to replay pointer to client")
	}
}

// onMotionNotify applies the pointer delta to the dragged/resized
// window's geometry. Motion-event debouncing (~144Hz) is the event
// loop's responsibility, not the reducer's, so every call here is acted
// on immediately.
func (c *Core) onMotionNotify(ev x11.Event) {
	if c.pointer.mode == modeIdle {
		return
	}
	mon := c.monitorByID(c.pointer.monitor)
	if mon == nil {
		return
	}
	w, ok := mon.Windows.FindByID(c.pointer.window)
	if !ok {
		c.pointer.mode = modeIdle
		return
	}

	dx := ev.RootX - c.pointer.startRootX
	dy := ev.RootY - c.pointer.startRootY

	switch c.pointer.mode {
	case modeDragging:
		w.X = c.pointer.origRect.X + dx
		w.Y = c.pointer.origRect.Y + dy
	case modeResizing:
		newW := int32(c.pointer.origRect.Width) + int32(dx)
		newH := int32(c.pointer.origRect.Height) + int32(dy)
		if newW < 1 {
			newW = 1
		}
		if newH < 1 {
			newH = 1
		}
		w.W, w.H = uint16(newW), uint16(newH)
	}

	// A drag may carry the window onto another monitor; only cross
	// monitors mid-gesture when actually dragging/resizing or
	// follow_cursor is enabled (see DESIGN.md for why plain cursor
	// movement alone does not migrate a non-dragged window). Monitor
	// focus follows the pointer in both gesture modes, but only a dragged
	// window moves with it; a window being resized stays on its monitor.
	if c.Cfg.Get().FollowCursor || c.pointer.mode != modeIdle {
		if target, ok := c.Monitors.FocusPoint(ev.RootX, ev.RootY); ok && target != mon && c.pointer.mode == modeDragging {
			c.moveWindowToMonitor(mon, target, w)
		}
	}

	cfg := c.Cfg.Get()
	if err := c.X.ConfigureWindow(x11.Window(w.ID), w.Rect(), cfg.BorderWidth, true); err != nil {
		c.log.Warn().Err(err).Msg("failed to apply drag/resize geometry")
	}
}

// onButtonRelease ends any in-progress drag/resize and reconciles so
// border colors and visibility reflect the gesture's final state.
func (c *Core) onButtonRelease(x11.Event) {
	if c.pointer.mode == modeIdle {
		return
	}
	c.pointer.mode = modeIdle
	c.Reconcile()
}

func (c *Core) monitorByID(id monitor.ID) *monitor.Monitor {
	m, _ := c.Monitors.ByID(id)
	return m
}

// moveWindowToMonitor relocates w from one monitor's history to
// another's, preserving its current tags, and keeps the pointer gesture
// tracking it.
func (c *Core) moveWindowToMonitor(from, to *monitor.Monitor, w *winstate.WindowRecord) {
	from.Windows.Forget(w.ID, from.VisibleSet())
	to.Windows.PushFront(w)
	to.Windows.SetFocused(w.ID)
	c.pointer.monitor = to.ID()
}
