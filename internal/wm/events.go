package wm

import (
	"github.com/go-rwm/rwm/internal/winstate"
	"github.com/go-rwm/rwm/internal/x11"
)

// HandleEvent dispatches one X11 event to the matching reducer step.
// Unrecognized event kinds are ignored.
func (c *Core) HandleEvent(ev x11.Event) {
	switch ev.Kind {
	case x11.EventMapRequest:
		if err := c.manage(ev.Window); err != nil {
			c.log.Warn().Err(err).Uint32("window", uint32(ev.Window)).Msg("failed to manage new window")
		}

	case x11.EventConfigureRequest:
		c.onConfigureRequest(ev)

	case x11.EventDestroyNotify, x11.EventUnmapNotify:
		c.unmanage(ev.Window)

	case x11.EventButtonPress:
		c.onButtonPress(ev)

	case x11.EventMotionNotify:
		c.onMotionNotify(ev)

	case x11.EventButtonRelease:
		c.onButtonRelease(ev)

	case x11.EventEnterNotify:
		c.onEnterNotify(ev)

	case x11.EventPropertyNotify:
		c.onPropertyNotify(ev)
	}
}

// onPropertyNotify watches for a managed window turning transient after
// it was already mapped (a dialog that reparents itself post-launch):
// WM_CLASS/WM_NAME edits don't feed back into spawn-rule matching, since
// rules only apply at manage time, but WM_TRANSIENT_FOR always floats.
func (c *Core) onPropertyNotify(ev x11.Event) {
	if ev.Atom != c.X.TransientForAtom() {
		return
	}
	id := winstate.WindowHandle(ev.Window)
	mon, ok := c.Monitors.MonitorOf(id)
	if !ok {
		return
	}
	w, ok := mon.Windows.FindByID(id)
	if !ok || w.Floating {
		return
	}
	w.Floating = true
	c.Reconcile()
}

// onConfigureRequest honors a client's own geometry request only for
// floating windows (tiled windows are placed exclusively by the layout
// engine); either way X requires a reply, which ConfigureWindow's ack
// provides by actually issuing the configure.
func (c *Core) onConfigureRequest(ev x11.Event) {
	id := winstate.WindowHandle(ev.Window)
	mon, ok := c.Monitors.MonitorOf(id)
	if !ok {
		return
	}
	w, ok := mon.Windows.FindByID(id)
	if !ok || !w.Floating {
		return
	}
	w.X, w.Y, w.W, w.H = ev.X, ev.Y, ev.Width, ev.Height
	cfg := c.Cfg.Get()
	if err := c.X.ConfigureWindow(ev.Window, w.Rect(), cfg.BorderWidth, false); err != nil {
		c.log.Warn().Err(err).Msg("failed to honor floating window's configure request")
	}
}

// onEnterNotify implements focus-follows-mouse when the config enables
// it, skipping synthetic NotifyInferior crossings.
func (c *Core) onEnterNotify(ev x11.Event) {
	const notifyInferior = 2
	if ev.Detail == notifyInferior {
		return
	}
	if !c.Cfg.Get().FollowCursor {
		return
	}
	if c.pointer.mode != modeIdle {
		return
	}

	id := winstate.WindowHandle(ev.Window)
	mon, ok := c.Monitors.FocusWindow(id)
	if !ok {
		return
	}
	if err := c.focusWindow(mon, id); err != nil {
		c.log.Warn().Err(err).Msg("failed to focus-follow-mouse")
	}
}
