package wm

import (
	"fmt"

	"github.com/go-rwm/rwm/internal/config"
	"github.com/go-rwm/rwm/internal/winstate"
	"github.com/go-rwm/rwm/internal/x11"
)

// manage adopts an unmanaged window: reads its identity properties,
// places it on (and focuses) the monitor whose rectangle contains its
// origin, falling back to the focused monitor, tags it with that
// monitor's visible tags unless the first matching spawn rule supplies
// its own, grabs the unfocused button bindings and focuses it.
func (c *Core) manage(win x11.Window) error {
	mon := c.Monitors.Focused()
	if mon == nil {
		return fmt.Errorf("no monitor to manage window %d on", win)
	}

	info, err := c.X.GetWindowInfo(win)
	if err != nil {
		return fmt.Errorf("reading window properties: %w", err)
	}
	if m, ok := c.Monitors.FocusPoint(info.X, info.Y); ok {
		mon = m
	}

	rec := winstate.NewWindowRecord(winstate.WindowHandle(win), info.X, info.Y, info.Width, info.Height, nil)

	if rule, ok := config.MatchRule(c.Cfg.Get().Rules, info.Class, info.Instance, info.Name); ok {
		rec.Floating = rule.Floating
		if len(rule.Tags) > 0 {
			rec.SetTags(rule.Tags...)
		}
	}
	if info.IsTransient {
		rec.Floating = true
	}

	prev := mon.Windows.GetFocused()
	mon.Manage(rec)
	if prev != nil {
		// Manage moved the cursor onto rec; point it back so focusWindow
		// below sees prev as the previously focused window and demotes it.
		mon.Windows.SetFocused(prev.ID)
	}

	if err := c.X.GrabButtonUnfocused(win); err != nil {
		c.log.Warn().Err(err).Msg("failed to grab unfocused button bindings")
	}
	if err := c.X.SelectPropertyNotify(win); err != nil {
		c.log.Warn().Err(err).Msg("failed to watch window properties")
	}
	if err := c.X.MapWindow(win); err != nil {
		return fmt.Errorf("mapping window: %w", err)
	}
	return c.focusWindow(mon, rec.ID)
}

// unmanage removes a window from whichever monitor tracks it and
// refocuses the next candidate, if any.
func (c *Core) unmanage(win x11.Window) {
	id := winstate.WindowHandle(win)
	mon, ok := c.Monitors.MonitorOf(id)
	if !ok {
		return
	}
	_, next := mon.Forget(id)
	if next != nil {
		if err := c.focusWindow(mon, next.ID); err != nil {
			c.log.Warn().Err(err).Msg("failed to refocus after unmanage")
		}
	}
	c.Reconcile()
}
