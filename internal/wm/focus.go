package wm

import (
	"fmt"

	"github.com/go-rwm/rwm/internal/monitor"
	"github.com/go-rwm/rwm/internal/winstate"
	"github.com/go-rwm/rwm/internal/x11"
)

// focusWindow makes id the focused window on mon: it releases the grabs
// of whichever window was previously focused there and demotes it back to
// the unfocused grab set, releases id's grabs and re-grabs it under the
// focused modifier combinations, sets X input focus, and reconciles
// border colors.
func (c *Core) focusWindow(mon *monitor.Monitor, id winstate.WindowHandle) error {
	prev := mon.Windows.GetFocused()
	mon.Windows.SetFocused(id)

	if prev != nil && prev.ID != id {
		if err := c.X.UngrabButtons(x11.Window(prev.ID)); err != nil {
			c.log.Warn().Err(err).Msg("failed to release button grabs on the previously focused window")
		}
		if err := c.X.GrabButtonUnfocused(x11.Window(prev.ID)); err != nil {
			c.log.Warn().Err(err).Msg("failed to re-grab unfocused bindings on the previously focused window")
		}
	}

	if err := c.X.UngrabButtons(x11.Window(id)); err != nil {
		return fmt.Errorf("releasing unfocused button bindings: %w", err)
	}
	if err := c.X.GrabButtonFocused(x11.Window(id), c.Cfg.Get().ModKey); err != nil {
		return fmt.Errorf("grabbing focused button bindings: %w", err)
	}
	if err := c.X.SetInputFocus(x11.Window(id)); err != nil {
		return fmt.Errorf("setting input focus: %w", err)
	}

	c.Reconcile()
	return nil
}
