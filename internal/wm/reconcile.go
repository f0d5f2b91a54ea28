package wm

import "github.com/go-rwm/rwm/internal/x11"

// Reconcile pushes the in-memory state of every monitor onto the X
// server: it runs the layout engine, configures geometry for visible
// windows, maps them, unmaps hidden ones, and paints border colors
// according to focus; if the focused monitor ends up with no focused
// window it points input focus at the root window instead of leaving it
// undefined, and flushes the connection so every change above actually
// reaches the server before Reconcile returns. It is idempotent — calling
// it twice in a row with no state change between re-sends the same
// requests and leaves the X server in the same state.
func (c *Core) Reconcile() {
	if c.Monitors == nil {
		return
	}
	cfg := c.Cfg.Get()

	for _, mon := range c.Monitors.All() {
		placements := mon.UpdateLayout(uint16(cfg.Gap), uint16(cfg.BorderWidth))
		placed := make(map[x11.Window]bool, len(placements))

		focused := mon.Windows.GetFocused()

		for _, p := range placements {
			win := x11.Window(p.ID)
			placed[win] = true
			if err := c.X.ConfigureWindow(win, p.Rect, uint32(p.Border), false); err != nil {
				c.log.Warn().Err(err).Msg("failed to configure window geometry")
			}
			if err := c.X.MapWindow(win); err != nil {
				c.log.Warn().Err(err).Msg("failed to map window")
			}
			color := cfg.NormalBorder
			if focused != nil && focused.ID == p.ID {
				color = cfg.FocusedBorder
			}
			if err := c.X.ChangeBorderColor(win, color.ToPixel()); err != nil {
				c.log.Warn().Err(err).Msg("failed to paint window border")
			}
		}

		visible := mon.VisibleSet()
		for _, w := range mon.Windows.Windows() {
			win := x11.Window(w.ID)
			if placed[win] {
				continue
			}
			if w.Floating {
				// Floating windows keep their own geometry and are
				// mapped/unmapped purely by tag visibility.
				if w.VisibleUnder(visible) {
					c.X.MapWindow(win)
					color := cfg.NormalBorder
					if focused != nil && focused.ID == w.ID {
						color = cfg.FocusedBorder
					}
					c.X.ChangeBorderColor(win, color.ToPixel())
				} else {
					c.X.UnmapWindow(win)
				}
				continue
			}
			c.X.UnmapWindow(win)
		}
	}

	if focused := c.Monitors.Focused(); focused != nil && focused.Windows.GetFocused() == nil {
		if err := c.X.SetInputFocus(c.X.Root()); err != nil {
			c.log.Warn().Err(err).Msg("failed to point input focus at root")
		}
	}

	if err := c.X.Flush(); err != nil {
		c.log.Warn().Err(err).Msg("failed to flush X connection")
	}
}
