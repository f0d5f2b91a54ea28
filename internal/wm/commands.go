package wm

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/ipc"
	"github.com/go-rwm/rwm/internal/winstate"
	"github.com/go-rwm/rwm/internal/x11"
)

// HandleCommand executes one IPC command against the current state and
// returns the reply to send back to the client.
func (c *Core) HandleCommand(cmd ipc.Command) ipc.Reply {
	switch cmd.Kind {
	case ipc.KindQuit:
		c.Quit()
		return ipc.OK()
	case ipc.KindTag:
		return c.reply(c.handleTag(cmd.Tag))
	case ipc.KindWindow:
		return c.reply(c.handleWindow(cmd.Window))
	case ipc.KindLayout:
		return c.reply(c.handleLayout(cmd.Layout))
	case ipc.KindConfig:
		return c.handleConfig(cmd.Config)
	case ipc.KindMonitor:
		return c.reply(c.handleMonitor(cmd.Monitor))
	default:
		return ipc.Err(fmt.Sprintf("unknown command kind %q", cmd.Kind))
	}
}

func (c *Core) handleTag(cmd ipc.TagCommand) error {
	mon := c.Monitors.Focused()
	if mon == nil {
		return fmt.Errorf("no focused monitor")
	}
	switch cmd.Kind {
	case ipc.TagSwitch:
		mon.SwitchTag(cmd.Tag)
	case ipc.TagToggle:
		if !mon.ToggleTag(cmd.Tag) {
			return fmt.Errorf("cannot hide the last visible tag")
		}
	default:
		return fmt.Errorf("unknown tag command %q", cmd.Kind)
	}
	c.Reconcile()
	return nil
}

func (c *Core) handleWindow(cmd ipc.WindowCommand) error {
	mon := c.Monitors.Focused()
	if mon == nil {
		return fmt.Errorf("no focused monitor")
	}
	focused := mon.Windows.GetFocused()

	switch cmd.Kind {
	case ipc.WindowShift:
		mon.Windows.Shift(cmd.Shift, mon.VisibleSet())
		c.Reconcile()
	case ipc.WindowFocus:
		var next *winstate.WindowRecord
		var ok bool
		if cmd.Focus == geom.Up {
			_, next, ok = mon.Windows.FindPrev(mon.VisibleSet())
		} else {
			_, next, ok = mon.Windows.FindNext(mon.VisibleSet())
		}
		if !ok {
			return fmt.Errorf("no other visible window to focus")
		}
		return c.focusWindow(mon, next.ID)
	case ipc.WindowKill:
		if focused == nil {
			return fmt.Errorf("no focused window")
		}
		destroyErr := c.X.DestroyWindow(x11.Window(focused.ID))
		// DestroyNotify is asynchronous; forget the window and focus
		// the next candidate now rather than leaving focus pinned on
		// a window that's being torn down until the event round-trips.
		_, next := mon.Forget(focused.ID)
		if next != nil {
			if err := c.focusWindow(mon, next.ID); err != nil {
				c.log.Warn().Err(err).Msg("failed to focus next window after kill")
			}
		}
		c.Reconcile()
		return destroyErr
	case ipc.WindowToggleFloating:
		if focused == nil {
			return fmt.Errorf("no focused window")
		}
		focused.Floating = !focused.Floating
		c.Reconcile()
	case ipc.WindowSendToTag:
		if focused == nil {
			return fmt.Errorf("no focused window")
		}
		focused.SetTags(cmd.SendToTag)
		mon.Windows.ResetFocus(mon.VisibleSet())
		c.Reconcile()
	case ipc.WindowSendToMonitor:
		if focused == nil {
			return fmt.Errorf("no focused window")
		}
		target := c.Monitors.FocusDirection(cmd.SendToMonitor)
		if target == nil || target == mon {
			return fmt.Errorf("no other monitor to send to")
		}
		c.moveWindowToMonitor(mon, target, focused)
		c.Reconcile()
	default:
		return fmt.Errorf("unknown window command %q", cmd.Kind)
	}
	return nil
}

func (c *Core) handleLayout(cmd ipc.LayoutCommand) error {
	mon := c.Monitors.Focused()
	if mon == nil {
		return fmt.Errorf("no focused monitor")
	}
	switch cmd.Kind {
	case ipc.LayoutNext:
		mon.ChangeLayout(true)
	case ipc.LayoutPrev:
		mon.ChangeLayout(false)
	default:
		return fmt.Errorf("unknown layout command %q", cmd.Kind)
	}
	c.Reconcile()
	return nil
}

func (c *Core) handleConfig(cmd ipc.ConfigCommand) ipc.Reply {
	switch cmd.Kind {
	case ipc.ConfigLoad:
		if err := c.Cfg.Load(cmd.Path); err != nil {
			return ipc.Err(err.Error())
		}
		c.Reconcile()
		return ipc.OK()
	case ipc.ConfigPrint:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c.Cfg.Get()); err != nil {
			return ipc.Err(err.Error())
		}
		return ipc.OKWithPayload(buf.String())
	default:
		return ipc.Err(fmt.Sprintf("unknown config command %q", cmd.Kind))
	}
}

func (c *Core) handleMonitor(cmd ipc.MonitorCommand) error {
	switch cmd.Kind {
	case ipc.MonitorFocus:
		if c.Monitors.FocusDirection(cmd.Focus) == nil {
			return fmt.Errorf("no monitor to focus")
		}
		c.Reconcile()
		return nil
	default:
		return fmt.Errorf("unknown monitor command %q", cmd.Kind)
	}
}
