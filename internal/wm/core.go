// Package wm is the reducer at the center of the window manager: it owns
// all in-memory state (monitors, tags, windows, drag/resize mode) and
// mutates it in response to X11 events and IPC commands, then reconciles
// the result onto the X server.
package wm

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-rwm/rwm/internal/config"
	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/ipc"
	"github.com/go-rwm/rwm/internal/monitor"
	"github.com/go-rwm/rwm/internal/winstate"
	"github.com/go-rwm/rwm/internal/x11"
)

// pointerMode is the drag/resize modal state machine: Idle, Dragging,
// Resizing.
type pointerMode int

const (
	modeIdle pointerMode = iota
	modeDragging
	modeResizing
)

type pointerState struct {
	mode       pointerMode
	window     winstate.WindowHandle
	monitor    monitor.ID
	startRootX int16
	startRootY int16
	origRect   geom.Rect
}

// Core is the reducer. It is not safe for concurrent use; the event loop
// in internal/eventloop calls into it from a single goroutine, matching
// the single-threaded cooperative model the rest of the design assumes.
type Core struct {
	Monitors *monitor.History
	Cfg      *config.Manager
	X        x11.Port
	log      zerolog.Logger

	running bool
	pointer pointerState

	numLockMask geom.ModMask
}

// New builds a Core over an already-connected X11 port and a loaded
// config manager.
func New(x x11.Port, cfg *config.Manager, log zerolog.Logger) *Core {
	return &Core{X: x, Cfg: cfg, log: log, running: true}
}

// Running reports whether the event loop should keep iterating.
func (c *Core) Running() bool { return c.running }

// Quit stops the event loop after the current iteration finishes.
func (c *Core) Quit() { c.running = false }

// Scan discovers connected monitors via RandR and adopts any windows
// already mapped on the root (a rwm restart, or taking over for another
// window manager): monitors first, then existing windows in X stacking
// order.
func (c *Core) Scan() error {
	rects, err := c.X.RandRMonitors()
	if err != nil {
		return fmt.Errorf("querying monitor layout: %w", err)
	}
	if len(rects) == 0 {
		return fmt.Errorf("RandR reported no active monitors")
	}

	mons := make([]*monitor.Monitor, len(rects))
	for i, r := range rects {
		mons[i] = monitor.New(r, c.Cfg.Get().DefaultLayout())
	}
	c.Monitors = monitor.NewHistory(mons)

	windows, err := c.X.QueryTree()
	if err != nil {
		return fmt.Errorf("querying window tree: %w", err)
	}
	for _, w := range windows {
		attrs, err := c.X.GetWindowAttrs(w)
		if err != nil || attrs.OverrideRedirect {
			continue
		}
		const mapStateViewable = 2
		if attrs.MapState != mapStateViewable {
			continue
		}
		if err := c.manage(w); err != nil {
			c.log.Warn().Err(err).Uint32("window", uint32(w)).Msg("failed to adopt existing window")
		}
	}

	c.Reconcile()
	return nil
}

// RefreshMonitors re-queries RandR and merges the result into the
// existing monitor history, preserving windows whose monitor rectangle
// is unchanged.
func (c *Core) RefreshMonitors() error {
	rects, err := c.X.RandRMonitors()
	if err != nil {
		return fmt.Errorf("querying monitor layout: %w", err)
	}
	if len(rects) == 0 {
		return fmt.Errorf("RandR reported no active monitors")
	}
	c.Monitors.Replace(rects, c.Cfg.Get().DefaultLayout())
	c.Reconcile()
	return nil
}

func (c *Core) reply(err error) ipc.Reply {
	if err != nil {
		return ipc.Err(err.Error())
	}
	return ipc.OK()
}
