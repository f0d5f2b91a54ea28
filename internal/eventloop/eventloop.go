// Package eventloop drives the reducer: it multiplexes X11 events, IPC
// connections and a stop request onto the single goroutine the
// reducer requires, debouncing pointer motion so it doesn't flood the X
// connection with configure requests.
package eventloop

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/go-rwm/rwm/internal/ipc"
	"github.com/go-rwm/rwm/internal/wm"
	"github.com/go-rwm/rwm/internal/x11"
)

// motionInterval caps how often consecutive MotionNotify events are
// acted on (~144Hz) so a fast mouse doesn't flood the X connection with
// configure requests.
const motionInterval = time.Second / 144

// Loop owns the select over every event source the reducer reacts to.
type Loop struct {
	core *wm.Core
	x    x11.Port
	ipc  *ipc.Server
	log  zerolog.Logger

	lastMotion time.Time
	stop       chan struct{}
}

// New builds a Loop. core must already have Scan'd its initial state.
func New(core *wm.Core, x x11.Port, server *ipc.Server, log zerolog.Logger) *Loop {
	return &Loop{core: core, x: x, ipc: server, log: log, stop: make(chan struct{})}
}

// RequestStop wakes a blocked Run out of its select so a signal handler
// calling core.Quit() (which only flips a flag Run checks between
// iterations) actually takes effect immediately.
func (l *Loop) RequestStop() {
	select {
	case l.stop <- struct{}{}:
	default:
	}
}

// Run blocks until the core's Quit command fires or a fatal error is
// reported on either the X11 or IPC error channel. Before serving any IPC
// client it drains whatever X11 backlog is already queued: a client
// command can itself trigger X traffic (a Reconcile), so letting it
// interleave with undrained events would let the reducer observe a
// command's effects out of order with events that preceded it.
func (l *Loop) Run() error {
	xEvents := l.x.Events()
	xErrs := l.x.Errs()
	conns := l.ipc.Conns()
	ipcErrs := l.ipc.Errs()

	for l.core.Running() {
		select {
		case ev, ok := <-xEvents:
			if !ok {
				return nil
			}
			l.handleX11(ev)

		case err := <-xErrs:
			return err

		case conn, ok := <-conns:
			if !ok {
				return nil
			}
			l.drainX11(xEvents)
			l.handleIPC(conn)

		case err := <-ipcErrs:
			return err

		case <-l.stop:
			return nil
		}
	}
	return nil
}

// drainX11 services every X11 event already queued without blocking, so
// a command about to run sees the reducer caught up on everything that
// happened before the command arrived.
func (l *Loop) drainX11(xEvents <-chan x11.Event) {
	for {
		select {
		case ev, ok := <-xEvents:
			if !ok {
				return
			}
			l.handleX11(ev)
		default:
			return
		}
	}
}

func (l *Loop) handleX11(ev x11.Event) {
	if ev.Kind == x11.EventMotionNotify {
		now := time.Now()
		if now.Sub(l.lastMotion) < motionInterval {
			return
		}
		l.lastMotion = now
	}
	l.core.HandleEvent(ev)
}

// handleIPC serves exactly one command from conn and closes it, keeping
// every command's effect on core confined to this single goroutine.
func (l *Loop) handleIPC(conn *ipc.Conn) {
	defer conn.Close()

	cmd, err := conn.ReadCommand()
	if err != nil {
		l.log.Warn().Err(err).Msg("failed to read IPC command")
		return
	}
	reply := l.core.HandleCommand(cmd)
	if err := conn.WriteReply(reply); err != nil {
		l.log.Warn().Err(err).Msg("failed to write IPC reply")
	}
}
