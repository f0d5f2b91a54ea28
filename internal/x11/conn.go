package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/rs/zerolog"

	"github.com/go-rwm/rwm/internal/geom"
)

// XConn is the production Port backed by a real X11 connection.
type XConn struct {
	conn *xgb.Conn
	util *xgbutil.XUtil // separate handle used only for cursor themes
	root xproto.Window
	atoms atoms

	numLockMask geom.ModMask

	events chan Event
	errs   chan error

	log zerolog.Logger
}

// New returns an unconnected XConn; call Connect before using it.
func New(log zerolog.Logger) *XConn {
	return &XConn{log: log, events: make(chan Event, 64), errs: make(chan error, 1)}
}

func (x *XConn) Connect(displayName string) error {
	conn, err := xgb.NewConnDisplay(displayName)
	if err != nil {
		return fmt.Errorf("connecting to X display: %w", err)
	}
	if err := randr.Init(conn); err != nil {
		conn.Close()
		return fmt.Errorf("initializing RandR extension: %w", err)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	x.conn = conn
	x.root = screen.Root

	atomTable, err := internAtoms(conn)
	if err != nil {
		conn.Close()
		return fmt.Errorf("interning atoms: %w", err)
	}
	x.atoms = atomTable

	numLock, err := detectNumLockMask(conn, setup)
	if err != nil {
		x.log.Warn().Err(err).Msg("could not detect Num Lock modifier, assuming Mod2")
		numLock = geom.ModMask2
	}
	x.numLockMask = numLock

	util, err := xgbutil.NewConnDisplay(displayName)
	if err != nil {
		x.log.Warn().Err(err).Msg("cursor theme connection failed, falling back to the default pointer glyph")
	} else {
		x.util = util
	}

	if err := xproto.ChangeWindowAttributesChecked(
		conn, x.root, xproto.CwEventMask,
		[]uint32{uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)},
	).Check(); err != nil {
		conn.Close()
		return fmt.Errorf("becoming the window manager (is one already running?): %w", err)
	}

	go x.runEventLoop()
	return nil
}

func (x *XConn) Close() error {
	if x.util != nil {
		x.util.Conn().Close()
	}
	close(x.events)
	x.conn.Close()
	return nil
}

func (x *XConn) Root() Window { return Window(x.root) }

func (x *XConn) Flush() error {
	x.conn.Sync()
	return nil
}

func (x *XConn) Events() <-chan Event { return x.events }
func (x *XConn) Errs() <-chan error   { return x.errs }

func (x *XConn) QueryTree() ([]Window, error) {
	reply, err := xproto.QueryTree(x.conn, x.root).Reply()
	if err != nil {
		return nil, err
	}
	out := make([]Window, len(reply.Children))
	for i, w := range reply.Children {
		out[i] = Window(w)
	}
	return out, nil
}

func (x *XConn) GetWindowAttrs(w Window) (WindowAttrs, error) {
	reply, err := xproto.GetWindowAttributes(x.conn, xproto.Window(w)).Reply()
	if err != nil {
		return WindowAttrs{}, err
	}
	return WindowAttrs{
		OverrideRedirect: reply.OverrideRedirect,
		MapState:         byte(reply.MapState),
	}, nil
}

func (x *XConn) GetWindowInfo(w Window) (WindowInfo, error) {
	geomReply, err := xproto.GetGeometry(x.conn, xproto.Drawable(w)).Reply()
	if err != nil {
		return WindowInfo{}, err
	}

	info := WindowInfo{
		ID:     w,
		X:      geomReply.X,
		Y:      geomReply.Y,
		Width:  geomReply.Width,
		Height: geomReply.Height,
	}

	if class, instance, ok := x.getWMClass(w); ok {
		info.Class, info.Instance = class, instance
	}
	if name, ok := x.getProperty8(w, x.atoms.wmName); ok {
		info.Name = name
	}
	if transientFor, ok := x.getWMTransientFor(w); ok {
		info.IsTransient = true
		info.TransientForID = transientFor
	}
	return info, nil
}

// getWMClass reads WM_CLASS, which X packs as two NUL-terminated strings
// back to back: instance first, then class.
func (x *XConn) getWMClass(w Window) (class, instance string, ok bool) {
	reply, err := xproto.GetProperty(x.conn, false, xproto.Window(w), x.atoms.wmClass,
		xproto.AtomString, 0, 1<<16).Reply()
	if err != nil || reply.Format != 8 || len(reply.Value) == 0 {
		return "", "", false
	}
	parts := strings.SplitN(strings.TrimRight(string(reply.Value), "\x00"), "\x00", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[1], parts[0], true
}

func (x *XConn) getProperty8(w Window, atom xproto.Atom) (string, bool) {
	reply, err := xproto.GetProperty(x.conn, false, xproto.Window(w), atom,
		xproto.AtomString, 0, 1<<16).Reply()
	if err != nil || reply.Format != 8 || len(reply.Value) == 0 {
		return "", false
	}
	return strings.TrimRight(string(reply.Value), "\x00"), true
}

func (x *XConn) getWMTransientFor(w Window) (Window, bool) {
	reply, err := xproto.GetProperty(x.conn, false, xproto.Window(w), x.atoms.wmTransientFor,
		xproto.AtomWindow, 0, 1).Reply()
	if err != nil || reply.Format != 32 || len(reply.Value) < 4 {
		return 0, false
	}
	id := xproto.Window(reply.Value[0]) | xproto.Window(reply.Value[1])<<8 |
		xproto.Window(reply.Value[2])<<16 | xproto.Window(reply.Value[3])<<24
	if id == 0 {
		return 0, false
	}
	return Window(id), true
}

func (x *XConn) ConfigureWindow(w Window, rect geom.Rect, borderWidth uint32, raise bool) error {
	mask := xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth |
		xproto.ConfigWindowHeight | xproto.ConfigWindowBorderWidth
	values := []uint32{
		uint32(uint16(rect.X)), uint32(uint16(rect.Y)),
		uint32(rect.Width), uint32(rect.Height), borderWidth,
	}
	if raise {
		mask |= xproto.ConfigWindowStackMode
		values = append(values, uint32(xproto.StackModeAbove))
	}
	return xproto.ConfigureWindowChecked(x.conn, xproto.Window(w), mask, values).Check()
}

// SelectPropertyNotify arms PropertyNotify delivery for w; called once a
// window is managed so a later WM_TRANSIENT_FOR change is observed.
func (x *XConn) SelectPropertyNotify(w Window) error {
	return xproto.ChangeWindowAttributesChecked(
		x.conn, xproto.Window(w), xproto.CwEventMask,
		[]uint32{uint32(xproto.EventMaskPropertyChange)},
	).Check()
}

func (x *XConn) TransientForAtom() uint32 { return uint32(x.atoms.wmTransientFor) }

func (x *XConn) ChangeBorderColor(w Window, pixel uint32) error {
	return xproto.ChangeWindowAttributesChecked(
		x.conn, xproto.Window(w), xproto.CwBorderPixel, []uint32{pixel},
	).Check()
}

func (x *XConn) MapWindow(w Window) error {
	return xproto.MapWindowChecked(x.conn, xproto.Window(w)).Check()
}

func (x *XConn) UnmapWindow(w Window) error {
	return xproto.UnmapWindowChecked(x.conn, xproto.Window(w)).Check()
}

func (x *XConn) DestroyWindow(w Window) error {
	return xproto.DestroyWindowChecked(x.conn, xproto.Window(w)).Check()
}

func (x *XConn) SetInputFocus(w Window) error {
	return xproto.SetInputFocusChecked(
		x.conn, xproto.InputFocusPointerRoot, xproto.Window(w), xproto.TimeCurrentTime,
	).Check()
}

func (x *XConn) WarpPointer(w Window, xPos, yPos int16) error {
	return xproto.WarpPointerChecked(
		x.conn, 0, xproto.Window(w), 0, 0, 0, 0, xPos, yPos,
	).Check()
}

func (x *XConn) QueryPointer() (int16, int16, error) {
	reply, err := xproto.QueryPointer(x.conn, x.root).Reply()
	if err != nil {
		return 0, 0, err
	}
	return reply.RootX, reply.RootY, nil
}

func (x *XConn) RandRMonitors() ([]geom.Rect, error) {
	reply, err := randr.GetMonitors(x.conn, x.root, true).Reply()
	if err != nil {
		return nil, err
	}
	rects := make([]geom.Rect, 0, len(reply.Monitors))
	for _, m := range reply.Monitors {
		rects = append(rects, geom.NewRect(m.X, m.Y, m.Width, m.Height))
	}
	return rects, nil
}
