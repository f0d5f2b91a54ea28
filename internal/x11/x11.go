// Package x11 is the boundary between the window manager core and the X
// server: connecting, querying the window tree, configuring geometry,
// grabbing input and reading RandR monitor layout. The Port interface
// lets internal/wm be tested without a live X server (see FakePort).
package x11

import "github.com/go-rwm/rwm/internal/geom"

// Window is an X11 window id. It is the same numeric value as
// winstate.WindowHandle; the two packages don't share a type to keep
// internal/winstate free of any X11 import.
type Window uint32

// EventKind tags the variant carried by an Event.
type EventKind int

const (
	EventMapRequest EventKind = iota
	EventConfigureRequest
	EventDestroyNotify
	EventUnmapNotify
	EventButtonPress
	EventButtonRelease
	EventMotionNotify
	EventEnterNotify
	EventPropertyNotify
)

func (k EventKind) String() string {
	switch k {
	case EventMapRequest:
		return "MapRequest"
	case EventConfigureRequest:
		return "ConfigureRequest"
	case EventDestroyNotify:
		return "DestroyNotify"
	case EventUnmapNotify:
		return "UnmapNotify"
	case EventButtonPress:
		return "ButtonPress"
	case EventButtonRelease:
		return "ButtonRelease"
	case EventMotionNotify:
		return "MotionNotify"
	case EventEnterNotify:
		return "EnterNotify"
	case EventPropertyNotify:
		return "PropertyNotify"
	default:
		return "Unknown"
	}
}

// Event is a flattened view of the X11 event types the core reducer
// reacts to. Not every field is meaningful for every Kind; translate in
// events.go shows which fields each kind fills.
type Event struct {
	Kind   EventKind
	Window Window
	Root   Window

	X, Y       int16
	RootX      int16
	RootY      int16
	Width      uint16
	Height     uint16
	Button     uint8
	State      uint16
	Time       uint32
	Atom       uint32
	Detail     uint8 // EnterNotify detail (NotifyInferior filtering)
}

// WindowAttrs is the subset of a window's attributes the core cares
// about when deciding whether to manage it.
type WindowAttrs struct {
	OverrideRedirect bool
	MapState         uint8
}

// WindowInfo is everything scan-at-startup and MapRequest handling need
// to build a winstate.WindowRecord: current geometry plus the identity
// properties spawn rules match against.
type WindowInfo struct {
	ID             Window
	X, Y           int16
	Width, Height  uint16
	Class          string
	Instance       string
	Name           string
	TransientForID Window // zero if not transient
	IsTransient    bool
}

// Port is everything the reducer needs from the X server. XConn is the
// only production implementation; tests can fake this interface instead
// of standing up a real display.
type Port interface {
	Connect(displayName string) error
	Close() error

	Root() Window
	Flush() error

	// Events streams decoded X11 events as they arrive; a background
	// goroutine started by Connect feeds it, so the reducer's event loop
	// can select on it alongside the IPC listener instead of polling. Errs carries connection-level errors
	// (closed display, protocol errors); the loop should treat any send
	// on it as fatal.
	Events() <-chan Event
	Errs() <-chan error

	QueryTree() ([]Window, error)
	GetWindowAttrs(w Window) (WindowAttrs, error)
	GetWindowInfo(w Window) (WindowInfo, error)

	// ConfigureWindow applies rect and borderWidth to w; raise additionally
	// stacks w above its siblings in the same request (used while dragging
	// or resizing, where the moved window must stay on top).
	ConfigureWindow(w Window, rect geom.Rect, borderWidth uint32, raise bool) error
	ChangeBorderColor(w Window, pixel uint32) error
	MapWindow(w Window) error
	UnmapWindow(w Window) error
	DestroyWindow(w Window) error
	SetInputFocus(w Window) error

	GrabButtonUnfocused(w Window) error
	GrabButtonFocused(w Window, modKey geom.ModMask) error
	UngrabButtons(w Window) error
	// ReplayPointer releases a synchronous button grab (the unfocused
	// grab mode) back to the client that owns the window, so the click
	// that focused the window is also delivered to it.
	ReplayPointer() error

	// SelectPropertyNotify asks the X server to report property changes
	// on w (WM_TRANSIENT_FOR in particular) as PropertyNotify events.
	SelectPropertyNotify(w Window) error
	// TransientForAtom is the interned WM_TRANSIENT_FOR atom, exposed so
	// the reducer can recognize it on an incoming PropertyNotify.
	TransientForAtom() uint32

	WarpPointer(w Window, x, y int16) error
	QueryPointer() (rootX, rootY int16, err error)

	RandRMonitors() ([]geom.Rect, error)

	LoadCursor(name string) (uint32, error)
	SetCursor(cursor uint32) error
}

// CleanMask strips the lock bits (Caps Lock, Num Lock) an X server can
// report alongside any real modifier so a grab comparison only looks at
// the modifiers the user configured. numLockMask is whatever modifier
// slot the running X server happens to bind Num Lock to, discovered
// once via the modifier mapping at connect time.
func CleanMask(state uint16, numLockMask geom.ModMask) geom.ModMask {
	return geom.ModMask(state) &^ (geom.ModMaskLock | numLockMask)
}
