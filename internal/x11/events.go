package x11

import "github.com/BurntSushi/xgb/xproto"

// runEventLoop blocks on the X connection and republishes every event the
// reducer cares about onto x.events, translating xgb's per-type structs
// into the flattened Event shape the reducer understands. Errors that
// WaitForEvent reports are forwarded on x.errs and the loop keeps
// waiting; it exits (and closes nothing, since Close owns that) as soon
// as WaitForEvent returns neither an event nor an error, which is how xgb
// reports that the connection has closed.
func (x *XConn) runEventLoop() {
	for {
		ev, err := x.conn.WaitForEvent()
		if err != nil {
			select {
			case x.errs <- err:
			default:
			}
			continue
		}
		if ev == nil {
			return
		}

		if translated, ok := translate(ev); ok {
			x.events <- translated
		}
	}
}

func translate(ev interface{}) (Event, bool) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		return Event{Kind: EventMapRequest, Window: Window(e.Window)}, true

	case xproto.ConfigureRequestEvent:
		return Event{
			Kind: EventConfigureRequest, Window: Window(e.Window),
			X: e.X, Y: e.Y, Width: e.Width, Height: e.Height,
		}, true

	case xproto.DestroyNotifyEvent:
		return Event{Kind: EventDestroyNotify, Window: Window(e.Window)}, true

	case xproto.UnmapNotifyEvent:
		return Event{Kind: EventUnmapNotify, Window: Window(e.Window)}, true

	case xproto.ButtonPressEvent:
		return Event{
			Kind: EventButtonPress, Window: Window(e.Event),
			RootX: e.RootX, RootY: e.RootY, Button: e.Detail, State: e.State, Time: uint32(e.Time),
		}, true

	case xproto.ButtonReleaseEvent:
		return Event{
			Kind: EventButtonRelease, Window: Window(e.Event),
			RootX: e.RootX, RootY: e.RootY, Button: e.Detail, State: e.State, Time: uint32(e.Time),
		}, true

	case xproto.MotionNotifyEvent:
		return Event{
			Kind: EventMotionNotify, Window: Window(e.Event),
			RootX: e.RootX, RootY: e.RootY, State: e.State, Time: uint32(e.Time),
		}, true

	case xproto.EnterNotifyEvent:
		return Event{
			Kind: EventEnterNotify, Window: Window(e.Event),
			RootX: e.RootX, RootY: e.RootY, Detail: e.Detail, Time: uint32(e.Time),
		}, true

	case xproto.PropertyNotifyEvent:
		return Event{Kind: EventPropertyNotify, Window: Window(e.Window), Atom: uint32(e.Atom), Time: uint32(e.Time)}, true

	default:
		return Event{}, false
	}
}
