package x11

import "github.com/go-rwm/rwm/internal/geom"

// FakePort is an in-memory Port for exercising internal/wm without a
// live X server. Tests drive it by pushing onto Events and asserting
// against the Calls log.
type FakePort struct {
	RootID           Window
	Infos            map[Window]WindowInfo
	Attrs            map[Window]WindowAttrs
	Monitors         []geom.Rect
	EventCh          chan Event
	ErrCh            chan error
	Cursors          map[string]uint32
	TransientForAtomValue uint32

	Calls []string
}

// NewFakePort returns a ready-to-use FakePort with a single monitor.
func NewFakePort() *FakePort {
	return &FakePort{
		RootID:                1,
		Infos:                 map[Window]WindowInfo{},
		Attrs:                 map[Window]WindowAttrs{},
		Monitors:              []geom.Rect{geom.NewRect(0, 0, 1920, 1080)},
		EventCh:               make(chan Event, 16),
		ErrCh:                 make(chan error, 1),
		Cursors:               map[string]uint32{},
		TransientForAtomValue: 1,
	}
}

func (f *FakePort) Connect(string) error { return nil }
func (f *FakePort) Close() error         { close(f.EventCh); return nil }
func (f *FakePort) Root() Window         { return f.RootID }
func (f *FakePort) Flush() error         { return nil }
func (f *FakePort) Events() <-chan Event { return f.EventCh }
func (f *FakePort) Errs() <-chan error   { return f.ErrCh }

func (f *FakePort) QueryTree() ([]Window, error) {
	out := make([]Window, 0, len(f.Infos))
	for id := range f.Infos {
		out = append(out, id)
	}
	return out, nil
}

func (f *FakePort) GetWindowAttrs(w Window) (WindowAttrs, error) { return f.Attrs[w], nil }
func (f *FakePort) GetWindowInfo(w Window) (WindowInfo, error)   { return f.Infos[w], nil }

func (f *FakePort) ConfigureWindow(w Window, rect geom.Rect, borderWidth uint32, raise bool) error {
	f.Calls = append(f.Calls, "ConfigureWindow")
	if info, ok := f.Infos[w]; ok {
		info.X, info.Y, info.Width, info.Height = rect.X, rect.Y, rect.Width, rect.Height
		f.Infos[w] = info
	}
	return nil
}

func (f *FakePort) SelectPropertyNotify(Window) error { return nil }
func (f *FakePort) TransientForAtom() uint32          { return f.TransientForAtomValue }

func (f *FakePort) ChangeBorderColor(Window, uint32) error { return nil }
func (f *FakePort) MapWindow(Window) error                 { f.Calls = append(f.Calls, "MapWindow"); return nil }
func (f *FakePort) UnmapWindow(Window) error                { f.Calls = append(f.Calls, "UnmapWindow"); return nil }
func (f *FakePort) DestroyWindow(Window) error              { f.Calls = append(f.Calls, "DestroyWindow"); return nil }
func (f *FakePort) SetInputFocus(Window) error              { f.Calls = append(f.Calls, "SetInputFocus"); return nil }

func (f *FakePort) GrabButtonUnfocused(Window) error          { return nil }
func (f *FakePort) GrabButtonFocused(Window, geom.ModMask) error { return nil }
func (f *FakePort) UngrabButtons(Window) error                { return nil }
func (f *FakePort) ReplayPointer() error                      { return nil }

func (f *FakePort) WarpPointer(Window, int16, int16) error { return nil }
func (f *FakePort) QueryPointer() (int16, int16, error)    { return 0, 0, nil }

func (f *FakePort) RandRMonitors() ([]geom.Rect, error) { return f.Monitors, nil }

func (f *FakePort) LoadCursor(name string) (uint32, error) { return f.Cursors[name], nil }
func (f *FakePort) SetCursor(uint32) error                 { return nil }

var _ Port = (*FakePort)(nil)
