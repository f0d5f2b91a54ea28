// Package ipc implements the length-prefixed JSON protocol the window
// manager listens for on a Unix domain socket. Every Command is an
// externally tagged union: a unit variant serializes as a
// bare JSON string ("Quit"), a variant carrying data serializes as a
// single-key object ({"Window":{"Shift":"Down"}}) — the shape a
// conventional serde derive produces, and the shape any client talking
// to rwm already expects.
package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/go-rwm/rwm/internal/geom"
)

// decodeTagged accepts either a bare JSON string (a unit variant's name)
// or a single-key JSON object (a variant name mapped to its payload) and
// returns the variant name plus the raw payload, which is nil for the
// bare-string form.
func decodeTagged(data []byte) (name string, payload json.RawMessage, err error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return "", nil, fmt.Errorf("decoding tagged value: %w", err)
	}
	if len(m) != 1 {
		return "", nil, fmt.Errorf("expected exactly one variant key, got %d", len(m))
	}
	for k, v := range m {
		name, payload = k, v
	}
	return name, payload, nil
}

func encodeTagged(name string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(name)
	}
	return json.Marshal(map[string]interface{}{name: payload})
}

// Command is the top-level request a client sends over the socket.
// Exactly one field is meaningful, selected by Kind.
type Command struct {
	Kind string

	Tag     TagCommand
	Window  WindowCommand
	Layout  LayoutCommand
	Config  ConfigCommand
	Monitor MonitorCommand
}

const (
	KindQuit    = "Quit"
	KindTag     = "Tag"
	KindWindow  = "Window"
	KindLayout  = "Layout"
	KindConfig  = "Config"
	KindMonitor = "Monitor"
)

func (c Command) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindQuit:
		return encodeTagged(KindQuit, nil)
	case KindTag:
		return encodeTagged(KindTag, c.Tag)
	case KindWindow:
		return encodeTagged(KindWindow, c.Window)
	case KindLayout:
		return encodeTagged(KindLayout, c.Layout)
	case KindConfig:
		return encodeTagged(KindConfig, c.Config)
	case KindMonitor:
		return encodeTagged(KindMonitor, c.Monitor)
	default:
		return nil, fmt.Errorf("unknown command kind %q", c.Kind)
	}
}

func (c *Command) UnmarshalJSON(data []byte) error {
	name, payload, err := decodeTagged(data)
	if err != nil {
		return err
	}
	c.Kind = name
	switch name {
	case KindQuit:
		return nil
	case KindTag:
		return json.Unmarshal(payload, &c.Tag)
	case KindWindow:
		return json.Unmarshal(payload, &c.Window)
	case KindLayout:
		return json.Unmarshal(payload, &c.Layout)
	case KindConfig:
		return json.Unmarshal(payload, &c.Config)
	case KindMonitor:
		return json.Unmarshal(payload, &c.Monitor)
	default:
		return fmt.Errorf("unknown command kind %q", name)
	}
}

// TagCommand controls which tags a monitor shows.
type TagCommand struct {
	Kind string
	Tag  geom.TagID
}

const (
	TagSwitch = "Switch"
	TagToggle = "Toggle"
)

func (t TagCommand) MarshalJSON() ([]byte, error) { return encodeTagged(t.Kind, t.Tag) }

func (t *TagCommand) UnmarshalJSON(data []byte) error {
	name, payload, err := decodeTagged(data)
	if err != nil {
		return err
	}
	t.Kind = name
	return json.Unmarshal(payload, &t.Tag)
}

// WindowCommand controls the focused window.
type WindowCommand struct {
	Kind          string
	Shift         geom.Direction
	Focus         geom.Direction
	SendToTag     geom.TagID
	SendToMonitor geom.Direction
}

const (
	WindowShift          = "Shift"
	WindowFocus          = "Focus"
	WindowKill           = "Kill"
	WindowToggleFloating = "ToggleFloating"
	WindowSendToTag      = "SendToTag"
	WindowSendToMonitor  = "SendToMonitor"
)

func (w WindowCommand) MarshalJSON() ([]byte, error) {
	switch w.Kind {
	case WindowShift:
		return encodeTagged(w.Kind, w.Shift)
	case WindowFocus:
		return encodeTagged(w.Kind, w.Focus)
	case WindowSendToTag:
		return encodeTagged(w.Kind, w.SendToTag)
	case WindowSendToMonitor:
		return encodeTagged(w.Kind, w.SendToMonitor)
	case WindowKill, WindowToggleFloating:
		return encodeTagged(w.Kind, nil)
	default:
		return nil, fmt.Errorf("unknown window command %q", w.Kind)
	}
}

func (w *WindowCommand) UnmarshalJSON(data []byte) error {
	name, payload, err := decodeTagged(data)
	if err != nil {
		return err
	}
	w.Kind = name
	switch name {
	case WindowShift:
		return json.Unmarshal(payload, &w.Shift)
	case WindowFocus:
		return json.Unmarshal(payload, &w.Focus)
	case WindowSendToTag:
		return json.Unmarshal(payload, &w.SendToTag)
	case WindowSendToMonitor:
		return json.Unmarshal(payload, &w.SendToMonitor)
	case WindowKill, WindowToggleFloating:
		return nil
	default:
		return fmt.Errorf("unknown window command %q", name)
	}
}

// LayoutCommand cycles the current tag's arrangement.
type LayoutCommand struct {
	Kind string
}

const (
	LayoutNext = "Next"
	LayoutPrev = "Prev"
)

func (l LayoutCommand) MarshalJSON() ([]byte, error) { return encodeTagged(l.Kind, nil) }

func (l *LayoutCommand) UnmarshalJSON(data []byte) error {
	name, _, err := decodeTagged(data)
	if err != nil {
		return err
	}
	l.Kind = name
	return nil
}

// ConfigCommand either dumps the running config (Print) or reloads it
// from disk (Load), optionally from an explicit path rather than the
// manager's own.
type ConfigCommand struct {
	Kind string
	Path string // Load only; empty means reload from the last-loaded path
}

const (
	ConfigLoad  = "Load"
	ConfigPrint = "Print"
)

func (c ConfigCommand) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ConfigLoad:
		if c.Path == "" {
			return encodeTagged(c.Kind, nil)
		}
		return encodeTagged(c.Kind, c.Path)
	case ConfigPrint:
		return encodeTagged(c.Kind, nil)
	default:
		return nil, fmt.Errorf("unknown config command %q", c.Kind)
	}
}

func (c *ConfigCommand) UnmarshalJSON(data []byte) error {
	name, payload, err := decodeTagged(data)
	if err != nil {
		return err
	}
	c.Kind = name
	switch name {
	case ConfigLoad:
		if len(payload) == 0 {
			return nil
		}
		return json.Unmarshal(payload, &c.Path)
	case ConfigPrint:
		return nil
	default:
		return fmt.Errorf("unknown config command %q", name)
	}
}

// MonitorCommand moves monitor focus.
type MonitorCommand struct {
	Kind  string
	Focus geom.Direction
}

const MonitorFocus = "Focus"

func (m MonitorCommand) MarshalJSON() ([]byte, error) { return encodeTagged(m.Kind, m.Focus) }

func (m *MonitorCommand) UnmarshalJSON(data []byte) error {
	name, payload, err := decodeTagged(data)
	if err != nil {
		return err
	}
	m.Kind = name
	return json.Unmarshal(payload, &m.Focus)
}
