package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
)

// cursorGlyphs maps the named cursors the reducer requests during
// drag/resize ("fleur", "bottom_right_corner") and on release
// ("left_ptr") to the core-font glyph xcursor knows how to render.
var cursorGlyphs = map[string]uint16{
	"left_ptr":           xcursor.LeftPtr,
	"fleur":              xcursor.Fleur,
	"bottom_right_corner": xcursor.BottomRightCorner,
}

// LoadCursor creates (and caches nothing — callers keep the returned id)
// a named X cursor via the auxiliary xgbutil connection, falling back to
// cursor 0 (the server default) if the cursor-theme connection never
// came up.
func (x *XConn) LoadCursor(name string) (uint32, error) {
	glyph, ok := cursorGlyphs[name]
	if !ok {
		return 0, fmt.Errorf("unknown cursor name %q", name)
	}
	if x.util == nil {
		return 0, nil
	}
	cursor, err := xcursor.CreateCursor(x.util, glyph)
	if err != nil {
		return 0, fmt.Errorf("creating cursor %q: %w", name, err)
	}
	return uint32(cursor), nil
}

// SetCursor applies a cursor id (as returned by LoadCursor) to the root
// window, changing the pointer glyph shown outside any client window.
func (x *XConn) SetCursor(cursor uint32) error {
	if cursor == 0 {
		return nil
	}
	return xproto.ChangeWindowAttributesChecked(
		x.conn, x.root, xproto.CwCursor, []uint32{cursor},
	).Check()
}
