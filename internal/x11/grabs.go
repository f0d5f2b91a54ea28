package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/go-rwm/rwm/internal/geom"
)

// GrabButtonUnfocused grabs every button with any modifier, synchronously,
// on an unfocused window: the first click both focuses the window and is
// replayed to the client, so the click isn't silently swallowed.
func (x *XConn) GrabButtonUnfocused(w Window) error {
	return xproto.GrabButtonChecked(
		x.conn, false, xproto.Window(w),
		uint16(xproto.EventMaskButtonPress),
		xproto.GrabModeSync, xproto.GrabModeAsync,
		0, 0,
		0, uint16(xproto.ButtonMaskAny),
	).Check()
}

// clean modifier combinations any of which a client may have the Lock or
// Num Lock bit set when the user presses the bound modifier, so every
// combination must be grabbed individually.
func modCombos(mod geom.ModMask, numLock geom.ModMask) []geom.ModMask {
	return []geom.ModMask{
		mod,
		mod | geom.ModMaskLock,
		mod | numLock,
		mod | geom.ModMaskLock | numLock,
	}
}

// GrabButtonFocused grabs every button under the configured modifier key
// (drag/resize/focus-raise bindings), across every Lock/NumLock
// combination, asynchronously since the window is already focused.
func (x *XConn) GrabButtonFocused(w Window, modKey geom.ModMask) error {
	for _, mods := range modCombos(modKey, x.numLockMask) {
		err := xproto.GrabButtonChecked(
			x.conn, false, xproto.Window(w),
			uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion),
			xproto.GrabModeAsync, xproto.GrabModeAsync,
			0, 0,
			0, uint16(mods),
		).Check()
		if err != nil {
			return err
		}
	}
	return nil
}

// ReplayPointer releases the synchronous unfocused-grab replay so the
// triggering click reaches the client as well as rwm.
func (x *XConn) ReplayPointer() error {
	return xproto.AllowEventsChecked(x.conn, xproto.AllowReplayPointer, xproto.TimeCurrentTime).Check()
}

// UngrabButtons releases every grab this package may have installed on w,
// used before re-grabbing with a different mode when focus changes.
func (x *XConn) UngrabButtons(w Window) error {
	return xproto.UngrabButtonChecked(x.conn, xproto.ButtonIndexAny, xproto.Window(w), uint16(xproto.ModMaskAny)).Check()
}

// detectNumLockMask finds which modifier slot the running server's
// keyboard mapping assigns to Num Lock, so button grabs can mask it out
// along with Caps Lock. XK_Num_Lock's keysym value is fixed by the X
// keysym registry (0xff7f); we only need to find which of the eight
// modifier-mapping columns contains a keycode mapping to it.
func detectNumLockMask(c *xgb.Conn, setup *xproto.SetupInfo) (geom.ModMask, error) {
	const xkNumLock = 0xff7f

	mapping, err := xproto.GetModifierMapping(c).Reply()
	if err != nil {
		return 0, err
	}
	keycodes, err := xproto.GetKeyboardMapping(
		c, setup.MinKeycode, byte(int(setup.MaxKeycode)-int(setup.MinKeycode)+1),
	).Reply()
	if err != nil {
		return 0, err
	}

	keysymFor := func(kc xproto.Keycode) []xproto.Keysym {
		idx := int(kc) - int(setup.MinKeycode)
		n := int(keycodes.KeysymsPerKeycode)
		if idx < 0 || (idx+1)*n > len(keycodes.Keysyms) {
			return nil
		}
		return keycodes.Keysyms[idx*n : (idx+1)*n]
	}

	perModifier := int(mapping.KeycodesPerModifier)
	for col := 0; col < 8; col++ {
		for row := 0; row < perModifier; row++ {
			kc := mapping.Keycodes[col*perModifier+row]
			if kc == 0 {
				continue
			}
			for _, ks := range keysymFor(kc) {
				if ks == xkNumLock {
					return geom.ModMask(1 << uint(col)), nil
				}
			}
		}
	}
	return geom.ModMask2, nil
}
