package geom

import (
	"fmt"
	"strings"
)

// ModMask is a thin, serializable wrapper around an X11 modifier mask bit,
// so Config can parse/print "mod1" style names without depending on the
// X11 transport package. The numeric values match xproto's ModMask*
// constants bit-for-bit, so converting to/from the X11 port's types is a
// plain cast.
type ModMask uint16

const (
	ModMaskShift   ModMask = 1 << 0
	ModMaskLock    ModMask = 1 << 1
	ModMaskControl ModMask = 1 << 2
	ModMask1       ModMask = 1 << 3 // left Alt on most layouts
	ModMask2       ModMask = 1 << 4 // usually NumLock
	ModMask3       ModMask = 1 << 5
	ModMask4       ModMask = 1 << 6 // usually the "super"/"windows" key
	ModMask5       ModMask = 1 << 7
	ModMaskAny     ModMask = 1 << 15
)

// ParseModMask accepts the names rwm's config file uses: shift, lock,
// control/ctrl, mod1..mod5 (with or without a space before the digit).
func ParseModMask(s string) (ModMask, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shift":
		return ModMaskShift, nil
	case "lock":
		return ModMaskLock, nil
	case "control", "ctrl":
		return ModMaskControl, nil
	case "mod1", "mod 1":
		return ModMask1, nil
	case "mod2", "mod 2":
		return ModMask2, nil
	case "mod3", "mod 3":
		return ModMask3, nil
	case "mod4", "mod 4":
		return ModMask4, nil
	case "mod5", "mod 5":
		return ModMask5, nil
	case "any":
		return ModMaskAny, nil
	default:
		return 0, fmt.Errorf("unknown mod key: %q", s)
	}
}

func (m ModMask) String() string {
	switch m {
	case ModMaskShift:
		return "shift"
	case ModMaskLock:
		return "lock"
	case ModMaskControl:
		return "control"
	case ModMask1:
		return "mod1"
	case ModMask2:
		return "mod2"
	case ModMask3:
		return "mod3"
	case ModMask4:
		return "mod4"
	case ModMask5:
		return "mod5"
	case ModMaskAny:
		return "any"
	default:
		return fmt.Sprintf("0x%04x", uint16(m))
	}
}

func (m ModMask) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ModMask) UnmarshalText(b []byte) error {
	parsed, err := ParseModMask(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
