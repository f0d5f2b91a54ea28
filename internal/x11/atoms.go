package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// atoms holds the handful of interned atoms the reducer needs to read
// WM_CLASS/WM_NAME/WM_TRANSIENT_FOR, resolved once at connect time
// rather than re-interned per window.
type atoms struct {
	wmTransientFor xproto.Atom
	wmClass        xproto.Atom
	wmName         xproto.Atom
}

func internAtoms(c *xgb.Conn) (atoms, error) {
	names := []string{"WM_TRANSIENT_FOR", "WM_CLASS", "WM_NAME"}
	resolved := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(c, false, uint16(len(name)), name).Reply()
		if err != nil {
			return atoms{}, err
		}
		resolved[i] = reply.Atom
	}
	return atoms{wmTransientFor: resolved[0], wmClass: resolved[1], wmName: resolved[2]}, nil
}
