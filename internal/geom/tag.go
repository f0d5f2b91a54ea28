package geom

import (
	"fmt"
	"strconv"
)

// TagID is a workspace tag number in [1, 9]. The zero value is not a valid
// TagID; always construct one through NewTagID or ParseTagID.
type TagID uint8

// NewTagID validates n and returns a TagID, or an error if n is out of
// the 1..=9 range.
func NewTagID(n uint8) (TagID, error) {
	if n < 1 || n > 9 {
		return 0, fmt.Errorf("tag id out of range [1,9]: %d", n)
	}
	return TagID(n), nil
}

// ParseTagID parses a decimal string into a validated TagID.
func ParseTagID(s string) (TagID, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid tag id %q: %w", s, err)
	}
	return NewTagID(uint8(n))
}

func (t TagID) Int() int { return int(t) }

func (t TagID) String() string { return strconv.Itoa(int(t)) }

func (t TagID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TagID) UnmarshalText(b []byte) error {
	parsed, err := ParseTagID(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AllTagIDs returns the 9 valid tag ids in order, used to seed a
// monitor's fixed-size tag array.
func AllTagIDs() [9]TagID {
	var ids [9]TagID
	for i := range ids {
		ids[i] = TagID(i + 1)
	}
	return ids
}
