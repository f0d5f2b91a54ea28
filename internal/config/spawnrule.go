package config

import "github.com/go-rwm/rwm/internal/geom"

// SpawnRule assigns tags and/or a floating flag to newly mapped windows
// whose WM_CLASS/WM_NAME match. Empty fields are wildcards; class and
// instance are checked before name, matching the precedence a WM_CLASS
// property lookup naturally gives (class/instance arrive together,
// WM_NAME is a separate round trip).
type SpawnRule struct {
	Class    string      `toml:"class"`
	Instance string      `toml:"instance"`
	Name     string      `toml:"name"`
	Tags     []geom.TagID `toml:"tags"`
	Floating bool        `toml:"floating"`
}

// Matches reports whether the rule applies to a window with the given
// WM_CLASS class/instance and WM_NAME. A blank rule field always
// matches; a rule with every field blank matches everything, so callers
// should put catch-all rules last.
func (r SpawnRule) Matches(class, instance, name string) bool {
	if r.Class != "" && r.Class != class {
		return false
	}
	if r.Instance != "" && r.Instance != instance {
		return false
	}
	if r.Name != "" && r.Name != name {
		return false
	}
	return true
}

// MatchRule returns the first rule in rules that matches, if any.
func MatchRule(rules []SpawnRule, class, instance, name string) (SpawnRule, bool) {
	for _, r := range rules {
		if r.Matches(class, instance, name) {
			return r, true
		}
	}
	return SpawnRule{}, false
}
