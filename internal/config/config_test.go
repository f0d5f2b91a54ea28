package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/go-rwm/rwm/internal/layout"
)

func TestNewManagerWritesDefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rwm.toml")

	m, err := NewManager(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be written, got %v", err)
	}
	if m.Get().BorderWidth != 4 {
		t.Fatalf("BorderWidth = %d, want 4", m.Get().BorderWidth)
	}
}

func TestLoadRejectsInvalidConfigKeepingPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rwm.toml")

	m, err := NewManager(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	before := m.Get()

	if err := os.WriteFile(path, []byte("layouts = []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := m.Load(""); err == nil {
		t.Fatal("expected Load to reject an empty layout ring")
	}
	if m.Get() != before {
		t.Fatal("a rejected reload must keep the previous config in place")
	}
}

func TestLoadAcceptsValidEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rwm.toml")
	m, err := NewManager(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("border_width = 8\nlayouts = [\"Grid\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := m.Load(""); err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if m.Get().BorderWidth != 8 {
		t.Fatalf("BorderWidth = %d, want 8", m.Get().BorderWidth)
	}
	if m.Get().DefaultLayout() != layout.Grid {
		t.Fatalf("DefaultLayout() = %v, want Grid", m.Get().DefaultLayout())
	}
}

func TestLoadFromExplicitPathRemembersIt(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "rwm.toml")
	otherPath := filepath.Join(dir, "other.toml")

	m, err := NewManager(defaultPath, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(otherPath, []byte("gap = 16\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := m.Load(otherPath); err != nil {
		t.Fatalf("Load(otherPath) = %v, want nil", err)
	}
	if m.Get().Gap != 16 {
		t.Fatalf("Gap = %d, want 16", m.Get().Gap)
	}

	if err := os.WriteFile(otherPath, []byte("gap = 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := m.Load(""); err != nil {
		t.Fatalf("Load(\"\") after an explicit load = %v, want nil", err)
	}
	if m.Get().Gap != 32 {
		t.Fatal("a no-path Load should reload the last explicitly loaded path, not the manager's original path")
	}
}

func TestSpawnRuleMatchesWildcards(t *testing.T) {
	rule := SpawnRule{Class: "firefox", Floating: false}
	if !rule.Matches("firefox", "Navigator", "Mozilla Firefox") {
		t.Fatal("expected class-only rule to match regardless of instance/name")
	}
	if rule.Matches("chromium", "chromium", "Chromium") {
		t.Fatal("rule should not match a different class")
	}
}

func TestMatchRuleReturnsFirstMatch(t *testing.T) {
	rules := []SpawnRule{
		{Name: "Picture-in-Picture", Floating: true},
		{},
	}
	r, ok := MatchRule(rules, "firefox", "Navigator", "Picture-in-Picture")
	if !ok || !r.Floating {
		t.Fatalf("MatchRule = %+v, %v, want the floating PiP rule", r, ok)
	}
}
