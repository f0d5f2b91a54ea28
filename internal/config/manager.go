package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Manager owns the on-disk config file and the in-memory value the rest
// of the daemon reads. A failed reload never replaces the in-memory
// config: Load swaps in the new value only once it has parsed and
// validated cleanly, so a typo in the file never takes the window
// manager down.
type Manager struct {
	mu     sync.RWMutex
	path   string
	config *Config
	log    zerolog.Logger

	watcher *fsnotify.Watcher
}

// NewManager creates the config directory if needed, loads an existing
// file or writes the defaults, and returns a ready Manager.
func NewManager(path string, log zerolog.Logger) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}

	m := &Manager{path: path, config: Default(), log: log}

	if _, err := os.Stat(path); err == nil {
		if err := m.Load(""); err != nil {
			return nil, err
		}
	} else {
		if err := m.Save(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Get returns the currently active configuration. The returned pointer
// must be treated as read-only by callers outside this package.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Load re-reads a config file from disk, validates it, and swaps it in
// only on success, logging and keeping the previous config otherwise. An
// empty path re-reads the manager's current path. A non-empty path is
// read instead and, once it loads successfully, becomes the manager's
// remembered path for any future no-path Load or Save; a failed load
// leaves the remembered path unchanged.
func (m *Manager) Load(path string) error {
	target := m.path
	if path != "" {
		target = path
	}

	data, err := os.ReadFile(target)
	if err != nil {
		m.log.Warn().Err(err).Str("path", target).Msg("config reload rejected: read error, keeping previous config")
		return fmt.Errorf("reading config: %w", err)
	}

	next := Default()
	if err := toml.Unmarshal(data, next); err != nil {
		m.log.Warn().Err(err).Str("path", target).Msg("config reload rejected: parse error, keeping previous config")
		return err
	}
	if err := Validate(next); err != nil {
		m.log.Warn().Err(err).Str("path", target).Msg("config reload rejected: invalid config, keeping previous config")
		return err
	}

	m.mu.Lock()
	m.config = next
	m.path = target
	m.mu.Unlock()
	m.log.Info().Str("path", target).Msg("config reloaded")
	return nil
}

// Save writes the current in-memory config back to disk.
func (m *Manager) Save() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, err := os.Create(m.path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(m.config)
}

// Watch starts an fsnotify watch on the config file's directory and
// calls Load whenever the file changes, converging with the same reload
// path the Config Load IPC command uses. The returned stop function
// closes the watcher; Watch itself does not block.
func (m *Manager) Watch() (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(m.path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching config dir: %w", err)
	}
	m.watcher = w

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(m.path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := m.Load(""); err != nil {
					m.log.Warn().Err(err).Msg("config file watch triggered a reload that failed")
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				m.log.Warn().Err(err).Msg("config watcher error")
			}
		}
	}()

	return w.Close, nil
}

// Validate rejects a config that would leave the window manager unable
// to operate: an empty layout ring, or a layout listed more than once.
// A gap/border combination too large for a given monitor is not an
// error here; the layout engine clamps geometry to a positive minimum
// itself rather than rejecting the config that produced it.
func Validate(c *Config) error {
	if len(c.Layouts) == 0 {
		return fmt.Errorf("layouts: at least one layout is required")
	}
	seen := make(map[string]bool, len(c.Layouts))
	for _, k := range c.Layouts {
		s := k.String()
		if seen[s] {
			return fmt.Errorf("layouts: %q listed more than once", s)
		}
		seen[s] = true
	}
	return nil
}
