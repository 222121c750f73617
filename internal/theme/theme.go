// Package theme manages the process-wide light/dark preference: a
// persisted value with an OS color-scheme fallback, applied before the
// first frame so the UI never flashes the wrong palette.
package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode is the active theme mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// storageFile is the fixed key under the config dir holding the mode.
const storageFile = "theme"

// Store persists the mode. All operations are best-effort: an unusable
// storage location degrades to no persistence, never to a failure.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir (usually config.Dir()).
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the persisted mode, or false when none is stored.
func (s *Store) Load() (Mode, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, storageFile))
	if err != nil {
		return "", false
	}
	switch Mode(strings.TrimSpace(string(data))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// Save persists the mode. Failures are swallowed by design.
func (s *Store) Save(m Mode) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(s.dir, storageFile), []byte(m+"\n"), 0644)
}

// Manager owns the active mode for the lifetime of the process.
type Manager struct {
	store  *Store
	mode   Mode
	darkOS func() bool
}

// NewManager creates a Manager probing the terminal for the OS-level
// dark-background signal.
func NewManager(store *Store) *Manager {
	return &Manager{store: store, darkOS: termenv.HasDarkBackground}
}

// NewManagerWithProbe creates a Manager with an injected OS probe.
// Used by tests.
func NewManagerWithProbe(store *Store, darkOS func() bool) *Manager {
	return &Manager{store: store, darkOS: darkOS}
}

// Init resolves the initial mode — persisted value, else the OS signal,
// else light — and applies it. Call before rendering the first frame.
func (m *Manager) Init() Mode {
	if stored, ok := m.store.Load(); ok {
		m.mode = stored
	} else if m.darkOS() {
		m.mode = Dark
	} else {
		m.mode = Light
	}
	m.apply()
	return m.mode
}

// Mode returns the active mode.
func (m *Manager) Mode() Mode { return m.mode }

// Toggle flips the mode, applies it, and persists it.
func (m *Manager) Toggle() Mode {
	if m.mode == Dark {
		m.mode = Light
	} else {
		m.mode = Dark
	}
	m.apply()
	m.store.Save(m.mode)
	return m.mode
}

// apply pushes the mode into lipgloss's process-wide background flag,
// which is what adaptive styles key off.
func (m *Manager) apply() {
	lipgloss.SetHasDarkBackground(m.mode == Dark)
}
