package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitPrefersPersistedValue(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	store.Save(Light)

	m := NewManagerWithProbe(store, func() bool { return true })
	assert.Equal(t, Light, m.Init(), "persisted value beats the OS signal")
}

func TestInitFallsBackToOSSignal(t *testing.T) {
	m := NewManagerWithProbe(NewStore(t.TempDir()), func() bool { return true })
	assert.Equal(t, Dark, m.Init())

	m = NewManagerWithProbe(NewStore(t.TempDir()), func() bool { return false })
	assert.Equal(t, Light, m.Init())
}

func TestToggleRoundTripPersists(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	m := NewManagerWithProbe(store, func() bool { return false })
	require.Equal(t, Light, m.Init())

	assert.Equal(t, Dark, m.Toggle())
	persisted, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, Dark, persisted, "persisted value matches displayed mode")

	assert.Equal(t, Light, m.Toggle(), "toggling twice returns to the original mode")
	persisted, _ = store.Load()
	assert.Equal(t, Light, persisted)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme"), []byte("blurple"), 0644))

	_, ok := NewStore(dir).Load()
	assert.False(t, ok)
}

func TestSaveNeverPanicsOnUnwritableDir(t *testing.T) {
	store := NewStore(filepath.Join(string(os.PathSeparator), "dev", "null", "nope"))
	assert.NotPanics(t, func() { store.Save(Dark) })
}
