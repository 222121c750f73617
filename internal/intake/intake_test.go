package intake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
	return path
}

func TestSelectCapturesMetadata(t *testing.T) {
	path := writeTemp(t, "Plan House.PDF", 2048)

	f, err := Select(path)
	require.NoError(t, err)

	assert.Equal(t, "Plan House.PDF", f.Name)
	assert.Equal(t, int64(2048), f.Size)
	assert.Equal(t, ".pdf", f.Ext, "extension class is lower-cased")
	assert.True(t, f.Accepted())
}

func TestSelectAcceptsUnsupportedType(t *testing.T) {
	// The loose path accepts anything; the service decides.
	path := writeTemp(t, "notes.txt", 10)

	f, err := Select(path)
	require.NoError(t, err)
	assert.False(t, f.Accepted())
}

func TestSelectRejectsDirectory(t *testing.T) {
	_, err := Select(t.TempDir())
	assert.Error(t, err)
}

func TestSelectRejectsMissingFile(t *testing.T) {
	_, err := Select(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "2.0 KB", FormatSize(2048))
	assert.Equal(t, "2.0 MB", FormatSize(2*1024*1024))
}
