package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geodesic.toml")
	require.NoError(t, os.WriteFile(path, []byte("subdivisions = 1\n"), 0o644))

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("subdivisions = 2\n"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	select {
	case got := <-cw.Events():
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the watched file")
	}

	require.NoError(t, cw.Close())
	assert.Error(t, cw.Close())

	// channels close once the watcher has stopped
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-cw.Events():
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestConfigWatcherMissingDir(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "missing", "geodesic.toml"))
	assert.Error(t, err)
}
