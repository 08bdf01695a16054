package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/geodesic/engine/core"
)

func lineCount(t *testing.T, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return -1
	}
	return strings.Count(string(data), "\n")
}

func TestWatchRequiresOutputFile(t *testing.T) {
	e, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.ErrorIs(t, e.Watch(context.Background(), "geodesic.toml"), core.ErrInvalidConfig)
}

func TestWatchRegenerates(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "geodesic.toml")
	outPath := filepath.Join(dir, "sphere.lines")
	require.NoError(t, os.WriteFile(configPath, []byte("subdivisions = 1\n"), 0o644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	cfg.Output = outPath
	e, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Watch(ctx, configPath) }()

	require.Eventually(t, func() bool { return lineCount(t, outPath) == 1+2*120 }, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(configPath, []byte("subdivisions = 2\n"), 0o644))
	require.Eventually(t, func() bool { return lineCount(t, outPath) == 1+2*480 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchKeepsOverrides(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "geodesic.toml")
	outPath := filepath.Join(dir, "sphere.lines")
	require.NoError(t, os.WriteFile(configPath, []byte("subdivisions = 2\n"), 0o644))

	override := func(cfg *ApplicationConfig) { cfg.Subdivisions = 1 }
	cfg, err := LoadConfigWith(configPath, override)
	require.NoError(t, err)
	cfg.Output = outPath
	e, err := New(cfg)
	require.NoError(t, err)
	e.SetOverride(override)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Watch(ctx, configPath) }()

	require.Eventually(t, func() bool { return lineCount(t, outPath) == 1+2*120 }, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(configPath, []byte("name = \"reloaded\"\nsubdivisions = 2\n"), 0o644))
	require.Eventually(t, func() bool { return e.Config().Name == "reloaded" }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 1, e.Config().Subdivisions)
	assert.Equal(t, 1+2*120, lineCount(t, outPath))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
