package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/geodesic/engine/core"
	"github.com/spaghettifunk/geodesic/engine/solids"
)

func generate(t *testing.T, edit func(*ApplicationConfig)) []string {
	t.Helper()
	cfg := DefaultConfig()
	if edit != nil {
		edit(cfg)
	}
	e, err := New(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, e.Generate(&buf))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestGenerateDefault(t *testing.T) {
	lines := generate(t, nil)
	assert.Equal(t, "lines", lines[0])
	assert.Len(t, lines, 1+2*480)
}

func TestGenerateSingleSubdivision(t *testing.T) {
	lines := generate(t, func(c *ApplicationConfig) { c.Subdivisions = 1 })
	assert.Len(t, lines, 1+2*120)
}

func TestGenerateAnalyticThreshold(t *testing.T) {
	fixed := generate(t, nil)
	analytic := generate(t, func(c *ApplicationConfig) { c.Threshold = 0 })
	assert.Equal(t, fixed, analytic)
}

func TestGeneratePoints(t *testing.T) {
	lines := generate(t, func(c *ApplicationConfig) { c.Mode = "points" })
	assert.Equal(t, "points", lines[0])
	assert.Len(t, lines, 1+162)
}

func TestGenerateIcosahedron(t *testing.T) {
	lines := generate(t, func(c *ApplicationConfig) {
		c.Shape = ShapeIcosahedron
		c.Mode = "points"
	})
	require.Len(t, lines, 1+12)
	assert.Equal(t, "points", lines[0])
	assert.Equal(t, "-1.618033988749895 0 -1 1", lines[1])
	assert.Equal(t, "1 1.618033988749895 0 1", lines[12])
}

func TestGenerateRandom(t *testing.T) {
	edit := func(c *ApplicationConfig) {
		c.Shape = ShapeRandom
		c.Mode = "points"
		c.Random = RandomConfig{Count: 25, Seed: 3}
	}
	lines := generate(t, edit)
	require.Len(t, lines, 1+25)
	for _, l := range lines[1:] {
		f := strings.Fields(l)
		require.Len(t, f, 4)
		assert.Equal(t, []string{"0", "1"}, f[2:])
	}
	assert.Equal(t, lines, generate(t, edit))
}

func TestGenerateOBJ(t *testing.T) {
	lines := generate(t, func(c *ApplicationConfig) { c.Format = FormatOBJ; c.Subdivisions = 1 })
	var faces int
	for _, l := range lines {
		if strings.HasPrefix(l, "f ") {
			faces++
		}
	}
	assert.Equal(t, 80, faces)
}

func TestBuildIcosphereMetrics(t *testing.T) {
	e, err := New(DefaultConfig())
	require.NoError(t, err)

	solid := e.BuildIcosphere()
	assert.Equal(t, solids.StageEdges, solid.Stage)

	stages := e.Metrics()
	require.Len(t, stages, 4)
	names := make([]string, len(stages))
	counts := make([]int, len(stages))
	for i, s := range stages {
		names[i] = s.Stage
		counts[i] = s.Count
	}
	assert.Equal(t, []string{"normalized", "faces", "subdivided", "edges"}, names)
	assert.Equal(t, []int{12, 20, 320, 480}, counts)
}

func TestBuildIcosphereMetricsWithoutSubdivision(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Subdivisions = 0
	e, err := New(cfg)
	require.NoError(t, err)

	solid := e.BuildIcosphere()
	assert.Len(t, solid.Faces, solids.IcosahedronFaceCount)

	stages := e.Metrics()
	require.Len(t, stages, 3)
	names := make([]string, len(stages))
	counts := make([]int, len(stages))
	for i, s := range stages {
		names[i] = s.Stage
		counts[i] = s.Count
	}
	assert.Equal(t, []string{"normalized", "faces", "edges"}, names)
	assert.Equal(t, []int{12, 20, 30}, counts)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "quads"
	_, err := New(cfg)
	assert.ErrorIs(t, err, core.ErrUnknownMode)

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	_, err = New(cfg)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestGenerateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.lines")
	cfg := DefaultConfig()
	cfg.Subdivisions = 1
	e, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, e.GenerateFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "lines\n"))
	assert.Equal(t, 1+2*120, strings.Count(string(data), "\n"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file is cleaned up")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, outputFileMode, info.Mode().Perm())
}
