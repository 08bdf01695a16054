package emitter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/geodesic/engine/solids"
)

func icosphereFaces(n int) []solids.Face {
	return solids.NewIcosahedron().
		DiscoverFaces(solids.DefaultAdjacencyThreshold).
		Subdivide(n).
		Faces
}

func TestNewSphereMesh(t *testing.T) {
	faces := icosphereFaces(1)
	mesh := NewSphereMesh(faces)

	require.Len(t, mesh.Vertices, 42)
	require.Len(t, mesh.Indices, 3*len(faces))
	for i, f := range faces {
		for k, p := range f.Points() {
			v := mesh.Vertices[mesh.Indices[3*i+k]]
			assert.Equal(t, p, v.Position)
			assert.Equal(t, p, v.Normal)
		}
	}
}

func TestWriteOBJ(t *testing.T) {
	mesh := NewSphereMesh(icosphereFaces(0))

	var buf bytes.Buffer
	require.NoError(t, New(&buf).WriteOBJ(mesh))

	counts := map[string]int{}
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		counts[strings.Fields(l)[0]]++
	}
	assert.Equal(t, map[string]int{"v": 12, "vt": 12, "vn": 12, "f": 20}, counts)
	assert.Contains(t, buf.String(), "\nf 1/1/1 2/2/2 3/3/3\n")
}
