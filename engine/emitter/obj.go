package emitter

import (
	"fmt"

	"github.com/spaghettifunk/geodesic/engine/math"
	"github.com/spaghettifunk/geodesic/engine/solids"
)

// Mesh is an indexed triangle mesh. Each group of three indices is one face.
type Mesh struct {
	Vertices []math.Vertex3D
	Indices  []uint32
}

// NewSphereMesh indexes faces lying on the unit sphere. Normals equal the
// positions and texture coordinates use the equirectangular mapping.
func NewSphereMesh(faces []solids.Face) *Mesh {
	soup := make([]math.Vertex3D, 0, len(faces)*3)
	for _, f := range faces {
		for _, p := range f.Points() {
			soup = append(soup, math.Vertex3D{
				Position: p,
				Normal:   p,
				Texcoord: p.SphericalUV(),
			})
		}
	}
	vertices, indices := math.GeometryDeduplicateVertices(soup)
	return &Mesh{Vertices: vertices, Indices: indices}
}

// WriteOBJ writes the mesh as `v`, `vt` and `vn` records followed by
// one-based `f v/vt/vn` faces.
func (e *Emitter) WriteOBJ(mesh *Mesh) error {
	for _, v := range mesh.Vertices {
		fmt.Fprintf(e.w, "v %s %s %s\n", formatFloat(v.Position.X), formatFloat(v.Position.Y), formatFloat(v.Position.Z))
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(e.w, "vt %s %s\n", formatFloat(v.Texcoord.U), formatFloat(v.Texcoord.V))
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(e.w, "vn %s %s %s\n", formatFloat(v.Normal.X), formatFloat(v.Normal.Y), formatFloat(v.Normal.Z))
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(e.w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return e.w.Flush()
}
