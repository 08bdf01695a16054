package math

import "github.com/spaghettifunk/geodesic/engine/core"

// GeometryDeduplicateVertices collapses exactly equal vertices of a triangle
// soup into a unique vertex list and returns the index buffer referencing it.
// Unique vertices keep their first-seen order.
func GeometryDeduplicateVertices(vertices []Vertex3D) ([]Vertex3D, []uint32) {
	uniqueVerts := make([]Vertex3D, 0, len(vertices)/2)
	indices := make([]uint32, len(vertices))
	seen := make(map[Vertex3D]uint32, len(vertices)/2)

	for v, vert := range vertices {
		if u, found := seen[vert]; found {
			indices[v] = u
			continue
		}
		u := uint32(len(uniqueVerts))
		seen[vert] = u
		uniqueVerts = append(uniqueVerts, vert)
		indices[v] = u
	}

	removedCount := len(vertices) - len(uniqueVerts)
	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", removedCount, len(vertices), len(uniqueVerts))

	return uniqueVerts, indices
}

// GeometryCalculateExtents returns the axis-aligned bounds of the given points.
func GeometryCalculateExtents(points []Vec3) Extents3D {
	if len(points) == 0 {
		return Extents3D{Min: NewVec3Zero(), Max: NewVec3Zero()}
	}
	ext := Extents3D{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		ext.Min.X = min(ext.Min.X, p.X)
		ext.Min.Y = min(ext.Min.Y, p.Y)
		ext.Min.Z = min(ext.Min.Z, p.Z)
		ext.Max.X = max(ext.Max.X, p.X)
		ext.Max.Y = max(ext.Max.Y, p.Y)
		ext.Max.Z = max(ext.Max.Z, p.Z)
	}
	return ext
}
