package solids

import (
	m "math"

	"github.com/spaghettifunk/geodesic/engine/math"
)

// IcosahedronVertexCount is the size of the base vertex pool.
const IcosahedronVertexCount = 12

// IcosahedronFaceCount is the number of faces of the base solid.
const IcosahedronFaceCount = 20

// IcosahedronVertices returns the twelve un-normalized vertices built from
// (1, φ, 0). Each of the four sign patterns on the first two coordinates is
// rotated left three times and every rotation is emitted.
func IcosahedronVertices() []math.Vec3 {
	points := make([]math.Vec3, 0, IcosahedronVertexCount)
	for signs := 0; signs < 4; signs++ {
		g := [3]float64{
			float64((signs%2)*2-1) * 1,
			float64((signs/2)*2-1) * math.K_PHI,
			0,
		}
		for swap := 0; swap < 3; swap++ {
			g = [3]float64{g[1], g[2], g[0]}
			points = append(points, math.NewVec3(g[0], g[1], g[2]))
		}
	}
	return points
}

// NormalizePoints returns a new slice holding every point scaled to unit length.
func NormalizePoints(points []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(points))
	for i, p := range points {
		out[i] = p.Normalized()
	}
	return out
}

// IcosahedronEdgeLength is the edge length of the regular icosahedron with
// unit circumradius, 4 / sqrt(10 + 2√5).
func IcosahedronEdgeLength() float64 {
	return 4 / m.Sqrt(10+2*m.Sqrt(5))
}

// IcosahedronAdjacencyThreshold sits halfway between the edge length and the
// shortest diagonal (φ times the edge) of the unit-circumradius icosahedron.
// It only holds for the unit sphere.
func IcosahedronAdjacencyThreshold() float64 {
	edge := IcosahedronEdgeLength()
	return (edge + math.K_PHI*edge) / 2
}
