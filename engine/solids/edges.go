package solids

import "github.com/spaghettifunk/geodesic/engine/math"

// scanFaceLimit is the largest face list deduplicated by linear scan,
// three subdivisions of the icosahedron.
const scanFaceLimit = IcosahedronFaceCount << 6

// Edge is an undirected pair of points.
type Edge struct {
	A, B math.Vec3
}

// Equal reports whether both edges join the same two points, in either
// order, under exact coordinate equality.
func (e Edge) Equal(other Edge) bool {
	return (e.A.Equal(other.A) && e.B.Equal(other.B)) ||
		(e.A.Equal(other.B) && e.B.Equal(other.A))
}

// key orders the endpoints so both directions of an edge map to one key.
func (e Edge) key() Edge {
	if e.B.Less(e.A) {
		return Edge{e.B, e.A}
	}
	return e
}

// AddUniqueEdge appends e unless an equal edge is already present.
func AddUniqueEdge(edges []Edge, e Edge) []Edge {
	for _, kept := range edges {
		if kept.Equal(e) {
			return edges
		}
	}
	return append(edges, e)
}

// ExtractEdges returns the unique undirected edges of faces in first-seen
// order. Large inputs switch from a linear scan to a keyed index; both give
// the same result.
func ExtractEdges(faces []Face) []Edge {
	if len(faces) <= scanFaceLimit {
		return extractEdgesScan(faces)
	}
	return extractEdgesIndexed(faces)
}

func extractEdgesScan(faces []Face) []Edge {
	var edges []Edge
	for _, f := range faces {
		for _, e := range f.Edges() {
			edges = AddUniqueEdge(edges, e)
		}
	}
	return edges
}

func extractEdgesIndexed(faces []Face) []Edge {
	edges := make([]Edge, 0, len(faces)*3/2)
	seen := make(map[Edge]struct{}, len(faces)*3/2)
	for _, f := range faces {
		for _, e := range f.Edges() {
			k := e.key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}
