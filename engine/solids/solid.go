package solids

import "github.com/spaghettifunk/geodesic/engine/math"

// Stage identifies how far a Solid has progressed through the pipeline.
type Stage uint8

const (
	// Raw vertex pool, straight from the golden-ratio construction
	StageRaw Stage = iota
	// Vertex pool projected onto the unit sphere
	StageNormalized
	// Faces discovered from the vertex pool
	StageFaces
	// Faces replaced by at least one level of subdivision
	StageSubdivided
	// Unique undirected edges extracted from the faces
	StageEdges
)

func (s Stage) String() string {
	switch s {
	case StageRaw:
		return "raw"
	case StageNormalized:
		return "normalized"
	case StageFaces:
		return "faces"
	case StageSubdivided:
		return "subdivided"
	case StageEdges:
		return "edges"
	default:
		return "unknown"
	}
}

// Face is an ordered triple of corners. Two faces holding the same corners
// in a different order are distinct.
type Face struct {
	A, B, C math.Vec3
}

// Points returns the corners in order.
func (f Face) Points() [3]math.Vec3 {
	return [3]math.Vec3{f.A, f.B, f.C}
}

// Edges returns (A,B), (B,C) and (C,A).
func (f Face) Edges() [3]Edge {
	return [3]Edge{{f.A, f.B}, {f.B, f.C}, {f.C, f.A}}
}

// Canonical rotates the face so that its lexicographically smallest corner
// comes first. Winding is preserved, so a face and its reflection stay
// distinct. Face identity comparisons must go through this.
func (f Face) Canonical() Face {
	switch {
	case f.B.Less(f.A) && !f.C.Less(f.B):
		return Face{f.B, f.C, f.A}
	case f.C.Less(f.A) && f.C.Less(f.B):
		return Face{f.C, f.A, f.B}
	default:
		return f
	}
}

// Solid is the working set of one pipeline stage. Every transition returns
// a new Solid; the receiver is never modified.
type Solid struct {
	Stage  Stage
	Points []math.Vec3
	Faces  []Face
	Edges  []Edge
}

// NewIcosahedron returns the normalized twelve-point vertex pool of a
// regular icosahedron inscribed in the unit sphere.
func NewIcosahedron() *Solid {
	raw := &Solid{Stage: StageRaw, Points: IcosahedronVertices()}
	return raw.Normalize()
}

// Normalize projects every point onto the unit sphere.
func (s *Solid) Normalize() *Solid {
	return &Solid{Stage: StageNormalized, Points: NormalizePoints(s.Points)}
}

// DiscoverFaces builds the face list from the vertex pool.
func (s *Solid) DiscoverFaces(threshold float64) *Solid {
	return &Solid{Stage: StageFaces, Points: s.Points, Faces: FindFaces(s.Points, threshold)}
}

// Subdivide applies n levels of geodesic subdivision. The vertex pool of
// the result is the unique corner set of the new faces.
func (s *Solid) Subdivide(n int) *Solid {
	if n <= 0 {
		return s
	}
	faces := SubdivideN(s.Faces, n)
	return &Solid{Stage: StageSubdivided, Points: UniquePoints(faces), Faces: faces}
}

// ExtractEdges derives the unique undirected edge list from the faces.
func (s *Solid) ExtractEdges() *Solid {
	return &Solid{Stage: StageEdges, Points: s.Points, Faces: s.Faces, Edges: ExtractEdges(s.Faces)}
}

// UniquePoints returns the distinct corners of faces in first-seen order.
func UniquePoints(faces []Face) []math.Vec3 {
	seen := make(map[math.Vec3]struct{}, len(faces)/2+2)
	points := make([]math.Vec3, 0, len(faces)/2+2)
	for _, f := range faces {
		for _, p := range f.Points() {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			points = append(points, p)
		}
	}
	return points
}
