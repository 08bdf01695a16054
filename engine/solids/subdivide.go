package solids

// Subdivide splits every face into four at its edge midpoints, projecting
// the midpoints back onto the unit sphere. Corner triangles come first, then
// the central one, all with the winding of the input face.
//
// Midpoints are recomputed per face. Neighbours sharing an edge compute
// bitwise identical midpoints because Midpoint is symmetric.
func Subdivide(faces []Face) []Face {
	out := make([]Face, 0, len(faces)*4)
	for _, f := range faces {
		p1, p2, p3 := f.A, f.B, f.C
		p4 := p1.Midpoint(p2).Normalized()
		p5 := p2.Midpoint(p3).Normalized()
		p6 := p3.Midpoint(p1).Normalized()
		out = append(out,
			Face{p1, p4, p6},
			Face{p2, p5, p4},
			Face{p3, p6, p5},
			Face{p4, p5, p6},
		)
	}
	return out
}

// SubdivideN applies Subdivide n times.
func SubdivideN(faces []Face, n int) []Face {
	for i := 0; i < n; i++ {
		faces = Subdivide(faces)
	}
	return faces
}

// FaceCount returns the face count after n subdivisions of base faces.
func FaceCount(base, n int) int {
	return base << (2 * n)
}
