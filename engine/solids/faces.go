package solids

import "github.com/spaghettifunk/geodesic/engine/math"

// DefaultAdjacencyThreshold is the empirically tuned cutoff for the unit
// icosahedron, whose edge length is about 1.05.
const DefaultAdjacencyThreshold = 1.3

// FindFaces returns every triple i < j < k of points whose three pairwise
// distances are all strictly below threshold, in enumeration order. A
// threshold outside (edge, diagonal) silently yields the wrong face count.
func FindFaces(points []math.Vec3, threshold float64) []Face {
	var faces []Face
	for i, p1 := range points {
		for j := i + 1; j < len(points); j++ {
			p2 := points[j]
			if p1.Distance(p2) >= threshold {
				continue
			}
			for _, p3 := range points[j+1:] {
				if p2.Distance(p3) < threshold && p1.Distance(p3) < threshold {
					faces = append(faces, Face{p1, p2, p3})
				}
			}
		}
	}
	return faces
}
