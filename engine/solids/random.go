package solids

import (
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/geodesic/engine/math"
)

// RandomPointCloud returns n points in the z = 0 plane with x and y uniform
// in [-1, 1], rounded to three decimals. It is not part of the icosphere
// pipeline.
func RandomPointCloud(n int, seed uint64) []math.Vec3 {
	r := rand.New(rand.NewSource(seed))
	points := make([]math.Vec3, n)
	for i := range points {
		points[i] = math.NewVec3(
			math.Round(r.Float64()*2-1, 3),
			math.Round(r.Float64()*2-1, 3),
			0,
		)
	}
	return points
}
