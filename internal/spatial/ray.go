package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is an origin plus a unit direction.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// IntersectAABB returns the distance along the ray to the nearest entry
// point of the box. When the origin is already inside, the returned
// distance is 0. The second return is false when the ray misses entirely.
func (r Ray) IntersectAABB(b AABB) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for i := 0; i < 3; i++ {
		if math.Abs(r.Dir[i]) < Eps {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[i] - r.Origin[i]) / r.Dir[i]
		t2 := (b.Max[i] - r.Origin[i]) / r.Dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	if tMax < tMin || tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return 0, true
	}
	return tMin, true
}
