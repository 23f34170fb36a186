package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func NewAABB(min, max mgl64.Vec3) AABB {
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			min[i], max[i] = max[i], min[i]
		}
	}
	return AABB{Min: min, Max: max}
}

func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b AABB) Diagonal() float64 {
	return b.Size().Len()
}

// ContainsPoint reports whether p lies strictly inside the box. Points on
// the surface do not count as contained.
func (b AABB) ContainsPoint(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] <= b.Min[i] || p[i] >= b.Max[i] {
			return false
		}
	}
	return true
}

// ClampPoint returns the nearest point to p on or inside the box. For a
// point inside, the nearest surface point is returned.
func (b AABB) ClampPoint(p mgl64.Vec3) mgl64.Vec3 {
	out := p
	for i := 0; i < 3; i++ {
		out[i] = math.Min(math.Max(out[i], b.Min[i]), b.Max[i])
	}
	if !b.ContainsPoint(p) {
		return out
	}
	// Inside: push the cheapest axis to its face.
	best := 0
	bestDist := math.Inf(1)
	bestVal := 0.0
	for i := 0; i < 3; i++ {
		if d := p[i] - b.Min[i]; d < bestDist {
			best, bestDist, bestVal = i, d, b.Min[i]
		}
		if d := b.Max[i] - p[i]; d < bestDist {
			best, bestDist, bestVal = i, d, b.Max[i]
		}
	}
	out[best] = bestVal
	return out
}

// Translate returns the box shifted by d.
func (b AABB) Translate(d mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}
