package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/jmallek/shotpath/internal/scene"
	"github.com/jmallek/shotpath/internal/spatial"
)

// clamper applies the two safety checks to a candidate end position: the
// height/distance envelope, then the raycast clamp against the subject box
// shifted by the user's vertical adjustment.
type clamper struct {
	cons *scene.CameraConstraints
	box  *spatial.AABB
	log  *zap.SugaredLogger
}

func newClamper(ctx *Context) clamper {
	c := clamper{cons: ctx.Env.CameraConstraintsOrNil(), log: ctx.Log}
	if box, ok := ctx.Scene.SubjectBox(); ok {
		shifted := box.Translate(mgl64.Vec3{0, ctx.Env.VerticalAdjustment(), 0})
		c.box = &shifted
	}
	return c
}

// apply runs both checks in order. prev is the last known-safe position the
// camera travels from; ref, when non-nil, is the reference point the
// distance envelope is measured against.
func (c clamper) apply(prev, candidate mgl64.Vec3, ref *mgl64.Vec3) mgl64.Vec3 {
	out := c.clampEnvelope(candidate, ref)
	return c.clampSubject(prev, out)
}

func (c clamper) clampEnvelope(p mgl64.Vec3, ref *mgl64.Vec3) mgl64.Vec3 {
	if c.cons == nil {
		return p
	}
	in := p
	if c.cons.MinHeight != nil && p.Y() < *c.cons.MinHeight {
		p[1] = *c.cons.MinHeight
	}
	if c.cons.MaxHeight != nil && p.Y() > *c.cons.MaxHeight {
		p[1] = *c.cons.MaxHeight
	}
	if ref != nil {
		d := p.Sub(*ref).Len()
		want := d
		if c.cons.MinDistance != nil && d < *c.cons.MinDistance {
			want = *c.cons.MinDistance
		}
		if c.cons.MaxDistance != nil && d > *c.cons.MaxDistance {
			want = *c.cons.MaxDistance
		}
		if want != d {
			dir := spatial.Normalize(p.Sub(*ref), spatial.WorldZ)
			p = ref.Add(dir.Mul(want))
		}
	}
	if p != in && c.log != nil {
		c.log.Warnw("camera clamped to envelope", "candidate", in, "clamped", p)
	}
	return p
}

func (c clamper) clampSubject(prev, candidate mgl64.Vec3) mgl64.Vec3 {
	if c.box == nil {
		return candidate
	}
	box := *c.box
	standoff := math.Min(math.Max(0.05*box.Diagonal(), 0.1), 0.5)

	travel := candidate.Sub(prev)
	dist := travel.Len()
	if dist >= spatial.Eps {
		dir := travel.Mul(1 / dist)
		if t, hit := (spatial.Ray{Origin: prev, Dir: dir}).IntersectAABB(box); hit && t < dist {
			stopped := prev.Add(dir.Mul(math.Max(t-standoff, 0)))
			if c.log != nil {
				c.log.Warnw("camera path intersects subject, stopping short",
					"candidate", candidate, "clamped", stopped)
			}
			return stopped
		}
	}

	if box.ContainsPoint(candidate) {
		surface := box.ClampPoint(candidate)
		outward := candidate.Sub(box.Center())
		if outward.Len() < spatial.Eps {
			return surface
		}
		pushed := surface.Add(outward.Normalize().Mul(standoff))
		if c.log != nil {
			c.log.Warnw("camera inside subject, pushing out", "candidate", candidate, "clamped", pushed)
		}
		return pushed
	}
	return candidate
}
