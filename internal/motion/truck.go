package motion

import (
	"math"

	"github.com/jmallek/shotpath/internal/camera"
)

// Truck translates the camera along its local right vector. The target
// translates by the same post-clamp delta so the framing direction is
// preserved.
type Truck struct{}

func NewTruck() *Truck { return &Truck{} }

func (*Truck) Kind() string { return "truck" }

func (*Truck) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	_, right, _, ok := cameraBasis(ctx.State.Position, ctx.State.Target)
	if !ok {
		return nil, ctx.State, skipf("truck: degenerate view")
	}

	var signed float64
	if name, ok := ctx.Params.Str("destination_target"); ok {
		dest, ok := ctx.resolveTarget(name)
		if !ok {
			return nil, ctx.State, skipf("truck: unresolvable destination %q", name)
		}
		signed = dest.Sub(ctx.State.Position).Dot(right)
	} else {
		sign := 0.0
		switch dir, _ := ctx.Params.Str("direction"); dir {
		case "right":
			sign = 1.0
		case "left":
			sign = -1.0
		default:
			return nil, ctx.State, skipf("truck: missing or unrecognized direction %q", dir)
		}
		mag, err := overrideOrDescriptor(ctx, "truck")
		if err != nil {
			return nil, ctx.State, err
		}
		signed = sign * mag
	}
	if math.Abs(signed) < zeroMagnitude {
		return ctx.hold()
	}

	candidate := ctx.State.Position.Add(right.Mul(signed))
	movedTarget := ctx.State.Target.Add(right.Mul(signed))
	final := newClamper(ctx).apply(ctx.State.Position, candidate, &movedTarget)

	// The target follows the actual movement, clamps included.
	delta := final.Sub(ctx.State.Position)
	end := camera.State{Position: final, Target: ctx.State.Target.Add(delta)}
	return ctx.anchorPair(end), end, nil
}

// overrideOrDescriptor resolves a translation magnitude from
// distance_override, then distance_descriptor in the given mode.
func overrideOrDescriptor(ctx *Context, kind string) (float64, error) {
	if d, ok := ctx.Params.Float("distance_override"); ok {
		if d <= 0 {
			return 0, skipf("%s: non-positive distance override %v", kind, d)
		}
		return d, nil
	}
	if s, ok := ctx.Params.Str("distance_descriptor"); ok {
		d, ok := ParseDescriptor(s)
		if !ok {
			return 0, skipf("%s: unrecognized distance descriptor %q", kind, s)
		}
		return DistanceFor(d, kind, ctx.Scene, ctx.currentDistance()), nil
	}
	return 0, skipf("%s: no distance parameter", kind)
}
