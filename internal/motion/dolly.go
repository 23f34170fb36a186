package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
)

// Dolly translates the camera along its view direction. The target does not
// move, so the framing tightens or loosens.
type Dolly struct{}

func NewDolly() *Dolly { return &Dolly{} }

func (*Dolly) Kind() string { return "dolly" }

func (*Dolly) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	forward, _, _, ok := cameraBasis(ctx.State.Position, ctx.State.Target)
	if !ok {
		return nil, ctx.State, skipf("dolly: degenerate view")
	}

	signed, err := dollySignedDistance(ctx, forward)
	if err != nil {
		return nil, ctx.State, err
	}
	if math.Abs(signed) < zeroMagnitude {
		return ctx.hold()
	}

	candidate := ctx.State.Position.Add(forward.Mul(signed))
	ref := ctx.State.Target
	final := newClamper(ctx).apply(ctx.State.Position, candidate, &ref)

	end := camera.State{Position: final, Target: ctx.State.Target}
	return ctx.anchorPair(end), end, nil
}

// dollySignedDistance resolves direction and magnitude in priority order:
// goal distance, explicit destination projected onto the view, then the
// direction word with an override or descriptor magnitude.
func dollySignedDistance(ctx *Context, forward mgl64.Vec3) (float64, error) {
	if s, ok := ctx.Params.Str("target_distance_descriptor"); ok {
		d, ok := ParseDescriptor(s)
		if !ok {
			return 0, skipf("dolly: unrecognized distance descriptor %q", s)
		}
		// Positive delta means the camera is beyond the goal and moves in.
		return ctx.currentDistance() - GoalDistanceFor(d, ctx.Scene), nil
	}

	if name, ok := ctx.Params.Str("destination_target"); ok {
		dest, ok := ctx.resolveTarget(name)
		if !ok {
			return 0, skipf("dolly: unresolvable destination %q", name)
		}
		return dest.Sub(ctx.State.Position).Dot(forward), nil
	}

	sign := 0.0
	switch dir, _ := ctx.Params.Str("direction"); dir {
	case "in", "forward":
		sign = 1.0
	case "out", "backward":
		sign = -1.0
	default:
		return 0, skipf("dolly: missing or unrecognized direction %q", dir)
	}

	if d, ok := ctx.Params.Float("distance_override"); ok {
		if d <= 0 {
			return 0, skipf("dolly: non-positive distance override %v", d)
		}
		return sign * d, nil
	}
	if s, ok := ctx.Params.Str("distance_descriptor"); ok {
		d, ok := ParseDescriptor(s)
		if !ok {
			return 0, skipf("dolly: unrecognized distance descriptor %q", s)
		}
		return sign * DistanceFor(d, "dolly", ctx.Scene, ctx.currentDistance()), nil
	}
	return 0, skipf("dolly: no distance parameter")
}
