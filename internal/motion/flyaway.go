package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/spatial"
)

// FlyAway retreats from a resolved target along the line between them, with
// an optional upward bias, keeping the target framed.
type FlyAway struct{}

func NewFlyAway() *FlyAway { return &FlyAway{} }

func (*FlyAway) Kind() string { return "fly_away" }

func (*FlyAway) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	target := ctx.State.Target
	if name, ok := ctx.Params.Str("target"); ok {
		resolved, ok := ctx.resolveTarget(name)
		if !ok {
			return nil, ctx.State, skipf("fly_away: unresolvable target %q", name)
		}
		target = resolved
	}

	dist, err := overrideOrDescriptor(ctx, "fly_away")
	if err != nil {
		return nil, ctx.State, err
	}
	if math.Abs(dist) < zeroMagnitude {
		return ctx.hold()
	}

	lift := 0.0
	if v, ok := ctx.Params.Float("lift_override"); ok {
		lift = v
	} else if ascend, _ := ctx.Params.Bool("ascend"); ascend {
		lift = 0.25 * dist
	}

	away := spatial.Normalize(ctx.State.Position.Sub(target), spatial.WorldZ)
	candidate := ctx.State.Position.Add(away.Mul(dist)).Add(mgl64.Vec3{0, lift, 0})
	final := newClamper(ctx).apply(ctx.State.Position, candidate, &target)

	end := camera.State{Position: final, Target: target}
	return ctx.anchorPair(end), end, nil
}
