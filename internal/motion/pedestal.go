package motion

import (
	"math"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/spatial"
)

// Pedestal translates the camera vertically. Like truck, the target follows
// the actual post-clamp delta.
type Pedestal struct{}

func NewPedestal() *Pedestal { return &Pedestal{} }

func (*Pedestal) Kind() string { return "pedestal" }

func (*Pedestal) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	var signed float64
	if name, ok := ctx.Params.Str("destination_target"); ok {
		dest, ok := ctx.resolveTarget(name)
		if !ok {
			return nil, ctx.State, skipf("pedestal: unresolvable destination %q", name)
		}
		signed = dest.Y() - ctx.State.Position.Y()
	} else {
		sign := 0.0
		switch dir, _ := ctx.Params.Str("direction"); dir {
		case "up":
			sign = 1.0
		case "down":
			sign = -1.0
		default:
			return nil, ctx.State, skipf("pedestal: missing or unrecognized direction %q", dir)
		}
		mag, err := overrideOrDescriptor(ctx, "pedestal")
		if err != nil {
			return nil, ctx.State, err
		}
		signed = sign * mag
	}
	if math.Abs(signed) < zeroMagnitude {
		return ctx.hold()
	}

	candidate := ctx.State.Position.Add(spatial.WorldUp.Mul(signed))
	movedTarget := ctx.State.Target.Add(spatial.WorldUp.Mul(signed))
	final := newClamper(ctx).apply(ctx.State.Position, candidate, &movedTarget)

	delta := final.Sub(ctx.State.Position)
	end := camera.State{Position: final, Target: ctx.State.Target.Add(delta)}
	return ctx.anchorPair(end), end, nil
}
