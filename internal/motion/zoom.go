package motion

import (
	"math"

	"github.com/jmallek/shotpath/internal/camera"
)

// Zoom moves the camera along the line to its zoom target by a distance
// factor.
type Zoom struct{}

func NewZoom() *Zoom { return &Zoom{} }

func (*Zoom) Kind() string { return "zoom" }

func (*Zoom) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	target := ctx.State.Target
	if name, ok := ctx.Params.Str("target"); ok {
		resolved, ok := ctx.resolveTarget(name)
		if !ok {
			return nil, ctx.State, skipf("zoom: unresolvable target %q", name)
		}
		target = resolved
	}

	offset := ctx.State.Position.Sub(target)
	curDist := offset.Len()
	if curDist < zeroMagnitude {
		return nil, ctx.State, skipf("zoom: camera is at the zoom target")
	}

	direction, _ := ctx.Params.Str("direction")
	factor, err := zoomFactor(ctx, direction, curDist)
	if err != nil {
		return nil, ctx.State, err
	}
	if math.Abs(factor-1) < zeroMagnitude {
		return ctx.hold()
	}

	// Renormalize so the new distance stays inside the envelope.
	if cons := ctx.Env.CameraConstraintsOrNil(); cons != nil {
		newDist := curDist * factor
		if cons.MinDistance != nil && newDist < *cons.MinDistance {
			newDist = *cons.MinDistance
		}
		if cons.MaxDistance != nil && newDist > *cons.MaxDistance {
			newDist = *cons.MaxDistance
		}
		factor = newDist / curDist
	}

	candidate := target.Add(offset.Mul(factor))
	cl := newClamper(ctx)
	final := cl.apply(ctx.State.Position, candidate, &target)

	end := camera.State{Position: final, Target: target}
	return ctx.anchorPair(end), end, nil
}

// zoomFactor resolves the distance factor: explicit override, then the
// descriptor table, then the goal-distance descriptor as a signed ratio
// against the current distance.
func zoomFactor(ctx *Context, direction string, curDist float64) (float64, error) {
	if f, ok := ctx.Params.Float("factor_override"); ok {
		if f <= 0 {
			return 0, skipf("zoom: non-positive factor override %v", f)
		}
		return f, nil
	}

	if s, ok := ctx.Params.Str("factor_descriptor"); ok {
		d, ok := ParseDescriptor(s)
		if !ok {
			return 0, skipf("zoom: unrecognized factor descriptor %q", s)
		}
		f, ok := FactorFor(d, direction)
		if !ok {
			return 0, skipf("zoom: descriptor needs a direction (in/out), got %q", direction)
		}
		return f, nil
	}

	if s, ok := ctx.Params.Str("target_distance_descriptor"); ok {
		d, ok := ParseDescriptor(s)
		if !ok {
			return 0, skipf("zoom: unrecognized distance descriptor %q", s)
		}
		factor := GoalDistanceFor(d, ctx.Scene) / curDist
		// Nudge so the move strictly honors an explicit direction.
		switch direction {
		case "in":
			factor = math.Min(factor, 0.99)
		case "out":
			factor = math.Max(factor, 1.01)
		}
		return factor, nil
	}

	return 0, skipf("zoom: no factor parameter")
}
