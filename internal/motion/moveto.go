package motion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
)

// viewingOffset is the default vantage relative to a move-to destination:
// slightly above and behind, looking down at the point.
var viewingOffset = mgl64.Vec3{0, 0.5, 1.5}

// instantDuration is the near-zero length of an instant reposition; it
// stays non-zero so the command is not mistaken for an easing anchor.
const instantDuration = 0.01

// MoveTo repositions the camera to a vantage point near a resolved
// destination, looking at it.
type MoveTo struct{}

func NewMoveTo() *MoveTo { return &MoveTo{} }

func (*MoveTo) Kind() string { return "move_to" }

func (*MoveTo) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	name, ok := ctx.Params.Str("destination_target")
	if !ok {
		name, ok = ctx.Params.Str("target")
	}
	if !ok {
		return nil, ctx.State, skipf("move_to: missing destination")
	}
	dest, ok := ctx.resolveTarget(name)
	if !ok {
		return nil, ctx.State, skipf("move_to: unresolvable destination %q", name)
	}

	vantage := dest.Add(viewingOffset)

	if speed, _ := ctx.Params.Str("speed"); speed == "instant" {
		end := camera.State{Position: vantage, Target: dest}
		cmd := camera.Command{
			Position: vantage,
			Target:   dest,
			Duration: instantDuration,
			Easing:   camera.EasingLinear,
		}
		return []camera.Command{cmd}, end, nil
	}

	final := newClamper(ctx).apply(ctx.State.Position, vantage, &dest)
	end := camera.State{Position: final, Target: dest}
	return ctx.anchorPair(end), end, nil
}
