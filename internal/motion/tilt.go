package motion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
)

// Tilt pitches the camera target around the camera about the camera-local
// right axis. Tilting up is a negative angle (the view vector pitches
// upward); down is a positive angle.
//
// A tilt whose explicit target parameter resolves to a point other than the
// current target is absorbed entirely by the orchestrator's target blend and
// never reaches this generator. When that target is unresolvable or already
// equals the current target, the step does reach this generator, which does
// not read the target parameter and tilts by angle and direction as usual.
type Tilt struct{}

func NewTilt() *Tilt { return &Tilt{} }

func (*Tilt) Kind() string { return "tilt" }

func (*Tilt) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	angle, err := aimAngle(ctx, "tilt", "down", "up")
	if err != nil {
		return nil, ctx.State, err
	}

	_, right, _, ok := cameraBasis(ctx.State.Position, ctx.State.Target)
	if !ok {
		return nil, ctx.State, skipf("tilt: degenerate view")
	}

	// A positive right-handed rotation about camera right pitches the view
	// upward, so the down-positive convention needs the sign flipped.
	end := camera.State{
		Position: ctx.State.Position,
		Target:   rotateAim(ctx.State, right, -mgl64.DegToRad(angle)),
	}
	return ctx.anchorPair(end), end, nil
}
