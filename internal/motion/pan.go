package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/spatial"
)

// Pan rotates the camera target around the camera about the camera-local
// up axis. The position does not move. Panning left is a positive rotation.
type Pan struct{}

func NewPan() *Pan { return &Pan{} }

func (*Pan) Kind() string { return "pan" }

func (*Pan) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	angle, err := aimAngle(ctx, "pan", "left", "right")
	if err != nil {
		return nil, ctx.State, err
	}

	_, _, up, ok := cameraBasis(ctx.State.Position, ctx.State.Target)
	if !ok {
		return nil, ctx.State, skipf("pan: degenerate view")
	}

	end := camera.State{
		Position: ctx.State.Position,
		Target:   rotateAim(ctx.State, up, mgl64.DegToRad(angle)),
	}
	return ctx.anchorPair(end), end, nil
}

// aimAngle reads the angle parameter and applies the positive/negative
// direction words. An explicit direction forces the sign; otherwise the
// angle's own sign stands, with posWord as the positive sense.
func aimAngle(ctx *Context, kind, posWord, negWord string) (float64, error) {
	angle, ok := ctx.Params.Float("angle")
	if !ok || angle == 0 {
		return 0, skipf("%s: missing or zero angle", kind)
	}
	dir, ok := ctx.Params.Str("direction")
	if !ok {
		return angle, nil
	}
	switch dir {
	case posWord:
		return math.Abs(angle), nil
	case negWord:
		return -math.Abs(angle), nil
	}
	return 0, skipf("%s: unrecognized direction %q", kind, dir)
}

// rotateAim spins the view vector around the camera by angle radians about
// axis and returns the new target.
func rotateAim(s camera.State, axis mgl64.Vec3, angle float64) mgl64.Vec3 {
	rel := s.Target.Sub(s.Position)
	return s.Position.Add(spatial.RotateAbout(rel, axis, angle))
}
