package motion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
)

// Rotate turns the camera in place about one of its local axes. Yaw and
// pitch re-aim the target; roll keeps the target and carries explicit start
// and end orientations, since look-at cannot express it.
type Rotate struct{}

func NewRotate() *Rotate { return &Rotate{} }

func (*Rotate) Kind() string { return "rotate" }

func (*Rotate) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	angle, ok := ctx.Params.Float("angle")
	if !ok || angle == 0 {
		return nil, ctx.State, skipf("rotate: missing or zero angle")
	}
	axisName, _ := ctx.Params.Str("axis")

	forward, right, up, ok := cameraBasis(ctx.State.Position, ctx.State.Target)
	if !ok {
		return nil, ctx.State, skipf("rotate: degenerate view")
	}

	switch axisName {
	case "yaw":
		end := camera.State{
			Position: ctx.State.Position,
			Target:   rotateAim(ctx.State, up, mgl64.DegToRad(angle)),
		}
		return ctx.anchorPair(end), end, nil
	case "pitch":
		end := camera.State{
			Position: ctx.State.Position,
			Target:   rotateAim(ctx.State, right, -mgl64.DegToRad(angle)),
		}
		return ctx.anchorPair(end), end, nil
	case "roll":
		start := ctx.State.LookAt()
		endQ := mgl64.QuatRotate(mgl64.DegToRad(angle), forward).Mul(start)
		startState := ctx.State
		startState.Orientation = &start
		cmds := []camera.Command{
			{
				Position:    startState.Position,
				Target:      startState.Target,
				Orientation: &start,
				Duration:    0,
				Easing:      ctx.Easing,
			},
			{
				Position:    startState.Position,
				Target:      startState.Target,
				Orientation: &endQ,
				Duration:    ctx.Duration,
				Easing:      ctx.Easing,
			},
		}
		end := camera.State{Position: startState.Position, Target: startState.Target, Orientation: &endQ}
		return cmds, end, nil
	}
	return nil, ctx.State, skipf("rotate: unrecognized axis %q", axisName)
}
