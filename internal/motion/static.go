package motion

import "github.com/jmallek/shotpath/internal/camera"

// Static holds the current framing for the step duration.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (*Static) Kind() string { return "static" }

func (*Static) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	cmd := camera.Command{
		Position:    ctx.State.Position,
		Target:      ctx.State.Target,
		Orientation: ctx.State.Orientation,
		Duration:    ctx.Duration,
		Easing:      camera.EasingLinear,
	}
	return []camera.Command{cmd}, ctx.State, nil
}
