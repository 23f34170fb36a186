package motion

import "github.com/jmallek/shotpath/internal/camera"

// FocusOn re-aims the camera at a resolved target without moving it.
type FocusOn struct{}

func NewFocusOn() *FocusOn { return &FocusOn{} }

func (*FocusOn) Kind() string { return "focus_on" }

func (*FocusOn) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	name, ok := ctx.Params.Str("target")
	if !ok {
		return nil, ctx.State, skipf("focus_on: missing target")
	}
	target, ok := ctx.resolveTarget(name)
	if !ok {
		return nil, ctx.State, skipf("focus_on: unresolvable target %q", name)
	}

	if ctx.Params.Has("adjust_framing") && ctx.Log != nil {
		// TODO(framing): reframe by distance band once the planner emits
		// framing intents with stable semantics.
		ctx.Log.Warnw("focus_on: adjust_framing not implemented, ignoring")
	}

	end := camera.State{Position: ctx.State.Position, Target: target}
	return ctx.anchorPair(end), end, nil
}
