package motion

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/plan"
	"github.com/jmallek/shotpath/internal/scene"
	"github.com/jmallek/shotpath/internal/spatial"
)

// ErrSkip marks a step that cannot be generated from its parameters. The
// orchestrator treats it as non-fatal: log, skip, keep the camera state.
var ErrSkip = errors.New("motion: step skipped")

func skipf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrSkip)...)
}

// zeroMagnitude is the threshold below which a computed motion collapses to
// a hold.
const zeroMagnitude = 1e-6

// Context carries everything a generator needs for one step.
type Context struct {
	State    camera.State
	Duration float64
	Params   plan.Params
	Scene    *scene.SceneAnalysis
	Env      *scene.EnvironmentalAnalysis
	Easing   string
	Log      *zap.SugaredLogger
}

// Generator produces the keyframes for one motion kind.
type Generator interface {
	Kind() string
	Generate(ctx *Context) ([]camera.Command, camera.State, error)
}

// resolveTarget resolves a symbolic name against the step's scene, falling
// back to the current camera target for the sentinel.
func (ctx *Context) resolveTarget(name string) (mgl64.Vec3, bool) {
	return scene.ResolveTarget(name, ctx.Scene, ctx.Env, ctx.State.Target)
}

// anchorPair emits the standard two-command shape: a zero-duration anchor
// bearing the incoming state, then the outgoing state over the step
// duration. Both carry the step easing so the client interpolator knows the
// curve into the end state.
func (ctx *Context) anchorPair(end camera.State) []camera.Command {
	return []camera.Command{
		{
			Position:    ctx.State.Position,
			Target:      ctx.State.Target,
			Orientation: ctx.State.Orientation,
			Duration:    0,
			Easing:      ctx.Easing,
		},
		{
			Position:    end.Position,
			Target:      end.Target,
			Orientation: end.Orientation,
			Duration:    ctx.Duration,
			Easing:      ctx.Easing,
		},
	}
}

// hold emits a single command that keeps the current state for the step
// duration. Used when the computed magnitude is effectively zero.
func (ctx *Context) hold() ([]camera.Command, camera.State, error) {
	cmd := camera.Command{
		Position:    ctx.State.Position,
		Target:      ctx.State.Target,
		Orientation: ctx.State.Orientation,
		Duration:    ctx.Duration,
		Easing:      camera.EasingLinear,
	}
	return []camera.Command{cmd}, ctx.State, nil
}

// cameraBasis derives the camera-local frame from the current view. When
// the view is parallel to world up, camera right falls back to world X so
// pan/tilt/truck stay finite.
func cameraBasis(pos, target mgl64.Vec3) (forward, right, up mgl64.Vec3, ok bool) {
	view := target.Sub(pos)
	if view.Len() < spatial.Eps {
		return mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	forward = view.Normalize()
	right = spatial.Normalize(forward.Cross(spatial.WorldUp), spatial.WorldX)
	up = spatial.Normalize(right.Cross(forward), spatial.WorldUp)
	return forward, right, up, true
}

// currentDistance is the camera's distance to its target.
func (ctx *Context) currentDistance() float64 {
	return ctx.State.Target.Sub(ctx.State.Position).Len()
}
