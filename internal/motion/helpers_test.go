package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/plan"
	"github.com/jmallek/shotpath/internal/scene"
)

func testCtx(pos, target mgl64.Vec3, dur float64, params plan.Params) *Context {
	return &Context{
		State:    camera.State{Position: pos, Target: target},
		Duration: dur,
		Params:   params,
		Easing:   camera.EasingLinear,
	}
}

func withScene(ctx *Context, sc *scene.SceneAnalysis) *Context {
	ctx.Scene = sc
	return ctx
}

func withEnv(ctx *Context, env *scene.EnvironmentalAnalysis) *Context {
	ctx.Env = env
	return ctx
}

func f64(v float64) *float64 { return &v }

var sceneWithFeature = scene.SceneAnalysis{
	Features: []scene.Feature{{ID: "mark", Position: mgl64.Vec3{3, 0, 2}}},
}

func envWithHeights(min, max float64) *scene.EnvironmentalAnalysis {
	return &scene.EnvironmentalAnalysis{
		Constraints: &scene.CameraConstraints{MinHeight: &min, MaxHeight: &max},
	}
}

func approxVec(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
