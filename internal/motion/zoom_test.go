package motion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/plan"
	"github.com/jmallek/shotpath/internal/scene"
)

func TestZoomFactorOverride(t *testing.T) {
	ctx := testCtx(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{
		"factor_override": 0.5,
	})
	cmds, end, err := NewZoom().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 2 {
		t.Fatalf("commands = %d", len(cmds))
	}
	if !approxVec(end.Position, mgl64.Vec3{0, 0, 5}, 1e-9) {
		t.Errorf("end = %v, want (0,0,5)", end.Position)
	}
}

func TestZoomDescriptorClampedByMinDistance(t *testing.T) {
	// Raw huge-in factor 0.15 would land at 0.75; the envelope forces the
	// effective factor to 0.4 so the final distance is exactly 2.
	env := &scene.EnvironmentalAnalysis{Constraints: &scene.CameraConstraints{MinDistance: f64(2)}}
	ctx := testCtx(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{
		"direction": "in", "factor_descriptor": "huge",
	})
	withEnv(ctx, env)

	_, end, err := NewZoom().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(end.Position.Sub(end.Target).Len(), 2.0, 1e-6) {
		t.Errorf("final distance = %v, want 2", end.Position.Sub(end.Target).Len())
	}
}

func TestZoomOutDescriptor(t *testing.T) {
	ctx := testCtx(mgl64.Vec3{0, 0, 2}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{
		"direction": "out", "factor_descriptor": "small",
	})
	_, end, err := NewZoom().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(end.Position.Z(), 2*1.3, 1e-9) {
		t.Errorf("end z = %v, want %v", end.Position.Z(), 2*1.3)
	}
}

func TestZoomGoalDistanceNudgesDirection(t *testing.T) {
	sc := unitScene(2)
	// Camera already nearer than the huge goal distance; an explicit "in"
	// forces the factor below 1 anyway.
	ctx := testCtx(mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{
		"direction": "in", "target_distance_descriptor": "huge",
	})
	withScene(ctx, sc)

	_, end, err := NewZoom().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if end.Position.Z() >= 3 {
		t.Errorf("zoom in moved out: %v", end.Position)
	}
}

func TestZoomResolvedTargetBecomesFinal(t *testing.T) {
	sc := &scene.SceneAnalysis{Features: []scene.Feature{{ID: "door", Position: mgl64.Vec3{2, 0, 0}}}}
	ctx := testCtx(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{
		"target": "door", "factor_override": 0.5,
	})
	withScene(ctx, sc)

	_, end, err := NewZoom().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if end.Target != (mgl64.Vec3{2, 0, 0}) {
		t.Errorf("final target = %v, want the resolved zoom target", end.Target)
	}
}

func TestZoomUnityFactorHolds(t *testing.T) {
	ctx := testCtx(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 0}, 1.5, plan.Params{
		"factor_override": 1.0,
	})
	cmds, _, err := NewZoom().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 1 || cmds[0].Duration != 1.5 {
		t.Errorf("expected a single hold, got %+v", cmds)
	}
}

func TestZoomRejectsBadParams(t *testing.T) {
	if _, _, err := NewZoom().Generate(testCtx(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, 1, plan.Params{})); err == nil {
		t.Error("no factor accepted")
	}
	ctx := testCtx(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, 1, plan.Params{"factor_descriptor": "huge"})
	if _, _, err := NewZoom().Generate(ctx); err == nil {
		t.Error("descriptor without direction accepted")
	}
	onTop := testCtx(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0}, 1, plan.Params{"factor_override": 0.5})
	if _, _, err := NewZoom().Generate(onTop); err == nil {
		t.Error("zoom from the target accepted")
	}
}
