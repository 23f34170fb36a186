package motion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/plan"
)

func TestStaticHold(t *testing.T) {
	ctx := testCtx(mgl64.Vec3{0, 1, 5}, mgl64.Vec3{0, 0, 0}, 2.0, nil)
	cmds, end, err := NewStatic().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	c := cmds[0]
	if c.Position != ctx.State.Position || c.Target != ctx.State.Target {
		t.Errorf("state changed: %+v", c)
	}
	if c.Duration != 2.0 || c.Easing != camera.EasingLinear {
		t.Errorf("duration/easing = %v %s", c.Duration, c.Easing)
	}
	if end != ctx.State {
		t.Error("end state changed")
	}
}

func TestMoveToOffsetAndClamp(t *testing.T) {
	ctx := testCtx(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{
		"destination_target": "mark",
	})
	withScene(ctx, &sceneWithFeature)

	cmds, end, err := NewMoveTo().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 2 {
		t.Fatalf("commands = %d", len(cmds))
	}
	want := mgl64.Vec3{3, 0.5, 3.5} // mark + (0, 0.5, 1.5)
	if !approxVec(end.Position, want, 1e-9) {
		t.Errorf("position = %v, want %v", end.Position, want)
	}
	if end.Target != (mgl64.Vec3{3, 0, 2}) {
		t.Errorf("target = %v", end.Target)
	}
}

func TestMoveToInstant(t *testing.T) {
	ctx := testCtx(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{
		"destination_target": "mark", "speed": "instant",
	})
	withScene(ctx, &sceneWithFeature)

	cmds, _, err := NewMoveTo().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 1 {
		t.Fatalf("instant move should emit one command, got %d", len(cmds))
	}
	if cmds[0].Duration <= 0 || cmds[0].Duration > 0.05 {
		t.Errorf("instant duration = %v", cmds[0].Duration)
	}
}

func TestFocusOnShiftsTargetOnly(t *testing.T) {
	ctx := testCtx(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{
		"target": "mark",
	})
	withScene(ctx, &sceneWithFeature)

	cmds, end, err := NewFocusOn().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 2 {
		t.Fatalf("commands = %d", len(cmds))
	}
	if end.Position != ctx.State.Position {
		t.Error("focus_on moved the camera")
	}
	if end.Target != (mgl64.Vec3{3, 0, 2}) {
		t.Errorf("target = %v", end.Target)
	}
}

func TestFocusOnRequiresTarget(t *testing.T) {
	ctx := testCtx(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0}, 1.0, nil)
	if _, _, err := NewFocusOn().Generate(ctx); err == nil {
		t.Error("missing target accepted")
	}
	bad := testCtx(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{"target": "nowhere"})
	if _, _, err := NewFocusOn().Generate(bad); err == nil {
		t.Error("unresolvable target accepted")
	}
}

func TestFlyByPassesAlongside(t *testing.T) {
	sc := unitScene(2)
	ctx := testCtx(mgl64.Vec3{6, 1.5, 0}, mgl64.Vec3{0, 0, 0}, 2.0, plan.Params{
		"pass_distance_override": 2.0,
	})
	withScene(ctx, sc)

	cmds, end, err := NewFlyBy().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 3 {
		t.Fatalf("commands = %d, want anchor+abeam+exit", len(cmds))
	}
	// Closest approach: lateral offset of 2 on the camera's side, height
	// held.
	if !approxVec(cmds[1].Position, mgl64.Vec3{2, 1.5, 0}, 1e-9) {
		t.Errorf("abeam = %v, want (2,1.5,0)", cmds[1].Position)
	}
	if !approxVec(end.Position, mgl64.Vec3{-2, 1.5, 0}, 1e-9) {
		t.Errorf("exit = %v, want (-2,1.5,0)", end.Position)
	}
	for _, c := range cmds {
		if c.Target != (mgl64.Vec3{0, 0, 0}) {
			t.Errorf("fly-by target strayed: %v", c.Target)
		}
	}
	if total := camera.TotalDuration(cmds); !approx(total, 2.0, 1e-9) {
		t.Errorf("total duration = %v", total)
	}
}

func TestFlyAwayRetreatsWithLift(t *testing.T) {
	sc := unitScene(2)
	ctx := testCtx(mgl64.Vec3{0, 0, 4}, mgl64.Vec3{0, 0, 0}, 1.0, plan.Params{
		"target": "object_center", "distance_override": 3.0, "ascend": true,
	})
	withScene(ctx, sc)

	_, end, err := NewFlyAway().Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(end.Position.Z(), 7, 1e-9) {
		t.Errorf("z = %v, want 7", end.Position.Z())
	}
	if !approx(end.Position.Y(), 0.75, 1e-9) {
		t.Errorf("lift y = %v, want 0.75", end.Position.Y())
	}
	if end.Target != (mgl64.Vec3{0, 0, 0}) {
		t.Errorf("target = %v", end.Target)
	}
}

func TestRegistryKnowsAllKinds(t *testing.T) {
	r := NewRegistry()
	kinds := []string{
		"static", "zoom", "orbit", "pan", "tilt", "dolly", "truck",
		"pedestal", "rotate", "move_to", "focus_on", "fly_by", "fly_away",
	}
	for _, kind := range kinds {
		gen, err := r.Get(kind)
		if err != nil {
			t.Errorf("Get(%s): %v", kind, err)
			continue
		}
		if gen.Kind() != kind {
			t.Errorf("Kind() = %s, want %s", gen.Kind(), kind)
		}
	}
	if _, err := r.Get("teleport"); err == nil {
		t.Error("unknown kind accepted")
	}
	if len(r.Kinds()) != len(kinds) {
		t.Errorf("Kinds() = %v", r.Kinds())
	}
}

func TestStepEasingSpeedTable(t *testing.T) {
	tests := []struct {
		params plan.Params
		want   string
	}{
		{plan.Params{}, camera.EasingLinear},
		{plan.Params{"speed": "very_fast"}, camera.EasingLinear},
		{plan.Params{"speed": "fast"}, camera.EasingOutQuad},
		{plan.Params{"speed": "slow"}, camera.EasingInOutQuad},
		{plan.Params{"speed": "medium"}, camera.EasingLinear},
		{plan.Params{"easing": "ease_in_quad", "speed": "slow"}, camera.EasingInQuad},
		{plan.Params{"easing": "wobble"}, camera.EasingLinear},
		{plan.Params{"easing": "linear", "speed": "fast"}, camera.EasingOutQuad},
	}
	for _, tt := range tests {
		if got := StepEasing(tt.params, camera.EasingLinear, nil); got != tt.want {
			t.Errorf("StepEasing(%v) = %s, want %s", tt.params, got, tt.want)
		}
	}
}
