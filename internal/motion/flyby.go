package motion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/spatial"
)

// FlyBy sweeps the camera past the subject on a straight line. The closest
// approach sits in the horizontal plane of the current position, offset
// from the subject by the pass distance on the side the camera already
// occupies; the exit point mirrors the entry through the abeam point. The
// camera tracks the subject the whole way.
type FlyBy struct{}

func NewFlyBy() *FlyBy { return &FlyBy{} }

func (*FlyBy) Kind() string { return "fly_by" }

func (*FlyBy) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	centerName := "object_center"
	if name, ok := ctx.Params.Str("target"); ok {
		centerName = name
	}
	center, ok := ctx.resolveTarget(centerName)
	if !ok {
		return nil, ctx.State, skipf("fly_by: unresolvable target %q", centerName)
	}

	passDist, err := flyByPassDistance(ctx)
	if err != nil {
		return nil, ctx.State, err
	}

	// Lateral axis: the horizontal component of where the camera already
	// stands relative to the subject.
	radial := ctx.State.Position.Sub(center)
	lateral := spatial.Normalize(mgl64.Vec3{radial.X(), 0, radial.Z()}, spatial.WorldX)

	abeam := center.Add(lateral.Mul(passDist))
	abeam[1] = ctx.State.Position.Y()
	exit := abeam.Add(abeam.Sub(ctx.State.Position))

	cl := newClamper(ctx)
	abeamPos := cl.apply(ctx.State.Position, abeam, nil)
	exitPos := cl.apply(abeamPos, exit, nil)

	half := ctx.Duration / 2
	cmds := []camera.Command{
		{
			Position:    ctx.State.Position,
			Target:      center,
			Orientation: ctx.State.Orientation,
			Duration:    0,
			Easing:      ctx.Easing,
		},
		{Position: abeamPos, Target: center, Duration: half, Easing: ctx.Easing},
		{Position: exitPos, Target: center, Duration: half, Easing: ctx.Easing},
	}
	end := camera.State{Position: exitPos, Target: center}
	return cmds, end, nil
}

func flyByPassDistance(ctx *Context) (float64, error) {
	if d, ok := ctx.Params.Float("pass_distance_override"); ok {
		if d <= 0 {
			return 0, skipf("fly_by: non-positive pass distance override %v", d)
		}
		return d, nil
	}
	name, ok := ctx.Params.Str("pass_distance_descriptor")
	if !ok {
		// Unspecified pass distance reads as a medium sweep.
		return DistanceFor(Medium, "fly_by", ctx.Scene, ctx.currentDistance()), nil
	}
	d, ok := ParseDescriptor(name)
	if !ok {
		return 0, skipf("fly_by: unrecognized pass distance descriptor %q", name)
	}
	return DistanceFor(d, "fly_by", ctx.Scene, ctx.currentDistance()), nil
}
