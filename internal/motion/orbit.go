package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/spatial"
)

// Orbit sweeps the camera around a center on a subdivided arc, so linear
// client-side interpolation still reads as circular motion.
//
// Sign convention: counter-clockwise (and "right") is a positive
// right-handed rotation about the chosen axis; clockwise (and "left") is
// negative. About +Y, a 90 degree counter-clockwise orbit takes (5,0,0)
// to (0,0,-5).
type Orbit struct{}

func NewOrbit() *Orbit { return &Orbit{} }

func (*Orbit) Kind() string { return "orbit" }

func (*Orbit) Generate(ctx *Context) ([]camera.Command, camera.State, error) {
	var center mgl64.Vec3
	if name, ok := ctx.Params.Str("target"); ok {
		resolved, ok := ctx.resolveTarget(name)
		if !ok {
			return nil, ctx.State, skipf("orbit: unresolvable center %q", name)
		}
		center = resolved
	} else if resolved, ok := ctx.resolveTarget("object_center"); ok {
		center = resolved
	} else {
		// No subject bounds: orbit whatever the camera is looking at.
		center = ctx.State.Target
	}

	angle, ok := ctx.Params.Float("angle")
	if !ok || angle == 0 {
		return nil, ctx.State, skipf("orbit: missing or zero angle")
	}

	sign := 1.0
	if dir, ok := ctx.Params.Str("direction"); ok {
		switch dir {
		case "counter-clockwise", "right":
			sign = 1.0
		case "clockwise", "left":
			sign = -1.0
		default:
			return nil, ctx.State, skipf("orbit: unrecognized direction %q", dir)
		}
	}

	axis, err := orbitAxis(ctx)
	if err != nil {
		return nil, ctx.State, err
	}

	radius := ctx.State.Position.Sub(center)
	if radius.Len() < zeroMagnitude {
		return nil, ctx.State, skipf("orbit: camera is at the orbit center")
	}
	if rf, ok := ctx.Params.Float("radius_factor"); ok && rf > 0 {
		radius = radius.Mul(rf)
	}

	total := sign * math.Abs(angle)
	n := int(math.Max(2, math.Ceil(math.Abs(angle)/2)))
	perStep := mgl64.DegToRad(total) / float64(n-1)
	perDur := ctx.Duration / float64(n-1)

	cl := newClamper(ctx)
	cmds := make([]camera.Command, 0, n)
	cmds = append(cmds, camera.Command{
		Position: ctx.State.Position,
		Target:   center,
		Duration: 0,
		Easing:   camera.EasingLinear,
	})

	prev := ctx.State.Position
	for i := 1; i < n; i++ {
		rotated := spatial.RotateAbout(radius, axis, perStep*float64(i))
		pos := cl.apply(prev, center.Add(rotated), &center)
		cmds = append(cmds, camera.Command{
			Position: pos,
			Target:   center,
			Duration: perDur,
			Easing:   camera.EasingLinear,
		})
		prev = pos
	}

	end := camera.State{Position: prev, Target: center}
	return cmds, end, nil
}

func orbitAxis(ctx *Context) (mgl64.Vec3, error) {
	name, ok := ctx.Params.Str("axis")
	if !ok {
		return spatial.WorldUp, nil
	}
	switch name {
	case "x":
		return spatial.WorldX, nil
	case "y":
		return spatial.WorldUp, nil
	case "z":
		return spatial.WorldZ, nil
	case "camera_up":
		_, _, up, ok := cameraBasis(ctx.State.Position, ctx.State.Target)
		if !ok {
			return mgl64.Vec3{}, skipf("orbit: cannot derive camera up from a degenerate view")
		}
		return up, nil
	}
	return mgl64.Vec3{}, skipf("orbit: unrecognized axis %q", name)
}
