package scene

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// CurrentTarget is the sentinel name resolving to whatever the camera is
// already looking at.
const CurrentTarget = "current_target"

// ResolveTarget maps a symbolic target name to a world-space point.
//
// Face and center targets are shifted vertically by the user adjustment;
// feature positions are returned as stored. The second return is false when
// the name cannot be resolved (unknown name, or a bounds-relative name with
// no bounds in the analysis); callers treat that as a hard failure for the
// step.
func ResolveTarget(name string, sc *SceneAnalysis, env *EnvironmentalAnalysis, current mgl64.Vec3) (mgl64.Vec3, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return mgl64.Vec3{}, false
	}
	if name == CurrentTarget {
		return current, true
	}

	if p, ok := resolveBoundsTarget(name, sc, env.VerticalAdjustment()); ok {
		return p, true
	}

	if sc != nil {
		for _, f := range sc.Features {
			if f.ID == name || f.Description == name {
				return f.Position, true
			}
		}
	}
	return mgl64.Vec3{}, false
}

func resolveBoundsTarget(name string, sc *SceneAnalysis, dy float64) (mgl64.Vec3, bool) {
	b, ok := sc.Bounds()
	if !ok {
		return mgl64.Vec3{}, false
	}
	c := b.Center
	shift := mgl64.Vec3{0, dy, 0}

	switch name {
	case "object_center":
		return c.Add(shift), true
	case "object_top_center":
		return mgl64.Vec3{c.X(), b.Max.Y(), c.Z()}.Add(shift), true
	case "object_bottom_center":
		return mgl64.Vec3{c.X(), b.Min.Y(), c.Z()}.Add(shift), true
	case "object_left_center":
		return mgl64.Vec3{b.Min.X(), c.Y(), c.Z()}.Add(shift), true
	case "object_right_center":
		return mgl64.Vec3{b.Max.X(), c.Y(), c.Z()}.Add(shift), true
	case "object_front_center":
		return mgl64.Vec3{c.X(), c.Y(), b.Max.Z()}.Add(shift), true
	case "object_back_center":
		return mgl64.Vec3{c.X(), c.Y(), b.Min.Z()}.Add(shift), true
	}

	// object_{top|bottom}_{left|right} names the midpoint of the matching
	// horizontal edge; _corner and _center suffixes are accepted aliases.
	trimmed := strings.TrimSuffix(strings.TrimSuffix(name, "_corner"), "_center")
	var y, x float64
	switch {
	case strings.HasPrefix(trimmed, "object_top_"):
		y = b.Max.Y()
	case strings.HasPrefix(trimmed, "object_bottom_"):
		y = b.Min.Y()
	default:
		return mgl64.Vec3{}, false
	}
	switch {
	case strings.HasSuffix(trimmed, "_left"):
		x = b.Min.X()
	case strings.HasSuffix(trimmed, "_right"):
		x = b.Max.X()
	default:
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{x, y, c.Z()}.Add(shift), true
}
