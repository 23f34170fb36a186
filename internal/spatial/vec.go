package spatial

import "github.com/go-gl/mathgl/mgl64"

// Eps is the zero-length guard used across the interpreter.
const Eps = 1e-6

var (
	WorldUp = mgl64.Vec3{0, 1, 0}
	WorldX  = mgl64.Vec3{1, 0, 0}
	WorldZ  = mgl64.Vec3{0, 0, 1}
)

// Normalize returns v scaled to unit length, or fallback when v is shorter
// than Eps.
func Normalize(v, fallback mgl64.Vec3) mgl64.Vec3 {
	if v.Len() < Eps {
		return fallback
	}
	return v.Normalize()
}

// RotateAbout rotates v by angle radians around axis. The axis must be unit
// length.
func RotateAbout(v, axis mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.QuatRotate(angle, axis).Rotate(v)
}

// LookAt returns the orientation of a camera at eye looking toward center
// with the world up vector. When the view is parallel to world up the world
// Z axis stands in as up so the result stays finite.
func LookAt(eye, center mgl64.Vec3) mgl64.Quat {
	up := WorldUp
	view := Normalize(center.Sub(eye), WorldZ)
	if view.Cross(WorldUp).Len() < Eps {
		up = WorldZ
	}
	return mgl64.QuatLookAtV(eye, center, up)
}
