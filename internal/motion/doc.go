// Package motion holds the per-kind step generators and the two resolvers
// they share: the qualitative descriptor mapper and the geometric
// constraint clamper.
//
// Each generator turns one symbolic step into a short run of keyframe
// commands plus the camera state the next step starts from. Generators are
// looked up by step type through a [Registry]. A step that cannot be
// parameterized returns an error wrapping [ErrSkip]; the orchestrator logs
// it and carries on with the camera state unchanged.
package motion
