// Package interp orchestrates a motion plan into a keyframe stream: it
// normalizes step durations against the requested total, inserts target
// blends between steps whose targets differ, threads the camera state
// through the per-kind generators, and validates the emitted stream against
// the subject bounds.
//
// One Interpret call is synchronous and stateless; an Interpreter may be
// shared across goroutines.
package interp
