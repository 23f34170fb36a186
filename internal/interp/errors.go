package interp

import "errors"

// Per-call failures. Step-level problems are never surfaced as errors; they
// are logged and the step is skipped.
var (
	// ErrNotConfigured indicates the interpreter was used before New.
	ErrNotConfigured = errors.New("interp: interpreter not configured")

	// ErrEmptyPlan indicates a nil plan or one with no steps.
	ErrEmptyPlan = errors.New("interp: motion plan has no steps")

	// ErrMissingDuration indicates a plan with non-static steps but no
	// requested duration.
	ErrMissingDuration = errors.New("interp: requested_duration missing for non-static plan")

	// ErrUnknownEasing indicates a default easing outside the registry.
	ErrUnknownEasing = errors.New("interp: unknown default easing")

	// ErrKeyframeLimit indicates the emitted stream exceeded the
	// configured keyframe ceiling.
	ErrKeyframeLimit = errors.New("interp: keyframe limit exceeded")
)
