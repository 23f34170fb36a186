// Package camera defines the interpreter's output model: camera states,
// keyframe commands, and the named easing registry.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/spatial"
)

// State is the camera tuple the orchestrator threads between steps. A nil
// Orientation means the client derives orientation from look-at.
type State struct {
	Position    mgl64.Vec3
	Target      mgl64.Vec3
	Orientation *mgl64.Quat
}

// LookAt returns the explicit orientation when one is set, otherwise the
// orientation implied by position and target.
func (s State) LookAt() mgl64.Quat {
	if s.Orientation != nil {
		return *s.Orientation
	}
	return spatial.LookAt(s.Position, s.Target)
}

// Command is one emitted keyframe. A zero Duration anchors the easing of
// the next transition. Orientation is populated only for roll rotations.
type Command struct {
	Position    mgl64.Vec3  `json:"position"`
	Target      mgl64.Vec3  `json:"target"`
	Orientation *mgl64.Quat `json:"orientation,omitempty"`
	Duration    float64     `json:"duration"`
	Easing      string      `json:"easing"`
}

// EndState is the camera state after the command plays out.
func (c Command) EndState() State {
	return State{Position: c.Position, Target: c.Target, Orientation: c.Orientation}
}

// TotalDuration sums the durations of a command stream.
func TotalDuration(cmds []Command) float64 {
	total := 0.0
	for _, c := range cmds {
		total += c.Duration
	}
	return total
}
