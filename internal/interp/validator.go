package interp

import (
	"fmt"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/scene"
)

// CodeBoundingBox marks a keyframe stream with a camera position inside the
// subject bounding box.
const CodeBoundingBox = "PATH_VIOLATION_BOUNDING_BOX"

// Report is the validator's verdict on an emitted stream.
type Report struct {
	Valid      bool     `json:"valid"`
	Code       string   `json:"code,omitempty"`
	Violations []int    `json:"violations,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Validate checks the stream against the un-shifted subject bounds.
// Downstream tooling relies on the raw box as the hard boundary, so the
// user's vertical adjustment is deliberately not applied here even though
// the clamper works against the shifted box.
//
// Any strictly-contained position invalidates the whole stream. Segment
// speeds above maxVelocity (when positive) are reported as warnings only.
func Validate(cmds []camera.Command, sc *scene.SceneAnalysis, maxVelocity float64) Report {
	report := Report{Valid: true}

	if box, ok := sc.SubjectBox(); ok {
		for i, cmd := range cmds {
			if box.ContainsPoint(cmd.Position) {
				report.Valid = false
				report.Code = CodeBoundingBox
				report.Violations = append(report.Violations, i)
			}
		}
	}

	if maxVelocity > 0 {
		for i := 1; i < len(cmds); i++ {
			if cmds[i].Duration <= 1e-6 {
				continue
			}
			speed := cmds[i].Position.Sub(cmds[i-1].Position).Len() / cmds[i].Duration
			if speed > maxVelocity {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("keyframe %d moves at %.3f units/s (ceiling %.3f)", i, speed, maxVelocity))
			}
		}
	}

	return report
}
