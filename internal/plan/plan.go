// Package plan models the motion plan the upstream planner produces: an
// ordered list of symbolic camera intents with loose, per-step parameters.
package plan

// MotionPlan is the full input to one interpret call.
type MotionPlan struct {
	Metadata Metadata     `yaml:"metadata" json:"metadata"`
	Steps    []MotionStep `yaml:"steps" json:"steps"`
}

type Metadata struct {
	RequestedDuration float64 `yaml:"requested_duration" json:"requested_duration"`
}

// MotionStep is one symbolic intent. DurationRatio is the intended fraction
// of the total; the ratios of a plan need not sum to 1.
type MotionStep struct {
	Type          string  `yaml:"type" json:"type"`
	DurationRatio float64 `yaml:"duration_ratio" json:"duration_ratio"`
	Parameters    Params  `yaml:"parameters" json:"parameters"`
}

// HasNonStatic reports whether any step needs a real time allocation.
func (p *MotionPlan) HasNonStatic() bool {
	for _, s := range p.Steps {
		if s.Type != "static" {
			return true
		}
	}
	return false
}
