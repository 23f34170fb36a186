package config

import (
	"sort"

	"github.com/jmallek/shotpath/internal/plan"
)

// Presets are ready-made motion plans for common shots, so the CLI can
// interpret a scene without an upstream planner.
var Presets = map[string]*plan.MotionPlan{
	"showcase": {
		Metadata: plan.Metadata{RequestedDuration: 12.0},
		Steps: []plan.MotionStep{
			{Type: "orbit", DurationRatio: 0.5, Parameters: plan.Params{
				"direction": "counter-clockwise", "angle": 180.0,
			}},
			{Type: "zoom", DurationRatio: 0.25, Parameters: plan.Params{
				"direction": "in", "factor_descriptor": "medium", "speed": "slow",
			}},
			{Type: "static", DurationRatio: 0.25},
		},
	},
	"inspect": {
		Metadata: plan.Metadata{RequestedDuration: 10.0},
		Steps: []plan.MotionStep{
			{Type: "move_to", DurationRatio: 0.3, Parameters: plan.Params{
				"destination_target": "object_front_center",
			}},
			{Type: "pedestal", DurationRatio: 0.3, Parameters: plan.Params{
				"direction": "up", "distance_descriptor": "medium",
			}},
			{Type: "orbit", DurationRatio: 0.4, Parameters: plan.Params{
				"direction": "clockwise", "angle": 90.0,
			}},
		},
	},
	"reveal": {
		Metadata: plan.Metadata{RequestedDuration: 8.0},
		Steps: []plan.MotionStep{
			{Type: "static", DurationRatio: 0.15},
			{Type: "fly_away", DurationRatio: 0.6, Parameters: plan.Params{
				"target": "object_center", "distance_descriptor": "large",
				"ascend": true, "speed": "slow",
			}},
			{Type: "tilt", DurationRatio: 0.25, Parameters: plan.Params{
				"target": "object_top_center",
			}},
		},
	},
}

func GetPreset(name string) *plan.MotionPlan {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
