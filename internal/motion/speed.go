package motion

import (
	"go.uber.org/zap"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/plan"
)

// StepEasing resolves the easing curve for a step. An explicit easing
// parameter wins when registered; unknown names fall back to def with a
// warning. The speed word then adjusts the curve, but only when the step is
// still on the default or linear curve.
func StepEasing(p plan.Params, def string, log *zap.SugaredLogger) string {
	name := def
	if s, ok := p.Str("easing"); ok {
		normalized, known := camera.NormalizeEasing(s, def)
		if !known && log != nil {
			log.Warnw("unknown easing, falling back to default", "easing", s, "default", def)
		}
		name = normalized
	}

	if speed, ok := p.Str("speed"); ok && (name == def || name == camera.EasingLinear) {
		switch speed {
		case "very_fast":
			name = camera.EasingLinear
		case "fast":
			name = camera.EasingOutQuad
		case "slow":
			name = camera.EasingInOutQuad
		}
	}
	return name
}
