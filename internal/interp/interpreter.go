package interp

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/motion"
	"github.com/jmallek/shotpath/internal/plan"
	"github.com/jmallek/shotpath/internal/scene"
)

// Config fixes the interpreter's tunables at construction time.
type Config struct {
	// DefaultEasing is the curve used when a step names none.
	DefaultEasing string
	// MaxVelocity, when positive, is the speed ceiling the validator warns
	// about.
	MaxVelocity float64
	// MaxKeyframes, when positive, hard-fails any interpret call whose
	// stream grows past it.
	MaxKeyframes int
}

func DefaultConfig() Config {
	return Config{
		DefaultEasing: camera.EasingLinear,
		MaxKeyframes:  2000,
	}
}

// Blend timing between steps whose targets differ: a short pivot of the
// target, then a settle hold so the client does not chain straight into the
// next easing.
const (
	blendDuration  = 0.15
	settleDuration = 0.05
)

// durationTolerance is the slack allowed before ratios are rescaled to the
// requested total.
const durationTolerance = 1e-4

// Interpreter compiles motion plans into camera command streams.
type Interpreter struct {
	cfg Config
	log *zap.SugaredLogger
	reg *motion.Registry
}

// New builds an Interpreter. A nil logger disables logging. The default
// easing must be a registered curve.
func New(cfg Config, log *zap.SugaredLogger) (*Interpreter, error) {
	if cfg.DefaultEasing == "" {
		cfg.DefaultEasing = camera.EasingLinear
	}
	if !camera.KnownEasing(cfg.DefaultEasing) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEasing, cfg.DefaultEasing)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Interpreter{cfg: cfg, log: log, reg: motion.NewRegistry()}, nil
}

// Result is the outcome of one interpret call: the keyframe stream plus the
// validator's verdict on it. The stream is returned even when validation
// fails; the caller decides whether to ship it.
type Result struct {
	Commands   []camera.Command
	Validation Report
}

// Interpret compiles the plan against the scene and environment, starting
// from the given camera state.
func (it *Interpreter) Interpret(p *plan.MotionPlan, sc *scene.SceneAnalysis, env *scene.EnvironmentalAnalysis, initial camera.State) (*Result, error) {
	if it == nil || it.reg == nil {
		return nil, ErrNotConfigured
	}
	if p == nil || len(p.Steps) == 0 {
		return nil, ErrEmptyPlan
	}
	total := p.Metadata.RequestedDuration
	if total <= 0 && p.HasNonStatic() {
		return nil, ErrMissingDuration
	}

	durations := normalizeDurations(total, p.Steps)

	state := initial
	commands := make([]camera.Command, 0, 2*len(p.Steps))

	for i, step := range p.Steps {
		gen, err := it.reg.Get(step.Type)
		if err != nil {
			it.log.Errorw("skipping step with unknown type", "step", i, "type", step.Type)
			continue
		}

		alloc := durations[i]
		easing := motion.StepEasing(step.Parameters, it.cfg.DefaultEasing, it.log)

		var consumed bool
		commands, state, alloc, consumed = it.insertBlend(commands, state, step, alloc, easing, sc, env)
		if consumed {
			continue
		}

		ctx := &motion.Context{
			State:    state,
			Duration: alloc,
			Params:   step.Parameters,
			Scene:    sc,
			Env:      env,
			Easing:   easing,
			Log:      it.log,
		}
		cmds, next, err := gen.Generate(ctx)
		if err != nil {
			it.log.Errorw("skipping step", "step", i, "type", step.Type, "reason", err)
			continue
		}
		commands = append(commands, cmds...)
		state = next
	}

	if it.cfg.MaxKeyframes > 0 && len(commands) > it.cfg.MaxKeyframes {
		return nil, fmt.Errorf("%w: %d > %d", ErrKeyframeLimit, len(commands), it.cfg.MaxKeyframes)
	}

	// The validator holds the un-shifted subject box as the hard boundary,
	// deliberately asymmetric with the clamper's shifted one.
	report := Validate(commands, sc, it.cfg.MaxVelocity)
	if !report.Valid {
		it.log.Errorw("keyframe stream failed validation", "code", report.Code, "violations", report.Violations)
	}
	for _, w := range report.Warnings {
		it.log.Warnw("keyframe stream warning", "warning", w)
	}

	return &Result{Commands: commands, Validation: report}, nil
}

// insertBlend pivots the camera target toward the upcoming step's effective
// target before the step runs. An absolute-target tilt or pan is consumed
// whole: the blend is the motion. Otherwise the blend and settle are carved
// out of the step's allocation.
func (it *Interpreter) insertBlend(commands []camera.Command, state camera.State, step plan.MotionStep, alloc float64, easing string, sc *scene.SceneAnalysis, env *scene.EnvironmentalAnalysis) ([]camera.Command, camera.State, float64, bool) {
	name, explicit := step.Parameters.Str("target")
	if !explicit {
		if step.Type != "orbit" {
			return commands, state, alloc, false
		}
		name = "object_center"
	}

	target, ok := scene.ResolveTarget(name, sc, env, state.Target)
	if !ok {
		// The generator re-resolves and reports the failure.
		return commands, state, alloc, false
	}
	if target.Sub(state.Target).Len() < 1e-6 {
		return commands, state, alloc, false
	}

	absoluteAim := explicit && (step.Type == "tilt" || step.Type == "pan")
	if absoluteAim {
		commands = append(commands, camera.Command{
			Position: state.Position,
			Target:   target,
			Duration: alloc,
			Easing:   easing,
		})
		state.Target = target
		state.Orientation = nil
		return commands, state, 0, true
	}

	blend := math.Min(blendDuration, alloc)
	settle := math.Min(settleDuration, alloc-blend)
	commands = append(commands, camera.Command{
		Position: state.Position,
		Target:   target,
		Duration: blend,
		Easing:   easing,
	})
	if settle > 0 {
		commands = append(commands, camera.Command{
			Position: state.Position,
			Target:   target,
			Duration: settle,
			Easing:   camera.EasingLinear,
		})
	}
	state.Target = target
	state.Orientation = nil
	return commands, state, alloc - blend - settle, false
}

// normalizeDurations distributes the requested total across steps by ratio,
// rescaling when the ratios do not account for the whole.
func normalizeDurations(total float64, steps []plan.MotionStep) []float64 {
	ideal := make([]float64, len(steps))
	sum := 0.0
	for i, s := range steps {
		r := s.DurationRatio
		if r < 0 {
			r = 0
		}
		ideal[i] = total * r
		sum += ideal[i]
	}
	if sum <= 0 {
		return make([]float64, len(steps))
	}
	if math.Abs(sum-total) > durationTolerance {
		scale := total / sum
		for i := range ideal {
			ideal[i] *= scale
		}
	}
	return ideal
}
