package interp_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/interp"
	"github.com/jmallek/shotpath/internal/plan"
	"github.com/jmallek/shotpath/internal/scene"
)

func mustInterpreter() *interp.Interpreter {
	it, err := interp.New(interp.DefaultConfig(), nil)
	Expect(err).NotTo(HaveOccurred())
	return it
}

func subjectScene(min, max mgl64.Vec3) *scene.SceneAnalysis {
	size := max.Sub(min)
	return &scene.SceneAnalysis{
		Spatial: &scene.Spatial{Bounds: &scene.Bounds{
			Min:        min,
			Max:        max,
			Center:     min.Add(max).Mul(0.5),
			Dimensions: size,
		}},
	}
}

var _ = Describe("Interpreting literal scenarios", func() {
	var it *interp.Interpreter

	BeforeEach(func() {
		it = mustInterpreter()
	})

	It("S1: holds a static shot verbatim", func() {
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 2.0},
			Steps:    []plan.MotionStep{{Type: "static", DurationRatio: 1.0}},
		}
		initial := camera.State{Position: mgl64.Vec3{0, 1, 5}, Target: mgl64.Vec3{0, 0, 0}}

		res, err := it.Interpret(p, nil, nil, initial)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Commands).To(HaveLen(1))
		cmd := res.Commands[0]
		Expect(cmd.Position).To(Equal(mgl64.Vec3{0, 1, 5}))
		Expect(cmd.Target).To(Equal(mgl64.Vec3{0, 0, 0}))
		Expect(cmd.Duration).To(BeNumerically("~", 2.0, 1e-12))
		Expect(cmd.Easing).To(Equal(camera.EasingLinear))
	})

	It("S2: dollies forward by an explicit override", func() {
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 1.0},
			Steps: []plan.MotionStep{{
				Type: "dolly", DurationRatio: 1.0,
				Parameters: plan.Params{"direction": "in", "distance_override": 2.0},
			}},
		}
		initial := camera.State{Position: mgl64.Vec3{0, 0, 5}, Target: mgl64.Vec3{0, 0, 0}}

		res, err := it.Interpret(p, nil, nil, initial)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Commands).To(HaveLen(2))
		final := res.Commands[len(res.Commands)-1]
		Expect(final.Position.Sub(mgl64.Vec3{0, 0, 3}).Len()).To(BeNumerically("<", 1e-9))
		Expect(final.Target).To(Equal(mgl64.Vec3{0, 0, 0}))
	})

	It("S3: zoom in by descriptor is clamped by minDistance", func() {
		env := &scene.EnvironmentalAnalysis{Constraints: &scene.CameraConstraints{
			MinDistance: ptr(2.0),
		}}
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 1.0},
			Steps: []plan.MotionStep{{
				Type: "zoom", DurationRatio: 1.0,
				Parameters: plan.Params{"direction": "in", "factor_descriptor": "huge"},
			}},
		}
		initial := camera.State{Position: mgl64.Vec3{0, 0, 5}, Target: mgl64.Vec3{0, 0, 0}}

		res, err := it.Interpret(p, nil, env, initial)
		Expect(err).NotTo(HaveOccurred())
		final := res.Commands[len(res.Commands)-1]
		Expect(final.Position.Sub(final.Target).Len()).To(BeNumerically("~", 2.0, 1e-6))
	})

	It("S4: orbits 90 degrees counter-clockwise about Y", func() {
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 1.0},
			Steps: []plan.MotionStep{{
				Type: "orbit", DurationRatio: 1.0,
				Parameters: plan.Params{"direction": "counter-clockwise", "angle": 90.0},
			}},
		}
		initial := camera.State{Position: mgl64.Vec3{5, 0, 0}, Target: mgl64.Vec3{0, 0, 0}}

		res, err := it.Interpret(p, nil, nil, initial)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Commands).To(HaveLen(45))

		final := res.Commands[len(res.Commands)-1]
		// Counter-clockwise is the positive right-handed rotation: the
		// camera lands at (0,0,-5).
		Expect(final.Position.Sub(mgl64.Vec3{0, 0, -5}).Len()).To(BeNumerically("<", 1e-6))
		Expect(final.Target).To(Equal(mgl64.Vec3{0, 0, 0}))
		Expect(camera.TotalDuration(res.Commands)).To(BeNumerically("~", 1.0, 1e-9))
	})

	It("S5: blends the target between steps with a settle", func() {
		sc := subjectScene(mgl64.Vec3{0.5, -0.5, -0.5}, mgl64.Vec3{1.5, 0.5, 0.5})
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 1.0},
			Steps: []plan.MotionStep{
				{Type: "static", DurationRatio: 0.5},
				{Type: "static", DurationRatio: 0.5, Parameters: plan.Params{"target": "object_center"}},
			},
		}
		initial := camera.State{Position: mgl64.Vec3{0, 0, 5}, Target: mgl64.Vec3{0, 0, 0}}

		res, err := it.Interpret(p, sc, nil, initial)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Commands).To(HaveLen(4))

		hold, blend, settle, rest := res.Commands[0], res.Commands[1], res.Commands[2], res.Commands[3]
		Expect(hold.Duration).To(BeNumerically("~", 0.5, 1e-9))
		Expect(hold.Target).To(Equal(mgl64.Vec3{0, 0, 0}))

		Expect(blend.Duration).To(BeNumerically("~", 0.15, 1e-9))
		Expect(blend.Target).To(Equal(mgl64.Vec3{1, 0, 0}))
		Expect(blend.Position).To(Equal(initial.Position))

		Expect(settle.Duration).To(BeNumerically("~", 0.05, 1e-9))
		Expect(settle.Target).To(Equal(mgl64.Vec3{1, 0, 0}))
		Expect(settle.Position).To(Equal(initial.Position))

		Expect(rest.Duration).To(BeNumerically("~", 0.3, 1e-9))
		Expect(camera.TotalDuration(res.Commands)).To(BeNumerically("~", 1.0, 1e-3))
	})

	It("S6: clamps a dolly that would pierce the subject", func() {
		sc := subjectScene(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 1.0},
			Steps: []plan.MotionStep{{
				Type: "dolly", DurationRatio: 1.0,
				Parameters: plan.Params{"direction": "in", "distance_override": 5.0},
			}},
		}
		initial := camera.State{Position: mgl64.Vec3{3, 0, 0}, Target: mgl64.Vec3{0, 0, 0}}

		res, err := it.Interpret(p, sc, nil, initial)
		Expect(err).NotTo(HaveOccurred())

		standoff := 0.05 * 2 * math.Sqrt(3)
		final := res.Commands[len(res.Commands)-1]
		Expect(final.Position.X()).To(BeNumerically("~", 1+standoff, 1e-6))
		Expect(res.Validation.Valid).To(BeTrue())
	})
})

var _ = Describe("Invariants", func() {
	var it *interp.Interpreter

	BeforeEach(func() {
		it = mustInterpreter()
	})

	It("conserves the requested duration across mixed plans", func() {
		sc := subjectScene(mgl64.Vec3{-1, 0, -1}, mgl64.Vec3{1, 2, 1})
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 9.0},
			Steps: []plan.MotionStep{
				{Type: "orbit", DurationRatio: 0.4, Parameters: plan.Params{"direction": "clockwise", "angle": 90.0}},
				{Type: "zoom", DurationRatio: 0.2, Parameters: plan.Params{"direction": "out", "factor_descriptor": "small"}},
				{Type: "pedestal", DurationRatio: 0.2, Parameters: plan.Params{"direction": "up", "distance_descriptor": "medium"}},
				{Type: "static", DurationRatio: 0.2},
			},
		}
		initial := camera.State{Position: mgl64.Vec3{0, 1, 6}, Target: mgl64.Vec3{0, 1, 0}}

		res, err := it.Interpret(p, sc, nil, initial)
		Expect(err).NotTo(HaveOccurred())
		Expect(camera.TotalDuration(res.Commands)).To(BeNumerically("~", 9.0, 1e-3))
	})

	It("keeps every keyframe outside the subject box", func() {
		sc := subjectScene(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 6.0},
			Steps: []plan.MotionStep{
				{Type: "dolly", DurationRatio: 0.4, Parameters: plan.Params{"direction": "in", "distance_override": 10.0}},
				{Type: "orbit", DurationRatio: 0.4, Parameters: plan.Params{"direction": "counter-clockwise", "angle": 180.0}},
				{Type: "truck", DurationRatio: 0.2, Parameters: plan.Params{"direction": "left", "distance_override": 4.0}},
			},
		}
		initial := camera.State{Position: mgl64.Vec3{4, 0, 0}, Target: mgl64.Vec3{0, 0, 0}}

		res, err := it.Interpret(p, sc, nil, initial)
		Expect(err).NotTo(HaveOccurred())
		box := sc.Spatial.Bounds.AABB()
		for _, cmd := range res.Commands {
			Expect(box.ContainsPoint(cmd.Position)).To(BeFalse(),
				"keyframe inside subject at %v", cmd.Position)
		}
		Expect(res.Validation.Valid).To(BeTrue())
	})

	It("emits a single hold for zero-magnitude steps", func() {
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 2.0},
			Steps: []plan.MotionStep{{
				Type: "zoom", DurationRatio: 1.0,
				Parameters: plan.Params{"factor_override": 1.0},
			}},
		}
		initial := camera.State{Position: mgl64.Vec3{0, 0, 5}, Target: mgl64.Vec3{0, 0, 0}}

		res, err := it.Interpret(p, nil, nil, initial)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Commands).To(HaveLen(1))
		Expect(res.Commands[0].Duration).To(BeNumerically("~", 2.0, 1e-9))
	})

	It("consumes an absolute-target tilt entirely as the blend", func() {
		sc := subjectScene(mgl64.Vec3{-1, 2, -1}, mgl64.Vec3{1, 4, 1})
		p := &plan.MotionPlan{
			Metadata: plan.Metadata{RequestedDuration: 2.0},
			Steps: []plan.MotionStep{{
				Type: "tilt", DurationRatio: 1.0,
				Parameters: plan.Params{"target": "object_top_center"},
			}},
		}
		initial := camera.State{Position: mgl64.Vec3{0, 1, 6}, Target: mgl64.Vec3{0, 0, 0}}

		res, err := it.Interpret(p, sc, nil, initial)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Commands).To(HaveLen(1))
		cmd := res.Commands[0]
		Expect(cmd.Duration).To(BeNumerically("~", 2.0, 1e-9))
		Expect(cmd.Target).To(Equal(mgl64.Vec3{0, 4, 0}))
		Expect(cmd.Position).To(Equal(initial.Position))
	})
})

func ptr(v float64) *float64 { return &v }
