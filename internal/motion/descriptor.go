package motion

import (
	"math"
	"strings"

	"github.com/jmallek/shotpath/internal/scene"
)

// Descriptor is the canonical qualitative magnitude.
type Descriptor int

const (
	Tiny Descriptor = iota
	Small
	Medium
	Large
	Huge
)

func (d Descriptor) String() string {
	switch d {
	case Tiny:
		return "tiny"
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	case Huge:
		return "huge"
	}
	return "unknown"
}

// descriptorAliases folds the planner's looser vocabulary onto the closed
// enum. Unrecognized words resolve to nothing and make the step fall back.
var descriptorAliases = map[string]Descriptor{
	"tiny":          Tiny,
	"slightly":      Tiny,
	"small":         Small,
	"a_bit":         Small,
	"close":         Small,
	"near":          Small,
	"medium":        Medium,
	"moderate":      Medium,
	"large":         Large,
	"far":           Large,
	"significantly": Large,
	"huge":          Huge,
	"very_far":      Huge,
	"massive":       Huge,
}

// ParseDescriptor normalizes a magnitude word to the closed enum.
func ParseDescriptor(s string) (Descriptor, bool) {
	d, ok := descriptorAliases[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

var distanceScales = [...]float64{0.1, 0.3, 0.75, 1.5, 3.0}

var zoomInFactors = [...]float64{0.9, 0.7, 0.5, 0.3, 0.15}
var zoomOutFactors = [...]float64{1.1, 1.3, 1.8, 2.5, 4.0}

var goalDistanceScales = [...]float64{0.5, 1.0, 1.5, 2.5, 4.0}

// DistanceFor maps a descriptor to a translation distance. The base metric
// depends on the motion kind: pedestal scales against subject height, truck
// against width, dolly and fly_away against the larger of half the diagonal
// and half the current distance, everything else against the diagonal.
func DistanceFor(d Descriptor, kind string, sc *scene.SceneAnalysis, currentDist float64) float64 {
	diag := sc.Diagonal()

	var base float64
	switch kind {
	case "pedestal":
		if b, ok := sc.Bounds(); ok {
			base = b.Dimensions.Y()
		}
	case "truck":
		if b, ok := sc.Bounds(); ok {
			base = b.Dimensions.X()
		}
	case "dolly", "fly_away":
		base = math.Max(0.5*diag, 0.5*currentDist)
	case "fly_by":
		base = diag
	default:
		base = diag
	}
	base = math.Max(base, 0.1)

	value := base * distanceScales[d]

	// Small dolly moves near the target scale against the remaining
	// distance, not the subject, so "dolly in slightly" never overshoots.
	if kind == "dolly" && (d == Tiny || d == Small) && currentDist < base {
		value = currentDist * distanceScales[d]
	}

	ceiling := math.Max(5*diag, 20.0)
	return math.Max(0.1, math.Min(value, ceiling))
}

// FactorFor maps a zoom descriptor and direction to a raw distance factor.
func FactorFor(d Descriptor, direction string) (float64, bool) {
	switch direction {
	case "in":
		return zoomInFactors[d], true
	case "out":
		return zoomOutFactors[d], true
	}
	return 0, false
}

// GoalDistanceFor maps a descriptor to an absolute camera-target distance.
func GoalDistanceFor(d Descriptor, sc *scene.SceneAnalysis) float64 {
	diag := math.Max(sc.Diagonal(), 0.05)
	return goalDistanceScales[d] * diag
}
