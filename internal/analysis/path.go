// Package analysis provides pure measurements over an emitted keyframe
// stream: arc length, speed profile, and per-axis extrema. The interpreter
// never calls into it; it backs the CLI's analyze and plot commands.
package analysis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jmallek/shotpath/internal/camera"
)

// ArcLength sums the segment lengths of the camera path.
func ArcLength(cmds []camera.Command) float64 {
	total := 0.0
	for i := 1; i < len(cmds); i++ {
		total += cmds[i].Position.Sub(cmds[i-1].Position).Len()
	}
	return total
}

// Times returns the cumulative time at each keyframe.
func Times(cmds []camera.Command) []float64 {
	times := make([]float64, len(cmds))
	t := 0.0
	for i, c := range cmds {
		t += c.Duration
		times[i] = t
	}
	return times
}

// SpeedProfile returns the average speed over each segment. Segments played
// in effectively zero time (easing anchors) report 0.
func SpeedProfile(cmds []camera.Command) []float64 {
	if len(cmds) < 2 {
		return nil
	}
	speeds := make([]float64, len(cmds)-1)
	for i := 1; i < len(cmds); i++ {
		if cmds[i].Duration > 1e-6 {
			speeds[i-1] = cmds[i].Position.Sub(cmds[i-1].Position).Len() / cmds[i].Duration
		}
	}
	return speeds
}

// PeakSpeed returns the fastest segment speed.
func PeakSpeed(cmds []camera.Command) float64 {
	peak := 0.0
	for _, s := range SpeedProfile(cmds) {
		peak = math.Max(peak, s)
	}
	return peak
}

// MeanSpeed is path length over play time, ignoring zero-duration anchors.
func MeanSpeed(cmds []camera.Command) float64 {
	total := camera.TotalDuration(cmds)
	if total <= 1e-6 {
		return 0
	}
	return ArcLength(cmds) / total
}

// Extrema returns the per-axis bounds of the camera positions.
func Extrema(cmds []camera.Command) (min, max mgl64.Vec3) {
	if len(cmds) == 0 {
		return
	}
	min, max = cmds[0].Position, cmds[0].Position
	for _, c := range cmds[1:] {
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], c.Position[i])
			max[i] = math.Max(max[i], c.Position[i])
		}
	}
	return min, max
}

// AxisTrace extracts one position component across the stream, for
// plotting.
func AxisTrace(cmds []camera.Command, axis int) []float64 {
	out := make([]float64, len(cmds))
	for i, c := range cmds {
		out[i] = c.Position[axis]
	}
	return out
}
