package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/jmallek/shotpath/internal/analysis"
	"github.com/jmallek/shotpath/internal/camera"
)

var axisNames = [3]string{"x", "y", "z"}

// RenderTraces plots each camera position component across the keyframe
// stream.
func RenderTraces(cmds []camera.Command) string {
	if len(cmds) < 2 {
		return "not enough keyframes to plot"
	}
	var sb strings.Builder
	for axis := 0; axis < 3; axis++ {
		graph := asciigraph.Plot(analysis.AxisTrace(cmds, axis),
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("position %s vs keyframe", axisNames[axis])),
		)
		sb.WriteString(graph)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// RenderSpeed plots the per-segment speed profile.
func RenderSpeed(cmds []camera.Command) string {
	speeds := analysis.SpeedProfile(cmds)
	if len(speeds) < 2 {
		return "not enough segments to plot"
	}
	return asciigraph.Plot(speeds,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("segment speed (units/s)"),
	)
}
