// Package export renders an interpreted shot for inspection outside the
// terminal.
package export

import (
	"fmt"
	"strings"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/scene"
)

// PathToSVG draws a top-down (XZ plane) view of the camera path: the
// subject box, the path polyline, and a dot per keyframe.
func PathToSVG(cmds []camera.Command, sc *scene.SceneAnalysis, width, height int) string {
	if len(cmds) < 2 {
		return ""
	}

	minX, maxX := cmds[0].Position.X(), cmds[0].Position.X()
	minZ, maxZ := cmds[0].Position.Z(), cmds[0].Position.Z()
	grow := func(x, z float64) {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if z < minZ {
			minZ = z
		}
		if z > maxZ {
			maxZ = z
		}
	}
	for _, c := range cmds {
		grow(c.Position.X(), c.Position.Z())
	}
	box, hasBox := sc.SubjectBox()
	if hasBox {
		grow(box.Min.X(), box.Min.Z())
		grow(box.Max.X(), box.Max.Z())
	}

	rangeX := maxX - minX
	rangeZ := maxZ - minZ
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeZ == 0 {
		rangeZ = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minZ -= rangeZ * 0.1
	maxZ += rangeZ * 0.1
	rangeX = maxX - minX
	rangeZ = maxZ - minZ

	px := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	pz := func(z float64) float64 { return float64(height) - (z-minZ)/rangeZ*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if hasBox {
		x := px(box.Min.X())
		z := pz(box.Max.Z())
		w := px(box.Max.X()) - x
		h := pz(box.Min.Z()) - z
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#ffaa00" stroke-width="1"/>
`, x, z, w, h))
	}

	sb.WriteString(`<path fill="none" stroke="#00ccff" stroke-width="1.5" d="M`)
	for i, c := range cmds {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(c.Position.X()), pz(c.Position.Z())))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px(c.Position.X()), pz(c.Position.Z())))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(`<g fill="#00ff88">` + "\n")
	for _, c := range cmds {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1.6"/>
`, px(c.Position.X()), pz(c.Position.Z())))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
