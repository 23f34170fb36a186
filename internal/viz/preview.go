// Package viz plays an interpreted shot back in the terminal: the playhead
// advances through the keyframe stream, positions are interpolated with the
// named easing curves, and traces render as ascii graphs.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"
	"github.com/tanema/gween/ease"

	"github.com/jmallek/shotpath/internal/analysis"
	"github.com/jmallek/shotpath/internal/camera"
)

const (
	tickRate  = time.Second / 30
	scrubStep = 0.5
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

type TickMsg time.Time

// Model drives playback of one keyframe stream.
type Model struct {
	cmds    []camera.Command
	endTime []float64
	total   float64
	t       float64
	playing bool
	runID   string
}

func NewModel(runID string, cmds []camera.Command) Model {
	return Model{
		cmds:    cmds,
		endTime: analysis.Times(cmds),
		total:   camera.TotalDuration(cmds),
		playing: true,
		runID:   runID,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.t = 0
			m.playing = true
		case "left":
			m.t = max(0, m.t-scrubStep)
		case "right":
			m.t = min(m.total, m.t+scrubStep)
		}
		return m, nil
	case TickMsg:
		if m.playing {
			m.t += tickRate.Seconds()
			if m.t >= m.total {
				m.t = m.total
				m.playing = false
			}
		}
		return m, tick()
	}
	return m, nil
}

// sample interpolates the camera at playback time t using the easing curve
// named on the active keyframe.
func (m Model) sample(t float64) (pos, target mgl64.Vec3, easing string) {
	if len(m.cmds) == 0 {
		return
	}
	prevPos := m.cmds[0].Position
	prevTgt := m.cmds[0].Target
	for i, c := range m.cmds {
		start := m.endTime[i] - c.Duration
		if t <= m.endTime[i] || i == len(m.cmds)-1 {
			if c.Duration <= 1e-6 {
				return c.Position, c.Target, c.Easing
			}
			u := (t - start) / c.Duration
			u = min(max(u, 0), 1)
			fn, ok := camera.Curve(c.Easing)
			if !ok {
				fn = ease.Linear
			}
			eased := float64(fn(float32(u), 0, 1, 1))
			return lerp(prevPos, c.Position, eased), lerp(prevTgt, c.Target, eased), c.Easing
		}
		prevPos = c.Position
		prevTgt = c.Target
	}
	last := m.cmds[len(m.cmds)-1]
	return last.Position, last.Target, last.Easing
}

func lerp(a, b mgl64.Vec3, u float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(u))
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("shotpath preview — %s", m.runID)))
	sb.WriteString("\n")

	pos, target, easing := m.sample(m.t)

	status := "playing"
	if !m.playing {
		status = pausedStyle.Render("paused")
	}
	stats := []string{
		row("time", fmt.Sprintf("%.2fs / %.2fs", m.t, m.total)),
		row("status", status),
		row("position", fmtVec(pos)),
		row("target", fmtVec(target)),
		row("easing", easing),
		row("keyframes", fmt.Sprintf("%d", len(m.cmds))),
	}
	sb.WriteString(statsStyle.Render(strings.Join(stats, "\n")))
	sb.WriteString("\n")

	if len(m.cmds) > 1 {
		graph := asciigraph.Plot(analysis.AxisTrace(m.cmds, 1),
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("camera height across keyframes"),
		)
		sb.WriteString(graphStyle.Render(graph))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("space pause · ←/→ scrub · r restart · q quit"))
	return sb.String()
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func fmtVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
