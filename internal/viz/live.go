package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/cdc6d/nbody/internal/config"
	"github.com/cdc6d/nbody/internal/control"
	"github.com/cdc6d/nbody/internal/metrics"
	"github.com/cdc6d/nbody/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model is the live terminal view. It doubles as the simulation's
// renderer: sprites become filled braille discs, and the tea scheduler
// is the host-paced frame driver (refresh driven, the configured
// interval is ignored).
type Model struct {
	sim    *sim.Simulation
	cfg    *config.Config
	canvas *Canvas

	ke       *metrics.KineticEnergy
	momentum *metrics.Momentum
	heat     *metrics.Heat

	keHistory []float64
	stopped   bool
}

func NewModel(cfg *config.Config, s *sim.Simulation) Model {
	m := Model{
		sim:       s,
		cfg:       cfg,
		canvas:    NewCanvas(width, height),
		ke:        metrics.NewKineticEnergy(),
		momentum:  metrics.NewMomentum(),
		heat:      metrics.NewHeat(),
		keHistory: make([]float64, 0, historyCapacity),
	}
	s.AddMetric(m.ke)
	s.AddMetric(m.momentum)
	s.AddMetric(m.heat)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var stop bool
		switch msg.String() {
		case "q", "ctrl+c":
			stop, _ = m.sim.Apply(control.Quit)
		case " ":
			m.sim.Apply(control.TogglePause)
		case "s":
			m.sim.Apply(control.Step)
		}
		if stop {
			m.stopped = true
			return m, tea.Quit
		}
	case TickMsg:
		if m.stopped {
			return m, tea.Quit
		}
		stop, err := m.sim.Tick(m, nil)
		if err != nil || stop {
			m.stopped = true
			return m, tea.Quit
		}
		if !m.sim.Paused() {
			m.keHistory = append(m.keHistory, m.ke.Value())
			if len(m.keHistory) > historyCapacity {
				m.keHistory = m.keHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// Clear implements sim.Renderer.
func (m Model) Clear() { m.canvas.Clear() }

// DrawSprite implements sim.Renderer: world coordinates scale to the
// braille sub-pixel grid.
func (m Model) DrawSprite(i int, cx, cy float64) {
	bodies := m.sim.Bodies()
	if i >= len(bodies) {
		return
	}
	sx := float64(width*2) / float64(m.cfg.Window.Width)
	sy := float64(height*4) / float64(m.cfg.Window.Height)
	r := int(bodies[i].Radius() * sx)
	m.canvas.FillCircle(int(cx*sx), int(cy*sy), r)
}

// Present implements sim.Renderer; the canvas is flushed by View.
func (m Model) Present() {}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.cfg.Scenario)) + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.keHistory) > 1 {
		chart := asciigraph.Plot(m.keHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Ticks") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Ticks())) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Len())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.2f", m.ke.Value())) + "\n")
	s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("%.2f", m.momentum.Value())) + "\n")
	s.WriteString(labelStyle.Render("Heat") + valueStyle.Render(fmt.Sprintf("%.2f", m.heat.Value())) + "\n")
	s.WriteString(helpStyle.Render("\n──────────────────\nSP:Pause S:Step Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()))
}

func (m Model) status() string {
	switch mode := m.sim.Mode(); {
	case mode == 0:
		return "PAUSED"
	case mode > 0:
		return fmt.Sprintf("STEPPING (%d left)", mode)
	default:
		return "RUNNING"
	}
}

// Run blocks inside the terminal program until the user quits or the
// simulation stops itself.
func Run(cfg *config.Config, s *sim.Simulation) error {
	p := tea.NewProgram(NewModel(cfg, s))
	if _, err := p.Run(); err != nil {
		return err
	}
	if err := s.Close(); err != nil && err != sim.ErrClosed {
		return err
	}
	return nil
}
