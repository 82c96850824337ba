package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fieldplot/internal/ode"
)

const (
	graphWidth      = 80
	graphHeight     = 16
	historyCapacity = 600
)

type TickMsg time.Time

// LiveModel steps one trajectory interactively and plots its recent y
// history. It applies the same termination rules as ode.Trace, so the live
// view and a batch run stop at the same point.
type LiveModel struct {
	fieldName string
	formula   string
	field     ode.Derivative
	step      float64
	end       ode.EndCondition

	start   ode.Point
	cur     ode.Point
	steps   int
	history []float64

	running      bool
	done         bool
	stepsPerTick int
	fps          int
}

func NewLive(fieldName, formula string, field ode.Derivative, start ode.Point, step float64, end ode.EndCondition, fps int) LiveModel {
	if fps <= 0 {
		fps = 30
	}
	return LiveModel{
		fieldName:    fieldName,
		formula:      formula,
		field:        field,
		step:         step,
		end:          end,
		start:        start,
		cur:          start,
		history:      make([]float64, 0, historyCapacity),
		running:      true,
		stepsPerTick: 50,
		fps:          fps,
	}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.cur = m.start
			m.steps = 0
			m.history = m.history[:0]
			m.done = false
			m.running = true
		case "+", "=":
			m.stepsPerTick *= 2
		case "-":
			if m.stepsPerTick > 1 {
				m.stepsPerTick /= 2
			}
		}
	case TickMsg:
		if m.running && !m.done {
			m.advance(m.stepsPerTick)
		}
		return m, m.tick()
	}
	return m, nil
}

// advance mirrors the ode.Trace loop: stop conditions are checked against
// the current point before it is recorded.
func (m *LiveModel) advance(n int) {
	for i := 0; i < n; i++ {
		if m.steps >= m.end.MaxSteps ||
			m.end.HasReached(m.cur) ||
			ode.IsDegenerate(m.cur.X) || ode.IsDegenerate(m.cur.Y) {
			m.done = true
			return
		}

		if len(m.history) == historyCapacity {
			copy(m.history, m.history[1:])
			m.history = m.history[:historyCapacity-1]
		}
		m.history = append(m.history, m.cur.Y)
		m.steps++

		m.cur.Y += m.field(m.cur.X, m.cur.Y) * m.step
		m.cur.X += m.step
	}
}

func (m LiveModel) View() string {
	header := headerStyle.Render(fmt.Sprintf("fieldplot live · %s", m.fieldName)) +
		"  " + valueStyle.Render(m.formula)

	graph := "waiting for points..."
	if len(m.history) > 1 {
		graph = asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("y (recent history)"),
		)
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	if m.done {
		status = doneStyle.Render("terminated")
	}

	stats := Summary("trace", [][2]string{
		{"x", fmt.Sprintf("%.4f", m.cur.X)},
		{"y", fmt.Sprintf("%.4f", m.cur.Y)},
		{"steps", fmt.Sprintf("%d", m.steps)},
		{"steps/tick", fmt.Sprintf("%d", m.stepsPerTick)},
		{"status", status},
	})

	help := helpStyle.Render("space pause · r reset · +/- speed · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		graphStyle.Render(graph),
		stats,
		help,
	)
}
