package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// PointMsg announces that a new grid point started.
type PointMsg struct {
	Index int
	Total int
	Label string
}

// IterMsg announces one completed iteration.
type IterMsg struct {
	Candidate string
	Iteration int
	GCHit     bool
}

// DoneMsg ends the program. Err is nil on success.
type DoneMsg struct {
	Err error
}

// SweepModel is the live progress view for a parameter sweep. Events
// arrive over a channel so the measurement loop never blocks on
// rendering.
type SweepModel struct {
	events <-chan tea.Msg

	spinner  spinner.Model
	progress progress.Model

	point      string
	pointIndex int
	pointTotal int
	candidate  string
	iterations int
	gcHits     int
	err        error
	done       bool
}

// NewSweepModel builds the model; events must be closed or followed by
// a DoneMsg when the sweep finishes.
func NewSweepModel(events <-chan tea.Msg) SweepModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(progress.WithDefaultGradient())

	return SweepModel{
		events:   events,
		spinner:  s,
		progress: p,
	}
}

func (m SweepModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.events
		if !ok {
			return DoneMsg{}
		}
		return msg
	}
}

func (m SweepModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

func (m SweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			// The measurement loop is not cancellable mid-iteration;
			// quitting just detaches the view.
			return m, tea.Quit
		}
	case PointMsg:
		m.point = msg.Label
		m.pointIndex = msg.Index
		m.pointTotal = msg.Total
		m.iterations = 0
		m.gcHits = 0
		return m, m.waitForEvent()
	case IterMsg:
		m.candidate = msg.Candidate
		m.iterations++
		if msg.GCHit {
			m.gcHits++
		}
		return m, m.waitForEvent()
	case DoneMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SweepModel) View() string {
	if m.done {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("sweep failed: %v", m.err)) + "\n"
		}
		return successStyle.Render("sweep complete") + "\n"
	}

	frac := 0.0
	if m.pointTotal > 0 {
		frac = float64(m.pointIndex) / float64(m.pointTotal)
	}

	header := titleStyle.Render("benchpress sweep")
	line := fmt.Sprintf("%s point %d/%d  %s", m.spinner.View(), m.pointIndex+1, m.pointTotal, m.point)
	detail := detailStyle.Render(fmt.Sprintf("  %s: %d iterations, %d gc-affected", m.candidate, m.iterations, m.gcHits))

	return header + "\n" + line + "\n" + m.progress.ViewAs(frac) + "\n" + detail + "\n"
}
