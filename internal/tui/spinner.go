package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harness/yrm/internal/style"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type spinnerDoneMsg[T any] struct {
	result T
	err    error
}

// ─── Model ───────────────────────────────────────────────────────────────────

type spinnerModel[T any] struct {
	spinner  spinner.Model
	title    string
	done     bool
	err      error
	result   T
	runFunc  func() (T, error)
	quitting bool
}

func newSpinnerModel[T any](title string, fn func() (T, error)) spinnerModel[T] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.SpinnerColor)

	return spinnerModel[T]{
		spinner: s,
		title:   title,
		runFunc: fn,
	}
}

func (m spinnerModel[T]) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			result, err := m.runFunc()
			return spinnerDoneMsg[T]{result: result, err: err}
		},
	)
}

func (m spinnerModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinnerDoneMsg[T]:
		m.done = true
		m.err = msg.err
		m.result = msg.result
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m spinnerModel[T]) View() string {
	if m.done || m.quitting {
		return ""
	}
	return m.spinner.View() + " " + m.title + "...\n"
}

// ErrInterrupted is returned when the user aborts a spinner with ctrl+c.
var ErrInterrupted = fmt.Errorf("interrupted")

// RunWithSpinner runs fn while drawing a spinner on out and returns fn's
// result once it finishes.
func RunWithSpinner[T any](out io.Writer, title string, fn func() (T, error)) (T, error) {
	var zero T
	p := tea.NewProgram(newSpinnerModel(title, fn), tea.WithOutput(out))

	finalModel, err := p.Run()
	if err != nil {
		return zero, err
	}

	m := finalModel.(spinnerModel[T])
	if m.quitting {
		return zero, ErrInterrupted
	}
	if m.err != nil {
		return zero, m.err
	}
	return m.result, nil
}
