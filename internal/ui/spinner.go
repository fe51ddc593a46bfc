package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type spinDoneMsg struct{}

type spinModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func (m spinModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.title)
}

// Spin shows a spinner with title on out while fn runs and returns fn's
// error. When animate is false fn runs without any output.
func Spin(out io.Writer, theme Theme, title string, animate bool, fn func() error) error {
	if !animate {
		return fn()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = NewStyles(theme).Success

	p := tea.NewProgram(spinModel{spinner: s, title: title},
		tea.WithOutput(out),
		tea.WithInput(nil),
	)

	result := make(chan error, 1)
	go func() {
		err := fn()
		result <- err
		p.Send(spinDoneMsg{})
	}()

	// A spinner failure is cosmetic; fn's outcome is what matters.
	_, _ = p.Run()
	return <-result
}
