package summary

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// composedMsg carries the finished frame from the compose command back into
// the update loop.
type composedMsg string

// frame is a single-shot program: Init composes the view off the update
// loop, Update stores it and quits.
type frame struct {
	compose  func(styles) string
	styles   styles
	rendered string
	ready    bool
}

func newFrame(compose func(styles) string) frame {
	return frame{compose: compose, styles: newStyles()}
}

func (f frame) Init() tea.Cmd {
	compose, st := f.compose, f.styles
	return func() tea.Msg {
		return composedMsg(compose(st))
	}
}

func (f frame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if out, ok := msg.(composedMsg); ok {
		f.rendered = string(out)
		f.ready = true
		return f, tea.Quit
	}
	return f, nil
}

func (f frame) View() string {
	if !f.ready {
		return ""
	}
	return f.rendered
}

func run(compose func(styles) string) (string, error) {
	final, err := tea.NewProgram(
		newFrame(compose),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	).Run()
	if err != nil {
		return "", err
	}

	f, ok := final.(frame)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return f.View(), nil
}
