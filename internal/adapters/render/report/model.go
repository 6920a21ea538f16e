package report

import (
	"errors"
	"io"

	"github.com/bnema/baccarat-tracker/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	reply  ports.Reply
	opts   RenderOptions
	styles styles
	output string
}

func newModel(reply ports.Reply, opts RenderOptions) model {
	return model{
		reply:  reply,
		opts:   opts,
		styles: newStyles(opts.Plain),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.reply, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render formats one reply for a terminal.
func Render(reply ports.Reply, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(reply, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
