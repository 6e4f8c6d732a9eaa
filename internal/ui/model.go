package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appchat "codelens/internal/application/chat"
	"codelens/internal/domain/chat"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	langStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
)

type historyMsg struct{ err error }
type turnMsg struct{ err error }
type clearedMsg struct{ err error }

// Model is the bubbletea model for the chat client. It owns the input loop
// and blocks resubmission while a turn is in flight.
type Model struct {
	presenter *appchat.Presenter
	state     *ViewState

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	code     string
	codePath string

	width   int
	height  int
	ready   bool
	waiting bool
}

func New(presenter *appchat.Presenter, state *ViewState, codePath string) Model {
	in := textinput.New()
	in.Placeholder = "describe the change you want..."
	in.Focus()
	in.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		presenter: presenter,
		state:     state,
		input:     in,
		spin:      sp,
		codePath:  codePath,
	}
	if codePath != "" {
		if data, err := os.ReadFile(codePath); err == nil {
			m.code = string(data)
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg { return historyMsg{err: m.presenter.LoadHistory(context.Background())} },
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 5
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit()
		}

	case historyMsg, turnMsg, clearedMsg:
		m.waiting = false
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.waiting {
		// one request in flight at a time
		return m, nil
	}
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	switch {
	case line == "/quit":
		return m, tea.Quit

	case line == "/clear":
		m.input.Reset()
		m.waiting = true
		return m, func() tea.Msg {
			return clearedMsg{err: m.presenter.ClearHistory(context.Background())}
		}

	case strings.HasPrefix(line, "/code "):
		path := strings.TrimSpace(strings.TrimPrefix(line, "/code "))
		data, err := os.ReadFile(path)
		if err != nil {
			m.state.ShowError(fmt.Sprintf("could not read %s: %v", path, err))
		} else {
			m.code = string(data)
			m.codePath = path
			m.state.ClearError()
		}
		m.input.Reset()
		m.refresh()
		return m, nil

	default:
		if m.code == "" {
			m.state.ShowError("no code loaded, use /code <path> first")
			m.refresh()
			return m, nil
		}
		m.input.Reset()
		m.waiting = true
		code, prompt := m.code, line
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			return turnMsg{err: m.presenter.Submit(context.Background(), code, prompt)}
		})
	}
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	snap := m.state.Snapshot()
	m.viewport.SetContent(m.renderTranscript(snap))
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript(snap Snapshot) string {
	if len(snap.Messages) == 0 {
		return hintStyle.Render("No history yet. Load a file with /code <path>, then describe the change you want.")
	}
	var b strings.Builder
	for _, msg := range snap.Messages {
		switch msg.Role {
		case chat.RoleUser:
			b.WriteString(userStyle.Render("You") + "  " + msg.Content + "\n")
			if msg.Code != "" {
				b.WriteString(renderCodeBlock("", msg.Code, m.width) + "\n")
			}
		case chat.RoleAssistant:
			b.WriteString(assistantStyle.Render("Assistant") + "\n")
			if msg.Suggestion != nil {
				b.WriteString(renderCodeBlock(snap.EditorLang, msg.Suggestion.Suggested, m.width) + "\n")
			}
			b.WriteString(msg.Content + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	snap := m.state.Snapshot()

	title := titleStyle.Render("codelens")
	if snap.EditorLang != "" {
		title += "  " + langStyle.Render(snap.EditorLang)
	}
	if m.codePath != "" {
		title += "  " + hintStyle.Render(m.codePath)
	}

	status := hintStyle.Render("enter to send · /code <path> · /clear · esc to quit")
	if m.waiting || snap.Loading {
		status = m.spin.View() + " analyzing..."
	} else if snap.Err != "" {
		status = errorStyle.Render(snap.Err)
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s", title, m.viewport.View(), status, m.input.View())
}
