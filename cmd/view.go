package cmd

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samsaffron/term-chat/internal/clipboard"
	"github.com/samsaffron/term-chat/internal/render/chat"
	"github.com/samsaffron/term-chat/internal/session"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Page through a transcript",
	Long: `Open a transcript in a scrollable full-screen pager.

Keys:
  j/k, ↑/↓, pgup/pgdn   scroll
  t                     toggle dark/light palette
  c                     copy the last code block
  q                     quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	t, err := session.LoadTranscript(args[0])
	if err != nil {
		return err
	}

	r := chat.NewRenderer(renderWidth(cfg), cfg.Dark(), chatOptions(cfg)...)
	p := tea.NewProgram(newViewModel(t, r), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

type viewKeyMap struct {
	Toggle key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

func defaultViewKeyMap() viewKeyMap {
	return viewKeyMap{
		Toggle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark/light")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy code")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// copyResultMsg reports the outcome of a clipboard copy.
type copyResultMsg struct {
	err error
}

// viewModel is the bubbletea model for the transcript pager
type viewModel struct {
	transcript *session.Transcript
	renderer   *chat.Renderer
	viewport   viewport.Model
	keys       viewKeyMap
	ready      bool
	status     string
	copy       func(string) error
}

func newViewModel(t *session.Transcript, r *chat.Renderer) viewModel {
	return viewModel{
		transcript: t,
		renderer:   r,
		keys:       defaultViewKeyMap(),
		copy:       clipboard.CopyText,
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.renderer.SetDark(!m.renderer.Dark())
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			code, ok := m.renderer.LastCodeBlock(m.transcript.Messages)
			if !ok {
				m.status = "no code block to copy"
				return m, nil
			}
			copyFn := m.copy
			return m, func() tea.Msg {
				return copyResultMsg{err: copyFn(code)}
			}
		}

	case copyResultMsg:
		if msg.err != nil {
			slog.Debug("copy failed", "error", msg.err)
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied code block"
		}
		return m, nil

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1) // -1 for footer
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
		m.renderer.SetSize(msg.Width)
		m.refresh()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the transcript into the viewport.
func (m *viewModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderer.RenderTranscript(m.transcript))
}

func (m viewModel) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.viewport.View() + "\n" + m.footer()
}

func (m viewModel) footer() string {
	muted := lipgloss.NewStyle().Faint(true)
	left := fmt.Sprintf("%s · %3.f%%", m.transcript.Summary(), m.viewport.ScrollPercent()*100)
	help := "j/k scroll · " + m.keys.Toggle.Help().Key + " " + m.keys.Toggle.Help().Desc +
		" · " + m.keys.Copy.Help().Key + " " + m.keys.Copy.Help().Desc +
		" · " + m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc
	if m.status != "" {
		help = m.status
	}
	return muted.Render(left + "  " + help)
}
