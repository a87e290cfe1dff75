package cmd

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samsaffron/term-chat/internal/render/chat"
	"github.com/samsaffron/term-chat/internal/session"
	"github.com/samsaffron/term-chat/internal/ui"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestViewModel(t *testing.T, messages ...session.Message) (viewModel, *[]string) {
	t.Helper()
	var copied []string
	m := newViewModel(&session.Transcript{Title: "Test", Messages: messages}, chat.NewRenderer(80, true))
	m.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return updated.(viewModel), &copied
}

func TestViewModel_Resize(t *testing.T) {
	m, _ := newTestViewModel(t, session.NewMessage("user", "hello"))
	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	if m.renderer.Width() != 60 {
		t.Errorf("renderer width = %d, want 60", m.renderer.Width())
	}
	if m.viewport.Height != 19 {
		t.Errorf("viewport height = %d, want 19", m.viewport.Height)
	}
	if !strings.Contains(ui.StripANSI(m.View()), "hello") {
		t.Errorf("view missing message:\n%s", m.View())
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = updated.(viewModel)
	if m.renderer.Width() != 40 || m.viewport.Width != 40 {
		t.Errorf("resize not applied: renderer=%d viewport=%d", m.renderer.Width(), m.viewport.Width)
	}
}

func TestViewModel_ToggleDark(t *testing.T) {
	m, _ := newTestViewModel(t, session.NewMessage("assistant", "hi"))
	updated, _ := m.Update(keyPress("t"))
	m = updated.(viewModel)
	if m.renderer.Dark() {
		t.Error("renderer still dark after toggle")
	}
}

func TestViewModel_CopyLastCodeBlock(t *testing.T) {
	m, copied := newTestViewModel(t,
		session.NewMessage("user", "code please"),
		session.NewMessage("assistant", "```go\nx := 1\n```\n\n```go\ny := 2\n```"),
	)

	updated, cmd := m.Update(keyPress("c"))
	m = updated.(viewModel)
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	updated, _ = m.Update(cmd())
	m = updated.(viewModel)

	if len(*copied) != 1 || (*copied)[0] != "y := 2" {
		t.Fatalf("copied = %q, want the last block", *copied)
	}
	if m.status != "copied code block" {
		t.Errorf("status = %q", m.status)
	}
}

func TestViewModel_CopyWithoutCode(t *testing.T) {
	m, copied := newTestViewModel(t, session.NewMessage("assistant", "no code"))
	updated, cmd := m.Update(keyPress("c"))
	m = updated.(viewModel)
	if cmd != nil || len(*copied) != 0 {
		t.Fatal("nothing should be copied")
	}
	if m.status != "no code block to copy" {
		t.Errorf("status = %q", m.status)
	}
}

func TestViewModel_CopyError(t *testing.T) {
	m, _ := newTestViewModel(t)
	updated, _ := m.Update(copyResultMsg{err: errors.New("no display")})
	if got := updated.(viewModel).status; got != "copy failed: no display" {
		t.Errorf("status = %q", got)
	}
}

func TestViewModel_Quit(t *testing.T) {
	m, _ := newTestViewModel(t)
	_, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
