package session

import (
	"strings"

	"github.com/samsaffron/term-chat/internal/llm"
)

// Message is a single conversational message as seen by the renderer.
// Content is the text accumulated so far and may still be streaming.
type Message struct {
	Role    llm.Role `yaml:"role" json:"role"`
	Content string   `yaml:"content" json:"content"`
}

// NewMessage creates a message, defaulting an empty role to assistant.
func NewMessage(role, content string) Message {
	return Message{Role: llm.ParseRole(role), Content: content}
}

// Transcript is an ordered list of messages loaded for display.
type Transcript struct {
	Title    string    `yaml:"title,omitempty" json:"title,omitempty"`
	Messages []Message `yaml:"messages" json:"messages"`
}

// Last returns the final message of the transcript, or false if empty.
func (t *Transcript) Last() (Message, bool) {
	if t == nil || len(t.Messages) == 0 {
		return Message{}, false
	}
	return t.Messages[len(t.Messages)-1], true
}

// Summary returns a one-line description of the transcript.
func (t *Transcript) Summary() string {
	if t.Title != "" {
		return t.Title
	}
	for _, m := range t.Messages {
		if m.Role.IsUser() {
			line, _, _ := strings.Cut(strings.TrimSpace(m.Content), "\n")
			return line
		}
	}
	return "untitled"
}
