package chat

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/samsaffron/term-chat/internal/markdown"
	"github.com/samsaffron/term-chat/internal/session"
	"github.com/samsaffron/term-chat/internal/ui"
)

// MessageBlock represents a rendered message.
// Once rendered, blocks are immutable and can be reused across frames.
type MessageBlock struct {
	// Rendered is the complete rendered output for this message
	Rendered string

	// Height is the number of lines in the rendered output
	Height int

	// Width is the terminal width when this block was rendered
	// (used for cache invalidation on resize)
	Width int

	// CodeBlocks lists the code blocks in document order
	CodeBlocks []ui.CodeBlock

	// Streaming is true while the content still carries a cursor glyph
	Streaming bool
}

// MessageBlockRenderer renders session messages to MessageBlocks.
type MessageBlockRenderer struct {
	width        int
	theme        *ui.Theme
	styles       *ui.Styles
	icons        Icons
	actions      ActionRenderer
	parser       markdown.Parser
	codeRenderer ui.CodeBlockRenderer
}

// NewMessageBlockRenderer creates a new renderer for message blocks.
func NewMessageBlockRenderer(opts ...Option) *MessageBlockRenderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	theme := o.theme
	if theme == nil {
		theme = ui.ThemeFor(o.dark, o.themeConfig)
	}
	styles := ui.NewStyles(theme)

	parser := o.parser
	if parser == nil {
		parser = markdown.NewParser()
	}
	codeRenderer := o.codeRenderer
	if codeRenderer == nil {
		codeStyle := o.codeLight
		if theme.Dark {
			codeStyle = o.codeDark
		}
		codeRenderer = ui.NewChromaCodeRenderer(styles, codeStyle, o.lineNumbers)
	}

	return &MessageBlockRenderer{
		width:        o.width,
		theme:        theme,
		styles:       styles,
		icons:        o.icons,
		actions:      o.actions,
		parser:       parser,
		codeRenderer: codeRenderer,
	}
}

// RenderChatMessage renders one message with the given options.
func RenderChatMessage(msg session.Message, opts ...Option) string {
	return NewMessageBlockRenderer(opts...).Render(msg).Rendered
}

// Avatar returns the icon for a role: the user icon for "user", the
// assistant icon for every other role.
func (r *MessageBlockRenderer) Avatar(msg session.Message) string {
	if msg.Role.IsUser() {
		return r.icons.User
	}
	return r.icons.Assistant
}

// Render converts a session.Message to a MessageBlock.
func (r *MessageBlockRenderer) Render(msg session.Message) *MessageBlock {
	avatar := r.Avatar(msg)
	avatarStyle := r.styles.AssistantAvatar
	if msg.Role.IsUser() {
		avatarStyle = r.styles.UserAvatar
	}

	// Avatar column is the icon plus one space
	gutter := runewidth.StringWidth(avatar) + 1
	bodyWidth := r.width - gutter
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	doc := r.parser.Parse(msg.Content)
	body := newBodyRenderer(doc, bodyWidth, r.styles, r.codeRenderer)
	rendered := body.render()

	var b strings.Builder
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		if i == 0 {
			b.WriteString(avatarStyle.Render(avatar))
			b.WriteString(" ")
		} else {
			b.WriteString(strings.Repeat(" ", gutter))
		}
		if msg.Role.IsUser() {
			line = r.styles.UserBody.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if r.actions != nil {
		if controls := r.actions(msg); controls != "" {
			b.WriteString(strings.Repeat(" ", gutter))
			b.WriteString(r.styles.Actions.Render(controls))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n") // Extra blank line between messages

	content := b.String()
	return &MessageBlock{
		Rendered:   content,
		Height:     countLines(content),
		Width:      r.width,
		CodeBlocks: body.codeBlocks,
		Streaming:  markdown.IsStreaming(msg.Content),
	}
}

// DefaultActions renders the copy and regenerate hints. Regenerate is only
// offered for settled assistant messages.
func DefaultActions(msg session.Message) string {
	if msg.Role.IsUser() || markdown.IsStreaming(msg.Content) {
		return "⧉ copy"
	}
	return "⧉ copy · ↻ regenerate"
}

// countLines counts the number of newlines in a string.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	count := strings.Count(s, "\n")
	// Account for final line without trailing newline
	if s[len(s)-1] != '\n' {
		count++
	}
	return count
}

// RenderEmptyHistory renders the "no messages" placeholder.
func RenderEmptyHistory(s *ui.Styles) string {
	return s.Muted.Render("No messages in this transcript.") + "\n\n"
}
