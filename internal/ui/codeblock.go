package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CodeBlock is what a code block renderer receives.
type CodeBlock struct {
	// Key is a stable identifier derived from the block's position in the message.
	Key      string
	Language string
	Value    string
}

// CodeBlockRenderer renders a fenced code block.
// An empty Language must render as plain, unhighlighted code.
type CodeBlockRenderer interface {
	RenderCodeBlock(block CodeBlock) string
}

// CodeBlockRendererFunc adapts a function to CodeBlockRenderer.
type CodeBlockRendererFunc func(block CodeBlock) string

// RenderCodeBlock implements CodeBlockRenderer.
func (f CodeBlockRendererFunc) RenderCodeBlock(block CodeBlock) string {
	return f(block)
}

// ChromaCodeRenderer highlights code with chroma and draws a labelled left border.
type ChromaCodeRenderer struct {
	Styles      *Styles
	StyleName   string // chroma style; empty picks the default for the theme background
	LineNumbers bool
}

// NewChromaCodeRenderer creates a code renderer for styles.
func NewChromaCodeRenderer(s *Styles, styleName string, lineNumbers bool) *ChromaCodeRenderer {
	return &ChromaCodeRenderer{Styles: s, StyleName: styleName, LineNumbers: lineNumbers}
}

func (r *ChromaCodeRenderer) styleName() string {
	if r.StyleName != "" {
		return r.StyleName
	}
	if r.Styles != nil && !r.Styles.Theme().Dark {
		return DefaultLightCodeStyle
	}
	return DefaultDarkCodeStyle
}

// RenderCodeBlock implements CodeBlockRenderer.
func (r *ChromaCodeRenderer) RenderCodeBlock(block CodeBlock) string {
	s := r.Styles
	if s == nil {
		s = NewStyles(DefaultTheme())
	}

	code := ExpandTabs(block.Value)
	highlighted := NewHighlighter(block.Language, r.styleName()).Highlight(code)
	lines := strings.Split(highlighted, "\n")

	if r.LineNumbers {
		numWidth := len(strconv.Itoa(len(lines)))
		for i, line := range lines {
			lines[i] = s.Muted.Render(fmt.Sprintf("%*d ", numWidth, i+1)) + line
		}
	}

	label := block.Language
	if label == "" {
		label = "text"
	}
	header := s.CodeHeader.Render(label)
	if block.Key != "" {
		header += s.Muted.Render(" · " + block.Key)
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(s.Theme().Border).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))

	return header + "\n" + body
}
