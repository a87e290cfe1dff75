package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Default chroma styles for each background.
const (
	DefaultDarkCodeStyle  = "monokai"
	DefaultLightCodeStyle = "github"
)

// Highlighter handles syntax highlighting for code blocks
type Highlighter struct {
	lexer    chroma.Lexer
	style    *chroma.Style
	renderer *lipgloss.Renderer
}

// NewHighlighter creates a highlighter for the given language name or alias.
// Returns nil if the language is empty or not recognized.
func NewHighlighter(language, styleName string) *Highlighter {
	if language == "" {
		return nil
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{
		lexer:    lexer,
		style:    style,
		renderer: lipgloss.DefaultRenderer(),
	}
}

// Highlight applies syntax highlighting to code without a background color.
// A nil highlighter returns code unchanged.
func (h *Highlighter) Highlight(code string) string {
	if h == nil {
		return code
	}

	iterator, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	formatter := &noBgFormatter{style: h.style, renderer: h.renderer}
	if err := formatter.format(&buf, iterator); err != nil {
		return code
	}

	// Lexers commonly add a trailing newline token the source did not have.
	out := buf.String()
	if !strings.HasSuffix(code, "\n") {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

// noBgFormatter applies only foreground colors, one line at a time so that
// every output line carries its own escape sequences.
type noBgFormatter struct {
	style    *chroma.Style
	renderer *lipgloss.Renderer
}

func (f *noBgFormatter) format(w *strings.Builder, iterator chroma.Iterator) error {
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := f.style.Get(token.Type)

		st := f.renderer.NewStyle()
		if entry.Colour.IsSet() {
			st = st.Foreground(lipgloss.Color(entry.Colour.String()))
		}
		if entry.Bold == chroma.Yes {
			st = st.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			st = st.Italic(true)
		}
		if entry.Underline == chroma.Yes {
			st = st.Underline(true)
		}

		lines := strings.Split(token.Value, "\n")
		for i, line := range lines {
			if i > 0 {
				w.WriteByte('\n')
			}
			if line == "" {
				continue
			}
			w.WriteString(st.Render(line))
		}
	}
	return nil
}

const tabWidth = 4

func advanceColumn(col int, r rune) int {
	switch r {
	case '\t':
		if tabWidth <= 0 {
			return col
		}
		return col + (tabWidth - (col % tabWidth))
	case '\n':
		return 0
	}

	width := runewidth.RuneWidth(r)
	if width < 0 {
		width = 0
	}
	return col + width
}

// ExpandTabs replaces tabs with spaces up to the next tab stop so that code
// blocks keep their alignment inside bordered chrome.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			next := advanceColumn(col, r)
			b.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		b.WriteRune(r)
		col = advanceColumn(col, r)
	}
	return b.String()
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ANSILen returns the display width of a string, ignoring ANSI codes
func ANSILen(s string) int {
	return ansi.StringWidth(s)
}
