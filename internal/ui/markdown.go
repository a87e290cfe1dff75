package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererKey identifies a cached glamour renderer.
type rendererKey struct {
	width int
	theme Theme
}

// rendererCache provides width- and theme-keyed caching of glamour renderers.
// Creating a renderer is expensive; caching avoids recreation on every frame.
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width and theme, creating one if needed.
func getRenderer(width int, theme *Theme) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, theme: *theme}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	style := GlamourStyleFromTheme(theme)
	margin := uint(0)
	style.Document.Margin = &margin
	style.Document.BlockPrefix = ""
	style.Document.BlockSuffix = ""

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	// Store for future use (race-safe: if another goroutine stored first, we just discard ours)
	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderPassthrough renders a markdown block the chat renderer does not
// handle itself (GFM tables). On error, returns the source unchanged.
func RenderPassthrough(source string, width int, theme *Theme) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	rendered, err := RenderPassthroughWithError(source, width, theme)
	if err != nil {
		return source
	}
	return rendered
}

// RenderPassthroughWithError renders a markdown block and returns any errors.
func RenderPassthroughWithError(source string, width int, theme *Theme) (string, error) {
	if theme == nil {
		theme = DefaultTheme()
	}
	renderer, err := getRenderer(width, theme)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(source)
	if err != nil {
		return "", err
	}

	return trimBlankLines(rendered), nil
}

// trimBlankLines drops leading and trailing lines that hold only whitespace
// once styling is removed. glamour pads its output with such lines.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	blank := func(line string) bool {
		return strings.TrimSpace(StripANSI(line)) == ""
	}
	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
