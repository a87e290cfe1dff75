package chat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samsaffron/term-chat/internal/markdown"
	"github.com/samsaffron/term-chat/internal/ui"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// bodyRenderer renders one parsed message. It is used for a single pass and
// then discarded.
type bodyRenderer struct {
	doc    *markdown.Document
	src    []byte
	width  int
	styles *ui.Styles
	code   ui.CodeBlockRenderer

	codeBlocks []ui.CodeBlock
}

func newBodyRenderer(doc *markdown.Document, width int, styles *ui.Styles, code ui.CodeBlockRenderer) *bodyRenderer {
	return &bodyRenderer{
		doc:    doc,
		src:    doc.Source,
		width:  width,
		styles: styles,
		code:   code,
	}
}

// render walks the top-level blocks in document order.
func (b *bodyRenderer) render() string {
	return b.blocks(b.doc.Root, b.width, "\n\n")
}

func (b *bodyRenderer) blocks(parent ast.Node, width int, sep string) string {
	var parts []string
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if s := b.block(n, width); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

func (b *bodyRenderer) block(n ast.Node, width int) string {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return wrap(b.inlines(node), width)

	case *ast.Heading:
		prefix := strings.Repeat("#", node.Level) + " "
		return b.styles.Heading.Render(wrap(prefix+b.inlines(node), width))

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return b.codeBlock(node)

	case *ast.List:
		return b.list(node, width)

	case *ast.Blockquote:
		inner := b.blocks(node, width-2, "\n\n")
		lines := strings.Split(inner, "\n")
		for i, line := range lines {
			lines[i] = b.styles.BlockQuote.Render("│ ") + b.styles.BlockQuote.Render(line)
		}
		return strings.Join(lines, "\n")

	case *ast.ThematicBreak:
		return b.styles.Rule.Render(strings.Repeat("─", min(width, 40)))

	case *ast.HTMLBlock:
		return b.styles.Muted.Render(strings.TrimRight(linesText(node, b.src), "\n"))

	case *extast.Table:
		return ui.RenderPassthrough(sourceLines(node, b.src), width, b.styles.Theme())

	case *markdown.MathBlock:
		return b.styles.Math.Render("$$\n" + node.Formula(b.src) + "\n$$")
	}

	if n.Type() == ast.TypeBlock && n.HasChildren() && n.FirstChild().Type() == ast.TypeBlock {
		return b.blocks(n, width, "\n\n")
	}
	return wrap(b.inlines(n), width)
}

// codeBlock classifies a fenced or indented block and hands it to the code
// renderer. The key is the block's position among the message's code blocks.
func (b *bodyRenderer) codeBlock(n ast.Node) string {
	node, _ := markdown.FromAST(n, b.src)
	c := markdown.Classify(node)
	if c.Variant == markdown.VariantCursor {
		return b.styles.Cursor.Render(markdown.CursorGlyph)
	}

	block := ui.CodeBlock{
		Key:      "code-" + strconv.Itoa(len(b.codeBlocks)),
		Language: c.Language,
		Value:    c.Value,
	}
	b.codeBlocks = append(b.codeBlocks, block)
	return b.code.RenderCodeBlock(block)
}

func (b *bodyRenderer) codeSpan(n *ast.CodeSpan) string {
	node, _ := markdown.FromAST(n, b.src)
	c := markdown.Classify(node)
	if c.Variant == markdown.VariantCursor {
		return b.styles.Cursor.Render(markdown.CursorGlyph)
	}
	return b.styles.InlineCode.Render(strings.Join(c.Children, ""))
}

func (b *bodyRenderer) list(l *ast.List, width int) string {
	sep := "\n"
	if !l.IsTight {
		sep = "\n\n"
	}

	var items []string
	number := l.Start
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if l.IsOrdered() {
			marker = strconv.Itoa(number) + "."
			number++
		}
		markerWidth := len(marker) + 1

		content := b.blocks(item, width-markerWidth, sep)
		lines := strings.Split(content, "\n")
		lines[0] = b.styles.ListMarker.Render(marker) + " " + lines[0]
		rest := indent.String(strings.Join(lines[1:], "\n"), uint(markerWidth))
		if len(lines) > 1 {
			items = append(items, lines[0]+"\n"+rest)
		} else {
			items = append(items, lines[0])
		}
	}
	return strings.Join(items, sep)
}

func (b *bodyRenderer) inlines(parent ast.Node) string {
	var sb strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		sb.WriteString(b.inline(n))
	}
	return sb.String()
}

func (b *bodyRenderer) inline(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Text:
		s := string(node.Segment.Value(b.src))
		switch {
		case node.HardLineBreak():
			s += "\n"
		case node.SoftLineBreak():
			s += " "
		}
		return s

	case *ast.String:
		return string(node.Value)

	case *ast.CodeSpan:
		return b.codeSpan(node)

	case *ast.Emphasis:
		if node.Level >= 2 {
			return b.styles.Strong.Render(b.inlines(node))
		}
		return b.styles.Emph.Render(b.inlines(node))

	case *extast.Strikethrough:
		return b.styles.Strikethrough.Render(b.inlines(node))

	case *ast.Link:
		label := b.inlines(node)
		dest := string(node.Destination)
		if ui.StripANSI(label) == dest || dest == "" {
			return b.styles.Link.Render(label)
		}
		return b.styles.Link.Render(label) + b.styles.LinkURL.Render(" ("+dest+")")

	case *ast.AutoLink:
		return b.styles.Link.Render(string(node.URL(b.src)))

	case *ast.Image:
		return b.styles.Muted.Render(fmt.Sprintf("[image: %s]", ui.StripANSI(b.inlines(node))))

	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			sb.Write(seg.Value(b.src))
		}
		return sb.String()

	case *extast.TaskCheckBox:
		if node.IsChecked {
			return "[" + ui.SuccessIcon + "] "
		}
		return "[ ] "
	}
	return b.inlines(n)
}

// wrap word-wraps styled text to width.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// linesText concatenates a block's raw lines.
func linesText(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return sb.String()
}

// sourceLines returns the full source lines a block spans, found from the
// segments of its descendants. Used for blocks rendered by glamour as-is.
func sourceLines(n ast.Node, src []byte) string {
	start, stop := len(src), 0
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if c.Type() == ast.TypeBlock {
			lines := c.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				start = min(start, seg.Start)
				stop = max(stop, seg.Stop)
			}
		}
		if t, ok := c.(*ast.Text); ok {
			start = min(start, t.Segment.Start)
			stop = max(stop, t.Segment.Stop)
		}
		return ast.WalkContinue, nil
	})
	if start >= stop {
		return ""
	}
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	for stop < len(src) && src[stop] != '\n' {
		stop++
	}
	return string(src[start:stop])
}
