package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// FromAST converts a goldmark code span or code block into a CodeNode.
// The second return value is false for any other node kind.
func FromAST(n ast.Node, source []byte) (CodeNode, bool) {
	switch node := n.(type) {
	case *ast.CodeSpan:
		return CodeNode{Inline: true, Children: spanFragments(node, source)}, true
	case *ast.FencedCodeBlock:
		cn := CodeNode{Children: blockFragments(node, source)}
		if lang := node.Language(source); len(lang) > 0 {
			cn.ClassName = "language-" + string(lang)
		}
		return cn, true
	case *ast.CodeBlock:
		return CodeNode{Children: blockFragments(node, source)}, true
	}
	return CodeNode{}, false
}

// spanFragments returns one fragment per text child. Line endings inside a
// code span render as spaces.
func spanFragments(n *ast.CodeSpan, source []byte) []string {
	var frags []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		var s string
		switch t := c.(type) {
		case *ast.Text:
			s = string(t.Segment.Value(source))
		case *ast.String:
			s = string(t.Value)
		default:
			continue
		}
		if strings.HasSuffix(s, "\n") {
			s = strings.TrimSuffix(s, "\n") + " "
		}
		frags = append(frags, s)
	}
	return frags
}

// blockFragments joins the block's lines into a single fragment, the way a
// fenced block's text arrives as one child. Lines are sliced from source
// directly: goldmark forces a newline onto the last line of an unclosed fence,
// and that newline is not part of the content.
func blockFragments(n ast.Node, source []byte) []string {
	lines := n.Lines()
	if lines.Len() == 0 {
		return nil
	}
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if seg.Padding > 0 {
			b.WriteString(strings.Repeat(" ", seg.Padding))
		}
		b.Write(source[seg.Start:seg.Stop])
	}
	return []string{b.String()}
}
