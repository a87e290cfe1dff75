// Package markdown parses chat message text into a goldmark syntax tree and
// classifies the code-like nodes in it.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Document is a parsed message. Node segments point into Source.
type Document struct {
	Source []byte
	Root   ast.Node
}

// Parser converts message content into a Document.
type Parser interface {
	Parse(content string) *Document
}

// GoldmarkParser parses with GitHub flavoured extensions and $$ math blocks.
type GoldmarkParser struct {
	md goldmark.Markdown
}

// NewParser creates the default parser.
func NewParser() *GoldmarkParser {
	return &GoldmarkParser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, Math),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Parse builds a fresh tree for content. It never fails: goldmark accepts any
// input, including a document cut off mid-stream.
func (p *GoldmarkParser) Parse(content string) *Document {
	src := []byte(content)
	root := p.md.Parser().Parse(text.NewReader(src))
	return &Document{Source: src, Root: root}
}

// CodeNodes returns every code-like node in document order.
func (d *Document) CodeNodes() []CodeNode {
	var nodes []CodeNode
	_ = ast.Walk(d.Root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if cn, ok := FromAST(n, d.Source); ok {
			nodes = append(nodes, cn)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return nodes
}
