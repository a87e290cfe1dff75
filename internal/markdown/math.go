package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindMathBlock is the node kind of a $$ delimited display math block.
var KindMathBlock = ast.NewNodeKind("MathBlock")

// MathBlock holds raw math lines. It is passed through, never typeset.
type MathBlock struct {
	ast.BaseBlock
	closed bool
}

// Kind implements ast.Node.
func (n *MathBlock) Kind() ast.NodeKind { return KindMathBlock }

// IsRaw implements ast.Node.
func (n *MathBlock) IsRaw() bool { return true }

// Dump implements ast.Node.
func (n *MathBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// Formula returns the math source without delimiters.
func (n *MathBlock) Formula(source []byte) string {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(source[seg.Start:seg.Stop])
	}
	return string(bytes.TrimRight(b.Bytes(), "\n"))
}

var mathDelim = []byte("$$")

type mathBlockParser struct{}

func (b *mathBlockParser) Trigger() []byte {
	return []byte{'$'}
}

func (b *mathBlockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || !bytes.HasPrefix(line[pos:], mathDelim) {
		return nil, parser.NoChildren
	}
	node := &MathBlock{}
	rest := bytes.TrimSpace(line[pos+len(mathDelim):])
	if len(rest) > 0 {
		// $$ x^2 $$ on a single line
		start := segment.Start + pos + len(mathDelim)
		stop := segment.Stop
		if bytes.HasSuffix(rest, mathDelim) {
			node.closed = true
			stop = start + bytes.LastIndex(line[pos+len(mathDelim):], mathDelim)
		}
		node.Lines().Append(text.NewSegment(start, stop))
	}
	advanceLine(reader, line, segment)
	return node, parser.NoChildren
}

func (b *mathBlockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	mb := node.(*MathBlock)
	if mb.closed {
		return parser.Close
	}
	line, segment := reader.PeekLine()
	if line == nil {
		return parser.Close
	}
	if trimmed := util.TrimRightSpace(util.TrimLeftSpace(line)); bytes.HasSuffix(trimmed, mathDelim) {
		if len(trimmed) > len(mathDelim) {
			end := segment.Start + bytes.LastIndex(line, mathDelim)
			mb.Lines().Append(text.NewSegment(segment.Start, end))
		}
		advanceLine(reader, line, segment)
		return parser.Close
	}
	mb.Lines().Append(segment)
	advanceLine(reader, line, segment)
	return parser.Continue | parser.NoChildren
}

// advanceLine consumes the current line up to its newline. The last line of
// the input may have none, in which case all of it is consumed.
func advanceLine(reader text.Reader, line []byte, segment text.Segment) {
	n := segment.Len()
	if len(line) > 0 && line[len(line)-1] == '\n' {
		n--
	}
	reader.Advance(n)
}

func (b *mathBlockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (b *mathBlockParser) CanInterruptParagraph() bool { return true }

func (b *mathBlockParser) CanAcceptIndentedLine() bool { return false }

type mathExtension struct{}

// Math adds $$ display math blocks as a pass-through block type.
var Math goldmark.Extender = &mathExtension{}

func (e *mathExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(&mathBlockParser{}, 650),
	))
}
