package markdown

import (
	"regexp"
	"strings"
)

const (
	// CursorGlyph is appended by a streaming producer while more text is pending.
	CursorGlyph = "▍"

	// QuotedCursor is the cursor glyph as it appears when the parser failed to
	// treat the backticks around it as code span syntax.
	QuotedCursor = "`" + CursorGlyph + "`"
)

// Variant is the rendering decision for a code-like node.
type Variant int

const (
	VariantInline Variant = iota // plain inline code
	VariantBlock                 // highlighted code block
	VariantCursor                // pulsing cursor placeholder
)

func (v Variant) String() string {
	switch v {
	case VariantInline:
		return "inline"
	case VariantBlock:
		return "block"
	case VariantCursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// CodeNode is the parser-independent shape of an inline code span or a code block.
type CodeNode struct {
	Inline    bool
	ClassName string
	Children  []string
}

// Text joins all child fragments.
func (n CodeNode) Text() string {
	return strings.Join(n.Children, "")
}

// Classification is the outcome of classifying a single CodeNode.
//
// For VariantInline, ClassName and Children are the (possibly cursor-rewritten)
// input. For VariantBlock, Language and Value are what the code block renderer
// receives.
type Classification struct {
	Variant   Variant
	ClassName string
	Children  []string
	Language  string
	Value     string
}

var languagePattern = regexp.MustCompile(`language-(\w+)`)

// Classify decides how a code node renders. It never modifies node.
func Classify(node CodeNode) Classification {
	if len(node.Children) > 0 && node.Children[0] == CursorGlyph {
		return Classification{Variant: VariantCursor, ClassName: node.ClassName}
	}

	children := SubstituteCursor(node.Children)

	if node.Inline {
		return Classification{
			Variant:   VariantInline,
			ClassName: node.ClassName,
			Children:  children,
		}
	}

	return Classification{
		Variant:   VariantBlock,
		ClassName: node.ClassName,
		Children:  children,
		Language:  LanguageFromClassName(node.ClassName),
		Value:     strings.TrimSuffix(strings.Join(children, ""), "\n"),
	}
}

// SubstituteCursor returns a copy of children with the first backtick-quoted
// cursor glyph in the first fragment replaced by the bare glyph. Later
// fragments are not inspected. The input is never shared or modified.
func SubstituteCursor(children []string) []string {
	if len(children) == 0 {
		return nil
	}
	out := make([]string, len(children))
	copy(out, children)
	out[0] = strings.Replace(out[0], QuotedCursor, CursorGlyph, 1)
	return out
}

// LanguageFromClassName extracts the token following "language-", or "".
func LanguageFromClassName(className string) string {
	if m := languagePattern.FindStringSubmatch(className); m != nil {
		return m[1]
	}
	return ""
}

// IsStreaming reports whether content still carries a cursor glyph.
func IsStreaming(content string) bool {
	return strings.Contains(content, CursorGlyph)
}
