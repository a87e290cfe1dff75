package markdown

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		node         CodeNode
		wantVariant  Variant
		wantLanguage string
		wantValue    string
		wantChildren []string
	}{
		{
			name:         "fenced python block",
			node:         CodeNode{ClassName: "language-python", Children: []string{"print(1)\n"}},
			wantVariant:  VariantBlock,
			wantLanguage: "python",
			wantValue:    "print(1)",
			wantChildren: []string{"print(1)\n"},
		},
		{
			name:         "fenced block without language",
			node:         CodeNode{Children: []string{"plain\n"}},
			wantVariant:  VariantBlock,
			wantLanguage: "",
			wantValue:    "plain",
			wantChildren: []string{"plain\n"},
		},
		{
			name:         "only one trailing newline is stripped",
			node:         CodeNode{ClassName: "language-go", Children: []string{"x := 1\n\n"}},
			wantVariant:  VariantBlock,
			wantLanguage: "go",
			wantValue:    "x := 1\n",
			wantChildren: []string{"x := 1\n\n"},
		},
		{
			name:         "block fragments are concatenated",
			node:         CodeNode{ClassName: "language-js", Children: []string{"a();\n", "b();\n"}},
			wantVariant:  VariantBlock,
			wantLanguage: "js",
			wantValue:    "a();\nb();",
			wantChildren: []string{"a();\n", "b();\n"},
		},
		{
			name:         "inline code passes through",
			node:         CodeNode{Inline: true, Children: []string{"fmt.Println"}},
			wantVariant:  VariantInline,
			wantChildren: []string{"fmt.Println"},
		},
		{
			name:        "sole cursor child is the placeholder",
			node:        CodeNode{Inline: true, Children: []string{CursorGlyph}},
			wantVariant: VariantCursor,
		},
		{
			name:        "cursor in a block is the placeholder",
			node:        CodeNode{ClassName: "language-python", Children: []string{CursorGlyph}},
			wantVariant: VariantCursor,
		},
		{
			name:         "quoted cursor is unwrapped",
			node:         CodeNode{Inline: true, Children: []string{"`▍` more text"}},
			wantVariant:  VariantInline,
			wantChildren: []string{"▍ more text"},
		},
		{
			name:         "quoted cursor in a block is unwrapped",
			node:         CodeNode{Children: []string{"x = 1`▍`\n"}},
			wantVariant:  VariantBlock,
			wantValue:    "x = 1▍",
			wantChildren: []string{"x = 1▍\n"},
		},
		{
			name:         "only the first quoted cursor is unwrapped",
			node:         CodeNode{Inline: true, Children: []string{"`▍` and `▍`"}},
			wantVariant:  VariantInline,
			wantChildren: []string{"▍ and `▍`"},
		},
		{
			name:         "later fragments are not inspected",
			node:         CodeNode{Inline: true, Children: []string{"a", "`▍`"}},
			wantVariant:  VariantInline,
			wantChildren: []string{"a", "`▍`"},
		},
		{
			name:         "cursor glyph with trailing text is not the placeholder",
			node:         CodeNode{Inline: true, Children: []string{"▍x"}},
			wantVariant:  VariantInline,
			wantChildren: []string{"▍x"},
		},
		{
			name:        "empty inline node",
			node:        CodeNode{Inline: true},
			wantVariant: VariantInline,
		},
		{
			name:         "empty block node",
			node:         CodeNode{ClassName: "language-go"},
			wantVariant:  VariantBlock,
			wantLanguage: "go",
			wantValue:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.node)
			if got.Variant != tt.wantVariant {
				t.Fatalf("Variant = %v, want %v", got.Variant, tt.wantVariant)
			}
			if got.Language != tt.wantLanguage {
				t.Errorf("Language = %q, want %q", got.Language, tt.wantLanguage)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", got.Value, tt.wantValue)
			}
			if got.Variant != VariantCursor && !reflect.DeepEqual(got.Children, tt.wantChildren) {
				t.Errorf("Children = %q, want %q", got.Children, tt.wantChildren)
			}
			if got.ClassName != tt.node.ClassName {
				t.Errorf("ClassName = %q, want %q", got.ClassName, tt.node.ClassName)
			}
		})
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	children := []string{"`▍` more text", "tail"}
	node := CodeNode{Inline: true, Children: children}

	got := Classify(node)

	if children[0] != "`▍` more text" {
		t.Fatalf("input mutated: %q", children[0])
	}
	if got.Children[0] != "▍ more text" {
		t.Fatalf("Children[0] = %q, want %q", got.Children[0], "▍ more text")
	}
	if &got.Children[0] == &children[0] {
		t.Fatal("expected a new slice when the cursor is rewritten")
	}
}

func TestClassify_Idempotent(t *testing.T) {
	nodes := []CodeNode{
		{ClassName: "language-python", Children: []string{"print(1)\n"}},
		{Inline: true, Children: []string{"`▍` more text"}},
		{Inline: true, Children: []string{CursorGlyph}},
		{Children: []string{"a\n", "b\n"}},
	}
	for _, n := range nodes {
		first := Classify(n)
		second := Classify(n)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Classify(%+v) not idempotent: %+v vs %+v", n, first, second)
		}
	}
}

func TestSubstituteCursor_AlwaysCopies(t *testing.T) {
	in := []string{"no cursor here", "tail"}
	out := SubstituteCursor(in)
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("SubstituteCursor() = %q, want %q", out, in)
	}
	if &out[0] == &in[0] {
		t.Fatal("expected a new slice even when nothing is replaced")
	}
	if SubstituteCursor(nil) != nil {
		t.Fatal("SubstituteCursor(nil) should be nil")
	}
}

func TestClassify_ChildrenNeverShareInput(t *testing.T) {
	children := []string{"fmt.Println"}
	got := Classify(CodeNode{Inline: true, Children: children})
	got.Children[0] = "changed"
	if children[0] != "fmt.Println" {
		t.Fatalf("input mutated through the classification: %q", children[0])
	}
}

func TestLanguageFromClassName(t *testing.T) {
	tests := []struct {
		className string
		want      string
	}{
		{"language-python", "python"},
		{"language-c++", "c"},
		{"hljs language-rust extra", "rust"},
		{"language-", ""},
		{"python", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LanguageFromClassName(tt.className); got != tt.want {
			t.Errorf("LanguageFromClassName(%q) = %q, want %q", tt.className, got, tt.want)
		}
	}
}

func TestIsStreaming(t *testing.T) {
	if !IsStreaming("Hello ▍") {
		t.Error("expected content with a cursor to be streaming")
	}
	if IsStreaming("Hello") {
		t.Error("expected content without a cursor to be settled")
	}
}

func TestVariantString(t *testing.T) {
	if VariantCursor.String() != "cursor" || VariantBlock.String() != "block" || VariantInline.String() != "inline" {
		t.Fatal("unexpected Variant names")
	}
}
