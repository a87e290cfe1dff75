package chat

import (
	"strings"

	"github.com/samsaffron/term-chat/internal/session"
)

// Renderer renders whole transcripts, reusing blocks for messages whose
// content has not changed since the last frame.
type Renderer struct {
	width int
	dark  bool
	opts  []Option

	blockCache *BlockCache
	blocks     *MessageBlockRenderer
}

// NewRenderer creates a transcript renderer. opts are applied to every
// message; width and dark mode are managed by the renderer itself.
func NewRenderer(width int, dark bool, opts ...Option) *Renderer {
	r := &Renderer{
		width:      width,
		dark:       dark,
		opts:       opts,
		blockCache: NewBlockCache(200),
	}
	r.rebuild()
	return r
}

func (r *Renderer) rebuild() {
	opts := append([]Option{}, r.opts...)
	opts = append(opts, WithWidth(r.width), WithDarkMode(r.dark))
	r.blocks = NewMessageBlockRenderer(opts...)
}

// Width returns the current render width.
func (r *Renderer) Width() int {
	return r.width
}

// Dark reports whether the dark palette is active.
func (r *Renderer) Dark() bool {
	return r.dark
}

// SetSize updates the width and invalidates width-dependent caches.
func (r *Renderer) SetSize(width int) {
	if width == r.width {
		return
	}
	r.width = width
	r.blockCache.InvalidateAll()
	r.rebuild()
}

// SetDark switches palettes.
func (r *Renderer) SetDark(dark bool) {
	if dark == r.dark {
		return
	}
	r.dark = dark
	r.blockCache.InvalidateAll()
	r.rebuild()
}

// Block returns the rendered block for the message at index.
func (r *Renderer) Block(index int, msg session.Message) *MessageBlock {
	key := BlockKey(index, msg, r.width, r.dark)
	if block := r.blockCache.Get(key); block != nil {
		return block
	}
	block := r.blocks.Render(msg)
	r.blockCache.Put(key, block)
	return block
}

// Render renders every message in order.
func (r *Renderer) Render(messages []session.Message) string {
	var b strings.Builder
	for i, msg := range messages {
		b.WriteString(r.Block(i, msg).Rendered)
	}
	return b.String()
}

// RenderTranscript renders a transcript with its title as a header line.
func (r *Renderer) RenderTranscript(t *session.Transcript) string {
	if t == nil || len(t.Messages) == 0 {
		return RenderEmptyHistory(r.blocks.styles)
	}
	if t.Title == "" {
		return r.Render(t.Messages)
	}
	return r.blocks.styles.Heading.Render(t.Title) + "\n\n" + r.Render(t.Messages)
}

// LastCodeBlock returns the value of the final code block in messages, if any.
func (r *Renderer) LastCodeBlock(messages []session.Message) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		blocks := r.Block(i, messages[i]).CodeBlocks
		if len(blocks) > 0 {
			return blocks[len(blocks)-1].Value, true
		}
	}
	return "", false
}
