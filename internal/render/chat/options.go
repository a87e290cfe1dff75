package chat

import (
	"github.com/samsaffron/term-chat/internal/markdown"
	"github.com/samsaffron/term-chat/internal/session"
	"github.com/samsaffron/term-chat/internal/ui"
)

// Icons are the avatar glyphs drawn next to each message.
type Icons struct {
	User      string
	Assistant string
}

// DefaultIcons returns the built-in avatars.
func DefaultIcons() Icons {
	return Icons{User: "❯", Assistant: "◆"}
}

// ActionRenderer draws the controls shown under a message. It receives the
// message exactly as it was passed to the renderer.
type ActionRenderer func(msg session.Message) string

// Option configures a MessageBlockRenderer.
type Option func(*options)

type options struct {
	width        int
	theme        *ui.Theme
	themeConfig  ui.ThemeConfig
	dark         bool
	icons        Icons
	actions      ActionRenderer
	codeRenderer ui.CodeBlockRenderer
	codeDark     string
	codeLight    string
	lineNumbers  bool
	parser       markdown.Parser
}

func defaultOptions() options {
	return options{
		width:   80,
		dark:    true,
		icons:   DefaultIcons(),
		actions: DefaultActions,
	}
}

// WithWidth sets the total render width in cells.
func WithWidth(width int) Option {
	return func(o *options) {
		o.width = width
	}
}

// WithTheme sets an explicit palette. It takes precedence over WithDarkMode.
func WithTheme(theme *ui.Theme) Option {
	return func(o *options) {
		o.theme = theme
	}
}

// WithThemeConfig sets color overrides applied on top of the dark or light
// base palette. Ignored when WithTheme is given.
func WithThemeConfig(cfg ui.ThemeConfig) Option {
	return func(o *options) {
		o.themeConfig = cfg
	}
}

// WithDarkMode picks the default dark or light palette when no explicit
// theme is given, and the matching default code style.
func WithDarkMode(dark bool) Option {
	return func(o *options) {
		o.dark = dark
	}
}

// WithIcons overrides the avatars. Empty fields keep the defaults.
func WithIcons(icons Icons) Option {
	return func(o *options) {
		if icons.User != "" {
			o.icons.User = icons.User
		}
		if icons.Assistant != "" {
			o.icons.Assistant = icons.Assistant
		}
	}
}

// WithActions sets the action controls renderer. nil hides actions.
func WithActions(actions ActionRenderer) Option {
	return func(o *options) {
		o.actions = actions
	}
}

// WithCodeRenderer replaces the chroma code block renderer.
func WithCodeRenderer(r ui.CodeBlockRenderer) Option {
	return func(o *options) {
		o.codeRenderer = r
	}
}

// WithCodeStyle sets the chroma style used by the default code renderer on
// both backgrounds.
func WithCodeStyle(name string) Option {
	return WithCodeStyles(name, name)
}

// WithCodeStyles sets separate chroma styles for dark and light backgrounds.
// An empty name keeps the built-in default for that background.
func WithCodeStyles(dark, light string) Option {
	return func(o *options) {
		o.codeDark = dark
		o.codeLight = light
	}
}

// WithLineNumbers numbers the lines of code blocks.
func WithLineNumbers(on bool) Option {
	return func(o *options) {
		o.lineNumbers = on
	}
}

// WithParser replaces the markdown parser.
func WithParser(p markdown.Parser) Option {
	return func(o *options) {
		o.parser = p
	}
}
