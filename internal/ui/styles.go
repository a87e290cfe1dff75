package ui

import (
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI
type Theme struct {
	// Dark is true when the palette targets a dark terminal background
	Dark bool

	// Primary colors
	Primary   lipgloss.Color // main accent color (links, strong text)
	Secondary lipgloss.Color // secondary accent (headers, borders)

	// Semantic colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color // emphasis, block quotes
	Muted   lipgloss.Color // dimmed/secondary text
	Text    lipgloss.Color // primary text

	// UI element colors
	Spinner lipgloss.Color // streaming cursor
	Border  lipgloss.Color // borders and dividers

	// Message backgrounds
	UserMsgBg lipgloss.Color // background for user messages
	CodeBg    lipgloss.Color // background for inline code
}

// DefaultTheme returns the default color theme (gruvbox)
func DefaultTheme() *Theme {
	return &Theme{
		Dark:      true,
		Primary:   lipgloss.Color("#b8bb26"), // gruvbox green
		Secondary: lipgloss.Color("#83a598"), // gruvbox aqua
		Success:   lipgloss.Color("#b8bb26"), // gruvbox green
		Error:     lipgloss.Color("#fb4934"), // gruvbox red
		Warning:   lipgloss.Color("#fabd2f"), // gruvbox yellow
		Muted:     lipgloss.Color("#928374"), // gruvbox gray
		Text:      lipgloss.Color("#ebdbb2"), // gruvbox foreground
		Spinner:   lipgloss.Color("#d3869b"), // gruvbox purple
		Border:    lipgloss.Color("#83a598"), // gruvbox aqua (matches secondary)
		UserMsgBg: lipgloss.Color("#3c3836"), // gruvbox dark gray (subtle bg)
		CodeBg:    lipgloss.Color("#32302f"),
	}
}

// LightTheme returns the default palette for light backgrounds (gruvbox light)
func LightTheme() *Theme {
	return &Theme{
		Dark:      false,
		Primary:   lipgloss.Color("#79740e"),
		Secondary: lipgloss.Color("#076678"),
		Success:   lipgloss.Color("#79740e"),
		Error:     lipgloss.Color("#9d0006"),
		Warning:   lipgloss.Color("#b57614"),
		Muted:     lipgloss.Color("#7c6f64"),
		Text:      lipgloss.Color("#3c3836"),
		Spinner:   lipgloss.Color("#8f3f71"),
		Border:    lipgloss.Color("#076678"),
		UserMsgBg: lipgloss.Color("#ebdbb2"),
		CodeBg:    lipgloss.Color("#f2e5bc"),
	}
}

// ThemeConfig mirrors config.ThemeConfig for applying overrides
type ThemeConfig struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Muted     string
	Text      string
	Spinner   string
	UserMsgBg string
}

// ThemeFromConfig creates a dark theme with config overrides applied
func ThemeFromConfig(cfg ThemeConfig) *Theme {
	return ThemeFor(true, cfg)
}

// ThemeFor applies config overrides on top of the dark or light base palette.
// Color overrides only apply to the dark palette; light mode keeps its own
// contrast-safe colors apart from the user message background.
func ThemeFor(dark bool, cfg ThemeConfig) *Theme {
	if !dark {
		theme := LightTheme()
		if cfg.UserMsgBg != "" {
			theme.UserMsgBg = lipgloss.Color(cfg.UserMsgBg)
		}
		return theme
	}

	theme := DefaultTheme()
	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Secondary != "" {
		theme.Secondary = lipgloss.Color(cfg.Secondary)
		theme.Border = lipgloss.Color(cfg.Secondary) // border follows secondary
	}
	if cfg.Success != "" {
		theme.Success = lipgloss.Color(cfg.Success)
	}
	if cfg.Error != "" {
		theme.Error = lipgloss.Color(cfg.Error)
	}
	if cfg.Warning != "" {
		theme.Warning = lipgloss.Color(cfg.Warning)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Text != "" {
		theme.Text = lipgloss.Color(cfg.Text)
	}
	if cfg.Spinner != "" {
		theme.Spinner = lipgloss.Color(cfg.Spinner)
	}
	if cfg.UserMsgBg != "" {
		theme.UserMsgBg = lipgloss.Color(cfg.UserMsgBg)
	}
	return theme
}

// Status indicators
const (
	SuccessIcon = "✓"
	FailIcon    = "✗"
)

// Styles holds the lipgloss styles used to render a chat message.
type Styles struct {
	theme *Theme

	Text          lipgloss.Style
	Muted         lipgloss.Style
	Heading       lipgloss.Style
	Strong        lipgloss.Style
	Emph          lipgloss.Style
	Strikethrough lipgloss.Style
	Link          lipgloss.Style
	LinkURL       lipgloss.Style
	InlineCode    lipgloss.Style
	Cursor        lipgloss.Style
	BlockQuote    lipgloss.Style
	Rule          lipgloss.Style
	Math          lipgloss.Style
	ListMarker    lipgloss.Style

	UserAvatar      lipgloss.Style
	AssistantAvatar lipgloss.Style
	UserBody        lipgloss.Style
	Actions         lipgloss.Style

	CodeHeader lipgloss.Style
	CodeBorder lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates styles for theme using the default lipgloss renderer.
func NewStyles(theme *Theme) *Styles {
	return NewStylesWithRenderer(lipgloss.DefaultRenderer(), theme)
}

// NewStylesWithRenderer creates styles bound to a specific renderer.
func NewStylesWithRenderer(r *lipgloss.Renderer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Styles{
		theme: theme,

		Text: r.NewStyle().
			Foreground(theme.Text),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Heading: r.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Strong: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Emph: r.NewStyle().
			Italic(true).
			Foreground(theme.Warning),

		Strikethrough: r.NewStyle().
			Strikethrough(true),

		Link: r.NewStyle().
			Foreground(theme.Primary).
			Underline(true),

		LinkURL: r.NewStyle().
			Foreground(theme.Muted),

		InlineCode: r.NewStyle().
			Foreground(theme.Primary).
			Background(theme.CodeBg),

		Cursor: r.NewStyle().
			Foreground(theme.Spinner).
			Blink(true),

		BlockQuote: r.NewStyle().
			Foreground(theme.Warning).
			Italic(true),

		Rule: r.NewStyle().
			Foreground(theme.Muted),

		Math: r.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		ListMarker: r.NewStyle().
			Foreground(theme.Secondary),

		UserAvatar: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		AssistantAvatar: r.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		UserBody: r.NewStyle().
			Background(theme.UserMsgBg),

		Actions: r.NewStyle().
			Foreground(theme.Muted),

		CodeHeader: r.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),

		CodeBorder: r.NewStyle().
			Foreground(theme.Border),

		Success: r.NewStyle().
			Foreground(theme.Success),

		Error: r.NewStyle().
			Foreground(theme.Error),
	}
}

// Theme returns the theme used by these styles
func (s *Styles) Theme() *Theme {
	return s.theme
}

// FormatResult returns a styled success/fail result
func (s *Styles) FormatResult(success bool, msg string) string {
	if success {
		return s.Success.Render(SuccessIcon+" ") + msg
	}
	return s.Error.Render(FailIcon+" ") + msg
}

// GlamourStyleFromTheme creates a glamour StyleConfig from the given theme.
// Only table rendering goes through glamour, so the config is limited to the
// document and table primitives plus the inline styles a table cell can hold.
func GlamourStyleFromTheme(theme *Theme) ansi.StyleConfig {
	primary := string(theme.Primary)
	secondary := string(theme.Secondary)
	warning := string(theme.Warning)
	text := string(theme.Text)

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: &text,
			},
			Margin: uintPtr(0),
		},
		Strikethrough: ansi.StylePrimitive{
			CrossedOut: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Color:  &warning,
			Italic: boolPtr(true),
		},
		Strong: ansi.StylePrimitive{
			Bold:  boolPtr(true),
			Color: &primary,
		},
		Link: ansi.StylePrimitive{
			Color:     &secondary,
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: &primary,
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: &primary,
			},
		},
		Table: ansi.StyleTable{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{},
			},
			CenterSeparator: stringPtr("┼"),
			ColumnSeparator: stringPtr("│"),
			RowSeparator:    stringPtr("─"),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func uintPtr(u uint) *uint {
	return &u
}

func stringPtr(s string) *string {
	return &s
}
