package cmd

import (
	"log/slog"
	"os"

	"github.com/samsaffron/term-chat/internal/config"
	"github.com/samsaffron/term-chat/internal/render/chat"
	"github.com/samsaffron/term-chat/internal/ui"
	"golang.org/x/term"
)

const defaultWidth = 80

// chatOptions builds renderer options from the config. Width and dark mode
// are left to the caller.
func chatOptions(cfg *config.Config) []chat.Option {
	codeDark := cfg.Code.StyleDark
	if codeDark == "" {
		codeDark = ui.CodeStyleFor(cfg.Theme.Preset)
	}

	opts := []chat.Option{
		chat.WithThemeConfig(themeConfig(cfg.Theme)),
		chat.WithCodeStyles(codeDark, cfg.Code.StyleLight),
		chat.WithLineNumbers(cfg.Code.LineNumbers),
		chat.WithIcons(chat.Icons{User: cfg.Icons.User, Assistant: cfg.Icons.Assistant}),
	}
	if !cfg.Actions.Enabled {
		opts = append(opts, chat.WithActions(nil))
	}
	return opts
}

// themeConfig resolves the preset and lays the explicit colors over it.
func themeConfig(t config.ThemeConfig) ui.ThemeConfig {
	var tc ui.ThemeConfig
	if t.Preset != "" {
		if preset := ui.GetPresetTheme(t.Preset); preset != nil {
			tc = preset.Config
		} else {
			slog.Warn("unknown theme preset, using defaults", "preset", t.Preset, "suggestions", ui.SuggestPresetThemes(t.Preset))
		}
	}

	overrides := []struct {
		dst *string
		src string
	}{
		{&tc.Primary, t.Primary},
		{&tc.Secondary, t.Secondary},
		{&tc.Success, t.Success},
		{&tc.Error, t.Error},
		{&tc.Warning, t.Warning},
		{&tc.Muted, t.Muted},
		{&tc.Text, t.Text},
		{&tc.Spinner, t.Spinner},
		{&tc.UserMsgBg, t.UserMsgBg},
	}
	for _, o := range overrides {
		if o.src != "" {
			*o.dst = o.src
		}
	}
	return tc
}

// renderWidth returns the configured width, else the terminal width.
func renderWidth(cfg *config.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultWidth
}
