package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/viper"
)

// Appearance values
const (
	AppearanceAuto  = "auto"
	AppearanceDark  = "dark"
	AppearanceLight = "light"
)

type Config struct {
	Appearance string        `mapstructure:"appearance"` // auto, dark or light
	Width      int           `mapstructure:"width"`      // 0 = terminal width
	Theme      ThemeConfig   `mapstructure:"theme"`
	Code       CodeConfig    `mapstructure:"code"`
	Icons      IconsConfig   `mapstructure:"icons"`
	Actions    ActionsConfig `mapstructure:"actions"`
}

// ThemeConfig allows customization of UI colors
// Colors can be ANSI color numbers (0-255) or hex codes (#RRGGBB)
type ThemeConfig struct {
	Preset    string `mapstructure:"preset"`      // name of the preset the colors came from
	Primary   string `mapstructure:"primary"`     // main accent (links, strong text)
	Secondary string `mapstructure:"secondary"`   // secondary accent (headers, borders)
	Success   string `mapstructure:"success"`     // success states
	Error     string `mapstructure:"error"`       // error states
	Warning   string `mapstructure:"warning"`     // emphasis, quotes
	Muted     string `mapstructure:"muted"`       // dimmed text
	Text      string `mapstructure:"text"`        // primary text
	Spinner   string `mapstructure:"spinner"`     // streaming cursor
	UserMsgBg string `mapstructure:"user_msg_bg"` // user message background
}

// CodeConfig configures code block rendering
type CodeConfig struct {
	StyleDark   string `mapstructure:"style_dark"`   // chroma style on dark backgrounds
	StyleLight  string `mapstructure:"style_light"`  // chroma style on light backgrounds
	LineNumbers bool   `mapstructure:"line_numbers"` // prefix code lines with numbers
}

// IconsConfig overrides the avatar glyphs
type IconsConfig struct {
	User      string `mapstructure:"user"`
	Assistant string `mapstructure:"assistant"`
}

// ActionsConfig configures the controls under each message
type ActionsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads the config from the default location, or from path when set.
// A missing config file in the default location is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		configPath, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config dir: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configPath)
		v.AddConfigPath(".")
	}

	setDefaults(v)

	// Read config file (optional - won't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	resolveTheme(&cfg.Theme)
	cfg.Appearance = strings.ToLower(strings.TrimSpace(cfg.Appearance))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("appearance", AppearanceAuto)
	v.SetDefault("width", 0)
	v.SetDefault("theme.preset", "gruvbox")
	v.SetDefault("code.style_light", "github")
	v.SetDefault("code.line_numbers", false)
	v.SetDefault("actions.enabled", true)
	// code.style_dark defaults to empty, inheriting from the theme preset
	// icons default to empty, inheriting the renderer's built-in avatars
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Appearance {
	case AppearanceAuto, AppearanceDark, AppearanceLight:
	default:
		return fmt.Errorf("invalid appearance %q: want auto, dark or light", c.Appearance)
	}
	if c.Width < 0 {
		return fmt.Errorf("invalid width %d: must not be negative", c.Width)
	}
	return nil
}

// Dark resolves the appearance to a palette choice, asking the terminal when
// the appearance is auto.
func (c *Config) Dark() bool {
	switch c.Appearance {
	case AppearanceDark:
		return true
	case AppearanceLight:
		return false
	default:
		return termenv.HasDarkBackground()
	}
}

// CodeStyle returns the configured chroma style for the background, or "".
func (c *Config) CodeStyle(dark bool) string {
	if dark {
		return c.Code.StyleDark
	}
	return c.Code.StyleLight
}

// ApplyOverrides applies command-line overrides to the config.
func (c *Config) ApplyOverrides(appearance string, width int) {
	if appearance != "" {
		c.Appearance = appearance
	}
	if width > 0 {
		c.Width = width
	}
}

// resolveTheme expands environment references in color values
func resolveTheme(t *ThemeConfig) {
	for _, p := range []*string{
		&t.Primary, &t.Secondary, &t.Success, &t.Error, &t.Warning,
		&t.Muted, &t.Text, &t.Spinner, &t.UserMsgBg,
	} {
		*p = expandEnv(*p)
	}
}

// expandEnv expands ${VAR} or $VAR in a string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}

// GetConfigDir returns the XDG config directory for term-chat.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "term-chat"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "term-chat"), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Exists returns true if a config file exists
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Save writes the config to path, or to the default location when empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return err
		}
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := fmt.Sprintf(`# auto, dark or light
appearance: %s

# 0 uses the terminal width
width: %d

theme:
  preset: %s
  # Individual colors override the preset, e.g.
  # primary: "#b8bb26"

code:
  # Chroma style names, see https://xyproto.github.io/splash/docs/
  # style_dark: monokai
  style_light: %s
  line_numbers: %t

icons:
  # user: "❯"
  # assistant: "◆"

actions:
  enabled: %t
`, cfg.Appearance, cfg.Width, cfg.Theme.Preset, cfg.Code.StyleLight, cfg.Code.LineNumbers, cfg.Actions.Enabled)

	return os.WriteFile(path, []byte(content), 0600)
}
