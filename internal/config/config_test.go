package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "term-chat", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Appearance != AppearanceAuto {
		t.Errorf("Appearance = %q, want auto", cfg.Appearance)
	}
	if cfg.Theme.Preset != "gruvbox" {
		t.Errorf("Theme.Preset = %q, want gruvbox", cfg.Theme.Preset)
	}
	if cfg.Code.StyleLight != "github" || cfg.Code.StyleDark != "" {
		t.Errorf("Code = %+v", cfg.Code)
	}
	if !cfg.Actions.Enabled {
		t.Error("Actions.Enabled = false, want true")
	}
	if cfg.Width != 0 {
		t.Errorf("Width = %d, want 0", cfg.Width)
	}
}

func TestLoad_FromXDGConfig(t *testing.T) {
	writeConfig(t, `
appearance: Light
width: 100
theme:
  preset: nord
  primary: "#ff0000"
code:
  style_dark: dracula
  line_numbers: true
icons:
  user: ">"
actions:
  enabled: false
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Appearance != AppearanceLight {
		t.Errorf("Appearance = %q, want light", cfg.Appearance)
	}
	if cfg.Width != 100 {
		t.Errorf("Width = %d, want 100", cfg.Width)
	}
	if cfg.Theme.Preset != "nord" || cfg.Theme.Primary != "#ff0000" {
		t.Errorf("Theme = %+v", cfg.Theme)
	}
	if cfg.Code.StyleDark != "dracula" || cfg.Code.StyleLight != "github" || !cfg.Code.LineNumbers {
		t.Errorf("Code = %+v", cfg.Code)
	}
	if cfg.Icons.User != ">" || cfg.Icons.Assistant != "" {
		t.Errorf("Icons = %+v", cfg.Icons)
	}
	if cfg.Actions.Enabled {
		t.Error("Actions.Enabled = true, want false")
	}
	if cfg.Dark() {
		t.Error("Dark() = true for light appearance")
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("appearance: dark\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", path, err)
	}
	if !cfg.Dark() {
		t.Error("Dark() = false for dark appearance")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad appearance", "appearance: sepia\n", "invalid appearance"},
		{"negative width", "width: -1\n", "invalid width"},
		{"malformed yaml", "theme: [unclosed\n", "failed to read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.content)
			_, err := Load("")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ExpandsThemeEnv(t *testing.T) {
	t.Setenv("CHAT_ACCENT", "#123456")
	writeConfig(t, "theme:\n  primary: ${CHAT_ACCENT}\n  muted: $CHAT_ACCENT\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme.Primary != "#123456" || cfg.Theme.Muted != "#123456" {
		t.Errorf("Theme = %+v", cfg.Theme)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := &Config{Appearance: AppearanceAuto, Width: 90}

	cfg.ApplyOverrides(AppearanceLight, 0)
	if cfg.Appearance != AppearanceLight {
		t.Fatalf("appearance=%q, want %q", cfg.Appearance, AppearanceLight)
	}
	if cfg.Width != 90 {
		t.Fatalf("width changed unexpectedly: %d", cfg.Width)
	}

	cfg.ApplyOverrides("", 120)
	if cfg.Appearance != AppearanceLight {
		t.Fatalf("appearance changed unexpectedly: %q", cfg.Appearance)
	}
	if cfg.Width != 120 {
		t.Fatalf("width=%d, want 120", cfg.Width)
	}
}

func TestCodeStyle(t *testing.T) {
	cfg := &Config{Code: CodeConfig{StyleDark: "monokai", StyleLight: "github"}}
	if got := cfg.CodeStyle(true); got != "monokai" {
		t.Errorf("CodeStyle(dark) = %q", got)
	}
	if got := cfg.CodeStyle(false); got != "github" {
		t.Errorf("CodeStyle(light) = %q", got)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TERM_CHAT_TEST", "value")
	tests := []struct {
		in   string
		want string
	}{
		{"${TERM_CHAT_TEST}", "value"},
		{"$TERM_CHAT_TEST", "value"},
		{"#ffffff", "#ffffff"},
		{"", ""},
		{"$TERM_CHAT_UNSET_VAR", ""},
	}
	for _, tt := range tests {
		if got := expandEnv(tt.in); got != tt.want {
			t.Errorf("expandEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &Config{
		Appearance: AppearanceDark,
		Width:      72,
		Theme:      ThemeConfig{Preset: "dracula"},
		Code:       CodeConfig{StyleLight: "github", LineNumbers: true},
		Actions:    ActionsConfig{Enabled: false},
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out.Appearance != AppearanceDark || out.Width != 72 || out.Theme.Preset != "dracula" {
		t.Errorf("loaded %+v", out)
	}
	if !out.Code.LineNumbers || out.Actions.Enabled {
		t.Errorf("loaded code=%+v actions=%+v", out.Code, out.Actions)
	}
}

func TestGetConfigPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "term-chat", "config.yaml"); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
	if Exists() {
		t.Error("Exists() = true before a config was written")
	}
}
