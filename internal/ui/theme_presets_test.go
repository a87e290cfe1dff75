package ui

import "testing"

func TestPresetThemesAreComplete(t *testing.T) {
	for _, name := range PresetThemeNames {
		preset := GetPresetTheme(name)
		if preset == nil {
			t.Fatalf("preset %q listed but not defined", name)
		}
		if preset.Name != name {
			t.Errorf("preset %q has Name %q", name, preset.Name)
		}
		if preset.CodeStyle == "" {
			t.Errorf("preset %q has no code style", name)
		}
		if got := MatchPresetTheme(preset.Config); got != name {
			t.Errorf("MatchPresetTheme(%s) = %q", name, got)
		}
	}
	if len(PresetThemes) != len(PresetThemeNames) {
		t.Errorf("%d presets defined, %d listed", len(PresetThemes), len(PresetThemeNames))
	}
}

func TestSuggestPresetThemes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"drac", "dracula"},
		{"grvbx", "gruvbox"},
		{"solar", "solarized"},
		{"mnk", "monokai"},
	}
	for _, tt := range tests {
		got := SuggestPresetThemes(tt.input)
		if len(got) == 0 || got[0] != tt.want {
			t.Errorf("SuggestPresetThemes(%q) = %v, want %q first", tt.input, got, tt.want)
		}
	}
	if got := SuggestPresetThemes("zzz"); len(got) != 0 {
		t.Errorf("SuggestPresetThemes(zzz) = %v, want none", got)
	}
}

func TestCodeStyleFor(t *testing.T) {
	if got := CodeStyleFor("nord"); got != "nord" {
		t.Errorf("CodeStyleFor(nord) = %q", got)
	}
	if got := CodeStyleFor("unknown"); got != "" {
		t.Errorf("CodeStyleFor(unknown) = %q, want empty", got)
	}
}

func TestThemeFor(t *testing.T) {
	cfg := ThemeConfig{Primary: "#ff0000", Secondary: "#00ff00", UserMsgBg: "#111111"}

	dark := ThemeFor(true, cfg)
	if !dark.Dark || dark.Primary != "#ff0000" || dark.Border != "#00ff00" || dark.UserMsgBg != "#111111" {
		t.Errorf("dark overrides not applied: %+v", dark)
	}

	light := ThemeFor(false, cfg)
	if light.Dark {
		t.Error("light theme reports Dark")
	}
	if light.Primary != LightTheme().Primary {
		t.Errorf("light theme took dark override: %v", light.Primary)
	}
	if light.UserMsgBg != "#111111" {
		t.Errorf("light UserMsgBg = %v, want override", light.UserMsgBg)
	}
}
