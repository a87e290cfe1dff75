package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/samsaffron/term-chat/internal/config"
)

// getTTY opens /dev/tty for direct terminal access (bypasses redirections)
func getTTY() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// SetupAnswers holds the choices made in the setup wizard.
type SetupAnswers struct {
	Appearance  string
	Preset      string
	LineNumbers bool
	Actions     bool
}

// setupForm builds the wizard form bound to a.
func setupForm(a *SetupAnswers) *huh.Form {
	presets := make([]huh.Option[string], 0, len(PresetThemeNames))
	for _, name := range PresetThemeNames {
		preset := PresetThemes[name]
		presets = append(presets, huh.NewOption(name+" - "+preset.Description, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Terminal background").
				Options(
					huh.NewOption("Detect automatically", config.AppearanceAuto),
					huh.NewOption("Dark", config.AppearanceDark),
					huh.NewOption("Light", config.AppearanceLight),
				).
				Value(&a.Appearance),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(presets...).
				Value(&a.Preset),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Number lines in code blocks?").
				Value(&a.LineNumbers),
			huh.NewConfirm().
				Title("Show copy/regenerate hints under messages?").
				Value(&a.Actions),
		),
	)
}

// Apply copies the answers onto cfg.
func (a SetupAnswers) Apply(cfg *config.Config) {
	cfg.Appearance = a.Appearance
	cfg.Theme.Preset = a.Preset
	cfg.Code.LineNumbers = a.LineNumbers
	cfg.Actions.Enabled = a.Actions
}

// RunSetupWizard asks for the basic settings, writes them to path (or the
// default location) and returns the reloaded config.
func RunSetupWizard(current *config.Config, path string) (*config.Config, error) {
	answers := SetupAnswers{
		Appearance:  current.Appearance,
		Preset:      current.Theme.Preset,
		LineNumbers: current.Code.LineNumbers,
		Actions:     current.Actions.Enabled,
	}

	form := setupForm(&answers)

	// Use /dev/tty directly to bypass shell redirections
	if tty, err := getTTY(); err == nil {
		defer tty.Close()
		fmt.Fprintln(tty, "Let's set up term-chat.")
		fmt.Fprintln(tty)
		form = form.WithInput(tty).WithOutput(tty)
	}

	if err := form.Run(); err != nil {
		return nil, err
	}

	cfg := *current
	answers.Apply(&cfg)

	if err := config.Save(&cfg, path); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return config.Load(path)
}
