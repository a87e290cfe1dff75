package cmd

import (
	"fmt"
	"os"

	"github.com/samsaffron/term-chat/internal/config"
	"github.com/samsaffron/term-chat/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage term-chat configuration",
	Long: `View or edit your term-chat configuration.

Examples:
  term-chat config                     # show current config
  term-chat config path                # print the config file path
  term-chat config init                # interactive setup
  term-chat config theme               # pick a color theme`,
	RunE: configShow, // Default to show
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	RunE:  configPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file interactively",
	Long:  `Walk through the basic settings and write a fresh config file. An existing file is overwritten.`,
	RunE:  configInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

// activeConfigPath returns --config when set, else the default location.
func activeConfigPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigPath()
}

func configShow(cmd *cobra.Command, args []string) error {
	path, err := activeConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		fmt.Fprintf(out, "# No config file (using defaults)\n")
		fmt.Fprintf(out, "# Create one with: term-chat config init\n\n")
	} else {
		fmt.Fprintf(out, "# %s\n\n", path)
	}

	dark := cfg.Dark()
	resolved := "light"
	if dark {
		resolved = "dark"
	}
	fmt.Fprintf(out, "appearance: %s (%s)\n", cfg.Appearance, resolved)
	if cfg.Width > 0 {
		fmt.Fprintf(out, "width: %d\n", cfg.Width)
	} else {
		fmt.Fprintf(out, "width: 0 (terminal: %d)\n", renderWidth(cfg))
	}

	fmt.Fprintf(out, "\ntheme:\n")
	fmt.Fprintf(out, "  preset: %s\n", valueOr(cfg.Theme.Preset, "[none]"))
	tc := themeConfig(cfg.Theme)
	for _, c := range []struct{ name, value string }{
		{"primary", tc.Primary},
		{"secondary", tc.Secondary},
		{"success", tc.Success},
		{"error", tc.Error},
		{"warning", tc.Warning},
		{"muted", tc.Muted},
		{"text", tc.Text},
		{"spinner", tc.Spinner},
		{"user_msg_bg", tc.UserMsgBg},
	} {
		fmt.Fprintf(out, "  %s: %s\n", c.name, valueOr(c.value, "[default]"))
	}

	codeDark := cfg.Code.StyleDark
	if codeDark == "" {
		codeDark = valueOr(ui.CodeStyleFor(cfg.Theme.Preset), ui.DefaultDarkCodeStyle)
	}
	fmt.Fprintf(out, "\ncode:\n")
	fmt.Fprintf(out, "  style_dark: %s\n", codeDark)
	fmt.Fprintf(out, "  style_light: %s\n", valueOr(cfg.Code.StyleLight, ui.DefaultLightCodeStyle))
	fmt.Fprintf(out, "  line_numbers: %t\n", cfg.Code.LineNumbers)

	fmt.Fprintf(out, "\nicons:\n")
	fmt.Fprintf(out, "  user: %s\n", valueOr(cfg.Icons.User, "[default]"))
	fmt.Fprintf(out, "  assistant: %s\n", valueOr(cfg.Icons.Assistant, "[default]"))

	fmt.Fprintf(out, "\nactions:\n")
	fmt.Fprintf(out, "  enabled: %t\n", cfg.Actions.Enabled)

	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func configPath(cmd *cobra.Command, args []string) error {
	path, err := activeConfigPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func configInit(cmd *cobra.Command, args []string) error {
	current, err := config.Load(configFile)
	if err != nil && configFile == "" {
		return err
	}
	if current == nil {
		// --config pointing at a file that does not exist yet
		current, err = config.Load("")
		if err != nil {
			return err
		}
	}

	cfg, err := ui.RunSetupWizard(current, configFile)
	if err != nil {
		return err
	}

	path, _ := activeConfigPath()
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s (theme %s, appearance %s)\n", path, cfg.Theme.Preset, cfg.Appearance)
	return nil
}
