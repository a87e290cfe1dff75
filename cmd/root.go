package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/samsaffron/term-chat/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	debug      bool
	widthFlag  int
	themeFlag  string
	lightFlag  bool
	darkFlag   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/term-chat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().IntVarP(&widthFlag, "width", "w", 0, "Render width in cells (default: terminal width)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Theme preset to use instead of the configured colors")
	rootCmd.PersistentFlags().BoolVar(&lightFlag, "light", false, "Use the light palette")
	rootCmd.PersistentFlags().BoolVar(&darkFlag, "dark", false, "Use the dark palette")
}

var rootCmd = &cobra.Command{
	Use:   "term-chat",
	Short: "Render chat messages in the terminal",
	Long: `term-chat renders conversational messages (markdown with fenced code
blocks, possibly still streaming) as styled terminal output.

Examples:
  echo 'Try ` + "`go test`" + `' | term-chat render
  term-chat render reply.md --role assistant
  term-chat transcript 'chats/**/*.yaml'
  term-chat view chat.yaml

  term-chat config                       # view configuration
  term-chat config theme nord            # pick a theme preset`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	SilenceUsage:      true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies the global flags on top.
func loadConfig() (*config.Config, error) {
	if lightFlag && darkFlag {
		return nil, fmt.Errorf("--light and --dark are mutually exclusive")
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	appearance := ""
	switch {
	case lightFlag:
		appearance = config.AppearanceLight
	case darkFlag:
		appearance = config.AppearanceDark
	}
	cfg.ApplyOverrides(appearance, widthFlag)

	if themeFlag != "" {
		// An explicit preset replaces any hand-picked colors
		cfg.Theme = config.ThemeConfig{Preset: themeFlag, UserMsgBg: cfg.Theme.UserMsgBg}
	}

	slog.Debug("config loaded", "appearance", cfg.Appearance, "width", cfg.Width, "preset", cfg.Theme.Preset)
	return cfg, nil
}
