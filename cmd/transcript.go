package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/samsaffron/term-chat/internal/render/chat"
	"github.com/samsaffron/term-chat/internal/session"
	"github.com/spf13/cobra"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript <glob>...",
	Short: "Render every message of one or more transcripts",
	Long: `Render transcript files (YAML or JSON) in order. Arguments are glob
patterns and may use ** to match across directories.

Examples:
  term-chat transcript chat.yaml
  term-chat transcript 'logs/**/*.json'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranscript,
}

func init() {
	rootCmd.AddCommand(transcriptCmd)
}

func runTranscript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	paths, err := expandGlobs(args)
	if err != nil {
		return err
	}

	width := renderWidth(cfg)
	r := chat.NewRenderer(width, cfg.Dark(), chatOptions(cfg)...)
	rule := lipgloss.NewStyle().Faint(true).Render(strings.Repeat("─", min(width, 60)))

	out := cmd.OutOrStdout()
	for i, path := range paths {
		t, err := session.LoadTranscript(path)
		if err != nil {
			return err
		}
		slog.Debug("rendering transcript", "path", path, "messages", len(t.Messages))
		if i > 0 {
			fmt.Fprintln(out, rule)
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, r.RenderTranscript(t))
	}
	return nil
}

// expandGlobs expands each pattern, keeping argument order and dropping
// duplicates. A pattern that matches nothing is an error.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no transcripts match %q", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}
