package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samsaffron/term-chat/internal/render/chat"
	"github.com/samsaffron/term-chat/internal/session"
	"github.com/spf13/cobra"
)

var renderRole string

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a single chat message",
	Long: `Render one message read from a file, or from stdin when no file (or "-")
is given. The content may still be streaming: a trailing ▍ is shown as the
typing cursor.

Examples:
  term-chat render answer.md
  printf 'Hello ▍' | term-chat render
  term-chat render question.md --role user`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderRole, "role", "r", "assistant", "Message role (user, assistant, ...)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var content []byte
	if len(args) == 0 || args[0] == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read message: %w", err)
	}

	msg := session.NewMessage(renderRole, string(content))
	slog.Debug("rendering message", "role", msg.Role, "bytes", len(content))

	opts := append(chatOptions(cfg),
		chat.WithWidth(renderWidth(cfg)),
		chat.WithDarkMode(cfg.Dark()),
	)
	fmt.Fprint(cmd.OutOrStdout(), chat.RenderChatMessage(msg, opts...))
	return nil
}
