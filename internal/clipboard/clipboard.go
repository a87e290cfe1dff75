package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// CopyText copies text to the system clipboard. When no clipboard utility is
// available (headless or over SSH) it falls back to an OSC 52 escape written
// to stderr, which most terminals forward to the local clipboard.
func CopyText(text string) error {
	return copyText(text, os.Stderr)
}

func copyText(text string, fallback io.Writer) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	return writeOSC52(text, fallback)
}

// writeOSC52 writes text to w as an OSC 52 clipboard sequence.
func writeOSC52(text string, w io.Writer) error {
	if _, err := osc52.New(text).WriteTo(w); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
