package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteOSC52(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{name: "single line", in: "go test ./..."},
		{name: "multi line code", in: "func main() {\n\tprintln(1)\n}"},
		{name: "unicode", in: "cursor ▍"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := writeOSC52(tc.in, &buf); err != nil {
				t.Fatalf("writeOSC52() error = %v", err)
			}
			out := buf.String()
			if !strings.HasPrefix(out, "\x1b]52;") {
				t.Fatalf("missing OSC 52 prefix: %q", out)
			}
			if want := base64.StdEncoding.EncodeToString([]byte(tc.in)); !strings.Contains(out, want) {
				t.Fatalf("payload %q not found in %q", want, out)
			}
		})
	}
}

func TestWriteOSC52_WriterError(t *testing.T) {
	t.Parallel()
	err := writeOSC52("x", failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "copy to clipboard") {
		t.Fatalf("writeOSC52() error = %v, want wrapped write error", err)
	}
}
