package clipboard

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteOSC52(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("note on"))

	tests := []struct {
		name       string
		term       string
		tmux       bool
		wantPrefix string
	}{
		{"plain", "xterm-256color", false, "\x1b]52;c;"},
		{"tmux", "screen-256color", true, "\x1bPtmux;"},
		{"screen", "screen", false, "\x1bP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if _, err := writeOSC52(&buf, "note on", tt.term, tt.tmux); err != nil {
				t.Fatalf("writeOSC52() error = %v", err)
			}
			got := buf.String()
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("sequence %q does not start with %q", got, tt.wantPrefix)
			}
			if !strings.Contains(got, encoded) {
				t.Errorf("sequence %q does not contain payload %q", got, encoded)
			}
		})
	}
}

func TestOSC52SupportedNeedsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if osc52Supported("dumb", f) {
		t.Error("TERM=dumb should not support OSC52")
	}
	if osc52Supported("", f) {
		t.Error("empty TERM should not support OSC52")
	}
	if osc52Supported("xterm", f) {
		t.Error("a regular file is not a terminal")
	}
}
