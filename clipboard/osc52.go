package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/truj/midica-sub006/logging"
)

var errOSC52Unsupported = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

func copyOSC52(text string) error {
	if !osc52Supported(os.Getenv("TERM"), os.Stdout) {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errOSC52Unsupported
	}
	if _, err := writeOSC52(os.Stdout, text, os.Getenv("TERM"), os.Getenv("TMUX") != ""); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

// writeOSC52 emits the escape, wrapped for tmux or screen when needed.
func writeOSC52(w io.Writer, text, term string, inTmux bool) (int64, error) {
	seq := osc52.New(text)
	switch {
	case inTmux:
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	return seq.WriteTo(w)
}

func osc52Supported(term string, out *os.File) bool {
	if term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY(out)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
