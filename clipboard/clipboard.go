// Package clipboard copies text to the system clipboard, falling back to
// the terminal's OSC 52 escape when no system clipboard is reachable
// (e.g. over ssh).
package clipboard

import (
	sysclip "github.com/atotto/clipboard"

	"github.com/truj/midica-sub006/logging"
)

// Copy places text on the clipboard.
func Copy(text string) error {
	if !sysclip.Unsupported {
		err := sysclip.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	return copyOSC52(text)
}
