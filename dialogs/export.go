package dialogs

import tea "github.com/charmbracelet/bubbletea"

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// NewExportDialog asks where to write the visible rows as CSV.
func NewExportDialog(defaultName, lastDir string) *PathDialog {
	d := newPathDialog("Export", "Export as: ", defaultName, lastDir, "enter to export visible rows • esc to cancel")
	d.confirmed = func(path string) tea.Msg { return ExportConfirmedMsg{Path: path} }
	d.canceled = func() tea.Msg { return ExportCanceledMsg{} }
	return d
}
