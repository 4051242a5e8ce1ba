package dialogs

import tea "github.com/charmbracelet/bubbletea"

type (
	SaveConfirmedMsg struct{ Path string }
	SaveCanceledMsg  struct{}
)

// NewSaveDialog asks where to write the JSON snapshot of the table.
func NewSaveDialog(defaultName, lastDir string) *PathDialog {
	d := newPathDialog("Save", "Save as: ", defaultName, lastDir, "enter to save table • esc to cancel")
	d.confirmed = func(path string) tea.Msg { return SaveConfirmedMsg{Path: path} }
	d.canceled = func() tea.Msg { return SaveCanceledMsg{} }
	return d
}
