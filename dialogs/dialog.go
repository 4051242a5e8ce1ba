package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is implemented by every modal (save, export, filters, help).
// The model forwards all messages to the active dialog while it is visible.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
