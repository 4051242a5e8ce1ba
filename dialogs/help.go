package dialogs

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Help lists key bindings in columns until dismissed.
type Help struct {
	visible bool
	groups  [][]key.Binding
	model   help.Model
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog shows groups side by side, one column per group.
func NewHelpDialog(groups [][]key.Binding) *Help {
	h := help.New()
	h.ShowAll = true
	h.Width = dialogBox.GetWidth() - dialogBox.GetHorizontalFrameSize()
	return &Help{
		visible: true,
		groups:  groups,
		model:   h,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}
	content := fmt.Sprintf("%s\n\n%s", d.model.FullHelpView(d.groups), hint("enter/esc to return"))
	return dialogBox.Render(content)
}

func (d *Help) Show()          { d.visible = true }
func (d *Help) Hide()          { d.visible = false }
func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
