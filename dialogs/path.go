package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/truj/midica-sub006/logging"
)

// PathDialog asks for a file name. Save and Export differ only in their
// prompt and in the messages they emit.
type PathDialog struct {
	name    string
	input   textinput.Model
	visible bool
	lastDir string
	hint    string

	confirmed func(path string) tea.Msg
	canceled  func() tea.Msg
}

func newPathDialog(name, prompt, defaultName, lastDir, hintText string) *PathDialog {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &PathDialog{name: name, input: ti, visible: true, lastDir: lastDir, hint: hintText}
}

func (d PathDialog) Init() tea.Cmd { return textinput.Blink }

// resolvePath falls back to the placeholder for blank input and places bare
// file names in lastDir.
func resolvePath(value, placeholder, lastDir string) string {
	path := strings.TrimSpace(value)
	if path == "" {
		path = placeholder
	}
	if path == "" {
		return ""
	}
	if lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		path = filepath.Join(lastDir, filepath.Base(path))
	}
	return path
}

func (d *PathDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			path := resolvePath(d.input.Value(), d.input.Placeholder, d.lastDir)
			if path == "" {
				return d, nil
			}
			logging.Debugf("%sDialog: confirmed %s", d.name, path)
			return d, func() tea.Msg { return d.confirmed(path) }
		case "esc":
			logging.Debugf("%sDialog: canceled", d.name)
			return d, func() tea.Msg { return d.canceled() }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d PathDialog) View() string {
	if !d.visible {
		return ""
	}
	return dialogBox.Render(fmt.Sprintf("%s\n\n%s", d.input.View(), hint(d.hint)))
}

func (d *PathDialog) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *PathDialog) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *PathDialog) Focus() tea.Cmd { return d.input.Focus() }
func (d *PathDialog) Blur()          { d.input.Blur() }
func (d PathDialog) IsVisible() bool { return d.visible }
