package dialogs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/truj/midica-sub006/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	FiltersAppliedMsg  struct{ Checked []bool }
	FiltersCanceledMsg struct{}
)

// FilterItem is one checkbox line of the filter panel.
type FilterItem struct {
	Label string
	Hint  string // shown dimmed after the label, may be empty
	On    bool
}

type filterKeymap struct {
	up, down, toggle, all, apply, cancel key.Binding
}

func defaultFilterKeymap() filterKeymap {
	return filterKeymap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		all:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		cancel: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

// Filters is a modal checkbox list. Nothing changes outside the dialog
// until the user applies it; the result is sent as FiltersAppliedMsg.
type Filters struct {
	title       string
	description string
	items       []FilterItem
	cursor      int
	visible     bool
	keys        filterKeymap
}

func NewFiltersDialog(title, description string, items []FilterItem) *Filters {
	return &Filters{
		title:       title,
		description: description,
		items:       slices.Clone(items),
		visible:     true,
		keys:        defaultFilterKeymap(),
	}
}

func (d Filters) Init() tea.Cmd { return nil }

// Checked returns the current state of every item, in order.
func (d *Filters) Checked() []bool {
	out := make([]bool, len(d.items))
	for i, it := range d.items {
		out[i] = it.On
	}
	return out
}

func (d *Filters) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(km, d.keys.up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(km, d.keys.down):
		if d.cursor < len(d.items)-1 {
			d.cursor++
		}
	case key.Matches(km, d.keys.toggle):
		if d.cursor < len(d.items) {
			d.items[d.cursor].On = !d.items[d.cursor].On
		}
	case key.Matches(km, d.keys.all):
		d.toggleAll()
	case key.Matches(km, d.keys.apply):
		checked := d.Checked()
		logging.Debugf("FiltersDialog: applied %v", checked)
		return d, func() tea.Msg { return FiltersAppliedMsg{Checked: checked} }
	case key.Matches(km, d.keys.cancel):
		return d, func() tea.Msg { return FiltersCanceledMsg{} }
	}
	return d, nil
}

// toggleAll turns every item on, or off when all are on already.
func (d *Filters) toggleAll() {
	allOn := true
	for _, it := range d.items {
		if !it.On {
			allOn = false
			break
		}
	}
	for i := range d.items {
		d.items[i].On = !allOn
	}
}

var (
	checkboxOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	checkboxOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorItemStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	mutedStyle       = lipgloss.NewStyle().Faint(true)
)

func (d Filters) View() string {
	if !d.visible {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(d.title))
	b.WriteString("\n\n")
	if d.description != "" {
		width := dialogBox.GetWidth() - dialogBox.GetHorizontalFrameSize()
		b.WriteString(mutedStyle.Render(wordwrap.String(d.description, width)))
		b.WriteString("\n\n")
	}

	for i, it := range d.items {
		checkbox := checkboxOffStyle.Render("[ ]")
		if it.On {
			checkbox = checkboxOnStyle.Render("[✓]")
		}
		label := it.Label
		pointer := "  "
		if i == d.cursor {
			label = cursorItemStyle.Render(label)
			pointer = "> "
		}
		line := fmt.Sprintf("%s%s %s", pointer, checkbox, label)
		if it.Hint != "" {
			line += " " + mutedStyle.Render("("+it.Hint+")")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hint("space toggle • a toggle all • enter apply • esc cancel"))
	return dialogBox.Render(b.String())
}

func (d *Filters) Show()          { d.visible = true }
func (d *Filters) Hide()          { d.visible = false }
func (d *Filters) Focus() tea.Cmd { return nil }
func (d *Filters) Blur()          {}
func (d Filters) IsVisible() bool { return d.visible }
