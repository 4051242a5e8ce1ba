package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	RowDown      key.Binding
	RowUp        key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	ScrollLeft   key.Binding
	ScrollRight  key.Binding
	ColumnPrev   key.Binding
	ColumnNext   key.Binding
	Sort         key.Binding
	ResetSort    key.Binding
	Filter       key.Binding
	ClearFilter  key.Binding
	FilterPanel  key.Binding
	ResetFilters key.Binding
	Jump         key.Binding
	Search       key.Binding
	NextMatch    key.Binding
	TickRange    key.Binding
	Tracks       key.Binding
	Node         key.Binding
	CopyRow      key.Binding
	ExportToFile key.Binding
	SaveToFile   key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first row"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last row"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll right"),
	),
	ColumnPrev: key.NewBinding(
		key.WithKeys("<", ","),
		key.WithHelp("<", "previous column"),
	),
	ColumnNext: key.NewBinding(
		key.WithKeys(">", "."),
		key.WithHelp(">", "next column"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle sort of column"),
	),
	ResetSort: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "natural order"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter text"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear text filter"),
	),
	FilterPanel: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "channel filters"),
	),
	ResetFilters: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "reset filters"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to line"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextMatch: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "next match"),
	),
	TickRange: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "limit ticks"),
	),
	Tracks: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "limit tracks"),
	),
	Node: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "filter by type"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy row"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export visible rows"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "save table"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

// HelpGroups returns the bindings shown by the help dialog, one column each.
func (k Keymap) HelpGroups() [][]key.Binding {
	return [][]key.Binding{
		{k.RowUp, k.RowDown, k.PageUp, k.PageDown, k.Top, k.Bottom, k.ScrollLeft, k.ScrollRight, k.Jump},
		{k.ColumnPrev, k.ColumnNext, k.Sort, k.ResetSort, k.Search, k.NextMatch, k.Filter, k.ClearFilter},
		{k.FilterPanel, k.ResetFilters, k.TickRange, k.Tracks, k.Node, k.CopyRow, k.ExportToFile, k.SaveToFile, k.Quit},
	}
}
