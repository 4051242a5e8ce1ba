package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/truj/midica-sub006/logging"
	"github.com/truj/midica-sub006/sorter"
)

func (m *model) setFilterPattern(pattern string) {
	logging.Infof("Setting Pattern to: %s", pattern)
	m.data.engine.SetStringFilter(pattern)
	m.applyFilter()
}

func (m *model) applyFilterSettings(s filterSettings) {
	logging.Infof("Applying filter settings: %q", s.label())
	current := m.currentRow()
	m.data.applySettings(s)
	m.keepCursorOn(current)
}

// applyFilter recomputes the visible rows, keeping the cursor on the same
// row when it is still shown.
func (m *model) applyFilter() {
	current := m.currentRow()
	m.data.apply()
	m.keepCursorOn(current)
}

func (m *model) currentRow() *messageRow {
	if m.cursor < 0 || m.cursor >= len(m.data.filteredIndices) {
		return nil
	}
	return m.data.rows[m.data.filteredIndices[m.cursor]]
}

func (m *model) keepCursorOn(row *messageRow) {
	if row != nil {
		for i, idx := range m.data.filteredIndices {
			if m.data.rows[idx] == row {
				m.cursor = i
				m.refreshView("filter", false)
				return
			}
		}
	}
	m.cursor = min(max(m.cursor, 0), len(m.data.filteredIndices)-1)
	if len(m.data.filteredIndices) == 0 {
		m.cursor = -1
	}
	m.refreshView("filter", true)
}

// sortLabel names the current order, e.g. "Tick ▲".
func (m *model) sortLabel() string {
	state := m.data.engine.CurrentSortState()
	if state.IsNatural() || state.Column < 0 || state.Column >= len(m.data.header) {
		return "natural"
	}
	return m.data.header[state.Column].Name + " " + sortArrow(state.Direction)
}

func sortArrow(dir sorter.Direction) string {
	switch dir {
	case sorter.Ascending:
		return "▲"
	case sorter.Descending:
		return "▼"
	default:
		return ""
	}
}

// toggleSort advances the sort cycle of the column under the column cursor.
func (m *model) toggleSort() tea.Cmd {
	col := m.ui.sortColumn
	if !m.data.engine.IsSortable(col) {
		return m.startNotice(m.data.header[col].Name+" is not sortable", "warn")
	}
	m.data.engine.ToggleSortOrder(col)
	m.applyFilter()
	return m.startNotice("Sort: "+m.sortLabel(), "info")
}

func (m *model) resetSort() {
	m.data.engine.ResetSortOrder()
	m.applyFilter()
}

// moveSortColumn steps the column cursor over visible columns.
func (m *model) moveSortColumn(delta int) {
	n := len(m.data.header)
	col := m.ui.sortColumn
	for range n {
		col = (col + delta + n) % n
		if m.data.header[col].Visible {
			m.ui.sortColumn = col
			return
		}
	}
}
