package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/truj/midica-sub006/logging"
)

func (m *model) hasVisibleRows() bool {
	return len(m.data.filteredIndices) > 0
}

func (m *model) jumpToStart() {
	if !m.hasVisibleRows() {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	if !m.hasVisibleRows() {
		return
	}
	m.cursor = len(m.data.filteredIndices) - 1
}

// jumpToLine moves the cursor to the row whose gutter number is lineNo.
func (m *model) jumpToLine(lineNo int) tea.Cmd {
	logging.Debugf("jumpToLine %d", lineNo)
	if !m.hasVisibleRows() {
		return nil
	}
	target := lineNo - 1
	if target < 0 || target >= len(m.data.rows) {
		return m.startNotice(fmt.Sprintf("Line %d out of bounds", lineNo), "warn")
	}
	for i, idx := range m.data.filteredIndices {
		if idx == target {
			m.cursor = i
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("Line %d not in current filter", lineNo), "warn")
}

func (m *model) pageDown() {
	step := max(m.lastVisibleRowCount, 1)
	m.cursor = min(m.cursor+step, len(m.data.filteredIndices)-1)
}

func (m *model) pageUp() {
	step := max(m.lastVisibleRowCount, 1)
	m.cursor = max(m.cursor-step, 0)
}
