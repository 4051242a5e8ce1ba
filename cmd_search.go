package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// searchOnce moves the cursor to the next visible row containing query,
// wrapping around. The query stays highlighted until the next search.
func (m *model) searchOnce(query string) tea.Cmd {
	m.ui.searchQuery = query
	if query == "" {
		return nil
	}
	if i, ok := nextMatch(m.data, m.cursor, query); ok {
		m.cursor = i
		return nil
	}
	return m.startNotice("No match for "+query, "warn")
}

// nextMatch returns the first visible position after from whose row
// contains query, ignoring case.
func nextMatch(d *dataState, from int, query string) (int, bool) {
	n := len(d.filteredIndices)
	q := strings.ToLower(query)
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		if i < 0 {
			i += n
		}
		row := d.rows[d.filteredIndices[i]]
		if strings.Contains(strings.ToLower(row.String()), q) {
			return i, true
		}
	}
	return 0, false
}
