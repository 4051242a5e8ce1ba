package main

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/truj/midica-sub006/logging"
)

var sgrReset = termenv.CSI + termenv.ResetSeq + "m"

// gutterWidth is the width of the line number column left of each row.
func (m *model) gutterWidth() int {
	return len(strconv.Itoa(len(m.data.rows))) + 1
}

// tableWidth is the summed width of the visible columns.
func (m *model) tableWidth() int {
	w := 0
	for _, col := range m.data.header {
		if col.Visible {
			w += col.Width
		}
	}
	return w
}

// headerLabel is a column title with its sort arrow, if sorted.
func (m *model) headerLabel(col ColumnMeta) string {
	state := m.data.engine.CurrentSortState()
	if !state.IsNatural() && state.Column == col.Index {
		return col.Name + " " + sortArrow(state.Direction)
	}
	return col.Name
}

func (m *model) headerView() string {
	var cells []string
	for _, col := range m.data.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		label := ansi.Truncate(m.headerLabel(col), max(col.Width-2, 0), "…")
		if col.Index == m.ui.sortColumn {
			label = headerCursorStyle.Render(label)
		}
		cells = append(cells, cellStyle.Width(col.Width).Render(label))
	}
	return headerStyle.Render(strings.Repeat(" ", m.gutterWidth()) + strings.Join(cells, ""))
}

// footerView collects the engine and cursor state into the footer.
func (m *model) footerView(width int) string {
	st := FooterState{
		FileName:        m.InitialPath,
		Groups:          m.data.engine.Inclusion().Groups(),
		FilterLabel:     m.filterLabel(),
		Sort:            m.sortLabel(),
		CategoriesShown: m.data.engine.CategoriesShown(),
		Row:             m.cursor + 1,
		TotalRows:       len(m.data.filteredIndices),
		Messages:        m.data.visibleMessages(),
		AllMessages:     m.data.messageCount(),
		Legend:          "(? help · f filter · c channels · < > column · s sort · / search)",
	}
	if m.ui.mode == modeCommand {
		st.Mode = m.ui.command.cmd
		st.ModeInput = m.activeCommandLine()
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d vis=%d-%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.visibleStart, m.ui.visibleEnd)
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

// filterLabel combines the text filter and the panel settings.
func (m *model) filterLabel() string {
	var parts []string
	if p := m.data.engine.StringFilter(); p != "" {
		parts = append(parts, strconv.Quote(p))
	}
	if l := m.data.settings.label(); l != "" {
		parts = append(parts, l)
	}
	return strings.Join(parts, " ")
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.viewport.View())
	footer := m.footerView(lipgloss.Width(bordered))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.headerView(), bordered, footer))
}

// visibleWindow returns the half-open range of positions shown when height
// lines fit, keeping the cursor near the middle.
func visibleWindow(cursor, n, height int) (int, int) {
	if height >= n {
		return 0, n
	}
	start := min(max(cursor-height/2, 0), n-height)
	return start, start + height
}

// trackAbove returns the position of the category row that owns the row at
// start, when that category row is itself above start.
func (m *model) trackAbove(start int) (int, bool) {
	if start <= 0 || start >= len(m.data.filteredIndices) {
		return 0, false
	}
	if m.data.rows[m.data.filteredIndices[start]].category {
		return 0, false
	}
	for i := start - 1; i >= 0; i-- {
		if m.data.rows[m.data.filteredIndices[i]].category {
			return i, true
		}
	}
	return 0, false
}

// renderViewport draws the rows around the cursor. In natural order the
// track of the topmost message stays pinned above it.
func (m *model) renderViewport() string {
	n := len(m.data.filteredIndices)
	if n == 0 || m.cursor < 0 {
		m.ui.visibleStart, m.ui.visibleEnd = 0, 0
		return ""
	}
	m.cursor = min(m.cursor, n-1)
	height := max(m.viewport.Height, 1)

	pinned, hasPin := 0, false
	start, end := visibleWindow(m.cursor, n, height)
	if m.data.engine.CategoriesShown() && height > 1 {
		s, e := visibleWindow(m.cursor, n, height-1)
		if pinned, hasPin = m.trackAbove(s); hasPin {
			start, end = s, e
		}
	}
	m.ui.visibleStart, m.ui.visibleEnd = start, end
	m.lastVisibleRowCount = end - start

	match := searchPattern(m.ui.searchQuery)
	lines := make([]string, 0, end-start+1)
	if hasPin {
		lines = append(lines, m.renderTrackLine(pinned, true))
	}
	for pos := start; pos < end; pos++ {
		if m.data.rows[m.data.filteredIndices[pos]].category {
			lines = append(lines, m.renderTrackLine(pos, false))
		} else {
			lines = append(lines, m.renderMessageLine(pos, match))
		}
	}
	return strings.Join(lines, "\n")
}

func searchPattern(query string) *regexp.Regexp {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(q))
}

func (m *model) renderMessageLine(pos int, match *regexp.Regexp) string {
	row := m.data.rows[m.data.filteredIndices[pos]]
	selected := pos == m.cursor

	gutter := gutterStyle.Render(fmt.Sprintf("%*d ", m.gutterWidth()-1, row.originalIndex+1))
	prefix := rowPrefix(selected)
	if selected {
		gutter = rowSelectedStyle.Render(gutter)
	}
	line := row.Render(cellStyle, m.data.header, match)
	if prefix != "" {
		// highlights end in a reset that would drop the row colors
		line = strings.ReplaceAll(line, sgrReset, sgrReset+prefix)
	}
	return gutter + prefix + line + sgrReset
}

// renderTrackLine draws a category row. A pinned copy is dimmed and marked
// so it is not mistaken for the row under the cursor.
func (m *model) renderTrackLine(pos int, pinned bool) string {
	row := m.data.rows[m.data.filteredIndices[pos]]
	marker, style := "▾", categoryStyle
	switch {
	case pinned:
		marker, style = "↑", categoryPinnedStyle
	case pos == m.cursor:
		style = categorySelectedStyle
	}
	gutter := gutterStyle.Render(fmt.Sprintf("%*s ", m.gutterWidth()-1, marker))
	return gutter + row.RenderTrack(style, m.tableWidth())
}

// rowPrefix is the SGR sequence that sets a message row's colors, or "" when
// the terminal has no colors.
func rowPrefix(selected bool) string {
	var codes []string
	if selected {
		codes = append(codes, colorCode(rowSelectedBGColor, true), colorCode(rowSelectedTextFGColor, false))
	} else {
		codes = append(codes, colorCode(rowTextFGColor, false))
	}
	codes = slices.DeleteFunc(codes, func(c string) bool { return c == "" })
	if len(codes) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(codes, ";") + "m"
}

func colorCode(hex string, bg bool) string {
	c := lipgloss.ColorProfile().Color(hex)
	if c == nil {
		return ""
	}
	return c.Sequence(bg)
}
