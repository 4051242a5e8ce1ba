package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/truj/midica-sub006/clipboard"
	"github.com/truj/midica-sub006/config"
	"github.com/truj/midica-sub006/dialogs"
	"github.com/truj/midica-sub006/logging"
)

// Rows taken by everything but the viewport: app margin, table border and
// the two footer lines, plus the header.
const chromeHeight = 7

type model struct {
	cfg                 *config.Config
	data                *dataState
	ui                  uiState
	viewport            viewport.Model
	ready               bool
	cursor              int // index into data.filteredIndices
	lastVisibleRowCount int
	terminalWidth       int
	terminalHeight      int
	activeDialog        dialogs.Dialog
	noticeDuration      time.Duration
	InitialPath         string
}

func newModel(t *messageTable, cfg *config.Config, path string) *model {
	m := &model{
		cfg:            cfg,
		data:           newDataState(t, cfg),
		noticeDuration: cfg.UI.NoticeDuration(),
		InitialPath:    path,
	}
	if len(m.data.filteredIndices) == 0 {
		m.cursor = -1
	}
	m.ui.sortColumn = colTick
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("midimsg: initialised with %d messages in %d tracks", m.data.messageCount(), len(m.data.tracks))
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case dialogs.SaveConfirmedMsg:
		m.closeDialog()
		if err := SaveTable(m.data, msg.Path); err != nil {
			logging.Errorf("save %s: %v", msg.Path, err)
			return m, m.startNotice("Save failed: "+err.Error(), "error")
		}
		return m, m.startNotice("Saved "+msg.Path, "success")

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		if err := ExportVisible(m.data, msg.Path); err != nil {
			logging.Errorf("export %s: %v", msg.Path, err)
			return m, m.startNotice("Export failed: "+err.Error(), "error")
		}
		return m, m.startNotice("Exported "+msg.Path, "success")

	case dialogs.FiltersAppliedMsg:
		m.closeDialog()
		m.applyFilterSettings(settingsFromPanel(m.data.settings, msg.Checked))
		return m, nil

	case dialogs.SaveCanceledMsg, dialogs.ExportCanceledMsg, dialogs.FiltersCanceledMsg:
		m.closeDialog()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) resize(width, height int) {
	m.terminalWidth, m.terminalHeight = width, height
	w := max(width-6, 1)
	h := max(height-chromeHeight, 1)
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width, m.viewport.Height = w, h
	}
	layoutColumns(m.data.header, max(w-m.gutterWidth(), 1))
	m.refreshView("resize", true)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		if !m.activeDialog.IsVisible() {
			m.closeDialog()
		}
		return m, cmd
	}

	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.RowDown):
		if m.cursor < len(m.data.filteredIndices)-1 {
			m.cursor++
		}
	case key.Matches(msg, Keys.RowUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, Keys.PageUp):
		m.pageUp()
	case key.Matches(msg, Keys.PageDown):
		m.pageDown()
	case key.Matches(msg, Keys.Top):
		m.jumpToStart()
	case key.Matches(msg, Keys.Bottom):
		m.jumpToEnd()
	case key.Matches(msg, Keys.ScrollLeft):
		m.viewport.ScrollLeft(4)
	case key.Matches(msg, Keys.ScrollRight):
		m.viewport.ScrollRight(4)
	case key.Matches(msg, Keys.ColumnPrev):
		m.moveSortColumn(-1)
	case key.Matches(msg, Keys.ColumnNext):
		m.moveSortColumn(1)
	case key.Matches(msg, Keys.Sort):
		cmd = m.toggleSort()
	case key.Matches(msg, Keys.ResetSort):
		m.resetSort()
	case key.Matches(msg, Keys.ClearFilter):
		m.setFilterPattern("")
	case key.Matches(msg, Keys.FilterPanel):
		m.openFilterPanel()
	case key.Matches(msg, Keys.ResetFilters):
		m.applyFilterSettings(newFilterSettings(len(m.data.settings.channels), m.data.tickMin, m.data.tickMax))
		cmd = m.startNotice("Filters reset", "info")
	case key.Matches(msg, Keys.NextMatch):
		cmd = m.searchOnce(m.ui.searchQuery)
	case key.Matches(msg, Keys.Filter, Keys.Jump, Keys.Search, Keys.TickRange, Keys.Tracks, Keys.Node):
		if r := msg.Runes; len(r) == 1 {
			m.enterCommandMode(CommandFromPrefix(r[0]))
		}
	case key.Matches(msg, Keys.CopyRow):
		cmd = m.copyCurrentRow()
	case key.Matches(msg, Keys.ExportToFile):
		m.openDialog(dialogs.NewExportDialog(defaultExportName(m.InitialPath), filepath.Dir(m.InitialPath)))
	case key.Matches(msg, Keys.SaveToFile):
		m.openDialog(dialogs.NewSaveDialog(defaultSaveName(m.InitialPath), filepath.Dir(m.InitialPath)))
	case key.Matches(msg, Keys.OpenHelp):
		m.openDialog(dialogs.NewHelpDialog(Keys.HelpGroups()))
	}

	m.refreshView("key", false)
	return m, cmd
}

func (m *model) copyCurrentRow() tea.Cmd {
	row := m.currentRow()
	if row == nil {
		return nil
	}
	if err := clipboard.Copy(row.String()); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), "error")
	}
	return m.startNotice("Row copied", "success")
}

func (m *model) openDialog(d dialogs.Dialog) {
	m.activeDialog = d
	m.ui.mode = modeDialog
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
	m.ui.mode = modeView
	m.refreshView("dialog-close", false)
}

// refreshView re-renders the rows around the cursor into the viewport.
func (m *model) refreshView(reason string, resetOffset bool) {
	if !m.ready {
		return
	}
	logging.Debugf("refreshView: %s", reason)
	m.viewport.SetContent(m.renderViewport())
	if resetOffset {
		m.viewport.GotoTop()
	}
}

func defaultSaveName(path string) string {
	return baseName(path) + ".json"
}

func defaultExportName(path string) string {
	return baseName(path) + "-visible.csv"
}

func baseName(path string) string {
	if path == "" {
		return "messages"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
