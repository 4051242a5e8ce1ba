package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/truj/midica-sub006/logging"
)

func (m *model) enterCommandMode(cmd Command) {
	m.ui.mode = modeCommand
	m.ui.command = CommandInput{cmd: cmd, buf: m.commandSeed(cmd)}
	logging.Debugf("Entering Mode: Command %s", commandLabel(cmd))
}

func (m *model) runCommand() tea.Cmd {
	buf := strings.TrimSpace(m.ui.command.buf)
	switch m.ui.command.cmd {
	case CmdJump:
		if n, err := strconv.Atoi(buf); err == nil {
			return m.jumpToLine(n)
		}
		return m.startNotice("Invalid line number", "warn")

	case CmdSearch:
		return m.searchOnce(buf)

	case CmdFilter:
		m.setFilterPattern(buf)
		return nil

	case CmdRange:
		return m.runTickRange(buf)

	case CmdTracks:
		return m.runTracks(buf)

	case CmdNode:
		return m.runNode(buf)
	}
	return nil
}

// runTickRange limits the view to a tick range. Empty input lifts the limit.
func (m *model) runTickRange(buf string) tea.Cmd {
	s := m.data.settings.clone()
	from, to, err := parseTickRange(buf, m.data.tickMin, m.data.tickMax)
	switch {
	case errors.Is(err, errEmptyInput):
		s.limitTicks = false
		s.tickFrom, s.tickTo = m.data.tickMin, m.data.tickMax
	case err != nil:
		return m.startNotice(err.Error(), "warn")
	default:
		s.limitTicks = true
		s.tickFrom, s.tickTo = from, to
	}
	m.applyFilterSettings(s)
	if !s.limitTicks {
		return m.startNotice("Tick limit removed", "info")
	}
	return m.startNotice(fmt.Sprintf("Ticks %d-%d", from, to), "info")
}

// runTracks limits the view to a set of tracks. Empty input lifts the limit.
func (m *model) runTracks(buf string) tea.Cmd {
	s := m.data.settings.clone()
	tracks, err := parseTrackList(buf)
	switch {
	case errors.Is(err, errEmptyInput):
		s.limitTracks = false
		s.tracks = nil
	case err != nil:
		return m.startNotice(err.Error(), "warn")
	default:
		s.limitTracks = true
		s.tracks = tracks
	}
	m.applyFilterSettings(s)
	if !s.limitTracks {
		return m.startNotice("Track limit removed", "info")
	}
	return m.startNotice("Tracks "+joinInts(tracks), "info")
}

// runNode limits the view to one branch of the type tree. Empty input lifts
// the limit.
func (m *model) runNode(buf string) tea.Cmd {
	s := m.data.settings.clone()
	if buf == "" {
		s.filterByNode = false
		s.nodes = nil
		m.applyFilterSettings(s)
		return m.startNotice("Type filter removed", "info")
	}
	node := m.data.tree.find(buf)
	if node == nil {
		return m.startNotice(fmt.Sprintf("Unknown type %q", buf), "warn")
	}
	s.filterByNode = true
	s.nodes = []*typeNode{node}
	m.applyFilterSettings(s)
	return m.startNotice(fmt.Sprintf("Type %s (%d messages)", node.name, node.count), "info")
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		m.refreshView("command", false)
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	case tea.KeyRunes:
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
