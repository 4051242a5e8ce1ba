package main

import "fmt"

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdSearch
	CmdFilter
	CmdRange
	CmdTracks
	CmdNode
)

type CommandInput struct {
	cmd Command
	buf string
}

// CommandFromPrefix maps the key that opens a prompt to its command.
func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdJump
	case '/':
		return CmdSearch
	case 'f':
		return CmdFilter
	case 'r':
		return CmdRange
	case 't':
		return CmdTracks
	case 'n':
		return CmdNode
	default:
		return CmdNone
	}
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	case CmdFilter:
		return "FILTER"
	case CmdRange:
		return "TICKS"
	case CmdTracks:
		return "TRACKS"
	case CmdNode:
		return "TYPE"
	default:
		return "NORMAL"
	}
}

func commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "search: "
	case CmdFilter:
		return "filter: "
	case CmdJump:
		return "line: "
	case CmdRange:
		return "ticks from-to: "
	case CmdTracks:
		return "tracks: "
	case CmdNode:
		return "type path: "
	default:
		return ""
	}
}

// commandSeed is the text a prompt starts with, so the current value can
// be edited instead of retyped.
func (m *model) commandSeed(cmd Command) string {
	switch cmd {
	case CmdFilter:
		return m.data.engine.StringFilter()
	case CmdRange:
		s := m.data.settings
		if s.limitTicks {
			return fmt.Sprintf("%d-%d", s.tickFrom, s.tickTo)
		}
	case CmdTracks:
		if m.data.settings.limitTracks {
			return joinInts(m.data.settings.tracks)
		}
	case CmdNode:
		if n := m.data.settings.nodes; m.data.settings.filterByNode && len(n) > 0 {
			return n[0].path()
		}
	}
	return ""
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	return commandPrompt(m.ui.command.cmd) + m.ui.command.buf
}
