package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/truj/midica-sub006/filter"
)

// FooterState is everything the footer shows. It is filled from the engine
// on every render.
type FooterState struct {
	Mode      Command
	ModeInput string
	FileName  string

	// Groups are the active filter dimensions in evaluation order.
	Groups          []filter.GroupID
	FilterLabel     string
	Sort            string
	CategoriesShown bool

	Row         int
	TotalRows   int
	Messages    int
	AllMessages int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	Mode   lipgloss.Style
	File   lipgloss.Style
	Filter lipgloss.Style
	Sort   lipgloss.Style
	Counts lipgloss.Style
	Status lipgloss.Style
	Legend lipgloss.Style
}

func DefaultFooterStyles() FooterStyles {
	bar := lipgloss.NewStyle().Background(lipgloss.Color("#2b2b2b")).Foreground(lipgloss.Color("#cfcfcf"))
	status := lipgloss.NewStyle().Background(lipgloss.Color("#000000")).Foreground(lipgloss.Color("#9a9a9a"))
	return FooterStyles{
		Mode:   lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#ff9f1c")).Foreground(lipgloss.Color("#000000")),
		File:   bar.Foreground(lipgloss.Color("#e0e0e0")),
		Filter: bar.Foreground(lipgloss.Color(categoryFGColor)),
		Sort:   bar.Foreground(lipgloss.Color("#a0a0a0")),
		Counts: bar,
		Status: status,
		Legend: status.Foreground(lipgloss.Color("#b0b0b0")),
	}
}

// groupNames are the footer names of the filter dimensions. Category
// hiding is part of the sort segment instead.
var groupNames = map[filter.GroupID]string{
	filter.GroupChannel:   "channels",
	filter.GroupTickRange: "ticks",
	filter.GroupNode:      "type",
	filter.GroupTrack:     "tracks",
	filter.GroupString:    "text",
}

// footerSegment is a piece of plain text and the style it is drawn with.
type footerSegment struct {
	text  string
	style lipgloss.Style
}

// RenderFooter draws the control bar and the status bar, each exactly
// width cells wide.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

// renderControlBar lays out mode, file, filter, sort and counts. The file
// segment absorbs the slack and is the first to shrink.
func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	segs := []footerSegment{
		{" " + commandLabel(st.Mode) + " ", styles.Mode},
		{fileText(st), styles.File},
		{" " + filterSummary(st.Groups) + " ", styles.Filter},
		{" " + sortSummary(st) + " ", styles.Sort},
		{" " + countsText(st) + " ", styles.Counts},
	}
	used := 0
	for _, s := range segs {
		used += runeWidth(s.text)
	}
	file := &segs[1]
	fileW := max(runeWidth(file.text)+width-used, 0)
	file.text = padRightPlain(truncatePlain(file.text, fileW), fileW)
	return renderSegments(segs, width)
}

// renderStatusBar shows the notice, or the filter details when there is
// none, with the key legend on the right.
func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legend := truncatePlain(st.Legend, width)
	msg := st.StatusMessage
	if msg == "" {
		msg = st.FilterLabel
	}
	leftW := width - runeWidth(legend)
	return renderSegments([]footerSegment{
		{padRightPlain(truncatePlain(" "+msg, leftW), leftW), styles.Status},
		{legend, styles.Legend},
	}, width)
}

// renderSegments draws segs left to right, cutting whatever does not fit.
func renderSegments(segs []footerSegment, width int) string {
	var b strings.Builder
	room := width
	for _, s := range segs {
		text := truncatePlain(s.text, room)
		if text == "" {
			continue
		}
		b.WriteString(s.style.Render(text))
		room -= runeWidth(text)
	}
	return b.String()
}

func fileText(st FooterState) string {
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	text := " ▸ " + name
	if input := strings.TrimSpace(st.ModeInput); input != "" {
		text += " ▸ " + input
	}
	return text
}

// filterSummary names the active filter dimensions, e.g. "FILTER tracks+text".
func filterSummary(groups []filter.GroupID) string {
	var names []string
	for _, g := range groups {
		if name, ok := groupNames[g]; ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "FILTER off"
	}
	return "FILTER " + strings.Join(names, "+")
}

func sortSummary(st FooterState) string {
	sort := st.Sort
	if sort == "" {
		sort = "natural"
	}
	if !st.CategoriesShown {
		return "SORT " + sort + " · tracks hidden"
	}
	return "SORT " + sort
}

func countsText(st FooterState) string {
	return fmt.Sprintf("msg %d/%d · row %d/%d", st.Messages, st.AllMessages, max(st.Row, 0), max(st.TotalRows, 0))
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(s, w)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}
