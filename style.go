package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	categoryFGColor        = "#ff9f1c"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
)

var (
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)
	headerCursorStyle = lipgloss.NewStyle().Underline(true).Bold(true)
	rowSelectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))

	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(categoryFGColor))
	categorySelectedStyle = categoryStyle.Background(lipgloss.Color(rowSelectedBGColor))
	categoryPinnedStyle   = categoryStyle.Faint(true).Italic(true)

	tableStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)
