package main

type mode int

const (
	modeView mode = iota
	modeCommand
	modeDialog
)

type uiState struct {
	mode        mode
	command     CommandInput
	noticeMsg   string
	noticeType  string
	noticeSeq   int
	searchQuery string
	sortColumn  int // column under the column cursor

	visibleStart int // first shown position in filteredIndices
	visibleEnd   int
}
