package main

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/truj/midica-sub006/filter"
)

// messageRow is one line of the message table: either a MIDI message or a
// per-track category row.
type messageRow struct {
	cols          []string
	id            uint64
	originalIndex int // position in natural order
	category      bool
	label         string // category rows only

	tick       int64
	track      int64
	channel    int64
	hasChannel bool
	node       *typeNode
}

// newMessageRow parses the numeric fields of a record laid out as
// columnNames. Missing trailing fields are treated as empty.
func newMessageRow(record []string) (*messageRow, error) {
	cols := make([]string, columnCount)
	copy(cols, record)
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}

	r := &messageRow{cols: cols}

	var err error
	if r.tick, err = parseField(cols[colTick], "tick"); err != nil {
		return nil, err
	}
	if r.track, err = parseField(cols[colTrack], "track"); err != nil {
		return nil, err
	}
	if cols[colChannel] != "" {
		if r.channel, err = parseField(cols[colChannel], "channel"); err != nil {
			return nil, err
		}
		r.hasChannel = true
	}
	r.id = r.ComputeID()
	return r, nil
}

func parseField(s, name string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, s, err)
	}
	return n, nil
}

func newCategoryRow(track int64, messages int) *messageRow {
	label := fmt.Sprintf("Track %d (%d messages)", track, messages)
	cols := make([]string, columnCount)
	cols[colSummary] = label
	r := &messageRow{
		cols:     cols,
		category: true,
		label:    label,
		track:    track,
	}
	r.id = r.ComputeID()
	return r
}

func (r *messageRow) ComputeID() uint64 {
	h := fnv.New64a()
	if r.category {
		h.Write([]byte{1})
	}
	for _, col := range r.cols {
		norm := strings.ToLower(strings.TrimSpace(col))
		h.Write([]byte(norm))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// IsCategory implements filter.Row.
func (r *messageRow) IsCategory() bool { return r.category }

// Field implements filter.Row. Category rows have no fields.
func (r *messageRow) Field(key string) (int64, bool) {
	if r.category {
		return 0, false
	}
	switch key {
	case filter.FieldTick:
		return r.tick, true
	case filter.FieldTrack:
		return r.track, true
	case filter.FieldChannel:
		return r.channel, r.hasChannel
	default:
		return 0, false
	}
}

// Leaf implements filter.Row.
func (r *messageRow) Leaf() filter.Node {
	if r.node == nil {
		return nil
	}
	return r.node
}

// Text implements filter.Row.
func (r *messageRow) Text() string { return r.String() }

// Index implements tableview.Row.
func (r *messageRow) Index() int { return r.originalIndex }

// Cell implements tableview.Row.
func (r *messageRow) Cell(col int) any {
	if col < 0 || col >= len(r.cols) {
		return nil
	}
	return r.cols[col]
}

func (r *messageRow) Join(sep string) string {
	var b strings.Builder
	for i, col := range r.cols {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(col)
	}
	return b.String()
}

// String joins the columns with tabs, used for matching and the clipboard.
func (r *messageRow) String() string {
	if r.category {
		return r.label
	}
	return r.Join("\t")
}

// Render draws a message as a single line with one cell per visible
// column. Cells are cut to their width first; matches of match, if any, are
// highlighted afterwards.
func (r *messageRow) Render(style lipgloss.Style, colsMeta []ColumnMeta, match *regexp.Regexp) string {
	var b strings.Builder
	for i, text := range r.cols {
		if i >= len(colsMeta) {
			break
		}
		meta := colsMeta[i]
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		text = truncate.StringWithTail(text, uint(max(meta.Width-2, 0)), "…")
		if match != nil {
			text = match.ReplaceAllStringFunc(text, func(s string) string { return searchHighlight.Render(s) })
		}
		b.WriteString(style.Width(meta.Width).MaxHeight(1).Render(text))
	}
	return b.String()
}

// RenderTrack draws a category row as one band across width cells.
func (r *messageRow) RenderTrack(style lipgloss.Style, width int) string {
	label := truncate.StringWithTail(r.label, uint(max(width-2, 0)), "…")
	return style.Width(max(width, 1)).MaxHeight(1).Render(label)
}
