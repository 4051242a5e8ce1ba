package main

import (
	"strings"

	"github.com/truj/midica-sub006/config"
	"github.com/truj/midica-sub006/sorter"
	"github.com/truj/midica-sub006/tableview"
)

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RolePrimary            // Summary
	RoleSecondary
)

// ColumnKind selects how a column's cells are compared when sorted.
type ColumnKind int

const (
	KindNumeric ColumnKind = iota
	KindText
)

// Column indices of a message table.
const (
	colTick = iota
	colTrack
	colChannel
	colStatus
	colLength
	colType
	colSummary
	columnCount
)

var columnNames = [columnCount]string{"Tick", "Track", "Channel", "Status", "Length", "Type", "Summary"}

type ColumnMeta struct {
	Name     string
	Index    int
	Role     ColumnRole
	Kind     ColumnKind
	Sortable bool
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

func detectRole(name string) ColumnRole {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "summary":
		return RolePrimary
	case "tick", "type":
		return RoleSecondary
	default:
		return RoleNormal
	}
}

func detectKind(name string) ColumnKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tick", "track", "channel", "length":
		return KindNumeric
	default:
		return KindText
	}
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 30
	case RoleSecondary:
		return 12
	default:
		return 8
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 5.0
	case RoleSecondary:
		return 2.0
	default:
		return 1.0
	}
}

// messageColumns builds the header of a message table.
func messageColumns(cfg *config.Config) []ColumnMeta {
	cols := make([]ColumnMeta, columnCount)
	for i, name := range columnNames {
		role := detectRole(name)
		cols[i] = ColumnMeta{
			Name:     name,
			Index:    i,
			Role:     role,
			Kind:     detectKind(name),
			Sortable: cfg.IsSortable(name),
			Visible:  true,
			MinWidth: defaultMinWidthForRole(role),
			Weight:   defaultWeightForRole(role),
		}
	}
	return cols
}

// configureEngine registers every column's sortability and comparator.
func configureEngine(e *tableview.Engine, cols []ColumnMeta, cfg *config.Config) {
	text := sorter.Collated(cfg.CollationTag())
	for _, c := range cols {
		e.SetSortable(c.Index, c.Sortable)
		if c.Kind == KindText {
			e.SetColumnComparator(c.Index, text)
		} else {
			e.SetColumnComparator(c.Index, sorter.Numeric)
		}
	}
}

// markEmptyColumns hides columns that are blank in every data row.
func markEmptyColumns(cols []ColumnMeta, rows []*messageRow) {
	for i := range cols {
		hasData := false
		for _, row := range rows {
			if row.category || cols[i].Index >= len(row.cols) {
				continue
			}
			if strings.TrimSpace(row.cols[cols[i].Index]) != "" {
				hasData = true
				break
			}
		}
		if !hasData && cols[i].Role != RolePrimary {
			cols[i].Visible = false
			cols[i].Width = 0
			cols[i].Weight = 0
		}
	}
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	minSum := 0
	weightSum := 0.0
	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: every visible column gets its minimum, clamped
		for i := range cols {
			if !cols[i].Visible {
				continue
			}
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}
	return cols
}
