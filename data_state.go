package main

import (
	"slices"

	"github.com/truj/midica-sub006/config"
	"github.com/truj/midica-sub006/logging"
	"github.com/truj/midica-sub006/tableview"
)

type dataState struct {
	header          []ColumnMeta    // single row for column titles in headerview
	rows            []*messageRow   // natural order, category rows included
	view            []tableview.Row // rows as seen by the engine, same order
	tree            *typeNode
	engine          *tableview.Engine
	filteredIndices []int // indices into rows, in display order
	tickMin         int64
	tickMax         int64
	tracks          []int64
	settings        filterSettings
}

func newDataState(t *messageTable, cfg *config.Config) *dataState {
	header := messageColumns(cfg)
	markEmptyColumns(header, t.rows)

	engine := tableview.New()
	configureEngine(engine, header, cfg)

	d := &dataState{
		header: header,
		rows:   t.rows,
		view:   make([]tableview.Row, len(t.rows)),
		tree:   t.tree,
		engine: engine,
	}
	for i, r := range t.rows {
		d.view[i] = r
		if r.category {
			d.tracks = append(d.tracks, r.track)
		}
	}
	slices.Sort(d.tracks)
	d.tickMin, d.tickMax = tickBounds(t.rows)
	d.settings = newFilterSettings(cfg.Table.Channels, d.tickMin, d.tickMax)
	d.engine.SetFilterCriteria(d.settings.toCriteria())
	d.apply()
	return d
}

// apply recomputes filteredIndices from the engine's current state.
func (d *dataState) apply() {
	d.filteredIndices = d.engine.Apply(d.view)
	logging.Debugf("dataState: %d of %d rows visible", len(d.filteredIndices), len(d.rows))
}

// applySettings replaces the filter settings and the engine criteria.
func (d *dataState) applySettings(s filterSettings) {
	d.settings = s.clone()
	d.engine.SetFilterCriteria(d.settings.toCriteria())
	d.apply()
}

// messageCount is the number of non-category rows.
func (d *dataState) messageCount() int {
	return len(d.rows) - len(d.tracks)
}

// visibleMessages is the number of non-category rows currently shown.
func (d *dataState) visibleMessages() int {
	n := 0
	for _, idx := range d.filteredIndices {
		if !d.rows[idx].category {
			n++
		}
	}
	return n
}
