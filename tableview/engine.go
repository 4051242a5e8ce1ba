// Package tableview binds the filter composer and the sort cycle to one
// table view. All methods run synchronously and the Engine holds no locks:
// callers serialize mutations, e.g. on the bubbletea update loop.
package tableview

import (
	"cmp"
	"slices"

	"github.com/truj/midica-sub006/filter"
	"github.com/truj/midica-sub006/logging"
	"github.com/truj/midica-sub006/sorter"
)

// Row is a filterable row that can also be sorted.
type Row interface {
	filter.Row
	// Index is the row's stable position in natural order.
	Index() int
	// Cell returns the value shown in column.
	Cell(column int) any
}

// Engine owns the filter criteria and sort state of one table view.
type Engine struct {
	composer    filter.Composer
	cycle       *sorter.Cycle
	comparators map[int]sorter.CompareFunc

	criteria *filter.Criteria
	text     string

	inclusion filter.Inclusion
	compare   func(a, b Row) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithFields overrides the row field keys used by the composer.
func WithFields(f filter.Fields) Option {
	return func(e *Engine) { e.composer = filter.NewComposer(f) }
}

// New returns an engine with no criteria, no string filter and natural order.
func New(opts ...Option) *Engine {
	e := &Engine{
		composer:    filter.NewComposer(filter.DefaultFields),
		cycle:       sorter.NewCycle(),
		comparators: make(map[int]sorter.CompareFunc),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.recompose()
	return e
}

// SetStringFilter sets the free-text filter. An empty pattern clears it.
func (e *Engine) SetStringFilter(pattern string) {
	logging.Debugf("tableview: string filter %q", pattern)
	e.text = pattern
	e.recompose()
}

// StringFilter returns the current free-text filter.
func (e *Engine) StringFilter() string {
	return e.text
}

// SetFilterCriteria replaces all criteria. The engine keeps its own copy.
func (e *Engine) SetFilterCriteria(c filter.Criteria) {
	e.criteria = c.Clone()
	e.recompose()
}

// Criteria returns a copy of the current criteria, or nil if none were set.
func (e *Engine) Criteria() *filter.Criteria {
	return e.criteria.Clone()
}

// SetSortable marks whether column takes part in the sort cycle.
func (e *Engine) SetSortable(column int, sortable bool) {
	before := e.cycle.State()
	e.cycle.SetSortable(column, sortable)
	if e.cycle.State() != before {
		e.recompose()
	}
}

// IsSortable reports whether column takes part in the sort cycle.
func (e *Engine) IsSortable(column int) bool {
	return e.cycle.IsSortable(column)
}

// SetColumnComparator sets how column's cells are ordered. Columns without
// one are compared numerically; a nil cmp removes the column's comparator.
func (e *Engine) SetColumnComparator(column int, cmp sorter.CompareFunc) {
	if cmp == nil {
		delete(e.comparators, column)
	} else {
		e.comparators[column] = cmp
	}
	e.recompose()
}

// ToggleSortOrder advances the sort cycle for column and returns the new
// state. The filter is recomposed before the new comparator is published.
func (e *Engine) ToggleSortOrder(column int) sorter.State {
	state, changed := e.cycle.Toggle(column)
	if !changed {
		logging.Debugf("tableview: column %d is not sortable", column)
		return state
	}
	logging.Debugf("tableview: sort -> %s", state)
	e.recompose()
	return state
}

// ResetSortOrder returns to natural order.
func (e *Engine) ResetSortOrder() {
	e.cycle.Reset()
	e.recompose()
}

// CurrentSortState returns the current sort state.
func (e *Engine) CurrentSortState() sorter.State {
	return e.cycle.State()
}

// CategoriesShown reports whether category rows are exempt from filtering.
// They are exactly while rows are in natural order.
func (e *Engine) CategoriesShown() bool {
	return e.visibility() == filter.CategoriesShown
}

// Inclusion returns the composed filter.
func (e *Engine) Inclusion() filter.Inclusion {
	return e.inclusion
}

// InclusionPredicate returns the per-row inclusion test.
func (e *Engine) InclusionPredicate() func(Row) bool {
	in := e.inclusion
	return func(r Row) bool { return in.Include(r) }
}

// Comparator returns the ordering of included rows.
func (e *Engine) Comparator() func(a, b Row) int {
	return e.compare
}

// Apply returns the indices into rows that are included, in display order.
func (e *Engine) Apply(rows []Row) []int {
	indices := make([]int, 0, len(rows))
	pass := e.inclusion.PassThrough()
	for i, r := range rows {
		if pass || e.inclusion.Include(r) {
			indices = append(indices, i)
		}
	}
	compare := e.compare
	slices.SortStableFunc(indices, func(a, b int) int {
		return compare(rows[a], rows[b])
	})
	return indices
}

func (e *Engine) visibility() filter.CategoryVisibility {
	if e.cycle.State().IsNatural() {
		return filter.CategoriesShown
	}
	return filter.CategoriesHidden
}

// recompose rebuilds the predicate first and the comparator second so both
// always describe the same state.
func (e *Engine) recompose() {
	e.inclusion = e.composer.Compose(e.criteria, e.text, e.visibility())
	e.compare = e.buildComparator(e.cycle.State())
	logging.Debugf("tableview: filter %s", e.inclusion)
}

func (e *Engine) buildComparator(state sorter.State) func(a, b Row) int {
	if state.IsNatural() {
		return func(a, b Row) int { return cmp.Compare(a.Index(), b.Index()) }
	}
	cellCmp, ok := e.comparators[state.Column]
	if !ok {
		cellCmp = sorter.Numeric
	}
	cellCmp = sorter.Directed(cellCmp, state.Direction)
	col := state.Column
	return func(a, b Row) int {
		if c := cellCmp(a.Cell(col), b.Cell(col)); c != 0 {
			return c
		}
		return cmp.Compare(a.Index(), b.Index())
	}
}
