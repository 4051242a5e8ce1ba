package tableview

import (
	"slices"
	"testing"

	"golang.org/x/text/language"

	"github.com/truj/midica-sub006/filter"
	"github.com/truj/midica-sub006/sorter"
)

type node struct{ parent *node }

func (n *node) Parent() filter.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

type row struct {
	idx      int
	category bool
	fields   map[string]int64
	leaf     *node
	text     string
	cells    []any
}

func (r *row) IsCategory() bool { return r.category }
func (r *row) Index() int       { return r.idx }
func (r *row) Text() string     { return r.text }

func (r *row) Field(key string) (int64, bool) {
	v, ok := r.fields[key]
	return v, ok
}

func (r *row) Leaf() filter.Node {
	if r.leaf == nil {
		return nil
	}
	return r.leaf
}

func (r *row) Cell(col int) any {
	if col < 0 || col >= len(r.cells) {
		return nil
	}
	return r.cells[col]
}

// fixture: a category row followed by messages on channels -, 0, 1, 2.
func fixture() []Row {
	return []Row{
		&row{idx: 0, category: true, text: "Track 0", cells: []any{"", "", "Track 0"}},
		&row{idx: 1, fields: map[string]int64{filter.FieldTick: 30, filter.FieldTrack: 0}, text: "30 Tempo", cells: []any{30, "", "Tempo"}},
		&row{idx: 2, fields: map[string]int64{filter.FieldTick: 10, filter.FieldTrack: 0, filter.FieldChannel: 0}, text: "10 0 Note On", cells: []any{10, "0", "Note On"}},
		&row{idx: 3, fields: map[string]int64{filter.FieldTick: 20, filter.FieldTrack: 1, filter.FieldChannel: 1}, text: "20 1 Note Off", cells: []any{20, "1", "Note Off"}},
		&row{idx: 4, fields: map[string]int64{filter.FieldTick: 21, filter.FieldTrack: 1, filter.FieldChannel: 2}, text: "21 2 a(b)c", cells: []any{21, "2", "a(b)c"}},
	}
}

func TestNewEngineIsPassThrough(t *testing.T) {
	e := New()
	rows := fixture()

	if !e.Inclusion().PassThrough() {
		t.Errorf("new engine inclusion = %s, want pass-through", e.Inclusion())
	}
	if !e.CurrentSortState().IsNatural() {
		t.Errorf("CurrentSortState() = %v, want natural", e.CurrentSortState())
	}
	if !e.CategoriesShown() {
		t.Error("CategoriesShown() = false in natural order")
	}
	if got := e.Apply(rows); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Apply() = %v, want all rows in order", got)
	}
}

func TestVacuousGroupLaw(t *testing.T) {
	e := New()
	e.SetStringFilter("note")
	e.SetFilterCriteria(filter.Criteria{
		Toggles:  map[filter.Toggle]bool{filter.LimitTicks: false},
		TickFrom: 0,
		TickTo:   1,
	})
	e.SetStringFilter("")

	if !e.Inclusion().PassThrough() {
		t.Fatalf("inclusion = %s, want pass-through", e.Inclusion())
	}
	include := e.InclusionPredicate()
	for _, r := range fixture() {
		if !include(r) {
			t.Errorf("row %d excluded with every dimension disabled", r.Index())
		}
	}
}

func TestCategoryExemptionInNaturalOrder(t *testing.T) {
	e := New()
	e.SetStringFilter("zzz")
	e.SetFilterCriteria(filter.Criteria{
		Toggles:  map[filter.Toggle]bool{filter.LimitTicks: true, filter.LimitTracks: true},
		Channels: map[int64]bool{},
		TickFrom: 1000,
		TickTo:   2000,
		Tracks:   []int64{42},
	})

	if got := e.Apply(fixture()); !slices.Equal(got, []int{0}) {
		t.Errorf("Apply() = %v, want only the category row", got)
	}
}

func TestSortingHidesCategories(t *testing.T) {
	e := New()
	e.SetSortable(0, true)
	rows := fixture()

	e.ToggleSortOrder(0)
	if e.CategoriesShown() {
		t.Error("CategoriesShown() = true while sorted")
	}
	if got := e.Apply(rows); !slices.Equal(got, []int{2, 3, 4, 1}) {
		t.Errorf("ascending Apply() = %v, want [2 3 4 1]", got)
	}

	e.ToggleSortOrder(0)
	if got := e.Apply(rows); !slices.Equal(got, []int{1, 4, 3, 2}) {
		t.Errorf("descending Apply() = %v, want [1 4 3 2]", got)
	}

	e.ToggleSortOrder(0)
	if !e.CategoriesShown() {
		t.Error("CategoriesShown() = false after returning to natural")
	}
	if got := e.Apply(rows); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("natural Apply() = %v, want insertion order", got)
	}
}

func TestSortCycleStates(t *testing.T) {
	e := New()
	e.SetSortable(2, true)
	e.SetSortable(3, true)

	want := []sorter.State{
		{Column: 2, Direction: sorter.Ascending},
		{Column: 2, Direction: sorter.Descending},
		sorter.NaturalState,
	}
	for i, w := range want {
		if got := e.ToggleSortOrder(2); got != w {
			t.Errorf("ToggleSortOrder(2) #%d = %v, want %v", i+1, got, w)
		}
	}

	e.ToggleSortOrder(2)
	e.ToggleSortOrder(2)
	if got := e.ToggleSortOrder(3); got != (sorter.State{Column: 3, Direction: sorter.Ascending}) {
		t.Errorf("ToggleSortOrder(3) from descending(2) = %v, want ascending(3)", got)
	}
}

func TestUnsortableColumnIsIgnored(t *testing.T) {
	e := New()
	if got := e.ToggleSortOrder(5); !got.IsNatural() {
		t.Errorf("ToggleSortOrder(unsortable) = %v, want natural", got)
	}
	if !e.Inclusion().PassThrough() {
		t.Error("unsortable toggle should not install a filter")
	}
}

func TestChannelComposition(t *testing.T) {
	e := New()
	e.SetFilterCriteria(filter.Criteria{
		Toggles:  map[filter.Toggle]bool{filter.ShowChannelIndependent: true},
		Channels: map[int64]bool{0: true, 1: false, 2: true},
	})

	// category row 0 stays because rows are in natural order
	if got := e.Apply(fixture()); !slices.Equal(got, []int{0, 1, 2, 4}) {
		t.Errorf("Apply() = %v, want [0 1 2 4]", got)
	}
}

func TestRangeBoundary(t *testing.T) {
	e := New()
	e.SetFilterCriteria(filter.Criteria{
		Toggles:  map[filter.Toggle]bool{filter.LimitTicks: true},
		TickFrom: 10,
		TickTo:   20,
	})

	include := e.InclusionPredicate()
	for _, tc := range []struct {
		tick int64
		want bool
	}{{9, false}, {10, true}, {20, true}, {21, false}} {
		r := &row{fields: map[string]int64{filter.FieldTick: tc.tick}}
		if got := include(r); got != tc.want {
			t.Errorf("include(tick=%d) = %v, want %v", tc.tick, got, tc.want)
		}
	}
}

func TestHierarchyInclusion(t *testing.T) {
	root := &node{}
	n := &node{parent: root}
	sibling := &node{parent: root}
	grandchild := &node{parent: &node{parent: n}}

	e := New()
	e.SetFilterCriteria(filter.Criteria{
		Toggles: map[filter.Toggle]bool{filter.FilterByNode: true},
		Nodes:   []filter.Node{n},
	})
	include := e.InclusionPredicate()

	if !include(&row{leaf: grandchild}) {
		t.Error("grandchild of the selected node should be included")
	}
	if include(&row{leaf: sibling}) {
		t.Error("sibling of the selected node should be excluded")
	}
	if include(&row{}) {
		t.Error("row without a leaf should be excluded")
	}
}

func TestStringFilterEscaping(t *testing.T) {
	e := New()
	e.SetStringFilter("a(b)c")

	if got := e.Apply(fixture()); !slices.Equal(got, []int{0, 4}) {
		t.Errorf("Apply() = %v, want [0 4]", got)
	}
}

func TestIdempotentCriteria(t *testing.T) {
	c := filter.Criteria{
		Toggles:  map[filter.Toggle]bool{filter.ShowChannelIndependent: true, filter.LimitTracks: true},
		Channels: map[int64]bool{1: true},
		Tracks:   []int64{0, 1},
	}
	rows := fixture()

	e := New()
	e.SetSortable(0, true)
	e.ToggleSortOrder(0)
	e.SetFilterCriteria(c)
	first := e.Apply(rows)
	firstGroups := e.Inclusion().Groups()
	firstCmp := [2]int{e.Comparator()(rows[1], rows[3]), e.Comparator()(rows[3], rows[1])}

	e.SetFilterCriteria(c)
	second := e.Apply(rows)
	secondCmp := [2]int{e.Comparator()(rows[1], rows[3]), e.Comparator()(rows[3], rows[1])}
	if firstCmp != secondCmp {
		t.Errorf("comparator after reapplying = %v, want %v", secondCmp, firstCmp)
	}
	if firstCmp[0] <= 0 || firstCmp[1] >= 0 {
		t.Errorf("tick 30 should sort after tick 20, got %v", firstCmp)
	}

	if !slices.Equal(first, second) {
		t.Errorf("second Apply() = %v, want %v", second, first)
	}
	if got := e.Inclusion().Groups(); !slices.Equal(got, firstGroups) {
		t.Errorf("groups after reapplying = %v, want %v", got, firstGroups)
	}
}

func TestCriteriaAreCopied(t *testing.T) {
	c := filter.Criteria{
		Toggles: map[filter.Toggle]bool{filter.LimitTracks: true},
		Tracks:  []int64{1},
	}
	e := New()
	e.SetFilterCriteria(c)
	c.Tracks[0] = 0
	c.Toggles[filter.LimitTracks] = false

	if got := e.Apply(fixture()); !slices.Equal(got, []int{0, 3, 4}) {
		t.Errorf("Apply() = %v, want [0 3 4]; caller mutation leaked into the engine", got)
	}
	if got := e.Criteria(); !got.On(filter.LimitTracks) {
		t.Error("Criteria() lost the track toggle")
	}
}

func TestColumnComparator(t *testing.T) {
	e := New()
	e.SetSortable(2, true)
	e.SetColumnComparator(2, sorter.Collated(language.English))
	e.ToggleSortOrder(2)

	// a(b)c, Note Off, Note On, Tempo
	if got := e.Apply(fixture()); !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("Apply() = %v, want [4 3 2 1]", got)
	}

	cmp := e.Comparator()
	rows := fixture()
	if cmp(rows[1], rows[2]) <= 0 {
		t.Error("Comparator() should put Tempo after Note On")
	}
}

func TestNilColumnComparatorFallsBackToNumeric(t *testing.T) {
	e := New()
	e.SetSortable(1, true)
	e.SetColumnComparator(1, sorter.Directed(sorter.Numeric, sorter.Descending))
	e.SetColumnComparator(1, nil)
	e.ToggleSortOrder(1)

	// channel cells "", "0", "1", "2": the empty one is invalid and sorts first
	if got := e.Apply(fixture()); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("Apply() = %v, want [1 2 3 4]", got)
	}
}

func TestSetSortableFalseOnActiveColumnRestoresCategories(t *testing.T) {
	e := New()
	e.SetSortable(0, true)
	e.ToggleSortOrder(0)
	e.SetSortable(0, false)

	if !e.CategoriesShown() {
		t.Error("CategoriesShown() = false after the active column became unsortable")
	}
	if !e.Inclusion().PassThrough() {
		t.Errorf("inclusion = %s, want pass-through", e.Inclusion())
	}
}

func TestResetSortOrder(t *testing.T) {
	e := New()
	e.SetSortable(1, true)
	e.ToggleSortOrder(1)
	e.ResetSortOrder()

	if !e.CurrentSortState().IsNatural() {
		t.Errorf("CurrentSortState() = %v, want natural", e.CurrentSortState())
	}
}
