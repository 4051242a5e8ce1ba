// Package sorter owns the per-column sort cycle of a table view:
// natural -> ascending -> descending -> natural.
package sorter

import "fmt"

// Direction is the sort direction of the active column.
type Direction int

const (
	Natural Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "natural"
	}
}

// NoColumn is the column of the natural state.
const NoColumn = -1

// State is the active column and its direction. Natural has no column.
type State struct {
	Column    int
	Direction Direction
}

// NaturalState is the initial state.
var NaturalState = State{Column: NoColumn, Direction: Natural}

// IsNatural reports whether rows are in their underlying order.
func (s State) IsNatural() bool {
	return s.Direction == Natural
}

func (s State) String() string {
	if s.IsNatural() {
		return "natural"
	}
	return fmt.Sprintf("%s(%d)", s.Direction, s.Column)
}

// Next returns the state after the user activates column col.
func (s State) Next(col int) State {
	switch {
	case s.IsNatural(), s.Column != col:
		return State{Column: col, Direction: Ascending}
	case s.Direction == Ascending:
		return State{Column: col, Direction: Descending}
	default:
		return NaturalState
	}
}

// Cycle tracks the sort state and which columns take part in it.
type Cycle struct {
	state    State
	sortable map[int]bool
}

// NewCycle returns a cycle in the natural state with no sortable columns.
func NewCycle() *Cycle {
	return &Cycle{state: NaturalState, sortable: make(map[int]bool)}
}

// SetSortable marks col as sortable or not. Making the active column
// unsortable resets the cycle.
func (c *Cycle) SetSortable(col int, sortable bool) {
	c.sortable[col] = sortable
	if !sortable && c.state.Column == col {
		c.state = NaturalState
	}
}

// IsSortable reports whether col takes part in the cycle.
func (c *Cycle) IsSortable(col int) bool {
	return c.sortable[col]
}

// State returns the current state.
func (c *Cycle) State() State {
	return c.state
}

// Toggle advances the cycle for col. Unsortable columns leave the state
// unchanged and report false.
func (c *Cycle) Toggle(col int) (State, bool) {
	if !c.sortable[col] {
		return c.state, false
	}
	c.state = c.state.Next(col)
	return c.state, true
}

// Reset returns to the natural state.
func (c *Cycle) Reset() {
	c.state = NaturalState
}
