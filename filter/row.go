// Package filter builds the per-row inclusion decision for a categorized
// table view.
//
// A view exposes its rows through [Row] and its hierarchy through [Node].
// Independent tests over a row ([Predicate]) are grouped by filter dimension;
// the [Composer] ORs the members of a group and ANDs the groups together,
// with category rows exempted while the view is in natural order.
//
//	c := filter.NewComposer(filter.DefaultFields)
//	in := c.Compose(criteria, "note on", filter.CategoriesShown)
//	if in.Include(row) { ... }
package filter

// Field keys understood by the default catalogue.
const (
	FieldChannel = "channel"
	FieldTick    = "tick"
	FieldTrack   = "track"
)

// Row is the accessor contract the filter needs from a table row.
type Row interface {
	// IsCategory reports whether the row is a summary/grouping row.
	// Category rows hold no field values.
	IsCategory() bool
	// Field returns the numeric value stored under key, or false if absent.
	Field(key string) (int64, bool)
	// Leaf returns the hierarchy node the row belongs to, or nil.
	Leaf() Node
	// Text returns the row's visible values joined for string matching.
	Text() string
}

// Node is a read-only hierarchy node. Parent returns nil at the root.
type Node interface {
	Parent() Node
}

// IsDescendantOrSelf walks node's chain up to the root looking for ancestor.
func IsDescendantOrSelf(node, ancestor Node) bool {
	if ancestor == nil {
		return false
	}
	for n := node; n != nil; n = n.Parent() {
		if n == ancestor {
			return true
		}
	}
	return false
}
