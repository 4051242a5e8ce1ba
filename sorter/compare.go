package sorter

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/truj/midica-sub006/sortable"
)

// CompareFunc orders two cell values.
type CompareFunc func(a, b any) int

// Numeric orders cells by their sortable ordinal, so "abc" sorts before 3.
func Numeric(a, b any) int {
	return sortable.Compare(a, b)
}

// Collated orders cells as text using the collation rules of tag,
// ignoring case. The returned func is not safe for concurrent use.
func Collated(tag language.Tag) CompareFunc {
	c := collate.New(tag, collate.IgnoreCase)
	return func(a, b any) int {
		return c.CompareString(text(a), text(b))
	}
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Directed applies dir to cmp. Natural order is not handled here.
func Directed(cmp CompareFunc, dir Direction) CompareFunc {
	if dir == Descending {
		return func(a, b any) int { return cmp(b, a) }
	}
	return cmp
}
