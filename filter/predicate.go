package filter

import (
	"regexp"
	"slices"
)

// Predicate is a pure test over one row.
type Predicate func(Row) bool

// StringMatch matches pattern as a literal, case-insensitive substring of
// Row.Text. The caller omits the predicate instead of passing "".
func StringMatch(pattern string) Predicate {
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
	return func(r Row) bool {
		return re.MatchString(r.Text())
	}
}

// Range is true when from <= field <= to. Rows without the field fail.
func Range(key string, from, to int64) Predicate {
	return func(r Row) bool {
		v, ok := r.Field(key)
		return ok && from <= v && v <= to
	}
}

// SetMembership is true when the field is present and in allowed.
func SetMembership(key string, allowed ...int64) Predicate {
	set := toSet(allowed)
	return func(r Row) bool {
		v, ok := r.Field(key)
		if !ok {
			return false
		}
		_, in := set[v]
		return in
	}
}

// AbsentOrMember is like SetMembership but also accepts rows where the field
// is unset, e.g. channel-independent messages.
func AbsentOrMember(key string, allowed ...int64) Predicate {
	set := toSet(allowed)
	return func(r Row) bool {
		v, ok := r.Field(key)
		if !ok {
			return true
		}
		_, in := set[v]
		return in
	}
}

// HierarchyMembership is true when the row's leaf equals or descends from
// one of selected. Rows without a leaf are excluded.
func HierarchyMembership(selected ...Node) Predicate {
	nodes := slices.Clone(selected)
	return func(r Row) bool {
		leaf := r.Leaf()
		if leaf == nil {
			return false
		}
		for _, n := range nodes {
			if IsDescendantOrSelf(leaf, n) {
				return true
			}
		}
		return false
	}
}

// NotCategory excludes summary rows.
func NotCategory(r Row) bool {
	return !r.IsCategory()
}

func toSet(values []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
