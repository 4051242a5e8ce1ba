// Package sortable wraps table cells that are logically numeric but may
// arrive as text, so they can be ordered by number instead of by string.
package sortable

import (
	"math"
	"strconv"
	"strings"
)

// Invalid is the ordinal given to values that are not integers. It sorts
// before every valid number.
const Invalid int64 = -1

// Value is a cell value with one display string and one ordinal.
// The ordinal is only used for comparison, never for display.
type Value struct {
	display string
	ordinal int64
}

// New wraps v. Integers keep their value (unsigned ones saturate at
// MaxInt64), integer text keeps its original spelling for display, and
// anything else degrades to Invalid with an empty display string.
func New(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case int:
		return fromInt(int64(x))
	case int8:
		return fromInt(int64(x))
	case int16:
		return fromInt(int64(x))
	case int32:
		return fromInt(int64(x))
	case int64:
		return fromInt(x)
	case uint8:
		return fromInt(int64(x))
	case uint16:
		return fromInt(int64(x))
	case uint32:
		return fromInt(int64(x))
	case uint:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	case uintptr:
		return fromUint(uint64(x))
	case string:
		return fromText(x)
	case []byte:
		return fromText(string(x))
	default:
		return Value{ordinal: Invalid}
	}
}

func fromInt(n int64) Value {
	return Value{display: strconv.FormatInt(n, 10), ordinal: n}
}

// fromUint keeps the exact display. Ordinals above MaxInt64 saturate, so
// such values tie with each other but still sort after every int64.
func fromUint(n uint64) Value {
	return Value{display: strconv.FormatUint(n, 10), ordinal: int64(min(n, math.MaxInt64))}
}

func fromText(s string) Value {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return Value{ordinal: Invalid}
	}
	return Value{display: s, ordinal: n}
}

// Ordinal returns the comparison key.
func (v Value) Ordinal() int64 { return v.ordinal }

// String returns the display form.
func (v Value) String() string { return v.display }

// Compare orders by ordinal: -1 if v sorts before o, 1 if after, 0 on ties.
func (v Value) Compare(o Value) int {
	switch {
	case v.ordinal < o.ordinal:
		return -1
	case v.ordinal > o.ordinal:
		return 1
	default:
		return 0
	}
}

// Compare wraps a and b and compares their ordinals.
func Compare(a, b any) int {
	return New(a).Compare(New(b))
}
