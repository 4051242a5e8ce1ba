package filter

import (
	"maps"
	"slices"
)

// Toggle names a boolean switch in Criteria.
type Toggle string

// Toggles understood by the composer.
const (
	ShowChannelIndependent Toggle = "show_channel_independent"
	LimitTicks             Toggle = "limit_ticks"
	LimitTracks            Toggle = "limit_tracks"
	FilterByNode           Toggle = "filter_by_node"
)

// Criteria is a snapshot of every filter input except the free text.
// It is replaced as a whole; the composer never sees a partial update.
type Criteria struct {
	Toggles map[Toggle]bool
	// Channels enables individual channels. A nil map means the view has no
	// channel dimension at all; an empty or all-false map hides every row
	// that needs a channel match.
	Channels map[int64]bool
	TickFrom int64
	TickTo   int64
	Nodes    []Node
	Tracks   []int64
}

// On reports whether toggle t is set. Unknown toggles are off.
func (c *Criteria) On(t Toggle) bool {
	if c == nil {
		return false
	}
	return c.Toggles[t]
}

// EnabledChannels returns the enabled channels in ascending order.
func (c *Criteria) EnabledChannels() []int64 {
	if c == nil {
		return nil
	}
	var out []int64
	for ch, on := range c.Channels {
		if on {
			out = append(out, ch)
		}
	}
	slices.Sort(out)
	return out
}

// Clone returns a deep copy so later changes by the caller are not observed.
func (c *Criteria) Clone() *Criteria {
	if c == nil {
		return nil
	}
	return &Criteria{
		Toggles:  maps.Clone(c.Toggles),
		Channels: maps.Clone(c.Channels),
		TickFrom: c.TickFrom,
		TickTo:   c.TickTo,
		Nodes:    slices.Clone(c.Nodes),
		Tracks:   slices.Clone(c.Tracks),
	}
}
