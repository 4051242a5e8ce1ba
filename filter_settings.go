package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/truj/midica-sub006/filter"
)

var errEmptyInput = errors.New("empty input")

const maxTrackSpan = 1 << 12

// filterSettings is the user-facing state of the filter panel and the
// range, track and node commands. It is turned into filter.Criteria as a
// whole whenever it is applied.
type filterSettings struct {
	channels           []bool
	channelIndependent bool

	limitTicks bool
	tickFrom   int64
	tickTo     int64

	limitTracks bool
	tracks      []int64

	filterByNode bool
	nodes        []*typeNode
}

// newFilterSettings shows everything: all channels, channel-independent
// messages and the full tick range.
func newFilterSettings(channels int, tickMin, tickMax int64) filterSettings {
	s := filterSettings{
		channels:           make([]bool, channels),
		channelIndependent: true,
		tickFrom:           tickMin,
		tickTo:             tickMax,
	}
	for i := range s.channels {
		s.channels[i] = true
	}
	return s
}

func (s filterSettings) clone() filterSettings {
	s.channels = slices.Clone(s.channels)
	s.tracks = slices.Clone(s.tracks)
	s.nodes = slices.Clone(s.nodes)
	return s
}

func (s filterSettings) toCriteria() filter.Criteria {
	c := filter.Criteria{
		Toggles: map[filter.Toggle]bool{
			filter.ShowChannelIndependent: s.channelIndependent,
			filter.LimitTicks:             s.limitTicks,
			filter.LimitTracks:            s.limitTracks,
			filter.FilterByNode:           s.filterByNode,
		},
		TickFrom: s.tickFrom,
		TickTo:   s.tickTo,
		Tracks:   slices.Clone(s.tracks),
	}
	// with every channel shown the channel dimension is left out
	if !s.allChannels() {
		c.Channels = make(map[int64]bool, len(s.channels))
		for ch, on := range s.channels {
			c.Channels[int64(ch)] = on
		}
	}
	for _, n := range s.nodes {
		c.Nodes = append(c.Nodes, n)
	}
	return c
}

// allChannels reports whether every channel and channel-independent
// messages are enabled.
func (s filterSettings) allChannels() bool {
	return s.channelIndependent && !slices.Contains(s.channels, false)
}

// isDefault reports whether s hides nothing.
func (s filterSettings) isDefault() bool {
	return s.allChannels() && !s.limitTicks && !s.limitTracks && !s.filterByNode
}

// label is a short description for the footer.
func (s filterSettings) label() string {
	if s.isDefault() {
		return ""
	}
	var parts []string
	enabled := 0
	for _, on := range s.channels {
		if on {
			enabled++
		}
	}
	if enabled != len(s.channels) || !s.channelIndependent {
		parts = append(parts, fmt.Sprintf("ch %d/%d", enabled, len(s.channels)))
	}
	if s.limitTicks {
		parts = append(parts, fmt.Sprintf("ticks %d-%d", s.tickFrom, s.tickTo))
	}
	if s.limitTracks {
		parts = append(parts, "tracks "+joinInts(s.tracks))
	}
	if s.filterByNode {
		for _, n := range s.nodes {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " ")
}

func joinInts(values []int64) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(out, ",")
}

// tickBounds returns the smallest and largest tick of all messages.
func tickBounds(rows []*messageRow) (int64, int64) {
	var lo, hi int64
	seen := false
	for _, r := range rows {
		if r.category {
			continue
		}
		if !seen {
			lo, hi = r.tick, r.tick
			seen = true
			continue
		}
		lo = min(lo, r.tick)
		hi = max(hi, r.tick)
	}
	return lo, hi
}

// parseTickRange reads "from-to". Either side may be left out and then
// defaults to the matching bound. Explicit values are kept as typed, so a
// range outside [lo, hi] matches nothing.
func parseTickRange(s string, lo, hi int64) (int64, int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, errEmptyInput
	}
	fromStr, toStr, found := strings.Cut(s, "-")
	if !found {
		toStr = fromStr
	}

	from, to := lo, hi
	var err error
	if f := strings.TrimSpace(fromStr); f != "" {
		if from, err = strconv.ParseInt(f, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("invalid start tick %q", f)
		}
	}
	if t := strings.TrimSpace(toStr); t != "" {
		if to, err = strconv.ParseInt(t, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("invalid end tick %q", t)
		}
	}
	if from > to {
		return 0, 0, fmt.Errorf("start %d is after end %d", from, to)
	}
	return from, to, nil
}

// parseTrackList reads a comma separated list of tracks. Inclusive spans
// such as "2-4" are expanded. Duplicates are dropped and the result sorted.
func parseTrackList(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyInput
	}
	var tracks []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fromStr, toStr, isSpan := strings.Cut(part, "-")
		from, err := strconv.ParseInt(strings.TrimSpace(fromStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid track %q", part)
		}
		to := from
		if isSpan {
			if to, err = strconv.ParseInt(strings.TrimSpace(toStr), 10, 64); err != nil || to < from || to-from > maxTrackSpan {
				return nil, fmt.Errorf("invalid track span %q", part)
			}
		}
		// to may be MaxInt64
		for i := int64(0); i <= to-from; i++ {
			tracks = append(tracks, from+i)
		}
	}
	if len(tracks) == 0 {
		return nil, errEmptyInput
	}
	slices.Sort(tracks)
	return slices.Compact(tracks), nil
}
