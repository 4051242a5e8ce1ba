package main

import (
	"fmt"

	"github.com/truj/midica-sub006/dialogs"
)

// The filter panel lists one checkbox per channel followed by these
// switches, in this order.
const (
	panelChannelIndependent = iota
	panelLimitTicks
	panelLimitTracks
	panelFilterByNode
	panelSwitchCount
)

const panelDescription = "Messages without a channel are channel-independent. " +
	"The tick, track and type limits use the values last entered with r, t and n."

func panelItems(s filterSettings) []dialogs.FilterItem {
	items := make([]dialogs.FilterItem, 0, len(s.channels)+panelSwitchCount)
	for ch, on := range s.channels {
		items = append(items, dialogs.FilterItem{Label: fmt.Sprintf("Channel %d", ch), On: on})
	}

	tracksHint := "set with t"
	if len(s.tracks) > 0 {
		tracksHint = joinInts(s.tracks)
	}
	nodeHint := "set with n"
	if len(s.nodes) > 0 {
		nodeHint = s.nodes[0].path()
	}
	items = append(items,
		dialogs.FilterItem{Label: "Channel-independent messages", On: s.channelIndependent},
		dialogs.FilterItem{Label: "Limit ticks", Hint: fmt.Sprintf("%d-%d", s.tickFrom, s.tickTo), On: s.limitTicks},
		dialogs.FilterItem{Label: "Limit tracks", Hint: tracksHint, On: s.limitTracks},
		dialogs.FilterItem{Label: "Filter by type", Hint: nodeHint, On: s.filterByNode},
	)
	return items
}

// settingsFromPanel returns a copy of s with the checkbox states applied.
func settingsFromPanel(s filterSettings, checked []bool) filterSettings {
	out := s.clone()
	n := len(out.channels)
	if len(checked) != n+panelSwitchCount {
		return out
	}
	copy(out.channels, checked[:n])
	sw := checked[n:]
	out.channelIndependent = sw[panelChannelIndependent]
	out.limitTicks = sw[panelLimitTicks]
	out.limitTracks = sw[panelLimitTracks]
	out.filterByNode = sw[panelFilterByNode]
	return out
}

func (m *model) openFilterPanel() {
	title := fmt.Sprintf("Filters (%d channels)", len(m.data.settings.channels))
	m.openDialog(dialogs.NewFiltersDialog(title, panelDescription, panelItems(m.data.settings)))
}
