package main

import (
	"slices"
	"testing"

	"github.com/truj/midica-sub006/config"
)

func newSongState(t *testing.T) *dataState {
	t.Helper()
	return newDataState(loadSong(t), config.Default())
}

func TestDataStateDefaults(t *testing.T) {
	d := newSongState(t)

	want := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if !slices.Equal(d.filteredIndices, want) {
		t.Errorf("filteredIndices = %v, want %v", d.filteredIndices, want)
	}
	if d.tickMin != 0 || d.tickMax != 960 {
		t.Errorf("tick bounds = %d-%d", d.tickMin, d.tickMax)
	}
	if !slices.Equal(d.tracks, []int64{0, 1, 2}) {
		t.Errorf("tracks = %v", d.tracks)
	}
	if d.messageCount() != 5 {
		t.Errorf("messageCount() = %d, want 5", d.messageCount())
	}
	if len(d.settings.channels) != 16 {
		t.Errorf("channels = %d, want 16", len(d.settings.channels))
	}
}

func TestDataStateFilters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *dataState, s *filterSettings)
		want   []int
	}{
		{
			name:   "channel 0 off",
			mutate: func(_ *dataState, s *filterSettings) { s.channels[0] = false },
			want:   []int{idxCat0, idxTempo, idxCat1, idxCat2, idxKick},
		},
		{
			name:   "channel-independent off",
			mutate: func(_ *dataState, s *filterSettings) { s.channelIndependent = false },
			want:   []int{idxCat0, idxCat1, idxProgram, idxNoteOn, idxNoteOff, idxCat2, idxKick},
		},
		{
			name: "tick range",
			mutate: func(_ *dataState, s *filterSettings) {
				s.limitTicks = true
				s.tickFrom, s.tickTo = 240, 480
			},
			want: []int{idxCat0, idxCat1, idxNoteOn, idxCat2, idxKick},
		},
		{
			name: "tick range above the data",
			mutate: func(_ *dataState, s *filterSettings) {
				s.limitTicks = true
				s.tickFrom, s.tickTo = 1000, 2000
			},
			want: []int{idxCat0, idxCat1, idxCat2},
		},
		{
			name: "tracks",
			mutate: func(_ *dataState, s *filterSettings) {
				s.limitTracks = true
				s.tracks = []int64{0, 2}
			},
			want: []int{idxCat0, idxTempo, idxCat1, idxCat2, idxKick},
		},
		{
			name: "type node",
			mutate: func(d *dataState, s *filterSettings) {
				s.filterByNode = true
				s.nodes = []*typeNode{d.tree.find("Channel/Voice/Note On")}
			},
			want: []int{idxCat0, idxCat1, idxNoteOn, idxCat2, idxKick},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newSongState(t)
			s := d.settings.clone()
			tt.mutate(d, &s)
			d.applySettings(s)
			if !slices.Equal(d.filteredIndices, tt.want) {
				t.Errorf("filteredIndices = %v, want %v", d.filteredIndices, tt.want)
			}
		})
	}
}

func TestDataStateStringFilterKeepsCategories(t *testing.T) {
	d := newSongState(t)
	d.engine.SetStringFilter("note")
	d.apply()

	want := []int{idxCat0, idxCat1, idxNoteOn, idxNoteOff, idxCat2, idxKick}
	if !slices.Equal(d.filteredIndices, want) {
		t.Errorf("filteredIndices = %v, want %v", d.filteredIndices, want)
	}
	if got := d.visibleMessages(); got != 3 {
		t.Errorf("visibleMessages() = %d, want 3", got)
	}
}

func TestDataStateSortHidesCategories(t *testing.T) {
	d := newSongState(t)
	d.engine.ToggleSortOrder(colTick)
	d.apply()

	want := []int{idxTempo, idxProgram, idxKick, idxNoteOn, idxNoteOff}
	if !slices.Equal(d.filteredIndices, want) {
		t.Errorf("ascending = %v, want %v", d.filteredIndices, want)
	}

	d.engine.ToggleSortOrder(colTick)
	d.apply()
	want = []int{idxNoteOff, idxNoteOn, idxKick, idxTempo, idxProgram}
	if !slices.Equal(d.filteredIndices, want) {
		t.Errorf("descending = %v, want %v", d.filteredIndices, want)
	}

	d.engine.ToggleSortOrder(colTick)
	d.apply()
	if len(d.filteredIndices) != 8 {
		t.Errorf("natural order should show all 8 rows, got %v", d.filteredIndices)
	}
}

func TestDataStateSortsTextColumns(t *testing.T) {
	d := newSongState(t)
	d.engine.ToggleSortOrder(colSummary)
	d.apply()

	// C4, C4 vel 100, Kick, Piano, Tempo 120 bpm
	want := []int{idxNoteOff, idxNoteOn, idxKick, idxProgram, idxTempo}
	if !slices.Equal(d.filteredIndices, want) {
		t.Errorf("filteredIndices = %v, want %v", d.filteredIndices, want)
	}
}
