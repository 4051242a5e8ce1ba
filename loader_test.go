package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/truj/midica-sub006/config"
)

const songCSV = `tick,track,channel,status,length,type,summary
0,0,,FF 51,6,Meta/Set Tempo,Tempo 120 bpm
0,1,0,C0,2,Channel/Voice/Program Change,Piano
480,1,0,90,3,Channel/Voice/Note On,C4 vel 100
960,1,0,80,3,Channel/Voice/Note Off,C4
240,2,9,99,3,Channel/Voice/Note On,Kick
`

// Row positions of songCSV after loading.
const (
	idxCat0 = iota
	idxTempo
	idxCat1
	idxProgram
	idxNoteOn
	idxNoteOff
	idxCat2
	idxKick
)

func testInput() config.InputConfig {
	return config.Default().Input
}

func loadSong(t *testing.T) *messageTable {
	t.Helper()
	rows, err := readMessagesCSV(strings.NewReader(songCSV), testInput())
	if err != nil {
		t.Fatalf("readMessagesCSV() error = %v", err)
	}
	table, err := buildTable(rows)
	if err != nil {
		t.Fatalf("buildTable() error = %v", err)
	}
	return table
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestBuildTableGroupsByTrack(t *testing.T) {
	table := loadSong(t)

	if len(table.rows) != 8 {
		t.Fatalf("len(rows) = %d, want 8", len(table.rows))
	}
	for _, idx := range []int{idxCat0, idxCat1, idxCat2} {
		if !table.rows[idx].category {
			t.Errorf("row %d should be a category row", idx)
		}
	}
	if got := table.rows[idxCat1].label; got != "Track 1 (3 messages)" {
		t.Errorf("label = %q", got)
	}
	for i, r := range table.rows {
		if r.Index() != i {
			t.Errorf("row %d has Index() %d", i, r.Index())
		}
	}
	if table.rows[idxKick].cols[colSummary] != "Kick" {
		t.Errorf("row %d = %q, want Kick", idxKick, table.rows[idxKick].cols[colSummary])
	}
}

func TestReadMessagesCSVFields(t *testing.T) {
	table := loadSong(t)

	tempo := table.rows[idxTempo]
	if _, ok := tempo.Field("channel"); ok {
		t.Error("tempo message should be channel-independent")
	}
	if ch, ok := table.rows[idxKick].Field("channel"); !ok || ch != 9 {
		t.Errorf("kick channel = %d, %v; want 9, true", ch, ok)
	}
	if tick, _ := table.rows[idxNoteOff].Field("tick"); tick != 960 {
		t.Errorf("note off tick = %d, want 960", tick)
	}
	if _, ok := table.rows[idxCat0].Field("track"); ok {
		t.Error("category rows have no fields")
	}
	if got := table.rows[idxNoteOn].node.path(); got != "Channel/Voice/Note On" {
		t.Errorf("node path = %q", got)
	}
}

func TestReadMessagesCSVHeaderOrder(t *testing.T) {
	in := "\ufeffSummary;Type;Tick;Track;Channel\nHello;Meta/Text;12;3;\n"
	cfg := testInput()
	cfg.Delimiter = ";"

	rows, err := readMessagesCSV(strings.NewReader(in), cfg)
	if err != nil {
		t.Fatalf("readMessagesCSV() error = %v", err)
	}
	r := rows[0]
	if r.tick != 12 || r.track != 3 || r.hasChannel {
		t.Errorf("tick=%d track=%d hasChannel=%v", r.tick, r.track, r.hasChannel)
	}
	if r.cols[colSummary] != "Hello" || r.cols[colType] != "Meta/Text" {
		t.Errorf("cols = %q", r.cols)
	}
}

func TestReadMessagesCSVCharset(t *testing.T) {
	in := "tick,track,channel,status,length,type,summary\n0,0,,FF 03,4,Meta/Track Name,Caf\xe9\n"
	cfg := testInput()
	cfg.Charset = "windows-1252"

	rows, err := readMessagesCSV(strings.NewReader(in), cfg)
	if err != nil {
		t.Fatalf("readMessagesCSV() error = %v", err)
	}
	if got := rows[0].cols[colSummary]; got != "Café" {
		t.Errorf("summary = %q, want Café", got)
	}
}

func TestReadMessagesCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		charset string
		wantErr error
	}{
		{"header only", "tick,track\n", "utf-8", ErrEmptyTable},
		{"unknown charset", songCSV, "klingon-8", ErrUnknownCharset},
		{"bad tick", "tick,track\nx,1\n", "utf-8", nil},
		{"bad channel", "tick,track,channel\n1,1,ch1\n", "utf-8", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testInput()
			cfg.Charset = tt.charset
			_, err := readMessagesCSV(strings.NewReader(tt.in), cfg)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadTablesOffsetsTracks(t *testing.T) {
	a := writeFile(t, "a.csv", "tick,track,type,summary\n0,0,Meta/Text,a0\n5,1,Meta/Text,a1\n")
	b := writeFile(t, "b.csv", "tick,track,type,summary\n3,0,Meta/Text,b0\n")

	table, err := loadTables([]string{a, b}, testInput())
	if err != nil {
		t.Fatalf("loadTables() error = %v", err)
	}

	var tracks []int64
	for _, r := range table.rows {
		if r.category {
			tracks = append(tracks, r.track)
		}
	}
	if len(tracks) != 3 || tracks[0] != 0 || tracks[1] != 1 || tracks[2] != 2 {
		t.Fatalf("category tracks = %v, want [0 1 2]", tracks)
	}
	last := table.rows[len(table.rows)-1]
	if last.cols[colSummary] != "b0" || last.track != 2 || last.cols[colTrack] != "2" {
		t.Errorf("last row = %q track %d", last.cols, last.track)
	}
	if last.id != last.ComputeID() {
		t.Error("id not recomputed after track shift")
	}
	if table.tree.count != 3 {
		t.Errorf("tree count = %d, want 3", table.tree.count)
	}
}

func TestLoadTablesErrors(t *testing.T) {
	txt := writeFile(t, "song.txt", songCSV)
	if _, err := loadTables([]string{txt}, testInput()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.csv")
	if _, err := loadTables([]string{missing}, testInput()); err == nil {
		t.Error("loading a missing file should fail")
	}
}
