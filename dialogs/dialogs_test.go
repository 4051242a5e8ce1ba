package dialogs

import (
	"path/filepath"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		placeholder string
		lastDir     string
		want        string
	}{
		{"bare name goes to last dir", "out.json", "", "/data", filepath.Join("/data", "out.json")},
		{"blank uses placeholder", "  ", "song.json", "/data", filepath.Join("/data", "song.json")},
		{"absolute kept", "/tmp/out.csv", "", "/data", "/tmp/out.csv"},
		{"relative dir kept", "sub/out.csv", "", "/data", "sub/out.csv"},
		{"no last dir", "out.csv", "", "", "out.csv"},
		{"nothing", "", "", "/data", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePath(tt.value, tt.placeholder, tt.lastDir); got != tt.want {
				t.Errorf("resolvePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSaveDialogConfirm(t *testing.T) {
	d := NewSaveDialog("song.json", "/data")

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should return a command")
	}
	msg, ok := cmd().(SaveConfirmedMsg)
	if !ok {
		t.Fatalf("got %T, want SaveConfirmedMsg", cmd())
	}
	if want := filepath.Join("/data", "song.json"); msg.Path != want {
		t.Errorf("Path = %q, want %q", msg.Path, want)
	}
}

func TestExportDialogCancel(t *testing.T) {
	d := NewExportDialog("song-visible.csv", "/data")

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(ExportCanceledMsg); !ok {
		t.Errorf("got %T, want ExportCanceledMsg", cmd())
	}
}

func TestFiltersDialog(t *testing.T) {
	items := []FilterItem{
		{Label: "Channel 0", On: true},
		{Label: "Channel 1", On: false},
		{Label: "Limit ticks", Hint: "0-960", On: false},
	}
	d := NewFiltersDialog("Filters", "", items)

	d.Update(runes("j"))
	d.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := d.Checked(); !slices.Equal(got, []bool{true, true, false}) {
		t.Fatalf("after toggle = %v", got)
	}
	if items[1].On {
		t.Error("dialog must not change the caller's items")
	}

	d.Update(runes("a"))
	if got := d.Checked(); !slices.Equal(got, []bool{true, true, true}) {
		t.Fatalf("after toggle all = %v", got)
	}
	d.Update(runes("a"))
	if got := d.Checked(); !slices.Equal(got, []bool{false, false, false}) {
		t.Fatalf("after second toggle all = %v", got)
	}

	d.Update(runes("x"))
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(FiltersAppliedMsg)
	if !ok {
		t.Fatalf("got %T, want FiltersAppliedMsg", cmd())
	}
	if !slices.Equal(msg.Checked, []bool{false, true, false}) {
		t.Errorf("Checked = %v", msg.Checked)
	}
}

func TestFiltersDialogCursorBounds(t *testing.T) {
	d := NewFiltersDialog("Filters", "", []FilterItem{{Label: "a"}, {Label: "b"}})

	d.Update(runes("k"))
	d.Update(runes("j"))
	d.Update(runes("j"))
	d.Update(runes("j"))
	if d.cursor != 1 {
		t.Errorf("cursor = %d, want 1", d.cursor)
	}

	_, cmd := d.Update(runes("q"))
	if _, ok := cmd().(FiltersCanceledMsg); !ok {
		t.Errorf("got %T, want FiltersCanceledMsg", cmd())
	}
}

func TestHelpDialogCloses(t *testing.T) {
	d := NewHelpDialog(nil)
	d.Update(runes("x"))
	if !d.IsVisible() {
		t.Fatal("unrelated keys keep the help open")
	}
	d.Update(runes("?"))
	if d.IsVisible() {
		t.Error("? should close the help")
	}
}
