package tui

import (
	"strings"
	"testing"
)

func TestSpliceAt(t *testing.T) {
	bg := "aaaaaa\nbbbbbb\ncccccc"

	got := spliceAt(bg, "XX\nYY", 2, 1)
	want := "aaaaaa\nbbXXbb\nccYYcc"
	if got != want {
		t.Errorf("spliceAt = %q, want %q", got, want)
	}
}

func TestSpliceAtPadsShortBackground(t *testing.T) {
	got := spliceAt("ab\n\n", "XX", 4, 1)
	lines := strings.Split(got, "\n")
	if lines[1] != "    XX" {
		t.Errorf("line 1 = %q, want %q", lines[1], "    XX")
	}
}

func TestSpliceAtExtendsBackground(t *testing.T) {
	got := spliceAt("top", "XX", 0, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 || lines[2] != "XX" {
		t.Errorf("got lines %q, want block on appended row 2", lines)
	}
}

func TestSpliceAtPadsRaggedBlock(t *testing.T) {
	// Shorter block lines are padded to the block's width so the overlay
	// forms a solid rectangle.
	got := spliceAt("aaaaaa\nbbbbbb", "XXX\nY", 1, 0)
	want := "aXXXaa\nbY  bb"
	if got != want {
		t.Errorf("spliceAt = %q, want %q", got, want)
	}
}

func TestTruncateAnsiKeepsEscapes(t *testing.T) {
	in := "\x1b[31mred\x1b[0m plain"
	got := truncateAnsi(in, 3)
	if got != "\x1b[31mred" {
		t.Errorf("truncateAnsi = %q", got)
	}
}

func TestSkipAnsi(t *testing.T) {
	in := "\x1b[31mred\x1b[0m plain"
	got := skipAnsi(in, 4)
	if got != "plain" {
		t.Errorf("skipAnsi = %q, want %q", got, "plain")
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"\x1b[31mabc\x1b[0m", 3},
		{"日本", 2}, // one cell per rune in this model
	}
	for _, tt := range tests {
		if got := visibleWidth(tt.in); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
