package engine

import (
	"strings"
	"testing"
)

func renderLines(t *testing.T, out string) []string {
	t.Helper()
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("Render() output should end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 33 {
		t.Fatalf("Render() has %d lines; want 33", len(lines))
	}
	for i, line := range lines {
		if len(line) != 41 {
			t.Errorf("line %d has %d columns; want 41: %q", i, len(line), line)
		}
	}
	return lines
}

func TestRender_InitialPosition(t *testing.T) {
	lines := renderLines(t, NewGame().Render())

	tests := []struct {
		line int
		want string
	}{
		{0, "+aaaa+bbbb+cccc+dddd+eeee+ffff+gggg+hhhh+"},
		{1, "8X  X|    |X  X|    |X  X|    |X  X|    8"},
		{2, "8 BR | BN | BB | BQ | BK | BB | BN | BR 8"},
		{3, "8X  X|    |X  X|    |X  X|    |X  X|    8"},
		{4, "+----+----+----+----+----+----+----+----+"},
		{6, "7 BP | BP | BP | BP | BP | BP | BP | BP 7"},
		{10, "6XXXX|    |XXXX|    |XXXX|    |XXXX|    6"},
		{14, "5    |XXXX|    |XXXX|    |XXXX|    |XXXX5"},
		{26, "2 WP | WP | WP | WP | WP | WP | WP | WP 2"},
		{30, "1 WR | WN | WB | WQ | WK | WB | WN | WR 1"},
		{31, "1    |X  X|    |X  X|    |X  X|    |X  X1"},
		{32, "+aaaa+bbbb+cccc+dddd+eeee+ffff+gggg+hhhh+"},
	}

	for _, tt := range tests {
		if lines[tt.line] != tt.want {
			t.Errorf("line %d:\n got %q\nwant %q", tt.line, lines[tt.line], tt.want)
		}
	}
}

func TestRender_EmptyBoard(t *testing.T) {
	lines := renderLines(t, NewEmptyBoard().Render())

	if want := "8XXXX|    |XXXX|    |XXXX|    |XXXX|    8"; lines[2] != want {
		t.Errorf("rank 8 middle:\n got %q\nwant %q", lines[2], want)
	}
	if want := "1    |XXXX|    |XXXX|    |XXXX|    |XXXX1"; lines[30] != want {
		t.Errorf("rank 1 middle:\n got %q\nwant %q", lines[30], want)
	}
}

func TestRender_AfterMove(t *testing.T) {
	g := NewGame()
	playAll(t, g, "e2-e4")
	lines := renderLines(t, g.Render())

	if want := "4XXXX|    |XXXX|    | WP |    |XXXX|    4"; lines[18] != want {
		t.Errorf("rank 4 middle:\n got %q\nwant %q", lines[18], want)
	}
	if want := "2 WP | WP | WP | WP |XXXX| WP | WP | WP 2"; lines[26] != want {
		t.Errorf("rank 2 middle:\n got %q\nwant %q", lines[26], want)
	}
}
