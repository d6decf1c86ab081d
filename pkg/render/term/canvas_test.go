package term

import (
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/tree"
)

func draw(t *testing.T, cols, rows int) *Canvas {
	t.Helper()
	c := New(cols, rows)
	root := tree.New("root", tree.New("A"), tree.New("B"))
	if err := render.Render(root, c, render.DefaultConfig()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return c
}

func runeAt(frame string, col, row int) rune {
	lines := strings.Split(frame, "\n")
	if row >= len(lines) {
		return blank
	}
	r := []rune(lines[row])
	if col >= len(r) {
		return blank
	}
	return r[col]
}

func TestFrameNodesAndLabels(t *testing.T) {
	c := draw(t, 81, 61)
	frame := c.Frame(time.Second)

	// 0.1 cells per pixel: root (400, 50), A (225, 550), B (575, 550).
	nodes := []struct{ col, row int }{{40, 5}, {23, 55}, {58, 55}}
	for _, n := range nodes {
		if got := runeAt(frame, n.col, n.row); got != NodeRune {
			t.Errorf("cell (%d, %d) = %q, want node", n.col, n.row, got)
		}
	}

	lines := strings.Split(frame, "\n")
	if len(lines) != 61 {
		t.Fatalf("rows = %d, want 61", len(lines))
	}
	if !strings.Contains(lines[2], "root") {
		t.Errorf("row 2 = %q, want root label", lines[2])
	}
	if !strings.Contains(lines[52], "A") || !strings.Contains(lines[52], "B") {
		t.Errorf("row 52 = %q, want A and B labels", lines[52])
	}
}

func TestFrameEdgeTween(t *testing.T) {
	c := draw(t, 81, 61)

	if got := c.Duration(); got != time.Second {
		t.Errorf("Duration() = %v, want 1s", got)
	}

	start := c.Frame(0)
	if strings.ContainsAny(start, "│─╱╲") {
		t.Errorf("edges visible at t=0:\n%s", start)
	}

	end := c.Frame(time.Second)
	if !strings.ContainsRune(end, '│') {
		t.Errorf("edges missing at t=1s:\n%s", end)
	}

	half := c.Frame(500 * time.Millisecond)
	// The half-drawn edge root→A stops near row 30.
	if strings.Count(half, "│") >= strings.Count(end, "│") {
		t.Error("half frame draws as much edge as the final frame")
	}
}

func TestFrameCoarseGrid(t *testing.T) {
	c := draw(t, 9, 3)
	frame := c.Frame(time.Second)
	if !strings.ContainsRune(frame, NodeRune) {
		t.Errorf("no nodes on coarse grid:\n%s", frame)
	}
	if !strings.Contains(frame, "root") {
		t.Errorf("root label hidden on coarse grid:\n%s", frame)
	}
}

func TestFrameEmpty(t *testing.T) {
	if got := New(10, 10).Frame(0); got != "" {
		t.Errorf("Frame() on empty canvas = %q, want empty", got)
	}
}

func TestResize(t *testing.T) {
	c := draw(t, 81, 61)
	c.Resize(41, 31)
	if cols, rows := c.Size(); cols != 41 || rows != 31 {
		t.Errorf("Size() = %dx%d, want 41x31", cols, rows)
	}
	if got := len(strings.Split(c.Frame(time.Second), "\n")); got != 31 {
		t.Errorf("rows after resize = %d, want 31", got)
	}
	c.Resize(0, -1)
	if cols, rows := c.Size(); cols != 1 || rows != 1 {
		t.Errorf("Size() = %dx%d, want 1x1", cols, rows)
	}
}

func TestSlopeRune(t *testing.T) {
	tests := []struct {
		dc, dr float64
		want   rune
	}{
		{5, 0, '─'},
		{0, 5, '│'},
		{1, 5, '│'},
		{5, 1, '─'},
		{3, 3, '╲'},
		{-3, 3, '╱'},
	}
	for _, tt := range tests {
		if got := slopeRune(tt.dc, tt.dr); got != tt.want {
			t.Errorf("slopeRune(%v, %v) = %q, want %q", tt.dc, tt.dr, got, tt.want)
		}
	}
}
