// Package term draws rendered trees onto a character grid for terminal
// preview.
package term

import (
	"math"
	"strings"
	"time"

	"github.com/matzehuels/treeview/pkg/render"
)

// Glyphs used on the grid.
const (
	NodeRune = '●'
	blank    = ' '
)

// Canvas is a [render.Surface] that records glyphs and rasterises them onto a
// cols×rows grid on demand. Pixel space is taken from the background size.
type Canvas struct {
	cols, rows int
	scene      *render.Scene
}

// New returns an empty canvas of the given grid size.
func New(cols, rows int) *Canvas {
	return &Canvas{cols: max(cols, 1), rows: max(rows, 1), scene: render.NewScene()}
}

func (c *Canvas) DrawBackground(b render.Background) { c.scene.DrawBackground(b) }
func (c *Canvas) Translate(dx, dy float64)           { c.scene.Translate(dx, dy) }
func (c *Canvas) DrawLine(l render.Line)             { c.scene.DrawLine(l) }
func (c *Canvas) DrawCircle(ci render.Circle)        { c.scene.DrawCircle(ci) }
func (c *Canvas) DrawText(t render.Text)             { c.scene.DrawText(t) }

// Resize changes the grid size; recorded glyphs are kept.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 1), max(rows, 1)
}

// Size returns the grid size.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Duration returns the longest edge tween, i.e. when the animation settles.
func (c *Canvas) Duration() time.Duration {
	var d time.Duration
	for _, l := range c.scene.Lines {
		d = max(d, l.Tween.Duration)
	}
	return d
}

// Frame rasterises the drawing at elapsed time into newline-separated rows.
// Edges are drawn at their tween position, then nodes, then labels.
func (c *Canvas) Frame(elapsed time.Duration) string {
	w, h := c.scene.Size()
	if w <= 0 || h <= 0 {
		return ""
	}
	g := newGrid(c.cols, c.rows, float64(c.cols-1)/w, float64(c.rows-1)/h, c.scene.Offset)

	for _, l := range c.scene.Lines {
		end := l.At(elapsed)
		g.line(l.X1, l.Y1, end.X, end.Y)
	}
	for _, ci := range c.scene.Circles {
		col, row := g.cell(ci.CX, ci.CY)
		g.set(col, row, NodeRune)
		g.lock(col, row)
	}
	for i, t := range c.scene.Texts {
		col, row := g.cell(t.X, t.Y+t.DY)
		if i < len(c.scene.Circles) {
			// keep the label off the node cell on coarse grids
			_, nodeRow := g.cell(c.scene.Circles[i].CX, c.scene.Circles[i].CY)
			if row >= nodeRow && t.DY < 0 {
				row = nodeRow - 1
			}
			if row < 0 {
				row = nodeRow + 1
			}
		}
		g.text(col, row, t.Content, t.Anchor)
	}
	return g.String()
}

type grid struct {
	cells  [][]rune
	locked map[[2]int]bool
	sx, sy float64
	offset render.Point
}

func newGrid(cols, rows int, sx, sy float64, offset render.Point) *grid {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(string(blank), cols))
	}
	return &grid{cells: cells, locked: make(map[[2]int]bool), sx: sx, sy: sy, offset: offset}
}

func (g *grid) cell(x, y float64) (col, row int) {
	return int(math.Round((x + g.offset.X) * g.sx)), int(math.Round((y + g.offset.Y) * g.sy))
}

func (g *grid) lock(col, row int) { g.locked[[2]int{col, row}] = true }

func (g *grid) set(col, row int, r rune) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return
	}
	g.cells[row][col] = r
}

// line plots a segment with a DDA walk, picking a rune from its slope.
func (g *grid) line(x1, y1, x2, y2 float64) {
	c1, r1 := g.cell(x1, y1)
	c2, r2 := g.cell(x2, y2)
	dc, dr := c2-c1, r2-r1
	steps := max(abs(dc), abs(dr))
	if steps == 0 {
		return
	}
	r := slopeRune(float64(dc), float64(dr))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := c1 + int(math.Round(t*float64(dc)))
		row := r1 + int(math.Round(t*float64(dr)))
		g.set(col, row, r)
	}
}

func slopeRune(dc, dr float64) rune {
	switch {
	case dr == 0:
		return '─'
	case dc == 0 || math.Abs(dr/dc) > 2:
		return '│'
	case math.Abs(dr/dc) < 0.5:
		return '─'
	case (dc > 0) == (dr > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (g *grid) text(col, row int, s, anchor string) {
	runes := []rune(s)
	switch anchor {
	case "end":
		col -= len(runes)
	case "start":
	default:
		col -= len(runes) / 2
	}
	// Labels never overwrite nodes or earlier labels.
	for i, r := range runes {
		if g.locked[[2]int{col + i, row}] {
			continue
		}
		g.set(col+i, row, r)
		g.lock(col+i, row)
	}
}

func (g *grid) String() string {
	rows := make([]string, len(g.cells))
	for i, r := range g.cells {
		rows[i] = strings.TrimRight(string(r), string(blank))
	}
	return strings.Join(rows, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ render.Surface = (*Canvas)(nil)
