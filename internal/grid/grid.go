package grid

import (
	"strings"

	"github.com/vk/wiregrid/internal/geom"
)

// Class is the structural classification of a single grid cell.
type Class int

const (
	Space Class = iota
	Corner
	HLine
	VLine
	Divider
	Char
)

// String returns the class name for logging and test failure messages.
func (c Class) String() string {
	switch c {
	case Space:
		return "space"
	case Corner:
		return "corner"
	case HLine:
		return "hline"
	case VLine:
		return "vline"
	case Divider:
		return "divider"
	case Char:
		return "char"
	default:
		return "unknown"
	}
}

// Cell is one classified character of the matrix.
type Cell struct {
	Class Class
	Rune  rune
}

func classify(r rune) Class {
	switch r {
	case '+':
		return Corner
	case '-':
		return HLine
	case '|':
		return VLine
	case '=':
		return Divider
	case ' ':
		return Space
	default:
		return Char
	}
}

// Grid is a row-major matrix of classified cells with a per-class position
// index. Width is the longest input line; shorter lines are right-padded
// with spaces.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
	index  map[Class][]geom.Position
}

// FromLines builds a Grid from raw text lines. Tab characters are expanded
// to tabWidth spaces before classification; pass 0 to keep the default of 4.
func FromLines(lines []string, tabWidth int) *Grid {
	if tabWidth <= 0 {
		tabWidth = 4
	}

	rows := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		expanded := strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
		rows[i] = []rune(expanded)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}

	g := &Grid{
		width:  width,
		height: len(lines),
		cells:  make([][]Cell, len(lines)),
		index:  make(map[Class][]geom.Position),
	}

	for r, runes := range rows {
		row := make([]Cell, width)
		for c := 0; c < width; c++ {
			ch := ' '
			if c < len(runes) {
				ch = runes[c]
			}
			cell := Cell{Class: classify(ch), Rune: ch}
			row[c] = cell
			g.index[cell.Class] = append(g.index[cell.Class], geom.Position{Row: r, Col: c})
		}
		g.cells[r] = row
	}

	return g
}

// Width is the number of columns after padding.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// Get returns the cell at the position, or ok=false when out of bounds.
func (g *Grid) Get(p geom.Position) (Cell, bool) {
	if p.Row < 0 || p.Row >= g.height || p.Col < 0 || p.Col >= g.width {
		return Cell{}, false
	}
	return g.cells[p.Row][p.Col], true
}

// Line returns the full cell row, or ok=false when the row is out of bounds.
func (g *Grid) Line(row int) ([]Cell, bool) {
	if row < 0 || row >= g.height {
		return nil, false
	}
	out := make([]Cell, g.width)
	copy(out, g.cells[row])
	return out, true
}

// ScanRight returns the maximal contiguous run of cells starting at start
// for which pred holds, walking rightwards. The run stops at the first
// failing cell or the grid edge.
func (g *Grid) ScanRight(start geom.Position, pred func(Cell) bool) []Cell {
	var run []Cell
	for p := start; ; p = p.Right(1) {
		cell, ok := g.Get(p)
		if !ok || !pred(cell) {
			return run
		}
		run = append(run, cell)
	}
}

// ScanDown is ScanRight's vertical counterpart.
func (g *Grid) ScanDown(start geom.Position, pred func(Cell) bool) []Cell {
	var run []Cell
	for p := start; ; p = p.Down(1) {
		cell, ok := g.Get(p)
		if !ok || !pred(cell) {
			return run
		}
		run = append(run, cell)
	}
}

// FindAll returns every position holding a cell of the given class, in
// row-major (reading) order. The returned slice is a copy.
func (g *Grid) FindAll(class Class) []geom.Position {
	src := g.index[class]
	out := make([]geom.Position, len(src))
	copy(out, src)
	return out
}

// FindInRange filters FindAll to positions inside bounds, edges included.
func (g *Grid) FindInRange(class Class, bounds geom.Bounds) []geom.Position {
	var out []geom.Position
	for _, p := range g.index[class] {
		if bounds.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// Text returns the raw text of the cells between fromCol and toCol
// (inclusive) on the given row.
func (g *Grid) Text(row, fromCol, toCol int) string {
	var sb strings.Builder
	for c := fromCol; c <= toCol; c++ {
		cell, ok := g.Get(geom.Position{Row: row, Col: c})
		if !ok {
			break
		}
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String reconstructs the normalized (padded) text exactly. This round-trip
// is load-bearing: FromLines followed by String must reproduce the padded
// input joined by newlines.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	for r := 0; r < g.height; r++ {
		var sb strings.Builder
		for c := 0; c < g.width; c++ {
			sb.WriteRune(g.cells[r][c].Rune)
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}
