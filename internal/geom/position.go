package geom

import "fmt"

// Position is a zero-indexed grid coordinate.
type Position struct {
	Row int
	Col int
}

// Shift returns a new Position translated by the given row and column deltas.
func (p Position) Shift(rows, cols int) Position {
	return Position{Row: p.Row + rows, Col: p.Col + cols}
}

// Down returns a new Position n rows below p.
func (p Position) Down(n int) Position { return p.Shift(n, 0) }

// Up returns a new Position n rows above p.
func (p Position) Up(n int) Position { return p.Shift(-n, 0) }

// Right returns a new Position n columns to the right of p.
func (p Position) Right(n int) Position { return p.Shift(0, n) }

// Left returns a new Position n columns to the left of p.
func (p Position) Left(n int) Position { return p.Shift(0, -n) }

// String renders the position in (row,col) form for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
