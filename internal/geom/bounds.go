package geom

import "fmt"

// Bounds is an inclusive rectangle in grid coordinates. Both corners are part
// of the rectangle, so a single cell has equal top/bottom and left/right.
type Bounds struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// NewBounds constructs a Bounds value, enforcing top <= bottom and
// left <= right. Degenerate rectangles are a construction error, never a
// silently clamped value.
func NewBounds(top, left, bottom, right int) (Bounds, error) {
	if top > bottom {
		return Bounds{}, fmt.Errorf("invalid bounds: top %d is below bottom %d", top, bottom)
	}
	if left > right {
		return Bounds{}, fmt.Errorf("invalid bounds: left %d is right of right %d", left, right)
	}
	return Bounds{Top: top, Left: left, Bottom: bottom, Right: right}, nil
}

// Width is the number of columns the rectangle spans.
func (b Bounds) Width() int { return b.Right - b.Left + 1 }

// Height is the number of rows the rectangle spans.
func (b Bounds) Height() int { return b.Bottom - b.Top + 1 }

// Area is Width * Height.
func (b Bounds) Area() int { return b.Width() * b.Height() }

// Contains reports whether the position lies inside the rectangle, edges
// included.
func (b Bounds) Contains(p Position) bool {
	return p.Row >= b.Top && p.Row <= b.Bottom && p.Col >= b.Left && p.Col <= b.Right
}

// StrictlyContains reports whether b strictly surrounds inner: every edge of
// inner is inside b with no shared edges.
func (b Bounds) StrictlyContains(inner Bounds) bool {
	return b.Top < inner.Top && b.Left < inner.Left &&
		inner.Bottom < b.Bottom && inner.Right < b.Right
}

// Overlaps reports whether the rectangles' interiors intersect. The test
// is open-interval: rectangles that only touch along an edge or corner do
// not overlap, so boxes sharing a border row or column are legal siblings.
func (b Bounds) Overlaps(other Bounds) bool {
	return b.Left < other.Right && other.Left < b.Right &&
		b.Top < other.Bottom && other.Top < b.Bottom
}

// TopLeft returns the position of the upper-left corner.
func (b Bounds) TopLeft() Position { return Position{Row: b.Top, Col: b.Left} }

// String renders the bounds in [top,left..bottom,right] form for diagnostics.
func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d]", b.Top, b.Left, b.Bottom, b.Right)
}
