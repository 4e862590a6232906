package boxparse

import (
	"strings"

	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/geom"
	"github.com/vk/wiregrid/internal/grid"
)

// findBoxes locates the boxes whose top-left corner lies in the region, in
// three passes: bounds resolution for every candidate corner, overlap
// rejection between resolved candidates, then side-border validation of
// the survivors. Well-nested candidates are left for the recursive pass.
// The second return value lists the dead zones of malformed boxes; their
// cells are skipped rather than re-emitted as text.
func (p *Parser) findBoxes(g *grid.Grid, region geom.Bounds) ([]candidate, []geom.Bounds, []diag.Diagnostic) {
	var ds []diag.Diagnostic
	var dead []geom.Bounds

	type resolved struct {
		cand    candidate
		corner  geom.Position
		nested  bool
		dropped bool
	}
	var cands []resolved

	for _, corner := range g.FindInRange(grid.Corner, region) {
		if !looksLikeTopLeft(g, corner) {
			continue
		}
		if inAnyBounds(dead, corner) {
			continue
		}

		// A corner strictly inside an earlier candidate belongs either to
		// a nested box or to a partial overlap. It is resolved anyway so
		// the overlap pass can compare bounds, but its failures are
		// reported only when no candidate encloses it: the recursive pass
		// owns diagnostics for nested content.
		insideEarlier := false
		for i := range cands {
			if strictlyInside(cands[i].cand.bounds, corner) {
				insideEarlier = true
				break
			}
		}

		cand, dz, resDiags, ok := p.resolveBounds(g, corner, region)
		if !ok {
			if !insideEarlier {
				ds = append(ds, resDiags...)
				dead = append(dead, dz)
			}
			continue
		}

		nested := false
		for i := range cands {
			if cands[i].cand.bounds.StrictlyContains(cand.bounds) {
				nested = true
				break
			}
		}
		cands = append(cands, resolved{cand: cand, corner: corner, nested: nested})
	}

	// Overlap without strict containment is hard for both candidates:
	// either border may be the corrupted one, so neither region emits
	// elements.
	for i := range cands {
		if cands[i].nested {
			continue
		}
		for j := i + 1; j < len(cands); j++ {
			if cands[j].nested {
				continue
			}
			a, b := &cands[i], &cands[j]
			if !a.cand.bounds.Overlaps(b.cand.bounds) ||
				a.cand.bounds.StrictlyContains(b.cand.bounds) ||
				b.cand.bounds.StrictlyContains(a.cand.bounds) {
				continue
			}
			ds = append(ds, diag.OverlappingBoxes(a.cand.name, b.cand.name, b.corner))
			a.dropped, b.dropped = true, true
			dead = append(dead, a.cand.bounds, b.cand.bounds)
		}
	}

	var siblings []candidate
	for _, rc := range cands {
		if rc.nested || rc.dropped {
			continue
		}
		if sideDiags, ok := p.validateSides(g, rc.cand, region); !ok {
			ds = append(ds, sideDiags...)
			dead = append(dead, rc.cand.bounds)
			continue
		}
		siblings = append(siblings, rc.cand)
	}

	return siblings, dead, ds
}

// inAnyBounds reports whether the position falls inside any of the bounds,
// borders included.
func inAnyBounds(bs []geom.Bounds, p geom.Position) bool {
	for _, b := range bs {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// strictlyInside reports whether the position is inside the bounds without
// touching any border cell.
func strictlyInside(b geom.Bounds, p geom.Position) bool {
	return p.Row > b.Top && p.Row < b.Bottom && p.Col > b.Left && p.Col < b.Right
}

// looksLikeTopLeft filters corners that cannot start a box: a top-left
// corner has a horizontal border to its right and a vertical border below.
func looksLikeTopLeft(g *grid.Grid, corner geom.Position) bool {
	right, ok := g.Get(corner.Right(1))
	if !ok || right.Class != grid.HLine {
		return false
	}
	below, ok := g.Get(corner.Down(1))
	return ok && below.Class == grid.VLine
}

// resolveBounds walks the top border, the left vertical run and the bottom
// border of a box whose top-left corner is at the given position, yielding
// its bounds and optional embedded name. Failures here (no closing corner,
// mismatched widths, a stray bottom pipe) reject the candidate and return
// the dead zone its partial border occupies.
func (p *Parser) resolveBounds(g *grid.Grid, topLeft geom.Position, region geom.Bounds) (candidate, geom.Bounds, []diag.Diagnostic, bool) {
	deadZone := func(bottom, right int) geom.Bounds {
		if bottom > region.Bottom {
			bottom = region.Bottom
		}
		if right > region.Right {
			right = region.Right
		}
		dz, err := geom.NewBounds(topLeft.Row, topLeft.Col, bottom, right)
		if err != nil {
			return geom.Bounds{Top: topLeft.Row, Left: topLeft.Col, Bottom: topLeft.Row, Right: topLeft.Col}
		}
		return dz
	}

	rightCol, name, ok := p.scanTopBorder(g, topLeft, region)
	if !ok {
		return candidate{}, deadZone(topLeft.Row, region.Right),
			[]diag.Diagnostic{diag.UnclosedBox(topLeft, "right")}, false
	}
	topWidth := rightCol - topLeft.Col + 1

	// Locate the bottom border by following the left vertical run.
	run := g.ScanDown(topLeft.Down(1), func(c grid.Cell) bool { return c.Class == grid.VLine })
	bottomRow := topLeft.Row + 1 + len(run)
	cell, inGrid := g.Get(geom.Position{Row: bottomRow, Col: topLeft.Col})
	if !inGrid || bottomRow > region.Bottom || cell.Class != grid.Corner {
		if inGrid && bottomRow <= region.Bottom {
			if d, found := findStrayPipe(g, bottomRow, topLeft.Col, region); found {
				return candidate{}, deadZone(bottomRow, rightCol), []diag.Diagnostic{d}, false
			}
		}
		return candidate{}, deadZone(bottomRow-1, rightCol),
			[]diag.Diagnostic{diag.UnclosedBox(topLeft, "bottom")}, false
	}

	// The bottom border must close at the same column as the top.
	bottomLeft := geom.Position{Row: bottomRow, Col: topLeft.Col}
	hrun := g.ScanRight(bottomLeft.Right(1), func(c grid.Cell) bool { return c.Class == grid.HLine })
	bottomRightCol := topLeft.Col + 1 + len(hrun)
	cell, inGrid = g.Get(geom.Position{Row: bottomRow, Col: bottomRightCol})
	if !inGrid || cell.Class != grid.Corner {
		return candidate{}, deadZone(bottomRow, rightCol),
			[]diag.Diagnostic{diag.UnclosedBox(topLeft, "bottom")}, false
	}
	if bottomRightCol != rightCol {
		bottomWidth := bottomRightCol - topLeft.Col + 1
		wider := rightCol
		if bottomRightCol > wider {
			wider = bottomRightCol
		}
		return candidate{}, deadZone(bottomRow, wider),
			[]diag.Diagnostic{diag.MismatchedWidth(topLeft, topWidth, bottomWidth)}, false
	}

	bounds, err := geom.NewBounds(topLeft.Row, topLeft.Col, bottomRow, rightCol)
	if err != nil {
		return candidate{}, deadZone(bottomRow, rightCol), nil, false
	}
	return candidate{bounds: bounds, name: name}, geom.Bounds{}, nil, true
}

// validateSides checks that both side borders are vertical lines on every
// interior row.
func (p *Parser) validateSides(g *grid.Grid, c candidate, region geom.Bounds) ([]diag.Diagnostic, bool) {
	for r := c.bounds.Top + 1; r < c.bounds.Bottom; r++ {
		for _, col := range []int{c.bounds.Left, c.bounds.Right} {
			cell, _ := g.Get(geom.Position{Row: r, Col: col})
			if cell.Class == grid.VLine {
				continue
			}
			if d, found := findStrayPipe(g, r, col, region); found {
				return []diag.Diagnostic{d}, false
			}
			side := "left"
			if col == c.bounds.Right {
				side = "right"
			}
			return []diag.Diagnostic{diag.UnclosedBox(c.bounds.TopLeft(), side)}, false
		}
	}
	return nil, true
}

// scanTopBorder walks the top border from the corner to the matching
// top-right corner, extracting the optional embedded name (+--Name--+).
// The border may contain name characters and spaces inside the name, but
// must contain at least one horizontal line cell and no vertical bars.
func (p *Parser) scanTopBorder(g *grid.Grid, topLeft geom.Position, region geom.Bounds) (rightCol int, name string, ok bool) {
	sawHLine := false
	var label strings.Builder

	for col := topLeft.Col + 1; col <= region.Right; col++ {
		cell, inGrid := g.Get(geom.Position{Row: topLeft.Row, Col: col})
		if !inGrid {
			break
		}
		switch cell.Class {
		case grid.Corner:
			if !sawHLine {
				return 0, "", false
			}
			return col, strings.TrimSpace(strings.Trim(label.String(), "-")), true
		case grid.HLine:
			sawHLine = true
			label.WriteRune(cell.Rune)
		case grid.Char, grid.Space:
			label.WriteRune(cell.Rune)
		default:
			return 0, "", false
		}
	}
	return 0, "", false
}

// findStrayPipe looks near the expected border column for a vertical bar
// that drifted out of place. A hit means the border exists but is
// misaligned, which is a more precise report than an unclosed box.
func findStrayPipe(g *grid.Grid, row, expectedCol int, region geom.Bounds) (diag.Diagnostic, bool) {
	for _, offset := range []int{-1, 1, -2, 2} {
		col := expectedCol + offset
		if col < region.Left || col > region.Right {
			continue
		}
		cell, ok := g.Get(geom.Position{Row: row, Col: col})
		if ok && cell.Class == grid.VLine {
			pos := geom.Position{Row: row, Col: col}
			return diag.MisalignedPipe(pos, expectedCol, col), true
		}
	}
	return diag.Diagnostic{}, false
}
