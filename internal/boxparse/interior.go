package boxparse

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/geom"
	"github.com/vk/wiregrid/internal/grid"
)

// Segments on one row are separated by at least this many spaces.
const segmentGap = 2

// A gap this wide between neighbors on one row is reported as unusual.
const unusualGap = 8

var (
	dividerRe = regexp.MustCompile(`^[-=]{3,}$`)
	headingRe = regexp.MustCompile(`^=+\s+(.+?)\s+=+$`)
)

// segment is one contiguous piece of row text. Col is the absolute column
// of its first non-space cell.
type segment struct {
	text string
	col  int
}

// parseTextRows converts every row span not owned by a sibling box or a
// malformed dead zone into elements via the recognizer registry. Blank
// rows inside a box become Spacers; rows carrying several segments are
// wrapped in a Row.
func (p *Parser) parseTextRows(g *grid.Grid, region geom.Bounds, siblings []candidate, dead []geom.Bounds, insideBox bool) ([]entry, []diag.Diagnostic) {
	skip := make([]geom.Bounds, 0, len(siblings)+len(dead))
	for _, s := range siblings {
		skip = append(skip, s.bounds)
	}
	skip = append(skip, dead...)

	var entries []entry
	var ds []diag.Diagnostic

	for row := region.Top; row <= region.Bottom; row++ {
		coveredByBox := false
		for _, b := range skip {
			if row >= b.Top && row <= b.Bottom {
				coveredByBox = true
				break
			}
		}

		segs := p.rowSegments(g, region, skip, row)

		if len(segs) == 0 {
			if insideBox && !coveredByBox {
				entries = append(entries, entry{
					row: row,
					col: region.Left,
					el:  element.Spacer{Position: geom.Position{Row: row, Col: region.Left}},
				})
			}
			continue
		}

		rowEntries, rowDiags := p.parseRow(segs, row, region)
		entries = append(entries, rowEntries...)
		ds = append(ds, rowDiags...)
	}

	return entries, ds
}

// rowSegments extracts the text segments of one row, skipping every column
// owned by a box or dead zone (borders included). Single spaces stay
// inside a segment; a run of two or more ends it.
func (p *Parser) rowSegments(g *grid.Grid, region geom.Bounds, skip []geom.Bounds, row int) []segment {
	owned := func(col int) bool {
		for _, b := range skip {
			if b.Contains(geom.Position{Row: row, Col: col}) {
				return true
			}
		}
		return false
	}

	var segs []segment
	var sb strings.Builder
	start := -1
	spaces := 0

	flush := func() {
		if start >= 0 {
			segs = append(segs, segment{text: strings.TrimRight(sb.String(), " "), col: start})
		}
		sb.Reset()
		start = -1
		spaces = 0
	}

	for col := region.Left; col <= region.Right; col++ {
		cell, ok := g.Get(geom.Position{Row: row, Col: col})
		if !ok || owned(col) {
			flush()
			continue
		}
		if cell.Class == grid.Space {
			spaces++
			if start >= 0 && spaces < segmentGap {
				sb.WriteRune(' ')
			} else if spaces == segmentGap {
				flush()
			}
			continue
		}
		spaces = 0
		if start < 0 {
			start = col
		}
		sb.WriteRune(cell.Rune)
	}
	flush()

	return segs
}

// parseRow turns one row's segments into entries. A lone divider or
// heading segment short-circuits the registry.
func (p *Parser) parseRow(segs []segment, row int, region geom.Bounds) ([]entry, []diag.Diagnostic) {
	var ds []diag.Diagnostic

	if len(segs) == 1 {
		s := segs[0]
		pos := geom.Position{Row: row, Col: s.col}

		if dividerRe.MatchString(s.text) {
			return []entry{{row: row, col: s.col, el: element.Divider{Position: pos}}}, nil
		}
		if m := headingRe.FindStringSubmatch(s.text); m != nil {
			return []entry{{row: row, col: s.col, heading: strings.TrimSpace(m[1])}}, nil
		}

		el, elDiags := p.reg.TryParse(s.text, pos, region)
		return []entry{{row: row, col: s.col, el: el}}, elDiags
	}

	children := make([]element.Element, 0, len(segs))
	for i, s := range segs {
		pos := geom.Position{Row: row, Col: s.col}
		el, elDiags := p.reg.TryParse(s.text, pos, region)
		children = append(children, el)
		ds = append(ds, elDiags...)

		if i > 0 {
			prev := segs[i-1]
			// Display width, not rune count, so wide runes measure the
			// same here as in alignment.
			gap := s.col - (prev.col + runewidth.StringWidth(prev.text))
			if gap >= unusualGap {
				ds = append(ds, diag.UnusualSpacing(pos, gap))
			}
		}
	}

	return []entry{{
		row: row,
		col: segs[0].col,
		el:  element.Row{Children: children, Align: element.AlignLeft},
	}}, ds
}
