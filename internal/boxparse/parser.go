package boxparse

import (
	"sort"

	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/geom"
	"github.com/vk/wiregrid/internal/grid"
	"github.com/vk/wiregrid/internal/recognize"
)

// Defaults for the nesting guards.
const (
	DefaultMaxDepth  = 16
	DefaultWarnDepth = 5
)

// Parser turns a Grid into a tree of elements.
type Parser struct {
	reg       *recognize.Registry
	maxDepth  int
	warnDepth int
}

// New builds a Parser. Zero depth arguments select the defaults.
func New(reg *recognize.Registry, maxDepth, warnDepth int) *Parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if warnDepth <= 0 {
		warnDepth = DefaultWarnDepth
	}
	return &Parser{reg: reg, maxDepth: maxDepth, warnDepth: warnDepth}
}

// Parse walks the whole grid and returns the top-level elements in reading
// order plus every diagnostic encountered.
func (p *Parser) Parse(g *grid.Grid) ([]element.Element, []diag.Diagnostic) {
	if g.Height() == 0 || g.Width() == 0 {
		return nil, nil
	}
	bounds, err := geom.NewBounds(0, 0, g.Height()-1, g.Width()-1)
	if err != nil {
		return nil, nil
	}
	return p.parseRegion(g, bounds, 1, false)
}

// candidate is a successfully parsed box border awaiting sibling
// resolution.
type candidate struct {
	bounds geom.Bounds
	name   string
}

// entry carries an element with its reading-order sort key. A non-empty
// heading starts a Section during the fold pass.
type entry struct {
	row, col int
	el       element.Element
	heading  string
}

// parseRegion parses one rectangular region: box borders first, then the
// remaining text spans. insideBox selects interior-only behavior such as
// blank lines becoming Spacers.
func (p *Parser) parseRegion(g *grid.Grid, region geom.Bounds, depth int, insideBox bool) ([]element.Element, []diag.Diagnostic) {
	var ds []diag.Diagnostic

	siblings, dead, boxDiags := p.findBoxes(g, region)
	ds = append(ds, boxDiags...)

	var entries []entry
	for _, c := range siblings {
		box := element.Box{Name: c.name, Bounds: c.bounds}

		if c.bounds.Height() > 2 && c.bounds.Width() > 2 {
			interior, err := geom.NewBounds(c.bounds.Top+1, c.bounds.Left+1, c.bounds.Bottom-1, c.bounds.Right-1)
			if err == nil {
				childDepth := depth + 1
				switch {
				case childDepth > p.maxDepth:
					// Recoverable stop: the subtree is skipped, output
					// still succeeds.
					ds = append(ds, diag.DeepNesting(c.bounds.TopLeft(), childDepth, p.maxDepth))
				default:
					if childDepth > p.warnDepth {
						ds = append(ds, diag.DeepNesting(c.bounds.TopLeft(), childDepth, p.maxDepth))
					}
					children, childDiags := p.parseRegion(g, interior, childDepth, true)
					box.Children = children
					ds = append(ds, childDiags...)
				}
			}
		}

		entries = append(entries, entry{row: c.bounds.Top, col: c.bounds.Left, el: box})
	}

	textEntries, textDiags := p.parseTextRows(g, region, siblings, dead, insideBox)
	entries = append(entries, textEntries...)
	ds = append(ds, textDiags...)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].row != entries[j].row {
			return entries[i].row < entries[j].row
		}
		return entries[i].col < entries[j].col
	})
	return foldSections(entries), ds
}

// foldSections groups the elements following a "== Name ==" heading into a
// Section, up to the next heading. Elements before the first heading stay
// at the current level.
func foldSections(entries []entry) []element.Element {
	var out []element.Element
	var current *element.Section

	flush := func() {
		if current != nil {
			out = append(out, *current)
			current = nil
		}
	}

	for _, e := range entries {
		if e.heading != "" {
			flush()
			current = &element.Section{Name: e.heading}
			continue
		}
		if current != nil {
			current.Children = append(current.Children, e.el)
			continue
		}
		out = append(out, e.el)
	}
	flush()

	return out
}
