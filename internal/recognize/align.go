package recognize

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/geom"
)

// Strategy selects how alignment is inferred from an element's position.
type Strategy int

const (
	// StrategyDefault ignores position and always yields left alignment.
	StrategyDefault Strategy = iota
	// StrategyRespectPosition compares the gaps to the enclosing borders.
	StrategyRespectPosition
)

// DefaultTolerance is the column slack within which left and right gaps
// count as balanced.
const DefaultTolerance = 1

// Aligner infers element alignment from its placement inside the
// enclosing bounds.
type Aligner struct {
	// Tolerance is the maximum |leftGap - rightGap| still classified as
	// centered.
	Tolerance int
}

// Align classifies the horizontal placement of a text segment. Text width
// is measured in terminal display columns so wide runes do not skew the
// gap comparison.
func (a Aligner) Align(raw string, pos geom.Position, bounds geom.Bounds, strategy Strategy) element.Align {
	if strategy == StrategyDefault {
		return element.AlignLeft
	}

	width := runewidth.StringWidth(strings.TrimSpace(raw))
	leftGap := pos.Col - bounds.Left
	rightGap := bounds.Right - (pos.Col + width)

	diff := leftGap - rightGap
	if diff < 0 {
		diff = -diff
	}
	if diff <= a.Tolerance {
		return element.AlignCenter
	}
	if leftGap < rightGap {
		return element.AlignLeft
	}
	return element.AlignRight
}
