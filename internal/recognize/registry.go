package recognize

import (
	"sort"

	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/geom"
)

// Built-in recognizer priorities. Higher is tried first.
const (
	PriorityButton   = 100
	PriorityInput    = 90
	PriorityCheckbox = 85
	PriorityLink     = 80
	PriorityCodeText = 75
	PriorityEmphasis = 70
	PriorityText     = 1
)

// Recognizer converts a raw text segment into one element kind.
//
// QuickTest is a cheap syntactic pre-filter. Parse performs the full
// extraction and may still reject even after QuickTest passed; a rejecting
// recognizer may surface syntax diagnostics (an empty button label, an
// unclosed bracket) while the segment falls through to lower priorities.
type Recognizer interface {
	Name() string
	Priority() int
	QuickTest(text string) bool
	Parse(text string, pos geom.Position, bounds geom.Bounds) (element.Element, []diag.Diagnostic, bool)
}

// Registry holds recognizers sorted by descending priority. Registration
// order breaks ties.
type Registry struct {
	recognizers []Recognizer
}

// NewRegistry returns a registry populated with the built-in recognizers.
// The aligner is shared by every built-in that respects position.
func NewRegistry(al Aligner) *Registry {
	r := &Registry{}
	for _, rec := range []Recognizer{
		buttonRecognizer{al: al},
		inputRecognizer{},
		checkboxRecognizer{},
		linkRecognizer{al: al},
		codeTextRecognizer{al: al},
		emphasisRecognizer{al: al},
		textRecognizer{},
	} {
		r.Register(rec)
	}
	return r
}

// Register adds a recognizer, keeping the list sorted by descending
// priority. Custom recognizers registered at the same priority as a
// built-in run after it.
func (r *Registry) Register(rec Recognizer) {
	r.recognizers = append(r.recognizers, rec)
	sort.SliceStable(r.recognizers, func(i, j int) bool {
		return r.recognizers[i].Priority() > r.recognizers[j].Priority()
	})
}

// TryParse runs the recognizers in priority order and returns the first
// successful element. Exactly one recognizer is applied per segment; the
// Text fallback guarantees a result for any input, including blank text.
// Diagnostics from recognizers that partially matched and rejected are
// returned alongside the winning element.
func (r *Registry) TryParse(text string, pos geom.Position, bounds geom.Bounds) (element.Element, []diag.Diagnostic) {
	var ds []diag.Diagnostic
	for _, rec := range r.recognizers {
		if !rec.QuickTest(text) {
			continue
		}
		el, recDiags, ok := rec.Parse(text, pos, bounds)
		ds = append(ds, recDiags...)
		if ok {
			return el, ds
		}
	}
	// Unreachable while the Text fallback is registered, but a registry
	// emptied of built-ins must still honor the one-element contract.
	return element.Text{Position: pos, Align: element.AlignLeft}, ds
}
