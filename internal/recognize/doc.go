// Package recognize converts one raw text segment into one semantic leaf
// element. Recognizers are ranked by priority and tried in descending
// order; the first successful parse wins, and an unconditional Text
// fallback guarantees every segment produces exactly one element.
//
// The package also owns identifier slugging and position-aware alignment
// inference, both pure functions so the tie-break tolerance stays
// centrally testable.
package recognize
