// Package boxparse recognizes rectangular bordered regions in a classified
// grid and recurses into their contents. Corners are scanned in row-major
// order so boxes are emitted in reading order; malformed regions are
// reported and skipped while their siblings keep parsing.
//
// Text spans that are not part of any border are segmented and handed to
// the recognizer registry, one element per segment.
package boxparse
