// Package diag defines the diagnostic vocabulary of the pipeline. A
// Diagnostic is a value, not a Go error: stages collect them and keep
// going, and the caller decides what a non-empty list means.
//
// Severity is derived from the code alone so it can never drift from it.
package diag
