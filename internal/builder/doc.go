// Package builder folds directive lines and parsed element trees into
// Scene records and assembles the top-level AST. A literal "---" line
// separates scenes; @scene, @title, @device and @transition directives
// carry scene metadata.
package builder
