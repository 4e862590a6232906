// Package interaction parses the interaction DSL: selector headers at
// zero indent, indented property and action lines below them, and @scene
// headers that partition the file per scene. Parsing never stops at the
// first bad line; every problem is reported and the rest of the file is
// still consumed.
package interaction
