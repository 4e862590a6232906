// Package merge attaches parsed interactions to the scene tree. The merge
// is all or nothing: every scene and element reference is validated first,
// and any error leaves the input AST untouched. A successful merge returns
// a new AST; the input is never mutated.
package merge
