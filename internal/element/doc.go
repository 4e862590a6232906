// Package element defines the scene tree produced by the parsing pipeline:
// a closed union of leaf and container elements, the Scene record that
// groups them under directives, and the top-level AST.
//
// The union is closed by an unexported marker method. Container elements
// (Box, Row, Section) own their children; the tree is built bottom-up in a
// single parse pass and treated as immutable afterwards. The interaction
// merger never edits these values, it rebuilds them.
package element
