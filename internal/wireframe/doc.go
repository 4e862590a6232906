// Package wireframe is the public entry point of the parsing pipeline. It
// wires the grid, box parser, recognizers, scene builder and interaction
// merger together behind two calls: Parse for wireframe text alone and
// ParseAndMerge for wireframe text plus interaction DSL.
package wireframe
