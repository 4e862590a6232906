// Package geom provides the grid coordinate primitives used across the
// parsing pipeline: zero-indexed positions and inclusive rectangular bounds.
//
// Both types are immutable values. Every arithmetic helper returns a new
// value; nothing in this package mutates in place.
package geom
