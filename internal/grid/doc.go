// Package grid normalizes raw wireframe text into an indexed character
// matrix. Every cell is classified once at construction (border corner,
// horizontal/vertical line, divider, space, or plain character) and a
// per-class position index is built so the structural parser can answer
// "where are all the corners" in O(1).
//
// A Grid is immutable after construction and exists only for the duration
// of structural parsing.
package grid
