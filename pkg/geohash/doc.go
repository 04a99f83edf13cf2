// Package geohash implements base-32 geohash encoding and the cell-grid
// navigation built on top of it.
//
// A geohash is a short sortable string naming a rectangular cell on the
// globe; every added character subdivides the parent cell, so prefixes
// denote progressively larger enclosing cells. Encode produces the hash
// for a coordinate, Bounds and Decode invert it, and Adjacent/Neighbour(s)
// walk the cell grid without re-deriving coordinates, using parity-indexed
// lookup tables with recursive border propagation.
//
// Every function is pure and safe for concurrent use; the only
// package-level state is the constant lookup tables.
package geohash
