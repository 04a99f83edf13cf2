// Package geo defines the shared coordinate value types for the gea
// toolkit: Coordinate (latitude/longitude/altitude), BoundingBox
// (southwest/northeast cell corners), and Cartesian (3D earth-centered
// meters).
//
// All types are plain immutable values. Validation returns sentinel errors
// from this package so callers can match failure kinds with errors.Is.
package geo
