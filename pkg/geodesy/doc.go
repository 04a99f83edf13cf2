// Package geodesy provides great-circle math over plain coordinate pairs:
// distances, bearings, destination projection, Cartesian conversion, and
// interpolation along great-circle paths.
//
// All computations use the fixed WGS84 mean earth radius; there is no
// ellipsoid configurability. The package has no interaction with the
// geohash cell grid — it only consumes and produces geo values.
package geodesy
