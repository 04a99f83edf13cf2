package geo

import "errors"

// ErrCornerOrder reports a bounding box whose southwest corner is not
// south-west of its northeast corner.
var ErrCornerOrder = errors.New("southwest corner must not exceed northeast corner")

// BoundingBox is the rectangle delimited by a southwest and a northeast
// corner, with SW.Lat <= NE.Lat and SW.Lon <= NE.Lon.
type BoundingBox struct {
	SW Coordinate `json:"sw"`
	NE Coordinate `json:"ne"`
}

// Validate checks both corners and their ordering.
func (b BoundingBox) Validate() error {
	if err := b.SW.Validate(); err != nil {
		return err
	}
	if err := b.NE.Validate(); err != nil {
		return err
	}
	if b.SW.Lat > b.NE.Lat || b.SW.Lon > b.NE.Lon {
		return ErrCornerOrder
	}
	return nil
}

// Center returns the unrounded arithmetic midpoint of the box.
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (b.SW.Lat + b.NE.Lat) / 2,
		Lon: (b.SW.Lon + b.NE.Lon) / 2,
	}
}

// Contains reports whether the coordinate lies within the box, borders
// included.
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= b.SW.Lat && c.Lat <= b.NE.Lat &&
		c.Lon >= b.SW.Lon && c.Lon <= b.NE.Lon
}
