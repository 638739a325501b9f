// Package geo provides geographic coordinate types and the web
// mercator projection used by vector tile decoding.
//
// Coordinates are WGS-84 longitude/latitude in decimal degrees.
// Projected coordinates live in a unit square covering the world, with
// (0,0) at the north-west corner and (1,1) at the south-east corner.
// Every projection function also accepts an optional LngLatBounds that
// switches it to a linear projection covering exactly that rectangle.
package geo

import "math"

const (
	// EarthRadius is the mean radius of the Earth in meters (IUGG R1).
	EarthRadius = 6371008.8

	// EarthCircumference is the mean circumference of the Earth in meters.
	EarthCircumference = 2 * math.Pi * EarthRadius
)
