package geo

import (
	"fmt"
)

// LngLatBounds is a geographic rectangle described by its south-west
// and north-east corners. A valid bounds always satisfies west < east
// and south < north; NewLngLatBounds enforces this, and every method
// assumes it.
type LngLatBounds struct {
	sw LngLat
	ne LngLat
}

// NewLngLatBounds builds a validated bounds rectangle from its
// south-west and north-east corners.
func NewLngLatBounds(sw, ne LngLat) (LngLatBounds, error) {
	if sw.Lng >= ne.Lng || sw.Lat >= ne.Lat {
		return LngLatBounds{}, &ErrInvalidBounds{West: sw.Lng, South: sw.Lat, East: ne.Lng, North: ne.Lat}
	}
	return LngLatBounds{sw: sw, ne: ne}, nil
}

// West returns the western edge longitude.
func (b LngLatBounds) West() float64 { return b.sw.Lng }

// South returns the southern edge latitude.
func (b LngLatBounds) South() float64 { return b.sw.Lat }

// East returns the eastern edge longitude.
func (b LngLatBounds) East() float64 { return b.ne.Lng }

// North returns the northern edge latitude.
func (b LngLatBounds) North() float64 { return b.ne.Lat }

// SouthWest returns the south-west corner.
func (b LngLatBounds) SouthWest() LngLat { return b.sw }

// NorthEast returns the north-east corner.
func (b LngLatBounds) NorthEast() LngLat { return b.ne }

// Center returns the midpoint of the rectangle.
func (b LngLatBounds) Center() LngLat {
	return LngLat{
		Lng: (b.sw.Lng + b.ne.Lng) / 2,
		Lat: (b.sw.Lat + b.ne.Lat) / 2,
	}
}

// Contains reports whether the position lies inside the rectangle,
// edges included.
func (b LngLatBounds) Contains(ll LngLat) bool {
	return b.sw.Lat <= ll.Lat && ll.Lat <= b.ne.Lat &&
		b.sw.Lng <= ll.Lng && ll.Lng <= b.ne.Lng
}

// Extend returns a bounds grown just enough to include the position.
func (b LngLatBounds) Extend(ll LngLat) LngLatBounds {
	out := b
	if ll.Lng < out.sw.Lng {
		out.sw.Lng = ll.Lng
	}
	if ll.Lng > out.ne.Lng {
		out.ne.Lng = ll.Lng
	}
	if ll.Lat < out.sw.Lat {
		out.sw.Lat = ll.Lat
	}
	if ll.Lat > out.ne.Lat {
		out.ne.Lat = ll.Lat
	}
	return out
}

func (b LngLatBounds) String() string {
	return fmt.Sprintf("LngLatBounds(%s, %s)", b.sw, b.ne)
}
