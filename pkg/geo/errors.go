package geo

import (
	"fmt"
)

// ErrInvalidCoordinate indicates a longitude or latitude that is not a number
type ErrInvalidCoordinate struct {
	Lng, Lat float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lng=%v lat=%v (both must be numbers)", e.Lng, e.Lat)
}

// ErrInvalidLatitude indicates a latitude outside [-90, 90]
type ErrInvalidLatitude struct {
	Lat float64
}

func (e *ErrInvalidLatitude) Error() string {
	return fmt.Sprintf("invalid latitude %v: must be between -90 and 90", e.Lat)
}

// ErrInvalidBounds indicates a bounds rectangle violating west < east, south < north
type ErrInvalidBounds struct {
	West, South, East, North float64
}

func (e *ErrInvalidBounds) Error() string {
	return fmt.Sprintf("invalid bounds: west=%v south=%v east=%v north=%v (west < east and south < north required)",
		e.West, e.South, e.East, e.North)
}

// ErrInvalidLngLatInput indicates a value that cannot be converted to a LngLat
type ErrInvalidLngLatInput struct {
	Value interface{}
}

func (e *ErrInvalidLngLatInput) Error() string {
	return fmt.Sprintf("cannot convert %T to LngLat: must be a LngLat, an [lng, lat] array, or an object with lng/lon and lat keys", e.Value)
}
