package geo

// projection.go - web mercator and bounds-relative linear projections
// Forward functions map degrees into the unit square; inverse functions
// are exact algebraic inverses. Passing a non-nil bounds selects the
// linear projection over that rectangle instead of web mercator.

import "math"

// circumferenceAtLatitude returns the distance in meters around the
// Earth along the parallel at the given latitude.
func circumferenceAtLatitude(lat float64) float64 {
	return EarthCircumference * math.Cos(lat*math.Pi/180)
}

// MercatorXFromLng projects a longitude to the unit square, or to the
// given bounds rectangle when bounds is non-nil.
func MercatorXFromLng(lng float64, bounds *LngLatBounds) float64 {
	if bounds != nil {
		return (lng - bounds.West()) / (bounds.East() - bounds.West())
	}
	return (180 + lng) / 360
}

// MercatorYFromLat projects a latitude to the unit square, or to the
// given bounds rectangle when bounds is non-nil.
//
// Latitudes at or beyond the poles project to non-finite values; the
// mercator domain is unbounded there and callers get the IEEE result
// rather than an error.
func MercatorYFromLat(lat float64, bounds *LngLatBounds) float64 {
	if bounds != nil {
		return (bounds.North() - lat) / (bounds.North() - bounds.South())
	}
	return (180 - (180/math.Pi)*math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))) / 360
}

// MercatorZFromAltitude projects an altitude in meters at the given
// latitude into mercator units. The mercator projection is conformal,
// so one unit of z spans the same ground distance as one unit of x or
// y at that latitude.
func MercatorZFromAltitude(altitude, lat float64, bounds *LngLatBounds) float64 {
	if bounds != nil {
		return altitude / (bounds.North() - lat)
	}
	return altitude / circumferenceAtLatitude(lat)
}

// LngFromMercatorX inverts MercatorXFromLng.
func LngFromMercatorX(x float64, bounds *LngLatBounds) float64 {
	if bounds != nil {
		return bounds.West() + x*(bounds.East()-bounds.West())
	}
	return x*360 - 180
}

// LatFromMercatorY inverts MercatorYFromLat.
func LatFromMercatorY(y float64, bounds *LngLatBounds) float64 {
	if bounds != nil {
		return bounds.North() - y*(bounds.North()-bounds.South())
	}
	y2 := 180 - y*360
	return 360/math.Pi*math.Atan(math.Exp(y2*math.Pi/180)) - 90
}

// AltitudeFromMercatorZ inverts MercatorZFromAltitude. The mercator y
// is needed because the meters-per-unit scale depends on latitude.
func AltitudeFromMercatorZ(z, y float64, bounds *LngLatBounds) float64 {
	if bounds != nil {
		return z * (bounds.North() - LatFromMercatorY(y, bounds))
	}
	return z * circumferenceAtLatitude(LatFromMercatorY(y, nil))
}

// MercatorScale returns the local metric distortion of the mercator
// projection at a latitude: 1 at the equator, growing toward the poles.
func MercatorScale(lat float64) float64 {
	return 1 / math.Cos(lat*math.Pi/180)
}
