package geo

// MercatorCoordinate is a position in the projected unit square, with
// an altitude-like z in the same units. x and y of 0..1 span the whole
// world; z is conformal, so distances along z match distances along x
// and y at the same latitude.
type MercatorCoordinate struct {
	X float64
	Y float64
	Z float64
}

// MercatorCoordinateFromLngLat projects a geographic position and an
// altitude in meters into mercator coordinates.
func MercatorCoordinateFromLngLat(ll LngLat, altitude float64) MercatorCoordinate {
	return MercatorCoordinate{
		X: MercatorXFromLng(ll.Lng, nil),
		Y: MercatorYFromLat(ll.Lat, nil),
		Z: MercatorZFromAltitude(altitude, ll.Lat, nil),
	}
}

// ToLngLat returns the geographic position of the coordinate.
func (m MercatorCoordinate) ToLngLat() LngLat {
	return LngLat{
		Lng: LngFromMercatorX(m.X, nil),
		Lat: LatFromMercatorY(m.Y, nil),
	}
}

// ToAltitude returns the altitude in meters of the coordinate.
func (m MercatorCoordinate) ToAltitude() float64 {
	return AltitudeFromMercatorZ(m.Z, m.Y, nil)
}

// MeterInMercatorCoordinateUnits returns the distance of one meter in
// mercator units at the coordinate's latitude.
//
// Use it to size geometry placed in mercator space:
//
//	coord := geo.MercatorCoordinateFromLngLat(pos, 0)
//	radius := 50 * coord.MeterInMercatorCoordinateUnits()
func (m MercatorCoordinate) MeterInMercatorCoordinateUnits() float64 {
	return 1 / EarthCircumference * MercatorScale(LatFromMercatorY(m.Y, nil))
}
