package geo

import (
	"encoding/json"
	"fmt"
	"math"
)

// LngLat is a geographic position in decimal degrees, longitude first
// to match GeoJSON coordinate order.
type LngLat struct {
	Lng float64
	Lat float64
}

// NewLngLat builds a validated LngLat. Latitude must be within
// [-90, 90]; longitude is unrestricted and can be normalized with Wrap.
func NewLngLat(lng, lat float64) (LngLat, error) {
	if math.IsNaN(lng) || math.IsNaN(lat) {
		return LngLat{}, &ErrInvalidCoordinate{Lng: lng, Lat: lat}
	}
	if lat > 90 || lat < -90 {
		return LngLat{}, &ErrInvalidLatitude{Lat: lat}
	}
	return LngLat{Lng: lng, Lat: lat}, nil
}

// Wrap returns the position with longitude normalized to [-180, 180).
func (ll LngLat) Wrap() LngLat {
	return LngLat{Lng: wrapValue(ll.Lng, -180, 180), Lat: ll.Lat}
}

// DistanceTo returns the great-circle distance to another position in
// meters, using the spherical law of cosines on the mean Earth radius.
func (ll LngLat) DistanceTo(other LngLat) float64 {
	rad := math.Pi / 180
	lat1 := ll.Lat * rad
	lat2 := other.Lat * rad
	a := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos((other.Lng-ll.Lng)*rad)
	return EarthRadius * math.Acos(math.Min(a, 1))
}

// ToBounds returns a bounds rectangle extending the given radius in
// meters from the position in each direction. The extension is a
// flat-earth approximation, adequate for small radii away from the
// poles.
func (ll LngLat) ToBounds(radius float64) LngLatBounds {
	const earthCircumferenceAtEquator = 40075017

	latAccuracy := 360 * radius / earthCircumferenceAtEquator
	lngAccuracy := latAccuracy / math.Cos(ll.Lat*math.Pi/180)

	return LngLatBounds{
		sw: LngLat{Lng: ll.Lng - lngAccuracy, Lat: ll.Lat - latAccuracy},
		ne: LngLat{Lng: ll.Lng + lngAccuracy, Lat: ll.Lat + latAccuracy},
	}
}

func (ll LngLat) String() string {
	return fmt.Sprintf("LngLat(%v, %v)", ll.Lng, ll.Lat)
}

// ParseLngLat converts loosely-typed input to a LngLat. It accepts a
// LngLat value or pointer, an [lng, lat] array or slice (a third
// altitude element is tolerated and ignored), and a map with lng or
// lon plus lat keys, as produced by decoding JSON into interface{}.
func ParseLngLat(v interface{}) (LngLat, error) {
	switch val := v.(type) {
	case LngLat:
		return val, nil
	case *LngLat:
		if val != nil {
			return *val, nil
		}
	case [2]float64:
		return NewLngLat(val[0], val[1])
	case []float64:
		if len(val) == 2 || len(val) == 3 {
			return NewLngLat(val[0], val[1])
		}
	case []interface{}:
		if len(val) == 2 || len(val) == 3 {
			lng, okLng := toFloat(val[0])
			lat, okLat := toFloat(val[1])
			if okLng && okLat {
				return NewLngLat(lng, lat)
			}
		}
	case map[string]interface{}:
		latRaw, ok := val["lat"]
		if !ok {
			break
		}
		lngRaw, ok := val["lng"]
		if !ok {
			lngRaw, ok = val["lon"]
		}
		if !ok {
			break
		}
		lng, okLng := toFloat(lngRaw)
		lat, okLat := toFloat(latRaw)
		if okLng && okLat {
			return NewLngLat(lng, lat)
		}
	}
	return LngLat{}, &ErrInvalidLngLatInput{Value: v}
}

// toFloat extracts a float64 from the numeric types JSON decoding and
// plain Go callers produce.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// wrapValue constrains n to [min, max), treating the interval as
// circular.
func wrapValue(n, min, max float64) float64 {
	d := max - min
	w := math.Mod(math.Mod(n-min, d)+d, d) + min
	if w == max {
		return min
	}
	return w
}
