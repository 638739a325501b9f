package geo

import (
	"math"
	"testing"
)

// TestMercatorCoordinateFromLngLat tests known projections
func TestMercatorCoordinateFromLngLat(t *testing.T) {
	// Null island at sea level sits at the center of the unit square
	m := MercatorCoordinateFromLngLat(LngLat{Lng: 0, Lat: 0}, 0)
	if m.X != 0.5 || math.Abs(m.Y-0.5) > 1e-12 || m.Z != 0 {
		t.Errorf("Expected (0.5, 0.5, 0), got (%v, %v, %v)", m.X, m.Y, m.Z)
	}

	// One Earth circumference of altitude at the equator is one
	// mercator unit of z
	m = MercatorCoordinateFromLngLat(LngLat{Lng: 0, Lat: 0}, EarthCircumference)
	if math.Abs(m.Z-1) > 1e-12 {
		t.Errorf("Expected Z=1, got %v", m.Z)
	}
}

// TestMercatorCoordinateRoundTrip tests projecting and inverting
func TestMercatorCoordinateRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		ll       LngLat
		altitude float64
	}{
		{"null island", LngLat{Lng: 0, Lat: 0}, 0},
		{"boston at 100m", LngLat{Lng: -71.05, Lat: 42.35}, 100},
		{"sydney below datum", LngLat{Lng: 151.2, Lat: -33.87}, -20},
		{"high latitude", LngLat{Lng: 18.07, Lat: 69.65}, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MercatorCoordinateFromLngLat(tt.ll, tt.altitude)

			ll := m.ToLngLat()
			if math.Abs(ll.Lng-tt.ll.Lng) > 1e-9 || math.Abs(ll.Lat-tt.ll.Lat) > 1e-9 {
				t.Errorf("Expected %s, got %s", tt.ll, ll)
			}

			if alt := m.ToAltitude(); math.Abs(alt-tt.altitude) > 1e-6 {
				t.Errorf("Expected altitude %v, got %v", tt.altitude, alt)
			}
		})
	}
}

// TestMeterInMercatorCoordinateUnits tests the meter conversion factor
func TestMeterInMercatorCoordinateUnits(t *testing.T) {
	// At the equator a meter is exactly 1/circumference of the world
	m := MercatorCoordinateFromLngLat(LngLat{Lng: 0, Lat: 0}, 0)
	expected := 1 / EarthCircumference
	if got := m.MeterInMercatorCoordinateUnits(); math.Abs(got-expected) > 1e-18 {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// At 60° the mercator stretch doubles the factor
	m = MercatorCoordinateFromLngLat(LngLat{Lng: 0, Lat: 60}, 0)
	expected = 2 / EarthCircumference
	if got := m.MeterInMercatorCoordinateUnits(); math.Abs(got-expected) > 1e-9*expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
