package vectortile

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/taurz/vectortile/pkg/geo"
)

// parseSingleFeature decodes a one-layer, one-feature tile fixture.
func parseSingleFeature(t *testing.T, feature []byte) *Feature {
	t.Helper()

	tile, err := Parse(tileMsg(layerMsg("test", 2, 4096, nil, nil, [][]byte{feature})))
	if err != nil {
		t.Fatal(err)
	}
	return tile.Layers()[0].Feature(0)
}

// TestToGeoJSONPointAtWorldCenter tests that the middle of tile 0/0/0
// projects to (0, 0)
func TestToGeoJSONPointAtWorldCenter(t *testing.T) {
	f := parseSingleFeature(t, featureMsg(nil, nil, 1,
		geomStream(command(1, 1), param(2048), param(2048))))

	gf, err := f.ToGeoJSON(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	point, ok := gf.Geometry.(orb.Point)
	if !ok {
		t.Fatalf("Expected orb.Point, got %T", gf.Geometry)
	}
	if math.Abs(point[0]) > 1e-9 || math.Abs(point[1]) > 1e-9 {
		t.Errorf("Expected (0, 0), got (%v, %v)", point[0], point[1])
	}
}

// TestToGeoJSONTilePosition tests that the tile address shifts the
// projection window
func TestToGeoJSONTilePosition(t *testing.T) {
	// The origin of tile 1/1/1 is the center of the world
	f := parseSingleFeature(t, featureMsg(nil, nil, 1,
		geomStream(command(1, 1), param(0), param(0))))

	gf, err := f.ToGeoJSON(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	point, ok := gf.Geometry.(orb.Point)
	if !ok {
		t.Fatalf("Expected orb.Point, got %T", gf.Geometry)
	}
	if math.Abs(point[0]) > 1e-9 || math.Abs(point[1]) > 1e-9 {
		t.Errorf("Expected (0, 0), got (%v, %v)", point[0], point[1])
	}
}

// TestToGeoJSONMultiPoint tests that multiple points serialize as a
// MultiPoint
func TestToGeoJSONMultiPoint(t *testing.T) {
	f := parseSingleFeature(t, featureMsg(nil, nil, 1,
		geomStream(command(1, 2), param(100), param(100), param(50), param(50))))

	gf, err := f.ToGeoJSON(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	mp, ok := gf.Geometry.(orb.MultiPoint)
	if !ok {
		t.Fatalf("Expected orb.MultiPoint, got %T", gf.Geometry)
	}
	if len(mp) != 2 {
		t.Errorf("Expected 2 points, got %d", len(mp))
	}
}

// TestToGeoJSONLineString tests single and multi line serialization
func TestToGeoJSONLineString(t *testing.T) {
	single := parseSingleFeature(t, featureMsg(nil, nil, 2,
		geomStream(command(1, 1), param(0), param(0), command(2, 1), param(100), param(0))))

	gf, err := single.ToGeoJSON(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ls, ok := gf.Geometry.(orb.LineString); !ok {
		t.Fatalf("Expected orb.LineString, got %T", gf.Geometry)
	} else if len(ls) != 2 {
		t.Errorf("Expected 2 vertices, got %d", len(ls))
	}

	multi := parseSingleFeature(t, featureMsg(nil, nil, 2, geomStream(
		command(1, 1), param(0), param(0), command(2, 1), param(100), param(0),
		command(1, 1), param(0), param(100), command(2, 1), param(100), param(0),
	)))

	gf, err = multi.ToGeoJSON(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if mls, ok := gf.Geometry.(orb.MultiLineString); !ok {
		t.Fatalf("Expected orb.MultiLineString, got %T", gf.Geometry)
	} else if len(mls) != 2 {
		t.Errorf("Expected 2 lines, got %d", len(mls))
	}
}

// TestToGeoJSONPolygonWithHole tests ring grouping on serialization
func TestToGeoJSONPolygonWithHole(t *testing.T) {
	// Outer square (0,0)..(10,10) with an opposite-winding hole
	// (2,2)..(8,8)
	f := parseSingleFeature(t, featureMsg(nil, nil, 3, geomStream(
		command(1, 1), param(0), param(0),
		command(2, 3), param(10), param(0), param(0), param(10), param(-10), param(0),
		command(7, 1),
		command(1, 1), param(2), param(-8),
		command(2, 3), param(0), param(6), param(6), param(0), param(0), param(-6),
		command(7, 1),
	)))

	gf, err := f.ToGeoJSON(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	polygon, ok := gf.Geometry.(orb.Polygon)
	if !ok {
		t.Fatalf("Expected orb.Polygon, got %T", gf.Geometry)
	}
	if len(polygon) != 2 {
		t.Fatalf("Expected exterior plus hole, got %d rings", len(polygon))
	}
	if len(polygon[0]) != 5 || len(polygon[1]) != 5 {
		t.Errorf("Expected closed 5-point rings, got %d and %d", len(polygon[0]), len(polygon[1]))
	}
}

// TestToGeoJSONMultiPolygon tests that same-winding rings split into
// polygons
func TestToGeoJSONMultiPolygon(t *testing.T) {
	f := parseSingleFeature(t, featureMsg(nil, nil, 3, geomStream(
		command(1, 1), param(0), param(0),
		command(2, 3), param(10), param(0), param(0), param(10), param(-10), param(0),
		command(7, 1),
		command(1, 1), param(100), param(-10),
		command(2, 3), param(10), param(0), param(0), param(10), param(-10), param(0),
		command(7, 1),
	)))

	gf, err := f.ToGeoJSON(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	mp, ok := gf.Geometry.(orb.MultiPolygon)
	if !ok {
		t.Fatalf("Expected orb.MultiPolygon, got %T", gf.Geometry)
	}
	if len(mp) != 2 {
		t.Fatalf("Expected 2 polygons, got %d", len(mp))
	}
	for i, polygon := range mp {
		if len(polygon) != 1 {
			t.Errorf("Polygon %d: expected 1 ring, got %d", i, len(polygon))
		}
	}
}

// TestToGeoJSONEmptyGeometry tests that a feature with no commands
// serializes as an empty multi geometry
func TestToGeoJSONEmptyGeometry(t *testing.T) {
	f := parseSingleFeature(t, featureMsg(nil, nil, 1, nil))

	gf, err := f.ToGeoJSON(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	mp, ok := gf.Geometry.(orb.MultiPoint)
	if !ok {
		t.Fatalf("Expected orb.MultiPoint, got %T", gf.Geometry)
	}
	if len(mp) != 0 {
		t.Errorf("Expected no points, got %d", len(mp))
	}
}

// TestToGeoJSONUnknownGeometry tests that untyped features refuse
// serialization
func TestToGeoJSONUnknownGeometry(t *testing.T) {
	f := parseSingleFeature(t, featureMsg(nil, nil, 0,
		geomStream(command(1, 1), param(1), param(1))))

	_, err := f.ToGeoJSON(0, 0, 0)

	var geomErr *ErrUnknownGeometry
	if !errors.As(err, &geomErr) {
		t.Fatalf("Expected ErrUnknownGeometry, got %v", err)
	}
	if geomErr.Type != GeomUnknown {
		t.Errorf("Expected GeomUnknown, got %s", geomErr.Type)
	}
}

// TestToGeoJSONIDAndProperties tests metadata carry-over
func TestToGeoJSONIDAndProperties(t *testing.T) {
	id := uint64(7)
	feature := featureMsg(&id, []uint64{0, 0}, 1,
		geomStream(command(1, 1), param(1), param(1)))
	tile, err := Parse(tileMsg(layerMsg("test", 2, 4096,
		[]string{"class"}, [][]byte{valueString("ocean")}, [][]byte{feature})))
	if err != nil {
		t.Fatal(err)
	}

	gf, err := tile.Layers()[0].Feature(0).ToGeoJSON(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if gf.ID != uint64(7) {
		t.Errorf("Expected id 7, got %v", gf.ID)
	}
	if gf.Properties["class"] != "ocean" {
		t.Errorf("Expected class=ocean, got %v", gf.Properties["class"])
	}

	// Without a wire id the GeoJSON feature carries none
	anon := parseSingleFeature(t, featureMsg(nil, nil, 1,
		geomStream(command(1, 1), param(1), param(1))))
	gf, err = anon.ToGeoJSON(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if gf.ID != nil {
		t.Errorf("Expected no id, got %v", gf.ID)
	}
}

// TestToGeoJSONInBounds tests the linear projection onto a geographic
// rectangle
func TestToGeoJSONInBounds(t *testing.T) {
	sw, err := geo.NewLngLat(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	ne, err := geo.NewLngLat(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	bounds, err := geo.NewLngLatBounds(sw, ne)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		x, y int32
		lng  float64
		lat  float64
	}{
		{"north west corner", 0, 0, 0, 10},
		{"south east corner", 4096, 4096, 10, 0},
		{"quarter point", 1024, 3072, 2.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseSingleFeature(t, featureMsg(nil, nil, 1,
				geomStream(command(1, 1), param(tt.x), param(tt.y))))

			gf, err := f.ToGeoJSONInBounds(bounds)
			if err != nil {
				t.Fatal(err)
			}

			point, ok := gf.Geometry.(orb.Point)
			if !ok {
				t.Fatalf("Expected orb.Point, got %T", gf.Geometry)
			}
			if math.Abs(point[0]-tt.lng) > 1e-12 || math.Abs(point[1]-tt.lat) > 1e-12 {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.lng, tt.lat, point[0], point[1])
			}
		})
	}
}
