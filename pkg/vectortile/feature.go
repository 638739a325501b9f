package vectortile

import (
	"github.com/taurz/vectortile/internal/mvt"
)

// GeomType is a feature's geometry type.
//
// Vector tile features carry one of four types; consumers should
// switch over all of them. Unknown-typed features decode and report a
// bounding box but refuse GeoJSON serialization.
type GeomType uint8

const (
	// GeomUnknown is the wire default for features without a declared
	// type, and the mapping for any out-of-range type code.
	GeomUnknown GeomType = iota

	// GeomPoint features decode to one ring per point.
	GeomPoint

	// GeomLineString features decode to one ring per line.
	GeomLineString

	// GeomPolygon features decode to exterior and interior rings,
	// distinguished by winding order.
	GeomPolygon
)

// String returns the geometry type name as used by GeoJSON.
func (g GeomType) String() string {
	switch g {
	case GeomPoint:
		return "Point"
	case GeomLineString:
		return "LineString"
	case GeomPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Point is a coordinate in tile-local integer units. The origin is the
// tile's top-left corner and y grows downward.
type Point struct {
	X int32
	Y int32
}

// BBox is an axis-aligned box in tile-local integer units.
type BBox struct {
	MinX, MinY, MaxX, MaxY int32
}

// Feature is one feature of a layer.
//
// The id, geometry type, and properties are decoded at parse time.
// Geometry is not: the feature retains its raw geometry bytes and
// every LoadGeometry, BBox, or ToGeoJSON call decodes them afresh.
// Decoding is idempotent and safe from multiple goroutines.
type Feature struct {
	id      uint64
	hasID   bool
	geom    GeomType
	props   map[string]interface{}
	extent  uint32
	rawGeom []byte
}

// ID returns the feature id and whether one was present on the wire.
// An absent id is distinguishable from an explicit id of 0.
func (f *Feature) ID() (uint64, bool) {
	return f.id, f.hasID
}

// Type returns the feature's geometry type.
func (f *Feature) Type() GeomType {
	return f.geom
}

// Properties returns the feature's properties as a map. Values are
// string, float64, int64, uint64, bool, or nil.
func (f *Feature) Properties() map[string]interface{} {
	return f.props
}

// Property returns a single property value by name.
//
// Returns the value and true if the property exists, or nil and false
// if not.
func (f *Feature) Property(name string) (interface{}, bool) {
	v, ok := f.props[name]
	return v, ok
}

// Extent returns the local coordinate span of the enclosing layer.
func (f *Feature) Extent() uint32 {
	return f.extent
}

// LoadGeometry decodes the feature's geometry into rings or lines of
// tile-local points: one single-point ring per point for point
// features, one ring per line for linestrings, and exterior plus
// interior rings for polygons. The result is freshly allocated on
// every call; decoding twice returns structurally equal results.
func (f *Feature) LoadGeometry() ([][]Point, error) {
	lines, err := mvt.DecodeGeometry(f.rawGeom)
	if err != nil {
		return nil, err
	}
	out := make([][]Point, len(lines))
	for i, line := range lines {
		pts := make([]Point, len(line))
		for j, p := range line {
			pts[j] = Point{X: p.X, Y: p.Y}
		}
		out[i] = pts
	}
	return out, nil
}

// BBox decodes only the feature's bounding box, in tile-local integer
// units, without materializing the geometry. A feature with empty
// geometry yields an inverted box (min greater than max).
func (f *Feature) BBox() (BBox, error) {
	box, err := mvt.DecodeBBox(f.rawGeom)
	if err != nil {
		return BBox{}, err
	}
	return BBox{MinX: box.MinX, MinY: box.MinY, MaxX: box.MaxX, MaxY: box.MaxY}, nil
}
