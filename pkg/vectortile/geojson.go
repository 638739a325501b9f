package vectortile

// geojson.go - feature serialization to GeoJSON
// Tile-local integer coordinates are lifted into the global mercator
// unit square via the tile's position and extent, then inverted into
// longitude/latitude. Polygon rings are grouped by winding order
// before serialization.

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/taurz/vectortile/internal/mvt"
	"github.com/taurz/vectortile/pkg/geo"
)

// ToGeoJSON projects the feature out of the tile at position x, y and
// zoom z into a GeoJSON feature with longitude/latitude coordinates.
//
// Single-part geometry serializes as Point, LineString, or Polygon;
// multi-part geometry as the corresponding Multi type. Properties are
// attached as-is, and the id only when the wire carried one.
func (f *Feature) ToGeoJSON(x, y, z uint32) (*geojson.Feature, error) {
	size := float64(f.extent) * math.Exp2(float64(z))
	x0 := float64(f.extent) * float64(x)
	y0 := float64(f.extent) * float64(y)

	return f.serialize(func(p mvt.Point) orb.Point {
		return orb.Point{
			geo.LngFromMercatorX((x0+float64(p.X))/size, nil),
			geo.LatFromMercatorY((y0+float64(p.Y))/size, nil),
		}
	})
}

// ToGeoJSONInBounds is ToGeoJSON for tiles that do not live in the
// global mercator pyramid: the tile's extent is mapped linearly onto
// the given geographic bounds, with local (0, 0) at the north-west
// corner and (extent, extent) at the south-east corner.
func (f *Feature) ToGeoJSONInBounds(bounds geo.LngLatBounds) (*geojson.Feature, error) {
	extent := float64(f.extent)

	return f.serialize(func(p mvt.Point) orb.Point {
		return orb.Point{
			geo.LngFromMercatorX(float64(p.X)/extent, &bounds),
			geo.LatFromMercatorY(float64(p.Y)/extent, &bounds),
		}
	})
}

// serialize decodes the feature geometry and assembles the GeoJSON
// feature using the given point projection.
func (f *Feature) serialize(project func(mvt.Point) orb.Point) (*geojson.Feature, error) {
	lines, err := mvt.DecodeGeometry(f.rawGeom)
	if err != nil {
		return nil, err
	}

	var geometry orb.Geometry
	switch f.geom {
	case GeomPoint:
		// Point features decode to single-point rings; unwrap them.
		points := make(orb.MultiPoint, 0, len(lines))
		for _, line := range lines {
			points = append(points, project(line[0]))
		}
		if len(points) == 1 {
			geometry = points[0]
		} else {
			geometry = points
		}
	case GeomLineString:
		ls := make(orb.MultiLineString, 0, len(lines))
		for _, line := range lines {
			ls = append(ls, projectLine(line, project))
		}
		if len(ls) == 1 {
			geometry = ls[0]
		} else {
			geometry = ls
		}
	case GeomPolygon:
		groups, err := mvt.ClassifyRings(lines)
		if err != nil {
			return nil, err
		}
		mp := make(orb.MultiPolygon, 0, len(groups))
		for _, group := range groups {
			polygon := make(orb.Polygon, 0, len(group))
			for _, ring := range group {
				polygon = append(polygon, orb.Ring(projectLine(ring, project)))
			}
			mp = append(mp, polygon)
		}
		if len(mp) == 1 {
			geometry = mp[0]
		} else {
			geometry = mp
		}
	default:
		return nil, &ErrUnknownGeometry{Type: f.geom}
	}

	out := geojson.NewFeature(geometry)
	out.Properties = geojson.Properties(f.props)
	if f.hasID {
		out.ID = f.id
	}
	return out, nil
}

// projectLine projects one decoded ring or line.
func projectLine(line []mvt.Point, project func(mvt.Point) orb.Point) orb.LineString {
	out := make(orb.LineString, 0, len(line))
	for _, p := range line {
		out = append(out, project(p))
	}
	return out
}
