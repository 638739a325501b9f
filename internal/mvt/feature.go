package mvt

// feature.go - feature record decoding
// MVT spec §4.2: a feature carries an optional id, packed tag indices
// into the enclosing layer's dictionaries, a geometry type, and the
// encoded geometry.

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// GeomType is a feature's geometry type (MVT spec §4.3.4).
type GeomType uint8

const (
	GeomUnknown    GeomType = 0
	GeomPoint      GeomType = 1
	GeomLineString GeomType = 2
	GeomPolygon    GeomType = 3
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

// Feature message field numbers (MVT spec §4.2)
const (
	featureFieldID       = 1
	featureFieldTags     = 2
	featureFieldType     = 3
	featureFieldGeometry = 4
)

// Feature is one decoded feature record. Properties are resolved
// eagerly against the layer dictionaries; Geometry stays in wire form,
// aliasing the tile buffer, until decoded by the caller.
type Feature struct {
	ID         uint64
	HasID      bool
	Type       GeomType
	Properties map[string]interface{}
	Geometry   []byte
}

// parseFeature decodes one feature record against the enclosing
// layer's key and value dictionaries.
func parseFeature(data []byte, keys []string, values []interface{}) (*Feature, error) {
	f := &Feature{Properties: map[string]interface{}{}}
	r := newReader(data)
	for !r.done() {
		num, typ, err := r.tag()
		if err != nil {
			return nil, err
		}
		switch {
		case num == featureFieldID && typ == protowire.VarintType:
			v, err := r.varint()
			if err != nil {
				return nil, err
			}
			f.ID = v
			f.HasID = true
		case num == featureFieldTags && typ == protowire.BytesType:
			packed, err := r.bytes()
			if err != nil {
				return nil, err
			}
			if err := resolveTags(packed, keys, values, f.Properties); err != nil {
				return nil, err
			}
		case num == featureFieldType && typ == protowire.VarintType:
			v, err := r.varint()
			if err != nil {
				return nil, err
			}
			f.Type = geomTypeFromWire(v)
		case num == featureFieldGeometry && typ == protowire.BytesType:
			g, err := r.bytes()
			if err != nil {
				return nil, err
			}
			f.Geometry = g
		default:
			if err := r.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// geomTypeFromWire maps the wire enum to GeomType. Values past Polygon
// have no defined meaning and collapse to GeomUnknown.
func geomTypeFromWire(v uint64) GeomType {
	if v > uint64(GeomPolygon) {
		return GeomUnknown
	}
	return GeomType(v)
}

// resolveTags walks the packed alternating key/value indices of a
// feature's tags field and fills props. An index past either
// dictionary is an error; a trailing unpaired key index is dropped
// (MVT spec §4.4 requires an even count, but decoders conventionally
// tolerate the odd tail).
func resolveTags(packed []byte, keys []string, values []interface{}, props map[string]interface{}) error {
	r := newReader(packed)
	for !r.done() {
		k, err := r.varint()
		if err != nil {
			return err
		}
		if r.done() {
			return nil
		}
		v, err := r.varint()
		if err != nil {
			return err
		}
		if k >= uint64(len(keys)) {
			return &ErrTagIndex{Dict: "keys", Index: int(k), Size: len(keys)}
		}
		if v >= uint64(len(values)) {
			return &ErrTagIndex{Dict: "values", Index: int(v), Size: len(values)}
		}
		props[keys[k]] = values[v]
	}
	return nil
}
