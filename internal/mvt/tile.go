// Package mvt decodes the Mapbox Vector Tile wire format: tile, layer,
// feature and value records, geometry command streams, and polygon
// ring classification.
//
// Decoding is all-or-nothing at every level. Geometry is the
// exception to eager decoding: features retain their raw geometry
// bytes and DecodeGeometry/DecodeBBox re-decode them on every call.
package mvt

// tile.go - tile and layer record decoding
// MVT spec §4.1: a tile is repeated layer messages; each layer carries
// a version, name, extent, key/value dictionaries, and its features.
// Wire field order is unconstrained, so feature records are collected
// raw and decoded only after the dictionaries are complete.

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// DefaultExtent is the layer coordinate span assumed when the extent
// field is absent (MVT spec §4.1).
const DefaultExtent = 4096

// Tile message field numbers
const tileFieldLayer = 3

// Layer message field numbers (MVT spec §4.1)
const (
	layerFieldName    = 1
	layerFieldFeature = 2
	layerFieldKey     = 3
	layerFieldValue   = 4
	layerFieldExtent  = 5
	layerFieldVersion = 15
)

// Tile is a decoded tile: its layers in wire order.
type Tile struct {
	Layers []*Layer
}

// Layer is one decoded layer with its dictionaries and features.
type Layer struct {
	Version  uint32
	Name     string
	Extent   uint32
	Keys     []string
	Values   []interface{}
	Features []*Feature
}

// ParseOptions configures tile decoding behavior
type ParseOptions struct {
	// LayerFilter: if non-empty, keep only layers with these names.
	// Empty means keep all layers.
	LayerFilter []string

	// SkipMalformedLayers: if true, drop layers that fail to decode
	// instead of failing the whole tile.
	// Default: false (return error on the first malformed layer)
	SkipMalformedLayers bool
}

// DefaultParseOptions returns decode options with defaults
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		LayerFilter:         nil,
		SkipMalformedLayers: false,
	}
}

// ParseTile decodes a whole tile buffer with default options.
func ParseTile(data []byte) (*Tile, error) {
	return ParseTileWithOptions(data, DefaultParseOptions())
}

// ParseTileWithOptions decodes a whole tile buffer. Unknown fields are
// skipped; layer records are decoded in wire order.
func ParseTileWithOptions(data []byte, opts ParseOptions) (*Tile, error) {
	t := &Tile{}
	index := 0
	r := newReader(data)
	for !r.done() {
		num, typ, err := r.tag()
		if err != nil {
			return nil, err
		}
		if num != tileFieldLayer || typ != protowire.BytesType {
			if err := r.skip(num, typ); err != nil {
				return nil, err
			}
			continue
		}

		raw, err := r.bytes()
		if err != nil {
			return nil, err
		}
		layer, err := ParseLayer(raw)
		if err != nil {
			if opts.SkipMalformedLayers {
				index++
				continue
			}
			return nil, fmt.Errorf("layer %d: %w", index, err)
		}
		index++

		if len(opts.LayerFilter) > 0 && !contains(opts.LayerFilter, layer.Name) {
			continue
		}
		t.Layers = append(t.Layers, layer)
	}
	return t, nil
}

// ParseLayer decodes one layer record in two phases: dictionaries and
// raw feature records first, then feature decoding once the
// dictionaries are known. This tolerates any field order on the wire.
func ParseLayer(data []byte) (*Layer, error) {
	l := &Layer{Version: 1, Extent: DefaultExtent}
	var rawFeatures [][]byte

	r := newReader(data)
	for !r.done() {
		num, typ, err := r.tag()
		if err != nil {
			return nil, err
		}
		switch {
		case num == layerFieldName && typ == protowire.BytesType:
			b, err := r.bytes()
			if err != nil {
				return nil, err
			}
			l.Name = string(b)
		case num == layerFieldFeature && typ == protowire.BytesType:
			b, err := r.bytes()
			if err != nil {
				return nil, err
			}
			rawFeatures = append(rawFeatures, b)
		case num == layerFieldKey && typ == protowire.BytesType:
			b, err := r.bytes()
			if err != nil {
				return nil, err
			}
			l.Keys = append(l.Keys, string(b))
		case num == layerFieldValue && typ == protowire.BytesType:
			b, err := r.bytes()
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(b)
			if err != nil {
				return nil, err
			}
			l.Values = append(l.Values, v)
		case num == layerFieldExtent && typ == protowire.VarintType:
			v, err := r.varint()
			if err != nil {
				return nil, err
			}
			l.Extent = uint32(v)
		case num == layerFieldVersion && typ == protowire.VarintType:
			v, err := r.varint()
			if err != nil {
				return nil, err
			}
			l.Version = uint32(v)
		default:
			if err := r.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}

	l.Features = make([]*Feature, 0, len(rawFeatures))
	for i, raw := range rawFeatures {
		f, err := parseFeature(raw, l.Keys, l.Values)
		if err != nil {
			return nil, fmt.Errorf("feature %d in layer %q: %w", i, l.Name, err)
		}
		l.Features = append(l.Features, f)
	}
	return l, nil
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
