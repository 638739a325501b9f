// Package vectortile provides a clean public API for decoding Mapbox
// Vector Tiles into layers, features, and GeoJSON.
package vectortile

import (
	"fmt"

	"github.com/taurz/vectortile/internal/mvt"
)

// Parse decodes a vector tile from its protobuf wire bytes.
//
// The returned tile keeps a reference to data: feature geometry stays
// in wire form and is re-decoded on every LoadGeometry, BBox, or
// ToGeoJSON call. The buffer must not be modified while the tile is in
// use. Nothing in a parsed tile is mutated afterwards, so concurrent
// use from multiple goroutines is safe.
//
// Example:
//
//	tile, err := vectortile.Parse(data)
//	if err != nil {
//		return err
//	}
//	for _, name := range tile.LayerNames() {
//		fmt.Println(name)
//	}
func Parse(data []byte) (*Tile, error) {
	return ParseWithOptions(data, DefaultParseOptions())
}

// ParseWithOptions decodes a vector tile with custom options.
//
// Use ParseOptions to restrict decoding to certain layers or to drop
// malformed layers instead of failing the whole tile.
func ParseWithOptions(data []byte, opts ParseOptions) (*Tile, error) {
	internalOpts := mvt.ParseOptions{
		LayerFilter:         opts.LayerFilter,
		SkipMalformedLayers: opts.SkipMalformedLayers,
	}
	internal, err := mvt.ParseTileWithOptions(data, internalOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tile: %w", err)
	}
	return convertTile(internal), nil
}

// Tile is a parsed vector tile: an ordered collection of named layers.
//
// All fields are private to maintain encapsulation; access layers via
// Layer, Layers, or LayerNames.
type Tile struct {
	layers []*Layer
	byName map[string]*Layer
}

// Layer returns the named layer and whether it exists. If a tile
// carries several layers with the same name, the last one wins.
func (t *Tile) Layer(name string) (*Layer, bool) {
	l, ok := t.byName[name]
	return l, ok
}

// Layers returns all layers in tile order.
func (t *Tile) Layers() []*Layer {
	return t.layers
}

// LayerNames returns the layer names in tile order.
func (t *Tile) LayerNames() []string {
	names := make([]string, len(t.layers))
	for i, l := range t.layers {
		names[i] = l.name
	}
	return names
}

// LayerCount returns the number of layers in the tile.
func (t *Tile) LayerCount() int {
	return len(t.layers)
}

// convertTile converts the internal tile to the public API shape
func convertTile(internal *mvt.Tile) *Tile {
	t := &Tile{byName: make(map[string]*Layer, len(internal.Layers))}
	for _, il := range internal.Layers {
		layer := &Layer{
			name:    il.Name,
			version: il.Version,
			extent:  il.Extent,
			keys:    il.Keys,
			values:  il.Values,
		}
		layer.features = make([]*Feature, len(il.Features))
		for i, f := range il.Features {
			layer.features[i] = &Feature{
				id:      f.ID,
				hasID:   f.HasID,
				geom:    GeomType(f.Type),
				props:   f.Properties,
				extent:  il.Extent,
				rawGeom: f.Geometry,
			}
		}
		t.layers = append(t.layers, layer)
		t.byName[layer.name] = layer
	}
	return t
}
