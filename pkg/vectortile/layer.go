package vectortile

// Layer is one named layer of a vector tile.
//
// A layer owns the key and value dictionaries its features' properties
// were resolved from, an extent defining the local coordinate span,
// and the features themselves.
type Layer struct {
	name     string
	version  uint32
	extent   uint32
	keys     []string
	values   []interface{}
	features []*Feature
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Version returns the layer's declared encoding version. Version 2 is
// current; version 1 tiles decode the same way.
func (l *Layer) Version() uint32 { return l.version }

// Extent returns the span of the layer's local integer coordinate
// space, typically 4096. Coordinates are nominally within [0, extent)
// but may exceed it slightly where geometry runs into a tile buffer.
func (l *Layer) Extent() uint32 { return l.extent }

// Len returns the number of features in the layer.
func (l *Layer) Len() int { return len(l.features) }

// Feature returns the i-th feature of the layer. It panics if i is out
// of range, like a slice index.
func (l *Layer) Feature(i int) *Feature { return l.features[i] }

// Features returns all features in layer order.
func (l *Layer) Features() []*Feature { return l.features }

// Keys returns the layer's property key dictionary in wire order.
func (l *Layer) Keys() []string { return l.keys }

// Values returns the layer's property value dictionary in wire order.
// Entries are string, float64, int64, uint64, bool, or nil.
func (l *Layer) Values() []interface{} { return l.values }
