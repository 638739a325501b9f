package vectortile

// ParseOptions configures tile parsing behavior
type ParseOptions struct {
	// LayerFilter: if non-empty, only keep layers with these names
	// Empty means keep all layers
	LayerFilter []string

	// SkipMalformedLayers: if true, drop layers that fail to decode
	// instead of failing the whole tile
	// Default: false (return error on the first malformed layer)
	SkipMalformedLayers bool
}

// DefaultParseOptions returns parse options with defaults
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		LayerFilter:         nil,
		SkipMalformedLayers: false,
	}
}
