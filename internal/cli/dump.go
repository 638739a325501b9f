package cli

// dump.go - GeoJSON export command

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"github.com/taurz/vectortile/pkg/geo"
	"github.com/taurz/vectortile/pkg/vectortile"
)

// dumpOpts holds the command-line flags for the dump command.
type dumpOpts struct {
	source sourceOpts

	// Layer: decode only the named layer.
	layer string

	// Bounds: project onto "west,south,east,north" instead of the
	// global web mercator pyramid.
	bounds string
}

// newDumpCmd creates the dump command, which decodes a tile into a
// GeoJSON FeatureCollection on stdout.
func newDumpCmd() *cobra.Command {
	var opts dumpOpts

	cmd := &cobra.Command{
		Use:   "dump [tile file]",
		Short: "Decode a vector tile to GeoJSON",
		Long: `Decode a vector tile into a GeoJSON FeatureCollection.

The tile address (--tile z/x/y) places coordinates in the global web
mercator pyramid. Alternatively --bounds west,south,east,north maps the
tile linearly onto a geographic rectangle, for tiles that cover a fixed
region rather than a slot in the pyramid.

Examples:
  vtdump dump tile.mvt --tile 14/8714/5973
  vtdump dump tile.mvt --tile 14/8714/5973 --layer water
  vtdump dump region.mvt --bounds -10,35,30,60
  vtdump dump --mbtiles world.mbtiles --tile 3/4/2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			tracker := newProgress(logger)

			data, coord, err := opts.source.resolve(args)
			if err != nil {
				return err
			}
			logger.Debugf("Read %d tile bytes", len(data))

			var bounds *geo.LngLatBounds
			if opts.bounds != "" {
				b, err := parseBounds(opts.bounds)
				if err != nil {
					return err
				}
				bounds = &b
			}
			if bounds == nil && coord == nil {
				return fmt.Errorf("either --tile z/x/y or --bounds is required to project coordinates")
			}

			parseOpts := vectortile.DefaultParseOptions()
			if opts.layer != "" {
				parseOpts.LayerFilter = []string{opts.layer}
			}
			tile, err := vectortile.ParseWithOptions(data, parseOpts)
			if err != nil {
				return err
			}
			if opts.layer != "" && tile.LayerCount() == 0 {
				return fmt.Errorf("layer %q not found in tile", opts.layer)
			}

			fc := geojson.NewFeatureCollection()
			for _, layer := range tile.Layers() {
				for i, feature := range layer.Features() {
					var gf *geojson.Feature
					if bounds != nil {
						gf, err = feature.ToGeoJSONInBounds(*bounds)
					} else {
						gf, err = feature.ToGeoJSON(coord.X, coord.Y, coord.Z)
					}
					if err != nil {
						return fmt.Errorf("feature %d in layer %q: %w", i, layer.Name(), err)
					}
					fc.Append(gf)
				}
			}

			out, err := json.Marshal(fc)
			if err != nil {
				return fmt.Errorf("failed to marshal GeoJSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			tracker.done(fmt.Sprintf("Decoded %d features", len(fc.Features)))
			return nil
		},
	}

	opts.source.addFlags(cmd)
	cmd.Flags().StringVar(&opts.layer, "layer", "", "decode only this layer")
	cmd.Flags().StringVar(&opts.bounds, "bounds", "", "project onto west,south,east,north instead of web mercator")
	return cmd
}

// parseBounds parses a "west,south,east,north" flag value.
func parseBounds(s string) (geo.LngLatBounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geo.LngLatBounds{}, fmt.Errorf("invalid bounds %q: expected west,south,east,north", s)
	}

	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geo.LngLatBounds{}, fmt.Errorf("invalid bounds %q: %w", s, err)
		}
		vals[i] = v
	}

	sw, err := geo.NewLngLat(vals[0], vals[1])
	if err != nil {
		return geo.LngLatBounds{}, fmt.Errorf("invalid bounds %q: %w", s, err)
	}
	ne, err := geo.NewLngLat(vals[2], vals[3])
	if err != nil {
		return geo.LngLatBounds{}, fmt.Errorf("invalid bounds %q: %w", s, err)
	}

	b, err := geo.NewLngLatBounds(sw, ne)
	if err != nil {
		return geo.LngLatBounds{}, fmt.Errorf("invalid bounds %q: %w", s, err)
	}
	return b, nil
}
