package cli

// layers.go - layer listing command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taurz/vectortile/pkg/vectortile"
)

// newLayersCmd creates the layers command, which lists every layer of
// a tile with its version, extent, and geometry type breakdown.
func newLayersCmd() *cobra.Command {
	var src sourceOpts

	cmd := &cobra.Command{
		Use:   "layers [tile file]",
		Short: "List the layers of a vector tile",
		Long: `List every layer of a vector tile with its version, extent, feature
count, and a breakdown by geometry type.

Examples:
  vtdump layers tile.mvt
  vtdump layers --mbtiles world.mbtiles --tile 14/8714/5973`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			data, _, err := src.resolve(args)
			if err != nil {
				return err
			}
			logger.Debugf("Read %d tile bytes", len(data))

			tile, err := vectortile.Parse(data)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, layer := range tile.Layers() {
				counts := make(map[vectortile.GeomType]int)
				for _, feature := range layer.Features() {
					counts[feature.Type()]++
				}

				fmt.Fprintf(w, "%s: version=%d extent=%d features=%d",
					layer.Name(), layer.Version(), layer.Extent(), layer.Len())
				for _, geom := range []vectortile.GeomType{
					vectortile.GeomPoint,
					vectortile.GeomLineString,
					vectortile.GeomPolygon,
					vectortile.GeomUnknown,
				} {
					if counts[geom] > 0 {
						fmt.Fprintf(w, " %s=%d", geom, counts[geom])
					}
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}

	src.addFlags(cmd)
	return cmd
}
