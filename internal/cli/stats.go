package cli

// stats.go - whole-database statistics command

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/taurz/vectortile/pkg/vectortile"
)

// newStatsCmd creates the stats command, which decodes every tile in an
// mbtiles database and prints per-layer totals.
func newStatsCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "stats <mbtiles file>",
		Short: "Aggregate per-layer statistics over an mbtiles database",
		Long: `Decode every tile in an mbtiles database in parallel and print the
number of tiles, features, and geometry types per layer. Tiles that
fail to decode are reported and skipped.

Examples:
  vtdump stats world.mbtiles
  vtdump stats --workers 4 world.mbtiles`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			tracker := newProgress(logger)

			opts := scanOptions{
				workers: workers,
				progress: func(done, total int) {
					if done%1000 == 0 {
						logger.Debugf("Scanned %d/%d tiles", done, total)
					}
				},
			}

			report, err := scanMBTiles(args[0], opts)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(report.layers))
			for name := range report.layers {
				names = append(names, name)
			}
			sort.Strings(names)

			w := cmd.OutOrStdout()
			for _, name := range names {
				stats := report.layers[name]
				fmt.Fprintf(w, "%s: tiles=%d features=%d", name, stats.tiles, stats.features)
				for _, geom := range []vectortile.GeomType{
					vectortile.GeomPoint,
					vectortile.GeomLineString,
					vectortile.GeomPolygon,
					vectortile.GeomUnknown,
				} {
					if stats.byType[geom] > 0 {
						fmt.Fprintf(w, " %s=%d", geom, stats.byType[geom])
					}
				}
				fmt.Fprintln(w)
			}

			for _, scanErr := range report.errs {
				logger.Warnf("%v", scanErr)
			}

			tracker.done(fmt.Sprintf("Scanned %d tiles across %d layers",
				report.tileCount, len(report.layers)))
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "number of decoder goroutines (0 means all CPUs)")
	return cmd
}
