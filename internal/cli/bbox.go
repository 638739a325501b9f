package cli

// bbox.go - per-feature bounding box command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taurz/vectortile/pkg/vectortile"
)

// featureBBox is one line of bbox output.
type featureBBox struct {
	Layer string   `json:"layer"`
	Index int      `json:"index"`
	ID    *uint64  `json:"id,omitempty"`
	Type  string   `json:"type"`
	BBox  [4]int32 `json:"bbox"`
}

// newBBoxCmd creates the bbox command, which prints one JSON line per
// feature with its bounding box in tile-local integer units.
func newBBoxCmd() *cobra.Command {
	var src sourceOpts
	var layerName string

	cmd := &cobra.Command{
		Use:   "bbox [tile file]",
		Short: "Print per-feature bounding boxes in tile units",
		Long: `Print one JSON line per feature with its bounding box in tile-local
integer units as [minX, minY, maxX, maxY]. Bounding boxes are computed
directly from the geometry commands without materializing rings.

Examples:
  vtdump bbox tile.mvt
  vtdump bbox tile.mvt --layer water`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _, err := src.resolve(args)
			if err != nil {
				return err
			}

			opts := vectortile.DefaultParseOptions()
			if layerName != "" {
				opts.LayerFilter = []string{layerName}
			}
			tile, err := vectortile.ParseWithOptions(data, opts)
			if err != nil {
				return err
			}
			if layerName != "" && tile.LayerCount() == 0 {
				return fmt.Errorf("layer %q not found in tile", layerName)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, layer := range tile.Layers() {
				for i, feature := range layer.Features() {
					box, err := feature.BBox()
					if err != nil {
						return fmt.Errorf("feature %d in layer %q: %w", i, layer.Name(), err)
					}

					line := featureBBox{
						Layer: layer.Name(),
						Index: i,
						Type:  feature.Type().String(),
						BBox:  [4]int32{box.MinX, box.MinY, box.MaxX, box.MaxY},
					}
					if id, ok := feature.ID(); ok {
						line.ID = &id
					}
					if err := enc.Encode(line); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVar(&layerName, "layer", "", "restrict output to this layer")
	return cmd
}
