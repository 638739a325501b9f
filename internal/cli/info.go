package cli

// info.go - mbtiles metadata command

import (
	"database/sql"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

// newInfoCmd creates the info command, which prints the metadata table
// of an mbtiles database along with tile counts per zoom level.
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <mbtiles file>",
		Short: "Show mbtiles metadata and tile counts",
		Long: `Print the metadata rows of an mbtiles database (name, format, bounds,
and whatever else the producer recorded) followed by the number of
tiles stored at each zoom level.

Examples:
  vtdump info world.mbtiles`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err != nil {
				return fmt.Errorf("failed to open mbtiles: %w", err)
			}

			db, err := sql.Open("sqlite3", args[0])
			if err != nil {
				return fmt.Errorf("failed to open mbtiles: %w", err)
			}
			defer db.Close()

			meta, err := readMetadata(db)
			if err != nil {
				return err
			}
			counts, zooms, err := readZoomCounts(db)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			keys := make([]string, 0, len(meta))
			for key := range meta {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(w, "%s: %s\n", key, meta[key])
			}

			for _, z := range zooms {
				fmt.Fprintf(w, "zoom %d: %d tiles\n", z, counts[z])
			}
			return nil
		},
	}

	return cmd
}

// readMetadata loads the metadata table into a map. A database without
// a metadata table yields an empty map rather than an error, since the
// table is optional in practice.
func readMetadata(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query("select name, value from metadata")
	if err != nil {
		return map[string]string{}, nil
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		meta[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	return meta, nil
}

// readZoomCounts returns tile counts keyed by zoom level plus the
// zoom levels in ascending order.
func readZoomCounts(db *sql.DB) (map[uint32]int, []uint32, error) {
	rows, err := db.Query("select zoom_level, count(*) from tiles group by zoom_level order by zoom_level")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count tiles: %w", err)
	}
	defer rows.Close()

	counts := make(map[uint32]int)
	var zooms []uint32
	for rows.Next() {
		var z uint32
		var n int
		if err := rows.Scan(&z, &n); err != nil {
			return nil, nil, fmt.Errorf("failed to scan tile count: %w", err)
		}
		counts[z] = n
		zooms = append(zooms, z)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to count tiles: %w", err)
	}
	return counts, zooms, nil
}
