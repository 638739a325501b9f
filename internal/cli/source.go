package cli

// source.go - tile input handling for files and mbtiles databases

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/mattn/go-sqlite3"
)

// maxZoom bounds the tile addresses accepted on the command line.
// Zoom 22 resolves to under 10cm per tile unit at the equator, beyond
// any published tileset.
const maxZoom = 22

// tileCoord addresses one tile in the global XYZ pyramid.
type tileCoord struct {
	Z, X, Y uint32
}

// parseTileCoord parses a "z/x/y" tile address. Zoom must be at most
// maxZoom and x, y must be below 2^z.
func parseTileCoord(s string) (tileCoord, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return tileCoord{}, fmt.Errorf("invalid tile address %q: expected z/x/y", s)
	}

	var nums [3]uint32
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return tileCoord{}, fmt.Errorf("invalid tile address %q: %w", s, err)
		}
		nums[i] = uint32(n)
	}

	coord := tileCoord{Z: nums[0], X: nums[1], Y: nums[2]}
	if coord.Z > maxZoom {
		return tileCoord{}, fmt.Errorf("invalid tile address %q: zoom %d exceeds %d", s, coord.Z, maxZoom)
	}
	if limit := uint32(1) << coord.Z; coord.X >= limit || coord.Y >= limit {
		return tileCoord{}, fmt.Errorf("invalid tile address %q: x and y must be below %d at zoom %d", s, limit, coord.Z)
	}
	return coord, nil
}

// String returns the address in z/x/y form.
func (c tileCoord) String() string {
	return fmt.Sprintf("%d/%d/%d", c.Z, c.X, c.Y)
}

// sourceOpts holds the flags selecting where tile bytes come from:
// either a tile file argument or an mbtiles database plus address.
type sourceOpts struct {
	// Mbtiles: path to an mbtiles database to read the tile from.
	mbtiles string

	// Tile: tile address in z/x/y form.
	tile string
}

// addFlags registers the source flags on cmd.
func (o *sourceOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.mbtiles, "mbtiles", "", "read the tile from this mbtiles database")
	cmd.Flags().StringVar(&o.tile, "tile", "", "tile address z/x/y")
}

// resolve loads the tile bytes and, when given, the parsed tile
// address. With --mbtiles the address is required and the file
// argument must be absent; with a file argument the address is
// optional and coord is nil when omitted.
func (o *sourceOpts) resolve(args []string) (data []byte, coord *tileCoord, err error) {
	if o.tile != "" {
		c, err := parseTileCoord(o.tile)
		if err != nil {
			return nil, nil, err
		}
		coord = &c
	}

	if o.mbtiles != "" {
		if len(args) > 0 {
			return nil, nil, fmt.Errorf("cannot combine --mbtiles with a tile file argument")
		}
		if coord == nil {
			return nil, nil, fmt.Errorf("--mbtiles requires --tile z/x/y")
		}
		data, err = readMBTilesTile(o.mbtiles, *coord)
		return data, coord, err
	}

	if len(args) != 1 {
		return nil, nil, fmt.Errorf("expected a tile file argument or --mbtiles")
	}
	data, err = readTileFile(args[0])
	return data, coord, err
}

// readTileFile reads a raw or gzip-compressed tile from disk.
func readTileFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile: %w", err)
	}
	return maybeGunzip(data)
}

// maybeGunzip decompresses data when it starts with the gzip magic
// bytes. Tiles are commonly stored gzip-compressed.
func maybeGunzip(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress tile: %w", err)
	}
	return out, nil
}

// tmsRow converts an XYZ tile row to the TMS scheme used by mbtiles,
// which counts rows from the south edge of the pyramid.
func tmsRow(z, y uint32) uint32 {
	return (uint32(1) << z) - 1 - y
}

// readMBTilesTile reads one tile from an mbtiles database.
func readMBTilesTile(path string, coord tileCoord) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open mbtiles: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mbtiles: %w", err)
	}
	defer db.Close()

	var data []byte
	row := db.QueryRow(
		"select tile_data from tiles where zoom_level = ? and tile_column = ? and tile_row = ?",
		coord.Z, coord.X, tmsRow(coord.Z, coord.Y),
	)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tile %s not found in %s", coord, path)
		}
		return nil, fmt.Errorf("failed to query mbtiles: %w", err)
	}
	return maybeGunzip(data)
}
