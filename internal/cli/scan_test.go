package cli

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/taurz/vectortile/pkg/vectortile"
)

// command packs a command id and repeat count into one geometry integer.
func command(id, count uint32) uint32 {
	return (id & 0x7) | (count << 3)
}

// param zigzag-encodes one coordinate delta.
func param(d int32) uint32 {
	return uint32(protowire.EncodeZigZag(int64(d)))
}

// geomStream varint-encodes a geometry command stream.
func geomStream(values ...uint32) []byte {
	var buf []byte
	for _, v := range values {
		buf = protowire.AppendVarint(buf, uint64(v))
	}
	return buf
}

// featureMsg builds a feature message carrying a geometry type and a
// raw command stream.
func featureMsg(geomType uint64, geometry []byte) []byte {
	var buf []byte
	buf = protowire.AppendTag(buf, 3, protowire.VarintType)
	buf = protowire.AppendVarint(buf, geomType)
	buf = protowire.AppendTag(buf, 4, protowire.BytesType)
	buf = protowire.AppendBytes(buf, geometry)
	return buf
}

// layerMsg builds a named layer around the given feature messages,
// leaving version and extent at their defaults.
func layerMsg(name string, features ...[]byte) []byte {
	var buf []byte
	buf = protowire.AppendTag(buf, 1, protowire.BytesType)
	buf = protowire.AppendString(buf, name)
	for _, f := range features {
		buf = protowire.AppendTag(buf, 2, protowire.BytesType)
		buf = protowire.AppendBytes(buf, f)
	}
	return buf
}

// tileMsg wraps layer messages into a tile.
func tileMsg(layers ...[]byte) []byte {
	var buf []byte
	for _, l := range layers {
		buf = protowire.AppendTag(buf, 3, protowire.BytesType)
		buf = protowire.AppendBytes(buf, l)
	}
	return buf
}

func pointGeom(x, y int32) []byte {
	return geomStream(command(1, 1), param(x), param(y))
}

func lineGeom() []byte {
	return geomStream(command(1, 1), param(0), param(0),
		command(2, 2), param(10), param(0), param(0), param(10))
}

func polyGeom() []byte {
	return geomStream(command(1, 1), param(0), param(0),
		command(2, 3), param(2), param(0), param(0), param(2), param(-2), param(0),
		command(7, 1))
}

// writeMBTiles creates an mbtiles database holding the given tiles,
// gzipping the payloads the way real producers do.
func writeMBTiles(t *testing.T, tiles map[tileCoord][]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scan.mbtiles")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = db.Exec("create table tiles (zoom_level integer, tile_column integer, tile_row integer, tile_data blob)")
	if err != nil {
		t.Fatal(err)
	}

	for coord, data := range tiles {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			t.Fatal(err)
		}

		_, err = db.Exec("insert into tiles (zoom_level, tile_column, tile_row, tile_data) values (?, ?, ?, ?)",
			coord.Z, coord.X, tmsRow(coord.Z, coord.Y), buf.Bytes())
		if err != nil {
			t.Fatal(err)
		}
	}
	return path
}

// TestScanMBTiles tests aggregation of per-layer counts across a
// multi-tile database
func TestScanMBTiles(t *testing.T) {
	tileA := tileMsg(layerMsg("water",
		featureMsg(1, pointGeom(5, 5)),
		featureMsg(1, pointGeom(9, 9))))
	tileB := tileMsg(
		layerMsg("water", featureMsg(3, polyGeom())),
		layerMsg("roads", featureMsg(2, lineGeom())))

	path := writeMBTiles(t, map[tileCoord][]byte{
		{Z: 1, X: 0, Y: 0}: tileA,
		{Z: 1, X: 1, Y: 0}: tileB,
	})

	var calls int
	report, err := scanMBTiles(path, scanOptions{
		workers: 2,
		progress: func(done, total int) {
			calls++
			if total != 2 {
				t.Errorf("Expected total 2, got %d", total)
			}
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if report.tileCount != 2 {
		t.Errorf("Expected 2 tiles, got %d", report.tileCount)
	}
	if calls != 2 {
		t.Errorf("Expected 2 progress calls, got %d", calls)
	}
	if len(report.errs) != 0 {
		t.Fatalf("Expected no decode errors, got %v", report.errs)
	}

	water := report.layers["water"]
	if water == nil {
		t.Fatal("Expected a water layer in the report")
	}
	if water.tiles != 2 || water.features != 3 {
		t.Errorf("Expected water in 2 tiles with 3 features, got %d tiles and %d features",
			water.tiles, water.features)
	}
	if water.byType[vectortile.GeomPoint] != 2 || water.byType[vectortile.GeomPolygon] != 1 {
		t.Errorf("Unexpected water geometry counts: %v", water.byType)
	}

	roads := report.layers["roads"]
	if roads == nil {
		t.Fatal("Expected a roads layer in the report")
	}
	if roads.tiles != 1 || roads.features != 1 || roads.byType[vectortile.GeomLineString] != 1 {
		t.Errorf("Unexpected roads stats: tiles=%d features=%d types=%v",
			roads.tiles, roads.features, roads.byType)
	}
}

// TestScanMBTilesCollectsErrors tests that a broken tile is reported
// without stopping the scan
func TestScanMBTilesCollectsErrors(t *testing.T) {
	good := tileMsg(layerMsg("water", featureMsg(1, pointGeom(1, 1))))

	path := writeMBTiles(t, map[tileCoord][]byte{
		{Z: 2, X: 0, Y: 0}: good,
		{Z: 2, X: 1, Y: 1}: {0xff, 0xff, 0xff},
	})

	report, err := scanMBTiles(path, scanOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if len(report.errs) != 1 {
		t.Fatalf("Expected 1 decode error, got %v", report.errs)
	}
	if !strings.Contains(report.errs[0].Error(), "2/1/1") {
		t.Errorf("Expected the tile address in the error, got %v", report.errs[0])
	}
	if report.layers["water"] == nil || report.layers["water"].features != 1 {
		t.Error("Expected the good tile to still be counted")
	}
}

// TestScanMBTilesEmpty tests scanning a database with no tiles
func TestScanMBTilesEmpty(t *testing.T) {
	path := writeMBTiles(t, nil)

	report, err := scanMBTiles(path, scanOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if report.tileCount != 0 || len(report.layers) != 0 {
		t.Errorf("Expected an empty report, got %d tiles and %d layers",
			report.tileCount, len(report.layers))
	}
}

// TestScanMBTilesMissing tests scanning a path that does not exist
func TestScanMBTilesMissing(t *testing.T) {
	_, err := scanMBTiles(filepath.Join(t.TempDir(), "absent.mbtiles"), scanOptions{})
	if err == nil {
		t.Error("Expected an error for a missing database")
	}
}
