package cli

// scan.go - parallel whole-database tile scanning

import (
	"database/sql"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/taurz/vectortile/pkg/vectortile"
)

// scanOptions controls parallel database scanning.
type scanOptions struct {
	// Workers: number of decoder goroutines.
	// 0 defaults to runtime.NumCPU().
	workers int

	// Progress: optional callback invoked after each tile with
	// (done, total) counts.
	progress func(done, total int)
}

// layerStats aggregates decoded features for one named layer across
// every tile it appears in.
type layerStats struct {
	tiles    int
	features int
	byType   map[vectortile.GeomType]int
}

// scanReport is the outcome of a whole-database scan. Tiles that fail
// to decode are collected in errs rather than aborting the scan.
type scanReport struct {
	tileCount int
	layers    map[string]*layerStats
	errs      []error
}

// tileRow is one row pulled from the tiles table, with the row already
// flipped back to XYZ.
type tileRow struct {
	coord tileCoord
	data  []byte
}

// layerTally is the per-layer count of a single decoded tile.
type layerTally struct {
	name     string
	features int
	byType   map[vectortile.GeomType]int
}

// scanResult is the outcome of decoding one tile.
type scanResult struct {
	coord tileCoord
	tally []layerTally
	err   error
}

// scanMBTiles decodes every tile in an mbtiles database using a worker
// pool and aggregates per-layer feature counts. Rows are streamed out
// of the database while workers decode, so memory stays proportional
// to the worker count rather than the database size.
func scanMBTiles(path string, opts scanOptions) (*scanReport, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open mbtiles: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mbtiles: %w", err)
	}
	defer db.Close()

	var total int
	if err := db.QueryRow("select count(*) from tiles").Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count tiles: %w", err)
	}

	report := &scanReport{tileCount: total, layers: make(map[string]*layerStats)}
	if total == 0 {
		return report, nil
	}

	workers := opts.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}

	jobs := make(chan tileRow, workers)
	results := make(chan scanResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range jobs {
				results <- decodeTileRow(row)
			}
		}()
	}

	// Stream rows into the pool; the producer owns the query and
	// reports its own failure through prodErr.
	prodErr := make(chan error, 1)
	go func() {
		defer close(jobs)

		rows, err := db.Query("select zoom_level, tile_column, tile_row, tile_data from tiles")
		if err != nil {
			prodErr <- fmt.Errorf("failed to query tiles: %w", err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var z, col, row uint32
			var data []byte
			if err := rows.Scan(&z, &col, &row, &data); err != nil {
				prodErr <- fmt.Errorf("failed to scan tile row: %w", err)
				return
			}
			jobs <- tileRow{coord: tileCoord{Z: z, X: col, Y: tmsRow(z, row)}, data: data}
		}
		prodErr <- rows.Err()
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	done := 0
	for result := range results {
		done++
		if opts.progress != nil {
			opts.progress(done, total)
		}

		if result.err != nil {
			report.errs = append(report.errs, fmt.Errorf("tile %s: %w", result.coord, result.err))
			continue
		}
		report.merge(result)
	}

	if err := <-prodErr; err != nil {
		return nil, err
	}
	return report, nil
}

// decodeTileRow decompresses and decodes one tile into per-layer
// tallies.
func decodeTileRow(row tileRow) scanResult {
	data, err := maybeGunzip(row.data)
	if err != nil {
		return scanResult{coord: row.coord, err: err}
	}

	tile, err := vectortile.Parse(data)
	if err != nil {
		return scanResult{coord: row.coord, err: err}
	}

	tallies := make([]layerTally, 0, tile.LayerCount())
	for _, layer := range tile.Layers() {
		tally := layerTally{
			name:     layer.Name(),
			features: layer.Len(),
			byType:   make(map[vectortile.GeomType]int),
		}
		for _, f := range layer.Features() {
			tally.byType[f.Type()]++
		}
		tallies = append(tallies, tally)
	}
	return scanResult{coord: row.coord, tally: tallies}
}

// merge folds one decoded tile into the running totals.
func (r *scanReport) merge(result scanResult) {
	for _, tally := range result.tally {
		stats := r.layers[tally.name]
		if stats == nil {
			stats = &layerStats{byType: make(map[vectortile.GeomType]int)}
			r.layers[tally.name] = stats
		}
		stats.tiles++
		stats.features += tally.features
		for geom, n := range tally.byType {
			stats.byType[geom] += n
		}
	}
}
