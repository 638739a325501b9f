package main

import (
	"fmt"
	"log"
	"os"

	"github.com/taurz/vectortile/pkg/vectortile"
)

func main() {
	data, err := os.ReadFile("tile.mvt")
	if err != nil {
		log.Fatal(err)
	}

	// Decode only the layers we care about, and keep going past
	// malformed ones
	opts := vectortile.DefaultParseOptions()
	opts.LayerFilter = []string{"water", "roads"}
	opts.SkipMalformedLayers = true

	tile, err := vectortile.ParseWithOptions(data, opts)
	if err != nil {
		log.Fatal(err)
	}

	for _, layer := range tile.Layers() {
		fmt.Printf("%s: %d features\n", layer.Name(), layer.Len())
	}
}
