package main

import (
	"fmt"
	"log"
	"os"

	"github.com/taurz/vectortile/pkg/vectortile"
)

func main() {
	// Read tile file
	data, err := os.ReadFile("tile.mvt")
	if err != nil {
		log.Fatal(err)
	}

	// Parse tile
	tile, err := vectortile.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	// Print tile info
	fmt.Printf("Layers: %d\n", tile.LayerCount())
	for _, layer := range tile.Layers() {
		fmt.Printf("  %s: %d features (extent %d)\n",
			layer.Name(), layer.Len(), layer.Extent())
	}
}
