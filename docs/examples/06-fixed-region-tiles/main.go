package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/taurz/vectortile/pkg/geo"
	"github.com/taurz/vectortile/pkg/vectortile"
)

func main() {
	data, err := os.ReadFile("region.mvt")
	if err != nil {
		log.Fatal(err)
	}

	tile, err := vectortile.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	// This tile covers a fixed rectangle instead of a slot in the
	// global pyramid, so project it onto explicit bounds
	sw, err := geo.NewLngLat(-10, 35)
	if err != nil {
		log.Fatal(err)
	}
	ne, err := geo.NewLngLat(30, 60)
	if err != nil {
		log.Fatal(err)
	}
	bounds, err := geo.NewLngLatBounds(sw, ne)
	if err != nil {
		log.Fatal(err)
	}

	for _, layer := range tile.Layers() {
		for i, feature := range layer.Features() {
			gf, err := feature.ToGeoJSONInBounds(bounds)
			if err != nil {
				log.Fatal(err)
			}

			out, err := json.Marshal(gf)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%s/%d: %s\n", layer.Name(), i, out)
		}
	}
}
