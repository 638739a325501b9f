package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb/geojson"

	"github.com/taurz/vectortile/pkg/vectortile"
)

func main() {
	data, err := os.ReadFile("tile.mvt")
	if err != nil {
		log.Fatal(err)
	}

	tile, err := vectortile.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	// Project every feature out of tile 14/8714/5973 into
	// longitude/latitude
	fc := geojson.NewFeatureCollection()
	for _, layer := range tile.Layers() {
		for _, feature := range layer.Features() {
			gf, err := feature.ToGeoJSON(8714, 5973, 14)
			if err != nil {
				log.Fatal(err)
			}
			fc.Append(gf)
		}
	}

	out, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
