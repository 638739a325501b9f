package main

import (
	"fmt"
	"log"
	"os"

	"github.com/taurz/vectortile/pkg/vectortile"
)

func printFeature(feature *vectortile.Feature) {
	if id, ok := feature.ID(); ok {
		fmt.Printf("Feature %d (%s)\n", id, feature.Type())
	} else {
		fmt.Printf("Feature (%s)\n", feature.Type())
	}

	// Property values decode to string, float64, int64, uint64, or
	// bool; an empty value message comes through as nil
	for key, value := range feature.Properties() {
		switch v := value.(type) {
		case string:
			fmt.Printf("  %s = %q\n", key, v)
		case float64:
			fmt.Printf("  %s = %.2f\n", key, v)
		case int64:
			fmt.Printf("  %s = %d\n", key, v)
		case uint64:
			fmt.Printf("  %s = %d\n", key, v)
		case bool:
			fmt.Printf("  %s = %v\n", key, v)
		default:
			fmt.Printf("  %s = (unset)\n", key)
		}
	}
}

func main() {
	data, err := os.ReadFile("tile.mvt")
	if err != nil {
		log.Fatal(err)
	}

	tile, err := vectortile.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	layer, ok := tile.Layer("poi")
	if !ok {
		log.Fatal("no poi layer in tile")
	}

	// Print details for the first few features
	count := 0
	for _, f := range layer.Features() {
		printFeature(f)
		count++
		if count >= 5 {
			break
		}
	}
}
