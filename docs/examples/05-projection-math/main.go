package main

import (
	"fmt"
	"log"

	"github.com/taurz/vectortile/pkg/geo"
)

func main() {
	// Boston Common
	boston, err := geo.NewLngLat(-71.0656, 42.3550)
	if err != nil {
		log.Fatal(err)
	}

	// Project into the mercator unit square
	coord := geo.MercatorCoordinateFromLngLat(boston, 0)
	fmt.Printf("Mercator: (%.6f, %.6f)\n", coord.X, coord.Y)

	// One meter in mercator units at this latitude
	fmt.Printf("Meter: %.12f units\n", coord.MeterInMercatorCoordinateUnits())

	// Great-circle distance to New York
	newYork, err := geo.NewLngLat(-74.0060, 40.7128)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Boston to New York: %.1f km\n", boston.DistanceTo(newYork)/1000)

	// A 10km viewport around Boston
	bounds := boston.ToBounds(10000)
	fmt.Printf("Viewport: %s\n", bounds)
	fmt.Printf("Contains New York: %v\n", bounds.Contains(newYork))
}
