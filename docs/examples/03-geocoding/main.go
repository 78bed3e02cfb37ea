package main

import (
	"fmt"
	"log"

	"geoshp/pkg/geoshp"
)

func main() {
	geocoder := geoshp.NewGeocoder()
	if err := geocoder.Load("data/addresses"); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Loaded: %v\n", geocoder.Statistics())

	result := geocoder.Geocode("123 Main Street, Anytown, CA 12345")
	if result.MatchType == "" {
		fmt.Println("no match")
		return
	}
	fmt.Printf("Matched %s at (%.5f, %.5f) with confidence %.2f\n",
		result.MatchType, result.Coordinate.X, result.Coordinate.Y, result.Confidence)

	reverse, err := geocoder.ReverseGeocode(geoshp.NewPoint(-71.06, 42.36), 0.05)
	if err != nil {
		log.Fatal(err)
	}
	if reverse.MatchType == "" {
		fmt.Println("no reverse match")
		return
	}
	fmt.Printf("Reverse geocode: %s (confidence %.2f)\n", reverse.MatchedAddress.RawText, reverse.Confidence)
}
