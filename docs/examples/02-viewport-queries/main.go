package main

import (
	"fmt"
	"log"

	"geoshp/pkg/geoshp"
)

func main() {
	reader, err := geoshp.Open("data/parcels")
	if err != nil {
		log.Fatal(err)
	}
	defer reader.Close()

	// Boston-area viewport.
	viewport := geoshp.NewBoundingBox(-71.1, 42.3, -71.0, 42.4)

	records, err := reader.RangeQuery(viewport)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Visible records: %d\n", len(records))
	for _, rec := range records {
		fmt.Printf("  #%d: %v\n", rec.RecordNumber, rec.Geometry.Type)
	}
}
