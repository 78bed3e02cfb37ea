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

	fmt.Printf("Records: %d\n", reader.RecordCount())
	fmt.Printf("Shape type: %v\n", reader.ShapeType())

	bounds := reader.Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinX, bounds.MinY,
		bounds.MaxX, bounds.MaxY)

	fmt.Print(reader.Info())
}
