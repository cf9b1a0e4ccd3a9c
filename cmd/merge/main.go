package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/guardify/backend/internal/infrastructure/dataset"
)

func main() {
	capturePath := pflag.String("capture", "", "path to the capture CSV file (required)")
	datasetPath := pflag.String("dataset", "data.csv", "path to the canonical dataset CSV")
	pflag.Parse()

	if *capturePath == "" {
		pflag.Usage()
		os.Exit(2)
	}
	if _, err := os.Stat(*capturePath); err != nil {
		log.Fatalf("Capture file not found: %s", *capturePath)
	}
	if _, err := os.Stat(*datasetPath); err != nil {
		log.Fatalf("Dataset file not found: %s", *datasetPath)
	}

	canonical, err := dataset.Read(*datasetPath)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}
	capture, err := dataset.Read(*capturePath)
	if err != nil {
		log.Fatalf("Failed to read capture: %v", err)
	}

	appended := dataset.Merge(canonical, capture)
	if err := canonical.Write(*datasetPath); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}
	log.Printf("Appended %d row(s) to %s", appended, *datasetPath)
}
