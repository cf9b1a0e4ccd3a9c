package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/guardify/backend/internal/infrastructure/dataset"
	"github.com/guardify/backend/internal/infrastructure/imaging"
	"github.com/guardify/backend/internal/usecase"
)

func main() {
	inputPath := pflag.String("input", "data.csv", "input dataset CSV")
	outputPath := pflag.String("output", "data_with_images.csv", "output dataset CSV")
	maxImages := pflag.Int("max-images", 5, "maximum images to analyze per row")
	timeout := pflag.Duration("timeout", 10*time.Second, "per-image fetch timeout")
	urlColumn := pflag.String("url-column", "image_urls", "column holding comma-separated image URLs")
	concurrency := pflag.Int("concurrency", 4, "concurrent image fetches")
	pflag.Parse()

	if _, err := os.Stat(*inputPath); err != nil {
		log.Fatalf("Missing data file: %s", *inputPath)
	}

	table, err := dataset.Read(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}

	analyzer := imaging.NewAnalyzer(imaging.NewFetcher(*timeout), imaging.AnalyzerConfig{
		FetchTimeout: *timeout,
		Concurrency:  *concurrency,
	})
	extractor := usecase.NewExtractionService(analyzer, usecase.ExtractionConfig{
		URLColumn: *urlColumn,
		MaxImages: *maxImages,
	})

	if err := extractor.Enrich(context.Background(), table); err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	if err := table.Write(*outputPath); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}
	log.Printf("Wrote %s", *outputPath)
}
