package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/guardify/backend/internal/domain"
	"github.com/guardify/backend/internal/infrastructure/dataset"
)

// imageColumns are the aggregate columns the extraction pass appends, in
// output order.
var imageColumns = []string{
	domain.FeatureImageCountFromURLs,
	domain.FeatureImageAvgPixels,
	domain.FeatureImageLowResCount,
	domain.FeatureImageAvgSharpness,
	domain.FeatureImageAspectStd,
}

// ExtractionConfig holds configuration for the batch extraction pass
type ExtractionConfig struct {
	URLColumn string
	MaxImages int
}

// ExtractionService enriches a dataset with image-quality aggregate
// columns, one analysis pass per row.
type ExtractionService struct {
	analyzer  domain.ImageAnalyzer
	urlColumn string
	maxImages int
}

// NewExtractionService creates the batch extraction driver.
func NewExtractionService(analyzer domain.ImageAnalyzer, config ExtractionConfig) *ExtractionService {
	urlColumn := config.URLColumn
	if urlColumn == "" {
		urlColumn = "image_urls"
	}
	maxImages := config.MaxImages
	if maxImages <= 0 {
		maxImages = 5
	}
	return &ExtractionService{
		analyzer:  analyzer,
		urlColumn: urlColumn,
		maxImages: maxImages,
	}
}

// Enrich analyzes every row's images and appends the five aggregate
// columns. Rows with no successfully processed image get zeros, never
// empty cells. A missing URL column is a fatal configuration error.
func (s *ExtractionService) Enrich(ctx context.Context, table *dataset.Table) error {
	if !table.HasColumn(s.urlColumn) {
		return fmt.Errorf("%w: %s", domain.ErrMissingColumns, s.urlColumn)
	}

	table.AddColumns(imageColumns)
	for i, row := range table.Rows {
		urls := dataset.ParseURLList(row[s.urlColumn])
		agg := s.analyzer.Analyze(ctx, urls, s.maxImages)

		row[domain.FeatureImageCountFromURLs] = strconv.Itoa(agg.Count)
		row[domain.FeatureImageAvgPixels] = strconv.Itoa(agg.AveragePixels)
		row[domain.FeatureImageLowResCount] = strconv.Itoa(agg.LowResCount)
		row[domain.FeatureImageAvgSharpness] = strconv.FormatFloat(agg.AverageSharpness, 'f', -1, 64)
		row[domain.FeatureImageAspectStd] = strconv.FormatFloat(agg.AspectRatioStdDev, 'f', -1, 64)

		if (i+1)%50 == 0 {
			log.Printf("[EXTRACT] processed %d/%d rows", i+1, len(table.Rows))
		}
	}
	return nil
}
