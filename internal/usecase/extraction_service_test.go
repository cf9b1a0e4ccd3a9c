package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/guardify/backend/internal/domain"
	"github.com/guardify/backend/internal/infrastructure/dataset"
)

// stubAnalyzer returns a canned aggregate keyed by the first URL.
type stubAnalyzer struct {
	byFirstURL map[string]domain.ImageAggregate
	maxSeen    int
}

func (a *stubAnalyzer) Analyze(ctx context.Context, urls []string, maxImages int) domain.ImageAggregate {
	a.maxSeen = maxImages
	if len(urls) == 0 {
		return domain.ImageAggregate{}
	}
	return a.byFirstURL[urls[0]]
}

func TestEnrich(t *testing.T) {
	t.Run("appends aggregate columns to every row", func(t *testing.T) {
		table := &dataset.Table{
			Columns: []string{"title", "image_urls"},
			Rows: []map[string]string{
				{"title": "A", "image_urls": "http://a/1.jpg,http://a/2.jpg"},
				{"title": "B", "image_urls": ""},
			},
		}
		analyzer := &stubAnalyzer{byFirstURL: map[string]domain.ImageAggregate{
			"http://a/1.jpg": {
				Count:             2,
				AveragePixels:     150000,
				LowResCount:       1,
				AverageSharpness:  12.5,
				AspectRatioStdDev: 0.25,
			},
		}}
		svc := NewExtractionService(analyzer, ExtractionConfig{})

		if err := svc.Enrich(context.Background(), table); err != nil {
			t.Fatalf("Enrich() error = %v", err)
		}

		if got := len(table.Columns); got != 7 {
			t.Fatalf("columns = %d, want 7", got)
		}
		if analyzer.maxSeen != 5 {
			t.Errorf("default max images = %d, want 5", analyzer.maxSeen)
		}

		row := table.Rows[0]
		if row["image_count_from_urls"] != "2" || row["image_avg_pixels"] != "150000" {
			t.Errorf("row 0 aggregates = %v", row)
		}
		if row["image_avg_sharpness"] != "12.5" || row["image_aspect_ratio_std"] != "0.25" {
			t.Errorf("row 0 float aggregates = %v", row)
		}
	})

	t.Run("rows with no images get zeros not blanks", func(t *testing.T) {
		table := &dataset.Table{
			Columns: []string{"title", "image_urls"},
			Rows:    []map[string]string{{"title": "B", "image_urls": ""}},
		}
		svc := NewExtractionService(&stubAnalyzer{}, ExtractionConfig{})

		if err := svc.Enrich(context.Background(), table); err != nil {
			t.Fatalf("Enrich() error = %v", err)
		}

		row := table.Rows[0]
		for _, col := range []string{"image_count_from_urls", "image_avg_pixels", "image_low_res_count"} {
			if row[col] != "0" {
				t.Errorf("%s = %q, want \"0\"", col, row[col])
			}
		}
		if row["image_avg_sharpness"] != "0" || row["image_aspect_ratio_std"] != "0" {
			t.Errorf("float aggregates = %v, want zeros", row)
		}
	})

	t.Run("missing url column is fatal", func(t *testing.T) {
		table := &dataset.Table{Columns: []string{"title"}}
		svc := NewExtractionService(&stubAnalyzer{}, ExtractionConfig{})

		err := svc.Enrich(context.Background(), table)
		if !errors.Is(err, domain.ErrMissingColumns) {
			t.Errorf("error = %v, want ErrMissingColumns", err)
		}
	})

	t.Run("custom url column and cap", func(t *testing.T) {
		table := &dataset.Table{
			Columns: []string{"pics"},
			Rows:    []map[string]string{{"pics": "http://x/1.jpg"}},
		}
		analyzer := &stubAnalyzer{}
		svc := NewExtractionService(analyzer, ExtractionConfig{URLColumn: "pics", MaxImages: 2})

		if err := svc.Enrich(context.Background(), table); err != nil {
			t.Fatalf("Enrich() error = %v", err)
		}
		if analyzer.maxSeen != 2 {
			t.Errorf("max images = %d, want 2", analyzer.maxSeen)
		}
	})
}
