package imaging

import (
	"context"
	"image"
	"log"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guardify/backend/internal/domain"
)

// ImageSource is the fetch-and-decode capability the analyzer depends on.
type ImageSource interface {
	FetchImage(ctx context.Context, imageURL string) (image.Image, error)
}

// AnalyzerConfig holds configuration for the image quality analyzer
type AnalyzerConfig struct {
	FetchTimeout       time.Duration
	Concurrency        int
	EnableDebugLogging bool
}

// Analyzer computes per-image quality metrics and folds them into a
// listing-level aggregate. Fetch or decode failures are silent per-URL
// skips; they never fail a request and never abort sibling fetches.
type Analyzer struct {
	source             ImageSource
	fetchTimeout       time.Duration
	concurrency        int
	enableDebugLogging bool
}

// NewAnalyzer creates an analyzer over the given image source.
func NewAnalyzer(source ImageSource, config AnalyzerConfig) *Analyzer {
	timeout := config.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	concurrency := config.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Analyzer{
		source:             source,
		fetchTimeout:       timeout,
		concurrency:        concurrency,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// analyzeOne measures a single decoded image.
func analyzeOne(img image.Image) domain.ImageMetrics {
	gray, w, h := grayscale(img)
	return domain.ImageMetrics{
		Width:     w,
		Height:    h,
		Sharpness: laplacianVariance(gray, w, h),
		IsLowRes:  domain.LowRes(w, h),
	}
}

// Analyze fetches and measures the listing's images and aggregates the
// results. Fetches run concurrently with an independent timeout each, but
// the maxImages cap folds over the input URL order, so results are
// deterministic across runs regardless of completion order. Failed URLs
// are skipped and do not count against the cap.
func (a *Analyzer) Analyze(ctx context.Context, urls []string, maxImages int) domain.ImageAggregate {
	if maxImages <= 0 || len(urls) == 0 {
		return domain.ImageAggregate{}
	}

	results := make([]*domain.ImageMetrics, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, url := range urls {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, a.fetchTimeout)
			defer cancel()

			img, err := a.source.FetchImage(fetchCtx, url)
			if err != nil {
				if a.enableDebugLogging {
					log.Printf("[IMG] skip %s: %v", url, err)
				}
				return nil
			}
			metrics := analyzeOne(img)
			results[i] = &metrics
			return nil
		})
	}
	// Workers only ever return nil; failures are recorded as skips.
	_ = g.Wait()

	metrics := make([]domain.ImageMetrics, 0, maxImages)
	for _, m := range results {
		if m == nil {
			continue
		}
		metrics = append(metrics, *m)
		if len(metrics) == maxImages {
			break
		}
	}
	return Aggregate(metrics)
}

// Aggregate folds per-image metrics into the listing-level aggregate.
// With no metrics every field is zero; the zero values keep numeric
// feature columns present downstream.
func Aggregate(metrics []domain.ImageMetrics) domain.ImageAggregate {
	if len(metrics) == 0 {
		return domain.ImageAggregate{}
	}

	var pixelSum, sharpnessSum float64
	lowRes := 0
	ratios := make([]float64, 0, len(metrics))
	for _, m := range metrics {
		pixelSum += float64(m.Width * m.Height)
		sharpnessSum += m.Sharpness
		if m.IsLowRes {
			lowRes++
		}
		if m.Height > 0 {
			ratios = append(ratios, float64(m.Width)/float64(m.Height))
		}
	}

	n := float64(len(metrics))
	return domain.ImageAggregate{
		Count:             len(metrics),
		AveragePixels:     int(pixelSum / n),
		LowResCount:       lowRes,
		AverageSharpness:  sharpnessSum / n,
		AspectRatioStdDev: populationStdDev(ratios),
	}
}

// populationStdDev returns the population standard deviation, 0 for an
// empty slice.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
