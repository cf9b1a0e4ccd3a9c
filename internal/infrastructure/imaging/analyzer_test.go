package imaging

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardify/backend/internal/domain"
)

// uniformImage returns a w x h image with every pixel the same color.
func uniformImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// checkerImage returns a w x h black/white checkerboard, which has sharp
// edges everywhere.
func checkerImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

func TestLaplacianVariance(t *testing.T) {
	t.Run("uniform image has exactly zero sharpness", func(t *testing.T) {
		gray, w, h := grayscale(uniformImage(32, 24, color.RGBA{R: 120, G: 80, B: 200, A: 255}))
		assert.Equal(t, 0.0, laplacianVariance(gray, w, h))
	})

	t.Run("checkerboard has high sharpness", func(t *testing.T) {
		gray, w, h := grayscale(checkerImage(32, 32))
		assert.Greater(t, laplacianVariance(gray, w, h), 1000.0)
	})

	t.Run("sharper image scores higher", func(t *testing.T) {
		// A smooth horizontal gradient has low but non-zero response.
		gradient := image.NewRGBA(image.Rect(0, 0, 64, 64))
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				v := uint8(x * 4)
				gradient.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
			}
		}
		grayGrad, w, h := grayscale(gradient)
		grayCheck, _, _ := grayscale(checkerImage(64, 64))

		assert.Less(t, laplacianVariance(grayGrad, w, h), laplacianVariance(grayCheck, w, h))
	})

	t.Run("empty field is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, laplacianVariance(nil, 0, 0))
	})
}

func TestLowResRule(t *testing.T) {
	assert.True(t, domain.LowRes(399, 1000), "width below 400 is low-res")
	assert.True(t, domain.LowRes(1000, 399), "height below 400 is low-res")
	assert.True(t, domain.LowRes(400, 400), "160k pixels is under the pixel floor")
	assert.False(t, domain.LowRes(1920, 1080), "full HD is not low-res")
	assert.False(t, domain.LowRes(500, 400), "200k pixels exactly passes")
}

func TestAggregate(t *testing.T) {
	t.Run("empty input yields all-zero aggregate", func(t *testing.T) {
		agg := Aggregate(nil)
		assert.Equal(t, domain.ImageAggregate{}, agg)
	})

	t.Run("aggregates counts and means", func(t *testing.T) {
		metrics := []domain.ImageMetrics{
			{Width: 100, Height: 100, Sharpness: 10, IsLowRes: true},
			{Width: 200, Height: 100, Sharpness: 30, IsLowRes: true},
		}
		agg := Aggregate(metrics)

		assert.Equal(t, 2, agg.Count)
		assert.Equal(t, 15000, agg.AveragePixels) // (10000+20000)/2
		assert.Equal(t, 2, agg.LowResCount)
		assert.InDelta(t, 20.0, agg.AverageSharpness, 1e-12)
		// ratios 1.0 and 2.0: population std-dev 0.5
		assert.InDelta(t, 0.5, agg.AspectRatioStdDev, 1e-12)
	})

	t.Run("zero-height images are excluded from aspect ratios", func(t *testing.T) {
		metrics := []domain.ImageMetrics{
			{Width: 100, Height: 0},
			{Width: 100, Height: 100},
		}
		agg := Aggregate(metrics)
		assert.Equal(t, 0.0, agg.AspectRatioStdDev)
	})
}

// stubSource serves fixed images by URL and fails everything else.
type stubSource struct {
	images map[string]image.Image
}

func (s *stubSource) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	if img, ok := s.images[imageURL]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("%w: no such image", domain.ErrImageFetch)
}

func TestAnalyzerAnalyze(t *testing.T) {
	source := &stubSource{images: map[string]image.Image{
		"a": uniformImage(1920, 1080, color.White),
		"b": uniformImage(300, 300, color.Black),
		"d": uniformImage(800, 600, color.White),
		"e": uniformImage(640, 480, color.White),
	}}
	analyzer := NewAnalyzer(source, AnalyzerConfig{Concurrency: 2})
	ctx := context.Background()

	t.Run("failed fetches are skipped silently", func(t *testing.T) {
		agg := analyzer.Analyze(ctx, []string{"a", "c", "b"}, 5)
		require.Equal(t, 2, agg.Count)
		assert.Equal(t, 1, agg.LowResCount)
	})

	t.Run("cap folds over input order and failures do not consume it", func(t *testing.T) {
		// "c" fails; the two successes are a and d, e never makes the cut
		agg := analyzer.Analyze(ctx, []string{"a", "c", "d", "e"}, 2)
		require.Equal(t, 2, agg.Count)
		// average of 1920*1080 and 800*600 pixels
		assert.Equal(t, (1920*1080+800*600)/2, agg.AveragePixels)
	})

	t.Run("no urls yields zero aggregate", func(t *testing.T) {
		assert.Equal(t, domain.ImageAggregate{}, analyzer.Analyze(ctx, nil, 5))
	})

	t.Run("all fetches failing yields zero aggregate", func(t *testing.T) {
		assert.Equal(t, domain.ImageAggregate{}, analyzer.Analyze(ctx, []string{"x", "y"}, 5))
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		first := analyzer.Analyze(ctx, []string{"a", "b", "d"}, 2)
		second := analyzer.Analyze(ctx, []string{"a", "b", "d"}, 2)
		assert.Equal(t, first, second)
	})
}
