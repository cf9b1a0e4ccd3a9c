package imaging

import "image"

// grayscale converts an image to a row-major luminance field using the
// ITU-R 601-2 weights (0.299R + 0.587G + 0.114B) on 8-bit channels.
func grayscale(img image.Image) ([]float64, int, int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			gray[y*w+x] = 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
		}
	}
	return gray, w, h
}

// laplacianVariance applies the discrete Laplacian kernel
// [[0,1,0],[1,-4,1],[0,1,0]] with edge-replicated padding and returns
// the population variance of the filtered field. Low variance means a
// blurred or flat image; a uniform image yields exactly 0.
func laplacianVariance(gray []float64, w, h int) float64 {
	if w == 0 || h == 0 {
		return 0
	}

	clamp := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}
	at := func(x, y int) float64 {
		return gray[clamp(y, h-1)*w+clamp(x, w-1)]
	}

	filtered := make([]float64, w*h)
	var sum float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Pairwise grouping keeps the sum exact for uniform
			// neighborhoods, so a flat image scores exactly 0.
			v := (at(x, y-1) + at(x-1, y)) + (at(x+1, y) + at(x, y+1)) - 4*at(x, y)
			filtered[y*w+x] = v
			sum += v
		}
	}

	n := float64(w * h)
	mean := sum / n
	var sumSq float64
	for _, v := range filtered {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / n
}
