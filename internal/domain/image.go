package domain

// ImageMetrics holds the quality measurements for one analyzed image
type ImageMetrics struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Sharpness float64 `json:"sharpness"` // variance of the Laplacian-filtered image
	IsLowRes  bool    `json:"isLowRes"`
}

// Low-resolution rule thresholds
const (
	MinImageDimension = 400
	MinImagePixels    = 200000
)

// LowRes reports whether an image of the given dimensions counts as
// low-resolution: either side under 400px, or under 200k pixels total.
func LowRes(width, height int) bool {
	return width < MinImageDimension || height < MinImageDimension || width*height < MinImagePixels
}

// ImageAggregate summarizes the metrics of all successfully analyzed images
// for a listing. All fields are zero (never absent) when no image was
// analyzed, so downstream numeric feature columns stay present.
type ImageAggregate struct {
	Count             int     `json:"count"`
	AveragePixels     int     `json:"averagePixels"`
	LowResCount       int     `json:"lowResCount"`
	AverageSharpness  float64 `json:"averageSharpness"`
	AspectRatioStdDev float64 `json:"aspectRatioStdDev"`
}
