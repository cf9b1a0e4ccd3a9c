package domain

// Canonical numeric feature names. The order of BaseNumericFeatures is the
// order the classifier is fit against; OptionalNumericFeatures are appended
// in this order when the corresponding data is available.
const (
	FeaturePrice            = "price"
	FeatureImageCount       = "image_count"
	FeatureReviewCount      = "review_count"
	FeatureDescLength       = "desc_length"
	FeatureTitleLength      = "title_length"
	FeatureRepetitionScore  = "repetition_score"
	FeatureExclamationCount = "exclamation_count"
	FeatureUpperRatio       = "upper_ratio"
	FeatureScamKeywordCount = "scam_keyword_count"

	FeatureImageAvgPixels     = "image_avg_pixels"
	FeatureImageLowResCount   = "image_low_res_count"
	FeatureImageAvgSharpness  = "image_avg_sharpness"
	FeatureImageAspectStd     = "image_aspect_ratio_std"
	FeatureImageCountFromURLs = "image_count_from_urls"
)

// BaseNumericFeatures are always present in every assembled record.
var BaseNumericFeatures = []string{
	FeaturePrice,
	FeatureImageCount,
	FeatureReviewCount,
	FeatureDescLength,
	FeatureTitleLength,
	FeatureRepetitionScore,
	FeatureExclamationCount,
	FeatureUpperRatio,
	FeatureScamKeywordCount,
}

// OptionalNumericFeatures are present only when image aggregates were
// supplied (precomputed dataset columns or a request that carried them).
var OptionalNumericFeatures = []string{
	FeatureImageAvgPixels,
	FeatureImageLowResCount,
	FeatureImageAvgSharpness,
	FeatureImageAspectStd,
	FeatureImageCountFromURLs,
}

// FeatureRecord is the named feature set derived from one listing.
// The same record shape feeds both model fitting and live scoring.
type FeatureRecord struct {
	Title       string
	Description string
	Numeric     map[string]float64
}

// TrainingExample pairs an assembled record with its fraud label.
type TrainingExample struct {
	Record FeatureRecord
	Label  int // 1 = fraudulent, 0 = legitimate
}
