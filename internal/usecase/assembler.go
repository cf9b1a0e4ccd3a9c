package usecase

import (
	"strconv"
	"strings"

	"github.com/guardify/backend/internal/domain"
)

// ParsePrice extracts a numeric price from free-form price text
// ("$1,299.00" -> 1299.0). Returns 0 for empty or unparsable input;
// a bad price is a neutral default, never an error.
func ParsePrice(priceText string) float64 {
	if priceText == "" {
		return 0.0
	}
	var b strings.Builder
	for _, r := range priceText {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0.0
	}
	return value
}

// AssembleFeatures derives the feature record for one listing. This is the
// single source of truth for feature computation: the training driver and
// the scoring service both call it, so fit-time and serve-time features
// cannot drift.
//
// The optional image aggregate is folded in only when non-nil; when a
// listing has no image data the corresponding numeric features are absent
// from the record entirely, matching how training treats datasets without
// image columns.
func AssembleFeatures(listing domain.ListingInput, images *domain.ImageAggregate) domain.FeatureRecord {
	combined := listing.Title + " " + listing.Description

	numeric := map[string]float64{
		domain.FeaturePrice:            ParsePrice(listing.PriceText),
		domain.FeatureImageCount:       float64(listing.ImageCount),
		domain.FeatureReviewCount:      float64(listing.ReviewCount),
		domain.FeatureDescLength:       float64(Length(listing.Description)),
		domain.FeatureTitleLength:      float64(Length(listing.Title)),
		domain.FeatureRepetitionScore:  RepetitionScore(listing.Description),
		domain.FeatureExclamationCount: float64(ExclamationCount(combined)),
		domain.FeatureUpperRatio:       UppercaseRatio(listing.Title),
		domain.FeatureScamKeywordCount: float64(ScamKeywordCount(combined)),
	}

	if images != nil {
		numeric[domain.FeatureImageAvgPixels] = float64(images.AveragePixels)
		numeric[domain.FeatureImageLowResCount] = float64(images.LowResCount)
		numeric[domain.FeatureImageAvgSharpness] = images.AverageSharpness
		numeric[domain.FeatureImageAspectStd] = images.AspectRatioStdDev
		numeric[domain.FeatureImageCountFromURLs] = float64(images.Count)
	}

	return domain.FeatureRecord{
		Title:       listing.Title,
		Description: listing.Description,
		Numeric:     numeric,
	}
}

// AssemblePartialImageFeatures builds a record for a serving request that
// carried precomputed image aggregates (average pixels and low-res count
// only, the fields the extension captures). Values the request did not
// supply stay absent; the model pads any trained feature it misses.
func AssemblePartialImageFeatures(record domain.FeatureRecord, avgPixels, lowResCount *int) domain.FeatureRecord {
	if avgPixels != nil {
		record.Numeric[domain.FeatureImageAvgPixels] = float64(*avgPixels)
	}
	if lowResCount != nil {
		record.Numeric[domain.FeatureImageLowResCount] = float64(*lowResCount)
	}
	return record
}
