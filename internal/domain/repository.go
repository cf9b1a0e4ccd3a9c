package domain

import "context"

// ImageAnalyzer computes quality metrics for a listing's images.
// Fetch/decode failures for individual URLs are skipped, never surfaced.
type ImageAnalyzer interface {
	Analyze(ctx context.Context, urls []string, maxImages int) ImageAggregate
}

// FraudModel maps an assembled feature record to a fraud probability.
// Padded is the list of trained numeric features that were absent from the
// record and substituted with their training mean.
type FraudModel interface {
	PredictProba(record FeatureRecord) (proba float64, padded []string, err error)
}
