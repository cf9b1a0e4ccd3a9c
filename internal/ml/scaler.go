package ml

import (
	"math"

	"github.com/guardify/backend/internal/domain"
)

// StandardScaler standardizes numeric features to zero mean and unit
// variance using statistics computed on the training split only. The
// feature-name list is part of the fitted state: at inference it is the
// authoritative definition of which numeric features exist and in what
// order, independent of what a request happens to carry.
type StandardScaler struct {
	Features []string  `json:"features"`
	Means    []float64 `json:"means"`
	Stds     []float64 `json:"stds"`
}

// NewStandardScaler creates an unfitted scaler over the given feature
// names. The order of names fixes the column order of the scaled vector.
func NewStandardScaler(features []string) *StandardScaler {
	return &StandardScaler{Features: append([]string(nil), features...)}
}

// Fit computes per-feature mean and population standard deviation over
// the training records. Zero-variance features keep a scale of 1 so they
// standardize to 0 instead of dividing by zero.
func (s *StandardScaler) Fit(records []domain.FeatureRecord) {
	n := float64(len(records))
	s.Means = make([]float64, len(s.Features))
	s.Stds = make([]float64, len(s.Features))
	if n == 0 {
		for i := range s.Stds {
			s.Stds[i] = 1
		}
		return
	}

	for i, name := range s.Features {
		var sum float64
		for _, r := range records {
			sum += r.Numeric[name]
		}
		mean := sum / n

		var sumSq float64
		for _, r := range records {
			d := r.Numeric[name] - mean
			sumSq += d * d
		}
		std := math.Sqrt(sumSq / n)
		if std == 0 {
			std = 1
		}

		s.Means[i] = mean
		s.Stds[i] = std
	}
}

// Transform scales one record's numeric features into the fitted column
// order. A trained feature absent from the record is padded with its
// training mean (standardizing to 0, a neutral contribution); the names
// of padded features are returned for diagnostics. Numeric features in
// the record that the scaler was not fit on are ignored.
func (s *StandardScaler) Transform(record domain.FeatureRecord) ([]float64, []string) {
	out := make([]float64, len(s.Features))
	var padded []string
	for i, name := range s.Features {
		value, ok := record.Numeric[name]
		if !ok {
			value = s.Means[i]
			padded = append(padded, name)
		}
		out[i] = (value - s.Means[i]) / s.Stds[i]
	}
	return out, padded
}
