package usecase

import (
	"fmt"
	"log"
	"math"

	"github.com/guardify/backend/internal/domain"
)

// Risk tier thresholds on the 0-100 score
const (
	highRiskThreshold   = 65
	mediumRiskThreshold = 35
)

// ScoreFromProbability maps a fraud probability in [0,1] to the integer
// 0-100 score, rounding to nearest.
func ScoreFromProbability(proba float64) int {
	return int(math.Round(proba * 100))
}

// TierFromScore maps a score to its risk tier.
func TierFromScore(score int) domain.RiskTier {
	switch {
	case score >= highRiskThreshold:
		return domain.RiskHigh
	case score >= mediumRiskThreshold:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// ScoringServiceConfig holds configuration for the scoring service
type ScoringServiceConfig struct {
	EnableDebugLogging bool
}

// ScoringService turns validated listings into score results against a
// read-only loaded model. The model reference is set once at construction
// and never mutated, so the service is safe for concurrent requests.
type ScoringService struct {
	model              domain.FraudModel
	enableDebugLogging bool
}

// NewScoringService creates a scoring service. A nil model is valid and
// produces the degraded "Model not loaded" response for every request.
func NewScoringService(model domain.FraudModel, config ScoringServiceConfig) *ScoringService {
	return &ScoringService{
		model:              model,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ModelLoaded reports whether a trained model is available.
func (s *ScoringService) ModelLoaded() bool {
	return s.model != nil
}

// degradedResult is the defined response when no model artifact is loaded.
// Not an error: the caller gets a valid result carrying a diagnostic flag.
func degradedResult() *domain.ScoreResult {
	log.Printf("[SCORE] %v, serving degraded response", domain.ErrModelNotLoaded)
	return &domain.ScoreResult{
		Score: 0,
		Risk:  domain.RiskLow,
		Flags: []string{"Model not loaded"},
	}
}

// ScoreListing assembles the feature record for a listing and scores it.
// The image aggregate is optional; nil means no image data was available.
// With no model loaded this returns the degraded response without
// computing features.
func (s *ScoringService) ScoreListing(listing domain.ListingInput, images *domain.ImageAggregate) (*domain.ScoreResult, error) {
	if listing.Title == "" && listing.Description == "" {
		return nil, domain.ErrInvalidRequest
	}
	if s.model == nil {
		return degradedResult(), nil
	}
	return s.scoreRecord(listing.Title, AssembleFeatures(listing, images))
}

// ScoreRequest scores a wire-shaped request, folding in whatever
// precomputed image aggregates it carried.
func (s *ScoringService) ScoreRequest(req *domain.ScoreRequest) (*domain.ScoreResult, error) {
	if req == nil || req.Title == "" || req.Description == "" {
		return nil, domain.ErrInvalidRequest
	}
	if s.model == nil {
		return degradedResult(), nil
	}

	listing := domain.ListingInput{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		PriceText:   req.PriceText,
		ImageCount:  req.ImageCount,
		ReviewCount: req.ReviewCount,
	}
	record := AssembleFeatures(listing, nil)
	record = AssemblePartialImageFeatures(record, req.ImageAveragePixels, req.ImageLowResCount)

	return s.scoreRecord(req.Title, record)
}

func (s *ScoringService) scoreRecord(title string, record domain.FeatureRecord) (*domain.ScoreResult, error) {
	proba, padded, err := s.model.PredictProba(record)
	if err != nil {
		return nil, fmt.Errorf("model inference: %w", err)
	}

	score := ScoreFromProbability(proba)
	flags := make([]string, 0, len(padded))
	for _, name := range padded {
		flags = append(flags, fmt.Sprintf("Feature %s unavailable, used training mean", name))
	}

	if s.enableDebugLogging {
		log.Printf("[SCORE] title=%q proba=%.4f score=%d padded=%v", title, proba, score, padded)
	}

	return &domain.ScoreResult{
		Score: score,
		Risk:  TierFromScore(score),
		Flags: flags,
	}, nil
}
