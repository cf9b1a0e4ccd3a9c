package domain

// ListingInput represents a captured e-commerce listing to be scored
type ListingInput struct {
	URL         string   `json:"url,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PriceText   string   `json:"priceText,omitempty"`
	ImageCount  int      `json:"imageCount"`
	ReviewCount int      `json:"reviewCount"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
}

// RiskTier is the three-level risk label derived from the score
type RiskTier string

const (
	RiskLow    RiskTier = "Low"
	RiskMedium RiskTier = "Medium"
	RiskHigh   RiskTier = "High"
)

// ScoreResult is the outcome of scoring a single listing
type ScoreResult struct {
	Score int      `json:"score"` // 0-100
	Risk  RiskTier `json:"risk"`
	Flags []string `json:"flags"` // diagnostic messages, may be empty
}

// ScoreRequest is the wire shape of a scoring request from the extension
type ScoreRequest struct {
	URL                string `json:"url,omitempty"`
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description" binding:"required"`
	PriceText          string `json:"priceText,omitempty"`
	ImageCount         int    `json:"imageCount"`
	ReviewCount        int    `json:"reviewCount"`
	ImageAveragePixels *int   `json:"imageAveragePixels,omitempty"`
	ImageLowResCount   *int   `json:"imageLowResCount,omitempty"`
}
