package ml

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardify/backend/internal/domain"
)

// syntheticExamples builds a linearly separable training set: fraudulent
// listings have scammy text, low price and zero reviews.
func syntheticExamples(n int) []domain.TrainingExample {
	examples := make([]domain.TrainingExample, 0, 2*n)
	for i := 0; i < n; i++ {
		examples = append(examples, domain.TrainingExample{
			Record: domain.FeatureRecord{
				Title:       fmt.Sprintf("Genuine leather wallet model %d", i),
				Description: "Handmade wallet with card slots and warranty coverage",
				Numeric: map[string]float64{
					domain.FeaturePrice:            45 + float64(i%7),
					domain.FeatureImageCount:       6,
					domain.FeatureReviewCount:      200 + float64(i),
					domain.FeatureDescLength:       55,
					domain.FeatureTitleLength:      30,
					domain.FeatureRepetitionScore:  0.05,
					domain.FeatureExclamationCount: 0,
					domain.FeatureUpperRatio:       0.1,
					domain.FeatureScamKeywordCount: 0,
				},
			},
			Label: 0,
		})
		examples = append(examples, domain.TrainingExample{
			Record: domain.FeatureRecord{
				Title:       fmt.Sprintf("GUARANTEED cheap watch %d order now", i),
				Description: "limited stock limited stock best offer act now",
				Numeric: map[string]float64{
					domain.FeaturePrice:            2 + float64(i%3),
					domain.FeatureImageCount:       1,
					domain.FeatureReviewCount:      0,
					domain.FeatureDescLength:       46,
					domain.FeatureTitleLength:      33,
					domain.FeatureRepetitionScore:  0.6,
					domain.FeatureExclamationCount: 5,
					domain.FeatureUpperRatio:       0.8,
					domain.FeatureScamKeywordCount: 4,
				},
			},
			Label: 1,
		})
	}
	return examples
}

func TestPipelineFitAndPredict(t *testing.T) {
	examples := syntheticExamples(25)
	pipeline, err := Fit(examples, domain.BaseNumericFeatures)
	require.NoError(t, err)

	t.Run("separates the classes", func(t *testing.T) {
		legitProba, _, err := pipeline.PredictProba(examples[0].Record)
		require.NoError(t, err)
		fraudProba, _, err := pipeline.PredictProba(examples[1].Record)
		require.NoError(t, err)

		assert.Less(t, legitProba, 0.5)
		assert.Greater(t, fraudProba, 0.5)
	})

	t.Run("probabilities stay in range", func(t *testing.T) {
		for _, ex := range examples {
			proba, _, err := pipeline.PredictProba(ex.Record)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, proba, 0.0)
			assert.LessOrEqual(t, proba, 1.0)
		}
	})

	t.Run("no padding when all trained features supplied", func(t *testing.T) {
		_, padded, err := pipeline.PredictProba(examples[0].Record)
		require.NoError(t, err)
		assert.Empty(t, padded)
	})

	t.Run("missing trained feature is padded and reported", func(t *testing.T) {
		record := examples[1].Record
		trimmed := domain.FeatureRecord{
			Title:       record.Title,
			Description: record.Description,
			Numeric:     map[string]float64{},
		}
		for name, value := range record.Numeric {
			if name != domain.FeatureReviewCount {
				trimmed.Numeric[name] = value
			}
		}

		_, padded, err := pipeline.PredictProba(trimmed)
		require.NoError(t, err)
		assert.Equal(t, []string{domain.FeatureReviewCount}, padded)
	})

	t.Run("extra numeric features are ignored", func(t *testing.T) {
		record := examples[1].Record
		withExtra := domain.FeatureRecord{
			Title:       record.Title,
			Description: record.Description,
			Numeric:     map[string]float64{"bogus_feature": 999},
		}
		for name, value := range record.Numeric {
			withExtra.Numeric[name] = value
		}

		base, _, err := pipeline.PredictProba(record)
		require.NoError(t, err)
		got, _, err := pipeline.PredictProba(withExtra)
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("fitting is deterministic", func(t *testing.T) {
		again, err := Fit(examples, domain.BaseNumericFeatures)
		require.NoError(t, err)
		assert.Equal(t, pipeline.Classifier.Weights, again.Classifier.Weights)
		assert.Equal(t, pipeline.Classifier.Bias, again.Classifier.Bias)
	})

	t.Run("numeric feature list is part of fitted state", func(t *testing.T) {
		assert.Equal(t, domain.BaseNumericFeatures, pipeline.NumericFeatures())
	})
}

func TestFitEmptyDataset(t *testing.T) {
	_, err := Fit(nil, domain.BaseNumericFeatures)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestStandardScaler(t *testing.T) {
	records := []domain.FeatureRecord{
		{Numeric: map[string]float64{"a": 1, "b": 7}},
		{Numeric: map[string]float64{"a": 3, "b": 7}},
	}
	s := NewStandardScaler([]string{"a", "b"})
	s.Fit(records)

	t.Run("standardizes to zero mean unit variance", func(t *testing.T) {
		v1, _ := s.Transform(records[0])
		v2, _ := s.Transform(records[1])
		assert.InDelta(t, -1, v1[0], 1e-12)
		assert.InDelta(t, 1, v2[0], 1e-12)
	})

	t.Run("zero-variance feature standardizes to zero", func(t *testing.T) {
		v, _ := s.Transform(records[0])
		assert.Equal(t, 0.0, v[1])
	})

	t.Run("missing feature pads with training mean", func(t *testing.T) {
		v, padded := s.Transform(domain.FeatureRecord{Numeric: map[string]float64{"b": 7}})
		assert.Equal(t, 0.0, v[0])
		assert.Equal(t, []string{"a"}, padded)
	})
}

func TestStratifiedSplit(t *testing.T) {
	examples := syntheticExamples(50) // 50 per class

	train, test := StratifiedSplit(examples, 0.2, SplitSeed)
	assert.Len(t, train, 80)
	assert.Len(t, test, 20)

	countLabel := func(set []domain.TrainingExample, label int) int {
		n := 0
		for _, ex := range set {
			if ex.Label == label {
				n++
			}
		}
		return n
	}
	// stratification holds out 20% of each class
	assert.Equal(t, 10, countLabel(test, 0))
	assert.Equal(t, 10, countLabel(test, 1))

	t.Run("same seed gives same split", func(t *testing.T) {
		train2, test2 := StratifiedSplit(examples, 0.2, SplitSeed)
		assert.Equal(t, train, train2)
		assert.Equal(t, test, test2)
	})
}

func TestBuildReport(t *testing.T) {
	yTrue := []int{1, 1, 1, 0, 0, 0, 0, 0}
	yPred := []int{1, 1, 0, 0, 0, 0, 0, 1}

	report := BuildReport(yTrue, yPred)

	assert.InDelta(t, 0.75, report.Accuracy, 1e-12)

	fraud := report.Classes["1"]
	assert.Equal(t, 3, fraud.Support)
	assert.InDelta(t, 2.0/3.0, fraud.Precision, 1e-12) // 2 TP, 1 FP
	assert.InDelta(t, 2.0/3.0, fraud.Recall, 1e-12)    // 2 TP, 1 FN

	legit := report.Classes["0"]
	assert.Equal(t, 5, legit.Support)
	assert.InDelta(t, 0.8, legit.Precision, 1e-12) // 4 TP, 1 FP
	assert.InDelta(t, 0.8, legit.Recall, 1e-12)    // 4 TP, 1 FN

	assert.Equal(t, 8, report.MacroAvg.Support)
}
