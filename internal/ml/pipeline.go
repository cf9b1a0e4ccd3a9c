package ml

import (
	"errors"
	"sort"

	"github.com/guardify/backend/internal/domain"
)

// Training hyperparameters, fixed for reproducibility.
const (
	maxTextFeatures = 5000
	learningRate    = 0.5
	maxIterations   = 300
)

var errNotFitted = errors.New("pipeline is not fitted")

// Pipeline is the fitted text+numeric fraud model: independent TF-IDF
// encoders for title and description, a standard scaler over the numeric
// feature list recorded at fit time, and a logistic classifier over the
// concatenated space. All state is exported so the fitted pipeline
// round-trips through the JSON artifact.
type Pipeline struct {
	TitleVectorizer *TFIDFVectorizer    `json:"titleVectorizer"`
	DescVectorizer  *TFIDFVectorizer    `json:"descVectorizer"`
	Scaler          *StandardScaler     `json:"scaler"`
	Classifier      *LogisticRegression `json:"classifier"`
}

// NumericFeatures returns the numeric-feature-name list the pipeline was
// fit against, in column order.
func (p *Pipeline) NumericFeatures() []string {
	if p.Scaler == nil {
		return nil
	}
	return p.Scaler.Features
}

// Fit trains the full pipeline on the given examples. numericFeatures is
// the ordered list of numeric feature names present in the training
// dataset; it becomes part of the fitted state and governs inference-time
// vector layout.
func Fit(examples []domain.TrainingExample, numericFeatures []string) (*Pipeline, error) {
	if len(examples) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	titles := make([]string, len(examples))
	descs := make([]string, len(examples))
	records := make([]domain.FeatureRecord, len(examples))
	labels := make([]int, len(examples))
	for i, ex := range examples {
		titles[i] = ex.Record.Title
		descs[i] = ex.Record.Description
		records[i] = ex.Record
		labels[i] = ex.Label
	}

	p := &Pipeline{
		TitleVectorizer: NewTFIDFVectorizer(maxTextFeatures),
		DescVectorizer:  NewTFIDFVectorizer(maxTextFeatures),
		Scaler:          NewStandardScaler(numericFeatures),
	}
	p.TitleVectorizer.Fit(titles)
	p.DescVectorizer.Fit(descs)
	p.Scaler.Fit(records)

	samples := make([][]Feature, len(examples))
	for i := range examples {
		sample, _ := p.vectorize(records[i])
		samples[i] = sample
	}

	dim := p.TitleVectorizer.Dim() + p.DescVectorizer.Dim() + len(numericFeatures)
	p.Classifier = NewLogisticRegression(dim, learningRate, maxIterations)
	p.Classifier.Fit(samples, labels)

	return p, nil
}

// vectorize builds the sparse [title | description | scaled numeric]
// sample for one record, column-sorted, and reports which trained numeric
// features had to be padded with their training mean.
func (p *Pipeline) vectorize(record domain.FeatureRecord) ([]Feature, []string) {
	var sample []Feature

	sample = appendSorted(sample, p.TitleVectorizer.Transform(record.Title), 0)
	descOffset := p.TitleVectorizer.Dim()
	sample = appendSorted(sample, p.DescVectorizer.Transform(record.Description), descOffset)

	numericOffset := descOffset + p.DescVectorizer.Dim()
	scaled, padded := p.Scaler.Transform(record)
	for i, value := range scaled {
		if value != 0 {
			sample = append(sample, Feature{Col: numericOffset + i, Value: value})
		}
	}
	return sample, padded
}

// appendSorted appends a sparse map's entries in column order, shifted by
// offset.
func appendSorted(sample []Feature, vec map[int]float64, offset int) []Feature {
	cols := make([]int, 0, len(vec))
	for col := range vec {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	for _, col := range cols {
		sample = append(sample, Feature{Col: offset + col, Value: vec[col]})
	}
	return sample
}

// PredictProba returns P(fraud) for one record, plus the names of any
// trained numeric features the record did not supply. Implements
// domain.FraudModel.
func (p *Pipeline) PredictProba(record domain.FeatureRecord) (float64, []string, error) {
	if p.TitleVectorizer == nil || p.DescVectorizer == nil || p.Scaler == nil || p.Classifier == nil {
		return 0, nil, errNotFitted
	}
	sample, padded := p.vectorize(record)
	return p.Classifier.PredictProba(sample), padded, nil
}

// Predict returns the hard fraud label for one record.
func (p *Pipeline) Predict(record domain.FeatureRecord) (int, error) {
	proba, _, err := p.PredictProba(record)
	if err != nil {
		return 0, err
	}
	if proba >= 0.5 {
		return 1, nil
	}
	return 0, nil
}
