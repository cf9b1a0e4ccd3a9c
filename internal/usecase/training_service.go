package usecase

import (
	"fmt"
	"log"
	"strconv"

	"github.com/guardify/backend/internal/domain"
	"github.com/guardify/backend/internal/infrastructure/dataset"
	"github.com/guardify/backend/internal/ml"
)

// requiredTrainingColumns must all be present in a training dataset.
var requiredTrainingColumns = []string{
	"title", "description", "price", "image_count", "review_count", "label",
}

// TrainingResult is what one training run produces.
type TrainingResult struct {
	Pipeline        *ml.Pipeline
	Report          ml.Report
	NumericFeatures []string
	TrainRows       int
	TestRows        int
}

// TrainingService orchestrates dataset loading, feature assembly, the
// stratified split, pipeline fitting, and evaluation.
type TrainingService struct {
	testFraction float64
}

// NewTrainingService creates a training driver with the standard 80/20
// held-out split.
func NewTrainingService() *TrainingService {
	return &TrainingService{testFraction: 0.2}
}

// parseFloatCell coerces a numeric dataset cell, 0 on empty or bad input.
func parseFloatCell(value string) float64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// examplesFromTable assembles training examples from dataset rows using
// the same feature derivation the scoring service uses. The numeric
// feature list expands with whichever optional image columns the dataset
// carries, in canonical order.
func examplesFromTable(table *dataset.Table) ([]domain.TrainingExample, []string) {
	var presentOptional []string
	for _, name := range domain.OptionalNumericFeatures {
		if table.HasColumn(name) {
			presentOptional = append(presentOptional, name)
		}
	}
	numericFeatures := append(append([]string(nil), domain.BaseNumericFeatures...), presentOptional...)

	examples := make([]domain.TrainingExample, 0, len(table.Rows))
	for _, row := range table.Rows {
		listing := domain.ListingInput{
			URL:         row["url"],
			Title:       row["title"],
			Description: row["description"],
			PriceText:   row["price"],
			ImageCount:  int(parseFloatCell(row["image_count"])),
			ReviewCount: int(parseFloatCell(row["review_count"])),
		}
		record := AssembleFeatures(listing, nil)
		for _, name := range presentOptional {
			record.Numeric[name] = parseFloatCell(row[name])
		}

		label := 0
		if parseFloatCell(row["label"]) >= 0.5 {
			label = 1
		}
		examples = append(examples, domain.TrainingExample{Record: record, Label: label})
	}
	return examples, numericFeatures
}

// Train loads the dataset at dataPath, fits the pipeline, and evaluates
// it on the held-out split. Missing required columns are a fatal
// configuration error.
func (s *TrainingService) Train(dataPath string) (*TrainingResult, error) {
	table, err := dataset.Read(dataPath)
	if err != nil {
		return nil, err
	}
	if missing := table.MissingColumns(requiredTrainingColumns); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingColumns, missing)
	}
	if len(table.Rows) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	examples, numericFeatures := examplesFromTable(table)
	train, test := ml.StratifiedSplit(examples, s.testFraction, ml.SplitSeed)
	log.Printf("[TRAIN] rows=%d train=%d test=%d numeric_features=%d",
		len(examples), len(train), len(test), len(numericFeatures))

	pipeline, err := ml.Fit(train, numericFeatures)
	if err != nil {
		return nil, fmt.Errorf("fit pipeline: %w", err)
	}

	yTrue := make([]int, len(test))
	yPred := make([]int, len(test))
	for i, ex := range test {
		yTrue[i] = ex.Label
		pred, err := pipeline.Predict(ex.Record)
		if err != nil {
			return nil, fmt.Errorf("evaluate: %w", err)
		}
		yPred[i] = pred
	}
	report := ml.BuildReport(yTrue, yPred)
	log.Printf("[TRAIN] accuracy=%.4f", report.Accuracy)

	return &TrainingResult{
		Pipeline:        pipeline,
		Report:          report,
		NumericFeatures: numericFeatures,
		TrainRows:       len(train),
		TestRows:        len(test),
	}, nil
}
