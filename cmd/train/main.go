package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/guardify/backend/internal/infrastructure/artifact"
	"github.com/guardify/backend/internal/ml"
	"github.com/guardify/backend/internal/usecase"
)

// trainOutput is the JSON summary printed after a successful run.
type trainOutput struct {
	Model  string    `json:"model"`
	Report ml.Report `json:"report"`
}

func main() {
	dataPath := pflag.String("data", "data.csv", "path to the training dataset CSV")
	modelPath := pflag.String("model", "model.json", "where to write the trained model artifact")
	pflag.Parse()

	if _, err := os.Stat(*dataPath); err != nil {
		log.Fatalf("Missing data file: %s", *dataPath)
	}

	trainer := usecase.NewTrainingService()
	result, err := trainer.Train(*dataPath)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	if err := artifact.Save(*modelPath, &artifact.Artifact{
		Model:  result.Pipeline,
		Report: result.Report,
	}); err != nil {
		log.Fatalf("Failed to save model artifact: %v", err)
	}

	out, err := json.MarshalIndent(trainOutput{Model: *modelPath, Report: result.Report}, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
	fmt.Println(string(out))
}
