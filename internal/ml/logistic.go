package ml

import "math"

// Feature is one column of a sparse sample vector. Samples are kept as
// column-sorted slices rather than maps so that floating-point sums are
// evaluated in a fixed order and inference is bit-for-bit reproducible.
type Feature struct {
	Col   int
	Value float64
}

// LogisticRegression is a binary probabilistic classifier over sparse
// feature vectors, trained by full-batch gradient descent. Weights start
// at zero, so fitting the same data always produces the same model.
type LogisticRegression struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	LR      float64   `json:"lr"`
	MaxIter int       `json:"maxIter"`
}

// NewLogisticRegression creates an untrained classifier for the given
// input dimensionality.
func NewLogisticRegression(inputSize int, lr float64, maxIter int) *LogisticRegression {
	if lr <= 0 {
		lr = 0.5
	}
	if maxIter <= 0 {
		maxIter = 300
	}
	return &LogisticRegression{
		Weights: make([]float64, inputSize),
		LR:      lr,
		MaxIter: maxIter,
	}
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// PredictProba returns P(label=1) for one sparse sample.
func (m *LogisticRegression) PredictProba(sample []Feature) float64 {
	z := m.Bias
	for _, f := range sample {
		if f.Col < len(m.Weights) {
			z += m.Weights[f.Col] * f.Value
		}
	}
	return sigmoid(z)
}

// Predict returns the hard label at the 0.5 probability boundary.
func (m *LogisticRegression) Predict(sample []Feature) int {
	if m.PredictProba(sample) >= 0.5 {
		return 1
	}
	return 0
}

// Fit trains on the full batch for MaxIter iterations, minimizing log
// loss.
func (m *LogisticRegression) Fit(samples [][]Feature, labels []int) {
	n := len(samples)
	if n == 0 {
		return
	}

	grad := make([]float64, len(m.Weights))
	for iter := 0; iter < m.MaxIter; iter++ {
		for i := range grad {
			grad[i] = 0
		}
		var gradBias float64

		for i, sample := range samples {
			err := m.PredictProba(sample) - float64(labels[i])
			for _, f := range sample {
				if f.Col < len(grad) {
					grad[f.Col] += err * f.Value
				}
			}
			gradBias += err
		}

		step := m.LR / float64(n)
		for col := range m.Weights {
			m.Weights[col] -= step * grad[col]
		}
		m.Bias -= step * gradBias
	}
}
