package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// Scorer turns a feature vector into a churn probability in [0,1]. The model
// behind it is opaque to the rest of the system.
type Scorer interface {
	Score(fv domain.FeatureVector) (float64, error)
	Version() string
}

// LogisticScorer scores with a logistic model over the numeric features.
// Unknown weight names are ignored; missing features contribute nothing.
type LogisticScorer struct {
	version string
	bias    float64
	weights map[string]float64
}

// NewLogisticScorer creates a scorer from explicit weights.
func NewLogisticScorer(version string, bias float64, weights map[string]float64) *LogisticScorer {
	return &LogisticScorer{
		version: version,
		bias:    bias,
		weights: weights,
	}
}

type weightsFile struct {
	Version string             `json:"version"`
	Bias    float64            `json:"bias"`
	Weights map[string]float64 `json:"weights"`
}

// LoadLogisticScorer reads model weights from a JSON file.
func LoadLogisticScorer(path string) (*LogisticScorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model weights: %w", err)
	}

	var wf weightsFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to parse model weights: %w", err)
	}
	if wf.Version == "" {
		return nil, fmt.Errorf("model weights file %s has no version", path)
	}

	return NewLogisticScorer(wf.Version, wf.Bias, wf.Weights), nil
}

// Score computes sigmoid(bias + w·features).
func (s *LogisticScorer) Score(fv domain.FeatureVector) (float64, error) {
	z := s.bias
	numeric := fv.Numeric()
	for name, weight := range s.weights {
		if value, ok := numeric[name]; ok {
			z += weight * value
		}
	}
	return 1.0 / (1.0 + math.Exp(-z)), nil
}

// Version returns the model version string.
func (s *LogisticScorer) Version() string {
	return s.version
}
