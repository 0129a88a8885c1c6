package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Client talks to the classification backend.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for the backend at baseURL. The timeout covers
// the whole request; when it fires the call fails as a transport error.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Classify submits one image to the inference endpoint and returns the
// backend's prediction. The backend is the source of truth for image
// validation; no local checks are made beyond the file being readable.
func (c *Client) Classify(path string, model ModelID) (*Prediction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := w.WriteField("model_type", string(model)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/predict", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("submitting image",
		"request_id", requestID,
		"file", filepath.Base(path),
		"model", model,
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp.StatusCode, data)
	}

	pred, err := decodePrediction(data)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("prediction received",
		"request_id", requestID,
		"label", pred.Label,
		"confidence", pred.Confidence,
	)

	return pred, nil
}

// ModelMetrics fetches the evaluation metrics recorded for one model.
func (c *Client) ModelMetrics(model ModelID) (Metrics, error) {
	data, err := c.get("/api/metrics/" + string(model))
	if err != nil {
		return Metrics{}, err
	}

	var payload metricsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Metrics{}, &MalformedResponseError{Reason: "metrics body is not valid JSON"}
	}

	return payload.resolve()
}

// Classes lists the class labels the backend predicts over.
func (c *Client) Classes() ([]string, error) {
	data, err := c.get("/api/classes")
	if err != nil {
		return nil, err
	}

	var payload struct {
		Classes []string `json:"classes"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &MalformedResponseError{Reason: "classes body is not valid JSON"}
	}

	return payload.Classes, nil
}

// Health probes the backend's health endpoint.
func (c *Client) Health() (Health, error) {
	data, err := c.get("/api/health")
	if err != nil {
		return Health{}, err
	}

	var h Health
	if err := json.Unmarshal(data, &h); err != nil {
		return Health{}, &MalformedResponseError{Reason: "health body is not valid JSON"}
	}

	return h, nil
}

func (c *Client) get(path string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp.StatusCode, data)
	}

	return data, nil
}

// serverError extracts the backend's error message when the body carries one.
func serverError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &ServerError{StatusCode: status, Message: payload.Error}
	}
	return &ServerError{StatusCode: status}
}

// predictionPayload mirrors the prediction schema with optional fields, so a
// missing value is distinguishable from a zero one.
type predictionPayload struct {
	Prediction     string                                  `json:"prediction"`
	Confidence     *float64                                `json:"confidence"`
	ClassIndex     int                                     `json:"class_index"`
	AllPredictions *orderedmap.OrderedMap[string, float64] `json:"all_predictions"`
	ModelType      string                                  `json:"model_type"`
	Timestamp      string                                  `json:"timestamp"`
}

func decodePrediction(data []byte) (*Prediction, error) {
	var payload predictionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &MalformedResponseError{Reason: "body is not valid JSON"}
	}

	switch {
	case payload.Prediction == "":
		return nil, &MalformedResponseError{Reason: "missing prediction label"}
	case payload.Confidence == nil:
		return nil, &MalformedResponseError{Reason: "missing confidence"}
	case *payload.Confidence < 0 || *payload.Confidence > 1:
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("confidence %v outside [0,1]", *payload.Confidence)}
	case payload.AllPredictions == nil || payload.AllPredictions.Len() == 0:
		return nil, &MalformedResponseError{Reason: "missing class probabilities"}
	}

	return &Prediction{
		Label:         payload.Prediction,
		Confidence:    *payload.Confidence,
		ClassIndex:    payload.ClassIndex,
		Probabilities: payload.AllPredictions,
		ModelType:     payload.ModelType,
		Timestamp:     payload.Timestamp,
	}, nil
}

// metricsPayload accepts both naming variants the backend has used for each
// statistic, with and without the _score suffix. The suffixed form wins when
// both are present.
type metricsPayload struct {
	Metrics *struct {
		Accuracy       *float64 `json:"accuracy"`
		AccuracyScore  *float64 `json:"accuracy_score"`
		Precision      *float64 `json:"precision"`
		PrecisionScore *float64 `json:"precision_score"`
		Recall         *float64 `json:"recall"`
		RecallScore    *float64 `json:"recall_score"`
		F1             *float64 `json:"f1"`
		F1Score        *float64 `json:"f1_score"`
	} `json:"metrics"`
}

func (p *metricsPayload) resolve() (Metrics, error) {
	if p.Metrics == nil {
		return Metrics{}, &MalformedResponseError{Reason: "missing metrics object"}
	}

	var m Metrics
	var ok bool
	if m.Accuracy, ok = pick(p.Metrics.AccuracyScore, p.Metrics.Accuracy); !ok {
		return Metrics{}, &MalformedResponseError{Reason: "missing accuracy"}
	}
	if m.Precision, ok = pick(p.Metrics.PrecisionScore, p.Metrics.Precision); !ok {
		return Metrics{}, &MalformedResponseError{Reason: "missing precision"}
	}
	if m.Recall, ok = pick(p.Metrics.RecallScore, p.Metrics.Recall); !ok {
		return Metrics{}, &MalformedResponseError{Reason: "missing recall"}
	}
	if m.F1Score, ok = pick(p.Metrics.F1Score, p.Metrics.F1); !ok {
		return Metrics{}, &MalformedResponseError{Reason: "missing f1 score"}
	}
	return m, nil
}

func pick(suffixed, bare *float64) (float64, bool) {
	if suffixed != nil {
		return *suffixed, true
	}
	if bare != nil {
		return *bare, true
	}
	return 0, false
}
