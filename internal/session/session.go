// Package session holds the client-side classification state machine:
// which image and model are selected, the lifecycle of the in-flight
// inference request, and the evaluation metrics shown for the active model.
//
// The session performs no I/O itself. Operations that need a backend round
// trip return a request value describing it; the event loop runs the request
// and feeds the outcome back through one of the Apply methods. This keeps the
// whole state machine testable without a network.
package session

import (
	"log/slog"
	"path/filepath"

	"github.com/haskel/cytoscan/internal/api"
)

// Phase is the lifecycle of the inference request stream.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	}
	return "unknown"
}

// MetricsRequest asks the event loop to fetch metrics for Model. Seq must be
// echoed back to ApplyMetrics so stale resolutions can be dropped.
type MetricsRequest struct {
	Model api.ModelID
	Seq   uint64
}

// ClassifyRequest asks the event loop to run one inference round trip.
type ClassifyRequest struct {
	Path  string
	Model api.ModelID
}

// Session owns all mutable classification state. It is not safe for
// concurrent use: a single event loop must own it and apply results in the
// order they arrive.
type Session struct {
	// Selection.
	FilePath    string
	PreviewName string
	Model       api.ModelID

	// Inference request stream.
	Phase      Phase
	Prediction *api.Prediction
	ErrMessage string

	// Metrics for the active model. Starts at the fallback so the panel is
	// never empty before the first fetch resolves.
	Metrics api.Metrics

	metricsSeq uint64
	logger     *slog.Logger
}

// New creates a session with the given default model active.
func New(defaultModel api.ModelID, logger *slog.Logger) *Session {
	return &Session{
		Model:   defaultModel,
		Metrics: api.FallbackMetrics,
		logger:  logger,
	}
}

// Start issues the initial metrics fetch for the default model.
func (s *Session) Start() MetricsRequest {
	s.metricsSeq++
	return MetricsRequest{Model: s.Model, Seq: s.metricsSeq}
}

// SelectFile replaces the selected image. A prediction is bound to the
// file+model pair it was computed for, so any held result is discarded.
func (s *Session) SelectFile(path string) {
	s.FilePath = path
	if path == "" {
		s.PreviewName = ""
	} else {
		s.PreviewName = filepath.Base(path)
	}
	s.clearResult()
}

// SelectModel switches the active classifier and schedules a metrics refresh
// for it. An identifier outside the served set is rejected with
// InvalidModelError and leaves the session untouched.
func (s *Session) SelectModel(id string) (MetricsRequest, error) {
	model, err := api.ParseModelID(id)
	if err != nil {
		return MetricsRequest{}, err
	}

	s.Model = model
	s.clearResult()
	s.metricsSeq++
	return MetricsRequest{Model: model, Seq: s.metricsSeq}, nil
}

// Submit starts one classification request for the current selection.
//
// A nil request with a nil error means the submit was ignored because one is
// already in flight. Submitting without a file issues nothing and records a
// user-facing error.
func (s *Session) Submit() (*ClassifyRequest, error) {
	if s.Phase == PhaseLoading {
		return nil, nil
	}
	if s.FilePath == "" {
		s.ErrMessage = api.ErrNoFileSelected.Error()
		return nil, api.ErrNoFileSelected
	}

	s.Phase = PhaseLoading
	s.Prediction = nil
	s.ErrMessage = ""
	return &ClassifyRequest{Path: s.FilePath, Model: s.Model}, nil
}

// ApplyPrediction settles the in-flight classification request. The previous
// prediction is replaced wholesale; classes may differ across models so old
// and new probabilities are never merged. The session is interactive again
// either way.
func (s *Session) ApplyPrediction(pred *api.Prediction, err error) {
	if err != nil {
		s.Phase = PhaseFailure
		s.Prediction = nil
		s.ErrMessage = err.Error()
		s.logger.Warn("classification failed", "model", s.Model, "error", err)
		return
	}

	s.Phase = PhaseSuccess
	s.Prediction = pred
	s.ErrMessage = ""
}

// ApplyMetrics settles a metrics fetch. Only the resolution matching the most
// recently issued sequence number is applied; anything older is stale and
// dropped regardless of arrival order. Failures fall back to the default
// metrics and are never surfaced to the user.
func (s *Session) ApplyMetrics(seq uint64, m api.Metrics, err error) {
	if seq != s.metricsSeq {
		s.logger.Debug("dropping stale metrics resolution", "seq", seq, "latest", s.metricsSeq)
		return
	}

	if err != nil {
		s.logger.Warn("metrics fetch failed, using fallback", "model", s.Model, "error", err)
		s.Metrics = api.FallbackMetrics
		return
	}

	s.Metrics = m
}

func (s *Session) clearResult() {
	s.Prediction = nil
	s.ErrMessage = ""
	if s.Phase != PhaseLoading {
		s.Phase = PhaseIdle
	}
}
