package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(url string) *Client {
	return NewClient(url, 5*time.Second, testLogger())
}

func testImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cell.png")
	if err := os.WriteFile(path, []byte("not really a png"), 0o644); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

func TestParseModelID(t *testing.T) {
	for _, valid := range []string{"vgg16", "resnet50"} {
		if _, err := ParseModelID(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}

	_, err := ParseModelID("alexnet")
	var invalidErr *InvalidModelError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidModelError, got %v", err)
	}
	if invalidErr.ID != "alexnet" {
		t.Errorf("expected offending id preserved, got %q", invalidErr.ID)
	}
}

func TestClassifySuccess(t *testing.T) {
	var gotModel, gotFile, gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/predict" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart request: %v", err)
		}
		gotModel = r.FormValue("model_type")
		if _, header, err := r.FormFile("file"); err == nil {
			gotFile = header.Filename
		}
		gotRequestID = r.Header.Get("X-Request-ID")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"prediction": "Negative for Intraepithelial malignancy",
			"confidence": 0.93,
			"class_index": 2,
			"all_predictions": {
				"Negative for Intraepithelial malignancy": 0.93,
				"Low squamous intra-epithelial lesion": 0.05,
				"High squamous intra-epithelial lesion": 0.01,
				"Squamous cell carcinoma": 0.01
			},
			"model_type": "resnet50",
			"timestamp": "2026-08-30T12:00:00"
		}`))
	}))
	defer srv.Close()

	pred, err := testClient(srv.URL).Classify(testImage(t), ModelResNet50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotModel != "resnet50" {
		t.Errorf("expected model_type field resnet50, got %q", gotModel)
	}
	if gotFile != "cell.png" {
		t.Errorf("expected file field cell.png, got %q", gotFile)
	}
	if gotRequestID == "" {
		t.Error("expected an X-Request-ID header")
	}

	if pred.Label != "Negative for Intraepithelial malignancy" {
		t.Errorf("unexpected label %q", pred.Label)
	}
	if pred.Confidence != 0.93 {
		t.Errorf("unexpected confidence %v", pred.Confidence)
	}
	if pred.ModelType != "resnet50" {
		t.Errorf("unexpected model_type %q", pred.ModelType)
	}

	// Class ordering is the backend's, preserved through decoding.
	wantOrder := []string{
		"Negative for Intraepithelial malignancy",
		"Low squamous intra-epithelial lesion",
		"High squamous intra-epithelial lesion",
		"Squamous cell carcinoma",
	}
	i := 0
	for pair := pred.Probabilities.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != wantOrder[i] {
			t.Errorf("class %d: expected %q, got %q", i, wantOrder[i], pair.Key)
		}
		i++
	}
	if i != len(wantOrder) {
		t.Errorf("expected %d classes, got %d", len(wantOrder), i)
	}
}

func TestClassifyServerErrorMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "file too large"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Classify(testImage(t), ModelVGG16)

	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if srvErr.Error() != "file too large" {
		t.Errorf("expected server message verbatim, got %q", srvErr.Error())
	}
	if srvErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", srvErr.StatusCode)
	}
}

func TestClassifyServerErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Classify(testImage(t), ModelVGG16)

	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if srvErr.Error() != "classification service returned status 502" {
		t.Errorf("expected generic fallback message, got %q", srvErr.Error())
	}
}

func TestClassifyMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing confidence", `{"prediction": "Negative", "all_predictions": {"Negative": 0.9}}`},
		{"missing label", `{"confidence": 0.9, "all_predictions": {"Negative": 0.9}}`},
		{"missing probabilities", `{"prediction": "Negative", "confidence": 0.9}`},
		{"empty probabilities", `{"prediction": "Negative", "confidence": 0.9, "all_predictions": {}}`},
		{"confidence out of range", `{"prediction": "Negative", "confidence": 1.7, "all_predictions": {"Negative": 0.9}}`},
		{"not json", `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := testClient(srv.URL).Classify(testImage(t), ModelVGG16)

			var malformedErr *MalformedResponseError
			if !errors.As(err, &malformedErr) {
				t.Fatalf("expected MalformedResponseError, got %v", err)
			}
		})
	}
}

func TestClassifyTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := testClient(srv.URL).Classify(testImage(t), ModelVGG16)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestModelMetricsSuffixedNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/metrics/vgg16" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"metrics": {"accuracy_score": 0.95, "precision_score": 0.94, "recall_score": 0.93, "f1_score": 0.92}}`))
	}))
	defer srv.Close()

	m, err := testClient(srv.URL).ModelMetrics(ModelVGG16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Metrics{Accuracy: 0.95, Precision: 0.94, Recall: 0.93, F1Score: 0.92}
	if m != want {
		t.Errorf("expected %+v, got %+v", want, m)
	}
}

func TestModelMetricsBareNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"metrics": {"accuracy": 0.95, "precision": 0.94, "recall": 0.93, "f1": 0.92}}`))
	}))
	defer srv.Close()

	m, err := testClient(srv.URL).ModelMetrics(ModelVGG16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Metrics{Accuracy: 0.95, Precision: 0.94, Recall: 0.93, F1Score: 0.92}
	if m != want {
		t.Errorf("expected %+v, got %+v", want, m)
	}
}

func TestModelMetricsMissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"metrics": {"accuracy": 0.95}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ModelMetrics(ModelVGG16)

	var malformedErr *MalformedResponseError
	if !errors.As(err, &malformedErr) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func TestModelMetricsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ModelMetrics(ModelVGG16)

	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("expected ServerError, got %v", err)
	}
}

func TestClasses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/classes" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"classes": ["High squamous intra-epithelial lesion", "Squamous cell carcinoma"]}`))
	}))
	defer srv.Close()

	classes, err := testClient(srv.URL).Classes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(classes) != 2 {
		t.Errorf("expected 2 classes, got %d", len(classes))
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"status": "healthy", "model_loaded": true}`))
	}))
	defer srv.Close()

	h, err := testClient(srv.URL).Health()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Status != "healthy" || !h.ModelLoaded {
		t.Errorf("unexpected health %+v", h)
	}
}
