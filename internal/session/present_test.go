package session

import (
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/haskel/cytoscan/internal/api"
)

func TestConfidenceTier(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Tier
	}{
		{1.0, TierHigh},
		{0.93, TierHigh},
		{0.81, TierHigh},
		{0.8, TierMedium}, // boundary resolves down
		{0.79, TierMedium},
		{0.61, TierMedium},
		{0.6, TierLow}, // boundary resolves down
		{0.59, TierLow},
		{0.2, TierLow},
		{0.0, TierLow},
	}

	for _, tt := range tests {
		if got := ConfidenceTier(tt.confidence); got != tt.want {
			t.Errorf("ConfidenceTier(%v) = %s, want %s", tt.confidence, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		p        float64
		decimals int
		want     string
	}{
		{0.93, 2, "93.00%"},
		{0.93, 1, "93.0%"},
		{0.05, 1, "5.0%"},
		{0.0, 2, "0.00%"},
		{1.0, 2, "100.00%"},
		{0.005, 1, "0.5%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.p, tt.decimals); got != tt.want {
			t.Errorf("FormatPercent(%v, %d) = %s, want %s", tt.p, tt.decimals, got, tt.want)
		}
	}
}

func TestOrderedProbabilitiesPreservesOrder(t *testing.T) {
	// Deliberately not alphabetical and not sorted by probability.
	probs := orderedmap.New[string, float64]()
	probs.Set("Negative for Intraepithelial malignancy", 0.93)
	probs.Set("Low squamous intra-epithelial lesion", 0.05)
	probs.Set("High squamous intra-epithelial lesion", 0.01)
	probs.Set("Squamous cell carcinoma", 0.01)

	pred := &api.Prediction{Label: "Negative for Intraepithelial malignancy", Confidence: 0.93, Probabilities: probs}

	got := OrderedProbabilities(pred)

	wantOrder := []string{
		"Negative for Intraepithelial malignancy",
		"Low squamous intra-epithelial lesion",
		"High squamous intra-epithelial lesion",
		"Squamous cell carcinoma",
	}

	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d rows, got %d", len(wantOrder), len(got))
	}
	for i, label := range wantOrder {
		if got[i].Label != label {
			t.Errorf("row %d: expected %q, got %q", i, label, got[i].Label)
		}
	}
	if got[0].Probability != 0.93 {
		t.Errorf("expected probability carried over, got %v", got[0].Probability)
	}
}

func TestOrderedProbabilitiesNilSafe(t *testing.T) {
	if got := OrderedProbabilities(nil); got != nil {
		t.Errorf("expected nil for nil prediction, got %v", got)
	}
	if got := OrderedProbabilities(&api.Prediction{}); got != nil {
		t.Errorf("expected nil for prediction without probabilities, got %v", got)
	}
}
