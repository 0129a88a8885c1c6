package session

import (
	"fmt"

	"github.com/haskel/cytoscan/internal/api"
)

// Tier buckets a prediction's confidence for display emphasis.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// ConfidenceTier buckets c. Exactly 0.8 resolves to medium and exactly 0.6
// to low.
func ConfidenceTier(c float64) Tier {
	switch {
	case c > 0.8:
		return TierHigh
	case c > 0.6:
		return TierMedium
	default:
		return TierLow
	}
}

// FormatPercent renders a fraction as a percentage with a fixed number of
// decimal places: FormatPercent(0.93, 2) is "93.00%".
func FormatPercent(p float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, p*100)
}

// ClassProbability is one row of the per-class breakdown.
type ClassProbability struct {
	Label       string
	Probability float64
}

// OrderedProbabilities flattens the prediction's class map in the order the
// backend sent it. The backend controls class ordering; nothing is sorted
// here.
func OrderedProbabilities(p *api.Prediction) []ClassProbability {
	if p == nil || p.Probabilities == nil {
		return nil
	}

	out := make([]ClassProbability, 0, p.Probabilities.Len())
	for pair := p.Probabilities.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, ClassProbability{Label: pair.Key, Probability: pair.Value})
	}
	return out
}
