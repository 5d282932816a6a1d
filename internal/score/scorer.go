package score

import (
	"fmt"
	"math"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// highSignalThreshold marks a clamped score worth calling out in the
// reasons list. Fixed, not investor-configurable.
const highSignalThreshold = 0.7

// Scorer maps signal events to bounded per-event scores using an
// investor-specific weight table. Stateless apart from the read-only
// weights, so events may be scored in any order or in parallel.
type Scorer struct {
	weights model.SignalWeights
}

// NewScorer creates a new scorer
func NewScorer(weights model.SignalWeights) *Scorer {
	return &Scorer{weights: weights}
}

// ScoreEvent scores a single event. Out-of-range confidence, magnitude
// and weight values are clamped rather than rejected; non-finite values
// (NaN, ±Inf) are structural errors and surface to the caller.
func (s *Scorer) ScoreEvent(event model.SignalEvent) (model.SignalScore, error) {
	w := s.weights.For(event.Source)

	if !isFinite(event.Confidence) {
		return model.SignalScore{}, fmt.Errorf("event %q: confidence is not a finite number", event.Title)
	}
	if !isFinite(event.Magnitude) {
		return model.SignalScore{}, fmt.Errorf("event %q: magnitude is not a finite number", event.Title)
	}
	if !isFinite(w) {
		return model.SignalScore{}, fmt.Errorf("source %q: weight is not a finite number", event.Source)
	}

	confidence := clamp01(event.Confidence)
	magnitude := clamp01(event.Magnitude)
	if w < 0 {
		w = 0
	}

	// Weights above 1.0 are allowed; the clamp keeps the scale bounded
	scored := clamp01(confidence * magnitude * w)

	reasons := []string{
		fmt.Sprintf("source=%s weight=%.2f", event.Source, w),
		fmt.Sprintf("confidence=%.2f", confidence),
		fmt.Sprintf("magnitude=%.2f", magnitude),
	}
	if scored > highSignalThreshold {
		reasons = append(reasons, "high combined signal")
	}

	return model.SignalScore{
		Event:   event,
		Score:   scored,
		Reasons: reasons,
	}, nil
}

// Aggregate combines per-event scores into a single confidence value in
// [0,1]: the probability that at least one signal alone justifies
// re-engagement, 1 - prod(1 - score_i). Diminishing returns keep many
// weak signals from trivially summing past certainty. Empty input yields
// exactly 0.0, and a single 1.0 score is absorbing. The product is
// commutative, so the result is independent of score order.
func Aggregate(scores []model.SignalScore) float64 {
	prod := 1.0
	for _, s := range scores {
		prod *= 1.0 - clamp01(s.Score)
	}
	return 1.0 - prod
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
