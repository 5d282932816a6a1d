package decide

import (
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// Outcome is the closed two-way result of comparing the aggregate
// confidence against the investor's threshold.
type Outcome string

const (
	OutcomeReengage Outcome = "reengage"
	OutcomeMonitor  Outcome = "monitor"
)

// Rationale text is fixed per outcome; the assembler never free-forms it.
const (
	rationaleReengage = "Signals indicate meaningful momentum. Re-engagement recommended."
	rationaleMonitor  = "Signals are not strong enough yet. Continue monitoring."
)

// OutcomeFor gates the aggregate confidence against the threshold. The
// lower bound is closed: equality counts as re-engage.
func OutcomeFor(total, threshold float64) Outcome {
	if total >= threshold {
		return OutcomeReengage
	}
	return OutcomeMonitor
}

// Rationale returns the fixed rationale string for an outcome
func (o Outcome) Rationale() string {
	if o == OutcomeReengage {
		return rationaleReengage
	}
	return rationaleMonitor
}

// Assemble builds the immutable Decision for one deal. It only reads the
// scored events; their order is preserved as given.
func Assemble(dealID, threadID string, total, threshold float64, scored []model.SignalScore) model.Decision {
	outcome := OutcomeFor(total, threshold)

	return model.Decision{
		DealID:       dealID,
		ThreadID:     threadID,
		Recommended:  outcome == OutcomeReengage,
		TotalScore:   total,
		Threshold:    threshold,
		ScoredEvents: scored,
		Rationale:    outcome.Rationale(),
	}
}
