package model

import "time"

// SignalEvent represents one observed business-activity event about a company.
// Events are produced by a collector and are never mutated after collection.
type SignalEvent struct {
	Source     string    `json:"source"`        // Source tag (e.g., "funding", "hiring")
	OccurredAt time.Time `json:"occurred_at"`   // When the event was observed
	Title      string    `json:"title"`         // Short headline
	Detail     string    `json:"detail"`        // Longer description
	URL        string    `json:"url,omitempty"` // Optional link to the source
	Confidence float64   `json:"confidence"`    // How sure the collector is, [0,1]
	Magnitude  float64   `json:"magnitude"`     // How big the event is, [0,1]
}

// SignalScore pairs an event with its weighted score and a transparent
// explanation of how the score was produced. Created once per event by
// the scoring engine and never mutated afterward.
type SignalScore struct {
	Event   SignalEvent `json:"event"`
	Score   float64     `json:"score"`   // Bounded per-event score, [0,1]
	Reasons []string    `json:"reasons"` // Ordered human-readable breakdown
}
