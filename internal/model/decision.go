package model

// ToneProfile holds the stylistic parameters inferred from an investor's
// previously sent emails. Derived once per drafting session; read-only
// thereafter.
type ToneProfile struct {
	AvgSentenceLen   float64 `json:"avg_sentence_len"`   // Mean word count per sentence, 0.0 for an empty corpus
	UsesBulletsOften bool    `json:"uses_bullets_often"` // Whether bulleted lists are a recurring habit
	Signoff          string  `json:"signoff"`            // Closing template containing the {investor_name} placeholder
}

// Decision is the assembled re-engagement recommendation for one deal.
// Immutable once assembled. Recommended is always TotalScore >= Threshold.
type Decision struct {
	DealID       string        `json:"deal_id"`
	ThreadID     string        `json:"thread_id"`
	Recommended  bool          `json:"recommended"`
	TotalScore   float64       `json:"total_score"` // Aggregate confidence, [0,1]
	Threshold    float64       `json:"threshold"`
	ScoredEvents []SignalScore `json:"scored_events"` // Preserves collection order
	Rationale    string        `json:"rationale"`
}

// DraftEmail is the terminal artifact: a drafted outreach message ready
// for an external writer to serialize.
type DraftEmail struct {
	ToEmail   string `json:"to_email"`
	FromEmail string `json:"from_email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}
