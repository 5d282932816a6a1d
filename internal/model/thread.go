package model

import "time"

// EmailMessage is a single message within a prior correspondence thread
type EmailMessage struct {
	MsgID     string    `json:"msg_id"`
	Timestamp time.Time `json:"timestamp"`
	FromEmail string    `json:"from_email"`
	ToEmails  []string  `json:"to_emails"`
	Subject   string    `json:"subject"`
	BodyText  string    `json:"body_text"`
}

// EmailThread is the prior correspondence that signaled "not now".
// FounderName, Company and MeetingContext are optional annotations
// carried alongside the raw messages.
type EmailThread struct {
	ThreadID       string         `json:"thread_id"`
	Messages       []EmailMessage `json:"messages"`
	FounderName    string         `json:"founder_name,omitempty"`
	Company        string         `json:"company,omitempty"`
	MeetingContext string         `json:"meeting_context,omitempty"`
}

// InvestorProfile describes the investor on whose behalf the agent acts.
// SignalWeights and SignalThreshold are optional per-investor overrides;
// nil means "use configured defaults".
type InvestorProfile struct {
	InvestorID      string         `json:"investor_id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Firm            string         `json:"firm,omitempty"`
	Timezone        string         `json:"timezone,omitempty"`
	AutoSend        bool           `json:"auto_send"`
	SignalWeights   *SignalWeights `json:"signal_weights,omitempty"`
	SignalThreshold *float64       `json:"signal_threshold,omitempty"`
}

// FounderProfile describes the counterparty founder
type FounderProfile struct {
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Company         string `json:"company"`
	LastMeetingDate string `json:"last_meeting_date,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// DealStage tracks where a deal sits in the re-engagement lifecycle
type DealStage string

const (
	StageTooEarly            DealStage = "too_early"
	StageMonitoring          DealStage = "monitoring"
	StageReengageRecommended DealStage = "reengage_recommended"
	StageClosed              DealStage = "closed"
)

// DealState is the persistent-ish record of one investor/founder deal
type DealState struct {
	DealID        string         `json:"deal_id"`
	ThreadID      string         `json:"thread_id"`
	InvestorID    string         `json:"investor_id"`
	Founder       FounderProfile `json:"founder"`
	Stage         DealStage      `json:"stage"`
	CreatedAt     time.Time      `json:"created_at"`
	LastCheckedAt *time.Time     `json:"last_checked_at,omitempty"`
}
