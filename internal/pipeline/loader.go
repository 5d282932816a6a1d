package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// Inputs bundles everything one run consumes: the prior thread, the
// investor profile, the sent-email style corpus and the signal feed.
type Inputs struct {
	Thread     model.EmailThread
	Investor   model.InvestorProfile
	SentBodies []string
	Events     []model.SignalEvent
}

type sentCorpus struct {
	SentEmailBodies []string `json:"sent_email_bodies"`
}

type signalFeed struct {
	Events []model.SignalEvent `json:"events"`
}

// LoadInputs reads and validates the four input documents
func LoadInputs(threadPath, investorPath, sentPath, signalsPath string) (*Inputs, error) {
	var thread model.EmailThread
	if err := loadJSON(threadPath, &thread); err != nil {
		return nil, fmt.Errorf("load thread: %w", err)
	}
	if thread.ThreadID == "" {
		return nil, fmt.Errorf("load thread: missing thread_id in %s", threadPath)
	}

	var investor model.InvestorProfile
	if err := loadJSON(investorPath, &investor); err != nil {
		return nil, fmt.Errorf("load investor: %w", err)
	}
	if investor.Email == "" {
		return nil, fmt.Errorf("load investor: missing email in %s", investorPath)
	}

	var corpus sentCorpus
	if err := loadJSON(sentPath, &corpus); err != nil {
		return nil, fmt.Errorf("load sent corpus: %w", err)
	}

	var feed signalFeed
	if err := loadJSON(signalsPath, &feed); err != nil {
		return nil, fmt.Errorf("load signals: %w", err)
	}

	return &Inputs{
		Thread:     thread,
		Investor:   investor,
		SentBodies: corpus.SentEmailBodies,
		Events:     feed.Events,
	}, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
