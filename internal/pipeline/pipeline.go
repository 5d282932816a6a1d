package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/compose"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/decide"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/intake"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/llm"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/score"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/signals"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/store"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/tone"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/worker"
)

// Fallbacks when the thread carries no annotations
const (
	fallbackFounderEmail = "founder@example.com"
	fallbackFounderName  = "Founder"
	fallbackCompany      = "Company"
)

// Pipeline orchestrates one complete re-engagement evaluation
type Pipeline struct {
	deals    *store.DealStore
	polisher llm.Provider // Optional draft polish (nil if disabled)
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var polisher llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(cfg.LLM)
		if err != nil {
			fmt.Printf("Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			polisher = p
		}
	}

	return &Pipeline{
		deals:    store.NewDealStore(),
		polisher: polisher,
		config:   cfg,
	}
}

// RunResult contains the complete run outcome
type RunResult struct {
	Deal     model.DealState
	Decision model.Decision
	Draft    *model.DraftEmail // nil unless re-engagement was recommended
	Polished *model.DraftEmail // nil unless polish was enabled and succeeded
}

// Run evaluates one deal end to end: intake gate, signal collection,
// concurrent scoring, aggregation, decision, and (when recommended)
// tone-adaptive drafting.
func (p *Pipeline) Run(ctx context.Context, in *Inputs) (*RunResult, error) {
	if !intake.DetectTooEarlyIntent(in.Thread) {
		return nil, fmt.Errorf("no 'too early' intent detected in thread %s", in.Thread.ThreadID)
	}

	founderEmail := intake.ExtractFounderEmail(in.Thread, in.Investor.Email)
	if founderEmail == "" {
		founderEmail = fallbackFounderEmail
	}
	founderName := in.Thread.FounderName
	if founderName == "" {
		founderName = fallbackFounderName
	}
	company := in.Thread.Company
	if company == "" {
		company = fallbackCompany
	}

	deal := p.deals.Upsert(model.DealState{
		ThreadID:   in.Thread.ThreadID,
		InvestorID: in.Investor.InvestorID,
		Founder: model.FounderProfile{
			Name:    founderName,
			Email:   founderEmail,
			Company: company,
		},
		Stage: model.StageTooEarly,
	})

	collector := signals.NewStaticCollector(in.Events)
	events, err := collector.Collect(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("collect signals: %w", err)
	}

	weights := p.config.Scoring.Weights
	if in.Investor.SignalWeights != nil {
		weights = *in.Investor.SignalWeights
	}
	batch := worker.NewBatchScorer(score.NewScorer(weights), p.config.Concurrency.ScoringWorkers)
	scored, err := batch.ScoreAll(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("score signals: %w", err)
	}

	total := score.Aggregate(scored)
	threshold := p.config.Scoring.Threshold
	if in.Investor.SignalThreshold != nil {
		threshold = *in.Investor.SignalThreshold
	}

	decision := decide.Assemble(deal.DealID, in.Thread.ThreadID, total, threshold, scored)

	stage := model.StageMonitoring
	if decision.Recommended {
		stage = model.StageReengageRecommended
	}
	if updated, ok := p.deals.Touch(deal.DealID, stage); ok {
		deal = updated
	}

	result := &RunResult{
		Deal:     deal,
		Decision: decision,
	}

	if decision.Recommended {
		profile := tone.BuildProfile(in.SentBodies)

		draft := compose.DraftOutreachEmail(compose.DraftRequest{
			InvestorName:   in.Investor.Name,
			InvestorEmail:  in.Investor.Email,
			FounderName:    founderName,
			FounderEmail:   founderEmail,
			Company:        company,
			MeetingContext: in.Thread.MeetingContext,
			KeySignals:     keySignals(scored),
			Tone:           profile,
		})
		result.Draft = &draft

		if p.polisher != nil {
			polished, err := p.polisher.Polish(ctx, llm.PolishRequest{Draft: draft, Tone: profile})
			if err != nil {
				// The deterministic draft stands on its own
				fmt.Printf("Warning: draft polish failed: %v\n", err)
			} else {
				variant := draft
				variant.Body = polished.Body
				result.Polished = &variant
			}
		}
	}

	return result, nil
}

// keySignals orders the scored events by descending score and maps them
// into the facts the composer may cite.
func keySignals(scored []model.SignalScore) []compose.KeySignal {
	sorted := make([]model.SignalScore, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	out := make([]compose.KeySignal, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, compose.KeySignal{
			Title:  s.Event.Title,
			Detail: s.Event.Detail,
			URL:    s.Event.URL,
		})
	}
	return out
}
