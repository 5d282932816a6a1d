package worker

import (
	"context"
	"fmt"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// EventScorer scores a single signal event
type EventScorer interface {
	ScoreEvent(event model.SignalEvent) (model.SignalScore, error)
}

// ScoreJob scores one event, remembering its position in the feed so the
// batch can restore collection order afterwards.
type ScoreJob struct {
	Index  int
	Event  model.SignalEvent
	Scorer EventScorer
}

// Execute executes the score job
func (j *ScoreJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &ScoreJobResult{Index: j.Index, Err: err}
	}
	scored, err := j.Scorer.ScoreEvent(j.Event)
	return &ScoreJobResult{Index: j.Index, Score: scored, Err: err}
}

// ScoreJobResult carries one scored event and its feed position
type ScoreJobResult struct {
	Index int
	Score model.SignalScore
	Err   error
}

// GetError returns the error from the score job
func (r *ScoreJobResult) GetError() error {
	return r.Err
}

// BatchScorer scores a whole event feed concurrently. Scoring is pure and
// order-independent, so events fan out across the pool; results are
// stitched back into feed order by index.
type BatchScorer struct {
	scorer      EventScorer
	concurrency int
}

// NewBatchScorer creates a new batch scorer
func NewBatchScorer(scorer EventScorer, concurrency int) *BatchScorer {
	return &BatchScorer{
		scorer:      scorer,
		concurrency: concurrency,
	}
}

// ScoreAll scores every event and returns the scores in feed order. The
// first scoring error fails the whole batch.
func (b *BatchScorer) ScoreAll(ctx context.Context, events []model.SignalEvent) ([]model.SignalScore, error) {
	if len(events) == 0 {
		return []model.SignalScore{}, nil
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for i, ev := range events {
		pool.Submit(&ScoreJob{Index: i, Event: ev, Scorer: b.scorer})
	}

	results := pool.Wait()
	if len(results) != len(events) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("scored %d of %d events", len(results), len(events))
	}

	out := make([]model.SignalScore, len(events))
	for _, r := range results {
		sr, ok := r.(*ScoreJobResult)
		if !ok {
			return nil, fmt.Errorf("unexpected result type %T", r)
		}
		if sr.Err != nil {
			return nil, fmt.Errorf("score event %d: %w", sr.Index, sr.Err)
		}
		out[sr.Index] = sr.Score
	}

	return out, nil
}
