// Package signals provides collectors for business-activity events. The
// agent only ever sees a static, pre-fetched feed; live ingestion belongs
// to whatever produced the feed file.
package signals

import (
	"context"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// Collector produces the signal events observed for a company
type Collector interface {
	Collect(ctx context.Context, company string) ([]model.SignalEvent, error)
}

// StaticCollector serves a fixed, pre-fetched event collection
type StaticCollector struct {
	events []model.SignalEvent
}

// NewStaticCollector creates a collector over an already-loaded feed
func NewStaticCollector(events []model.SignalEvent) *StaticCollector {
	return &StaticCollector{events: events}
}

// Collect returns a copy of the feed so callers cannot mutate the
// collector's view of it.
func (c *StaticCollector) Collect(ctx context.Context, company string) ([]model.SignalEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.SignalEvent, len(c.events))
	copy(out, c.events)
	return out, nil
}
