package signals

import (
	"context"
	"testing"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

func TestStaticCollector_ReturnsCopy(t *testing.T) {
	events := []model.SignalEvent{
		{Source: "funding", Title: "Series A"},
		{Source: "hiring", Title: "Headcount doubled"},
	}
	c := NewStaticCollector(events)

	got, err := c.Collect(context.Background(), "Startup")
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}

	// Mutating the returned slice must not leak into the collector
	got[0].Title = "mutated"
	again, err := c.Collect(context.Background(), "Startup")
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if again[0].Title != "Series A" {
		t.Errorf("Collector view mutated: %q", again[0].Title)
	}
}

func TestStaticCollector_CancelledContext(t *testing.T) {
	c := NewStaticCollector(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Collect(ctx, "Startup"); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
