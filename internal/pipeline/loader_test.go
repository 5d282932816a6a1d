package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadInputs(t *testing.T) {
	dir := t.TempDir()

	threadPath := writeFile(t, dir, "thread.json", `{
		"thread_id": "thread_1",
		"founder_name": "Sam",
		"company": "Startup",
		"messages": [
			{"msg_id": "m1", "timestamp": "2026-02-01T10:00:00Z", "from_email": "sam@startup.com", "to_emails": ["jane@fund.com"], "subject": "Intro", "body_text": "Deck attached."}
		]
	}`)
	investorPath := writeFile(t, dir, "investor.json", `{
		"investor_id": "inv_1",
		"name": "Jane",
		"email": "jane@fund.com",
		"signal_weights": {"funding": 1.5},
		"signal_threshold": 0.6
	}`)
	sentPath := writeFile(t, dir, "sent.json", `{"sent_email_bodies": ["Hello. Best,\nJane"]}`)
	signalsPath := writeFile(t, dir, "signals.json", `{
		"events": [
			{"source": "funding", "occurred_at": "2026-03-01T00:00:00Z", "title": "Series A", "detail": "Raised $12M", "confidence": 0.9, "magnitude": 0.8}
		]
	}`)

	in, err := LoadInputs(threadPath, investorPath, sentPath, signalsPath)
	if err != nil {
		t.Fatalf("LoadInputs failed: %v", err)
	}

	if in.Thread.ThreadID != "thread_1" || len(in.Thread.Messages) != 1 {
		t.Errorf("Unexpected thread: %+v", in.Thread)
	}
	if in.Investor.Name != "Jane" {
		t.Errorf("Unexpected investor: %+v", in.Investor)
	}
	if len(in.SentBodies) != 1 || len(in.Events) != 1 {
		t.Errorf("Unexpected corpus/feed sizes: %d bodies, %d events", len(in.SentBodies), len(in.Events))
	}

	// Partial weight overrides keep stock weights for omitted sources
	w := in.Investor.SignalWeights
	if w == nil {
		t.Fatal("Expected investor weights")
	}
	if w.Funding != 1.5 {
		t.Errorf("Expected funding override 1.5, got %f", w.Funding)
	}
	if w.Press != 0.9 {
		t.Errorf("Expected stock press weight 0.9, got %f", w.Press)
	}

	if in.Investor.SignalThreshold == nil || *in.Investor.SignalThreshold != 0.6 {
		t.Errorf("Expected threshold override 0.6, got %v", in.Investor.SignalThreshold)
	}
}

func TestLoadInputs_MissingThreadID(t *testing.T) {
	dir := t.TempDir()

	threadPath := writeFile(t, dir, "thread.json", `{"messages": []}`)
	investorPath := writeFile(t, dir, "investor.json", `{"email": "jane@fund.com"}`)
	sentPath := writeFile(t, dir, "sent.json", `{"sent_email_bodies": []}`)
	signalsPath := writeFile(t, dir, "signals.json", `{"events": []}`)

	if _, err := LoadInputs(threadPath, investorPath, sentPath, signalsPath); err == nil {
		t.Error("Expected error for thread without thread_id")
	}
}

func TestLoadInputs_MalformedJSON(t *testing.T) {
	dir := t.TempDir()

	threadPath := writeFile(t, dir, "thread.json", `{"thread_id": "t1"`)
	investorPath := writeFile(t, dir, "investor.json", `{"email": "jane@fund.com"}`)
	sentPath := writeFile(t, dir, "sent.json", `{"sent_email_bodies": []}`)
	signalsPath := writeFile(t, dir, "signals.json", `{"events": []}`)

	if _, err := LoadInputs(threadPath, investorPath, sentPath, signalsPath); err == nil {
		t.Error("Expected error for malformed thread JSON")
	}
}

func TestLoadInputs_MissingFile(t *testing.T) {
	dir := t.TempDir()

	investorPath := writeFile(t, dir, "investor.json", `{"email": "jane@fund.com"}`)
	sentPath := writeFile(t, dir, "sent.json", `{"sent_email_bodies": []}`)
	signalsPath := writeFile(t, dir, "signals.json", `{"events": []}`)

	if _, err := LoadInputs(filepath.Join(dir, "absent.json"), investorPath, sentPath, signalsPath); err == nil {
		t.Error("Expected error for missing thread file")
	}
}
