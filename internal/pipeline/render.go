package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// Rendered artifact file names
const (
	decisionFile     = "decision.json"
	notificationFile = "notification_email.txt"
	draftFile        = "draft_reply.eml"
	polishedFile     = "draft_reply.llm.eml"
)

const topSignalCount = 5

// Renderer writes run artifacts to an output directory
type Renderer struct {
	verbose bool
}

// NewRenderer creates a new renderer
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// RenderAll writes the decision document, the plaintext notification and,
// when present, the draft files.
func (r *Renderer) RenderAll(result *RunResult, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := r.renderDecisionJSON(result.Decision, filepath.Join(outDir, decisionFile)); err != nil {
		return fmt.Errorf("render decision: %w", err)
	}

	notification := RenderNotification(result.Decision, result.Deal.Founder.Company)
	if err := os.WriteFile(filepath.Join(outDir, notificationFile), []byte(notification), 0644); err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	if result.Draft != nil {
		if err := os.WriteFile(filepath.Join(outDir, draftFile), []byte(RenderEML(*result.Draft)), 0644); err != nil {
			return fmt.Errorf("render draft: %w", err)
		}
	}

	if result.Polished != nil {
		if err := os.WriteFile(filepath.Join(outDir, polishedFile), []byte(RenderEML(*result.Polished)), 0644); err != nil {
			return fmt.Errorf("render polished draft: %w", err)
		}
	}

	if r.verbose {
		fmt.Printf("✓ Wrote artifacts to %s\n", outDir)
	}

	return nil
}

func (r *Renderer) renderDecisionJSON(decision model.Decision, path string) error {
	data, err := json.MarshalIndent(decision, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderNotification renders the short plaintext summary: the decision
// header plus the top scored events by descending score.
func RenderNotification(decision model.Decision, company string) string {
	verdict := "WAIT"
	if decision.Recommended {
		verdict = "RE-ENGAGE"
	}

	lines := []string{
		fmt.Sprintf("Deal: %s", company),
		fmt.Sprintf("Thread: %s", decision.ThreadID),
		fmt.Sprintf("Decision: %s", verdict),
		fmt.Sprintf("Score: %.2f (threshold %.2f)", decision.TotalScore, decision.Threshold),
		"",
		"Top signals:",
	}

	sorted := make([]model.SignalScore, len(decision.ScoredEvents))
	copy(sorted, decision.ScoredEvents)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	for _, s := range sorted[:min(len(sorted), topSignalCount)] {
		lines = append(lines, fmt.Sprintf("- [%s] %s (score %.2f)", s.Event.Source, s.Event.Title, s.Score))
	}

	return strings.Join(lines, "\n")
}

// RenderEML serializes the draft into a simple header+body message:
// From/To/Subject, a blank line, then the body.
func RenderEML(draft model.DraftEmail) string {
	return strings.Join([]string{
		fmt.Sprintf("From: %s", draft.FromEmail),
		fmt.Sprintf("To: %s", draft.ToEmail),
		fmt.Sprintf("Subject: %s", draft.Subject),
		"",
		draft.Body,
	}, "\n")
}
