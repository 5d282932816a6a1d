// Package llm optionally polishes the deterministic draft with a language
// model. The polished variant is a separate artifact: it never replaces
// the deterministic draft and never affects the decision.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// Provider defines the interface for polish providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Polish rewrites the draft body for flow while preserving its facts
	Polish(ctx context.Context, req PolishRequest) (*PolishResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// PolishRequest contains the input for draft polishing
type PolishRequest struct {
	// Draft is the deterministic outreach draft to polish
	Draft model.DraftEmail

	// Tone is the profile the polished text must still match
	Tone model.ToneProfile

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// PolishResponse contains the polished body
type PolishResponse struct {
	Body       string
	Model      string
	TokensUsed int
}

// NewProvider creates a provider from configuration. An empty provider
// name means polishing is disabled and yields nil, nil.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}

// BuildPrompt constructs the polish prompt. The model may only smooth
// wording; every fact, the greeting, the ask and the signoff must survive
// verbatim in meaning, and no link may be added.
func BuildPrompt(req PolishRequest) string {
	style := "short, plain sentences"
	if req.Tone.AvgSentenceLen > 18 {
		style = "longer, flowing sentences"
	}

	return fmt.Sprintf(`Lightly polish the investor outreach email below.

RULES:
1. Keep every factual statement; do not add, drop, or reorder facts.
2. Keep the greeting, the 20-minute ask, and the signoff exactly as written.
3. Do not add any URL or reference that is not already in the email.
4. Match the sender's style: %s.
5. Return only the polished email body, no commentary.

Subject: %s

%s`, style, req.Draft.Subject, req.Draft.Body)
}

func extractURLs(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, field := range strings.Fields(text) {
		if !strings.HasPrefix(field, "http://") && !strings.HasPrefix(field, "https://") {
			continue
		}
		u := strings.TrimRight(field, ".,;:!?)")
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
