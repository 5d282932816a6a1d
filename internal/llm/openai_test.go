package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

func testDraft() model.DraftEmail {
	return model.DraftEmail{
		ToEmail:   "sam@startup.com",
		FromEmail: "jane@fund.com",
		Subject:   "Re: Startup - quick follow-up",
		Body:      "Hi Sam,\n\nWanted to circle back after our last chat.\n\nBest,\nJane",
	}
}

func polishServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected Authorization header Bearer test-key, got %s", r.Header.Get("Authorization"))
		}

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-123",
			Object: "chat.completion",
			Model:  "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index:        0,
					Message:      openai.ChatCompletionMessage{Role: "assistant", Content: content},
					FinishReason: "stop",
				},
			},
			Usage: openai.Usage{TotalTokens: 80},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIProvider_Polish_Success(t *testing.T) {
	polished := "Hi Sam,\n\nCircling back after our last conversation.\n\nBest,\nJane"
	server := polishServer(t, polished)
	defer server.Close()

	provider, err := NewOpenAIProvider(model.LLMConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		Model:          "gpt-4o-mini",
		TimeoutSeconds: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Polish(context.Background(), PolishRequest{Draft: testDraft()})
	if err != nil {
		t.Fatalf("Polish failed: %v", err)
	}

	if resp.Body != polished {
		t.Errorf("Unexpected polished body: %q", resp.Body)
	}
	if resp.TokensUsed != 80 {
		t.Errorf("Unexpected token count: %d", resp.TokensUsed)
	}
}

func TestOpenAIProvider_Polish_RejectsIntroducedURL(t *testing.T) {
	server := polishServer(t, "Hi Sam, see https://sketchy.example.com for details.")
	defer server.Close()

	provider, err := NewOpenAIProvider(model.LLMConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if _, err := provider.Polish(context.Background(), PolishRequest{Draft: testDraft()}); err == nil {
		t.Error("Expected error for introduced URL")
	}
}

func TestOpenAIProvider_Polish_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "Internal Server Error", "type": "server_error"}}`))
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(model.LLMConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if _, err := provider.Polish(context.Background(), PolishRequest{Draft: testDraft()}); err == nil {
		t.Error("Expected error from failing API")
	}
}

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(model.LLMConfig{}); err == nil {
		t.Error("Expected error without API key")
	}
}

func TestNewProvider_Factory(t *testing.T) {
	p, err := NewProvider(model.LLMConfig{})
	if err != nil || p != nil {
		t.Errorf("Expected disabled provider for empty name, got %v, %v", p, err)
	}

	if _, err := NewProvider(model.LLMConfig{Provider: "carrier-pigeon"}); err == nil {
		t.Error("Expected error for unknown provider")
	}

	p, err = NewProvider(model.LLMConfig{Provider: "openai", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected openai provider, got error: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Unexpected provider name: %s", p.Name())
	}
}

func TestBuildPrompt_CarriesDraftAndStyle(t *testing.T) {
	req := PolishRequest{
		Draft: testDraft(),
		Tone:  model.ToneProfile{AvgSentenceLen: 25},
	}

	prompt := BuildPrompt(req)

	if !strings.Contains(prompt, "Re: Startup - quick follow-up") {
		t.Error("Expected subject in prompt")
	}
	if !strings.Contains(prompt, "longer, flowing sentences") {
		t.Error("Expected long-sentence style hint for high average length")
	}

	req.Tone.AvgSentenceLen = 8
	if !strings.Contains(BuildPrompt(req), "short, plain sentences") {
		t.Error("Expected short-sentence style hint for low average length")
	}
}
