package tone

import (
	"math"
	"strings"
	"testing"
)

func TestBuildProfile_EmptyCorpus(t *testing.T) {
	profile := BuildProfile(nil)

	if profile.AvgSentenceLen != 0.0 {
		t.Errorf("Expected avg sentence length 0.0 for empty corpus, got %f", profile.AvgSentenceLen)
	}
	if profile.UsesBulletsOften {
		t.Error("Expected no bullet habit for empty corpus")
	}
	if profile.Signoff != DefaultSignoff {
		t.Errorf("Expected literal fallback signoff, got %q", profile.Signoff)
	}
}

func TestBuildProfile_AvgSentenceLength(t *testing.T) {
	bodies := []string{"Hello there. How are you doing today?"}

	profile := BuildProfile(bodies)

	// Two segments: "Hello there" (2 words) and "How are you doing today?" (5 words)
	if math.Abs(profile.AvgSentenceLen-3.5) > 1e-9 {
		t.Errorf("Expected avg sentence length 3.5, got %f", profile.AvgSentenceLen)
	}
}

func TestBuildProfile_BulletThresholdScales(t *testing.T) {
	bulleted := "Quick update:\n- raised the round\n- shipped the beta\nTalk soon."
	plain := "Quick update, things are moving along nicely over here."

	tests := []struct {
		name   string
		bodies []string
		want   bool
	}{
		{"two of four bulleted", []string{bulleted, plain, bulleted, plain}, true},
		{"none bulleted", []string{plain, plain, plain, plain}, false},
		{"single bulleted body in small corpus", []string{bulleted}, true},
		{"one of six bulleted", []string{bulleted, plain, plain, plain, plain, plain}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildProfile(tt.bodies).UsesBulletsOften; got != tt.want {
				t.Errorf("UsesBulletsOften = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildProfile_SignoffLastMatchWins(t *testing.T) {
	bodies := []string{
		"Great chatting today.\nBest,\nJane",
		"No closing here at all, just a note.",
		"Following up on the metrics.\nRegards,\nJane Doe",
		"Another note with no closing.",
	}

	profile := BuildProfile(bodies)

	if profile.Signoff != "Regards,\nJane Doe" {
		t.Errorf("Expected last matching signoff to win, got %q", profile.Signoff)
	}
}

func TestBuildProfile_SignoffCaseInsensitive(t *testing.T) {
	bodies := []string{"Thanks again for the time.\nTHANKS,\nJane"}

	profile := BuildProfile(bodies)

	if !strings.Contains(profile.Signoff, "Jane") {
		t.Errorf("Expected matched signoff ending with the name line, got %q", profile.Signoff)
	}
	if profile.Signoff == DefaultSignoff {
		t.Error("Expected a corpus-derived signoff, got the fallback")
	}
}

func TestBuildProfile_NoSignoffFallsBack(t *testing.T) {
	bodies := []string{"Just the facts here, nothing else."}

	profile := BuildProfile(bodies)

	if profile.Signoff != DefaultSignoff {
		t.Errorf("Expected fallback signoff, got %q", profile.Signoff)
	}
	if !strings.Contains(profile.Signoff, "{investor_name}") {
		t.Error("Fallback signoff must carry the name placeholder")
	}
}

func TestBuildProfile_HTMLBodyReducedToVisibleText(t *testing.T) {
	bodies := []string{
		"<p>Great meeting you. Talking soon would be great.</p><ul><li>Deck attached</li><li>Metrics below</li></ul>",
	}

	profile := BuildProfile(bodies)

	// HTML list items count as bullet lines
	if !profile.UsesBulletsOften {
		t.Error("Expected HTML list items to register as a bullet habit")
	}
	if profile.AvgSentenceLen <= 0 {
		t.Errorf("Expected sentences extracted from HTML prose, got avg %f", profile.AvgSentenceLen)
	}
}

func TestBuildProfile_Deterministic(t *testing.T) {
	bodies := []string{
		"Quick thoughts after the call. Let me mull it over.\nBest,\nJane",
		"- one\n- two\nMore soon.",
	}

	first := BuildProfile(bodies)
	second := BuildProfile(bodies)

	if first != second {
		t.Errorf("Expected identical profiles across runs: %+v vs %+v", first, second)
	}
}
