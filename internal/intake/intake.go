// Package intake screens a prior email thread for the "not now" signal
// that puts a deal into monitoring, and identifies the founder's address.
package intake

import (
	"regexp"
	"strings"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// tooEarlyPatterns is the fixed vocabulary of deferral phrasings
var tooEarlyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\btoo early\b`),
	regexp.MustCompile(`\bearly for us\b`),
	regexp.MustCompile(`\bcheck back\b`),
	regexp.MustCompile(`\bkeep me posted\b`),
	regexp.MustCompile(`\brevisit\b`),
}

// DetectTooEarlyIntent reports whether any message in the thread carries a
// "too early" deferral.
func DetectTooEarlyIntent(thread model.EmailThread) bool {
	var bodies []string
	for _, m := range thread.Messages {
		bodies = append(bodies, strings.ToLower(m.BodyText))
	}
	text := strings.Join(bodies, "\n")

	for _, p := range tooEarlyPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// ExtractFounderEmail returns the most recent sender that is not the
// investor, scanning messages newest-first. Empty string when the thread
// holds no such sender.
func ExtractFounderEmail(thread model.EmailThread, investorEmail string) string {
	for i := len(thread.Messages) - 1; i >= 0; i-- {
		from := thread.Messages[i].FromEmail
		if !strings.EqualFold(from, investorEmail) {
			return from
		}
	}
	return ""
}
