// Package compose deterministically renders the outreach email. Given
// identical inputs the output is identical: no randomness, no network.
package compose

import (
	"fmt"
	"strings"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// RenderStyle is the closed two-way choice for the signals section
type RenderStyle string

const (
	StyleBulleted RenderStyle = "bulleted" // bulleted list of signal titles
	StyleInline   RenderStyle = "inline"   // single semicolon-joined sentence
)

// Signal title caps per rendering style
const (
	maxBulletTitles = 4
	maxInlineTitles = 3
)

// StyleFor maps a tone profile onto a rendering style
func StyleFor(tone model.ToneProfile) RenderStyle {
	if tone.UsesBulletsOften {
		return StyleBulleted
	}
	return StyleInline
}

// KeySignal is one fact the draft may cite, ordered highest-score first
// by the caller.
type KeySignal struct {
	Title  string
	Detail string
	URL    string
}

// DraftRequest carries everything the composer needs
type DraftRequest struct {
	InvestorName   string
	InvestorEmail  string
	FounderName    string
	FounderEmail   string
	Company        string
	MeetingContext string // Optional; included verbatim (trimmed) when non-empty
	KeySignals     []KeySignal
	Tone           model.ToneProfile
}

// DraftOutreachEmail renders the outreach subject and body. The body is a
// fixed sequence of sections; only the signals section branches, on the
// tone-derived rendering style, and it is omitted entirely when there are
// no key signals.
func DraftOutreachEmail(req DraftRequest) model.DraftEmail {
	subject := fmt.Sprintf("Re: %s - quick follow-up", req.Company)

	var lines []string
	lines = append(lines, fmt.Sprintf("Hi %s,", req.FounderName))
	lines = append(lines, "")
	lines = append(lines, "Wanted to circle back after our last chat.")
	if ctx := strings.TrimSpace(req.MeetingContext); ctx != "" {
		lines = append(lines, ctx)
	}
	lines = append(lines, "")

	if len(req.KeySignals) > 0 {
		switch StyleFor(req.Tone) {
		case StyleBulleted:
			lines = append(lines, "A few updates caught my eye:")
			for _, s := range req.KeySignals[:min(len(req.KeySignals), maxBulletTitles)] {
				lines = append(lines, "- "+s.Title)
			}
		case StyleInline:
			titles := make([]string, 0, maxInlineTitles)
			for _, s := range req.KeySignals[:min(len(req.KeySignals), maxInlineTitles)] {
				titles = append(titles, s.Title)
			}
			lines = append(lines, fmt.Sprintf("A couple updates caught my eye: %s.", strings.Join(titles, "; ")))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "If you're open to it, I'd like to reconnect and understand where things stand now.")
	lines = append(lines, "Are you free for 20 minutes next week?")
	lines = append(lines, "")
	lines = append(lines, strings.ReplaceAll(req.Tone.Signoff, "{investor_name}", req.InvestorName))

	return model.DraftEmail{
		ToEmail:   req.FounderEmail,
		FromEmail: req.InvestorEmail,
		Subject:   subject,
		Body:      strings.Join(lines, "\n"),
	}
}
