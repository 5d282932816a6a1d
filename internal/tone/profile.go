// Package tone infers a lightweight stylistic profile from an investor's
// previously sent email bodies. Extraction is stateless and re-derivable:
// the same corpus always yields an identical profile.
package tone

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// DefaultSignoff is the literal fallback used when no signoff pattern is
// found anywhere in the corpus.
const DefaultSignoff = "Best,\n{investor_name}"

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]\s+`)
	bulletLineRe    = regexp.MustCompile(`(?m)^\s*[-*]\s+`)
	signoffRe       = regexp.MustCompile(`(?i)\n\s*(best|thanks|regards|sincerely),?\s*\n\s*([^\n]+)\s*$`)
	htmlMarkupRe    = regexp.MustCompile(`(?i)<(?:p|br|div|ul|ol|li|html|body|span|a|table|tr|td)\b`)
)

// BuildProfile derives a ToneProfile from a corpus of sent email bodies,
// in corpus order. An empty corpus yields a neutral profile with the
// literal fallback signoff.
//
// Bullet habit: a body counts as bulleted if any line starts with "-" or
// "*"; the habit is "often" when bulleted bodies reach max(1, n/3).
// Signoff: the last body in corpus order containing a closing-word
// pattern wins, even if earlier bodies are more representative.
func BuildProfile(bodies []string) model.ToneProfile {
	var segments, words, bulleted int
	signoff := ""

	for _, raw := range bodies {
		body := normalizeBody(raw)

		for _, part := range sentenceSplitRe.Split(strings.TrimSpace(body), -1) {
			if part == "" {
				continue
			}
			segments++
			words += len(strings.Fields(part))
		}

		if bulletLineRe.MatchString(body) {
			bulleted++
		}

		if m := signoffRe.FindString(strings.TrimRight(body, " \t\r\n")); m != "" {
			signoff = strings.TrimSpace(m)
		}
	}

	avgLen := 0.0
	if segments > 0 {
		avgLen = float64(words) / float64(segments)
	}

	if signoff == "" {
		signoff = DefaultSignoff
	}

	return model.ToneProfile{
		AvgSentenceLen:   avgLen,
		UsesBulletsOften: bulleted >= max(1, len(bodies)/3),
		Signoff:          signoff,
	}
}

// normalizeBody reduces HTML email bodies to visible text so the sentence
// and signoff heuristics see prose, not markup. Plain-text bodies pass
// through untouched.
func normalizeBody(body string) string {
	if !htmlMarkupRe.MatchString(body) {
		return body
	}
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return body
	}
	return strings.TrimSpace(visibleText(doc))
}

// visibleText walks the HTML tree collecting text nodes, skipping
// scripts/styles. Block elements end their line, and list items keep
// their bullet so the bullet heuristic still sees them.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head":
				return
			case "br":
				buf.WriteString("\n")
				return
			case "li":
				buf.WriteString("- ")
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "li", "ul", "ol", "tr", "h1", "h2", "h3", "h4":
				buf.WriteString("\n")
			}
		}
	}

	walk(n)
	return buf.String()
}
