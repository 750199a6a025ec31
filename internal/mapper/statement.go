package mapper

import (
	"regexp"
	"strings"
)

// statementPatterns are tried in priority order; the first capture wins.
var statementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)state:\s*(.*?)(?:map:|$)`),
	regexp.MustCompile(`(?is)present:\s*(.*?)(?:absent|missing|$)`),
	regexp.MustCompile(`(?s)^\s*(.*?)[.!?]`),
}

const statementFallbackLimit = 200

// ExtractStatement pulls a short factual lead-in from text. It always
// returns a string: when no pattern matches, the first 200 characters of
// the input followed by an ellipsis marker. Truncation counts runes, never
// bytes, so the fallback stays valid UTF-8.
func ExtractStatement(text string) string {
	for _, p := range statementPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if runes := []rune(text); len(runes) > statementFallbackLimit {
		text = string(runes[:statementFallbackLimit])
	}
	return text + "..."
}
