package mapper

import (
	"regexp"
	"strings"
)

// deliberatePatterns indicate the document explicitly scoped something out.
// They are checked against the entire document: one scoping phrase anywhere
// reclassifies every absence in the result. That global behavior is part of
// the contract, not an optimization shortcut.
var deliberatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)out of scope`),
	regexp.MustCompile(`(?i)intentionally omitted`),
	regexp.MustCompile(`(?i)beyond the scope`),
	regexp.MustCompile(`(?i)not covered`),
}

// structuralRules map an absence-name prefix to a secondary pattern that
// must also hold for the absence to be structurally impossible rather than
// overlooked. A conceptual sketch cannot have error handling yet; a brand
// new effort cannot have historical data.
var structuralRules = []struct {
	prefix  string
	pattern *regexp.Regexp
}{
	{"error_handling", regexp.MustCompile(`(?i)concept|theoretical|idea`)},
	{"testing", regexp.MustCompile(`(?i)draft|proposal|design phase|concept`)},
	{"historical_data", regexp.MustCompile(`(?i)\bnew\b|novel|first time|unprecedented`)},
	{"future_commitments", regexp.MustCompile(`(?i)deprecat|sunset|end of life|legacy`)},
}

// Classify assigns exactly one type to a named absence, checking the full
// original input text in priority order: deliberate, structural, overlooked.
func Classify(name, text string) AbsenceType {
	for _, p := range deliberatePatterns {
		if p.MatchString(text) {
			return TypeDeliberate
		}
	}
	for _, rule := range structuralRules {
		if strings.HasPrefix(name, rule.prefix) && rule.pattern.MatchString(text) {
			return TypeStructural
		}
	}
	return TypeOverlooked
}
