package redact

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStringRedaction(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		disallow []string
		require  []string
	}{
		{
			name:     "bearer header",
			input:    "Authorization: Bearer sk-secret-123",
			disallow: []string{"sk-secret-123"},
			require:  []string{"[REDACTED]"},
		},
		{
			name:     "api key value",
			input:    "api_key=proj-key-1",
			disallow: []string{"proj-key-1"},
			require:  []string{"[REDACTED]"},
		},
		{
			name:     "email address",
			input:    "contact jane.doe@example.com for access",
			disallow: []string{"jane.doe@example.com"},
			require:  []string{"[REDACTED_EMAIL]"},
		},
		{
			name:     "long token",
			input:    "token body " + strings.Repeat("a1B2", 10),
			disallow: []string{strings.Repeat("a1B2", 10)},
			require:  []string{"[REDACTED_TOKEN]"},
		},
		{
			name:    "plain prose untouched",
			input:   "the quick brown fox",
			require: []string{"the quick brown fox"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := String(tc.input)
			for _, bad := range tc.disallow {
				if bad != "" && strings.Contains(out, bad) {
					t.Fatalf("output still contains %q: %s", bad, out)
				}
			}
			for _, want := range tc.require {
				if !strings.Contains(out, want) {
					t.Fatalf("output missing required substring %q: %s", want, out)
				}
			}
		})
	}
}

func TestPreviewTruncates(t *testing.T) {
	out := Preview(strings.Repeat("x", 300), 100)
	if len(out) > 110 {
		t.Fatalf("preview not truncated: %d bytes", len(out))
	}
}

func TestPreviewKeepsRuneBoundaries(t *testing.T) {
	out := Preview(strings.Repeat("日本語", 50), 20)
	if !utf8.ValidString(out) {
		t.Fatalf("preview produced invalid UTF-8: %q", out)
	}
	if got := utf8.RuneCountInString(out); got != 21 { // 20 runes + marker
		t.Fatalf("expected 20 runes plus marker, got %d", got)
	}
}
