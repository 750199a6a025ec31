package mapper

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractStatement(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "state label wins",
			input: "State: We deployed a new API. Map: everything else",
			want:  "We deployed a new API.",
		},
		{
			name:  "state label to end of text",
			input: "Notes follow.\nstate: the service is live",
			want:  "the service is live",
		},
		{
			name:  "present label",
			input: "Present: apples and pears. Absent: bananas.",
			want:  "apples and pears.",
		},
		{
			name:  "first sentence",
			input: "We shipped the release! Then we celebrated.",
			want:  "We shipped the release",
		},
		{
			name:  "question mark terminates",
			input: "Is this done? Possibly.",
			want:  "Is this done",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractStatement(tc.input)
			if got != tc.want {
				t.Fatalf("ExtractStatement(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestExtractStatementFallback(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if got := ExtractStatement(""); got != "..." {
			t.Fatalf("expected bare ellipsis for empty input, got %q", got)
		}
	})

	t.Run("long unpunctuated input truncates to 200 characters", func(t *testing.T) {
		input := strings.Repeat("a", 500)
		got := ExtractStatement(input)
		if got != strings.Repeat("a", 200)+"..." {
			t.Fatalf("unexpected fallback: %d bytes, suffix %q", len(got), got[len(got)-5:])
		}
	})

	t.Run("multibyte input truncates on rune boundaries", func(t *testing.T) {
		got := ExtractStatement(strings.Repeat("日", 300))
		if !utf8.ValidString(got) {
			t.Fatalf("fallback produced invalid UTF-8: %q", got[len(got)-10:])
		}
		if got != strings.Repeat("日", 200)+"..." {
			t.Fatalf("expected 200 runes plus marker, got %d runes", utf8.RuneCountInString(got))
		}
	})

	t.Run("short unpunctuated input kept whole", func(t *testing.T) {
		if got := ExtractStatement("no punctuation here"); got != "no punctuation here..." {
			t.Fatalf("got %q", got)
		}
	})
}
