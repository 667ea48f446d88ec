package storefront

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestHTMLToText_StripsMarkup(t *testing.T) {
	t.Parallel()
	got := htmlToText("<p>Argan oil is <strong>cold-pressed</strong>.</p>\n<p>Apply sparingly.</p>")
	want := "Argan oil is cold-pressed. Apply sparingly."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHTMLToText_PlainTextUnchanged(t *testing.T) {
	t.Parallel()
	if got := htmlToText("just words"); got != "just words" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays", "abc", 10, "abc"},
		{"exact stays", "abcde", 5, "abcde"},
		{"long cut with ellipsis", "abcdefghij", 8, "abcde..."},
		{"empty", "", 5, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.max); got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	t.Parallel()
	// Repeated multi-byte text must not be split mid-rune at the cut point.
	s := strings.Repeat("héllo wörld ", 40)
	got := truncate(s, 300)
	if len(got) > 300 {
		t.Errorf("expected ≤300 bytes, got %d", len(got))
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncation produced invalid UTF-8: %q", got)
	}
}
