package storefront

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlToText strips markup from an upstream HTML fragment and collapses
// whitespace. Used for article snippets where the storefront only supplies
// rendered body HTML. On parse failure the raw input is returned; the
// snippet is advisory text, not a contract.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// truncate cuts s to at most max bytes, appending an ellipsis when anything
// was dropped. Cuts on a rune boundary so multi-byte text stays valid.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max - 3
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
