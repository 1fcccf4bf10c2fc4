// Package normalize reduces raw HTML to clean, line-oriented text suitable
// for chunking and LLM extraction.
package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/tabscrape/tabscrape/internal/logger"
)

// ExtractBody returns the serialized <body> subtree of the document, or the
// empty string when the document has no body content. Malformed markup is
// tolerated; the parser repairs what it can.
func ExtractBody(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		logger.Debug("body extraction failed", "error", err)
		return ""
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}

	out, err := goquery.OuterHtml(body)
	if err != nil {
		logger.Debug("body serialization failed", "error", err)
		return ""
	}
	return out
}

// Clean strips a body fragment down to readable text: script and style
// subtrees are removed entirely (their content must never surface, even when
// the source markup is unclosed), element boundaries become line breaks, and
// the surviving lines are trimmed, de-blanked, and rejoined with single
// newlines in document order.
//
// Clean is idempotent: running it over its own output changes nothing.
func Clean(bodyHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyHTML))
	if err != nil {
		logger.Debug("clean parse failed", "error", err)
		return ""
	}

	doc.Find("script, style").Remove()

	var b strings.Builder
	for _, n := range doc.Selection.Nodes {
		collectText(&b, n)
	}

	lines := strings.Split(b.String(), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}

// collectText appends every text node under n in document order, one line
// per node.
func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte('\n')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
