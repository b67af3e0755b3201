// Package parse converts raw source payloads into normalized
// opportunity records. Parsers never return errors: malformed input
// yields an empty result and records without a title are dropped.
package parse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"opportunityhub/internal/domain"
)

// descriptionLimit caps how much cleaned description text each parser
// carries through to the pipeline.
const descriptionLimit = 240

// Parse dispatches on the source's format kind. An unknown kind falls
// back to the bare-markup extractor.
func Parse(kind domain.SourceKind, data []byte, sourceName string) []domain.RawOpportunity {
	switch kind {
	case domain.KindJSON:
		return ParseJSON(data, sourceName)
	case domain.KindRSS:
		return ParseFeed(data, sourceName)
	default:
		return ParseMarkup(data, sourceName)
	}
}

// StripHTML removes markup and collapses whitespace.
func StripHTML(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseWhitespace(s)
	}
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

func cleanText(s string, limit int) string {
	text := StripHTML(s)
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return text
}
