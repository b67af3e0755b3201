package parse

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"opportunityhub/internal/domain"
)

// markupMaxItems caps the bare-markup extractor; pages with hundreds of
// anchors are navigation, not listings.
const markupMaxItems = 50

// ParseMarkup is the last-resort extractor for sources with no
// structured feed: every anchor with an href and non-empty text becomes
// an opportunity titled by the anchor text.
func ParseMarkup(data []byte, sourceName string) []domain.RawOpportunity {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	var items []domain.RawOpportunity
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := collapseWhitespace(sel.Text())
		if title == "" {
			return true
		}
		href, _ := sel.Attr("href")

		items = append(items, domain.RawOpportunity{
			Title:   title,
			Company: sourceName,
			Type:    "Opportunity",
			Region:  "Unknown",
			URL:     strings.TrimSpace(href),
			Online:  true,
			Source:  sourceName,
		})
		return len(items) < markupMaxItems
	})

	return items
}
