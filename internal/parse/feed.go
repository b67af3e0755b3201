package parse

import (
	"bytes"
	"strings"

	"github.com/mmcdole/gofeed"

	"opportunityhub/internal/domain"
)

// ParseFeed extracts opportunities from a syndication feed. gofeed
// handles both RSS channel/item trees and Atom entries (preferring the
// rel=alternate link), which covers every feed the default sources
// publish. Unparseable XML yields an empty result.
func ParseFeed(data []byte, sourceName string) []domain.RawOpportunity {
	parser := gofeed.NewParser()
	feed, err := parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	var items []domain.RawOpportunity
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}

		description := item.Description
		if description == "" {
			description = item.Content
		}

		items = append(items, domain.RawOpportunity{
			Title:       title,
			Company:     sourceName,
			Type:        "Opportunity",
			Region:      "Unknown",
			URL:         strings.TrimSpace(item.Link),
			Description: cleanText(description, descriptionLimit),
			Online:      true,
			Source:      sourceName,
		})
	}

	return items
}
