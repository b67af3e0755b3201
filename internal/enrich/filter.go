package enrich

import (
	"strings"

	"opportunityhub/internal/domain"
)

// Filter narrows an enriched list by free-text query (title or
// company), region, and type. Empty arguments match everything.
func Filter(opps []domain.EnrichedOpportunity, query, region, oppType string) []domain.EnrichedOpportunity {
	query = strings.ToLower(strings.TrimSpace(query))
	region = strings.ToLower(strings.TrimSpace(region))
	oppType = strings.ToLower(strings.TrimSpace(oppType))

	if query == "" && region == "" && oppType == "" {
		return opps
	}

	var filtered []domain.EnrichedOpportunity
	for _, opp := range opps {
		if query != "" &&
			!strings.Contains(strings.ToLower(opp.Title), query) &&
			!strings.Contains(strings.ToLower(opp.Company), query) {
			continue
		}
		if region != "" && !strings.Contains(strings.ToLower(opp.Region), region) {
			continue
		}
		if oppType != "" && !strings.Contains(strings.ToLower(opp.Type), oppType) {
			continue
		}
		filtered = append(filtered, opp)
	}

	return filtered
}
