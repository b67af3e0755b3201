// Package enrich derives per-request decorations for opportunities:
// cross-source dedup, a category tag, a short summary, and a relevance
// score against a user's preference profile.
package enrich

import (
	"strings"
	"unicode"

	"opportunityhub/internal/domain"
)

const summaryLimit = 160

// categoryRules are evaluated in order; the first matching keyword set
// wins, so the categories are mutually exclusive.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{"Internship", []string{"intern", "internship", "summer intern"}},
	{"Scholarship/Fellowship", []string{"scholarship", "grant", "fellowship"}},
	{"Hackathon", []string{"hackathon", "competition"}},
	{"Training", []string{"bootcamp", "training", "academy"}},
}

// Enrich decorates the opportunities and drops cross-source duplicates.
// The dedup key is normalized title plus company, so the same listing
// syndicated by two boards survives only once; first occurrence wins.
func Enrich(opps []domain.Opportunity, prefs *domain.UserPreferences) []domain.EnrichedOpportunity {
	seen := make(map[string]struct{}, len(opps))
	enriched := make([]domain.EnrichedOpportunity, 0, len(opps))

	for _, opp := range opps {
		key := NormalizeText(opp.Title) + "|" + NormalizeText(opp.Company)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		enriched = append(enriched, domain.EnrichedOpportunity{
			Opportunity: opp,
			Category:    Categorize(opp.Title, opp.Description),
			Summary:     Summarize(opp.Description),
			Relevance:   Relevance(&opp, prefs),
		})
	}

	return enriched
}

// NormalizeText lowercases and strips everything but letters, digits,
// and spaces.
func NormalizeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Categorize tags an opportunity from its title and description.
func Categorize(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.category
			}
		}
	}
	return "Opportunity"
}

// Summarize collapses whitespace and truncates to 160 characters,
// marking the cut with an ellipsis.
func Summarize(description string) string {
	clean := strings.Join(strings.Fields(description), " ")
	runes := []rune(clean)
	if len(runes) > summaryLimit {
		return string(runes[:summaryLimit]) + "…"
	}
	return clean
}

// Relevance scores an opportunity against a preference profile:
// +2 per keyword found in title or company, +1 per matching region,
// +1 per matching type. No preferences means score 0.
func Relevance(opp *domain.Opportunity, prefs *domain.UserPreferences) int {
	if prefs == nil {
		return 0
	}

	title := strings.ToLower(opp.Title)
	company := strings.ToLower(opp.Company)
	region := strings.ToLower(opp.Region)
	oppType := strings.ToLower(opp.Type)

	score := 0
	for _, keyword := range SplitList(prefs.Keywords) {
		if strings.Contains(title, keyword) || strings.Contains(company, keyword) {
			score += 2
		}
	}
	for _, r := range SplitList(prefs.Regions) {
		if strings.Contains(region, r) {
			score++
		}
	}
	for _, t := range SplitList(prefs.Types) {
		if strings.Contains(oppType, t) {
			score++
		}
	}

	return score
}

// SplitList breaks a comma-separated preference field into trimmed
// lowercase tokens, dropping empties.
func SplitList(s string) []string {
	var tokens []string
	for _, part := range strings.Split(s, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
