package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"opportunityhub/internal/domain"
)

// listKeys are probed in order when the top-level JSON value is an
// object; the first key holding a list wins.
var listKeys = []string{"items", "data", "results", "jobs", "opportunities"}

// ParseJSON extracts opportunities from a structured-list document.
// Field values are resolved through ordered key aliases because every
// job board names its columns differently.
func ParseJSON(data []byte, sourceName string) []domain.RawOpportunity {
	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil
	}

	var items []domain.RawOpportunity
	for _, record := range normalizeRecords(decoded) {
		entry, ok := record.(map[string]interface{})
		if !ok {
			continue
		}

		title := pickFirst(entry, "title", "name", "position", "role")
		if title == "" {
			continue
		}

		items = append(items, domain.RawOpportunity{
			Title:       title,
			Company:     firstNonEmpty(pickFirst(entry, "company", "company_name", "organization", "org"), sourceName),
			Type:        typeValue(entry),
			Region:      firstNonEmpty(pickFirst(entry, "region", "location", "country"), "Unknown"),
			Deadline:    pickFirst(entry, "deadline", "close_date", "expires_at", "expiry_date"),
			URL:         pickFirst(entry, "url", "link", "redirect_url", "apply_url"),
			Description: cleanText(pickFirst(entry, "description", "summary", "snippet", "details"), descriptionLimit),
			Salary:      pickFirst(entry, "salary", "compensation", "salary_range"),
			Duration:    pickFirst(entry, "duration", "tenure", "period"),
			Online:      onlineValue(entry),
			Source:      sourceName,
		})
	}

	return items
}

// normalizeRecords finds the record list in a decoded document: probe
// the candidate keys of an object, or use a top-level list directly.
func normalizeRecords(decoded interface{}) []interface{} {
	if obj, ok := decoded.(map[string]interface{}); ok {
		for _, key := range listKeys {
			if list, ok := obj[key].([]interface{}); ok {
				return list
			}
		}
		return nil
	}
	if list, ok := decoded.([]interface{}); ok {
		return list
	}
	return nil
}

// pickFirst returns the first non-empty string (or stringified number)
// among the candidate keys.
func pickFirst(record map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := record[key].(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case float64:
			return formatNumber(v)
		}
	}
	return ""
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%v", v)
}

// typeValue resolves the type field, which some boards publish as a
// list of tags rather than a single string.
func typeValue(record map[string]interface{}) string {
	for _, key := range []string{"type", "category", "job_type", "job_types"} {
		switch v := record[key].(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case []interface{}:
			var parts []string
			for _, item := range v {
				if s := strings.TrimSpace(fmt.Sprintf("%v", item)); s != "" && item != nil {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, ", ")
			}
		}
	}
	return "Opportunity"
}

func onlineValue(record map[string]interface{}) bool {
	v, present := record["online"]
	if !present {
		return true
	}
	b, ok := v.(bool)
	return ok && b
}

func firstNonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
