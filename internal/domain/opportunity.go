package domain

import "time"

// RawOpportunity is a normalized record produced by a format parser.
// It is ephemeral: the ingestion pipeline converts it into an
// Opportunity before anything is persisted.
type RawOpportunity struct {
	Title       string
	Company     string
	Type        string
	Region      string
	Deadline    string
	URL         string
	Description string
	Salary      string
	Duration    string
	Online      bool
	Source      string
}

// Opportunity is a persisted listing owned by one source.
// The tuple (SourceID, Title, URL) is unique; a resighting from the
// same source is skipped rather than updated.
type Opportunity struct {
	ID          int       `json:"id"`
	SourceID    int       `json:"source_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Type        string    `json:"type"`
	Region      string    `json:"region"`
	Deadline    string    `json:"deadline"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Salary      string    `json:"salary"`
	Duration    string    `json:"duration"`
	Online      bool      `json:"online"`
	Source      string    `json:"source"`
	Approved    bool      `json:"approved"`
	FetchedAt   time.Time `json:"fetched_at"`
}

func (o *Opportunity) Validate() error {
	if o.Title == "" {
		return ErrInvalidOpportunityTitle
	}
	if o.SourceID <= 0 {
		return ErrInvalidSourceID
	}
	return nil
}

// EnrichedOpportunity is an Opportunity decorated with a derived
// category, a truncated summary, and a preference relevance score.
// Computed per request, never persisted.
type EnrichedOpportunity struct {
	Opportunity
	Category  string `json:"category"`
	Summary   string `json:"summary"`
	Relevance int    `json:"relevance"`
}
