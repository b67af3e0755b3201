package domain

import "time"

// SourceKind identifies the payload format a source serves.
type SourceKind string

const (
	KindJSON SourceKind = "json"
	KindRSS  SourceKind = "rss"
	KindHTML SourceKind = "html"
)

// Source is a configured external feed of opportunities.
type Source struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	Kind        SourceKind `json:"kind"`
	Active      bool       `json:"active"`
	LastFetched *time.Time `json:"last_fetched"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (s *Source) Validate() error {
	if s.Name == "" {
		return ErrInvalidSourceName
	}
	if s.URL == "" {
		return ErrInvalidSourceURL
	}
	switch s.Kind {
	case KindJSON, KindRSS, KindHTML:
		return nil
	}
	return ErrInvalidSourceKind
}
