package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSourceName = errors.New("invalid source name")
	ErrInvalidSourceURL  = errors.New("invalid source URL")
	ErrInvalidSourceKind = errors.New("invalid source kind")
	ErrInvalidSourceID   = errors.New("invalid source ID")
	ErrSourceNotFound    = errors.New("source not found")

	ErrInvalidOpportunityTitle = errors.New("invalid opportunity title")

	ErrUserNotFound        = errors.New("user not found")
	ErrPreferencesNotFound = errors.New("preferences not found")

	ErrInvalidEmail = errors.New("invalid email address")
)

// FetchErrorKind distinguishes a timed-out fetch from other network
// failures.
type FetchErrorKind string

const (
	FetchTimeout FetchErrorKind = "timeout"
	FetchNetwork FetchErrorKind = "network"
)

// FetchError reports a failed retrieval of a source payload. The
// ingestion pipeline treats it as "zero items this cycle" for the
// affected source, never as fatal.
type FetchError struct {
	URL  string
	Kind FetchErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
