package domain

import "time"

// UserPreferences holds a user's interest profile. The list fields are
// comma-separated tokens; the core only reads them.
type UserPreferences struct {
	UserID        int       `json:"user_id"`
	Regions       string    `json:"regions"`
	Types         string    `json:"types"`
	Keywords      string    `json:"keywords"`
	AlertChannels string    `json:"alert_channels"`
	UpdatedAt     time.Time `json:"updated_at"`
}
