package domain

import "time"

// Alert queue statuses. The core only creates pending rows; the
// delivery side moves them to sent or failed.
const (
	AlertStatusPending = "pending"
	AlertStatusSent    = "sent"
	AlertStatusFailed  = "failed"
)

// AlertQueueEntry is one unit of alert work. Unique on
// (UserID, Channel, Source, SourceOpportunityID) so repeated
// generation runs are no-ops.
type AlertQueueEntry struct {
	ID                  int       `json:"id"`
	UserID              int       `json:"user_id"`
	Channel             string    `json:"channel"`
	Source              string    `json:"source"`
	SourceOpportunityID int       `json:"source_opportunity_id"`
	Title               string    `json:"title"`
	URL                 string    `json:"url"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`

	// RecipientEmail is populated by queries that join the users table.
	RecipientEmail string `json:"-"`
}
