package service

import (
	"errors"
	"fmt"
	"log"

	"opportunityhub/internal/domain"
	"opportunityhub/internal/enrich"
	"opportunityhub/internal/repository"
	"opportunityhub/pkg/email"
)

const (
	defaultAlertLimit  = 20
	deliveryBatchSize  = 50
	relevanceThreshold = 2
)

// OpportunityLister provides the live enriched list the alert
// generator walks; OpportunityService implements it.
type OpportunityLister interface {
	GetLive(userID, limit int, includeUnapproved bool) ([]domain.EnrichedOpportunity, error)
}

// AlertService turns relevant opportunities into idempotent alert
// queue entries and drains pending email entries through the SMTP
// sender.
type AlertService struct {
	prefs         repository.PreferencesRepository
	alerts        repository.AlertRepository
	opportunities OpportunityLister
	sender        email.Sender
}

func NewAlertService(
	prefs repository.PreferencesRepository,
	alerts repository.AlertRepository,
	opportunities OpportunityLister,
	sender email.Sender,
) *AlertService {
	return &AlertService{
		prefs:         prefs,
		alerts:        alerts,
		opportunities: opportunities,
		sender:        sender,
	}
}

// Generate enqueues alerts for a user and returns how many
// opportunities produced an alert attempt. With stored preferences,
// opportunities scoring below the threshold are skipped; without any,
// everything qualifies. Re-running is a no-op thanks to the queue's
// uniqueness constraint.
func (s *AlertService) Generate(userID, limit int) (int, error) {
	if limit <= 0 {
		limit = defaultAlertLimit
	}

	prefs, err := s.prefs.GetByUserID(userID)
	if err != nil && !errors.Is(err, domain.ErrPreferencesNotFound) {
		return 0, fmt.Errorf("failed to load preferences: %w", err)
	}

	channels := []string{"email"}
	if prefs != nil {
		if configured := enrich.SplitList(prefs.AlertChannels); len(configured) > 0 {
			channels = configured
		}
	}

	opps, err := s.opportunities.GetLive(userID, 0, false)
	if err != nil {
		return 0, err
	}

	generated := 0
	for i := range opps {
		if generated >= limit {
			break
		}
		opp := &opps[i]
		if prefs != nil && enrich.Relevance(&opp.Opportunity, prefs) < relevanceThreshold {
			continue
		}

		for _, channel := range channels {
			entry := &domain.AlertQueueEntry{
				UserID:              userID,
				Channel:             channel,
				Source:              fallbackSource(opp.Source),
				SourceOpportunityID: opp.ID,
				Title:               opp.Title,
				URL:                 opp.URL,
			}
			if _, err := s.alerts.Enqueue(entry); err != nil {
				return generated, fmt.Errorf("failed to enqueue alert: %w", err)
			}
		}
		generated++
	}

	return generated, nil
}

// DeliverPending sends up to one batch of pending email alerts and
// returns the number delivered. Entries that fail to send are marked
// failed and left for operator attention; delivery never blocks alert
// generation.
func (s *AlertService) DeliverPending() (int, error) {
	if s.sender == nil {
		log.Println("Alert delivery skipped: no email sender configured")
		return 0, nil
	}

	entries, err := s.alerts.PendingByChannel("email", deliveryBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending alerts: %w", err)
	}

	sent := 0
	for _, entry := range entries {
		subject := fmt.Sprintf("New Opportunity: %s", entry.Title)
		body := fmt.Sprintf("%s\n%s\n\nThis matches your preferences.", entry.Title, entry.URL)

		status := domain.AlertStatusSent
		if err := s.sender.Send(entry.RecipientEmail, subject, body); err != nil {
			log.Printf("Error sending alert %d to %s: %v", entry.ID, entry.RecipientEmail, err)
			status = domain.AlertStatusFailed
		} else {
			sent++
		}

		if err := s.alerts.UpdateStatus(entry.ID, status); err != nil {
			return sent, err
		}
	}

	return sent, nil
}

func fallbackSource(source string) string {
	if source == "" {
		return "external"
	}
	return source
}
