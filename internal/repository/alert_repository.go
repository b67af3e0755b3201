package repository

import (
	"database/sql"
	"fmt"

	"opportunityhub/internal/domain"
)

type AlertRepository interface {
	// Enqueue inserts a pending alert unless an entry with the same
	// (user_id, channel, source, source_opportunity_id) already
	// exists. Reports whether a row was actually written.
	Enqueue(entry *domain.AlertQueueEntry) (bool, error)
	// PendingByChannel returns up to limit pending entries for the
	// channel, oldest first, with the recipient email joined in.
	PendingByChannel(channel string, limit int) ([]domain.AlertQueueEntry, error)
	UpdateStatus(id int, status string) error
}

type alertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Enqueue(entry *domain.AlertQueueEntry) (bool, error) {
	result, err := r.db.Exec(`
		INSERT INTO alert_queue (user_id, channel, source, source_opportunity_id, title, url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, channel, source, source_opportunity_id) DO NOTHING`,
		entry.UserID, entry.Channel, entry.Source, entry.SourceOpportunityID, entry.Title, entry.URL)
	if err != nil {
		return false, fmt.Errorf("failed to enqueue alert: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return n > 0, nil
}

func (r *alertRepository) PendingByChannel(channel string, limit int) ([]domain.AlertQueueEntry, error) {
	rows, err := r.db.Query(`
		SELECT a.id, a.user_id, a.channel, a.source, a.source_opportunity_id,
		       a.title, a.url, a.status, a.created_at, u.email
		FROM alert_queue a
		JOIN users u ON u.id = a.user_id
		WHERE a.status = $1 AND a.channel = $2 AND u.email <> ''
		ORDER BY a.created_at ASC
		LIMIT $3`, domain.AlertStatusPending, channel, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending alerts: %w", err)
	}
	defer rows.Close()

	var entries []domain.AlertQueueEntry
	for rows.Next() {
		var entry domain.AlertQueueEntry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Channel, &entry.Source, &entry.SourceOpportunityID,
			&entry.Title, &entry.URL, &entry.Status, &entry.CreatedAt, &entry.RecipientEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alerts: %w", err)
	}

	return entries, nil
}

func (r *alertRepository) UpdateStatus(id int, status string) error {
	_, err := r.db.Exec("UPDATE alert_queue SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}
	return nil
}
