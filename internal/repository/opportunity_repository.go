package repository

import (
	"database/sql"
	"fmt"

	"opportunityhub/internal/domain"
)

type OpportunityRepository interface {
	// Insert persists the opportunity unless one with the same
	// (source_id, title, url) already exists. Reports whether a row
	// was actually written.
	Insert(opp *domain.Opportunity) (bool, error)
	// TrimToCap deletes all rows for the source except the cap most
	// recent by (fetched_at desc, id desc) and returns the delete count.
	TrimToCap(sourceID, cap int) (int, error)
	CountAll() (int, error)
	CountBySource(sourceID int) (int, error)
	GetRecent(limit int, includeUnapproved bool) ([]domain.Opportunity, error)
}

type opportunityRepository struct {
	db *sql.DB
}

func NewOpportunityRepository(db *sql.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Insert(opp *domain.Opportunity) (bool, error) {
	if err := opp.Validate(); err != nil {
		return false, err
	}

	result, err := r.db.Exec(`
		INSERT INTO opportunities
			(source_id, title, company, type, region, deadline, url, description, salary, duration, online, source, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (source_id, title, url) DO NOTHING`,
		opp.SourceID, opp.Title, opp.Company, opp.Type, opp.Region, opp.Deadline,
		opp.URL, opp.Description, opp.Salary, opp.Duration, opp.Online, opp.Source, opp.Approved)
	if err != nil {
		return false, fmt.Errorf("failed to insert opportunity: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return n > 0, nil
}

func (r *opportunityRepository) TrimToCap(sourceID, cap int) (int, error) {
	result, err := r.db.Exec(`
		DELETE FROM opportunities
		WHERE source_id = $1
		  AND id NOT IN (
			SELECT id FROM opportunities
			WHERE source_id = $1
			ORDER BY fetched_at DESC, id DESC
			LIMIT $2
		  )`, sourceID, cap)
	if err != nil {
		return 0, fmt.Errorf("failed to trim opportunities: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(n), nil
}

func (r *opportunityRepository) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM opportunities").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count opportunities: %w", err)
	}
	return count, nil
}

func (r *opportunityRepository) CountBySource(sourceID int) (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM opportunities WHERE source_id = $1", sourceID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count opportunities for source: %w", err)
	}
	return count, nil
}

func (r *opportunityRepository) GetRecent(limit int, includeUnapproved bool) ([]domain.Opportunity, error) {
	query := `
		SELECT id, source_id, title, company, type, region, deadline, url,
		       description, salary, duration, online, source, approved, fetched_at
		FROM opportunities`
	if !includeUnapproved {
		query += " WHERE approved = TRUE"
	}
	query += " ORDER BY fetched_at DESC, id DESC"

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		query += " LIMIT $1"
		rows, err = r.db.Query(query, limit)
	} else {
		rows, err = r.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunities: %w", err)
	}
	defer rows.Close()

	var opps []domain.Opportunity
	for rows.Next() {
		var opp domain.Opportunity
		if err := rows.Scan(
			&opp.ID, &opp.SourceID, &opp.Title, &opp.Company, &opp.Type, &opp.Region,
			&opp.Deadline, &opp.URL, &opp.Description, &opp.Salary, &opp.Duration,
			&opp.Online, &opp.Source, &opp.Approved, &opp.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opps = append(opps, opp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating opportunities: %w", err)
	}

	return opps, nil
}
