package repository

import (
	"database/sql"
	"fmt"
	"time"

	"opportunityhub/internal/domain"
)

type SourceRepository interface {
	GetActive() ([]domain.Source, error)
	GetAll() ([]domain.Source, error)
	HasActive() (bool, error)
	Seed(sources []domain.Source) (int, error)
	UpdateLastFetched(sourceID int) error
	LatestFetch() (*time.Time, error)
}

type sourceRepository struct {
	db *sql.DB
}

func NewSourceRepository(db *sql.DB) SourceRepository {
	return &sourceRepository{db: db}
}

func (r *sourceRepository) GetActive() ([]domain.Source, error) {
	return r.query("SELECT id, name, url, kind, active, last_fetched, created_at FROM sources WHERE active = TRUE ORDER BY id")
}

func (r *sourceRepository) GetAll() ([]domain.Source, error) {
	return r.query("SELECT id, name, url, kind, active, last_fetched, created_at FROM sources ORDER BY id")
}

func (r *sourceRepository) query(sqlText string) ([]domain.Source, error) {
	rows, err := r.db.Query(sqlText)
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.Source
	for rows.Next() {
		var src domain.Source
		var lastFetched sql.NullTime
		if err := rows.Scan(&src.ID, &src.Name, &src.URL, &src.Kind, &src.Active, &lastFetched, &src.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		if lastFetched.Valid {
			t := lastFetched.Time
			src.LastFetched = &t
		}
		sources = append(sources, src)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sources: %w", err)
	}

	return sources, nil
}

func (r *sourceRepository) HasActive() (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM sources WHERE active = TRUE").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count active sources: %w", err)
	}
	return count > 0, nil
}

// Seed inserts any sources whose URL is not yet registered. Existing
// rows are left untouched.
func (r *sourceRepository) Seed(sources []domain.Source) (int, error) {
	added := 0
	for _, src := range sources {
		if err := src.Validate(); err != nil {
			return added, err
		}
		result, err := r.db.Exec(`
			INSERT INTO sources (name, url, kind, active)
			VALUES ($1, $2, $3, TRUE)
			ON CONFLICT (url) DO NOTHING`,
			src.Name, src.URL, src.Kind)
		if err != nil {
			return added, fmt.Errorf("failed to seed source %s: %w", src.Name, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return added, fmt.Errorf("failed to get rows affected: %w", err)
		}
		added += int(n)
	}
	return added, nil
}

func (r *sourceRepository) UpdateLastFetched(sourceID int) error {
	result, err := r.db.Exec("UPDATE sources SET last_fetched = CURRENT_TIMESTAMP WHERE id = $1", sourceID)
	if err != nil {
		return fmt.Errorf("failed to update last_fetched: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrSourceNotFound
	}

	return nil
}

// LatestFetch returns the most recent last_fetched timestamp across
// active sources, or nil when no active source has been fetched yet.
func (r *sourceRepository) LatestFetch() (*time.Time, error) {
	var latest sql.NullTime
	err := r.db.QueryRow("SELECT MAX(last_fetched) FROM sources WHERE active = TRUE").Scan(&latest)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest fetch time: %w", err)
	}
	if !latest.Valid {
		return nil, nil
	}
	t := latest.Time
	return &t, nil
}
