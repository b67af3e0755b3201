package repository

import (
	"database/sql"
	"fmt"

	"opportunityhub/internal/domain"
)

type PreferencesRepository interface {
	GetByUserID(userID int) (*domain.UserPreferences, error)
	Upsert(prefs *domain.UserPreferences) error
}

type preferencesRepository struct {
	db *sql.DB
}

func NewPreferencesRepository(db *sql.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) GetByUserID(userID int) (*domain.UserPreferences, error) {
	prefs := &domain.UserPreferences{}

	err := r.db.QueryRow(`
		SELECT user_id, regions, types, keywords, alert_channels, updated_at
		FROM user_preferences WHERE user_id = $1`, userID,
	).Scan(&prefs.UserID, &prefs.Regions, &prefs.Types, &prefs.Keywords, &prefs.AlertChannels, &prefs.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	return prefs, nil
}

func (r *preferencesRepository) Upsert(prefs *domain.UserPreferences) error {
	_, err := r.db.Exec(`
		INSERT INTO user_preferences (user_id, regions, types, keywords, alert_channels, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			regions = EXCLUDED.regions,
			types = EXCLUDED.types,
			keywords = EXCLUDED.keywords,
			alert_channels = EXCLUDED.alert_channels,
			updated_at = CURRENT_TIMESTAMP`,
		prefs.UserID, prefs.Regions, prefs.Types, prefs.Keywords, prefs.AlertChannels)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}

	return nil
}
