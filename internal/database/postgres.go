package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

type Manager struct {
	DB *sql.DB
}

type Config struct {
	ConnectionString string
	Host             string
	Port             string
	User             string
	Password         string
	DBName           string
}

func NewManager(cfg Config) (*Manager, error) {
	var connectionString string

	if cfg.ConnectionString != "" {
		connectionString = cfg.ConnectionString
	} else {
		connectionString = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName,
		)
	}

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to the database")

	manager := &Manager{DB: db}

	if err := manager.runMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return manager, nil
}

func (m *Manager) runMigrations() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS sources (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			url TEXT UNIQUE NOT NULL,
			kind TEXT NOT NULL,
			active BOOLEAN DEFAULT TRUE,
			last_fetched TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS opportunities (
			id SERIAL PRIMARY KEY,
			source_id INTEGER NOT NULL REFERENCES sources(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT '',
			region TEXT NOT NULL DEFAULT '',
			deadline TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			salary TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL DEFAULT '',
			online BOOLEAN DEFAULT TRUE,
			source TEXT NOT NULL DEFAULT '',
			approved BOOLEAN DEFAULT FALSE,
			fetched_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS user_preferences (
			user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			regions TEXT NOT NULL DEFAULT '',
			types TEXT NOT NULL DEFAULT '',
			keywords TEXT NOT NULL DEFAULT '',
			alert_channels TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS alert_queue (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			channel TEXT NOT NULL,
			source TEXT NOT NULL,
			source_opportunity_id INTEGER NOT NULL DEFAULT 0,
			title TEXT NOT NULL,
			url TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, channel, source, source_opportunity_id)
		)`,
		// The url column is NOT NULL DEFAULT '' so the per-source dedup
		// key (source_id, title, url-or-empty) never compares NULLs.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_opportunities_dedup
			ON opportunities (source_id, title, url)`,
		`CREATE INDEX IF NOT EXISTS idx_sources_active ON sources (active)`,
		`CREATE INDEX IF NOT EXISTS idx_opportunities_source_id ON opportunities (source_id)`,
		`CREATE INDEX IF NOT EXISTS idx_opportunities_fetched ON opportunities (fetched_at DESC, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_opportunities_approved ON opportunities (approved)`,
		`CREATE INDEX IF NOT EXISTS idx_alert_queue_user ON alert_queue (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_alert_queue_status ON alert_queue (status, channel)`,
	}

	for i, migration := range migrations {
		if _, err := m.DB.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func (m *Manager) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

func (m *Manager) GetDB() *sql.DB {
	return m.DB
}
