package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	AppPort     string

	StalenessMinutes    int
	MaxPerSource        int
	PageSize            int
	AutoRefresh         bool
	AutoApprove         bool
	FetchTimeoutSeconds int
	RefreshCronSpec     string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string
}

// SourceSeed is one default source used to populate the registry when
// it is empty.
type SourceSeed struct {
	Name string
	URL  string
	Kind string
}

// DefaultSources returns the feeds seeded into an empty source registry.
func DefaultSources() []SourceSeed {
	return []SourceSeed{
		{Name: "RemoteOK Jobs", URL: "https://remoteok.com/api", Kind: "json"},
		{Name: "We Work Remotely", URL: "https://weworkremotely.com/categories/remote-programming-jobs.rss", Kind: "rss"},
		{Name: "Arbeitnow Job Board", URL: "https://www.arbeitnow.com/api/job-board-api", Kind: "json"},
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if _, exists := os.Stat(".env"); exists == nil {
			log.Println("Warning: .env file exists but couldn't be loaded:", err)
		}
	}

	cfg := &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		AppPort:             getEnv("APP_PORT", "8080"),
		StalenessMinutes:    getEnvInt("REFRESH_STALENESS_MINUTES", 720),
		MaxPerSource:        getEnvInt("MAX_PER_SOURCE", 200),
		PageSize:            getEnvInt("PAGE_SIZE", 24),
		AutoRefresh:         getEnvBool("AUTO_REFRESH", false),
		AutoApprove:         getEnvBool("AUTO_APPROVE", true),
		FetchTimeoutSeconds: getEnvInt("FETCH_TIMEOUT_SECONDS", 15),
		RefreshCronSpec:     getEnv("REFRESH_CRON_SPEC", ""),
		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnv("SMTP_PORT", "587"),
		SMTPUsername:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		EmailFrom:           getEnv("EMAIL_FROM", ""),
	}

	log.Printf("Configuration loaded:")
	log.Printf("  APP_PORT: %s", cfg.AppPort)
	log.Printf("  MAX_PER_SOURCE: %d", cfg.MaxPerSource)
	log.Printf("  AUTO_REFRESH: %v (staleness %d min)", cfg.AutoRefresh, cfg.StalenessMinutes)

	if cfg.DatabaseURL != "" {
		cfg.parseDBURL()
	} else {
		cfg.DBHost = getEnv("DB_HOST", "localhost")
		cfg.DBPort = getEnv("DB_PORT", "5432")
		cfg.DBUser = getEnv("DB_USER", "postgres")
		cfg.DBPassword = getEnv("DB_PASSWORD", "password")
		cfg.DBName = getEnv("DB_NAME", "opportunityhub")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: %s=%q is not an integer, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return value == "1" || strings.EqualFold(value, "true")
}

func (c *Config) parseDBURL() {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		log.Printf("Error parsing DATABASE_URL: %v", err)
		return
	}

	c.DBHost = u.Hostname()
	c.DBPort = u.Port()
	if c.DBPort == "" {
		c.DBPort = "5432"
	}

	c.DBUser = u.User.Username()
	if password, ok := u.User.Password(); ok {
		c.DBPassword = password
	}

	c.DBName = strings.TrimPrefix(u.Path, "/")
}
