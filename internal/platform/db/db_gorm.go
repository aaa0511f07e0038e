// Package db opens the relational store and owns schema migration.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "realty_backend/internal/feature/auth/adapters"
	authentity "realty_backend/internal/feature/auth/domain/entity"
	intakeentity "realty_backend/internal/feature/intake/domain/entity"
	listingsentity "realty_backend/internal/feature/listings/domain/entity"
)

// Config holds the database connection settings.
// URL selects Postgres; when empty, Path selects a local SQLite file.
type Config struct {
	URL  string
	Path string
}

// LoadConfigFromEnv reads the database configuration from the environment.
// DATABASE_URL takes precedence; DB_PATH defaults to ./site.db.
func LoadConfigFromEnv() Config {
	cfg := Config{
		URL:  os.Getenv("DATABASE_URL"),
		Path: os.Getenv("DB_PATH"),
	}
	if cfg.Path == "" {
		cfg.Path = "./site.db"
	}
	return cfg
}

// Opener opens a gorm connection for the given config.
// Injectable so retry behavior can be tested without a real database.
type Opener func(cfg Config) (*gorm.DB, error)

// DefaultOpener opens Postgres when a URL is configured, SQLite otherwise.
func DefaultOpener(cfg Config) (*gorm.DB, error) {
	if cfg.URL != "" {
		return gorm.Open(postgres.Open(cfg.URL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
}

// ConnectWithRetry keeps trying to open the database until it succeeds or the
// timeout elapses. Retrying covers the window where a hosted database is still
// coming up when the server starts.
func ConnectWithRetry(cfg Config, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(cfg)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", timeout, err)
		}
		log.Printf("database connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// AutoMigrate creates or updates the full schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&authadapters.SessionModel{},
		&listingsentity.Property{},
		&listingsentity.Image{},
		&intakeentity.Application{},
		&intakeentity.Inquiry{},
	)
}
