// Package bootstrap runs the one-time schema creation and seed-data insertion
// executed at process start, before any request is served.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authentity "realty_backend/internal/feature/auth/domain/entity"
	listingsentity "realty_backend/internal/feature/listings/domain/entity"
	"realty_backend/internal/platform/db"
)

// SeedConfig holds the first-run admin credentials.
// Explicit struct so tests can inject values instead of mutating the environment.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// LoadSeedConfigFromEnv reads the seed configuration from ADMIN_EMAIL and
// ADMIN_PASSWORD, falling back to the development defaults.
func LoadSeedConfigFromEnv() SeedConfig {
	cfg := SeedConfig{
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     "Admin",
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@example.com"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "changeme123"
	}
	return cfg
}

// Run migrates the schema, seeds the admin account and sample listing when
// their tables are empty, and ensures the upload root exists. Idempotent:
// running it against an already-seeded store changes nothing.
func Run(ctx context.Context, gdb *gorm.DB, cfg SeedConfig, uploadRoot string) error {
	if err := db.AutoMigrate(gdb); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := seedAdmin(ctx, gdb, cfg); err != nil {
		return err
	}
	if err := seedSampleProperty(ctx, gdb); err != nil {
		return err
	}
	if err := os.MkdirAll(uploadRoot, 0o755); err != nil {
		return fmt.Errorf("failed to create upload root: %w", err)
	}
	return nil
}

// seedAdmin creates the single admin account when the users table is empty.
func seedAdmin(ctx context.Context, gdb *gorm.DB, cfg SeedConfig) error {
	var count int64
	if err := gdb.WithContext(ctx).Model(&authentity.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	user := &authentity.User{
		Email:        cfg.AdminEmail,
		Name:         cfg.AdminName,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := gdb.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	slog.Info("seeded admin user", "email", cfg.AdminEmail)
	return nil
}

// seedSampleProperty inserts one example listing when the properties table is
// empty, so a fresh install has something to show.
func seedSampleProperty(ctx context.Context, gdb *gorm.DB) error {
	var count int64
	if err := gdb.WithContext(ctx).Model(&listingsentity.Property{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count properties: %w", err)
	}
	if count > 0 {
		return nil
	}

	sample := &listingsentity.Property{
		Title:       "Modern Downtown Loft",
		Address:     "123 Market St, Unit 504",
		City:        "Los Angeles",
		State:       "CA",
		Price:       2950,
		ForRent:     true,
		Beds:        1,
		Baths:       1.0,
		Sqft:        740,
		Description: "Sunny loft with floor-to-ceiling windows, polished concrete floors, and in-unit laundry.",
	}
	if err := gdb.WithContext(ctx).Create(sample).Error; err != nil {
		return fmt.Errorf("failed to seed sample property: %w", err)
	}
	slog.Info("seeded sample property", "title", sample.Title)
	return nil
}
