// Package db opens the GORM connection used by the user store.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"instagram_backend/internal/feature/user/domain/entity"
)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Config holds the PostgreSQL connection parameters.
type Config struct {
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string
	SSLMode      string
}

// Opener opens a GORM connection for a DSN. It is swapped out in tests.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns a PostgreSQL key/value DSN.
// When InstanceName is set the Cloud SQL unix socket is used instead of Host/Port.
func BuildDSN(cfg Config) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name, sslMode)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslMode)
}

// OpenPostgres opens a PostgreSQL connection with driver error translation enabled,
// so unique violations surface as gorm.ErrDuplicatedKey.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// Migrate creates or updates the users table, including the unique indexes on email and username.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Open connects to PostgreSQL, retrying until timeout, and optionally runs migrations.
func Open(cfg Config, timeout time.Duration, runMigrations bool) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), timeout, OpenPostgres)
	if err != nil {
		return nil, err
	}
	if runMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		slog.Info("database migrations applied")
	}
	return db, nil
}
