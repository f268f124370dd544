package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecompass/coursecompass/internal/pkg/logger"
)

// migration is a versioned schema change applied exactly once.
type migration struct {
	version string
	sql     string
}

// orderedMigrations is the full schema history, applied in declaration order.
var orderedMigrations = []migration{
	{
		version: "001_create_courses",
		sql: `
CREATE TABLE IF NOT EXISTS courses (
	course_id       VARCHAR(64) PRIMARY KEY,
	course_name     VARCHAR(255) NOT NULL,
	department      VARCHAR(128) NOT NULL,
	level           VARCHAR(2)   NOT NULL CHECK (level IN ('UG', 'PG')),
	delivery_mode   VARCHAR(16)  NOT NULL CHECK (delivery_mode IN ('online', 'offline', 'hybrid')),
	credits         INTEGER      NOT NULL CHECK (credits > 0),
	duration_weeks  INTEGER      NOT NULL CHECK (duration_weeks > 0),
	rating          NUMERIC(2,1) NOT NULL CHECK (rating >= 0 AND rating <= 5),
	tuition_fee_inr BIGINT       NOT NULL CHECK (tuition_fee_inr >= 0),
	year_offered    INTEGER      NOT NULL CHECK (year_offered BETWEEN 1900 AND 2100),
	created_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
);`,
	},
	{
		version: "002_create_course_indexes",
		sql: `
CREATE INDEX IF NOT EXISTS idx_courses_department    ON courses (department);
CREATE INDEX IF NOT EXISTS idx_courses_level         ON courses (level);
CREATE INDEX IF NOT EXISTS idx_courses_delivery_mode ON courses (delivery_mode);
CREATE INDEX IF NOT EXISTS idx_courses_year_offered  ON courses (year_offered);
CREATE INDEX IF NOT EXISTS idx_courses_rating        ON courses (rating);`,
	},
}

// Migrator manages database migrations
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{db: db}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// recordMigration marks a migration as applied
func (m *Migrator) recordMigration(ctx context.Context, version string) error {
	_, err := m.db.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// Run applies every pending migration in order.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, mig := range orderedMigrations {
		applied, err := m.isMigrationApplied(ctx, mig.version)
		if err != nil {
			return err
		}
		if applied {
			logger.Debug().Str("version", mig.version).Msg("Migration already applied")
			continue
		}

		if _, err := m.db.Exec(ctx, mig.sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", mig.version, err)
		}
		if err := m.recordMigration(ctx, mig.version); err != nil {
			return err
		}
		logger.Info().Str("version", mig.version).Msg("Migration applied")
	}
	return nil
}
