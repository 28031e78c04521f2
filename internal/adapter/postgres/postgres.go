// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fitplan/internal/domain"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.QuizResultRepository = (*DB)(nil)
var _ domain.ProgressRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, username TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS sessions (token TEXT PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, expires_at TIMESTAMPTZ NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);",
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			full_name TEXT NOT NULL DEFAULT '',
			age INTEGER CHECK (age > 0),
			gender TEXT CHECK (gender IN ('male','female')),
			height_cm DOUBLE PRECISION CHECK (height_cm > 0),
			current_weight DOUBLE PRECISION CHECK (current_weight > 0),
			target_weight DOUBLE PRECISION CHECK (target_weight > 0),
			activity_level TEXT NOT NULL DEFAULT 'sedentary',
			goal_type TEXT NOT NULL DEFAULT 'lose_weight',
			daily_calories INTEGER,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quiz_results (
			id UUID PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			fitness_level TEXT NOT NULL,
			workout_preference TEXT NOT NULL,
			diet_preference TEXT NOT NULL,
			available_days INTEGER NOT NULL CHECK (available_days BETWEEN 1 AND 7),
			daily_calories INTEGER NOT NULL,
			recommended_plan JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_quiz_results_user_created ON quiz_results(user_id, created_at DESC);",
		`CREATE TABLE IF NOT EXISTS progress_logs (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			weight_kg DOUBLE PRECISION CHECK (weight_kg > 0),
			calories_consumed INTEGER NOT NULL DEFAULT 0 CHECK (calories_consumed >= 0),
			calories_burned INTEGER NOT NULL DEFAULT 0 CHECK (calories_burned >= 0),
			exercises_completed INTEGER NOT NULL DEFAULT 0 CHECK (exercises_completed >= 0),
			notes TEXT NOT NULL DEFAULT '',
			log_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_progress_logs_user_created ON progress_logs(user_id, created_at DESC);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Sessions are bound to the client that created them.
	alterStmts := []string{
		"ALTER TABLE sessions ADD COLUMN IF NOT EXISTS user_agent TEXT NOT NULL DEFAULT '';",
		"ALTER TABLE sessions ADD COLUMN IF NOT EXISTS ip TEXT NOT NULL DEFAULT '';",
	}
	for _, stmt := range alterStmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
