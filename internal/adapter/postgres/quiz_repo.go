package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"fitplan/internal/domain"
)

const quizColumns = "id, user_id, fitness_level, workout_preference, diet_preference, available_days, daily_calories, recommended_plan, created_at"

// SaveQuizResult inserts a quiz result with its plan stored as JSONB.
func (d *DB) SaveQuizResult(ctx context.Context, r domain.QuizResult) error {
	plan, err := json.Marshal(r.Plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	_, err = d.sql.ExecContext(ctx,
		"INSERT INTO quiz_results ("+quizColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);",
		r.ID, r.UserID, string(r.FitnessLevel), string(r.WorkoutPreference), string(r.DietPreference),
		r.AvailableDays, r.DailyCalories, string(plan), r.CreatedAt.UTC(),
	)
	return err
}

// LatestQuizResult returns the newest result for the user, or nil.
func (d *DB) LatestQuizResult(ctx context.Context, userID int64) (*domain.QuizResult, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+quizColumns+" FROM quiz_results WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1;",
		userID,
	)
	r, err := scanQuizResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// ListQuizResults returns up to limit results, newest first.
func (d *DB) ListQuizResults(ctx context.Context, userID int64, limit int) ([]domain.QuizResult, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+quizColumns+" FROM quiz_results WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;",
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.QuizResult, 0, limit)
	for rows.Next() {
		r, err := scanQuizResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuizResult(s rowScanner) (domain.QuizResult, error) {
	var (
		r    domain.QuizResult
		plan []byte
	)
	if err := s.Scan(&r.ID, &r.UserID, &r.FitnessLevel, &r.WorkoutPreference, &r.DietPreference,
		&r.AvailableDays, &r.DailyCalories, &plan, &r.CreatedAt); err != nil {
		return r, err
	}
	if err := json.Unmarshal(plan, &r.Plan); err != nil {
		return r, fmt.Errorf("decode plan %s: %w", r.ID, err)
	}
	return r, nil
}
