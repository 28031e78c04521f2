package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitplan/internal/domain"
)

// AddProgressLog inserts a new progress log.
func (d *DB) AddProgressLog(ctx context.Context, l domain.ProgressLog) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO progress_logs(user_id, weight_kg, calories_consumed, calories_burned, exercises_completed, notes, log_date, created_at)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		l.UserID, l.WeightKg, l.CaloriesConsumed, l.CaloriesBurned, l.ExercisesCompleted, l.Notes, l.LogDate, l.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteLatestProgressLog removes the most recent progress log for a user.
func (d *DB) DeleteLatestProgressLog(ctx context.Context, userID int64) (bool, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"SELECT id FROM progress_logs WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1;",
		userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	_, err = d.sql.ExecContext(ctx, "DELETE FROM progress_logs WHERE id=$1;", id)
	return err == nil, err
}

// ListRecentProgressLogs returns the most recent progress logs up to limit.
func (d *DB) ListRecentProgressLogs(ctx context.Context, userID int64, limit int) ([]domain.ProgressLog, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, user_id, weight_kg, calories_consumed, calories_burned, exercises_completed, notes, log_date, created_at
		   FROM progress_logs WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2;`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ProgressLog, 0, limit)
	for rows.Next() {
		var (
			l       domain.ProgressLog
			weight  sql.NullFloat64
			logDate time.Time
		)
		if err := rows.Scan(&l.ID, &l.UserID, &weight, &l.CaloriesConsumed, &l.CaloriesBurned,
			&l.ExercisesCompleted, &l.Notes, &logDate, &l.CreatedAt); err != nil {
			return nil, err
		}
		if weight.Valid {
			l.WeightKg = &weight.Float64
		}
		l.LogDate = logDate.Format("2006-01-02")
		out = append(out, l)
	}
	return out, rows.Err()
}
