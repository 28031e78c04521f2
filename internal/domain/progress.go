package domain

import (
	"context"
	"time"
)

// ProgressLog is a daily check-in entered from the dashboard.
type ProgressLog struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"userId"`
	WeightKg           *float64  `json:"weightKg"`
	CaloriesConsumed   int       `json:"caloriesConsumed"`
	CaloriesBurned     int       `json:"caloriesBurned"`
	ExercisesCompleted int       `json:"exercisesCompleted"`
	Notes              string    `json:"notes"`
	LogDate            string    `json:"logDate"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ProgressRepository is the port for progress log persistence.
type ProgressRepository interface {
	AddProgressLog(ctx context.Context, l ProgressLog) (int64, error)
	ListRecentProgressLogs(ctx context.Context, userID int64, limit int) ([]ProgressLog, error)
	DeleteLatestProgressLog(ctx context.Context, userID int64) (bool, error)
}
