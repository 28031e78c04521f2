package app

import (
	"context"
	"time"
	"unicode/utf8"

	"fitplan/internal/domain"
	"fitplan/internal/planner"
)

const (
	defaultRecentLogs = 30
	maxNotesLen       = 500
)

// ProgressInput is a daily check-in as submitted by the user.
type ProgressInput struct {
	WeightKg           *float64 `json:"weightKg"`
	CaloriesConsumed   int      `json:"caloriesConsumed"`
	CaloriesBurned     int      `json:"caloriesBurned"`
	ExercisesCompleted int      `json:"exercisesCompleted"`
	Notes              string   `json:"notes"`
}

// ProgressService encapsulates progress-tracking use cases.
type ProgressService struct {
	repo domain.ProgressRepository
	now  func() time.Time
}

// NewProgressService creates a ProgressService backed by the given repository.
func NewProgressService(repo domain.ProgressRepository) *ProgressService {
	return &ProgressService{repo: repo, now: time.Now}
}

// Record validates and stores a check-in dated today.
func (s *ProgressService) Record(ctx context.Context, userID int64, in ProgressInput) (*domain.ProgressLog, error) {
	if in.WeightKg != nil {
		if err := planner.ValidateMetric("weightKg", *in.WeightKg); err != nil {
			return nil, err
		}
	}
	switch {
	case in.CaloriesConsumed < 0:
		return nil, &planner.ValidationError{Field: "caloriesConsumed", Reason: "must be >= 0"}
	case in.CaloriesBurned < 0:
		return nil, &planner.ValidationError{Field: "caloriesBurned", Reason: "must be >= 0"}
	case in.ExercisesCompleted < 0:
		return nil, &planner.ValidationError{Field: "exercisesCompleted", Reason: "must be >= 0"}
	case utf8.RuneCountInString(in.Notes) > maxNotesLen:
		return nil, &planner.ValidationError{Field: "notes", Reason: "must be at most 500 characters"}
	}

	now := s.now()
	l := domain.ProgressLog{
		UserID:             userID,
		WeightKg:           in.WeightKg,
		CaloriesConsumed:   in.CaloriesConsumed,
		CaloriesBurned:     in.CaloriesBurned,
		ExercisesCompleted: in.ExercisesCompleted,
		Notes:              in.Notes,
		LogDate:            now.In(time.Local).Format("2006-01-02"),
		CreatedAt:          now.UTC(),
	}
	id, err := s.repo.AddProgressLog(ctx, l)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return &l, nil
}

// ListRecent returns the most recent logs up to limit.
func (s *ProgressService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.ProgressLog, error) {
	if limit <= 0 {
		limit = defaultRecentLogs
	}
	return s.repo.ListRecentProgressLogs(ctx, userID, limit)
}

// UndoLast deletes the most recent log and reports whether one existed.
func (s *ProgressService) UndoLast(ctx context.Context, userID int64) (bool, error) {
	return s.repo.DeleteLatestProgressLog(ctx, userID)
}
