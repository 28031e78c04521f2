package app_test

import (
	"context"

	"fitplan/internal/domain"
)

type mockProfileRepo struct {
	getFn    func(ctx context.Context, userID int64) (*domain.Profile, error)
	upsertFn func(ctx context.Context, p domain.Profile) error
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepo) UpsertProfile(ctx context.Context, p domain.Profile) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, p)
	}
	return nil
}

type mockQuizRepo struct {
	saveFn   func(ctx context.Context, r domain.QuizResult) error
	latestFn func(ctx context.Context, userID int64) (*domain.QuizResult, error)
	listFn   func(ctx context.Context, userID int64, limit int) ([]domain.QuizResult, error)
}

func (m *mockQuizRepo) SaveQuizResult(ctx context.Context, r domain.QuizResult) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, r)
	}
	return nil
}

func (m *mockQuizRepo) LatestQuizResult(ctx context.Context, userID int64) (*domain.QuizResult, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockQuizRepo) ListQuizResults(ctx context.Context, userID int64, limit int) ([]domain.QuizResult, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

type mockProgressRepo struct {
	addFn    func(ctx context.Context, l domain.ProgressLog) (int64, error)
	listFn   func(ctx context.Context, userID int64, limit int) ([]domain.ProgressLog, error)
	deleteFn func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockProgressRepo) AddProgressLog(ctx context.Context, l domain.ProgressLog) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, l)
	}
	return 0, nil
}

func (m *mockProgressRepo) ListRecentProgressLogs(ctx context.Context, userID int64, limit int) ([]domain.ProgressLog, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockProgressRepo) DeleteLatestProgressLog(ctx context.Context, userID int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return false, nil
}

func ptr[T any](v T) *T { return &v }
