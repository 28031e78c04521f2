package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitplan/internal/domain"
	"fitplan/internal/planner"

	"github.com/google/uuid"
)

// ErrNoQuizResult is returned when a user has not completed the quiz yet.
var ErrNoQuizResult = errors.New("no quiz result")

const defaultHistoryLimit = 10

// QuizService turns questionnaire submissions into stored plans.
type QuizService struct {
	results  domain.QuizResultRepository
	profiles domain.ProfileRepository

	now   func() time.Time
	newID func() string
}

// NewQuizService creates a QuizService. Results and profiles may live in
// different stores.
func NewQuizService(results domain.QuizResultRepository, profiles domain.ProfileRepository) *QuizService {
	return &QuizService{
		results:  results,
		profiles: profiles,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Preview builds a plan for the intake without persisting anything.
func (s *QuizService) Preview(in domain.Intake) (domain.Plan, domain.EnergyBudget, error) {
	return planner.BuildPlan(in)
}

// Submit validates the intake, builds the plan, copies the answers onto the
// user's profile and stores the result.
func (s *QuizService) Submit(ctx context.Context, userID int64, in domain.Intake) (*domain.QuizResult, error) {
	plan, budget, err := planner.BuildPlan(in)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()

	existing, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p := domain.Profile{UserID: userID}
	if existing != nil {
		p = *existing
	}
	age, gender := in.Age, in.Gender
	height, weight, target := in.HeightCm, in.WeightKg, in.TargetWeightKg
	calories := budget.DailyCalories
	p.Age = &age
	// The profile only records modeled genders; an unknown one keeps
	// whatever the profile already had.
	if gender == domain.GenderMale || gender == domain.GenderFemale {
		p.Gender = &gender
	}
	p.HeightCm = &height
	p.CurrentWeight = &weight
	p.TargetWeight = &target
	p.ActivityLevel = in.ActivityLevel
	p.GoalType = in.GoalType
	p.DailyCalories = &calories
	p.UpdatedAt = now
	if err := s.profiles.UpsertProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	r := domain.QuizResult{
		ID:                s.newID(),
		UserID:            userID,
		FitnessLevel:      in.FitnessLevel,
		WorkoutPreference: in.WorkoutPreference,
		DietPreference:    in.DietPreference,
		AvailableDays:     in.AvailableDays,
		DailyCalories:     budget.DailyCalories,
		Plan:              plan,
		CreatedAt:         now,
	}
	if err := s.results.SaveQuizResult(ctx, r); err != nil {
		return nil, fmt.Errorf("save quiz result: %w", err)
	}
	return &r, nil
}

// LatestPlan returns the most recent quiz result for the user.
func (s *QuizService) LatestPlan(ctx context.Context, userID int64) (*domain.QuizResult, error) {
	r, err := s.results.LatestQuizResult(ctx, userID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNoQuizResult
	}
	return r, nil
}

// History lists past results, newest first.
func (s *QuizService) History(ctx context.Context, userID int64, limit int) ([]domain.QuizResult, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.results.ListQuizResults(ctx, userID, limit)
}
