package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitplan/internal/domain"
	"fitplan/internal/planner"
)

// ProfileUpdate carries a partial profile edit. Nil fields are left as they
// are.
type ProfileUpdate struct {
	FullName      *string               `json:"fullName"`
	Age           *int                  `json:"age"`
	Gender        *domain.Gender        `json:"gender"`
	HeightCm      *float64              `json:"heightCm"`
	CurrentWeight *float64              `json:"currentWeightKg"`
	TargetWeight  *float64              `json:"targetWeightKg"`
	ActivityLevel *domain.ActivityLevel `json:"activityLevel"`
	GoalType      *domain.GoalType      `json:"goalType"`
}

// ProfileService reads and edits user profiles.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the profile, or an empty one when the user has none yet.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &domain.Profile{UserID: userID}, nil
	}
	return p, nil
}

// Update applies a partial edit and recomputes the daily calorie target
// when every input of the energy calculation is known.
func (s *ProfileService) Update(ctx context.Context, userID int64, u ProfileUpdate) (*domain.Profile, error) {
	if err := validateProfileUpdate(u); err != nil {
		return nil, err
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.FullName != nil {
		p.FullName = strings.TrimSpace(*u.FullName)
	}
	if u.Age != nil {
		p.Age = u.Age
	}
	if u.Gender != nil {
		p.Gender = u.Gender
	}
	if u.HeightCm != nil {
		p.HeightCm = u.HeightCm
	}
	if u.CurrentWeight != nil {
		p.CurrentWeight = u.CurrentWeight
	}
	if u.TargetWeight != nil {
		p.TargetWeight = u.TargetWeight
	}
	if u.ActivityLevel != nil {
		p.ActivityLevel = *u.ActivityLevel
	}
	if u.GoalType != nil {
		p.GoalType = *u.GoalType
	}

	if p.Age != nil && p.Gender != nil && p.HeightCm != nil && p.CurrentWeight != nil && p.ActivityLevel != "" {
		b := planner.ComputeEnergyBudget(*p.CurrentWeight, *p.HeightCm, *p.Age, *p.Gender, p.ActivityLevel, p.GoalType)
		if err := planner.CheckBudget(b); err != nil {
			return nil, err
		}
		p.DailyCalories = &b.DailyCalories
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpsertProfile(ctx, *p); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

func validateProfileUpdate(u ProfileUpdate) error {
	if u.Age != nil {
		if err := planner.ValidateAge(*u.Age); err != nil {
			return err
		}
	}
	if u.Gender != nil && *u.Gender != domain.GenderMale && *u.Gender != domain.GenderFemale {
		return &planner.ValidationError{Field: "gender", Reason: "must be \"male\" or \"female\""}
	}
	if u.HeightCm != nil {
		if err := planner.ValidateHeight("heightCm", *u.HeightCm); err != nil {
			return err
		}
	}
	for _, m := range []struct {
		field string
		v     *float64
	}{
		{"currentWeightKg", u.CurrentWeight},
		{"targetWeightKg", u.TargetWeight},
	} {
		if m.v == nil {
			continue
		}
		if err := planner.ValidateWeight(m.field, *m.v); err != nil {
			return err
		}
	}
	if u.ActivityLevel != nil && !planner.KnownActivityLevel(*u.ActivityLevel) {
		return &planner.ValidationError{Field: "activityLevel", Reason: "unknown activity level"}
	}
	if u.GoalType != nil && !planner.KnownGoal(*u.GoalType) {
		return &planner.ValidationError{Field: "goalType", Reason: "unknown goal"}
	}
	return nil
}
