package domain

import (
	"context"
	"time"
)

// Profile holds the body metrics and goals of a user. Every metric is
// optional until the user completes the quiz or edits the profile.
type Profile struct {
	UserID        int64         `json:"userId"`
	FullName      string        `json:"fullName"`
	Age           *int          `json:"age"`
	Gender        *Gender       `json:"gender"`
	HeightCm      *float64      `json:"heightCm"`
	CurrentWeight *float64      `json:"currentWeightKg"`
	TargetWeight  *float64      `json:"targetWeightKg"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	GoalType      GoalType      `json:"goalType"`
	DailyCalories *int          `json:"dailyCalories"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// ProfileRepository is the port for profile persistence.
// GetProfile returns (nil, nil) when the user has no profile row.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpsertProfile(ctx context.Context, p Profile) error
}
