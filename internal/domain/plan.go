package domain

import (
	"context"
	"time"
)

// EnergyBudget is the derived energy estimate for an intake.
type EnergyBudget struct {
	BMR           float64 `json:"bmr"`
	TDEE          float64 `json:"tdee"`
	DailyCalories int     `json:"dailyCalories"`
}

// MacroSplit holds daily macronutrient targets in grams.
type MacroSplit struct {
	ProteinG int `json:"proteinG"`
	CarbsG   int `json:"carbsG"`
	FatG     int `json:"fatG"`
}

// Plan is the recommendation produced for an intake.
type Plan struct {
	Workout []string `json:"workout"`
	Diet    []string `json:"diet"`
	Tips    []string `json:"tips"`
}

// QuizResult is a stored submission: the raw preferences plus the plan
// generated from them, embedded verbatim.
type QuizResult struct {
	ID                string            `json:"id"`
	UserID            int64             `json:"userId"`
	FitnessLevel      FitnessLevel      `json:"fitnessLevel"`
	WorkoutPreference WorkoutPreference `json:"workoutPreference"`
	DietPreference    DietPreference    `json:"dietPreference"`
	AvailableDays     int               `json:"availableDays"`
	DailyCalories     int               `json:"dailyCalories"`
	Plan              Plan              `json:"recommendedPlan"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// QuizResultRepository is the port for quiz result persistence.
// LatestQuizResult returns (nil, nil) when the user has no results.
type QuizResultRepository interface {
	SaveQuizResult(ctx context.Context, r QuizResult) error
	LatestQuizResult(ctx context.Context, userID int64) (*QuizResult, error)
	ListQuizResults(ctx context.Context, userID int64, limit int) ([]QuizResult, error)
}
