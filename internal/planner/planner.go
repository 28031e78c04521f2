// Package planner turns a questionnaire intake into an energy budget and a
// workout, diet and tips plan. Everything here is a pure function over its
// arguments and the read-only lookup tables, so it is safe for concurrent use.
package planner

import (
	"errors"
	"fmt"
	"math"

	"fitplan/internal/domain"
)

// ErrInvalidInput is matched by every error returned from Validate.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError names the intake field that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match a *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

const (
	minAvailableDays = 1
	maxAvailableDays = 7

	maxAge = 120

	MinHeightCm = 50
	MaxHeightCm = 250
	MinWeightKg = 10
	MaxWeightKg = 400
)

// Validate rejects intakes the formulas cannot handle: non-finite metrics,
// metrics outside a plausible human range and a weekly schedule outside
// [1,7]. Enumerations are never rejected; unknown values fall back to
// documented defaults.
func Validate(in domain.Intake) error {
	if err := ValidateAge(in.Age); err != nil {
		return err
	}
	if err := ValidateHeight("heightCm", in.HeightCm); err != nil {
		return err
	}
	for _, m := range []struct {
		field string
		v     float64
	}{
		{"weightKg", in.WeightKg},
		{"targetWeightKg", in.TargetWeightKg},
	} {
		if err := ValidateWeight(m.field, m.v); err != nil {
			return err
		}
	}
	if in.AvailableDays < minAvailableDays || in.AvailableDays > maxAvailableDays {
		return &ValidationError{
			Field:  "availableDays",
			Reason: fmt.Sprintf("must be within [%d, %d]", minAvailableDays, maxAvailableDays),
		}
	}
	return nil
}

// ValidateAge rejects an age outside [1,120].
func ValidateAge(age int) error {
	if age <= 0 {
		return &ValidationError{Field: "age", Reason: "must be > 0"}
	}
	if age > maxAge {
		return &ValidationError{Field: "age", Reason: fmt.Sprintf("must be <= %d", maxAge)}
	}
	return nil
}

// ValidateHeight rejects a height in cm outside [MinHeightCm, MaxHeightCm].
func ValidateHeight(field string, v float64) error {
	return validateRange(field, v, MinHeightCm, MaxHeightCm)
}

// ValidateWeight rejects a weight in kg outside [MinWeightKg, MaxWeightKg].
func ValidateWeight(field string, v float64) error {
	return validateRange(field, v, MinWeightKg, MaxWeightKg)
}

func validateRange(field string, v, lo, hi float64) error {
	if err := ValidateMetric(field, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be within [%g, %g]", lo, hi)}
	}
	return nil
}

// ValidateMetric rejects a body metric that is not a finite positive number.
func ValidateMetric(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if v <= 0 {
		return &ValidationError{Field: field, Reason: "must be > 0"}
	}
	return nil
}

// CheckBudget rejects a budget whose daily calories came out negative. The
// range checks admit some extreme combinations (very old, very light, very
// short, sedentary, losing weight) that the formulas push below zero.
func CheckBudget(b domain.EnergyBudget) error {
	if b.DailyCalories < 0 {
		return &ValidationError{Field: "dailyCalories", Reason: "metrics yield a negative energy budget"}
	}
	return nil
}

// BuildPlan validates in and assembles its plan. On a validation error the
// returned plan and budget are zero values.
func BuildPlan(in domain.Intake) (domain.Plan, domain.EnergyBudget, error) {
	if err := Validate(in); err != nil {
		return domain.Plan{}, domain.EnergyBudget{}, err
	}

	budget := ComputeEnergyBudget(in.WeightKg, in.HeightCm, in.Age, in.Gender, in.ActivityLevel, in.GoalType)
	if err := CheckBudget(budget); err != nil {
		return domain.Plan{}, domain.EnergyBudget{}, err
	}
	plan := domain.Plan{
		Workout: SelectWorkoutPlan(in.FitnessLevel, in.WorkoutPreference, in.AvailableDays),
		Diet:    ComposeDietPlan(in.DietPreference, in.GoalType, budget.DailyCalories),
		Tips:    SelectTips(in.GoalType),
	}
	return plan, budget, nil
}
