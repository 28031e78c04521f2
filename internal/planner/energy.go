package planner

import (
	"math"

	"fitplan/internal/domain"
)

// BMR estimates basal metabolic rate with the revised Harris-Benedict
// equations. Any gender other than male gets the female equation.
func BMR(weightKg, heightCm float64, age int, g domain.Gender) float64 {
	if g == domain.GenderMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.33*float64(age)
}

// TDEE scales bmr by the activity multiplier, sedentary when a is unknown.
func TDEE(bmr float64, a domain.ActivityLevel) float64 {
	mult, ok := activityMultipliers[a]
	if !ok {
		mult = activityMultipliers[fallbackActivity]
	}
	return bmr * mult
}

// DailyCalories applies the goal adjustment to tdee and rounds to the
// nearest kcal. Unknown goals are treated as maintain.
func DailyCalories(tdee float64, goal domain.GoalType) int {
	switch goal {
	case domain.GoalLoseWeight:
		tdee -= 500
	case domain.GoalGainMuscle:
		tdee += 300
	}
	return int(math.Round(tdee))
}

// ComputeEnergyBudget runs BMR, TDEE and DailyCalories in sequence.
// It does not validate its inputs; see Validate.
func ComputeEnergyBudget(weightKg, heightCm float64, age int, g domain.Gender, a domain.ActivityLevel, goal domain.GoalType) domain.EnergyBudget {
	bmr := BMR(weightKg, heightCm, age, g)
	tdee := TDEE(bmr, a)
	return domain.EnergyBudget{
		BMR:           bmr,
		TDEE:          tdee,
		DailyCalories: DailyCalories(tdee, goal),
	}
}
