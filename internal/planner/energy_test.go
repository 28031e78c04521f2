package planner

import (
	"math"
	"testing"

	"fitplan/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeEnergyBudget_ReferenceMale(t *testing.T) {
	got := ComputeEnergyBudget(80, 180, 30, domain.GenderMale, domain.ActivitySedentary, domain.GoalLoseWeight)

	if !almostEqual(got.BMR, 1853.632, 1e-9) {
		t.Errorf("BMR = %v, want 1853.632", got.BMR)
	}
	if !almostEqual(got.TDEE, 2224.3584, 1e-9) {
		t.Errorf("TDEE = %v, want 2224.3584", got.TDEE)
	}
	if got.DailyCalories != 1724 {
		t.Errorf("DailyCalories = %d, want 1724", got.DailyCalories)
	}
}

func TestBMR_Female(t *testing.T) {
	// 447.593 + 9.247*60 + 3.098*165 - 4.33*25
	want := 447.593 + 554.82 + 511.17 - 108.25
	got := BMR(60, 165, 25, domain.GenderFemale)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("female BMR = %v, want %v", got, want)
	}
}

// Only "male" selects the male formula; every other value uses the female one.
func TestBMR_NonMaleUsesFemaleFormula(t *testing.T) {
	female := BMR(70, 170, 40, domain.GenderFemale)
	for _, g := range []domain.Gender{"", "other", "MALE"} {
		if got := BMR(70, 170, 40, g); got != female {
			t.Errorf("BMR(gender=%q) = %v, want female value %v", g, got, female)
		}
	}
}

func TestTDEE_Multipliers(t *testing.T) {
	tests := []struct {
		level domain.ActivityLevel
		mult  float64
	}{
		{domain.ActivitySedentary, 1.2},
		{domain.ActivityLight, 1.375},
		{domain.ActivityModerate, 1.55},
		{domain.ActivityActive, 1.725},
		{domain.ActivityVeryActive, 1.9},
	}
	for _, tc := range tests {
		t.Run(string(tc.level), func(t *testing.T) {
			if got := TDEE(1000, tc.level); !almostEqual(got, 1000*tc.mult, 1e-9) {
				t.Errorf("TDEE(1000, %q) = %v, want %v", tc.level, got, 1000*tc.mult)
			}
		})
	}
}

func TestTDEE_UnknownActivityFallsBackToSedentary(t *testing.T) {
	for _, level := range []domain.ActivityLevel{"", "couch", "VERY_ACTIVE"} {
		if got, want := TDEE(1500, level), TDEE(1500, domain.ActivitySedentary); got != want {
			t.Errorf("TDEE(%q) = %v, want sedentary %v", level, got, want)
		}
	}
}

func TestDailyCalories_GoalAdjustment(t *testing.T) {
	tests := []struct {
		name string
		goal domain.GoalType
		want int
	}{
		{"lose weight", domain.GoalLoseWeight, 1500},
		{"gain muscle", domain.GoalGainMuscle, 2300},
		{"maintain", domain.GoalMaintain, 2000},
		{"unknown", "bulk", 2000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DailyCalories(2000.4, tc.goal); got != tc.want {
				t.Errorf("DailyCalories(2000.4, %q) = %d, want %d", tc.goal, got, tc.want)
			}
		})
	}
}

func TestDailyCalories_RoundsToNearest(t *testing.T) {
	if got := DailyCalories(1999.5, domain.GoalMaintain); got != 2000 {
		t.Errorf("DailyCalories(1999.5) = %d, want 2000", got)
	}
	if got := DailyCalories(1999.49, domain.GoalMaintain); got != 1999 {
		t.Errorf("DailyCalories(1999.49) = %d, want 1999", got)
	}
}
