package planner

import (
	"reflect"
	"testing"

	"fitplan/internal/domain"
)

var (
	allLevels = []domain.FitnessLevel{domain.FitnessBeginner, domain.FitnessIntermediate, domain.FitnessAdvanced}
	allPrefs  = []domain.WorkoutPreference{domain.WorkoutGym, domain.WorkoutHome}
)

func TestWorkoutTemplates_Lengths(t *testing.T) {
	want := map[string]int{
		"beginner_gym":      3,
		"beginner_home":     3,
		"intermediate_gym":  4,
		"intermediate_home": 4,
		"advanced_gym":      6,
		"advanced_home":     5,
	}
	if len(workoutTemplates) != len(want) {
		t.Fatalf("expected %d templates, got %d", len(want), len(workoutTemplates))
	}
	for key, n := range want {
		if got := len(workoutTemplates[key]); got != n {
			t.Errorf("template %s has %d entries, want %d", key, got, n)
		}
	}
}

func TestSelectWorkoutPlan_TruncationLaw(t *testing.T) {
	for _, level := range allLevels {
		for _, pref := range allPrefs {
			tmplLen := len(workoutTemplates[workoutKey(level, pref)])
			for n := 1; n <= 7; n++ {
				got := SelectWorkoutPlan(level, pref, n)
				if want := min(n, tmplLen); len(got) != want {
					t.Errorf("%s/%s days=%d: len = %d, want %d", level, pref, n, len(got), want)
				}
			}
		}
	}
}

func TestSelectWorkoutPlan_PrefixOfTemplate(t *testing.T) {
	got := SelectWorkoutPlan(domain.FitnessAdvanced, domain.WorkoutGym, 4)
	want := workoutTemplates["advanced_gym"][:4]
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSelectWorkoutPlan_BeginnerHomeTwoDays(t *testing.T) {
	got := SelectWorkoutPlan(domain.FitnessBeginner, domain.WorkoutHome, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0] != "Segunda: Flexões, Agachamentos, Prancha (20 min)" {
		t.Errorf("unexpected first entry: %q", got[0])
	}
}

func TestSelectWorkoutPlan_UnknownKeyFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		level domain.FitnessLevel
		pref  domain.WorkoutPreference
	}{
		{"unknown level", "elite", domain.WorkoutGym},
		{"unknown preference", domain.FitnessAdvanced, "outdoor"},
		{"both empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for n := 1; n <= 7; n++ {
				got := SelectWorkoutPlan(tc.level, tc.pref, n)
				want := SelectWorkoutPlan(domain.FitnessBeginner, domain.WorkoutHome, n)
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("days=%d: got %v, want beginner_home %v", n, got, want)
				}
			}
		})
	}
}

func TestSelectWorkoutPlan_NonPositiveDays(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		got := SelectWorkoutPlan(domain.FitnessBeginner, domain.WorkoutGym, n)
		if got == nil || len(got) != 0 {
			t.Errorf("days=%d: expected empty non-nil plan, got %#v", n, got)
		}
	}
}

func TestSelectWorkoutPlan_DoesNotAliasTemplate(t *testing.T) {
	got := SelectWorkoutPlan(domain.FitnessBeginner, domain.WorkoutGym, 3)
	got[0] = "changed"
	if workoutTemplates["beginner_gym"][0] == "changed" {
		t.Fatal("mutating the result changed the template")
	}
}
