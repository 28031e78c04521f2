package planner

import "fitplan/internal/domain"

func workoutKey(level domain.FitnessLevel, pref domain.WorkoutPreference) string {
	return string(level) + "_" + string(pref)
}

// SelectWorkoutPlan returns the first days entries of the template for
// level and pref, falling back to the beginner home template. The template
// is never padded, and days <= 0 yields an empty plan.
func SelectWorkoutPlan(level domain.FitnessLevel, pref domain.WorkoutPreference, days int) []string {
	tmpl, ok := workoutTemplates[workoutKey(level, pref)]
	if !ok {
		tmpl = workoutTemplates[fallbackWorkout]
	}
	n := min(max(days, 0), len(tmpl))
	out := make([]string, n)
	copy(out, tmpl[:n])
	return out
}
