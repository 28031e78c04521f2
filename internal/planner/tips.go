package planner

import "fitplan/internal/domain"

// SelectTips returns the five tips for goal, or the maintain set.
func SelectTips(goal domain.GoalType) []string {
	tips, ok := tipsByGoal[goal]
	if !ok {
		tips = tipsByGoal[fallbackGoal]
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
