package planner

import (
	"fmt"
	"math"

	"fitplan/internal/domain"
)

const (
	proteinShare = 0.30
	fatShare     = 0.25

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// SplitMacros divides dailyCalories 30/25/45 between protein, fat and carbs.
// Carbs take whatever the rounded protein and fat grams leave over.
func SplitMacros(dailyCalories int) domain.MacroSplit {
	cal := float64(dailyCalories)
	protein := int(math.Round(cal * proteinShare / kcalPerGramProtein))
	fat := int(math.Round(cal * fatShare / kcalPerGramFat))
	rest := dailyCalories - protein*kcalPerGramProtein - fat*kcalPerGramFat
	carbs := int(math.Round(float64(rest) / kcalPerGramCarbs))
	return domain.MacroSplit{ProteinG: protein, CarbsG: carbs, FatG: fat}
}

// ComposeDietPlan returns the calorie and macro summary lines, a blank
// separator and the meal template for pref (balanced when unknown).
//
// goal does not change the split yet; it is kept in the signature so callers
// already pass it once goal-specific ratios exist.
func ComposeDietPlan(pref domain.DietPreference, goal domain.GoalType, dailyCalories int) []string {
	m := SplitMacros(dailyCalories)

	tmpl, ok := dietTemplates[pref]
	if !ok {
		tmpl = dietTemplates[fallbackDiet]
	}

	out := make([]string, 0, len(tmpl)+3)
	out = append(out,
		fmt.Sprintf("Calorias diárias: %d kcal", dailyCalories),
		fmt.Sprintf("Proteínas: %dg | Carboidratos: %dg | Gorduras: %dg", m.ProteinG, m.CarbsG, m.FatG),
		"",
	)
	return append(out, tmpl...)
}
