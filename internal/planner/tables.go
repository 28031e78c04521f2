package planner

import "fitplan/internal/domain"

// Fallback keys used when a lookup misses.
const (
	fallbackActivity = domain.ActivitySedentary
	fallbackWorkout  = "beginner_home"
	fallbackDiet     = domain.DietBalanced
	fallbackGoal     = domain.GoalMaintain
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// workoutTemplates is keyed by "<fitness level>_<workout preference>".
// Duration and volume grow with level.
var workoutTemplates = map[string][]string{
	"beginner_gym": {
		"Segunda: Treino A - Peito e Tríceps (30 min)",
		"Quarta: Treino B - Costas e Bíceps (30 min)",
		"Sexta: Treino C - Pernas e Ombros (30 min)",
	},
	"beginner_home": {
		"Segunda: Flexões, Agachamentos, Prancha (20 min)",
		"Quarta: Burpees, Lunges, Mountain Climbers (20 min)",
		"Sexta: Polichinelos, Abdominais, Prancha lateral (20 min)",
	},
	"intermediate_gym": {
		"Segunda: Peito e Tríceps (45 min)",
		"Terça: Costas e Bíceps (45 min)",
		"Quinta: Pernas (45 min)",
		"Sexta: Ombros e Abdômen (45 min)",
	},
	"intermediate_home": {
		"Segunda: HIIT Upper Body (30 min)",
		"Terça: HIIT Lower Body (30 min)",
		"Quinta: Full Body Strength (30 min)",
		"Sexta: Cardio e Core (30 min)",
	},
	"advanced_gym": {
		"Segunda: Peito (60 min)",
		"Terça: Costas (60 min)",
		"Quarta: Pernas (60 min)",
		"Quinta: Ombros (60 min)",
		"Sexta: Braços (60 min)",
		"Sábado: Cardio (30 min)",
	},
	"advanced_home": {
		"Segunda: HIIT Avançado (45 min)",
		"Terça: Força Upper Body (45 min)",
		"Quarta: Força Lower Body (45 min)",
		"Quinta: Full Body Circuit (45 min)",
		"Sexta: Cardio Intenso (45 min)",
	},
}

var dietTemplates = map[domain.DietPreference][]string{
	domain.DietBalanced: {
		"Café da manhã: Ovos mexidos com aveia e frutas",
		"Almoço: Arroz integral, frango grelhado e salada",
		"Lanche: Iogurte grego com granola",
		"Jantar: Peixe assado com batata doce e legumes",
	},
	domain.DietVegetarian: {
		"Café da manhã: Smoothie de proteína vegetal com banana",
		"Almoço: Quinoa com grão de bico e vegetais",
		"Lanche: Mix de castanhas e frutas",
		"Jantar: Tofu grelhado com arroz integral e brócolis",
	},
	domain.DietLowCarb: {
		"Café da manhã: Omelete com queijo e abacate",
		"Almoço: Carne com salada verde e azeite",
		"Lanche: Queijo cottage com nozes",
		"Jantar: Salmão com aspargos e couve-flor",
	},
}

var tipsByGoal = map[domain.GoalType][]string{
	domain.GoalLoseWeight: {
		"Beba pelo menos 2L de água por dia",
		"Faça 10.000 passos diários",
		"Durma 7-8 horas por noite",
		"Evite alimentos processados",
		"Faça cardio 3x por semana",
	},
	domain.GoalGainMuscle: {
		"Consuma proteína em todas as refeições",
		"Descanse 48h entre treinos do mesmo grupo muscular",
		"Aumente progressivamente a carga nos treinos",
		"Faça 5-6 refeições por dia",
		"Suplementação: Whey e Creatina",
	},
	domain.GoalMaintain: {
		"Mantenha consistência nos treinos",
		"Equilibre macronutrientes",
		"Faça exercícios variados",
		"Monitore seu progresso semanalmente",
		"Ajuste calorias conforme necessário",
	},
}

// KnownActivityLevel reports whether a has its own multiplier.
func KnownActivityLevel(a domain.ActivityLevel) bool {
	_, ok := activityMultipliers[a]
	return ok
}

// KnownGoal reports whether g has its own tip set.
func KnownGoal(g domain.GoalType) bool {
	_, ok := tipsByGoal[g]
	return ok
}
