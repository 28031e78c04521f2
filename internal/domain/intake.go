package domain

// Gender selects the BMR formula. Only the two values below are modeled;
// anything that is not GenderMale uses the female formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel picks the TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// GoalType adjusts the calorie target and selects the tip set.
type GoalType string

const (
	GoalLoseWeight GoalType = "lose_weight"
	GoalGainMuscle GoalType = "gain_muscle"
	GoalMaintain   GoalType = "maintain"
)

// FitnessLevel is the first half of the workout template key.
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// WorkoutPreference is the training environment, second half of the workout key.
type WorkoutPreference string

const (
	WorkoutGym  WorkoutPreference = "gym"
	WorkoutHome WorkoutPreference = "home"
)

// DietPreference selects the diet template.
type DietPreference string

const (
	DietBalanced   DietPreference = "balanced"
	DietVegetarian DietPreference = "vegetarian"
	DietLowCarb    DietPreference = "low_carb"
)

// Intake is the one-time questionnaire answered by a user. Metric fields are
// always metric (kg, cm); unit conversion happens before an Intake is built.
type Intake struct {
	Age               int               `json:"age"`
	Gender            Gender            `json:"gender"`
	HeightCm          float64           `json:"heightCm"`
	WeightKg          float64           `json:"weightKg"`
	TargetWeightKg    float64           `json:"targetWeightKg"`
	ActivityLevel     ActivityLevel     `json:"activityLevel"`
	GoalType          GoalType          `json:"goalType"`
	FitnessLevel      FitnessLevel      `json:"fitnessLevel"`
	WorkoutPreference WorkoutPreference `json:"workoutPreference"`
	DietPreference    DietPreference    `json:"dietPreference"`
	AvailableDays     int               `json:"availableDays"`
}
