package workout

import "github.com/repwise/repwise/internal/training"

// template holds the set/rep/rest prescription for one goal and
// experience level.
type template struct {
	Sets        int
	Reps        string
	RestSeconds int
}

// templates is the goal x experience prescription table.
var templates = map[training.Goal]map[ExperienceLevel]template{
	training.GoalStrength: {
		ExperienceBeginner:     {Sets: 3, Reps: "4-6", RestSeconds: 150},
		ExperienceIntermediate: {Sets: 4, Reps: "3-6", RestSeconds: 180},
		ExperienceAdvanced:     {Sets: 5, Reps: "3-5", RestSeconds: 180},
	},
	training.GoalHypertrophy: {
		ExperienceBeginner:     {Sets: 3, Reps: "8-12", RestSeconds: 90},
		ExperienceIntermediate: {Sets: 4, Reps: "8-12", RestSeconds: 90},
		ExperienceAdvanced:     {Sets: 4, Reps: "6-12", RestSeconds: 120},
	},
	training.GoalEndurance: {
		ExperienceBeginner:     {Sets: 2, Reps: "15-20", RestSeconds: 45},
		ExperienceIntermediate: {Sets: 3, Reps: "15-20", RestSeconds: 60},
		ExperienceAdvanced:     {Sets: 3, Reps: "12-20", RestSeconds: 60},
	},
	training.GoalGeneral: {
		ExperienceBeginner:     {Sets: 3, Reps: "8-12", RestSeconds: 75},
		ExperienceIntermediate: {Sets: 3, Reps: "8-12", RestSeconds: 90},
		ExperienceAdvanced:     {Sets: 4, Reps: "8-12", RestSeconds: 90},
	},
}

// templateFor resolves the prescription for a goal and experience level.
func templateFor(goal training.Goal, level ExperienceLevel) template {
	byLevel, ok := templates[goal]
	if !ok {
		byLevel = templates[training.GoalGeneral]
	}
	if t, ok := byLevel[level]; ok {
		return t
	}
	return byLevel[ExperienceIntermediate]
}

// tierMix is the per-goal share of selections drawn from each tier.
type tierMix struct {
	S float64
	A float64
	B float64
}

// tierMixes implements the goal-specific tier weighting: strength leans
// hard on tier S, endurance tolerates more tier B accessory work.
var tierMixes = map[training.Goal]tierMix{
	training.GoalStrength:    {S: 0.7, A: 0.2, B: 0.1},
	training.GoalHypertrophy: {S: 0.4, A: 0.4, B: 0.2},
	training.GoalGeneral:     {S: 0.4, A: 0.4, B: 0.2},
	training.GoalEndurance:   {S: 0.3, A: 0.3, B: 0.4},
}

// Exercise counts by requested duration.
const (
	shortWorkoutMinutes    = 30
	mediumWorkoutMinutes   = 45
	standardWorkoutMinutes = 60

	shortWorkoutExercises    = 4
	mediumWorkoutExercises   = 5
	standardWorkoutExercises = 6
	longWorkoutExercises     = 7
)

// exerciseCountFor maps a requested duration to an exercise count.
func exerciseCountFor(durationMinutes int) int {
	switch {
	case durationMinutes <= shortWorkoutMinutes:
		return shortWorkoutExercises
	case durationMinutes <= mediumWorkoutMinutes:
		return mediumWorkoutExercises
	case durationMinutes <= standardWorkoutMinutes:
		return standardWorkoutExercises
	default:
		return longWorkoutExercises
	}
}

// splits maps a program day count to the canned weekly split it follows.
var splits = map[int][]string{
	3: {"push", "pull", "legs"},
	4: {"upper", "lower", "upper", "lower"},
	5: {"chest", "back", "legs", "shoulders", "arms"},
	6: {"push", "pull", "legs", "push", "pull", "legs"},
}
