// Package workout composes the exercise taxonomy and static set/rep/rest
// templates into concrete single-session plans and multi-day programs.
package workout

import (
	"strings"

	"github.com/repwise/repwise/internal/taxonomy"
	"github.com/repwise/repwise/internal/training"
)

// ExperienceLevel describes a trainee's experience bracket.
type ExperienceLevel string

// Experience level constants.
const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// ParseExperience normalizes a user-facing experience string, defaulting
// to intermediate.
func ParseExperience(s string) ExperienceLevel {
	switch ExperienceLevel(strings.ToLower(strings.TrimSpace(s))) {
	case ExperienceBeginner:
		return ExperienceBeginner
	case ExperienceAdvanced:
		return ExperienceAdvanced
	default:
		return ExperienceIntermediate
	}
}

// Request describes one plan-generation call.
type Request struct {
	// MuscleGroups holds user-facing muscle terms: a split name such as
	// "push", a region such as "upper", or specific muscles.
	MuscleGroups []string `json:"muscle_groups"`
	Experience   string   `json:"experience_level,omitempty"`
	// DurationMinutes steers the exercise count; zero means 60.
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Goal            string `json:"goal,omitempty"`
	// Equipment restricts the pool by substring match when non-empty.
	Equipment string `json:"equipment,omitempty"`
}

// PlannedExercise is one prescribed exercise inside a plan.
type PlannedExercise struct {
	Name        string `json:"name"`
	Equipment   string `json:"equipment"`
	MuscleGroup string `json:"muscle_group"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
	Instruction string `json:"instruction"`
}

// Plan is a generated single-session workout. Plans are immutable after
// creation; whether one is persisted is the caller's decision.
type Plan struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Category     taxonomy.Category `json:"category,omitempty"`
	MuscleGroups []string          `json:"muscle_groups"`
	Goal         training.Goal     `json:"goal"`
	Exercises    []PlannedExercise `json:"exercises"`
}

// Program is a multi-day sequence of plans following a canned weekly split.
type Program struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Goal  training.Goal `json:"goal"`
	Days  []Plan        `json:"days"`
}
