package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/repwise/repwise/internal/errors"
	"github.com/repwise/repwise/internal/workout"
)

var generateWorkoutPlanSpec = Spec{
	Name: NameGenerateWorkoutPlan,
	Description: "Generate a single workout plan for the requested muscle groups or training split. " +
		"Muscle groups accept specific muscles (chest, hamstrings), regions (upper, arms) or split names (push, pull, legs).",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"muscle_groups": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Muscle groups, regions or a split name to train",
			},
			"experience_level": map[string]any{
				"type": "string",
				"enum": []string{"beginner", "intermediate", "advanced"},
			},
			"duration_minutes": map[string]any{
				"type":        "integer",
				"description": "Available workout time in minutes, defaults to 60",
			},
			"goal": map[string]any{
				"type": "string",
				"enum": []string{"strength", "hypertrophy", "endurance", "general"},
			},
			"equipment": map[string]any{
				"type":        "string",
				"description": "Restrict exercise selection to this equipment, e.g. dumbbell",
			},
		},
		"required": []string{"muscle_groups"},
	},
}

func (t *Toolset) generateWorkoutPlan(_ context.Context, arguments json.RawMessage) (any, error) {
	var req workout.Request
	if err := json.Unmarshal(arguments, &req); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	plan, err := t.generator.Generate(req)
	if errors.Is(err, workout.ErrNoExercisesFound) {
		return recoverable(err, "try broader muscle groups or drop the equipment filter"), nil
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

var generateProgramSpec = Spec{
	Name: NameGenerateProgram,
	Description: "Generate a multi-day weekly training program. " +
		"3 days follows push/pull/legs, 4 days upper/lower, 5 days a body-part split, 6 days push/pull/legs twice.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"days_per_week": map[string]any{
				"type":        "integer",
				"description": "Training days per week, 3 to 6",
			},
			"experience_level": map[string]any{
				"type": "string",
				"enum": []string{"beginner", "intermediate", "advanced"},
			},
			"duration_minutes": map[string]any{"type": "integer"},
			"goal": map[string]any{
				"type": "string",
				"enum": []string{"strength", "hypertrophy", "endurance", "general"},
			},
			"equipment": map[string]any{"type": "string"},
		},
		"required": []string{"days_per_week"},
	},
}

type generateProgramParams struct {
	DaysPerWeek     int    `json:"days_per_week"`
	Experience      string `json:"experience_level,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Goal            string `json:"goal,omitempty"`
	Equipment       string `json:"equipment,omitempty"`
}

func (t *Toolset) generateProgram(_ context.Context, arguments json.RawMessage) (any, error) {
	var params generateProgramParams
	if err := json.Unmarshal(arguments, &params); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	program, err := t.generator.GenerateProgram(params.DaysPerWeek, workout.Request{
		Experience:      params.Experience,
		DurationMinutes: params.DurationMinutes,
		Goal:            params.Goal,
		Equipment:       params.Equipment,
	})
	if errors.Is(err, workout.ErrNoExercisesFound) {
		return recoverable(err, "drop the equipment filter or pick a different split"), nil
	}
	if err != nil {
		return nil, err
	}
	return program, nil
}

// recoverable renders an expected domain condition as a result payload so
// that tool consumers show a constructive message instead of failing.
func recoverable(err error, suggestion string) map[string]string {
	return map[string]string{
		"error":      err.Error(),
		"suggestion": suggestion,
	}
}
