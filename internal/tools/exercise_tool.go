package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/repwise/repwise/internal/catalog"
	"github.com/repwise/repwise/internal/taxonomy"
)

var listExercisesSpec = Spec{
	Name: NameListExercises,
	Description: "List exercises from the catalog, optionally filtered by muscle group, equipment " +
		"or push/pull/legs category, ordered best tier first.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"muscle_group": map[string]any{
				"type":        "string",
				"description": "Only exercises targeting this muscle",
			},
			"equipment": map[string]any{
				"type":        "string",
				"description": "Only exercises using this equipment",
			},
			"category": map[string]any{
				"type": "string",
				"enum": []string{"push", "pull", "legs"},
			},
		},
	},
}

type listExercisesParams struct {
	MuscleGroup string `json:"muscle_group,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
	Category    string `json:"category,omitempty"`
}

type exerciseSummary struct {
	Name             string            `json:"name"`
	Equipment        string            `json:"equipment"`
	Category         taxonomy.Category `json:"category"`
	Tier             taxonomy.Tier     `json:"tier"`
	PrimaryMuscles   []string          `json:"primary_muscles"`
	SecondaryMuscles []string          `json:"secondary_muscles,omitempty"`
	Difficulty       string            `json:"difficulty,omitempty"`
}

type listExercisesResult struct {
	Count     int               `json:"count"`
	Exercises []exerciseSummary `json:"exercises"`
}

func (t *Toolset) listExercises(_ context.Context, arguments json.RawMessage) (any, error) {
	var params listExercisesParams
	if err := json.Unmarshal(arguments, &params); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	var category taxonomy.Category
	if params.Category != "" {
		parsed, ok := taxonomy.CategoryForTerm(params.Category)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", params.Category)
		}
		category = parsed
	}

	filtered := catalog.Filter(t.exercises, params.MuscleGroup, params.Equipment, category)
	if category != "" {
		filtered = taxonomy.Prioritize(filtered, category)
	}

	result := listExercisesResult{
		Count:     len(filtered),
		Exercises: make([]exerciseSummary, 0, len(filtered)),
	}
	for _, e := range filtered {
		c := taxonomy.Classify(e)
		result.Exercises = append(result.Exercises, exerciseSummary{
			Name:             e.Name,
			Equipment:        e.Equipment,
			Category:         c,
			Tier:             taxonomy.TierOf(e.Name, c),
			PrimaryMuscles:   e.PrimaryMuscles,
			SecondaryMuscles: e.SecondaryMuscles,
			Difficulty:       e.Difficulty,
		})
	}
	return result, nil
}
