package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/repwise/repwise/internal/taxonomy"
	"github.com/repwise/repwise/internal/training"
	"github.com/repwise/repwise/internal/volume"
)

var analyzeWeeklyVolumeSpec = Spec{
	Name: NameAnalyzeWeeklyVolume,
	Description: "Analyze the trailing week of logged training volume per muscle group against " +
		"evidence-based set-count landmarks and suggest adjustments.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"muscle_groups": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Muscle groups to analyze; omit to cover all tracked muscles",
			},
		},
	},
}

type analyzeWeeklyVolumeParams struct {
	MuscleGroups []string `json:"muscle_groups,omitempty"`
}

type weeklyVolumeResult struct {
	WindowDays int             `json:"window_days"`
	Sessions   int             `json:"sessions_analyzed"`
	Reports    []volume.Report `json:"reports"`
}

func (t *Toolset) analyzeWeeklyVolume(ctx context.Context, arguments json.RawMessage) (any, error) {
	var params analyzeWeeklyVolumeParams
	if err := json.Unmarshal(arguments, &params); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	now := t.now()
	sessions, err := t.store.List(ctx, now.Add(-volume.Window))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	muscles := params.MuscleGroups
	if len(muscles) == 0 {
		muscles = taxonomy.CanonicalMuscles
	}

	result := weeklyVolumeResult{
		WindowDays: 7,
		Sessions:   len(sessions),
		Reports:    make([]volume.Report, 0, len(muscles)),
	}
	seen := make(map[string]bool)
	for _, raw := range muscles {
		for _, muscle := range taxonomy.ExpandTerm(raw) {
			if seen[muscle] {
				continue
			}
			seen[muscle] = true
			sets := t.analyzer.WeeklySets(sessions, muscle, now)
			result.Reports = append(result.Reports, volume.Assess(sets, muscle))
		}
	}
	return result, nil
}

var checkTrainingFrequencySpec = Spec{
	Name: NameCheckTrainingFrequency,
	Description: "Check how many distinct days a muscle group was trained in the trailing week " +
		"against the goal's frequency target.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"muscle_group": map[string]any{
				"type":        "string",
				"description": "Muscle group to check",
			},
			"goal": map[string]any{
				"type": "string",
				"enum": []string{"strength", "hypertrophy", "endurance", "general"},
			},
		},
		"required": []string{"muscle_group"},
	},
}

type checkTrainingFrequencyParams struct {
	MuscleGroup string `json:"muscle_group"`
	Goal        string `json:"goal,omitempty"`
}

func (t *Toolset) checkTrainingFrequency(ctx context.Context, arguments json.RawMessage) (any, error) {
	var params checkTrainingFrequencyParams
	if err := json.Unmarshal(arguments, &params); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	if params.MuscleGroup == "" {
		return nil, fmt.Errorf("muscle_group is required")
	}

	now := t.now()
	sessions, err := t.store.List(ctx, now.Add(-volume.Window))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return t.analyzer.Frequency(sessions, params.MuscleGroup, training.ParseGoal(params.Goal), now), nil
}
