package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/repwise/repwise/internal/errors"
	"github.com/repwise/repwise/internal/training"
)

var progressiveOverloadAdviceSpec = Spec{
	Name: NameGetProgressiveOverloadAdvice,
	Description: "Recommend weight, reps and sets for the next session of an exercise based on the " +
		"most recent logged performance and its RPE.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercise_name": map[string]any{
				"type":        "string",
				"description": "Exercise to advise on",
			},
			"target_rep_range": map[string]any{
				"type":        "string",
				"description": "Override target rep range such as 8-12; defaults to the range logged with the session",
			},
		},
		"required": []string{"exercise_name"},
	},
}

type progressiveOverloadParams struct {
	ExerciseName   string `json:"exercise_name"`
	TargetRepRange string `json:"target_rep_range,omitempty"`
}

type progressiveOverloadResult struct {
	ExerciseName   string                  `json:"exercise_name"`
	LastSession    training.Session        `json:"last_session"`
	Recommendation training.Recommendation `json:"recommendation"`
}

func (t *Toolset) progressiveOverloadAdvice(ctx context.Context, arguments json.RawMessage) (any, error) {
	var params progressiveOverloadParams
	if err := json.Unmarshal(arguments, &params); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	if params.ExerciseName == "" {
		return nil, fmt.Errorf("exercise_name is required")
	}

	sessions, err := t.store.ListByExercise(ctx, params.ExerciseName, 1)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		return recoverable(
			fmt.Errorf("no logged sessions for %s", params.ExerciseName),
			"log a session first, then ask again"), nil
	}

	last := sessions[0]
	target := training.DefaultRepRange
	spec := params.TargetRepRange
	if spec == "" {
		spec = last.TargetRepRange
	}
	if spec != "" {
		if target, err = training.ParseRepRange(spec); err != nil {
			return nil, fmt.Errorf("target rep range: %w", err)
		}
	}

	return progressiveOverloadResult{
		ExerciseName:   last.ExerciseName,
		LastSession:    last,
		Recommendation: training.Recommend(last, target),
	}, nil
}

var analyzeProgressionTrendSpec = Spec{
	Name: NameAnalyzeProgressionTrend,
	Description: "Analyze the volume trend across recent sessions of an exercise: progressing, " +
		"slow progress, stagnant or regressing, plus plateau detection.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercise_name": map[string]any{
				"type":        "string",
				"description": "Exercise to analyze",
			},
			"session_count": map[string]any{
				"type":        "integer",
				"description": "How many recent sessions to consider, defaults to 10",
			},
		},
		"required": []string{"exercise_name"},
	},
}

type analyzeProgressionTrendParams struct {
	ExerciseName string `json:"exercise_name"`
	SessionCount int    `json:"session_count,omitempty"`
}

type progressionTrendResult struct {
	ExerciseName string         `json:"exercise_name"`
	Sessions     int            `json:"sessions_analyzed"`
	Trend        training.Trend `json:"trend"`
	Plateau      *bool          `json:"plateau,omitempty"`
}

func (t *Toolset) analyzeProgressionTrend(ctx context.Context, arguments json.RawMessage) (any, error) {
	var params analyzeProgressionTrendParams
	if err := json.Unmarshal(arguments, &params); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	if params.ExerciseName == "" {
		return nil, fmt.Errorf("exercise_name is required")
	}
	limit := params.SessionCount
	if limit <= 0 {
		limit = 10
	}

	sessions, err := t.store.ListByExercise(ctx, params.ExerciseName, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	trend, err := training.AnalyzeTrend(sessions)
	var insufficient *training.InsufficientHistoryError
	if errors.As(err, &insufficient) {
		return recoverable(err, fmt.Sprintf("log at least %d sessions of %s to see a trend",
			insufficient.Required, params.ExerciseName)), nil
	}
	if err != nil {
		return nil, err
	}

	result := progressionTrendResult{
		ExerciseName: params.ExerciseName,
		Sessions:     len(sessions),
		Trend:        trend,
	}
	// Plateau detection needs one session more than the trend itself;
	// leave it out rather than failing the whole analysis.
	if plateau, plateauErr := training.DetectPlateau(sessions); plateauErr == nil {
		result.Plateau = &plateau
	}
	return result, nil
}

var checkDeloadStatusSpec = Spec{
	Name: NameCheckDeloadStatus,
	Description: "Check whether a deload week is due, from weeks of continuous training and " +
		"average RPE across recent workouts.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"weeks_since_deload": map[string]any{
				"type":        "integer",
				"description": "Weeks of continuous training since the last deload or break",
			},
		},
		"required": []string{"weeks_since_deload"},
	},
}

type checkDeloadStatusParams struct {
	WeeksSinceDeload int `json:"weeks_since_deload"`
}

func (t *Toolset) checkDeloadStatus(ctx context.Context, arguments json.RawMessage) (any, error) {
	var params checkDeloadStatusParams
	if err := json.Unmarshal(arguments, &params); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	if params.WeeksSinceDeload < 0 {
		return nil, fmt.Errorf("weeks_since_deload cannot be negative")
	}

	// Eight weeks of history comfortably covers the trailing fatigue window.
	sessions, err := t.store.List(ctx, t.now().AddDate(0, 0, -8*7))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return training.CheckDeload(sessions, params.WeeksSinceDeload), nil
}
