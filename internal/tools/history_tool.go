package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/repwise/repwise/internal/training"
)

var getRecentWorkoutsSpec = Spec{
	Name:        NameGetRecentWorkouts,
	Description: "Return logged workout sessions from the last days, optionally only one exercise.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"days": map[string]any{
				"type":        "integer",
				"description": "How many days back to look, defaults to 7",
			},
			"exercise_name": map[string]any{
				"type":        "string",
				"description": "Only sessions of this exercise",
			},
		},
	},
}

type getRecentWorkoutsParams struct {
	Days         int    `json:"days,omitempty"`
	ExerciseName string `json:"exercise_name,omitempty"`
}

type recentWorkoutsResult struct {
	Days     int                `json:"days"`
	Count    int                `json:"count"`
	Sessions []training.Session `json:"sessions"`
}

func (t *Toolset) getRecentWorkouts(ctx context.Context, arguments json.RawMessage) (any, error) {
	var params getRecentWorkoutsParams
	if err := json.Unmarshal(arguments, &params); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	days := params.Days
	if days <= 0 {
		days = 7
	}

	sessions, err := t.store.List(ctx, t.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if params.ExerciseName != "" {
		filtered := sessions[:0]
		for _, s := range sessions {
			if strings.EqualFold(s.ExerciseName, params.ExerciseName) {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	return recentWorkoutsResult{
		Days:     days,
		Count:    len(sessions),
		Sessions: sessions,
	}, nil
}

var logWorkoutSpec = Spec{
	Name: NameLogWorkout,
	Description: "Log a performed exercise: weight, reps, completed sets, optional RPE (10 is failure) " +
		"and optional target rep range.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercise_name": map[string]any{"type": "string"},
			"equipment":     map[string]any{"type": "string"},
			"muscle_group": map[string]any{
				"type":        "string",
				"description": "Optional explicit muscle tag used by volume analysis",
			},
			"weight": map[string]any{
				"type":        "number",
				"description": "Weight used; 0 for bodyweight work",
			},
			"reps": map[string]any{"type": "integer"},
			"sets": map[string]any{"type": "integer"},
			"rpe": map[string]any{
				"type":        "integer",
				"description": "Rating of perceived exertion from 1 to 10",
			},
			"target_rep_range": map[string]any{
				"type":        "string",
				"description": "Rep target such as 8-12, defaults to 8-12",
			},
		},
		"required": []string{"exercise_name", "reps"},
	},
}

type logWorkoutResult struct {
	Status       string `json:"status"`
	ExerciseName string `json:"exercise_name"`
}

func (t *Toolset) logWorkout(ctx context.Context, arguments json.RawMessage) (any, error) {
	var session training.Session
	if err := json.Unmarshal(arguments, &session); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	if err := t.store.Log(ctx, session); err != nil {
		return nil, fmt.Errorf("log workout: %w", err)
	}
	return logWorkoutResult{Status: "logged", ExerciseName: session.ExerciseName}, nil
}
