package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/repwise/repwise/internal/e2etest"
	"github.com/repwise/repwise/internal/logging"
	"github.com/repwise/repwise/internal/testhelpers"
)

const smokeTimeout = 10 * time.Second

// TestTools exercises the core tool endpoints against a running server.
func TestTools(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, smokeTimeout)
	defer cancel()

	var index struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	if err := client.GetJSON(ctx, "/api/tools", &index); err != nil {
		return fmt.Errorf("list tools: %w", err)
	}
	if len(index.Tools) == 0 {
		return fmt.Errorf("no tools registered")
	}

	logRequest := map[string]any{
		"exercise_name": "Barbell Back Squat",
		"equipment":     "barbell",
		"weight":        100,
		"reps":          5,
		"sets":          3,
		"rpe":           8,
	}
	status, err := client.PostJSON(ctx, "/api/tools/logWorkout", logRequest, nil)
	if err != nil {
		return fmt.Errorf("log workout: %w", err)
	}
	if status != 200 {
		return fmt.Errorf("log workout: unexpected status code %d", status)
	}

	planRequest := map[string]any{
		"muscle_groups":    []string{"legs"},
		"goal":             "strength",
		"duration_minutes": 45,
	}
	var plan struct {
		Result struct {
			Exercises []struct {
				Name string `json:"name"`
			} `json:"exercises"`
		} `json:"result"`
	}
	if status, err = client.PostJSON(ctx, "/api/tools/generateWorkoutPlan", planRequest, &plan); err != nil {
		return fmt.Errorf("generate workout plan: %w", err)
	}
	if status != 200 {
		return fmt.Errorf("generate workout plan: unexpected status code %d", status)
	}
	if len(plan.Result.Exercises) == 0 {
		return fmt.Errorf("generated plan has no exercises")
	}

	var advice struct {
		Result struct {
			Recommendation struct {
				Type string `json:"progression_type"`
			} `json:"recommendation"`
		} `json:"result"`
	}
	adviceRequest := map[string]any{"exercise_name": "Barbell Back Squat"}
	if status, err = client.PostJSON(ctx, "/api/tools/getProgressiveOverloadAdvice", adviceRequest, &advice); err != nil {
		return fmt.Errorf("get overload advice: %w", err)
	}
	if status != 200 {
		return fmt.Errorf("get overload advice: unexpected status code %d", status)
	}
	if advice.Result.Recommendation.Type == "" {
		return fmt.Errorf("overload advice has no recommendation")
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	client := e2etest.NewClient(url)
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestTools(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing tools", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
