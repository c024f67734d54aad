package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/repwise/repwise/internal/e2etest"
	"github.com/repwise/repwise/internal/logging"
	"github.com/repwise/repwise/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout         = 30 * time.Second
	maxConcurrentOperations = 20
	numScenarios            = 100
	baseWeight              = 40.0
	weightRange             = 40
	baseReps                = 5
	repsRange               = 8
	successRateThreshold    = 95.0
	expectedArgsCount       = 2
	percentageMultiplier    = 100
)

// scenarioMuscleGroups cycles across the split terms so the load spreads
// over the whole exercise pool.
var scenarioMuscleGroups = []string{"push", "pull", "legs", "upper", "chest", "back"}

// CoachingScenario simulates one client session: log a workout, request a
// plan for the next session, and check the weekly volume.
func CoachingScenario(ctx context.Context, client *e2etest.Client, index int, logger *slog.Logger) error {
	muscleGroup := scenarioMuscleGroups[index%len(scenarioMuscleGroups)]

	logRequest := map[string]any{
		"exercise_name": "Barbell Bench Press",
		"equipment":     "barbell",
		"muscle_group":  "chest",
		"weight":        baseWeight + float64(time.Now().UnixNano()%weightRange),
		"reps":          baseReps + int(time.Now().UnixNano()%repsRange),
		"sets":          3,
		"rpe":           7,
	}
	status, err := client.PostJSON(ctx, "/api/tools/logWorkout", logRequest, nil)
	if err != nil {
		return fmt.Errorf("log workout: %w", err)
	}
	if status != 200 {
		return fmt.Errorf("log workout: unexpected status code %d", status)
	}

	planRequest := map[string]any{
		"muscle_groups": []string{muscleGroup},
		"goal":          "hypertrophy",
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

	volumeRequest := map[string]any{"muscle_groups": []string{"chest"}}
	if status, err = client.PostJSON(ctx, "/api/tools/analyzeWeeklyVolume", volumeRequest, nil); err != nil {
		return fmt.Errorf("analyze weekly volume: %w", err)
	}
	if status != 200 {
		return fmt.Errorf("analyze weekly volume: unexpected status code %d", status)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Coaching scenario completed",
		slog.Int("scenario", index),
		slog.String("muscle_group", muscleGroup))

	return nil
}

// RunLoadTest launches the scenarios with bounded concurrency and reports
// the aggregate success rate.
func RunLoadTest(ctx context.Context, client *e2etest.Client, logger *slog.Logger) error {
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting load test", slog.Int("num_scenarios", numScenarios))

	var successCount, failureCount int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for i := range numScenarios {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
			defer cancel()

			if err := CoachingScenario(scenarioCtx, client, i, logger); err != nil {
				atomic.AddInt64(&failureCount, 1)
				// Log individual failures but don't stop the entire test
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Scenario failed",
					slog.Int("scenario", i),
					slog.Any("error", err))
				return nil // Don't propagate error to avoid stopping other scenarios
			}

			atomic.AddInt64(&successCount, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount) / float64(numScenarios) * percentageMultiplier

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed",
		slog.Int64("successful", successCount),
		slog.Int64("failed", failureCount),
		slog.Float64("success_rate", successRate))

	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)

	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	client := e2etest.NewClient(url)
	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	if err := RunLoadTest(ctx, client, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Stress test successful 💪", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
