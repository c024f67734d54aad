package tools

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/repwise/repwise/internal/history"
	"github.com/repwise/repwise/internal/taxonomy"
	"github.com/repwise/repwise/internal/volume"
	"github.com/repwise/repwise/internal/workout"
)

// Toolset owns the engine collaborators behind the tools and registers
// one handler per tool name.
type Toolset struct {
	exercises []taxonomy.Exercise
	generator *workout.Generator
	analyzer  *volume.Analyzer
	store     *history.Store
	logger    *slog.Logger

	// now is swapped out in tests for deterministic time windows.
	now func() time.Time
}

func NewToolset(exercises []taxonomy.Exercise, store *history.Store, logger *slog.Logger) (*Toolset, error) {
	generator, err := workout.NewGenerator(exercises)
	if err != nil {
		return nil, fmt.Errorf("new generator: %w", err)
	}
	return &Toolset{
		exercises: exercises,
		generator: generator,
		analyzer:  volume.NewAnalyzer(exercises),
		store:     store,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// RegisterAll wires every tool into the registry.
func (t *Toolset) RegisterAll(r *Registry) error {
	registrations := []struct {
		spec    Spec
		handler Handler
	}{
		{generateWorkoutPlanSpec, t.generateWorkoutPlan},
		{generateProgramSpec, t.generateProgram},
		{analyzeWeeklyVolumeSpec, t.analyzeWeeklyVolume},
		{checkTrainingFrequencySpec, t.checkTrainingFrequency},
		{progressiveOverloadAdviceSpec, t.progressiveOverloadAdvice},
		{analyzeProgressionTrendSpec, t.analyzeProgressionTrend},
		{checkDeloadStatusSpec, t.checkDeloadStatus},
		{listExercisesSpec, t.listExercises},
		{getRecentWorkoutsSpec, t.getRecentWorkouts},
		{logWorkoutSpec, t.logWorkout},
	}
	for _, reg := range registrations {
		if err := r.Register(reg.spec, reg.handler); err != nil {
			return fmt.Errorf("register %s: %w", reg.spec.Name, err)
		}
	}
	return nil
}
