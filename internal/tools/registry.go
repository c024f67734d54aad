// Package tools exposes the recommendation engines as a closed set of
// named operations that can be dispatched by name, either from the HTTP
// API or from an LLM function-calling loop.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/repwise/repwise/internal/errors"
)

// Name identifies one callable tool. The set of names is closed: every
// valid Name has a constant below and anything else fails dispatch.
type Name string

// Tool names.
const (
	NameGenerateWorkoutPlan          Name = "generateWorkoutPlan"
	NameGenerateProgram              Name = "generateProgram"
	NameAnalyzeWeeklyVolume          Name = "analyzeWeeklyVolume"
	NameCheckTrainingFrequency       Name = "checkTrainingFrequency"
	NameGetProgressiveOverloadAdvice Name = "getProgressiveOverloadAdvice"
	NameAnalyzeProgressionTrend      Name = "analyzeProgressionTrend"
	NameCheckDeloadStatus            Name = "checkDeloadStatus"
	NameListExercises                Name = "listExercises"
	NameGetRecentWorkouts            Name = "getRecentWorkouts"
	NameLogWorkout                   Name = "logWorkout"
)

// ErrToolNotFound is returned by Execute for names outside the registry.
var ErrToolNotFound = errors.NewSentinel("tool not found")

// Handler executes one tool call. Arguments arrive as the raw JSON the
// caller supplied; results must be JSON-serialisable.
type Handler func(ctx context.Context, arguments json.RawMessage) (any, error)

// Spec describes one tool for schema export: its name, a description for
// the model or API consumer, and a JSON-schema parameter object.
type Spec struct {
	Name        Name
	Description string
	Parameters  map[string]any
}

// Registry holds the registered tools. It is an explicit instance wired
// at startup; there is no package-level registration.
type Registry struct {
	specs    []Spec
	handlers map[Name]Handler
	logger   *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		handlers: make(map[Name]Handler),
		logger:   logger,
	}
}

// Register adds a tool. Registering a name again replaces the earlier
// spec and handler while keeping its position in the export order.
func (r *Registry) Register(spec Spec, handler Handler) error {
	if spec.Name == "" {
		return fmt.Errorf("tool spec has no name")
	}
	if handler == nil {
		return fmt.Errorf("tool %s has no handler", spec.Name)
	}
	if _, ok := r.handlers[spec.Name]; ok {
		for i := range r.specs {
			if r.specs[i].Name == spec.Name {
				r.specs[i] = spec
				break
			}
		}
	} else {
		r.specs = append(r.specs, spec)
	}
	r.handlers[spec.Name] = handler
	return nil
}

// Specs returns the registered tool descriptions in registration order.
func (r *Registry) Specs() []Spec {
	specs := make([]Spec, len(r.specs))
	copy(specs, r.specs)
	return specs
}

// Execute dispatches one tool call by name.
func (r *Registry) Execute(ctx context.Context, name Name, arguments json.RawMessage) (any, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	start := time.Now()
	result, err := handler(ctx, arguments)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "tool call failed",
			slog.String("tool", string(name)),
			slog.Duration("duration", time.Since(start)),
			errors.SlogError(err))
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "tool call completed",
		slog.String("tool", string(name)),
		slog.Duration("duration", time.Since(start)))
	return result, nil
}
