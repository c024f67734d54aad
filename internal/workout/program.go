package workout

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/repwise/repwise/internal/training"
)

// GenerateProgram builds a multi-day program by running the plan generator
// once per day of the split mapped to the requested day count. Each day
// inherits the request's goal, experience, duration and equipment; only
// the focus changes.
func (g *Generator) GenerateProgram(days int, req Request) (Program, error) {
	split, ok := splits[days]
	if !ok {
		return Program{}, fmt.Errorf("unsupported program length: %d days (supported 3 to 6)", days)
	}

	goal := training.ParseGoal(req.Goal)
	program := Program{
		ID:    uuid.NewString(),
		Title: fmt.Sprintf("%d-day %s program", days, goal),
		Goal:  goal,
		Days:  make([]Plan, 0, days),
	}

	for i, focus := range split {
		dayReq := req
		dayReq.MuscleGroups = []string{focus}
		plan, err := g.Generate(dayReq)
		if err != nil {
			return Program{}, fmt.Errorf("day %d (%s): %w", i+1, focus, err)
		}
		program.Days = append(program.Days, plan)
	}
	return program, nil
}
