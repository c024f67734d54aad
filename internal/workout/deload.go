package workout

import "github.com/google/uuid"

// Deload derives a recovery-week variant of a plan: the same exercises at
// half the sets, rounded up so no exercise drops to zero. The input plan
// is left untouched.
func Deload(p Plan) Plan {
	out := p
	out.ID = uuid.NewString()
	out.Title = p.Title + " (deload)"
	out.Exercises = make([]PlannedExercise, len(p.Exercises))
	for i, e := range p.Exercises {
		e.Sets = (e.Sets + 1) / 2
		out.Exercises[i] = e
	}
	return out
}
