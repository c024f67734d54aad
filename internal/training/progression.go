package training

import (
	"fmt"
	"strings"
)

// ProgressionType tags the kind of adjustment a recommendation makes.
type ProgressionType string

// Progression type constants.
const (
	ProgressionWeightIncrease            ProgressionType = "weight_increase"
	ProgressionRepIncrease               ProgressionType = "rep_increase"
	ProgressionWeightIncreaseWithRepDrop ProgressionType = "weight_increase_with_rep_drop"
	ProgressionMaintain                  ProgressionType = "maintain"
)

// Weight increments per equipment class. Bodyweight progresses by reps
// instead of load.
const (
	StandardWeightIncrement = 5.0
	DumbbellWeightIncrement = 2.5
)

// RPE thresholds for the progression rule table.
const (
	rpeEasyCeiling = 7
	rpeFailure     = 10
)

// Recommendation is the derived next-session prescription for one
// exercise. Reason is a required output surfaced verbatim to the trainee.
type Recommendation struct {
	NextWeight float64         `json:"next_weight"`
	NextReps   int             `json:"next_reps"`
	NextSets   int             `json:"next_sets"`
	Type       ProgressionType `json:"progression_type"`
	Reason     string          `json:"reason"`
	Warning    string          `json:"warning,omitempty"`
}

// Recommend computes the next prescription from the most recent session of
// an exercise and its target rep range. It is a pure function: each call
// is independent given its inputs.
//
// The rules, evaluated in order:
//  1. RPE <= 7: three or more reps in reserve, add load (or a rep for
//     bodyweight work).
//  2. RPE 8-9 below the top of the range: add a rep (double progression).
//  3. RPE 8-9 at or above the top: add load and reset reps to the bottom.
//  4. RPE 10: training to failure, hold load, add a rep, warn.
//  5. No usable RPE: repeat the prescription unchanged.
func Recommend(last Session, target RepRange) Recommendation {
	rec := Recommendation{
		NextWeight: last.Weight,
		NextReps:   last.Reps,
		NextSets:   last.Sets,
		Type:       ProgressionMaintain,
	}

	if last.RPE == nil || *last.RPE < 1 || *last.RPE > rpeFailure {
		rec.Reason = fmt.Sprintf(
			"No effort rating was logged for %.1f x %d, so repeat the same prescription and rate the next session.",
			last.Weight, last.Reps)
		return rec
	}
	rpe := *last.RPE

	increment := WeightIncrement(last.Equipment)
	bodyweight := isBodyweight(last.Equipment)

	switch {
	case rpe <= rpeEasyCeiling:
		if bodyweight {
			rec.Type = ProgressionRepIncrease
			rec.NextReps = last.Reps + 1
			rec.Reason = fmt.Sprintf(
				"%d reps at RPE %d left plenty in reserve. Bodyweight work progresses by reps: aim for %d next time.",
				last.Reps, rpe, rec.NextReps)
			return rec
		}
		rec.Type = ProgressionWeightIncrease
		rec.NextWeight = last.Weight + increment
		rec.Reason = fmt.Sprintf(
			"%.1f x %d at RPE %d left at least three reps in reserve. Increase the weight to %.1f and keep reps the same.",
			last.Weight, last.Reps, rpe, rec.NextWeight)
		return rec

	case rpe < rpeFailure && last.Reps < target.High:
		rec.Type = ProgressionRepIncrease
		rec.NextReps = last.Reps + 1
		rec.Reason = fmt.Sprintf(
			"%.1f x %d at RPE %d is solid work below the top of the %s range. Add a rep: aim for %d at the same weight.",
			last.Weight, last.Reps, rpe, target, rec.NextReps)
		return rec

	case rpe < rpeFailure:
		if bodyweight {
			rec.Type = ProgressionRepIncrease
			rec.NextReps = last.Reps + 1
			rec.Reason = fmt.Sprintf(
				"%d reps at RPE %d tops out the %s range. Without added load, keep extending the set: aim for %d reps.",
				last.Reps, rpe, target, rec.NextReps)
			return rec
		}
		rec.Type = ProgressionWeightIncreaseWithRepDrop
		rec.NextWeight = last.Weight + increment
		rec.NextReps = target.Low
		rec.Reason = fmt.Sprintf(
			"%.1f x %d at RPE %d tops out the %s range. Increase the weight to %.1f and drop back to %d reps.",
			last.Weight, last.Reps, rpe, target, rec.NextWeight, rec.NextReps)
		return rec

	default: // rpe == rpeFailure
		rec.Type = ProgressionRepIncrease
		rec.NextReps = last.Reps + 1
		rec.Reason = fmt.Sprintf(
			"%.1f x %d was taken to failure. Hold the weight and build back to %d reps.",
			last.Weight, last.Reps, rec.NextReps)
		rec.Warning = "Training to failure (RPE 10) adds fatigue faster than it adds progress. Stop one or two reps short next session."
		return rec
	}
}

// WeightIncrement returns the load increment for an equipment tag:
// 5 units for barbell, machine and cable work, 2.5 for dumbbells, 0 for
// bodyweight (which progresses by reps).
func WeightIncrement(equipment string) float64 {
	eq := strings.ToLower(equipment)
	switch {
	case isBodyweight(equipment):
		return 0
	case strings.Contains(eq, "dumbbell"):
		return DumbbellWeightIncrement
	default:
		return StandardWeightIncrement
	}
}

func isBodyweight(equipment string) bool {
	eq := strings.ToLower(equipment)
	return strings.Contains(eq, "bodyweight") ||
		strings.Contains(eq, "body weight") ||
		strings.Contains(eq, "body only")
}
