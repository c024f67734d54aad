// Package volume aggregates completed training sets per muscle group and
// classifies them against literature-derived weekly volume landmarks.
package volume

import (
	"fmt"
	"strings"
	"time"

	"github.com/repwise/repwise/internal/taxonomy"
	"github.com/repwise/repwise/internal/training"
)

// Window is the trailing aggregation window for weekly volume.
const Window = 7 * 24 * time.Hour

// Status classifies a weekly set count against a muscle's landmarks.
type Status string

// Status constants in increasing severity order.
const (
	StatusSuboptimal   Status = "suboptimal"
	StatusBelowOptimal Status = "below_optimal"
	StatusOptimal      Status = "optimal"
	StatusHigh         Status = "high"
	StatusVeryHigh     Status = "very_high"
	StatusExcessive    Status = "excessive"
	StatusUnknown      Status = "unknown"
)

// Severity orders statuses for monotonicity checks: higher volume can
// never map to a lower severity.
func (s Status) Severity() int {
	switch s {
	case StatusSuboptimal:
		return 0
	case StatusBelowOptimal:
		return 1
	case StatusOptimal:
		return 2
	case StatusHigh:
		return 3
	case StatusVeryHigh:
		return 4
	case StatusExcessive:
		return 5
	default:
		return -1
	}
}

// Report is the derived weekly volume assessment for one muscle group.
type Report struct {
	MuscleGroup    string `json:"muscle_group"`
	WeeklySets     int    `json:"weekly_sets"`
	Status         Status `json:"status"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
	// Adjustment is the suggested change in weekly sets: positive adds
	// sets, negative removes them, zero keeps the current volume.
	Adjustment int `json:"adjustment"`
}

// FrequencyStatus classifies observed weekly training frequency.
type FrequencyStatus string

// Frequency status constants.
const (
	FrequencyTooLow  FrequencyStatus = "too_low"
	FrequencyOptimal FrequencyStatus = "optimal"
	FrequencyHigh    FrequencyStatus = "high"
)

// FrequencyReport is the derived per-muscle frequency assessment.
type FrequencyReport struct {
	MuscleGroup    string          `json:"muscle_group"`
	Status         FrequencyStatus `json:"status"`
	Frequency      int             `json:"frequency"`
	Target         int             `json:"target"`
	Message        string          `json:"message"`
	Recommendation string          `json:"recommendation"`
}

// Analyzer computes volume aggregates over caller-supplied sessions using
// the exercise catalog to resolve muscle tags. It holds no mutable state
// and is safe for concurrent use.
type Analyzer struct {
	exercises map[string]taxonomy.Exercise
}

// NewAnalyzer builds an analyzer over the given exercise pool. Exercise
// names are indexed case-insensitively.
func NewAnalyzer(pool []taxonomy.Exercise) *Analyzer {
	index := make(map[string]taxonomy.Exercise, len(pool))
	for _, e := range pool {
		index[strings.ToLower(e.Name)] = e
	}
	return &Analyzer{exercises: index}
}

// WeeklySets sums the completed sets across sessions that trained the
// given muscle group within the trailing window ending at now. A session
// counts when its explicit muscle tag matches, or when its exercise's
// primary or secondary muscles match, case-insensitively.
func (a *Analyzer) WeeklySets(sessions []training.Session, muscleGroup string, now time.Time) int {
	cutoff := now.Add(-Window)

	var sets int
	for _, s := range sessions {
		if s.Date.Before(cutoff) || s.Date.After(now) {
			continue
		}
		if a.sessionTargetsMuscle(s, muscleGroup) {
			sets += s.Sets
		}
	}
	return sets
}

// Frequency counts the distinct workout days that trained the muscle
// within the trailing window and compares them against the goal's target.
func (a *Analyzer) Frequency(
	sessions []training.Session,
	muscleGroup string,
	goal training.Goal,
	now time.Time,
) FrequencyReport {
	cutoff := now.Add(-Window)

	days := make(map[string]bool)
	for _, s := range sessions {
		if s.Date.Before(cutoff) || s.Date.After(now) {
			continue
		}
		if a.sessionTargetsMuscle(s, muscleGroup) {
			days[s.Date.Format(time.DateOnly)] = true
		}
	}

	target := frequencyTarget(goal)
	report := FrequencyReport{
		MuscleGroup: muscleGroup,
		Frequency:   len(days),
		Target:      target,
	}

	switch {
	case report.Frequency < target:
		report.Status = FrequencyTooLow
		report.Message = fmt.Sprintf("%s was trained %d time(s) this week; the %s target is %d sessions.",
			muscleGroup, report.Frequency, goal, target)
		report.Recommendation = "Spread the weekly volume across more sessions for a better stimulus-to-fatigue ratio."
	case report.Frequency <= target+1:
		report.Status = FrequencyOptimal
		report.Message = fmt.Sprintf("%s was trained %d time(s) this week, right at the %s target.",
			muscleGroup, report.Frequency, goal)
		report.Recommendation = "Frequency is on target. Keep the current split."
	default:
		report.Status = FrequencyHigh
		report.Message = fmt.Sprintf("%s was trained %d time(s) this week, above the %s target of %d.",
			muscleGroup, report.Frequency, goal, target)
		report.Recommendation = "More frequency is not more growth once volume is covered. Consolidate sessions to aid recovery."
	}
	return report
}

// sessionTargetsMuscle matches a session against a muscle group, first by
// the session's explicit muscle tag, then by catalog muscle tags.
func (a *Analyzer) sessionTargetsMuscle(s training.Session, muscleGroup string) bool {
	if strings.EqualFold(s.MuscleGroup, muscleGroup) {
		return true
	}
	exercise, ok := a.exercises[strings.ToLower(s.ExerciseName)]
	if !ok {
		return false
	}
	return exercise.TargetsMuscle(muscleGroup)
}

// Assess classifies a weekly set count against the muscle's landmarks.
// Unknown muscle groups yield StatusUnknown rather than an error: this is
// an advisory subsystem, not a correctness-critical path.
func Assess(weeklySets int, muscleGroup string) Report {
	report := Report{
		MuscleGroup: muscleGroup,
		WeeklySets:  weeklySets,
	}

	lm, ok := landmarkFor(muscleGroup)
	if !ok {
		report.Status = StatusUnknown
		report.Message = fmt.Sprintf("No volume landmarks are defined for %q.", muscleGroup)
		report.Recommendation = "Track this muscle by feel: it has no researched set-count landmarks."
		return report
	}

	switch {
	case weeklySets < lm.Minimum:
		report.Status = StatusSuboptimal
		report.Adjustment = lm.OptimalLow - weeklySets
		report.Message = fmt.Sprintf("%d weekly sets for %s is below the %d-set minimum for growth.",
			weeklySets, muscleGroup, lm.Minimum)
		report.Recommendation = fmt.Sprintf("Add roughly %d weekly sets to reach the optimal %d-%d range.",
			report.Adjustment, lm.OptimalLow, lm.OptimalHigh)
	case weeklySets < lm.OptimalLow:
		report.Status = StatusBelowOptimal
		report.Adjustment = lm.OptimalLow - weeklySets
		report.Message = fmt.Sprintf("%d weekly sets for %s clears the minimum but sits under the optimal %d-%d range.",
			weeklySets, muscleGroup, lm.OptimalLow, lm.OptimalHigh)
		report.Recommendation = fmt.Sprintf("Add %d set(s) across the week to enter the optimal range.", report.Adjustment)
	case weeklySets <= lm.OptimalHigh:
		report.Status = StatusOptimal
		report.Message = fmt.Sprintf("%d weekly sets for %s is inside the optimal %d-%d range.",
			weeklySets, muscleGroup, lm.OptimalLow, lm.OptimalHigh)
		report.Recommendation = "Volume is on target. Progress load or reps before adding sets."
	case weeklySets <= lm.Maximum:
		report.Status = StatusHigh
		report.Message = fmt.Sprintf("%d weekly sets for %s is above optimal but still recoverable (max %d).",
			weeklySets, muscleGroup, lm.Maximum)
		report.Recommendation = "Hold here only if recovery markers stay good; this volume is hard to sustain."
	case weeklySets <= lm.Advanced:
		report.Status = StatusVeryHigh
		report.Adjustment = lm.OptimalHigh - weeklySets
		report.Message = fmt.Sprintf("%d weekly sets for %s exceeds the recoverable ceiling of %d.",
			weeklySets, muscleGroup, lm.Maximum)
		report.Recommendation = fmt.Sprintf("Cut %d set(s) back toward the optimal range before progress stalls.",
			-report.Adjustment)
	default:
		report.Status = StatusExcessive
		report.Adjustment = lm.OptimalHigh - weeklySets
		report.Message = fmt.Sprintf("%d weekly sets for %s is past even the advanced ceiling of %d.",
			weeklySets, muscleGroup, lm.Advanced)
		report.Recommendation = "This much volume returns nothing extra. Deload, then rebuild inside the optimal range."
	}
	return report
}

// frequencyTarget is the goal-specific optimal weekly frequency.
func frequencyTarget(goal training.Goal) int {
	if goal == training.GoalStrength {
		return 4
	}
	return 2
}
