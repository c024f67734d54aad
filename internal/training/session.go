// Package training implements the progressive overload engine: next-session
// prescriptions from the most recent performance, multi-session trend
// analysis, and deload detection.
package training

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Session is a single performed instance of one exercise on one date.
// Sessions are produced by the workout-logging collaborator and are
// read-only to this engine.
type Session struct {
	Date         time.Time `json:"date"`
	ExerciseName string    `json:"exercise_name"`
	Equipment    string    `json:"equipment"`
	// MuscleGroup is an optional explicit muscle tag attached by the
	// logger, used by volume analysis in addition to catalog muscle tags.
	MuscleGroup string  `json:"muscle_group,omitempty"`
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	Sets        int     `json:"sets"`
	// RPE is reps-in-reserve style: 10 is failure, 7 means three reps left.
	RPE            *int   `json:"rpe,omitempty"`
	TargetRepRange string `json:"target_rep_range,omitempty"`
}

// RepRange is an inclusive rep target such as 8-12.
type RepRange struct {
	Low  int
	High int
}

func (r RepRange) String() string {
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}

// DefaultRepRange is assumed when a session carries no target.
var DefaultRepRange = RepRange{Low: 8, High: 12}

// ParseRepRange parses a "low-high" rep range spec. A single number is
// treated as a fixed target (low == high).
func ParseRepRange(spec string) (RepRange, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return RepRange{}, fmt.Errorf("empty rep range")
	}

	low, high, found := strings.Cut(spec, "-")
	if !found {
		high = low
	}

	lowReps, err := strconv.Atoi(strings.TrimSpace(low))
	if err != nil {
		return RepRange{}, fmt.Errorf("parse rep range %q: %w", spec, err)
	}
	highReps, err := strconv.Atoi(strings.TrimSpace(high))
	if err != nil {
		return RepRange{}, fmt.Errorf("parse rep range %q: %w", spec, err)
	}
	if lowReps <= 0 || highReps < lowReps {
		return RepRange{}, fmt.Errorf("invalid rep range %q", spec)
	}

	return RepRange{Low: lowReps, High: highReps}, nil
}

// InsufficientHistoryError reports that an analysis needs more sessions
// than the caller supplied. It is recoverable: callers surface it as a
// constructive message rather than a failure.
type InsufficientHistoryError struct {
	Required int
	Got      int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("need at least %d sessions for analysis, have %d", e.Required, e.Got)
}
