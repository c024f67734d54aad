package training

import (
	"fmt"
	"sort"
	"time"
)

// DeloadPriority ranks how urgently a deload is needed.
type DeloadPriority string

// Deload priority constants.
const (
	DeloadNone     DeloadPriority = "none"
	DeloadHigh     DeloadPriority = "high"
	DeloadCritical DeloadPriority = "critical"
)

// Deload scheduling thresholds.
const (
	deloadDueWeeks      = 4
	deloadOverdueWeeks  = 6
	fatigueWindowCount  = 6
	fatigueAverageRPE   = 9.0
	daysPerTrainingWeek = 7
)

// DeloadStatus is the derived deload signal for a training block.
type DeloadStatus struct {
	NeedsDeload      bool           `json:"needs_deload"`
	Priority         DeloadPriority `json:"priority"`
	WeeksSinceDeload int            `json:"weeks_since_deload"`
	AverageRPE       float64        `json:"average_rpe,omitempty"`
	Reason           string         `json:"reason"`
}

// CheckDeload decides whether a deload week is due. It fires
// unconditionally once four cumulative training weeks have elapsed since
// the last deload and escalates past six. Independently of the calendar,
// it fires when the trailing six workouts average RPE 9 or harder.
func CheckDeload(history []Session, weeksSinceDeload int) DeloadStatus {
	status := DeloadStatus{
		Priority:         DeloadNone,
		WeeksSinceDeload: weeksSinceDeload,
	}

	avgRPE, rated := trailingAverageRPE(history, fatigueWindowCount)
	status.AverageRPE = avgRPE

	switch {
	case weeksSinceDeload > deloadOverdueWeeks:
		status.NeedsDeload = true
		status.Priority = DeloadCritical
		status.Reason = fmt.Sprintf(
			"%d weeks without a deload is past the recoverable range. Schedule a deload this week.",
			weeksSinceDeload)
	case weeksSinceDeload >= deloadDueWeeks:
		status.NeedsDeload = true
		status.Priority = DeloadHigh
		status.Reason = fmt.Sprintf(
			"%d weeks of accumulated training since the last deload. Plan a deload within the next week.",
			weeksSinceDeload)
	case rated && avgRPE >= fatigueAverageRPE:
		status.NeedsDeload = true
		status.Priority = DeloadHigh
		status.Reason = fmt.Sprintf(
			"Average effort across the last %d workouts is RPE %.1f. Fatigue is outpacing the calendar: deload early.",
			fatigueWindowCount, avgRPE)
	default:
		status.Reason = fmt.Sprintf(
			"%d weeks into the block with manageable effort levels. No deload needed yet.",
			weeksSinceDeload)
	}

	return status
}

// trailingAverageRPE averages the logged RPE across the sessions belonging
// to the most recent workout dates, up to the given workout count. The
// second return value is false when no session in the window carries an
// RPE.
func trailingAverageRPE(history []Session, workouts int) (float64, bool) {
	dates := distinctDatesDescending(history)
	if len(dates) > workouts {
		dates = dates[:workouts]
	}

	window := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		window[d] = true
	}

	var sum, count float64
	for _, s := range history {
		if s.RPE == nil || !window[dateOnly(s.Date)] {
			continue
		}
		sum += float64(*s.RPE)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / count, true
}

// distinctDatesDescending returns the distinct workout dates in history,
// newest first.
func distinctDatesDescending(history []Session) []time.Time {
	seen := make(map[time.Time]bool, len(history))
	var dates []time.Time
	for _, s := range history {
		d := dateOnly(s.Date)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

// dateOnly normalizes a timestamp to midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
