package training

import (
	"fmt"
	"math"
	"sort"
)

// TrendOutcome classifies progress across multiple sessions.
type TrendOutcome string

// Trend outcome constants.
const (
	TrendProgressing  TrendOutcome = "progressing"
	TrendSlowProgress TrendOutcome = "slow_progress"
	TrendStagnant     TrendOutcome = "stagnant"
	TrendRegressing   TrendOutcome = "regressing"
	TrendNeutral      TrendOutcome = "neutral"
)

// Minimum session counts for the analyses.
const (
	minTrendSessions   = 2
	minPlateauSessions = 3
)

// stagnationTolerance is the relative band within which the last three
// session volumes count as flat.
const stagnationTolerance = 0.10

// progressingThresholdPct separates clear progress from slow progress.
const progressingThresholdPct = 10.0

// Trend is the derived progress signal over a session history.
type Trend struct {
	Outcome       TrendOutcome `json:"outcome"`
	PercentChange float64      `json:"percent_change"`
	FirstVolume   float64      `json:"first_volume"`
	LastVolume    float64      `json:"last_volume"`
	Message       string       `json:"message"`
}

// AnalyzeTrend computes the progress trend over two or more sessions of
// one exercise. Sessions are sorted chronologically before analysis.
// Fewer than two sessions yields an InsufficientHistoryError.
func AnalyzeTrend(sessions []Session) (Trend, error) {
	if len(sessions) < minTrendSessions {
		return Trend{}, &InsufficientHistoryError{Required: minTrendSessions, Got: len(sessions)}
	}

	volumes := sessionVolumes(sessions)
	first, last := volumes[0], volumes[len(volumes)-1]

	trend := Trend{
		Outcome:     TrendNeutral,
		FirstVolume: first,
		LastVolume:  last,
	}

	if first <= 0 {
		trend.Message = "Not enough completed work in the earliest session to compare against."
		return trend, nil
	}
	trend.PercentChange = (last - first) / first * 100

	stagnant, err := stagnated(volumes)
	if err == nil && stagnant {
		trend.Outcome = TrendStagnant
		trend.Message = fmt.Sprintf(
			"Training volume has been flat across the last %d sessions. Consider a deload or a change of rep range.",
			minPlateauSessions)
		return trend, nil
	}

	switch {
	case trend.PercentChange > progressingThresholdPct:
		trend.Outcome = TrendProgressing
		trend.Message = fmt.Sprintf("Training volume is up %.1f%% across %d sessions. Keep doing what you are doing.",
			trend.PercentChange, len(sessions))
	case trend.PercentChange >= 0:
		trend.Outcome = TrendSlowProgress
		trend.Message = fmt.Sprintf("Training volume is up %.1f%% across %d sessions. Slow but real progress.",
			trend.PercentChange, len(sessions))
	default:
		trend.Outcome = TrendRegressing
		trend.Message = fmt.Sprintf("Training volume is down %.1f%% across %d sessions. Check recovery, sleep and nutrition.",
			-trend.PercentChange, len(sessions))
	}

	return trend, nil
}

// DetectPlateau reports whether the last three session volumes sit within
// a 10% band of the first of those three. It needs at least three
// sessions and returns an InsufficientHistoryError otherwise.
func DetectPlateau(sessions []Session) (bool, error) {
	if len(sessions) < minPlateauSessions {
		return false, &InsufficientHistoryError{Required: minPlateauSessions, Got: len(sessions)}
	}
	return stagnated(sessionVolumes(sessions))
}

// stagnated checks the flat-volume condition over the last three volumes.
func stagnated(volumes []float64) (bool, error) {
	if len(volumes) < minPlateauSessions {
		return false, &InsufficientHistoryError{Required: minPlateauSessions, Got: len(volumes)}
	}

	window := volumes[len(volumes)-minPlateauSessions:]
	reference := window[0]
	if reference <= 0 {
		return false, nil
	}
	for _, v := range window[1:] {
		if math.Abs(v-reference)/reference > stagnationTolerance {
			return false, nil
		}
	}
	return true, nil
}

// sessionVolumes computes per-session training volume, chronologically
// sorted. Volume is sets x weight x reps; bodyweight sessions (weight 0)
// count reps x sets so they still register.
func sessionVolumes(sessions []Session) []float64 {
	ordered := make([]Session, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	volumes := make([]float64, len(ordered))
	for i, s := range ordered {
		weight := s.Weight
		if weight == 0 {
			weight = 1
		}
		volumes[i] = float64(s.Sets) * weight * float64(s.Reps)
	}
	return volumes
}
