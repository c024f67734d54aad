package training

import "strings"

// Goal is the training focus of a block or a generated plan.
type Goal string

// Goal constants.
const (
	GoalStrength    Goal = "strength"
	GoalHypertrophy Goal = "hypertrophy"
	GoalEndurance   Goal = "endurance"
	GoalGeneral     Goal = "general"
)

// ParseGoal normalizes a user-facing goal string. Unrecognised values
// fall back to GoalGeneral since goals steer advice, not correctness.
func ParseGoal(s string) Goal {
	switch Goal(strings.ToLower(strings.TrimSpace(s))) {
	case GoalStrength:
		return GoalStrength
	case GoalHypertrophy:
		return GoalHypertrophy
	case GoalEndurance:
		return GoalEndurance
	default:
		return GoalGeneral
	}
}
