package volume

import "strings"

// Landmark holds one muscle group's weekly set-count thresholds: the
// minimum below which no growth stimulus is assumed, the optimal closed
// interval, the maximum recoverable ceiling, and the advanced ceiling
// beyond which returns diminish even for experienced trainees.
type Landmark struct {
	Minimum     int
	OptimalLow  int
	OptimalHigh int
	Maximum     int
	Advanced    int
}

// landmarks is keyed by canonical muscle group name. Values follow the
// common volume-landmark literature (MV / MEV-MAV / MRV style counts).
var landmarks = map[string]Landmark{
	"chest":      {Minimum: 8, OptimalLow: 12, OptimalHigh: 20, Maximum: 22, Advanced: 30},
	"back":       {Minimum: 8, OptimalLow: 14, OptimalHigh: 22, Maximum: 25, Advanced: 35},
	"lats":       {Minimum: 8, OptimalLow: 14, OptimalHigh: 22, Maximum: 25, Advanced: 35},
	"shoulders":  {Minimum: 6, OptimalLow: 12, OptimalHigh: 20, Maximum: 26, Advanced: 35},
	"traps":      {Minimum: 2, OptimalLow: 4, OptimalHigh: 12, Maximum: 16, Advanced: 26},
	"biceps":     {Minimum: 4, OptimalLow: 8, OptimalHigh: 14, Maximum: 20, Advanced: 26},
	"triceps":    {Minimum: 4, OptimalLow: 8, OptimalHigh: 14, Maximum: 18, Advanced: 25},
	"forearms":   {Minimum: 2, OptimalLow: 4, OptimalHigh: 10, Maximum: 15, Advanced: 20},
	"quads":      {Minimum: 6, OptimalLow: 8, OptimalHigh: 18, Maximum: 20, Advanced: 30},
	"hamstrings": {Minimum: 4, OptimalLow: 6, OptimalHigh: 12, Maximum: 16, Advanced: 20},
	"glutes":     {Minimum: 2, OptimalLow: 4, OptimalHigh: 12, Maximum: 16, Advanced: 25},
	"calves":     {Minimum: 6, OptimalLow: 8, OptimalHigh: 16, Maximum: 20, Advanced: 25},
	"abs":        {Minimum: 0, OptimalLow: 6, OptimalHigh: 16, Maximum: 20, Advanced: 25},
}

// landmarkFor resolves the landmarks of a muscle group case-insensitively.
func landmarkFor(muscleGroup string) (Landmark, bool) {
	lm, ok := landmarks[strings.ToLower(strings.TrimSpace(muscleGroup))]
	return lm, ok
}
