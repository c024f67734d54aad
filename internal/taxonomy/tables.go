package taxonomy

// categoryDef holds the curated classification data for one category:
// explicit exercise aliases, the primary-muscle set used for inference,
// name fragments that suppress inference, and the three-tier priority
// table. All entries are lowercase.
type categoryDef struct {
	exerciseAliases []string
	primaryMuscles  map[string]struct{}
	exclusions      []string
	tierS           []string
	tierA           []string
	tierB           []string
}

var categories = map[Category]categoryDef{
	CategoryPush: {
		exerciseAliases: []string{
			"bench press", "overhead press", "shoulder press", "military press",
			"incline press", "decline press", "chest press", "push-up", "push up",
			"dip", "lateral raise", "front raise", "chest fly", "cable fly",
			"pec deck", "triceps pushdown", "tricep pushdown", "skull crusher",
			"triceps extension", "tricep extension", "arnold press", "landmine press",
		},
		primaryMuscles: muscleSet("chest", "shoulders", "front delts", "side delts", "triceps"),
		exclusions: []string{
			"row", "pull", "curl", "deadlift", "shrug", "face pull", "reverse fly",
		},
		tierS: []string{
			"bench press", "overhead press", "incline press", "dip",
		},
		tierA: []string{
			"shoulder press", "chest press", "close-grip bench", "push-up", "push up",
			"cable fly", "arnold press",
		},
		tierB: []string{
			"lateral raise", "front raise", "triceps pushdown", "tricep pushdown",
			"skull crusher", "triceps extension", "pec deck", "chest fly",
		},
	},
	CategoryPull: {
		exerciseAliases: []string{
			"pull-up", "pull up", "chin-up", "chin up", "row", "pulldown",
			"pullover", "deadlift", "romanian deadlift", "face pull", "shrug",
			"curl", "reverse fly", "rear delt fly", "good morning", "back extension",
		},
		primaryMuscles: muscleSet("back", "lats", "upper back", "traps", "rear delts", "biceps", "forearms"),
		exclusions: []string{
			"press", "push", "fly", "raise", "extension", "squat", "lunge",
		},
		tierS: []string{
			"pull-up", "pull up", "chin-up", "chin up", "barbell row", "deadlift",
		},
		tierA: []string{
			"pulldown", "cable row", "seated row", "dumbbell row", "t-bar row",
			"pendlay row", "chest supported row",
		},
		tierB: []string{
			"curl", "face pull", "shrug", "pullover", "reverse fly", "rear delt fly",
			"back extension",
		},
	},
	CategoryLegs: {
		exerciseAliases: []string{
			"squat", "leg press", "lunge", "leg extension", "leg curl",
			"calf raise", "hip thrust", "glute bridge", "step-up", "step up",
			"split squat", "hack squat", "sissy squat", "nordic curl", "adduction",
			"abduction",
		},
		primaryMuscles: muscleSet("quads", "quadriceps", "hamstrings", "glutes", "calves", "adductors", "abductors"),
		exclusions: []string{
			// "press" and "curl" keep bench and arm work out of leg inference;
			// leg press and leg curl are covered by the explicit alias list.
			"press", "row", "curl", "pulldown",
		},
		tierS: []string{
			"squat", "hip thrust", "leg press",
		},
		tierA: []string{
			"lunge", "split squat", "hack squat", "step-up", "step up",
			"romanian deadlift", "nordic curl",
		},
		tierB: []string{
			"leg extension", "leg curl", "calf raise", "glute bridge",
			"adduction", "abduction", "sissy squat",
		},
	},
}

// equipmentRank pairs a vocabulary keyword with its selection priority.
type equipmentRank struct {
	keyword  string
	priority int
}

// equipmentRanks is ordered so that more specific keywords are tried
// first ("dumbbell" before "bell" would matter if both existed).
var equipmentRanks = []equipmentRank{
	{keyword: "barbell", priority: 1},
	{keyword: "dumbbell", priority: 2},
	{keyword: "cable", priority: 3},
	{keyword: "machine", priority: 4},
	{keyword: "smith", priority: 4},
	{keyword: "kettlebell", priority: 5},
	{keyword: "band", priority: 6},
	{keyword: "bodyweight", priority: 7},
	{keyword: "body weight", priority: 7},
	{keyword: "body only", priority: 7},
}

const unknownEquipmentPriority = 99

func muscleSet(muscles ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(muscles))
	for _, m := range muscles {
		set[m] = struct{}{}
	}
	return set
}
