package taxonomy

import "strings"

// Canonical muscle group names used across the engine. Volume landmarks
// and the workout generator key off these.
var CanonicalMuscles = []string{
	"chest", "shoulders", "triceps",
	"back", "lats", "biceps", "forearms", "traps",
	"quads", "hamstrings", "glutes", "calves",
	"abs",
}

// muscleAliases maps non-canonical user-facing muscle names to their
// canonical muscle group.
var muscleAliases = map[string]string{
	"pecs":       "chest",
	"pectorals":  "chest",
	"delts":      "shoulders",
	"deltoids":   "shoulders",
	"quadriceps": "quads",
	"thighs":     "quads",
	"hams":       "hamstrings",
	"gluteus":    "glutes",
	"core":       "abs",
	"abdominals": "abs",
	"trapezius":  "traps",
	"upper back": "back",
}

// termExpansions maps split and region terms to their canonical muscle
// group lists.
var termExpansions = map[string][]string{
	"push":       {"chest", "shoulders", "triceps"},
	"pull":       {"back", "lats", "biceps", "forearms"},
	"legs":       {"quads", "hamstrings", "glutes", "calves"},
	"upper":      {"chest", "shoulders", "triceps", "back", "lats", "biceps"},
	"upper body": {"chest", "shoulders", "triceps", "back", "lats", "biceps"},
	"lower":      {"quads", "hamstrings", "glutes", "calves"},
	"lower body": {"quads", "hamstrings", "glutes", "calves"},
	"arms":       {"biceps", "triceps", "forearms"},
	"full body":  CanonicalMuscles,
	"full_body":  CanonicalMuscles,
}

// broadenedSynonyms maps a canonical muscle group to the synonym spelling
// variants found in exercise catalogs. Used by the generator's last
// fallback to widen an empty muscle filter.
var broadenedSynonyms = map[string][]string{
	"chest":      {"chest", "pectorals", "pecs"},
	"shoulders":  {"shoulders", "delts", "deltoids", "front delts", "side delts"},
	"triceps":    {"triceps", "tricep"},
	"back":       {"back", "upper back", "lats", "traps"},
	"lats":       {"lats", "latissimus", "back"},
	"biceps":     {"biceps", "bicep"},
	"forearms":   {"forearms", "forearm", "grip"},
	"traps":      {"traps", "trapezius"},
	"quads":      {"quads", "quadriceps", "thighs"},
	"hamstrings": {"hamstrings", "hams"},
	"glutes":     {"glutes", "gluteus", "hips"},
	"calves":     {"calves", "calf"},
	"abs":        {"abs", "abdominals", "core", "obliques"},
}

// ExpandTerm expands a user-facing muscle term into the canonical
// muscle-group list it denotes. Split terms such as "push" or "upper"
// expand to several groups; a specific muscle name canonicalises to a
// single-element list. Unrecognised terms pass through lowercased so that
// downstream matching can still succeed on catalog-specific tags.
func ExpandTerm(term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if groups, ok := termExpansions[term]; ok {
		return groups
	}
	if canonical, ok := muscleAliases[term]; ok {
		return []string{canonical}
	}
	return []string{term}
}

// BroadenMuscle returns the synonym spellings of a canonical muscle group,
// always including the group itself.
func BroadenMuscle(muscle string) []string {
	muscle = strings.ToLower(muscle)
	if synonyms, ok := broadenedSynonyms[muscle]; ok {
		return synonyms
	}
	return []string{muscle}
}

// CategoryForTerm reports whether a user-facing term names a push/pull/legs
// split, which makes the requesting operation category-based and subject
// to post-hoc plan validation.
func CategoryForTerm(term string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(term))) {
	case CategoryPush:
		return CategoryPush, true
	case CategoryPull:
		return CategoryPull, true
	case CategoryLegs:
		return CategoryLegs, true
	default:
		return CategoryUnknown, false
	}
}
