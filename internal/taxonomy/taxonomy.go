// Package taxonomy classifies exercises into functional categories and
// quality tiers from curated research priorities.
package taxonomy

import (
	"slices"
	"sort"
	"strings"
)

// Category is the functional movement classification of an exercise.
type Category string

// Category constants. CategoryUnknown is returned when neither the curated
// exercise lists nor muscle-tag inference produce a match.
const (
	CategoryPush    Category = "push"
	CategoryPull    Category = "pull"
	CategoryLegs    Category = "legs"
	CategoryUnknown Category = "unknown"
)

// categoryOrder is the fixed evaluation order used to break ties when an
// exercise overlaps more than one category's muscle set. Explicit-list
// matches always win over muscle-tag inference regardless of this order.
var categoryOrder = []Category{CategoryPush, CategoryPull, CategoryLegs}

// Tier is a curated exercise-quality ranking used only to order selection,
// never to filter eligibility.
type Tier string

// Tier constants from best (S) to baseline (B).
const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
)

// Exercise is immutable reference data describing one exercise. It is
// loaded once at process start from the exercise catalog and never mutated.
type Exercise struct {
	Name             string   `json:"name"`
	Equipment        string   `json:"equipment"`
	PrimaryMuscles   []string `json:"primary_muscles"`
	SecondaryMuscles []string `json:"secondary_muscles"`
	Difficulty       string   `json:"difficulty"`
	Instructions     string   `json:"instructions,omitempty"`
}

// Muscles returns the primary and secondary muscle tags combined, in order.
func (e Exercise) Muscles() []string {
	return slices.Concat(e.PrimaryMuscles, e.SecondaryMuscles)
}

// TargetsMuscle reports whether the exercise targets the given muscle,
// matched case-insensitively against both muscle tag lists.
func (e Exercise) TargetsMuscle(muscle string) bool {
	muscle = strings.ToLower(muscle)
	for _, m := range e.Muscles() {
		if strings.ToLower(m) == muscle {
			return true
		}
	}
	return false
}

// Classify assigns exactly one category to an exercise.
//
// Classification first attempts a name/alias match against the fixed
// per-category exercise lists, taking the category whose alias matches
// most specifically so "leg curl" lands in legs rather than pull's bare
// "curl". On a miss it falls back to muscle-tag overlap against each
// category's primary-muscle set, with per-category exclusion lists
// suppressing false positives such as rowing movements landing in push.
// Categories are evaluated in the fixed order push, pull, legs.
func Classify(e Exercise) Category {
	name := strings.ToLower(e.Name)

	best := CategoryUnknown
	bestLen := 0
	for _, c := range categoryOrder {
		if n := longestAliasMatch(name, categories[c].exerciseAliases); n > bestLen {
			best, bestLen = c, n
		}
	}
	if best != CategoryUnknown {
		return best
	}

	for _, c := range categoryOrder {
		def := categories[c]
		if matchesAnyAlias(name, def.exclusions) {
			continue
		}
		if overlapsMuscles(e, def.primaryMuscles) {
			return c
		}
	}

	return CategoryUnknown
}

// TierOf returns the quality tier of an exercise within one category.
// Exercises absent from the category's priority table default to TierB.
// The permissive default keeps unknown exercises selectable.
func TierOf(name string, c Category) Tier {
	switch tierRank(name, c) {
	case rankTierS:
		return TierS
	case rankTierA:
		return TierA
	default:
		return TierB
	}
}

// Tier ranks. rankUnlisted orders exercises missing from the priority
// table after explicit tier B entries.
const (
	rankTierS = iota
	rankTierA
	rankTierB
	rankUnlisted
)

// tierRank resolves the ordering rank of an exercise name within a
// category, distinguishing explicit tier B entries from unlisted ones.
func tierRank(name string, c Category) int {
	def, ok := categories[c]
	if !ok {
		return rankUnlisted
	}
	name = strings.ToLower(name)
	for rank, aliases := range [][]string{def.tierS, def.tierA, def.tierB} {
		if matchesAnyAlias(name, aliases) {
			return rank
		}
	}
	return rankUnlisted
}

// EquipmentPriority returns the selection preference of an equipment tag,
// lower being preferred. The tag is matched by substring against a small
// equipment vocabulary; unrecognised equipment ranks 99.
func EquipmentPriority(tag string) int {
	tag = strings.ToLower(tag)
	for _, eq := range equipmentRanks {
		if strings.Contains(tag, eq.keyword) {
			return eq.priority
		}
	}
	return unknownEquipmentPriority
}

// Prioritize orders exercises for selection within a category: tier S
// first, then A, then B, then exercises missing from the priority table.
// Order within a tier is preserved.
func Prioritize(exercises []Exercise, c Category) []Exercise {
	ordered := make([]Exercise, len(exercises))
	copy(ordered, exercises)
	sort.SliceStable(ordered, func(i, j int) bool {
		return tierRank(ordered[i].Name, c) < tierRank(ordered[j].Name, c)
	})
	return ordered
}

// matchesAnyAlias reports whether a lowercase exercise name equals or
// contains any of the given lowercase aliases.
func matchesAnyAlias(name string, aliases []string) bool {
	return longestAliasMatch(name, aliases) > 0
}

// longestAliasMatch returns the length of the longest alias that the
// lowercase exercise name equals or contains, or zero on no match.
func longestAliasMatch(name string, aliases []string) int {
	longest := 0
	for _, alias := range aliases {
		if len(alias) > longest && strings.Contains(name, alias) {
			longest = len(alias)
		}
	}
	return longest
}

// overlapsMuscles reports whether any of the exercise's muscle tags appear
// in the given muscle set.
func overlapsMuscles(e Exercise, muscles map[string]struct{}) bool {
	for _, m := range e.Muscles() {
		if _, ok := muscles[strings.ToLower(m)]; ok {
			return true
		}
	}
	return false
}
