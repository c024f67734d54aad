package workout

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/repwise/repwise/internal/taxonomy"
	"github.com/repwise/repwise/internal/training"
)

// Generator builds workout plans from an immutable exercise pool.
type Generator struct {
	pool []taxonomy.Exercise
}

// NewGenerator constructs a plan generator over the exercise catalog.
func NewGenerator(pool []taxonomy.Exercise) (*Generator, error) {
	if len(pool) == 0 {
		return nil, errors.New("exercise pool cannot be empty")
	}
	return &Generator{pool: pool}, nil
}

// relaxation is one step of the generator's fallback policy. Steps are
// applied in order until one yields a non-empty pool; this keeps the
// fallback policy data rather than nested conditionals.
type relaxation struct {
	name      string
	muscles   func([]string) []string
	equipment func(string) string
}

func keepMuscles(m []string) []string { return m }
func keepEquipment(e string) string   { return e }
func dropEquipment(string) string     { return "" }

// relaxations: as requested, then without the equipment constraint, then
// with muscle terms broadened to their synonym spellings.
var relaxations = []relaxation{
	{name: "as requested", muscles: keepMuscles, equipment: keepEquipment},
	{name: "without equipment filter", muscles: keepMuscles, equipment: dropEquipment},
	{name: "broadened muscle terms", muscles: broadenMuscles, equipment: dropEquipment},
}

// broadenMuscles widens each canonical muscle to its catalog synonym
// spellings, deduplicated, order preserved.
func broadenMuscles(muscles []string) []string {
	seen := make(map[string]bool)
	var broadened []string
	for _, m := range muscles {
		for _, synonym := range taxonomy.BroadenMuscle(m) {
			if !seen[synonym] {
				seen[synonym] = true
				broadened = append(broadened, synonym)
			}
		}
	}
	return broadened
}

// Generate composes a single-session plan for the request. It fails with
// ErrNoExercisesFound when every fallback step yields an empty pool, and
// with a ValidationError when a category-based plan contains an exercise
// outside the requested category.
func (g *Generator) Generate(req Request) (Plan, error) {
	if len(req.MuscleGroups) == 0 {
		return Plan{}, errors.New("at least one muscle group is required")
	}

	goal := training.ParseGoal(req.Goal)
	level := ParseExperience(req.Experience)
	duration := req.DurationMinutes
	if duration <= 0 {
		duration = standardWorkoutMinutes
	}

	category, isCategory := requestCategory(req.MuscleGroups)
	muscles := expandMuscles(req.MuscleGroups)

	pool, err := g.resolvePool(muscles, category, isCategory, req.Equipment)
	if err != nil {
		return Plan{}, err
	}

	count := exerciseCountFor(duration)
	selected := pickExercises(pool, category, isCategory, goal, count)

	if isCategory {
		if err := validateCategory(selected, category); err != nil {
			return Plan{}, err
		}
	}

	tmpl := templateFor(goal, level)
	planned := make([]PlannedExercise, len(selected))
	for i, e := range selected {
		planned[i] = plannedExercise(e, tmpl)
	}

	plan := Plan{
		ID:           uuid.NewString(),
		Title:        titleFor(req.MuscleGroups, goal),
		MuscleGroups: muscles,
		Goal:         goal,
		Exercises:    planned,
	}
	if isCategory {
		plan.Category = category
	}
	return plan, nil
}

// requestCategory reports whether the request is a push/pull/legs split,
// which switches filtering to classification and enables post-hoc
// validation.
func requestCategory(terms []string) (taxonomy.Category, bool) {
	if len(terms) != 1 {
		return taxonomy.CategoryUnknown, false
	}
	return taxonomy.CategoryForTerm(terms[0])
}

// expandMuscles expands every requested term into canonical muscle groups,
// deduplicated, order preserved.
func expandMuscles(terms []string) []string {
	seen := make(map[string]bool)
	var muscles []string
	for _, term := range terms {
		for _, m := range taxonomy.ExpandTerm(term) {
			if !seen[m] {
				seen[m] = true
				muscles = append(muscles, m)
			}
		}
	}
	return muscles
}

// resolvePool runs the relaxation steps in order until one produces a
// non-empty pool.
func (g *Generator) resolvePool(
	muscles []string,
	category taxonomy.Category,
	isCategory bool,
	equipment string,
) ([]taxonomy.Exercise, error) {
	for _, step := range relaxations {
		filtered := g.filterPool(step.muscles(muscles), category, isCategory, step.equipment(equipment))
		if len(filtered) > 0 {
			return filtered, nil
		}
	}
	return nil, fmt.Errorf("%w: muscles %s", ErrNoExercisesFound, strings.Join(muscles, ", "))
}

// filterPool filters the catalog by category (for split requests) or
// muscle-tag overlap, then by equipment substring when given.
func (g *Generator) filterPool(
	muscles []string,
	category taxonomy.Category,
	isCategory bool,
	equipment string,
) []taxonomy.Exercise {
	equipment = strings.ToLower(equipment)

	var filtered []taxonomy.Exercise
	for _, e := range g.pool {
		if isCategory {
			if taxonomy.Classify(e) != category {
				continue
			}
		} else if !targetsAny(e, muscles) {
			continue
		}
		if equipment != "" && !strings.Contains(strings.ToLower(e.Equipment), equipment) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func targetsAny(e taxonomy.Exercise, muscles []string) bool {
	for _, m := range muscles {
		if e.TargetsMuscle(m) {
			return true
		}
	}
	return false
}

// tierSelectionOrder exhausts higher tiers before lower ones.
var tierSelectionOrder = []taxonomy.Tier{taxonomy.TierS, taxonomy.TierA, taxonomy.TierB}

// pickExercises draws count exercises from the pool using the goal's tier
// mix. Within a tier the draw is random; an exercise is never selected
// twice; shortfalls in one tier spill into the next, higher tiers first.
func pickExercises(
	pool []taxonomy.Exercise,
	category taxonomy.Category,
	isCategory bool,
	goal training.Goal,
	count int,
) []taxonomy.Exercise {
	if count >= len(pool) {
		count = len(pool)
	}

	buckets := make(map[taxonomy.Tier][]taxonomy.Exercise, len(tierSelectionOrder))
	for _, e := range pool {
		c := category
		if !isCategory {
			c = taxonomy.Classify(e)
		}
		tier := taxonomy.TierOf(e.Name, c)
		buckets[tier] = append(buckets[tier], e)
	}
	for _, tier := range tierSelectionOrder {
		bucket := buckets[tier]
		rand.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
	}

	quotas := tierQuotas(goal, count)
	selected := make([]taxonomy.Exercise, 0, count)
	for i, tier := range tierSelectionOrder {
		take := min(quotas[i], len(buckets[tier]))
		selected = append(selected, buckets[tier][:take]...)
		buckets[tier] = buckets[tier][take:]
	}

	// Fill any shortfall, exhausting higher tiers first.
	for _, tier := range tierSelectionOrder {
		for len(selected) < count && len(buckets[tier]) > 0 {
			selected = append(selected, buckets[tier][0])
			buckets[tier] = buckets[tier][1:]
		}
	}

	return selected
}

// tierQuotas converts the goal's tier mix into per-tier target counts in
// S, A, B order.
func tierQuotas(goal training.Goal, count int) [3]int {
	mix, ok := tierMixes[goal]
	if !ok {
		mix = tierMixes[training.GoalGeneral]
	}

	s := int(math.Round(float64(count) * mix.S))
	a := int(math.Round(float64(count) * mix.A))
	b := count - s - a
	if b < 0 {
		b = 0
	}
	return [3]int{s, a, b}
}

// validateCategory re-classifies every selected exercise and rejects the
// whole plan when any disagrees with the requested category.
func validateCategory(selected []taxonomy.Exercise, category taxonomy.Category) error {
	var offending []string
	for _, e := range selected {
		if taxonomy.Classify(e) != category {
			offending = append(offending, e.Name)
		}
	}
	if len(offending) > 0 {
		return &ValidationError{Category: category, Offending: offending}
	}
	return nil
}

// plannedExercise applies the goal template to one selected exercise.
func plannedExercise(e taxonomy.Exercise, tmpl template) PlannedExercise {
	muscle := ""
	if len(e.PrimaryMuscles) > 0 {
		muscle = e.PrimaryMuscles[0]
	}

	instruction := e.Instructions
	if instruction == "" {
		instruction = fmt.Sprintf("%d sets of %s reps, %d seconds rest. Leave one or two reps in reserve.",
			tmpl.Sets, tmpl.Reps, tmpl.RestSeconds)
	}

	return PlannedExercise{
		Name:        e.Name,
		Equipment:   e.Equipment,
		MuscleGroup: muscle,
		Sets:        tmpl.Sets,
		Reps:        tmpl.Reps,
		RestSeconds: tmpl.RestSeconds,
		Instruction: instruction,
	}
}

// titleFor builds a human-readable plan title from the requested terms
// and goal.
func titleFor(terms []string, goal training.Goal) string {
	focus := strings.Join(terms, " & ")
	if focus == "" {
		focus = "full body"
	}
	return fmt.Sprintf("%s workout (%s)", capitalize(focus), goal)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
