package workout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/repwise/repwise/internal/taxonomy"
	"github.com/repwise/repwise/internal/training"
)

// testPool is a small catalog with deterministic classifications and
// tiers: seven push, six pull, seven legs, plus one exercise tagged with
// a non-canonical muscle spelling.
func testPool() []taxonomy.Exercise {
	return []taxonomy.Exercise{
		{Name: "Barbell Bench Press", Equipment: "barbell", PrimaryMuscles: []string{"chest"}, SecondaryMuscles: []string{"triceps", "shoulders"}},
		{Name: "Overhead Press", Equipment: "barbell", PrimaryMuscles: []string{"shoulders"}, SecondaryMuscles: []string{"triceps"}},
		{Name: "Incline Dumbbell Press", Equipment: "dumbbell", PrimaryMuscles: []string{"chest"}},
		{Name: "Dip", Equipment: "bodyweight", PrimaryMuscles: []string{"chest", "triceps"}},
		{Name: "Cable Fly", Equipment: "cable", PrimaryMuscles: []string{"chest"}},
		{Name: "Lateral Raise", Equipment: "dumbbell", PrimaryMuscles: []string{"shoulders"}},
		{Name: "Triceps Pushdown", Equipment: "cable", PrimaryMuscles: []string{"triceps"}},

		{Name: "Pull-Up", Equipment: "bodyweight", PrimaryMuscles: []string{"lats"}, SecondaryMuscles: []string{"biceps"}},
		{Name: "Barbell Row", Equipment: "barbell", PrimaryMuscles: []string{"back"}},
		{Name: "Lat Pulldown", Equipment: "cable", PrimaryMuscles: []string{"lats"}},
		{Name: "Seated Cable Row", Equipment: "cable", PrimaryMuscles: []string{"back"}},
		{Name: "Barbell Curl", Equipment: "barbell", PrimaryMuscles: []string{"biceps"}},
		{Name: "Face Pull", Equipment: "cable", PrimaryMuscles: []string{"traps"}},

		{Name: "Barbell Back Squat", Equipment: "barbell", PrimaryMuscles: []string{"quads", "glutes"}},
		{Name: "Leg Press", Equipment: "machine", PrimaryMuscles: []string{"quads"}},
		{Name: "Walking Lunge", Equipment: "dumbbell", PrimaryMuscles: []string{"quads", "glutes"}},
		{Name: "Lying Leg Curl", Equipment: "machine", PrimaryMuscles: []string{"hamstrings"}},
		{Name: "Leg Extension", Equipment: "machine", PrimaryMuscles: []string{"quads"}},
		{Name: "Standing Calf Raise", Equipment: "machine", PrimaryMuscles: []string{"calves"}},
		{Name: "Hip Thrust", Equipment: "barbell", PrimaryMuscles: []string{"glutes"}},

		{Name: "Wrist Roller", Equipment: "cable", PrimaryMuscles: []string{"forearm"}},
	}
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(testPool())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func TestNewGeneratorEmptyPool(t *testing.T) {
	if _, err := NewGenerator(nil); err == nil {
		t.Fatal("NewGenerator(nil) did not fail")
	}
}

func TestGenerateCategoryPlan(t *testing.T) {
	g := newTestGenerator(t)

	plan, err := g.Generate(Request{
		MuscleGroups:    []string{"push"},
		Goal:            "hypertrophy",
		Experience:      "intermediate",
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if plan.ID == "" {
		t.Error("plan ID is empty")
	}
	if plan.Title != "Push workout (hypertrophy)" {
		t.Errorf("Title = %q", plan.Title)
	}
	if plan.Category != taxonomy.CategoryPush {
		t.Errorf("Category = %q, want push", plan.Category)
	}
	if plan.Goal != training.GoalHypertrophy {
		t.Errorf("Goal = %q, want hypertrophy", plan.Goal)
	}
	if diff := cmp.Diff([]string{"chest", "shoulders", "triceps"}, plan.MuscleGroups); diff != "" {
		t.Errorf("MuscleGroups mismatch (-want +got):\n%s", diff)
	}
	if len(plan.Exercises) != 6 {
		t.Fatalf("got %d exercises, want 6", len(plan.Exercises))
	}

	byName := make(map[string]taxonomy.Exercise)
	for _, e := range testPool() {
		byName[e.Name] = e
	}
	seen := make(map[string]bool)
	for _, pe := range plan.Exercises {
		if seen[pe.Name] {
			t.Errorf("exercise %q selected twice", pe.Name)
		}
		seen[pe.Name] = true
		if got := taxonomy.Classify(byName[pe.Name]); got != taxonomy.CategoryPush {
			t.Errorf("exercise %q classifies as %q inside a push plan", pe.Name, got)
		}
		if pe.Sets != 4 || pe.Reps != "8-12" || pe.RestSeconds != 90 {
			t.Errorf("exercise %q prescription = %d x %s @ %ds rest, want 4 x 8-12 @ 90s",
				pe.Name, pe.Sets, pe.Reps, pe.RestSeconds)
		}
		if pe.Instruction == "" {
			t.Errorf("exercise %q has no instruction", pe.Name)
		}
	}
}

func TestGenerateMusclePlan(t *testing.T) {
	g := newTestGenerator(t)

	plan, err := g.Generate(Request{
		MuscleGroups:    []string{"chest"},
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if plan.Category != "" {
		t.Errorf("muscle-based plan has category %q", plan.Category)
	}
	if len(plan.Exercises) != 4 {
		t.Fatalf("got %d exercises, want 4", len(plan.Exercises))
	}
	byName := make(map[string]taxonomy.Exercise)
	for _, e := range testPool() {
		byName[e.Name] = e
	}
	for _, pe := range plan.Exercises {
		if !byName[pe.Name].TargetsMuscle("chest") {
			t.Errorf("exercise %q does not target chest", pe.Name)
		}
	}
}

func TestGenerateEquipmentFilter(t *testing.T) {
	g := newTestGenerator(t)

	plan, err := g.Generate(Request{
		MuscleGroups: []string{"chest"},
		Equipment:    "barbell",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(plan.Exercises) != 1 || plan.Exercises[0].Name != "Barbell Bench Press" {
		t.Errorf("got %+v, want only the barbell bench press", plan.Exercises)
	}
}

func TestGenerateFallbackDropsEquipment(t *testing.T) {
	g := newTestGenerator(t)

	// No barbell calf work exists; the second relaxation step drops the
	// equipment constraint instead of failing.
	plan, err := g.Generate(Request{
		MuscleGroups: []string{"calves"},
		Equipment:    "barbell",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.Exercises) != 1 || plan.Exercises[0].Name != "Standing Calf Raise" {
		t.Errorf("got %+v, want the calf raise via fallback", plan.Exercises)
	}
}

func TestGenerateFallbackBroadensMuscleTerms(t *testing.T) {
	g := newTestGenerator(t)

	// The only forearm exercise is tagged "forearm" singular, so the exact
	// filter finds nothing and the last relaxation step widens to synonyms.
	plan, err := g.Generate(Request{MuscleGroups: []string{"forearms"}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.Exercises) != 1 || plan.Exercises[0].Name != "Wrist Roller" {
		t.Errorf("got %+v, want the wrist roller via synonym broadening", plan.Exercises)
	}
}

func TestGenerateNoExercisesFound(t *testing.T) {
	g := newTestGenerator(t)

	_, err := g.Generate(Request{MuscleGroups: []string{"neck"}})
	if !errors.Is(err, ErrNoExercisesFound) {
		t.Fatalf("err = %v, want ErrNoExercisesFound", err)
	}
}

func TestGenerateRequiresMuscleGroups(t *testing.T) {
	g := newTestGenerator(t)

	if _, err := g.Generate(Request{}); err == nil {
		t.Fatal("Generate accepted an empty muscle group list")
	}
}

func TestGeneratePlanSizeByDuration(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		minutes int
		want    int
	}{
		{minutes: 20, want: 4},
		{minutes: 30, want: 4},
		{minutes: 45, want: 5},
		{minutes: 60, want: 6},
		{minutes: 90, want: 7},
		{minutes: 0, want: 6}, // defaults to a standard hour
	}
	for _, tt := range tests {
		plan, err := g.Generate(Request{
			MuscleGroups:    []string{"push"},
			DurationMinutes: tt.minutes,
		})
		if err != nil {
			t.Fatalf("Generate(%d min): %v", tt.minutes, err)
		}
		if len(plan.Exercises) != tt.want {
			t.Errorf("%d minutes: got %d exercises, want %d", tt.minutes, len(plan.Exercises), tt.want)
		}
	}
}

func TestExerciseCountFor(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{15, 4}, {30, 4}, {31, 5}, {45, 5}, {46, 6}, {60, 6}, {61, 7}, {120, 7},
	}
	for _, tt := range tests {
		if got := exerciseCountFor(tt.minutes); got != tt.want {
			t.Errorf("exerciseCountFor(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestTierQuotas(t *testing.T) {
	tests := []struct {
		goal  training.Goal
		count int
		want  [3]int
	}{
		{goal: training.GoalStrength, count: 6, want: [3]int{4, 1, 1}},
		{goal: training.GoalHypertrophy, count: 6, want: [3]int{2, 2, 2}},
		{goal: training.GoalEndurance, count: 6, want: [3]int{2, 2, 2}},
		{goal: training.Goal("bogus"), count: 6, want: [3]int{2, 2, 2}},
		{goal: training.GoalStrength, count: 4, want: [3]int{3, 1, 0}},
	}
	for _, tt := range tests {
		if got := tierQuotas(tt.goal, tt.count); got != tt.want {
			t.Errorf("tierQuotas(%s, %d) = %v, want %v", tt.goal, tt.count, got, tt.want)
		}
	}
}

// TestPickExercisesExhaustsHigherTiers checks that a strength selection
// takes every tier S exercise before dipping into lower tiers, and never
// repeats an exercise.
func TestPickExercisesExhaustsHigherTiers(t *testing.T) {
	g := newTestGenerator(t)
	pool := g.filterPool(nil, taxonomy.CategoryPush, true, "")

	for range 10 {
		selected := pickExercises(pool, taxonomy.CategoryPush, true, training.GoalStrength, 6)
		if len(selected) != 6 {
			t.Fatalf("got %d exercises, want 6", len(selected))
		}
		seen := make(map[string]bool)
		for _, e := range selected {
			if seen[e.Name] {
				t.Fatalf("exercise %q selected twice", e.Name)
			}
			seen[e.Name] = true
		}
		for _, name := range []string{"Barbell Bench Press", "Overhead Press", "Dip"} {
			if !seen[name] {
				t.Errorf("tier S exercise %q missing from a strength selection", name)
			}
		}
	}
}

func TestValidateCategory(t *testing.T) {
	selected := []taxonomy.Exercise{
		{Name: "Barbell Bench Press", PrimaryMuscles: []string{"chest"}},
		{Name: "Barbell Row", PrimaryMuscles: []string{"back"}},
	}

	err := validateCategory(selected, taxonomy.CategoryPush)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if diff := cmp.Diff([]string{"Barbell Row"}, verr.Offending); diff != "" {
		t.Errorf("Offending mismatch (-want +got):\n%s", diff)
	}

	if err := validateCategory(selected[:1], taxonomy.CategoryPush); err != nil {
		t.Errorf("clean selection failed validation: %v", err)
	}
}

func TestGenerateProgram(t *testing.T) {
	g := newTestGenerator(t)

	program, err := g.GenerateProgram(3, Request{Goal: "hypertrophy"})
	if err != nil {
		t.Fatalf("GenerateProgram: %v", err)
	}

	if program.ID == "" {
		t.Error("program ID is empty")
	}
	if program.Title != "3-day hypertrophy program" {
		t.Errorf("Title = %q", program.Title)
	}
	if len(program.Days) != 3 {
		t.Fatalf("got %d days, want 3", len(program.Days))
	}
	wantCategories := []taxonomy.Category{taxonomy.CategoryPush, taxonomy.CategoryPull, taxonomy.CategoryLegs}
	for i, day := range program.Days {
		if day.Category != wantCategories[i] {
			t.Errorf("day %d category = %q, want %q", i+1, day.Category, wantCategories[i])
		}
		if day.Goal != training.GoalHypertrophy {
			t.Errorf("day %d goal = %q", i+1, day.Goal)
		}
		if len(day.Exercises) == 0 {
			t.Errorf("day %d has no exercises", i+1)
		}
	}
}

func TestGenerateProgramUnsupportedDays(t *testing.T) {
	g := newTestGenerator(t)

	for _, days := range []int{0, 2, 7} {
		if _, err := g.GenerateProgram(days, Request{}); err == nil {
			t.Errorf("GenerateProgram(%d) did not fail", days)
		}
	}
}

func TestDeload(t *testing.T) {
	original := Plan{
		ID:    "plan-1",
		Title: "Push workout (strength)",
		Exercises: []PlannedExercise{
			{Name: "Barbell Bench Press", Sets: 5},
			{Name: "Overhead Press", Sets: 4},
			{Name: "Lateral Raise", Sets: 1},
		},
	}

	deload := Deload(original)

	if deload.ID == original.ID {
		t.Error("deload plan kept the original ID")
	}
	if deload.Title != "Push workout (strength) (deload)" {
		t.Errorf("Title = %q", deload.Title)
	}
	wantSets := []int{3, 2, 1}
	for i, e := range deload.Exercises {
		if e.Sets != wantSets[i] {
			t.Errorf("exercise %q sets = %d, want %d", e.Name, e.Sets, wantSets[i])
		}
	}
	if original.Exercises[0].Sets != 5 {
		t.Error("Deload mutated the input plan")
	}
}

func TestParseExperience(t *testing.T) {
	tests := []struct {
		in   string
		want ExperienceLevel
	}{
		{"beginner", ExperienceBeginner},
		{" Advanced ", ExperienceAdvanced},
		{"intermediate", ExperienceIntermediate},
		{"", ExperienceIntermediate},
		{"expert", ExperienceIntermediate},
	}
	for _, tt := range tests {
		if got := ParseExperience(tt.in); got != tt.want {
			t.Errorf("ParseExperience(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
