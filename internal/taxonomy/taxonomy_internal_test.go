package taxonomy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		exercise Exercise
		want     Category
	}{
		{
			name:     "explicit push match",
			exercise: Exercise{Name: "Barbell Bench Press", PrimaryMuscles: []string{"Chest"}},
			want:     CategoryPush,
		},
		{
			name:     "explicit pull match",
			exercise: Exercise{Name: "Seated Cable Row", PrimaryMuscles: []string{"Back"}},
			want:     CategoryPull,
		},
		{
			name:     "explicit legs match",
			exercise: Exercise{Name: "Back Squat", PrimaryMuscles: []string{"Quads"}},
			want:     CategoryLegs,
		},
		{
			name: "muscle inference without list match",
			exercise: Exercise{
				Name:           "Svend Hold",
				PrimaryMuscles: []string{"Chest"},
			},
			want: CategoryPush,
		},
		{
			name: "row never classifies as push despite triceps overlap",
			exercise: Exercise{
				Name:             "Inverted Row",
				PrimaryMuscles:   []string{"Back"},
				SecondaryMuscles: []string{"Triceps"},
			},
			want: CategoryPull,
		},
		{
			name: "hinge ambiguous between pull and legs resolves to pull by evaluation order",
			exercise: Exercise{
				Name:             "Kettlebell Swing",
				PrimaryMuscles:   []string{"Glutes", "Hamstrings"},
				SecondaryMuscles: []string{"Back"},
			},
			want: CategoryPull,
		},
		{
			name:     "most specific alias wins across categories",
			exercise: Exercise{Name: "Lying Leg Curl", PrimaryMuscles: []string{"Hamstrings"}},
			want:     CategoryLegs,
		},
		{
			name:     "nordic curl is legs not pull",
			exercise: Exercise{Name: "Nordic Curl", PrimaryMuscles: []string{"Hamstrings"}},
			want:     CategoryLegs,
		},
		{
			name:     "explicit list wins over muscle inference",
			exercise: Exercise{Name: "Romanian Deadlift", PrimaryMuscles: []string{"Hamstrings", "Glutes"}},
			want:     CategoryPull,
		},
		{
			name:     "unknown when nothing matches",
			exercise: Exercise{Name: "Neck Harness Flexion", PrimaryMuscles: []string{"Neck"}},
			want:     CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.exercise); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.exercise.Name, got, tt.want)
			}
		})
	}
}

// TestClassifyTotality verifies that classification always returns one of
// the four categories and never panics, whatever the input looks like.
func TestClassifyTotality(t *testing.T) {
	pool := []Exercise{
		{Name: "Barbell Bench Press", PrimaryMuscles: []string{"Chest"}},
		{Name: "Deadlift", PrimaryMuscles: []string{"Back", "Hamstrings"}},
		{Name: "Leg Press", PrimaryMuscles: []string{"Quads"}},
		{Name: ""},
		{Name: "Mystery Movement"},
		{Name: "Wrist Roller", PrimaryMuscles: []string{"Forearms"}},
	}

	valid := map[Category]bool{
		CategoryPush: true, CategoryPull: true, CategoryLegs: true, CategoryUnknown: true,
	}

	for _, e := range pool {
		if got := Classify(e); !valid[got] {
			t.Errorf("Classify(%q) returned invalid category %q", e.Name, got)
		}
	}
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		name     string
		exercise string
		category Category
		want     Tier
	}{
		{"push tier S", "Barbell Bench Press", CategoryPush, TierS},
		{"push tier A", "Machine Chest Press", CategoryPush, TierA},
		{"push tier B", "Cable Lateral Raise", CategoryPush, TierB},
		{"pull tier S", "Weighted Pull-Up", CategoryPull, TierS},
		{"legs tier S", "Back Squat", CategoryLegs, TierS},
		{"absent from table defaults to B", "Obscure Isolation Move", CategoryPush, TierB},
		{"absent category defaults to B", "Back Squat", CategoryUnknown, TierB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierOf(tt.exercise, tt.category); got != tt.want {
				t.Errorf("TierOf(%q, %v) = %v, want %v", tt.exercise, tt.category, got, tt.want)
			}
		})
	}
}

func TestEquipmentPriority(t *testing.T) {
	tests := []struct {
		tag  string
		want int
	}{
		{"Barbell", 1},
		{"Adjustable Dumbbell", 2},
		{"Cable Stack", 3},
		{"Machine", 4},
		{"Bodyweight", 7},
		{"Sled", 99},
		{"", 99},
	}

	for _, tt := range tests {
		if got := EquipmentPriority(tt.tag); got != tt.want {
			t.Errorf("EquipmentPriority(%q) = %d, want %d", tt.tag, got, tt.want)
		}
	}
}

func TestPrioritize(t *testing.T) {
	pool := []Exercise{
		{Name: "Triceps Pushdown"},     // B
		{Name: "Unranked Press Thing"}, // unlisted
		{Name: "Overhead Press"},       // S
		{Name: "Cable Fly"},            // A
		{Name: "Barbell Bench Press"},  // S
	}

	got := Prioritize(pool, CategoryPush)

	want := []string{
		"Overhead Press",
		"Barbell Bench Press",
		"Cable Fly",
		"Triceps Pushdown",
		"Unranked Press Thing",
	}

	gotNames := make([]string, len(got))
	for i, e := range got {
		gotNames[i] = e.Name
	}
	if diff := cmp.Diff(want, gotNames); diff != "" {
		t.Errorf("Prioritize() mismatch (-want +got):\n%s", diff)
	}

	// Input order must be untouched.
	if pool[0].Name != "Triceps Pushdown" {
		t.Errorf("Prioritize() mutated its input, first element now %q", pool[0].Name)
	}
}

func TestExpandTerm(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"push", []string{"chest", "shoulders", "triceps"}},
		{"Upper", []string{"chest", "shoulders", "triceps", "back", "lats", "biceps"}},
		{"pecs", []string{"chest"}},
		{"Quadriceps", []string{"quads"}},
		{"chest", []string{"chest"}},
		{"soleus", []string{"soleus"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ExpandTerm(tt.term)); diff != "" {
			t.Errorf("ExpandTerm(%q) mismatch (-want +got):\n%s", tt.term, diff)
		}
	}
}

func TestCategoryForTerm(t *testing.T) {
	if c, ok := CategoryForTerm("Push"); !ok || c != CategoryPush {
		t.Errorf("CategoryForTerm(Push) = %v, %v", c, ok)
	}
	if _, ok := CategoryForTerm("chest"); ok {
		t.Error("CategoryForTerm(chest) should not be a category term")
	}
}
