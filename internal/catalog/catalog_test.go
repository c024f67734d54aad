package catalog_test

import (
	"testing"

	"github.com/repwise/repwise/internal/catalog"
	"github.com/repwise/repwise/internal/taxonomy"
)

func TestLoad(t *testing.T) {
	exercises, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(exercises) < 40 {
		t.Errorf("catalog has only %d exercises", len(exercises))
	}

	// Every category must be represented so split-based plan generation
	// always has material to work with.
	counts := make(map[taxonomy.Category]int)
	for _, e := range exercises {
		counts[taxonomy.Classify(e)]++
	}
	for _, c := range []taxonomy.Category{taxonomy.CategoryPush, taxonomy.CategoryPull, taxonomy.CategoryLegs} {
		if counts[c] < 6 {
			t.Errorf("category %s has only %d exercises", c, counts[c])
		}
	}

	seen := make(map[string]bool)
	for _, e := range exercises {
		if seen[e.Name] {
			t.Errorf("duplicate exercise %q", e.Name)
		}
		seen[e.Name] = true
		if len(e.PrimaryMuscles) == 0 {
			t.Errorf("exercise %q has no primary muscles", e.Name)
		}
		if e.Equipment == "" {
			t.Errorf("exercise %q has no equipment tag", e.Name)
		}
	}
}

func TestFind(t *testing.T) {
	exercises, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := catalog.Find(exercises, "barbell bench press"); !ok {
		t.Error("case-insensitive lookup failed")
	}
	if _, ok := catalog.Find(exercises, "Nonexistent Movement"); ok {
		t.Error("found an exercise that is not in the catalog")
	}
}

func TestFilter(t *testing.T) {
	exercises, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	chest := catalog.Filter(exercises, "chest", "", "")
	if len(chest) == 0 {
		t.Fatal("no chest exercises")
	}
	for _, e := range chest {
		if !e.TargetsMuscle("chest") {
			t.Errorf("exercise %q does not target chest", e.Name)
		}
	}

	barbellLegs := catalog.Filter(exercises, "", "barbell", taxonomy.CategoryLegs)
	if len(barbellLegs) == 0 {
		t.Fatal("no barbell leg exercises")
	}
	for _, e := range barbellLegs {
		if e.Equipment != "barbell" {
			t.Errorf("exercise %q equipment = %q", e.Name, e.Equipment)
		}
		if got := taxonomy.Classify(e); got != taxonomy.CategoryLegs {
			t.Errorf("exercise %q classifies as %s", e.Name, got)
		}
	}
}
