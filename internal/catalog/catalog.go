// Package catalog loads the embedded exercise reference data used by the
// taxonomy, volume and plan-generation engines.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/repwise/repwise/internal/taxonomy"

	_ "embed"
)

//go:embed exercises.json
var exercisesJSON []byte

// Load parses the embedded exercise catalog. The catalog is reference
// data loaded once at process start and treated as immutable afterwards.
func Load() ([]taxonomy.Exercise, error) {
	var exercises []taxonomy.Exercise
	if err := json.Unmarshal(exercisesJSON, &exercises); err != nil {
		return nil, fmt.Errorf("parse exercise catalog: %w", err)
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("exercise catalog is empty")
	}
	for i, e := range exercises {
		if e.Name == "" {
			return nil, fmt.Errorf("exercise catalog entry %d has no name", i)
		}
	}
	return exercises, nil
}

// Find looks up an exercise by name, case-insensitively.
func Find(exercises []taxonomy.Exercise, name string) (taxonomy.Exercise, bool) {
	for _, e := range exercises {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return taxonomy.Exercise{}, false
}

// Filter narrows the catalog by any combination of muscle, equipment
// substring, and category. Empty arguments mean no constraint.
func Filter(exercises []taxonomy.Exercise, muscle, equipment string, category taxonomy.Category) []taxonomy.Exercise {
	equipment = strings.ToLower(equipment)

	var filtered []taxonomy.Exercise
	for _, e := range exercises {
		if muscle != "" && !e.TargetsMuscle(muscle) {
			continue
		}
		if equipment != "" && !strings.Contains(strings.ToLower(e.Equipment), equipment) {
			continue
		}
		if category != "" && taxonomy.Classify(e) != category {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
