package workout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/repwise/repwise/internal/taxonomy"
)

// ErrNoExercisesFound signals that every filter-relaxation step yielded an
// empty exercise pool. It is recoverable: callers should surface it as a
// constructive message, never crash.
var ErrNoExercisesFound = errors.New("no exercises found matching the request")

// ValidationError reports that a generated plan contained exercises whose
// classification disagrees with the requested category. The whole plan is
// rejected; no partially-correct plan is returned.
type ValidationError struct {
	Category  taxonomy.Category
	Offending []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("plan validation failed: %s does not belong to the %s category",
		strings.Join(e.Offending, ", "), e.Category)
}
