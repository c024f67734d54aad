// Package history persists logged workout sets and serves them back as
// training sessions for the analysis engines.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/repwise/repwise/internal/sqlite"
	"github.com/repwise/repwise/internal/training"
)

// Store reads and writes workout history. Writes go through the
// read-write handle, queries through the read-only one.
type Store struct {
	db *sqlite.Database
}

func NewStore(db *sqlite.Database) *Store {
	return &Store{db: db}
}

// Log appends one performed set group to the history. A zero date means
// now; a missing target rep range falls back to the default.
func (s *Store) Log(ctx context.Context, session training.Session) error {
	if session.ExerciseName == "" {
		return fmt.Errorf("exercise name is required")
	}
	if session.Reps <= 0 {
		return fmt.Errorf("reps must be positive, got %d", session.Reps)
	}
	if session.Sets <= 0 {
		session.Sets = 1
	}
	if session.RPE != nil && (*session.RPE < 1 || *session.RPE > 10) {
		return fmt.Errorf("rpe must be between 1 and 10, got %d", *session.RPE)
	}

	date := session.Date
	if date.IsZero() {
		date = time.Now()
	}

	target := training.DefaultRepRange
	if session.TargetRepRange != "" {
		var err error
		if target, err = training.ParseRepRange(session.TargetRepRange); err != nil {
			return fmt.Errorf("target rep range: %w", err)
		}
	}

	_, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workout_sets (logged_at, exercise_name, equipment, muscle_group,
		                          weight, reps, sets, rpe, target_rep_low, target_rep_high)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		date, session.ExerciseName, session.Equipment, session.MuscleGroup,
		session.Weight, session.Reps, session.Sets, rpeValue(session.RPE),
		target.Low, target.High)
	if err != nil {
		return fmt.Errorf("insert workout set: %w", err)
	}
	return nil
}

// List returns all sessions logged at or after since, oldest first.
func (s *Store) List(ctx context.Context, since time.Time) ([]training.Session, error) {
	rows, err := s.db.ReadOnly.QueryContext(ctx, `
		SELECT logged_at, exercise_name, equipment, muscle_group,
		       weight, reps, sets, rpe, target_rep_low, target_rep_high
		FROM workout_sets
		WHERE logged_at >= ?
		ORDER BY logged_at`, since)
	if err != nil {
		return nil, fmt.Errorf("query workout sets: %w", err)
	}
	return scanSessions(rows)
}

// ListByExercise returns the most recent sessions of one exercise,
// newest first, capped at limit.
func (s *Store) ListByExercise(ctx context.Context, exercise string, limit int) ([]training.Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.ReadOnly.QueryContext(ctx, `
		SELECT logged_at, exercise_name, equipment, muscle_group,
		       weight, reps, sets, rpe, target_rep_low, target_rep_high
		FROM workout_sets
		WHERE exercise_name = ? COLLATE NOCASE
		ORDER BY logged_at DESC
		LIMIT ?`, exercise, limit)
	if err != nil {
		return nil, fmt.Errorf("query workout sets for %s: %w", exercise, err)
	}
	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) (_ []training.Session, err error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var sessions []training.Session
	for rows.Next() {
		var (
			session training.Session
			rpe     sql.NullInt64
			low     int
			high    int
		)
		if err = rows.Scan(&session.Date, &session.ExerciseName, &session.Equipment,
			&session.MuscleGroup, &session.Weight, &session.Reps, &session.Sets,
			&rpe, &low, &high); err != nil {
			return nil, fmt.Errorf("scan workout set: %w", err)
		}
		if rpe.Valid {
			value := int(rpe.Int64)
			session.RPE = &value
		}
		session.TargetRepRange = training.RepRange{Low: low, High: high}.String()
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return sessions, nil
}

func rpeValue(rpe *int) any {
	if rpe == nil {
		return nil
	}
	return *rpe
}
