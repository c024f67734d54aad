package training

import (
	"strings"
	"testing"

	"github.com/repwise/repwise/internal/ptr"
)

func TestRecommend(t *testing.T) {
	target := RepRange{Low: 8, High: 12}

	tests := []struct {
		name        string
		session     Session
		target      RepRange
		wantType    ProgressionType
		wantWeight  float64
		wantReps    int
		wantWarning bool
	}{
		{
			name:       "reps in reserve adds barbell increment",
			session:    Session{Weight: 185, Reps: 8, Sets: 3, Equipment: "barbell", RPE: ptr.Ref(7)},
			target:     target,
			wantType:   ProgressionWeightIncrease,
			wantWeight: 190,
			wantReps:   8,
		},
		{
			name:       "hard set below top of range adds a rep",
			session:    Session{Weight: 200, Reps: 8, Sets: 3, Equipment: "barbell", RPE: ptr.Ref(9)},
			target:     target,
			wantType:   ProgressionRepIncrease,
			wantWeight: 200,
			wantReps:   9,
		},
		{
			name:       "topped out range adds weight and drops reps",
			session:    Session{Weight: 185, Reps: 12, Sets: 3, Equipment: "barbell", RPE: ptr.Ref(9)},
			target:     target,
			wantType:   ProgressionWeightIncreaseWithRepDrop,
			wantWeight: 190,
			wantReps:   8,
		},
		{
			name:        "failure holds weight, adds rep, warns",
			session:     Session{Weight: 185, Reps: 5, Sets: 3, Equipment: "barbell", RPE: ptr.Ref(10)},
			target:      target,
			wantType:    ProgressionRepIncrease,
			wantWeight:  185,
			wantReps:    6,
			wantWarning: true,
		},
		{
			name:       "dumbbell increment is smaller",
			session:    Session{Weight: 30, Reps: 10, Sets: 3, Equipment: "dumbbell", RPE: ptr.Ref(6)},
			target:     target,
			wantType:   ProgressionWeightIncrease,
			wantWeight: 32.5,
			wantReps:   10,
		},
		{
			name:       "cable uses standard increment",
			session:    Session{Weight: 50, Reps: 10, Sets: 3, Equipment: "cable", RPE: ptr.Ref(7)},
			target:     target,
			wantType:   ProgressionWeightIncrease,
			wantWeight: 55,
			wantReps:   10,
		},
		{
			name:       "bodyweight progresses by reps",
			session:    Session{Weight: 0, Reps: 12, Sets: 3, Equipment: "bodyweight", RPE: ptr.Ref(7)},
			target:     target,
			wantType:   ProgressionRepIncrease,
			wantWeight: 0,
			wantReps:   13,
		},
		{
			name:       "missing RPE maintains",
			session:    Session{Weight: 100, Reps: 10, Sets: 3, Equipment: "barbell"},
			target:     target,
			wantType:   ProgressionMaintain,
			wantWeight: 100,
			wantReps:   10,
		},
		{
			name:       "out of range RPE maintains",
			session:    Session{Weight: 100, Reps: 10, Sets: 3, Equipment: "barbell", RPE: ptr.Ref(14)},
			target:     target,
			wantType:   ProgressionMaintain,
			wantWeight: 100,
			wantReps:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.session, tt.target)

			if got.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", got.Type, tt.wantType)
			}
			if got.NextWeight != tt.wantWeight {
				t.Errorf("NextWeight = %v, want %v", got.NextWeight, tt.wantWeight)
			}
			if got.NextReps != tt.wantReps {
				t.Errorf("NextReps = %d, want %d", got.NextReps, tt.wantReps)
			}
			if got.NextSets != tt.session.Sets {
				t.Errorf("NextSets = %d, want unchanged %d", got.NextSets, tt.session.Sets)
			}
			if got.Reason == "" {
				t.Error("Reason must never be empty")
			}
			if tt.wantWarning && got.Warning == "" {
				t.Error("expected a warning about training to failure")
			}
			if !tt.wantWarning && got.Warning != "" {
				t.Errorf("unexpected warning: %s", got.Warning)
			}
		})
	}
}

// TestRecommendReasonCarriesNumbers locks in that the rationale quotes the
// literal last-session numbers, since the string is shown to the trainee.
func TestRecommendReasonCarriesNumbers(t *testing.T) {
	got := Recommend(Session{Weight: 185, Reps: 8, Sets: 3, Equipment: "barbell", RPE: ptr.Ref(7)}, DefaultRepRange)

	for _, fragment := range []string{"185.0", "8", "190.0"} {
		if !strings.Contains(got.Reason, fragment) {
			t.Errorf("Reason %q missing %q", got.Reason, fragment)
		}
	}
}

func TestWeightIncrement(t *testing.T) {
	tests := []struct {
		equipment string
		want      float64
	}{
		{"barbell", 5},
		{"machine", 5},
		{"cable", 5},
		{"dumbbell", 2.5},
		{"adjustable dumbbells", 2.5},
		{"bodyweight", 0},
		{"body weight", 0},
		{"", 5},
	}

	for _, tt := range tests {
		if got := WeightIncrement(tt.equipment); got != tt.want {
			t.Errorf("WeightIncrement(%q) = %v, want %v", tt.equipment, got, tt.want)
		}
	}
}

func TestParseRepRange(t *testing.T) {
	tests := []struct {
		spec    string
		want    RepRange
		wantErr bool
	}{
		{spec: "8-12", want: RepRange{Low: 8, High: 12}},
		{spec: " 3 - 6 ", want: RepRange{Low: 3, High: 6}},
		{spec: "5", want: RepRange{Low: 5, High: 5}},
		{spec: "", wantErr: true},
		{spec: "12-8", wantErr: true},
		{spec: "a-b", wantErr: true},
		{spec: "0-5", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseRepRange(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRepRange(%q) expected error, got %v", tt.spec, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRepRange(%q) unexpected error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRepRange(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}
