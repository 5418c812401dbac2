package domain_test

import (
	"testing"

	"treinoapp/workout-service/internal/domain"
)

func TestWorkoutTypeIsValid(t *testing.T) {
	valid := []domain.WorkoutType{domain.WorkoutTypePredefined, domain.WorkoutTypeCustom}
	for _, wt := range valid {
		if !wt.IsValid() {
			t.Errorf("%q should be valid", wt)
		}
	}

	invalid := []domain.WorkoutType{"", "cardio", "Predefined", "CUSTOM", "custom "}
	for _, wt := range invalid {
		if wt.IsValid() {
			t.Errorf("%q should be invalid", wt)
		}
	}
}
