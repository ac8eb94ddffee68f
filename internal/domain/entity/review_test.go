package entity

import "testing"

func TestRoundedAverage(t *testing.T) {
	tests := []struct {
		name string
		agg  RatingAggregate
		want float64
	}{
		{"no reviews", RatingAggregate{}, 0},
		{"exact", RatingAggregate{Average: 4.0, Count: 2}, 4.0},
		{"rounds up", RatingAggregate{Average: 14.0 / 3.0, Count: 3}, 4.7},
		{"rounds down", RatingAggregate{Average: 13.0 / 3.0, Count: 3}, 4.3},
		{"half rounds up", RatingAggregate{Average: 4.25, Count: 4}, 4.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.agg.RoundedAverage(); got != tt.want {
				t.Errorf("RoundedAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserTypeValid(t *testing.T) {
	if !UserTypePatient.Valid() || !UserTypeStudent.Valid() {
		t.Error("known user types should be valid")
	}
	if UserType("ADMIN").Valid() || UserType("").Valid() {
		t.Error("unknown user types should not be valid")
	}
}
