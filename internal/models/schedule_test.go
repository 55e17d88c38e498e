package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestScheduleExerciseUnmarshalSetsReps(t *testing.T) {
	var entry ScheduleExercise
	if err := json.Unmarshal([]byte(`{"exercise": 3, "sets": 5, "reps": 8}`), &entry); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if entry.Exercise != 3 {
		t.Errorf("expected exercise 3, got %d", entry.Exercise)
	}
	if entry.SetsReps == nil || entry.SetsReps.Sets != 5 || entry.SetsReps.Reps != 8 {
		t.Errorf("unexpected sets/reps: %+v", entry.SetsReps)
	}
	if entry.DistanceTime != nil {
		t.Errorf("expected distance/time to be unset")
	}
}

func TestScheduleExerciseUnmarshalDistanceTime(t *testing.T) {
	var entry ScheduleExercise
	if err := json.Unmarshal([]byte(`{"exercise": 9, "distance": 5.5, "time": 30}`), &entry); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if entry.DistanceTime == nil || entry.DistanceTime.Distance != 5.5 || entry.DistanceTime.Time != 30 {
		t.Errorf("unexpected distance/time: %+v", entry.DistanceTime)
	}
	if entry.SetsReps != nil {
		t.Errorf("expected sets/reps to be unset")
	}
}

func TestScheduleExerciseUnmarshalRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"missing exercise", `{"sets": 5, "reps": 8}`, ErrMissingExerciseRef},
		{"mixed variants", `{"exercise": 1, "sets": 5, "time": 30}`, ErrAmbiguousVariant},
		{"both variants", `{"exercise": 1, "sets": 5, "reps": 8, "distance": 2, "time": 30}`, ErrAmbiguousVariant},
		{"partial sets", `{"exercise": 1, "sets": 5}`, ErrPartialVariant},
		{"partial time", `{"exercise": 1, "time": 30}`, ErrPartialVariant},
		{"no variant", `{"exercise": 1}`, ErrPartialVariant},
	}

	for _, tc := range cases {
		var entry ScheduleExercise
		err := json.Unmarshal([]byte(tc.body), &entry)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestScheduleExerciseMarshalRoundTrip(t *testing.T) {
	day := ScheduleDay{
		Name: "day one",
		Exercises: []ScheduleExercise{
			{Exercise: 3, SetsReps: &SetsReps{Sets: 5, Reps: 8}},
			{Exercise: 3, DistanceTime: &DistanceTime{Distance: 2.5, Time: 45}},
		},
	}

	data, err := json.Marshal(Schedule{day})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Schedule
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 1 || len(decoded[0].Exercises) != 2 {
		t.Fatalf("unexpected shape after round trip: %+v", decoded)
	}
	if decoded[0].Exercises[0].SetsReps == nil || decoded[0].Exercises[1].DistanceTime == nil {
		t.Errorf("variants not preserved: %+v", decoded[0].Exercises)
	}
}

func TestScheduleExerciseMarshalRejectsInvalidEntries(t *testing.T) {
	if _, err := json.Marshal(ScheduleExercise{Exercise: 1}); err == nil {
		t.Errorf("expected error for entry without a variant")
	}
	both := ScheduleExercise{
		Exercise:     1,
		SetsReps:     &SetsReps{Sets: 1, Reps: 1},
		DistanceTime: &DistanceTime{Distance: 1, Time: 1},
	}
	if _, err := json.Marshal(both); err == nil {
		t.Errorf("expected error for entry with both variants")
	}
}

func TestScheduleExerciseIDsDeduplicates(t *testing.T) {
	schedule := Schedule{
		{Name: "a", Exercises: []ScheduleExercise{
			{Exercise: 3, SetsReps: &SetsReps{Sets: 3, Reps: 10}},
			{Exercise: 7, SetsReps: &SetsReps{Sets: 3, Reps: 10}},
		}},
		{Name: "b", Exercises: []ScheduleExercise{
			{Exercise: 3, DistanceTime: &DistanceTime{Distance: 1, Time: 10}},
		}},
	}

	ids := schedule.ExerciseIDs()
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 7 {
		t.Errorf("unexpected ids: %v", ids)
	}
}
