package models

import (
	"encoding/json"
	"errors"
)

// Schedule is an ordered sequence of training days.
type Schedule []ScheduleDay

type ScheduleDay struct {
	Name      string             `json:"name"`
	Exercises []ScheduleExercise `json:"exercises"`
}

type SetsReps struct {
	Sets int `json:"sets"`
	Reps int `json:"reps"`
}

type DistanceTime struct {
	Distance float64 `json:"distance"`
	Time     float64 `json:"time"`
}

// ScheduleExercise references a catalog exercise plus exactly one prescription
// variant: sets/reps or distance/time. The two variants are mutually exclusive
// and serialize flat, so a sets/reps entry looks like
// {"exercise": 3, "sets": 5, "reps": 8} on the wire.
type ScheduleExercise struct {
	Exercise     int64
	SetsReps     *SetsReps
	DistanceTime *DistanceTime
}

var (
	ErrMissingExerciseRef = errors.New("schedule entry is missing an exercise reference")
	ErrAmbiguousVariant   = errors.New("schedule entry mixes sets/reps and distance/time fields")
	ErrPartialVariant     = errors.New("schedule entry must pair sets with reps or distance with time")
)

func (e ScheduleExercise) MarshalJSON() ([]byte, error) {
	switch {
	case e.SetsReps != nil && e.DistanceTime != nil:
		return nil, ErrAmbiguousVariant
	case e.SetsReps != nil:
		return json.Marshal(struct {
			Exercise int64 `json:"exercise"`
			Sets     int   `json:"sets"`
			Reps     int   `json:"reps"`
		}{e.Exercise, e.SetsReps.Sets, e.SetsReps.Reps})
	case e.DistanceTime != nil:
		return json.Marshal(struct {
			Exercise int64   `json:"exercise"`
			Distance float64 `json:"distance"`
			Time     float64 `json:"time"`
		}{e.Exercise, e.DistanceTime.Distance, e.DistanceTime.Time})
	default:
		return nil, ErrPartialVariant
	}
}

func (e *ScheduleExercise) UnmarshalJSON(data []byte) error {
	var raw struct {
		Exercise *int64   `json:"exercise"`
		Sets     *int     `json:"sets"`
		Reps     *int     `json:"reps"`
		Distance *float64 `json:"distance"`
		Time     *float64 `json:"time"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Exercise == nil {
		return ErrMissingExerciseRef
	}

	hasSetsReps := raw.Sets != nil || raw.Reps != nil
	hasDistanceTime := raw.Distance != nil || raw.Time != nil
	if hasSetsReps && hasDistanceTime {
		return ErrAmbiguousVariant
	}

	switch {
	case raw.Sets != nil && raw.Reps != nil:
		e.Exercise = *raw.Exercise
		e.SetsReps = &SetsReps{Sets: *raw.Sets, Reps: *raw.Reps}
		e.DistanceTime = nil
	case raw.Distance != nil && raw.Time != nil:
		e.Exercise = *raw.Exercise
		e.DistanceTime = &DistanceTime{Distance: *raw.Distance, Time: *raw.Time}
		e.SetsReps = nil
	default:
		return ErrPartialVariant
	}
	return nil
}

// ExerciseIDs returns the distinct catalog ids referenced by the schedule, in
// first-seen order.
func (s Schedule) ExerciseIDs() []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, day := range s {
		for _, entry := range day.Exercises {
			if _, ok := seen[entry.Exercise]; ok {
				continue
			}
			seen[entry.Exercise] = struct{}{}
			ids = append(ids, entry.Exercise)
		}
	}
	return ids
}
