package health

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRecordNotFound = errors.New("health record not found")
	// ErrUnknownUser is returned when a record references a user that no longer exists.
	ErrUnknownUser = errors.New("health record user not found")
)

const maxECGReadingLength = 500

// Record is a single health log entry. All metrics are optional.
type Record struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	RecordedAt time.Time `json:"recordedAt"`

	Heartbeat              *int     `json:"heartbeat,omitempty"`
	BloodPressureSystolic  *int     `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *int     `json:"bloodPressureDiastolic,omitempty"`
	Hydration              *float64 `json:"hydration,omitempty"`
	SleepHours             *float64 `json:"sleepHours,omitempty"`
	BloodOxygen            *float64 `json:"bloodOxygen,omitempty"`
	ECGReading             *string  `json:"ecgReading,omitempty"`
	WalkingSteps           *int     `json:"walkingSteps,omitempty"`

	// activity durations, in minutes
	RunningDuration    *int `json:"runningDuration,omitempty"`
	CyclingDuration    *int `json:"cyclingDuration,omitempty"`
	SkippingDuration   *int `json:"skippingDuration,omitempty"`
	BadmintonDuration  *int `json:"badmintonDuration,omitempty"`
	BasketballDuration *int `json:"basketballDuration,omitempty"`
	FootballDuration   *int `json:"footballDuration,omitempty"`
	SwimmingDuration   *int `json:"swimmingDuration,omitempty"`
	EllipticalDuration *int `json:"ellipticalDuration,omitempty"`
}

// metricFields returns pointers to the metric fields, in table column order.
func (r *Record) metricFields() []any {
	return []any{
		&r.Heartbeat, &r.BloodPressureSystolic, &r.BloodPressureDiastolic,
		&r.Hydration, &r.SleepHours, &r.BloodOxygen, &r.ECGReading, &r.WalkingSteps,
		&r.RunningDuration, &r.CyclingDuration, &r.SkippingDuration, &r.BadmintonDuration,
		&r.BasketballDuration, &r.FootballDuration, &r.SwimmingDuration, &r.EllipticalDuration,
	}
}

// metricValues returns the metric values, in table column order.
func (r *Record) metricValues() []any {
	return []any{
		r.Heartbeat, r.BloodPressureSystolic, r.BloodPressureDiastolic,
		r.Hydration, r.SleepHours, r.BloodOxygen, r.ECGReading, r.WalkingSteps,
		r.RunningDuration, r.CyclingDuration, r.SkippingDuration, r.BadmintonDuration,
		r.BasketballDuration, r.FootballDuration, r.SwimmingDuration, r.EllipticalDuration,
	}
}

type namedDuration struct {
	field string
	value *int
}

func (r *Record) durations() []namedDuration {
	return []namedDuration{
		{"runningDuration", r.RunningDuration},
		{"cyclingDuration", r.CyclingDuration},
		{"skippingDuration", r.SkippingDuration},
		{"badmintonDuration", r.BadmintonDuration},
		{"basketballDuration", r.BasketballDuration},
		{"footballDuration", r.FootballDuration},
		{"swimmingDuration", r.SwimmingDuration},
		{"ellipticalDuration", r.EllipticalDuration},
	}
}

type rangeError struct {
	field    string
	min, max float64
	bounded  bool
}

func (e rangeError) Error() string {
	if !e.bounded {
		return fmt.Sprintf("%s must be %g or more", e.field, e.min)
	}
	return fmt.Sprintf("%s must be between %g and %g", e.field, e.min, e.max)
}

func checkInt(field string, v *int, min, max int) error {
	if v != nil && (*v < min || *v > max) {
		return rangeError{field: field, min: float64(min), max: float64(max), bounded: true}
	}
	return nil
}

func checkFloat(field string, v *float64, min, max float64) error {
	if v != nil && (*v < min || *v > max) {
		return rangeError{field: field, min: min, max: max, bounded: true}
	}
	return nil
}

func checkNonNegative(field string, v *int) error {
	if v != nil && *v < 0 {
		return rangeError{field: field, min: 0}
	}
	return nil
}

// Validate returns the first out of range metric, if any.
func (r *Record) Validate() error {
	empty := true
	for _, f := range r.metricFields() {
		switch p := f.(type) {
		case **int:
			empty = empty && *p == nil
		case **float64:
			empty = empty && *p == nil
		case **string:
			empty = empty && *p == nil
		}
	}
	if empty {
		return errors.New("record has no metrics")
	}

	checks := []error{
		checkInt("heartbeat", r.Heartbeat, 40, 220),
		checkInt("bloodPressureSystolic", r.BloodPressureSystolic, 70, 200),
		checkInt("bloodPressureDiastolic", r.BloodPressureDiastolic, 40, 130),
		checkFloat("hydration", r.Hydration, 0, 100),
		checkFloat("sleepHours", r.SleepHours, 0, 24),
		checkFloat("bloodOxygen", r.BloodOxygen, 0, 100),
		checkNonNegative("walkingSteps", r.WalkingSteps),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	if r.ECGReading != nil && len(*r.ECGReading) > maxECGReadingLength {
		return fmt.Errorf("ecgReading must be at most %d characters", maxECGReadingLength)
	}

	for _, d := range r.durations() {
		if err := checkNonNegative(d.field, d.value); err != nil {
			return err
		}
	}

	return nil
}

// Summary aggregates a user's records over a period.
type Summary struct {
	UserID        int       `json:"userId"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	Records       int       `json:"records"`
	AvgHeartbeat  *float64  `json:"avgHeartbeat,omitempty"`
	AvgSleepHours *float64  `json:"avgSleepHours,omitempty"`
	AvgHydration  *float64  `json:"avgHydration,omitempty"`
	TotalSteps    int64     `json:"totalSteps"`
	// ActiveMinutes sums all activity durations.
	ActiveMinutes int64 `json:"activeMinutes"`
}
