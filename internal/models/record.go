package models

import (
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the column rendering of health_records.date_time.
// Round-trips are exact to one second; sub-second precision is dropped.
const TimeLayout = "2006-01-02 15:04:05"

// BloodPressureSeparator splits the systolic and diastolic components.
const BloodPressureSeparator = "/"

// HealthRecord is a single time-stamped measurement set for a user.
//
// Weight and Glucose are free-form decimals; BloodPressure is kept as the
// text the user entered (expected "systolic/diastolic", but the store does
// not validate beyond that). Records are immutable once stored.
type HealthRecord struct {
	// ID is assigned by the store on insert; zero means not yet stored.
	ID int64

	// UserID references users.id.
	UserID int64

	// Timestamp is the capture time, user-supplied or defaulted to "now".
	Timestamp time.Time

	// Weight in kilograms.
	Weight float64

	// BloodPressure as entered, e.g. "120/80".
	BloodPressure string

	// Glucose level.
	Glucose float64
}

// Systolic parses the component of BloodPressure before the separator.
// The boolean result is false when the separator is missing or the
// component is not a number; such entries are excluded from averages.
func (r HealthRecord) Systolic() (float64, bool) {
	if !strings.Contains(r.BloodPressure, BloodPressureSeparator) {
		return 0, false
	}
	head := strings.SplitN(r.BloodPressure, BloodPressureSeparator, 2)[0]
	v, err := strconv.ParseFloat(strings.TrimSpace(head), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
