package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emontoya05/healthtrack/internal/common"
)

func TestParseRecordInput_Valid(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 500_000_000, time.UTC)

	rec, err := parseRecordInput(recordInput{
		Weight:        "72.5",
		BloodPressure: "120/80",
		Glucose:       "5.4",
	}, 9, now)
	require.NoError(t, err)

	assert.Equal(t, int64(9), rec.UserID)
	assert.Equal(t, 72.5, rec.Weight)
	assert.Equal(t, "120/80", rec.BloodPressure)
	assert.Equal(t, 5.4, rec.Glucose)
	assert.Equal(t, now.Truncate(time.Second), rec.Timestamp, "default timestamp is now, whole seconds")
}

func TestParseRecordInput_ExplicitTimestamp(t *testing.T) {
	rec, err := parseRecordInput(recordInput{
		Weight:        "70",
		BloodPressure: "110/70",
		Glucose:       "5",
		Timestamp:     "2026-02-03 07:45:00",
	}, 1, time.Now())
	require.NoError(t, err)

	want := time.Date(2026, 2, 3, 7, 45, 0, 0, time.UTC)
	assert.True(t, want.Equal(rec.Timestamp))
}

func TestParseRecordInput_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   recordInput
	}{
		{"empty weight", recordInput{Weight: "", BloodPressure: "120/80", Glucose: "5"}},
		{"non-numeric weight", recordInput{Weight: "abc", BloodPressure: "120/80", Glucose: "5"}},
		{"blood pressure missing separator", recordInput{Weight: "70", BloodPressure: "12080", Glucose: "5"}},
		{"empty blood pressure", recordInput{Weight: "70", BloodPressure: "", Glucose: "5"}},
		{"non-numeric glucose", recordInput{Weight: "70", BloodPressure: "120/80", Glucose: "high"}},
		{"bad timestamp", recordInput{Weight: "70", BloodPressure: "120/80", Glucose: "5", Timestamp: "yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRecordInput(tt.in, 1, time.Now())
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestParseRecordInput_NegativeValuesAcceptedAtWriteTime(t *testing.T) {
	rec, err := parseRecordInput(recordInput{
		Weight:        "-1",
		BloodPressure: "0/0",
		Glucose:       "0",
	}, 1, time.Now())
	require.NoError(t, err)
	assert.Equal(t, -1.0, rec.Weight)
}
