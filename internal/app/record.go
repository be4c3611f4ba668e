package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/emontoya05/healthtrack/internal/common"
	"github.com/emontoya05/healthtrack/internal/models"
)

var validate = validator.New()

// recordInput is the raw data-entry form. Validation runs here, at the
// presentation boundary; the services below do not re-check formats.
type recordInput struct {
	Weight        string `validate:"required,numeric"`
	BloodPressure string `validate:"required,contains=/"`
	Glucose       string `validate:"required,numeric"`
	Timestamp     string
}

// parseRecordInput validates the form and builds the record to store.
// An empty timestamp defaults to now, truncated to whole seconds.
func parseRecordInput(in recordInput, userID int64, now time.Time) (*models.HealthRecord, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	ts := now.Truncate(time.Second)
	if in.Timestamp != "" {
		parsed, err := time.Parse(models.TimeLayout, in.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: timestamp must look like %s", common.ErrValidation, models.TimeLayout)
		}
		ts = parsed
	}

	weight, err := strconv.ParseFloat(in.Weight, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: weight is not a number", common.ErrValidation)
	}
	glucose, err := strconv.ParseFloat(in.Glucose, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: glucose is not a number", common.ErrValidation)
	}

	return &models.HealthRecord{
		UserID:        userID,
		Timestamp:     ts,
		Weight:        weight,
		BloodPressure: in.BloodPressure,
		Glucose:       glucose,
	}, nil
}

// AddRecord prompts for one measurement set and stores it.
func (a *App) AddRecord(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return common.ErrUnauthorized
	}

	var in recordInput
	var err error

	if in.Weight, err = GetSimpleText(a.reader, "- Weight (kg)", os.Stdout); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if in.BloodPressure, err = GetSimpleText(a.reader, "- Blood pressure (systolic/diastolic)", os.Stdout); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if in.Glucose, err = GetSimpleText(a.reader, "- Glucose level", os.Stdout); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if in.Timestamp, err = GetSimpleText(a.reader, "- Date and time (YYYY-MM-DD HH:MM:SS, empty = now)", os.Stdout); err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	record, err := parseRecordInput(in, a.currentUser.ID, time.Now())
	if err != nil {
		printlnFn("Invalid input:", err.Error())
		return err
	}

	if _, err := a.recordService.Add(ctx, record); err != nil {
		printlnFn("Could not save the record.")
		return err
	}

	printlnFn("Record saved.")
	return nil
}
