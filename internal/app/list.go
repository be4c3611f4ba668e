package app

import (
	"context"
	"fmt"

	"github.com/emontoya05/healthtrack/internal/common"
	"github.com/emontoya05/healthtrack/internal/models"
)

// List prints the user's records, one line each, oldest first.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return common.ErrUnauthorized
	}

	records, err := a.recordService.ListByUser(ctx, a.currentUser.ID)
	if err != nil {
		printlnFn("Could not load records.")
		return err
	}

	if len(records) == 0 {
		printlnFn("No records yet.")
		return nil
	}

	for _, r := range records {
		printlnFn(formatRecord(r))
	}
	return nil
}

func formatRecord(r models.HealthRecord) string {
	return fmt.Sprintf("#%d  %s  weight %.1f kg  bp %s  glucose %.1f",
		r.ID, r.Timestamp.Format(models.TimeLayout), r.Weight, r.BloodPressure, r.Glucose)
}
