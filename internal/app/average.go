package app

import (
	"context"
	"fmt"
	"os"

	"github.com/emontoya05/healthtrack/internal/analyzer"
	"github.com/emontoya05/healthtrack/internal/common"
	"github.com/emontoya05/healthtrack/internal/repositories/records"
)

// averageChoices maps the menu entry to the store-side aggregation field.
var averageChoices = map[string]struct {
	label string
	field records.AverageField
}{
	"1": {"weight", records.FieldWeight},
	"2": {"blood pressure (systolic)", records.FieldBloodPressure},
	"3": {"glucose", records.FieldGlucose},
}

// Average asks which measurement to average and lets the store compute it.
func (a *App) Average(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return common.ErrUnauthorized
	}

	choice, err := GetSimpleText(a.reader, "- Average of: 1) weight  2) blood pressure  3) glucose", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	c, ok := averageChoices[choice]
	if !ok {
		printlnFn("Unknown choice:", choice)
		return common.ErrValidation
	}

	avg, err := a.recordService.Average(ctx, c.field, a.currentUser.ID)
	if err != nil {
		printlnFn("Could not compute the average.")
		return err
	}

	printlnFn(fmt.Sprintf("Average %s: %.2f", c.label, avg))
	return nil
}

// Stats loads the record set once and prints the in-memory summaries.
// Unlike avg, zero and unparsable values are excluded here.
func (a *App) Stats(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return common.ErrUnauthorized
	}

	recs, err := a.recordService.ListByUser(ctx, a.currentUser.ID)
	if err != nil {
		printlnFn("Could not load records.")
		return err
	}

	an := analyzer.New(recs)
	printlnFn(fmt.Sprintf("Records: %d", len(recs)))
	printlnFn(fmt.Sprintf("Average weight:   %.2f kg", an.AverageWeight()))
	printlnFn(fmt.Sprintf("Average systolic: %.2f", an.AverageBloodPressure()))
	printlnFn(fmt.Sprintf("Average glucose:  %.2f", an.AverageGlucose()))
	return nil
}
