package app

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/emontoya05/healthtrack/internal/common"
	"github.com/emontoya05/healthtrack/internal/export"
)

// Export writes the user's records to a CSV file. An empty path gets a
// generated file name in the working directory.
func (a *App) Export(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return common.ErrUnauthorized
	}

	path, err := GetSimpleText(a.reader, "- Destination file (empty = generated name)", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if path == "" {
		path = fmt.Sprintf("health_records_%v.csv", uuid.New())
	}

	records, err := a.recordService.ListByUser(ctx, a.currentUser.ID)
	if err != nil {
		printlnFn("Could not load records.")
		return err
	}

	if err := export.ToCSV(path, records); err != nil {
		a.log.Error(ctx, "export failed", "path", path, "error", err)
		printlnFn("Could not export to", path)
		return err
	}

	a.log.Info(ctx, "records exported", "path", path, "count", len(records))
	printlnFn("Exported", len(records), "records to", path)
	return nil
}
