// Package export serializes a record set to the CSV layout the original
// health_app produced: fixed header, comma separators, no quoting. The only
// escaping is a comma-to-semicolon rewrite inside the blood-pressure field,
// so this deliberately does not go through encoding/csv (which would quote).
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/emontoya05/healthtrack/internal/models"
)

// Header is the first line of every export.
const Header = "ID,User ID,DateTime,Weight,Blood Pressure,Glucose Level"

// ToCSV writes the records to path, overwriting any existing file. It fails
// only when the destination cannot be created or written.
func ToCSV(path string, records []models.HealthRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Write(f, records); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return f.Close()
}

// Write streams the export to w: one header line, then one line per record
// with fields in the order id, user id, timestamp, weight, blood pressure,
// glucose. Lines end with '\n'.
func Write(w io.Writer, records []models.HealthRecord) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}

	for _, r := range records {
		// Commas inside the blood-pressure text would break the row.
		bloodPressure := strings.ReplaceAll(r.BloodPressure, ",", ";")

		_, err := fmt.Fprintf(bw, "%d,%d,%s,%s,%s,%s\n",
			r.ID,
			r.UserID,
			r.Timestamp.Format(models.TimeLayout),
			formatNumber(r.Weight),
			bloodPressure,
			formatNumber(r.Glucose),
		)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// formatNumber renders a decimal the way the original UI did: no trailing
// zeros, no exponent for ordinary magnitudes.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
