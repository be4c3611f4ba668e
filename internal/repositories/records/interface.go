package records

import (
	"context"

	"github.com/emontoya05/healthtrack/internal/models"
)

// AverageField selects the measurement the store-side average runs over.
// It is a closed enumeration; any other value averages to zero.
type AverageField string

const (
	FieldWeight        AverageField = "weight"
	FieldBloodPressure AverageField = "blood_pressure"
	FieldGlucose       AverageField = "glucose_level"
)

// Repository describes persistence operations for HealthRecord rows.
// Stored records are immutable; there is no update or delete.
type Repository interface {
	// Create inserts a record for record.UserID. The record's own id is
	// ignored on insert; the store-assigned id is set on the returned record.
	Create(ctx context.Context, record *models.HealthRecord) (*models.HealthRecord, error)

	// GetAllByUserID returns every record of the user in insertion order.
	GetAllByUserID(ctx context.Context, userID int64) ([]models.HealthRecord, error)

	// Average computes the mean of the chosen field over the user's rows
	// using the database's AVG. For blood pressure only the systolic
	// component (text before the separator) is averaged. An unknown field
	// or an empty row set yields 0.
	Average(ctx context.Context, field AverageField, userID int64) (float64, error)
}
