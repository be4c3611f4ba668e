package records

import (
	"context"
	"fmt"
	"time"

	"github.com/emontoya05/healthtrack/internal/dbx"
	"github.com/emontoya05/healthtrack/internal/models"
)

// SQLiteRepository implements Repository over a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a record row. Timestamps are stored in the date_time
// column's text layout, so sub-second precision is dropped.
func (r *SQLiteRepository) Create(ctx context.Context, record *models.HealthRecord) (*models.HealthRecord, error) {
	query := `INSERT INTO health_records (user_id, date_time, weight, blood_pressure, glucose_level)
			VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		record.UserID,
		record.Timestamp.Format(models.TimeLayout),
		record.Weight,
		record.BloodPressure,
		record.Glucose,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert health record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted record id: %w", err)
	}

	record.ID = id
	return record, nil
}

// GetAllByUserID returns all of the user's records. A user without records
// gets an empty slice, not an error.
func (r *SQLiteRepository) GetAllByUserID(ctx context.Context, userID int64) ([]models.HealthRecord, error) {
	query := `SELECT id, user_id, date_time, weight, blood_pressure, glucose_level
			FROM health_records WHERE user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select health records: %w", err)
	}
	defer rows.Close()

	var result []models.HealthRecord
	for rows.Next() {
		var item models.HealthRecord
		var dateTime string
		if err := rows.Scan(&item.ID, &item.UserID, &dateTime, &item.Weight, &item.BloodPressure, &item.Glucose); err != nil {
			return nil, err
		}
		item.Timestamp, err = time.Parse(models.TimeLayout, dateTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse record timestamp: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Average runs the aggregation inside SQLite. AVG skips NULL cells but does
// count zeros and negatives; only the in-memory analyzer filters those.
func (r *SQLiteRepository) Average(ctx context.Context, field AverageField, userID int64) (float64, error) {
	var expr string
	switch field {
	case FieldWeight:
		expr = "weight"
	case FieldBloodPressure:
		expr = "CAST(SUBSTR(blood_pressure, 1, INSTR(blood_pressure, '/') - 1) AS REAL)"
	case FieldGlucose:
		expr = "glucose_level"
	default:
		return 0, nil
	}

	query := fmt.Sprintf(`SELECT COALESCE(AVG(%s), 0) FROM health_records WHERE user_id = ?`, expr)

	var avg float64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to compute average: %w", err)
	}
	return avg, nil
}
