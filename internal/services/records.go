package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emontoya05/healthtrack/internal/dbx"
	"github.com/emontoya05/healthtrack/internal/logging"
	"github.com/emontoya05/healthtrack/internal/models"
	"github.com/emontoya05/healthtrack/internal/repositories/records"
)

// RecordService defines the health-record operations.
//
// Records are append-only: there is no update or delete. Average delegates
// the aggregation to the store; ListByUser hands back a caller-owned slice
// for the in-memory analyzer and the exporter.
type RecordService interface {
	Add(ctx context.Context, record *models.HealthRecord) (*models.HealthRecord, error)
	ListByUser(ctx context.Context, userID int64) ([]models.HealthRecord, error)
	Average(ctx context.Context, field records.AverageField, userID int64) (float64, error)
}

type recordService struct {
	db  *sql.DB
	log logging.Logger
}

// NewRecordService constructs a RecordService over the given database handle.
func NewRecordService(db *sql.DB, log logging.Logger) RecordService {
	return &recordService{db: db, log: log.With("component", "records")}
}

func (s *recordService) getRecordsRepo(db dbx.DBTX) records.Repository {
	return records.NewSQLiteRepository(db)
}

// Add stores a new record inside a transaction and returns it with the
// store-assigned id.
func (s *recordService) Add(ctx context.Context, record *models.HealthRecord) (*models.HealthRecord, error) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := s.getRecordsRepo(tx).Create(ctx, record)
		return err
	})
	if err != nil {
		s.log.Error(ctx, "failed to save health record", "user_id", record.UserID, "error", err)
		return nil, fmt.Errorf("failed to save health record: %w", err)
	}

	s.log.Info(ctx, "health record saved", "user_id", record.UserID, "record_id", record.ID)
	return record, nil
}

// ListByUser returns every record of the user in insertion order.
func (s *recordService) ListByUser(ctx context.Context, userID int64) ([]models.HealthRecord, error) {
	result, err := s.getRecordsRepo(s.db).GetAllByUserID(ctx, userID)
	if err != nil {
		s.log.Error(ctx, "failed to load health records", "user_id", userID, "error", err)
		return nil, err
	}
	return result, nil
}

// Average computes the store-side mean for the field. Unknown fields
// average to zero rather than failing.
func (s *recordService) Average(ctx context.Context, field records.AverageField, userID int64) (float64, error) {
	switch field {
	case records.FieldWeight, records.FieldBloodPressure, records.FieldGlucose:
	default:
		s.log.Warn(ctx, "average requested for unknown field", "field", string(field))
	}

	avg, err := s.getRecordsRepo(s.db).Average(ctx, field, userID)
	if err != nil {
		s.log.Error(ctx, "failed to compute average", "field", string(field), "user_id", userID, "error", err)
		return 0, err
	}
	return avg, nil
}
