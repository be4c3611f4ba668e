package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emontoya05/healthtrack/internal/models"

	_ "modernc.org/sqlite"
)

func TestOpen_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "health_app.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	for _, table := range []string{"users", "health_records"} {
		var name string
		err := s.DB.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
	}
}

func TestOpen_RepositoriesAreWired(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "health_app.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	u, err := s.Users.Create(ctx, &models.User{Username: "alice", PasswordHash: "digest"})
	require.NoError(t, err)

	rec, err := s.Records.Create(ctx, &models.HealthRecord{
		UserID:        u.ID,
		Timestamp:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		Weight:        70,
		BloodPressure: "120/80",
		Glucose:       5,
	})
	require.NoError(t, err)
	assert.Positive(t, rec.ID)

	got, err := s.Records.GetAllByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOpen_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "health_app.db")

	s1, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s1.Users.Create(ctx, &models.User{Username: "bob", PasswordHash: "digest"})
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Second open must not re-run migrations or disturb the data.
	s2, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })

	u, err := s2.Users.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
}

func TestOpen_UpgradesLegacyNumericBloodPressure(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "health_app.db")

	// A database written before the blood_pressure column became TEXT.
	legacy, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = legacy.ExecContext(ctx, `
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT UNIQUE NOT NULL COLLATE NOCASE,
  password TEXT NOT NULL
);
CREATE TABLE health_records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  date_time DATETIME NOT NULL,
  weight REAL,
  blood_pressure REAL,
  glucose_level REAL,
  FOREIGN KEY (user_id) REFERENCES users(id)
);
INSERT INTO users (username, password) VALUES ('carol', 'digest');
INSERT INTO health_records (user_id, date_time, weight, blood_pressure, glucose_level)
VALUES (1, '2025-11-03 10:15:00', 68.0, 120.5, 4.8);
`)
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	s, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.Records.GetAllByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "120.5", got[0].BloodPressure, "numeric value must be coerced to text")
	assert.Equal(t, 68.0, got[0].Weight)
}
