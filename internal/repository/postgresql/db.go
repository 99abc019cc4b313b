package postgresql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/BilalArshad6074/Smart-Parking/internal/config"
	"github.com/BilalArshad6074/Smart-Parking/internal/repository"
)

func NewDB(creds config.DBCredentials) (*sql.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		creds.Host, creds.Port, creds.User, creds.Password, creds.DBName, creds.SSLMode)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the two collections on first boot. Both are plain keyed
// tables: parking_slots keyed by the deterministic slot id, audit_log keyed by
// a generated uuid.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS parking_slots (
			id TEXT PRIMARY KEY,
			spot_number INTEGER NOT NULL UNIQUE,
			type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'available',
			entry_time TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id TEXT PRIMARY KEY,
			slot INTEGER NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			tx_id TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS audit_log_timestamp_idx ON audit_log (timestamp DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// wrapErr attaches the repository operation name and classifies the failure.
// SQLSTATE class 08 is "connection exception"; those and bad-conn errors map
// to repository.ErrStorageUnavailable so callers can tell a dead database
// apart from one failed statement.
func wrapErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "08" {
		return fmt.Errorf("%s: %w: %v", op, repository.ErrStorageUnavailable, err)
	}
	if errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%s: %w: %v", op, repository.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
