package postgresql

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/BilalArshad6074/Smart-Parking/internal/domain"
	"github.com/BilalArshad6074/Smart-Parking/internal/repository"
)

type pgAuditLogRepository struct {
	db *sql.DB
}

func NewPgAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &pgAuditLogRepository{db: db}
}

// Append stores one checkout record under a generated key. The timestamp is
// assigned here when the caller left it zero.
func (r *pgAuditLogRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	query := `INSERT INTO audit_log (id, slot, amount, tx_id, timestamp)
	           VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.SlotNumber, entry.Amount, entry.TransactionID, entry.Timestamp,
	); err != nil {
		return wrapErr("AuditLogRepository.Append", err)
	}
	return nil
}

func (r *pgAuditLogRepository) FindRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	query := `SELECT id, slot, amount, tx_id, timestamp
	           FROM audit_log ORDER BY timestamp DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, wrapErr("AuditLogRepository.FindRecent", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var entry domain.AuditEntry
		if err := rows.Scan(&entry.ID, &entry.SlotNumber, &entry.Amount, &entry.TransactionID, &entry.Timestamp); err != nil {
			return nil, wrapErr("AuditLogRepository.FindRecent (scanning row)", err)
		}
		entry.Timestamp = entry.Timestamp.In(time.UTC)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr("AuditLogRepository.FindRecent (rows error)", err)
	}
	return entries, nil
}
