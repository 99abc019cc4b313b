package repository

import (
	"context"
	"errors"

	"gopkg.in/guregu/null.v4"

	"github.com/BilalArshad6074/Smart-Parking/internal/domain"
)

var ErrNotFound = errors.New("record not found")

// ErrStorageUnavailable marks connection-level failures (the database itself is
// unreachable) as opposed to a single operation failing. Handlers use the
// distinction to answer 503 instead of 500.
var ErrStorageUnavailable = errors.New("storage unavailable")

type SlotRepository interface {
	FindAll(ctx context.Context) ([]domain.ParkingSlot, error)
	FindByID(ctx context.Context, id string) (*domain.ParkingSlot, error)
	// Upsert writes the slot under its deterministic id. An existing record
	// for the same spot number is overwritten wholesale, including status and
	// entry time. That reset is documented behavior, not an accident.
	Upsert(ctx context.Context, slot *domain.ParkingSlot) error
	UpdateType(ctx context.Context, id string, newType domain.SlotType) error
	UpdateState(ctx context.Context, id string, status domain.SlotStatus, entryTime null.String) error
	Delete(ctx context.Context, id string) error
}

// AuditLogRepository is append-only. There is deliberately no update or delete.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	FindRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
