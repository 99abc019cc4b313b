package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"gopkg.in/guregu/null.v4"

	"github.com/BilalArshad6074/Smart-Parking/internal/domain"
	"github.com/BilalArshad6074/Smart-Parking/internal/repository"
)

type pgSlotRepository struct {
	db *sql.DB
}

func NewPgSlotRepository(db *sql.DB) repository.SlotRepository {
	return &pgSlotRepository{db: db}
}

func (r *pgSlotRepository) FindAll(ctx context.Context) ([]domain.ParkingSlot, error) {
	query := `SELECT id, spot_number, type, status, entry_time
	           FROM parking_slots ORDER BY spot_number ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapErr("SlotRepository.FindAll", err)
	}
	defer rows.Close()

	var slots []domain.ParkingSlot
	for rows.Next() {
		var slot domain.ParkingSlot
		if err := rows.Scan(&slot.ID, &slot.SpotNumber, &slot.Type, &slot.Status, &slot.EntryTime); err != nil {
			return nil, wrapErr("SlotRepository.FindAll (scanning row)", err)
		}
		slots = append(slots, slot)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr("SlotRepository.FindAll (rows error)", err)
	}
	return slots, nil
}

func (r *pgSlotRepository) FindByID(ctx context.Context, id string) (*domain.ParkingSlot, error) {
	slot := &domain.ParkingSlot{}
	query := `SELECT id, spot_number, type, status, entry_time
	           FROM parking_slots WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&slot.ID, &slot.SpotNumber, &slot.Type, &slot.Status, &slot.EntryTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, wrapErr("SlotRepository.FindByID", err)
	}
	return slot, nil
}

// Upsert deliberately overwrites every mutable column on conflict. Re-adding
// an occupied spot number resets it to available with no entry time.
func (r *pgSlotRepository) Upsert(ctx context.Context, slot *domain.ParkingSlot) error {
	query := `INSERT INTO parking_slots (id, spot_number, type, status, entry_time)
	           VALUES ($1, $2, $3, $4, $5)
	           ON CONFLICT (id) DO UPDATE
	           SET type = EXCLUDED.type, status = EXCLUDED.status, entry_time = EXCLUDED.entry_time`
	if _, err := r.db.ExecContext(ctx, query,
		slot.ID, slot.SpotNumber, slot.Type, slot.Status, slot.EntryTime,
	); err != nil {
		return wrapErr("SlotRepository.Upsert", err)
	}
	return nil
}

func (r *pgSlotRepository) UpdateType(ctx context.Context, id string, newType domain.SlotType) error {
	query := `UPDATE parking_slots SET type = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, newType, id)
	if err != nil {
		return wrapErr("SlotRepository.UpdateType", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapErr("SlotRepository.UpdateType (checking rows affected)", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgSlotRepository) UpdateState(ctx context.Context, id string, status domain.SlotStatus, entryTime null.String) error {
	query := `UPDATE parking_slots SET status = $1, entry_time = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, entryTime, id)
	if err != nil {
		return wrapErr("SlotRepository.UpdateState", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapErr("SlotRepository.UpdateState (checking rows affected)", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgSlotRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM parking_slots WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapErr("SlotRepository.Delete", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapErr("SlotRepository.Delete (checking rows affected)", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
