package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"

	"github.com/BilalArshad6074/Smart-Parking/internal/domain"
	"github.com/BilalArshad6074/Smart-Parking/internal/repository"
)

// In-memory stand-ins for the postgres repositories, preserving their
// contracts: ordered FindAll, upsert overwrite, ErrNotFound on missing ids,
// newest-first capped FindRecent.

type fakeSlotRepo struct {
	slots map[string]domain.ParkingSlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]domain.ParkingSlot)}
}

func (r *fakeSlotRepo) FindAll(ctx context.Context) ([]domain.ParkingSlot, error) {
	out := make([]domain.ParkingSlot, 0, len(r.slots))
	for _, slot := range r.slots {
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SpotNumber < out[j].SpotNumber })
	return out, nil
}

func (r *fakeSlotRepo) FindByID(ctx context.Context, id string) (*domain.ParkingSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &slot, nil
}

func (r *fakeSlotRepo) Upsert(ctx context.Context, slot *domain.ParkingSlot) error {
	r.slots[slot.ID] = *slot
	return nil
}

func (r *fakeSlotRepo) UpdateType(ctx context.Context, id string, newType domain.SlotType) error {
	slot, ok := r.slots[id]
	if !ok {
		return repository.ErrNotFound
	}
	slot.Type = newType
	r.slots[id] = slot
	return nil
}

func (r *fakeSlotRepo) UpdateState(ctx context.Context, id string, status domain.SlotStatus, entryTime null.String) error {
	slot, ok := r.slots[id]
	if !ok {
		return repository.ErrNotFound
	}
	slot.Status = status
	slot.EntryTime = entryTime
	r.slots[id] = slot
	return nil
}

func (r *fakeSlotRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.slots[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.slots, id)
	return nil
}

type fakeAuditRepo struct {
	entries []domain.AuditEntry
}

func (r *fakeAuditRepo) Append(ctx context.Context, entry *domain.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) FindRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	out := make([]domain.AuditEntry, len(r.entries))
	copy(out, r.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
