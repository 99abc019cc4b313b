package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gopkg.in/guregu/null.v4"

	"github.com/BilalArshad6074/Smart-Parking/internal/domain"
	"github.com/BilalArshad6074/Smart-Parking/internal/repository"
)

// ErrInvalidTransition is returned when a lifecycle operation is applied to a
// slot in the wrong state (check-in on an occupied slot, check-out on an
// available one). The dashboard never offers the invalid button, but the
// service enforces the precondition regardless.
var ErrInvalidTransition = errors.New("invalid slot state transition")

var ErrUnknownSlotType = errors.New("unknown slot type")

const entryTimeLayout = "15:04:05"

type ParkingService struct {
	slotRepo       repository.SlotRepository
	auditRepo      repository.AuditLogRepository
	rates          RateEngine
	auditTrailSize int
	logger         *zap.Logger
}

func NewParkingService(
	slotRepo repository.SlotRepository,
	auditRepo repository.AuditLogRepository,
	rates RateEngine,
	auditTrailSize int,
	logger *zap.Logger,
) *ParkingService {
	if auditTrailSize <= 0 {
		auditTrailSize = 5
	}
	return &ParkingService{
		slotRepo:       slotRepo,
		auditRepo:      auditRepo,
		rates:          rates,
		auditTrailSize: auditTrailSize,
		logger:         logger,
	}
}

func (s *ParkingService) ListSlots(ctx context.Context) ([]domain.ParkingSlot, error) {
	return s.slotRepo.FindAll(ctx)
}

// AddSlot creates a slot under its deterministic id, defaulting to available
// with no entry time. Re-adding an existing spot number overwrites the record,
// silently resetting any occupancy. Single-operator upsert semantics; see the
// design notes before changing it.
func (s *ParkingService) AddSlot(ctx context.Context, dto domain.CreateSlotDTO) (*domain.ParkingSlot, error) {
	slotType, ok := domain.ParseSlotType(dto.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlotType, dto.Type)
	}
	if dto.SpotNumber < 1 {
		return nil, fmt.Errorf("spot number must be positive, got %d", dto.SpotNumber)
	}

	slot := &domain.ParkingSlot{
		ID:         domain.SlotID(dto.SpotNumber),
		SpotNumber: dto.SpotNumber,
		Type:       slotType,
		Status:     domain.StatusAvailable,
		EntryTime:  null.String{},
	}
	if err := s.slotRepo.Upsert(ctx, slot); err != nil {
		return nil, err
	}
	s.logger.Info("slot added", zap.String("slot_id", slot.ID), zap.String("type", string(slot.Type)))
	return slot, nil
}

func (s *ParkingService) UpdateSlotType(ctx context.Context, id string, dto domain.UpdateSlotTypeDTO) error {
	slotType, ok := domain.ParseSlotType(dto.Type)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlotType, dto.Type)
	}
	if err := s.slotRepo.UpdateType(ctx, id, slotType); err != nil {
		return err
	}
	s.logger.Info("slot type updated", zap.String("slot_id", id), zap.String("type", dto.Type))
	return nil
}

func (s *ParkingService) DeleteSlot(ctx context.Context, id string) error {
	if err := s.slotRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("slot deleted", zap.String("slot_id", id))
	return nil
}

// CheckIn moves an available slot to occupied, stamping the wall-clock entry
// time. No audit record is produced on entry; only checkout is billed.
func (s *ParkingService) CheckIn(ctx context.Context, id string) error {
	slot, err := s.slotRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if slot.Occupied() {
		return fmt.Errorf("%w: slot %s is already occupied", ErrInvalidTransition, slot.ID)
	}

	entryTime := null.StringFrom(time.Now().Format(entryTimeLayout))
	if err := s.slotRepo.UpdateState(ctx, slot.ID, domain.StatusOccupied, entryTime); err != nil {
		return err
	}
	s.logger.Info("vehicle checked in", zap.String("slot_id", slot.ID), zap.String("entry_time", entryTime.String))
	return nil
}

// CheckOut bills an occupied slot at the rate in force right now, appends one
// audit entry, then frees the slot. The returned receipt is display-only.
func (s *ParkingService) CheckOut(ctx context.Context, id string) (*domain.Receipt, error) {
	slot, err := s.slotRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !slot.Occupied() {
		return nil, fmt.Errorf("%w: slot %s is not occupied", ErrInvalidTransition, slot.ID)
	}

	// Rate at the moment of payment, with this vehicle still counted as parked.
	slots, err := s.slotRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	occupied := 0
	for _, sl := range slots {
		if sl.Occupied() {
			occupied++
		}
	}
	amount := s.rates.Rate(len(slots), occupied)

	txID := newTransactionID()
	entry := &domain.AuditEntry{
		SlotNumber:    slot.SpotNumber,
		Amount:        amount,
		TransactionID: txID,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.auditRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.slotRepo.UpdateState(ctx, slot.ID, domain.StatusAvailable, null.String{}); err != nil {
		return nil, err
	}

	entryTime := "N/A"
	if slot.EntryTime.Valid && slot.EntryTime.String != "" {
		entryTime = slot.EntryTime.String
	}
	s.logger.Info("vehicle checked out",
		zap.String("slot_id", slot.ID),
		zap.String("tx_id", txID),
		zap.Float64("amount", amount),
	)
	return &domain.Receipt{
		TransactionID: txID,
		SpotNumber:    slot.SpotNumber,
		EntryTime:     entryTime,
		Amount:        amount,
	}, nil
}

// RecentAudit returns the newest-first trailing audit entries, capped at
// limit. Non-positive limits fall back to the configured trail size.
func (s *ParkingService) RecentAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = s.auditTrailSize
	}
	return s.auditRepo.FindRecent(ctx, limit)
}

// Dashboard rebuilds the full read model: every render re-reads all slots and
// the trailing audit entries, with no caching between requests.
func (s *ParkingService) Dashboard(ctx context.Context) (*domain.DashboardState, error) {
	slots, err := s.slotRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	occupied := 0
	for _, slot := range slots {
		if slot.Occupied() {
			occupied++
		}
	}

	occupancyPct := 0.0
	if len(slots) > 0 {
		occupancyPct = float64(occupied) / float64(len(slots)) * 100
	}
	rate := s.rates.Rate(len(slots), occupied)

	trail, err := s.auditRepo.FindRecent(ctx, s.auditTrailSize)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardState{
		Slots:         slots,
		TotalSlots:    len(slots),
		OccupiedSlots: occupied,
		OccupancyPct:  occupancyPct,
		CurrentRate:   rate,
		Surge:         rate > s.rates.Base,
		AuditTrail:    trail,
	}, nil
}

// Transaction ids are best-effort unique: a fixed-range random suffix used for
// receipt correlation only, never re-validated.
func newTransactionID() string {
	return fmt.Sprintf("TXN-%d", 10000+rand.Intn(90000))
}
