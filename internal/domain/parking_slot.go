package domain

import (
	"fmt"

	"gopkg.in/guregu/null.v4"
)

type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusOccupied  SlotStatus = "occupied"
)

type SlotType string

const (
	TypeCar         SlotType = "Car"
	TypeEV          SlotType = "EV"
	TypeHandicapped SlotType = "Handicapped"
)

// ParseSlotType validates a user-supplied slot category.
func ParseSlotType(s string) (SlotType, bool) {
	switch SlotType(s) {
	case TypeCar, TypeEV, TypeHandicapped:
		return SlotType(s), true
	}
	return "", false
}

// SlotID derives the document key for a spot number. The key is deterministic,
// so creating the same spot number twice addresses the same record.
func SlotID(spotNumber int) string {
	return fmt.Sprintf("slot_%d", spotNumber)
}

type ParkingSlot struct {
	ID         string      `json:"id"`
	SpotNumber int         `json:"spot_number"`
	Type       SlotType    `json:"type"`
	Status     SlotStatus  `json:"status"`
	EntryTime  null.String `json:"entry_time"` // "HH:MM:SS", set only while occupied
}

func (s *ParkingSlot) Occupied() bool {
	return s.Status == StatusOccupied
}

type CreateSlotDTO struct {
	SpotNumber int    `json:"spot_number" form:"spot_number" binding:"required,min=1"`
	Type       string `json:"type" form:"type" binding:"required"`
}

type UpdateSlotTypeDTO struct {
	Type string `json:"type" form:"type" binding:"required"`
}
