package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BilalArshad6074/Smart-Parking/internal/domain"
	"github.com/BilalArshad6074/Smart-Parking/internal/repository"
	"github.com/BilalArshad6074/Smart-Parking/internal/service"
)

type ParkingSlotHandler struct {
	parkingService *service.ParkingService
}

func NewParkingSlotHandler(ps *service.ParkingService) *ParkingSlotHandler {
	return &ParkingSlotHandler{parkingService: ps}
}

// GET /api/v1/parking-slots
func (h *ParkingSlotHandler) ListSlots(c *gin.Context) {
	slots, err := h.parkingService.ListSlots(c.Request.Context())
	if err != nil {
		abortWithStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// POST /api/v1/parking-slots
func (h *ParkingSlotHandler) CreateSlot(c *gin.Context) {
	var dto domain.CreateSlotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.parkingService.AddSlot(c.Request.Context(), dto)
	if err != nil {
		if errors.Is(err, service.ErrUnknownSlotType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		abortWithStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// PUT /api/v1/parking-slots/:id/type
func (h *ParkingSlotHandler) UpdateSlotType(c *gin.Context) {
	var dto domain.UpdateSlotTypeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.parkingService.UpdateSlotType(c.Request.Context(), c.Param("id"), dto); err != nil {
		if errors.Is(err, service.ErrUnknownSlotType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "parking slot not found"})
			return
		}
		abortWithStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DELETE /api/v1/parking-slots/:id
func (h *ParkingSlotHandler) DeleteSlot(c *gin.Context) {
	if err := h.parkingService.DeleteSlot(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "parking slot not found"})
			return
		}
		abortWithStorageError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// POST /api/v1/parking-slots/:id/check-in
func (h *ParkingSlotHandler) CheckIn(c *gin.Context) {
	if err := h.parkingService.CheckIn(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "parking slot not found"})
			return
		}
		abortWithStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "checked in"})
}

// POST /api/v1/parking-slots/:id/check-out
func (h *ParkingSlotHandler) CheckOut(c *gin.Context) {
	receipt, err := h.parkingService.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "parking slot not found"})
			return
		}
		abortWithStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// abortWithStorageError distinguishes a dead database from one failed
// statement so clients can degrade per-action.
func abortWithStorageError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrStorageUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed", "details": err.Error()})
}
