package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BilalArshad6074/Smart-Parking/internal/domain"
	"github.com/BilalArshad6074/Smart-Parking/internal/repository"
	"github.com/BilalArshad6074/Smart-Parking/internal/service"
)

// DashboardHandler serves the server-rendered command center. Every action is
// a plain form POST followed by a redirect to GET /, which re-reads the whole
// state. There is no partial update path.
type DashboardHandler struct {
	parkingService *service.ParkingService
	logger         *zap.Logger
}

func NewDashboardHandler(ps *service.ParkingService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{parkingService: ps, logger: logger}
}

// GET /
func (h *DashboardHandler) Show(c *gin.Context) {
	state, err := h.parkingService.Dashboard(c.Request.Context())
	if err != nil {
		h.logger.Error("dashboard render failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Could not load facility state. Check the database connection.",
		})
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"State": state,
		"Error": c.Query("error"),
	})
}

// POST /slots
func (h *DashboardHandler) AddSlot(c *gin.Context) {
	var dto domain.CreateSlotDTO
	if err := c.ShouldBind(&dto); err != nil {
		h.redirectWithError(c, "Slot number and type are required.")
		return
	}
	if _, err := h.parkingService.AddSlot(c.Request.Context(), dto); err != nil {
		h.actionFailed(c, "add slot", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /slots/type — the admin edit form posts the selected slot id.
func (h *DashboardHandler) UpdateSlotType(c *gin.Context) {
	var dto domain.UpdateSlotTypeDTO
	if err := c.ShouldBind(&dto); err != nil {
		h.redirectWithError(c, "A slot category is required.")
		return
	}
	if err := h.parkingService.UpdateSlotType(c.Request.Context(), c.PostForm("slot_id"), dto); err != nil {
		h.actionFailed(c, "update slot", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /slots/delete
func (h *DashboardHandler) DeleteSlot(c *gin.Context) {
	if err := h.parkingService.DeleteSlot(c.Request.Context(), c.PostForm("slot_id")); err != nil {
		h.actionFailed(c, "delete slot", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /slots/:id/check-in
func (h *DashboardHandler) CheckIn(c *gin.Context) {
	if err := h.parkingService.CheckIn(c.Request.Context(), c.Param("id")); err != nil {
		h.actionFailed(c, "check-in", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /slots/:id/check-out renders the receipt instead of redirecting; the
// receipt exists only on this response, it is never separately retrievable.
func (h *DashboardHandler) CheckOut(c *gin.Context) {
	receipt, err := h.parkingService.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.actionFailed(c, "check-out", err)
		return
	}
	c.HTML(http.StatusOK, "receipt.html", gin.H{"Receipt": receipt})
}

func (h *DashboardHandler) actionFailed(c *gin.Context, action string, err error) {
	h.logger.Warn("dashboard action failed", zap.String("action", action), zap.Error(err))
	switch {
	case errors.Is(err, service.ErrInvalidTransition):
		h.redirectWithError(c, "That slot is not in the right state for this action.")
	case errors.Is(err, service.ErrUnknownSlotType):
		h.redirectWithError(c, "Unknown slot category.")
	case errors.Is(err, repository.ErrNotFound):
		h.redirectWithError(c, "That slot no longer exists.")
	case errors.Is(err, repository.ErrStorageUnavailable):
		h.redirectWithError(c, "Database unreachable. Try again.")
	default:
		h.redirectWithError(c, "The "+action+" action failed.")
	}
}

func (h *DashboardHandler) redirectWithError(c *gin.Context, msg string) {
	c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape(msg))
}
