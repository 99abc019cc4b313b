package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BilalArshad6074/Smart-Parking/internal/service"
)

type AuditLogHandler struct {
	parkingService *service.ParkingService
}

func NewAuditLogHandler(ps *service.ParkingService) *AuditLogHandler {
	return &AuditLogHandler{parkingService: ps}
}

// GET /api/v1/audit-log?limit=n
func (h *AuditLogHandler) GetRecent(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
	}

	entries, err := h.parkingService.RecentAudit(c.Request.Context(), limit)
	if err != nil {
		abortWithStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /api/v1/overview
func (h *AuditLogHandler) GetOverview(c *gin.Context) {
	state, err := h.parkingService.Dashboard(c.Request.Context())
	if err != nil {
		abortWithStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
