package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BilalArshad6074/Smart-Parking/internal/api/handler"
	"github.com/BilalArshad6074/Smart-Parking/internal/service"
)

// SetupRouter wires the server-rendered dashboard and the JSON API over the
// same service layer. templatesGlob points at web/templates; tests that only
// exercise the JSON surface pass an empty string to skip template loading.
func SetupRouter(ps *service.ParkingService, logger *zap.Logger, templatesGlob string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if templatesGlob != "" {
		r.LoadHTMLGlob(templatesGlob)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dashH := handler.NewDashboardHandler(ps, logger)
	r.GET("/", dashH.Show)
	r.POST("/slots", dashH.AddSlot)
	r.POST("/slots/type", dashH.UpdateSlotType)
	r.POST("/slots/delete", dashH.DeleteSlot)
	r.POST("/slots/:id/check-in", dashH.CheckIn)
	r.POST("/slots/:id/check-out", dashH.CheckOut)

	v1 := r.Group("/api/v1")
	{
		slotH := handler.NewParkingSlotHandler(ps)
		slotRoutes := v1.Group("/parking-slots")
		{
			slotRoutes.GET("", slotH.ListSlots)
			slotRoutes.POST("", slotH.CreateSlot)
			slotRoutes.PUT("/:id/type", slotH.UpdateSlotType)
			slotRoutes.DELETE("/:id", slotH.DeleteSlot)
			slotRoutes.POST("/:id/check-in", slotH.CheckIn)
			slotRoutes.POST("/:id/check-out", slotH.CheckOut)
		}

		auditH := handler.NewAuditLogHandler(ps)
		v1.GET("/audit-log", auditH.GetRecent)
		v1.GET("/overview", auditH.GetOverview)
	}

	return r
}
